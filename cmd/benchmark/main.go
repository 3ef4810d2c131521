package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"time"

	"github.com/limaJavier/vertexcover/pkg/model"
	"github.com/limaJavier/vertexcover/pkg/sat"
	"github.com/samber/lo"
)

type MethodType int

const (
	gophersat MethodType = iota
	gini
	kissat
	cadical
	minisat
	cryptominisat
	glucosesimp
	maxsat
	greedyMaxDegree
	greedyEdge
)

type ResultType int

const (
	solved ResultType = iota
	timeout
)

var (
	methodTypes = map[MethodType]string{
		gophersat:       "gophersat",
		gini:            "gini",
		kissat:          "kissat",
		cadical:         "cadical",
		minisat:         "minisat",
		cryptominisat:   "cryptominisat",
		glucosesimp:     "glucosesimp",
		maxsat:          "maxsat",
		greedyMaxDegree: "greedy-1",
		greedyEdge:      "greedy-2",
	}
	resultTypes = map[ResultType]string{
		solved:  "solved",
		timeout: "timeout",
	}
	solverConstructors = map[MethodType]func() sat.SATSolver{
		gophersat:     sat.NewGophersatSolver,
		gini:          sat.NewGiniSolver,
		kissat:        sat.NewKissatSolver,
		cadical:       sat.NewCadicalSolver,
		minisat:       sat.NewMinisatSolver,
		cryptominisat: sat.NewCryptominisatSolver,
		glucosesimp:   sat.NewGlucoseSimpSolver,
	}
)

type GraphMetadata struct {
	Name       string
	Index      int
	Vertices   uint64
	Edges      int
	LowerBound uint64
}

type BenchmarkResult struct {
	Method    MethodType
	Graph     GraphMetadata
	CoverSize int
	Optimal   bool
	Duration  int64
	Result    ResultType
}

func main() {
	filePathPtr := flag.String("file", "", "Path to the graphGen text file holding the graphs to benchmark")
	methodsPtr := flag.String("methods", "gophersat,gini,maxsat,greedy-1,greedy-2", "Comma separated list of methods to benchmark")
	timeoutPtr := flag.Duration("timeout", time.Minute, "Time limit for every solver call of the minimum search")
	outFilePathPtr := flag.String("out", "benchmark_results.csv", "Path to the CSV file holding the results")
	flag.Parse()

	if *filePathPtr == "" {
		log.Fatal("an input file must be specified")
	}
	methods, err := parseMethods(*methodsPtr)
	if err != nil {
		log.Fatal(err)
	}

	graphs, err := model.GraphsFromFile(*filePathPtr)
	if err != nil {
		log.Fatalf("cannot parse input file: %v", err)
	}

	results := make([]BenchmarkResult, 0, len(graphs)*len(methods))
	for index, graph := range graphs {
		metadata, err := getMetadata(*filePathPtr, index, graph)
		if err != nil {
			log.Fatalf("cannot benchmark graph %v: %v", index, err)
		}

		for _, method := range methods {
			fmt.Printf("Benchmarking graph %v of \"%v\" with method \"%v\"\n", index, metadata.Name, methodTypes[method])

			result, err := measure(method, graph, *timeoutPtr)
			if err != nil {
				log.Fatalf("an error occurred during the execution of method \"%v\" at graph %v: %v", methodTypes[method], index, err)
			}
			result.Graph = metadata
			results = append(results, result)
		}
	}

	file, err := os.Create(*outFilePathPtr)
	if err != nil {
		log.Panicf("cannot create CSV file: %v", err)
	}
	defer file.Close()

	if err := toCsv(file, results); err != nil {
		log.Panicf("cannot write CSV file: %v", err)
	}
}

func parseMethods(methodsStr string) ([]MethodType, error) {
	names := lo.Invert(methodTypes)
	methods := make([]MethodType, 0)
	for _, name := range strings.Split(methodsStr, ",") {
		method, ok := names[strings.ToLower(strings.TrimSpace(name))]
		if !ok {
			return nil, fmt.Errorf("%v is not a valid method", name)
		}
		methods = append(methods, method)
	}
	return lo.Uniq(methods), nil
}

func getMetadata(fileName string, index int, graph model.Graph) (GraphMetadata, error) {
	if err := model.ValidateGraph(graph); err != nil {
		return GraphMetadata{}, err
	}

	lowerBound, err := model.MatchingLowerBound(graph)
	if err != nil {
		return GraphMetadata{}, err
	}

	return GraphMetadata{
		Name:       fileName,
		Index:      index,
		Vertices:   graph.Vertices,
		Edges:      len(graph.Edges),
		LowerBound: lowerBound,
	}, nil
}

func measure(method MethodType, graph model.Graph, limit time.Duration) (BenchmarkResult, error) {
	var (
		cover   []uint64
		optimal bool
		err     error
	)

	start := time.Now()
	switch method {
	case greedyMaxDegree:
		cover, err = model.GreedyMaxDegreeCover(graph)
	case greedyEdge:
		cover, err = model.GreedyEdgeCover(graph)
	case maxsat:
		cover, optimal, err = model.NewMaxSATCoverer().Minimum(graph)
	default:
		cover, optimal, err = model.NewSATCoverer(solverConstructors[method](), limit).Minimum(graph)
	}
	duration := time.Since(start)
	if err != nil {
		return BenchmarkResult{}, err
	}

	// Greedy covers are never claimed optimal, they are solved as soon as they return
	isExact := method != greedyMaxDegree && method != greedyEdge
	return BenchmarkResult{
		Method:    method,
		CoverSize: len(cover),
		Optimal:   optimal,
		Duration:  duration.Milliseconds(),
		Result:    lo.Ternary(isExact && !optimal, timeout, solved),
	}, nil
}

func toCsv(writer io.Writer, results []BenchmarkResult) error {
	csvWriter := csv.NewWriter(writer)

	header := []string{"Method", "Graph", "Index", "Vertices", "Edges", "Lower Bound", "Cover Size", "Optimal", "Duration(ms)", "Result"}
	if err := csvWriter.Write(header); err != nil {
		return fmt.Errorf("cannot write CSV header: %w", err)
	}

	for _, result := range results {
		if err := csvWriter.Write(record(result)); err != nil {
			return fmt.Errorf("cannot write CSV record: %w", err)
		}
	}

	csvWriter.Flush()
	return csvWriter.Error()
}

func record(result BenchmarkResult) []string {
	return []string{
		methodTypes[result.Method],
		result.Graph.Name,
		fmt.Sprintf("%d", result.Graph.Index),
		fmt.Sprintf("%d", result.Graph.Vertices),
		fmt.Sprintf("%d", result.Graph.Edges),
		fmt.Sprintf("%d", result.Graph.LowerBound),
		fmt.Sprintf("%d", result.CoverSize),
		fmt.Sprintf("%v", result.Optimal),
		fmt.Sprintf("%d", result.Duration),
		resultTypes[result.Result],
	}
}
