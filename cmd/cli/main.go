package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/limaJavier/vertexcover/pkg/model"
	"github.com/limaJavier/vertexcover/pkg/sat"
	"github.com/samber/lo"
)

const (
	satisfiableExitCode   = 10
	verificationExitCode  = 15
	unsatisfiableExitCode = 20
	timeoutExitCode       = 30
)

var (
	validModes   = []string{"encode", "cover", "minimum", "approximate"}
	validSolvers = []string{"gophersat", "gini", "maxsat", "kissat", "cadical", "minisat", "cryptominisat", "glucosesimp"}
	validFormats = []string{"text", "json"}
	solvers      = map[string]func() sat.SATSolver{
		"gophersat":     sat.NewGophersatSolver,
		"gini":          sat.NewGiniSolver,
		"kissat":        sat.NewKissatSolver,
		"cadical":       sat.NewCadicalSolver,
		"minisat":       sat.NewMinisatSolver,
		"cryptominisat": sat.NewCryptominisatSolver,
		"glucosesimp":   sat.NewGlucoseSimpSolver,
	}
)

func main() {
	// Define arguments
	modePtr := flag.String("mode", "minimum", `What to do with the graph. Allowed values are:
- "encode" (write the CNF formula stating that the graph has a vertex cover of size k),
- "cover" (find a vertex cover of size k),
- "minimum" (find a minimum vertex cover, alongside the greedy approximations) and
- "approximate" (only run the greedy approximations), where "minimum" is the default`)
	solverPtr := flag.String("solver", "gophersat", "SAT-Solver to use. Allowed values are: \"gophersat\", \"gini\", \"maxsat\", \"kissat\", \"cadical\", \"minisat\", \"cryptominisat\", \"glucosesimp\", where \"gophersat\" is the default")
	filePathPtr := flag.String("file", "", "Path to the input file holding one or more graphs")
	formatPtr := flag.String("format", "", "Input format: \"text\" (V <n> / E {<x,y>,...} lines) or \"json\"; inferred from the file extension if empty")
	graphPtr := flag.Int("graph", 0, "Index of the graph to use in the \"encode\" and \"cover\" modes")
	coverSizePtr := flag.Uint64("k", 0, "Size of the vertex cover for the \"encode\" and \"cover\" modes")
	outFilePathPtr := flag.String("out", "", "Path to the file where the formula will be written; if empty, it'll be written into the Standard Output")
	strictHeaderPtr := flag.Bool("strict-header", false, "Declare rows*vertices variables in the \"p cnf\" line instead of the number of vertices")
	timeoutPtr := flag.Duration("timeout", 10*time.Minute, "Time limit for every solver call of the minimum search; 0 disables it")
	configPathPtr := flag.String("config", "", "Path to the config.json file locating solver executables; defaults to the executable's directory")
	flag.Parse()
	mode := strings.ToLower(*modePtr)
	solverStr := strings.ToLower(*solverPtr)
	filePath := *filePathPtr
	format := strings.ToLower(*formatPtr)
	coverSize := *coverSizePtr

	// Validate arguments
	if format == "" {
		format = lo.Ternary(strings.EqualFold(filepath.Ext(filePath), ".json"), "json", "text")
	}
	if !slices.Contains(validModes, mode) {
		log.Fatalf("%v is not a valid mode", mode)
	} else if !slices.Contains(validSolvers, solverStr) {
		log.Fatalf("%v is not a valid solver", solverStr)
	} else if !slices.Contains(validFormats, format) {
		log.Fatalf("%v is not a valid format", format)
	} else if filePath == "" {
		log.Fatal("an input file must be specified")
	} else if (mode == "encode" || mode == "cover") && coverSize == 0 {
		log.Fatalf("a positive cover size must be specified in the \"%v\" mode", mode)
	}
	setConfigPath(*configPathPtr)

	// Extract input
	graphs, err := readGraphs(filePath, format)
	if err != nil {
		log.Fatalf("cannot parse input file: %v", err)
	} else if len(graphs) == 0 {
		log.Fatal("the input file holds no graph")
	} else if *graphPtr < 0 || *graphPtr >= len(graphs) {
		log.Fatalf("graph index %v is out of range, the input file holds %v graphs", *graphPtr, len(graphs))
	}
	graph := graphs[*graphPtr]

	// Initialize engines
	var coverer model.Coverer
	if solverStr == "maxsat" {
		coverer = model.NewMaxSATCoverer()
	} else {
		coverer = model.NewSATCoverer(solvers[solverStr](), *timeoutPtr)
	}

	switch mode {
	case "encode":
		headerMode := lo.Ternary(*strictHeaderPtr, model.VariableCountHeader, model.VertexCountHeader)
		encode(graph, coverSize, headerMode, *outFilePathPtr)
	case "cover":
		cover(coverer, graph, coverSize)
	case "minimum":
		minimum(coverer, graphs)
	case "approximate":
		for _, graph := range graphs {
			approximate(graph)
		}
	}
}

func encode(graph model.Graph, coverSize uint64, headerMode model.HeaderMode, outFile string) {
	formula, err := model.Encode(graph, coverSize)
	if err != nil {
		log.Fatalf("an error occurred during formula construction: %v", err)
	}

	// Verify outfile is empty, if so then write the formula to the Standard Output
	if outFile == "" {
		err = formula.Write(os.Stdout, headerMode)
	} else {
		err = formula.WriteFile(outFile, headerMode)
	}
	if err != nil {
		log.Fatalf("an error occurred while writing the formula: %v", err)
	}
}

func cover(coverer model.Coverer, graph model.Graph, coverSize uint64) {
	vertexCover, variables, clauses, err := coverer.Cover(graph, coverSize)
	if err != nil {
		log.Fatalf("an error occurred during vertex cover construction: %v", err)
	} else if vertexCover == nil {
		fmt.Println("Not satisfiable")
		fmt.Printf("Variables: %v\n", variables)
		fmt.Printf("Clauses: %v\n", clauses)
		os.Exit(unsatisfiableExitCode)
	}

	// Verify vertex cover correctness
	if !coverer.Verify(graph, vertexCover, coverSize) {
		fmt.Printf("Variables: %v\n", variables)
		fmt.Printf("Clauses: %v\n", clauses)
		os.Exit(verificationExitCode)
	}

	fmt.Printf("VC: %v\n", formatCover(vertexCover))
	fmt.Printf("Variables: %v\n", variables)
	fmt.Printf("Clauses: %v\n", clauses)
	os.Exit(satisfiableExitCode)
}

func minimum(coverer model.Coverer, graphs []model.Graph) {
	exitCode := satisfiableExitCode
	for _, graph := range graphs {
		vertexCover, optimal, err := coverer.Minimum(graph)
		if err != nil {
			log.Fatalf("an error occurred during vertex cover construction: %v", err)
		} else if !coverer.Verify(graph, vertexCover, uint64(len(vertexCover))) {
			os.Exit(verificationExitCode)
		}

		if optimal {
			fmt.Printf("VC-EXACT: %v\n", formatCover(vertexCover))
		} else {
			fmt.Printf("VC (non-optimal): %v\n", formatCover(vertexCover))
			exitCode = timeoutExitCode
		}
		approximate(graph)
	}
	os.Exit(exitCode)
}

func approximate(graph model.Graph) {
	maxDegreeCover, err := model.GreedyMaxDegreeCover(graph)
	if err != nil {
		log.Fatalf("invalid graph: %v", err)
	}
	edgeCover, err := model.GreedyEdgeCover(graph)
	if err != nil {
		log.Fatalf("invalid graph: %v", err)
	}

	fmt.Printf("VC-GREEDY-1: %v\n", formatCover(maxDegreeCover))
	fmt.Printf("VC-GREEDY-2: %v\n", formatCover(edgeCover))
}

func readGraphs(filePath, format string) ([]model.Graph, error) {
	if format == "json" {
		return model.GraphsFromJson(filePath)
	}
	return model.GraphsFromFile(filePath)
}

// formatCover renders the vertices followed by the cover size, e.g. "1 3 4 (3)"
func formatCover(vertexCover []uint64) string {
	vertices := lo.Map(vertexCover, func(vertex uint64, _ int) string { return fmt.Sprint(vertex) })
	return strings.TrimLeft(fmt.Sprintf("%v (%v)", strings.Join(vertices, " "), len(vertexCover)), " ")
}

func setConfigPath(configPath string) {
	if configPath != "" {
		sat.ConfigPath = configPath
		return
	}

	execPath, err := os.Executable()
	if err != nil {
		log.Fatalf("cannot determine executable path: %v", err)
	}
	execPath = path.Dir(execPath)

	// Use config.json only if it sits next to the executable
	files, err := os.ReadDir(execPath)
	if err != nil {
		log.Fatalf("cannot read executable's directory: %v", err)
	}
	fileNames := lo.Map(files, func(file os.DirEntry, _ int) string { return file.Name() })

	if slices.Contains(fileNames, "config.json") {
		sat.ConfigPath = execPath + "/config.json"
	}
}
