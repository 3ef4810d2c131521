package model

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
	"github.com/mitchellh/mapstructure"
	"github.com/samber/lo"
)

// Graph descriptions as produced by graphGen:
//
//	V 5
//	E {<1,2>,<2,3>,<4,5>}
type graphDescription struct {
	Graphs []*graphEntry `@@*`
}

type graphEntry struct {
	Vertices uint64       `"V" @Int`
	Edges    []*edgeEntry `"E" "{" ( @@ ( "," @@ )* )? "}"`
}

type edgeEntry struct {
	From uint64 `"<" @Int ","`
	To   uint64 `@Int ">"`
}

var graphLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Command", Pattern: `[VE]`},
	{Name: "Int", Pattern: `\d+`},
	{Name: "Punct", Pattern: `[{}<>,]`},
	{Name: "Whitespace", Pattern: `\s+`},
})

var graphParser = participle.MustBuild[graphDescription](
	participle.Lexer(graphLexer),
	participle.Elide("Whitespace"),
)

type RawGraph struct {
	Vertices uint64
	Edges    [][]uint64
}

// ParseGraphs parses every "V"/"E" pair of a graph description
func ParseGraphs(description string) ([]Graph, error) {
	parsed, err := graphParser.ParseString("", description)
	if err != nil {
		return nil, fmt.Errorf("cannot parse graph description: %w", err)
	}

	return lo.Map(parsed.Graphs, func(entry *graphEntry, _ int) Graph {
		return Graph{
			Vertices: entry.Vertices,
			Edges: lo.Map(entry.Edges, func(edge *edgeEntry, _ int) [2]uint64 {
				return [2]uint64{edge.From, edge.To}
			}),
		}
	}), nil
}

func GraphsFromFile(file string) ([]Graph, error) {
	bytes, err := os.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("cannot read graph file: %w", err)
	}
	return ParseGraphs(string(bytes))
}

// GraphsFromJson reads either a single graph object {"vertices": n, "edges": [[x, y], ...]} or a list of them
func GraphsFromJson(file string) ([]Graph, error) {
	bytes, err := os.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("cannot read graph file: %w", err)
	}

	var inputJson any
	if err := json.Unmarshal(bytes, &inputJson); err != nil {
		return nil, err
	}

	var rawGraphs []RawGraph
	switch inputJson.(type) {
	case []any:
		err = mapstructure.Decode(inputJson, &rawGraphs)
	default:
		var rawGraph RawGraph
		err = mapstructure.Decode(inputJson, &rawGraph)
		rawGraphs = []RawGraph{rawGraph}
	}
	if err != nil {
		return nil, fmt.Errorf("cannot decode graph file: %w", err)
	}

	graphs := make([]Graph, 0, len(rawGraphs))
	for _, rawGraph := range rawGraphs {
		graph, err := ProcessRawGraph(rawGraph)
		if err != nil {
			return nil, err
		}
		graphs = append(graphs, graph)
	}
	return graphs, nil
}

func ProcessRawGraph(rawGraph RawGraph) (Graph, error) {
	graph := Graph{
		Vertices: rawGraph.Vertices,
		Edges:    make([][2]uint64, 0, len(rawGraph.Edges)),
	}

	for i, edge := range rawGraph.Edges {
		if len(edge) != 2 {
			return Graph{}, fmt.Errorf("edge %d must have exactly two endpoints: %v", i, edge)
		}
		graph.Edges = append(graph.Edges, [2]uint64{edge[0], edge[1]})
	}
	return graph, nil
}
