package main

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/limaJavier/vertexcover/pkg/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var path = model.Graph{
	Vertices: 5,
	Edges:    [][2]uint64{{1, 2}, {2, 3}, {3, 4}, {4, 5}},
}

func TestParseMethods(t *testing.T) {
	methods, err := parseMethods("gophersat, MAXSAT,greedy-1,gophersat")
	require.NoError(t, err)
	assert.Equal(t, []MethodType{gophersat, maxsat, greedyMaxDegree}, methods)

	_, err = parseMethods("gophersat,walksat")
	assert.Error(t, err)
}

func TestGetMetadata(t *testing.T) {
	metadata, err := getMetadata("graphs.txt", 3, path)
	require.NoError(t, err)
	assert.Equal(t, GraphMetadata{Name: "graphs.txt", Index: 3, Vertices: 5, Edges: 4, LowerBound: 2}, metadata)
}

func TestMeasure(t *testing.T) {
	// Edge-based greedy takes both endpoints of <2,3> and then of <4,5>
	expectedSizes := map[MethodType]int{gophersat: 2, gini: 2, maxsat: 2, greedyMaxDegree: 2, greedyEdge: 4}

	for method, expectedSize := range expectedSizes {
		t.Run(methodTypes[method], func(t *testing.T) {
			result, err := measure(method, path, time.Minute)
			require.NoError(t, err)
			assert.Equal(t, method, result.Method)
			assert.Equal(t, expectedSize, result.CoverSize)
			assert.Equal(t, solved, result.Result)
			assert.Equal(t, method != greedyMaxDegree && method != greedyEdge, result.Optimal)
		})
	}
}

func TestToCsv(t *testing.T) {
	//** Arrange
	results := []BenchmarkResult{
		{
			Method:    gini,
			Graph:     GraphMetadata{Name: "graphs.txt", Index: 0, Vertices: 5, Edges: 4, LowerBound: 2},
			CoverSize: 2,
			Optimal:   true,
			Duration:  12,
			Result:    solved,
		},
		{
			Method:    kissat,
			Graph:     GraphMetadata{Name: "graphs.txt", Index: 1, Vertices: 40, Edges: 300, LowerBound: 18},
			CoverSize: 25,
			Duration:  60000,
			Result:    timeout,
		},
	}
	var buffer bytes.Buffer

	//** Act
	err := toCsv(&buffer, results)

	//** Assert
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(buffer.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "Method,Graph,Index,Vertices,Edges,Lower Bound,Cover Size,Optimal,Duration(ms),Result", lines[0])
	assert.Equal(t, "gini,graphs.txt,0,5,4,2,2,true,12,solved", lines[1])
	assert.Equal(t, "kissat,graphs.txt,1,40,300,18,25,false,60000,timeout", lines[2])
}

func TestOutOfRangeEndpointsAreRejected(t *testing.T) {
	graph := model.Graph{Vertices: 3, Edges: [][2]uint64{{1, 5}}}

	_, err := getMetadata("graphs.txt", 0, graph)
	assert.ErrorAs(t, err, &model.InvalidEncodingInputError{})

	for _, method := range []MethodType{greedyMaxDegree, greedyEdge} {
		assert.NotPanics(t, func() {
			_, err := measure(method, graph, time.Minute)
			assert.ErrorAs(t, err, &model.InvalidEncodingInputError{})
		}, methodTypes[method])
	}
}
