package main

import (
	"bytes"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/spatial/grid"
	"github.com/katalvlaran/spatial/placement"
	"github.com/katalvlaran/spatial/safemode"
)

const sampleScenario = `
cost:
  - [1, 1, 1, 1]
  - [1, .inf, .inf, 1]
  - [1, 1, 1, 1]
targets:
  - [0, 3]
starts:
  - [2.4, 0.7]
snap_radius: 3
placement:
  placement:
    - [1, 1, 1, 1]
    - [1, 0, 0, 1]
    - [1, 1, 1, 1]
  pathing:
    - [1, 1, 1, 1]
    - [1, 1, 1, 1]
    - [1, 1, 1, 1]
  width: 1
  height: 2
`

func writeScenario(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadScenario(t *testing.T) {
	sc, err := LoadScenario(writeScenario(t, sampleScenario))
	require.NoError(t, err)

	require.Len(t, sc.Cost, 3)
	assert.True(t, math.IsInf(sc.Cost[1][1], 1), ".inf decodes to +Inf")
	assert.Equal(t, [][2]int{{0, 3}}, sc.Targets)
	require.NotNil(t, sc.SnapRadius)
	assert.Equal(t, 3.0, *sc.SnapRadius)
	require.NotNil(t, sc.Placement)
	assert.Equal(t, 2, sc.Placement.Height)

	_, err = LoadScenario(writeScenario(t, "cost: [1, 2"))
	require.Error(t, err)
}

func TestScenarioRun(t *testing.T) {
	sc, err := LoadScenario(writeScenario(t, sampleScenario))
	require.NoError(t, err)

	rep, err := sc.Run(safemode.New(safemode.NewConfig(true)))
	require.NoError(t, err)

	assert.Zero(t, rep.Field.Distance(0, 3))
	assert.False(t, rep.Field.Reachable(1, 1))

	require.Len(t, rep.Paths, 1)
	path := rep.Paths[0]
	assert.Equal(t, grid.Cell{Row: 2, Col: 0}, path[0])
	assert.Equal(t, grid.Cell{Row: 0, Col: 3}, path[len(path)-1])

	// a 1×2 column fits wherever it misses the two blocked cells of row 1
	want := []placement.Origin{{X: 0, Y: 0}, {X: 3, Y: 0}, {X: 0, Y: 1}, {X: 3, Y: 1}}
	assert.Equal(t, want, rep.Sites)

	var buf bytes.Buffer
	require.NoError(t, rep.Write(&buf))
	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "field 3x4\n"), out)
	assert.Contains(t, out, "path 0: [(2,0)")
	assert.Contains(t, out, "sites (1x2): [(0,0) (3,0) (0,1) (3,1)]")
}

func TestScenarioRun_Invalid(t *testing.T) {
	g := safemode.New(safemode.NewConfig(true))

	_, err := Scenario{Cost: [][]float64{{1, 0}}, Targets: [][2]int{{0, 0}}}.Run(g)
	require.ErrorIs(t, err, grid.ErrInvalidCost)

	_, err = Scenario{Cost: [][]float64{{1}}, Targets: [][2]int{{0, 5}}}.Run(g)
	require.ErrorIs(t, err, grid.ErrOutOfBounds)

	_, err = Scenario{}.Run(g)
	require.ErrorIs(t, err, grid.ErrInvalidShape)

	neg := -1.0
	_, err = Scenario{Cost: [][]float64{{1}}, Starts: [][2]float64{{0, 0}}, SnapRadius: &neg}.Run(g)
	require.ErrorIs(t, err, grid.ErrInvalidArgument)

	nan := math.NaN()
	_, err = Scenario{Cost: [][]float64{{1}}, Starts: [][2]float64{{0, 0}}, SnapRadius: &nan}.Run(g)
	require.ErrorIs(t, err, grid.ErrInvalidArgument)
}

func TestScenarioRun_ExplicitZeroStrideRejected(t *testing.T) {
	body := sampleScenario + "  x_stride: 0\n"
	sc, err := LoadScenario(writeScenario(t, body))
	require.NoError(t, err)
	require.NotNil(t, sc.Placement.XStride)
	assert.Nil(t, sc.Placement.YStride)

	rep, err := sc.Run(safemode.New(safemode.NewConfig(true)))
	require.ErrorIs(t, err, grid.ErrInvalidArgument)
	assert.Empty(t, rep.Sites)

	sc, err = LoadScenario(writeScenario(t, sampleScenario+"  y_stride: 2\n"))
	require.NoError(t, err)
	rep, err = sc.Run(safemode.New(safemode.NewConfig(true)))
	require.NoError(t, err)
	assert.Equal(t, []placement.Origin{{X: 0, Y: 0}, {X: 3, Y: 0}}, rep.Sites)
}

func TestLayout(t *testing.T) {
	sc, err := LoadScenario(writeScenario(t, sampleScenario))
	require.NoError(t, err)
	rep, err := sc.Run(safemode.New(nil))
	require.NoError(t, err)

	cells := layout(rep)
	require.Len(t, cells, 3)
	require.Len(t, cells[0], 4)
	assert.Equal(t, '*', cells[0][3].r)
	assert.Equal(t, '█', cells[1][1].r)
	assert.Equal(t, 'o', cells[2][0].r)
}
