package dataset

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vdobler/boxwhisker"
)

const yamlData = `
title: Response times
goal: 900
groups:
  - label: Test 1
    points: [850, 740, 900, 1070]
  - label: Test 2
    summary: {q1: 800, median: 845, q3: 885, lowWhisker: 788.5, highWhisker: 960}
    outliers: [760, 960]
`

const tomlData = `
title = "Response times"
goal = 900.0

[[groups]]
label = "Test 1"
points = [850.0, 740.0, 900.0, 1070.0]

[[groups]]
label = "Test 2"
outliers = [760.0, 960.0]

[groups.summary]
q1 = 800.0
median = 845.0
q3 = 885.0
lowWhisker = 788.5
highWhisker = 960.0
`

func checkDataset(t *testing.T, d *Dataset) {
	t.Helper()
	assert.Equal(t, "Response times", d.Title)
	require.NotNil(t, d.Goal)
	assert.Equal(t, 900.0, *d.Goal)
	require.Len(t, d.Series, 2)

	groups, err := d.Groups()
	require.NoError(t, err)
	require.Len(t, groups, 2)
	assert.Equal(t, boxwhisker.Observations{850, 740, 900, 1070}, groups[0].Values)

	pre, ok := groups[1].Values.(boxwhisker.Precomputed)
	require.True(t, ok)
	assert.Equal(t, 845.0, pre.Summary.Median)
	assert.Equal(t, 788.5, pre.Summary.LowWhisker)
	assert.Equal(t, []float64{760, 960}, pre.Outliers)
	assert.False(t, pre.Summary.HasMean())
	assert.True(t, math.IsNaN(pre.Summary.Minimum))
}

func TestReadYAML(t *testing.T) {
	d, err := Read(strings.NewReader(yamlData), YAML)
	require.NoError(t, err)
	checkDataset(t, d)
}

func TestReadTOML(t *testing.T) {
	d, err := Read(strings.NewReader(tomlData), TOML)
	require.NoError(t, err)
	checkDataset(t, d)
}

func TestOpen(t *testing.T) {
	dir := t.TempDir()
	for name, content := range map[string]string{"data.yml": yamlData, "data.toml": tomlData} {
		fn := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(fn, []byte(content), 0o644))
		d, err := Open(fn)
		require.NoError(t, err, name)
		checkDataset(t, d)
	}

	_, err := Open(filepath.Join(dir, "data.csv"))
	assert.Error(t, err)
	_, err = Open(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}

func TestReadErrors(t *testing.T) {
	_, err := Read(strings.NewReader("groups: [1, 2"), YAML)
	assert.Error(t, err)

	d, err := Read(strings.NewReader("groups:\n  - label: lonely\n"), YAML)
	require.NoError(t, err)
	_, err = d.Groups()
	assert.True(t, errors.Is(err, ErrNoValues))
}

func TestPlayground(t *testing.T) {
	groups, err := Playground().Groups()
	require.NoError(t, err)
	require.Len(t, groups, 5)
	for _, g := range groups {
		assert.Len(t, g.Values, 20, g.Label)
	}
}

func TestOptionalSummaryStatistics(t *testing.T) {
	const data = `
groups:
  - label: with mean
    summary: {q1: 1, median: 2, q3: 3, lowWhisker: 0.5, highWhisker: 4, mean: 0, minimum: -5}
`
	d, err := Read(strings.NewReader(data), YAML)
	require.NoError(t, err)
	groups, err := d.Groups()
	require.NoError(t, err)
	s := groups[0].Values.(boxwhisker.Precomputed).Summary
	assert.True(t, s.HasMean())
	assert.Equal(t, 0.0, s.Mean)
	assert.Equal(t, -5.0, s.Minimum)
	assert.True(t, math.IsNaN(s.Maximum))

	m, err := boxwhisker.BuildModel(groups[0], boxwhisker.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, -5.0, m.Summary.Minimum)
	assert.Equal(t, 4.0, m.Summary.Maximum)
}
