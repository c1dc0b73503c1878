package pipeline

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var aggregateFiles = []string{
	"map_data.json",
	"time_analysis.json",
	"evidence_analysis.json",
	"location_analysis.json",
	"correlation_data.json",
	"air_pollution.json",
}

func writeTSV(t *testing.T, lines ...string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "places.tsv")
	require.NoError(t, os.WriteFile(path, []byte(strings.Join(lines, "\n")), 0o644))
	return path
}

func TestPipelineRun(t *testing.T) {
	t.Parallel()

	t.Run("produces all six aggregate files", func(t *testing.T) {
		t.Parallel()
		tsv := writeTSV(t,
			"location\tstate\tcountry\tdescription\tdate\tlatitude\tlongitude",
			"Old Mill\tcalifornia\tUnited States\ta shadow figure appeared near midnight\t1990-01-01\t34.0\t-118.0",
			"Dry Well\ttexas\tUnited States\ta cold chill\t1991-06-01\t31.0\t-97.0",
		)
		outDir := t.TempDir()

		p := &Pipeline{OutputDir: outDir}
		result, err := p.Run(tsv)
		require.NoError(t, err)
		assert.Equal(t, 2, result.RecordCount)
		assert.Empty(t, result.Degraded)

		for _, name := range aggregateFiles {
			data, err := os.ReadFile(filepath.Join(outDir, name))
			require.NoError(t, err, "missing %s", name)
			assert.True(t, json.Valid(data), "%s is not valid JSON", name)
		}

		// No staging leftovers.
		entries, err := os.ReadDir(outDir)
		require.NoError(t, err)
		assert.Len(t, entries, len(aggregateFiles))
	})

	t.Run("documents are indented with four spaces", func(t *testing.T) {
		t.Parallel()
		tsv := writeTSV(t,
			"latitude\tlongitude\tstate",
			"34.0\t-118.0\tcalifornia",
		)
		outDir := t.TempDir()

		_, err := (&Pipeline{OutputDir: outDir}).Run(tsv)
		require.NoError(t, err)

		data, err := os.ReadFile(filepath.Join(outDir, "map_data.json"))
		require.NoError(t, err)
		assert.Contains(t, string(data), "\n    \"map_data\"")
	})

	t.Run("map records reflect the scenario row", func(t *testing.T) {
		t.Parallel()
		tsv := writeTSV(t,
			"latitude\tlongitude\tstate\tdescription",
			"34.0\t-118.0\tcalifornia\ta shadow figure appeared near midnight",
		)
		outDir := t.TempDir()

		_, err := (&Pipeline{OutputDir: outDir}).Run(tsv)
		require.NoError(t, err)

		var mapDoc struct {
			MapData []struct {
				Evidence string `json:"evidence"`
			} `json:"map_data"`
		}
		data, err := os.ReadFile(filepath.Join(outDir, "map_data.json"))
		require.NoError(t, err)
		require.NoError(t, json.Unmarshal(data, &mapDoc))
		require.Len(t, mapDoc.MapData, 1)
		assert.Contains(t, mapDoc.MapData[0].Evidence, "Visual")

		var locDoc struct {
			RegionCounts []struct {
				Region string `json:"region"`
				Count  int    `json:"count"`
			} `json:"region_counts"`
		}
		data, err = os.ReadFile(filepath.Join(outDir, "location_analysis.json"))
		require.NoError(t, err)
		require.NoError(t, json.Unmarshal(data, &locDoc))
		require.Len(t, locDoc.RegionCounts, 1)
		assert.Equal(t, "West", locDoc.RegionCounts[0].Region)
		assert.Equal(t, 1, locDoc.RegionCounts[0].Count)
	})

	t.Run("empty input yields six valid degenerate files", func(t *testing.T) {
		t.Parallel()
		tsv := writeTSV(t, "latitude\tlongitude\tstate")
		outDir := t.TempDir()

		result, err := (&Pipeline{OutputDir: outDir}).Run(tsv)
		require.NoError(t, err)
		assert.Equal(t, 0, result.RecordCount)

		for _, name := range aggregateFiles {
			data, err := os.ReadFile(filepath.Join(outDir, name))
			require.NoError(t, err)
			assert.True(t, json.Valid(data))
		}
	})

	t.Run("rerunning on unchanged input is idempotent", func(t *testing.T) {
		t.Parallel()
		tsv := writeTSV(t,
			"latitude\tlongitude\tstate\tdescription\tdate",
			"34.0\t-118.0\tcalifornia\ta voice\t1990-01-01",
			"31.0\t-97.0\ttexas\ta shadow\t1991-01-01",
		)
		outDir := t.TempDir()
		p := &Pipeline{OutputDir: outDir}

		_, err := p.Run(tsv)
		require.NoError(t, err)
		first := make(map[string]string)
		for _, name := range aggregateFiles {
			data, err := os.ReadFile(filepath.Join(outDir, name))
			require.NoError(t, err)
			first[name] = string(data)
		}

		_, err = p.Run(tsv)
		require.NoError(t, err)
		for _, name := range aggregateFiles {
			data, err := os.ReadFile(filepath.Join(outDir, name))
			require.NoError(t, err)
			assert.Equal(t, first[name], string(data), "%s changed between runs", name)
		}
	})

	t.Run("unreadable input propagates the load error", func(t *testing.T) {
		t.Parallel()
		p := &Pipeline{OutputDir: t.TempDir()}
		_, err := p.Run(filepath.Join(t.TempDir(), "does-not-exist.tsv"))
		assert.Error(t, err)
	})
}
