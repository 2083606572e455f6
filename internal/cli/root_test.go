// Lottopick - Lotto Number Statistics and Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lottopick

package cli

import (
	"bytes"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tomtom215/lottopick/internal/history"
	"github.com/tomtom215/lottopick/internal/stats"
	lottosync "github.com/tomtom215/lottopick/internal/sync"
)

func TestRootCommand(t *testing.T) {
	cmd := NewRootCommand("test")
	require.NotNil(t, cmd)
	assert.Equal(t, "lottopick", cmd.Use)
	assert.Equal(t, "test", cmd.Version)
}

func TestCommandPresence(t *testing.T) {
	cmd := NewRootCommand("test")
	for _, name := range []string{"sync", "recommend", "stats", "serve"} {
		t.Run(name, func(t *testing.T) {
			sub, _, err := cmd.Find([]string{name})
			require.NoError(t, err)
			assert.Equal(t, name, sub.Name())
		})
	}
}

func TestGlobalFlags(t *testing.T) {
	cmd := NewRootCommand("test")

	format := cmd.PersistentFlags().Lookup("format")
	require.NotNil(t, format)
	assert.Equal(t, "text", format.DefValue)

	cfgFlag := cmd.PersistentFlags().Lookup("config")
	require.NotNil(t, cfgFlag)
	assert.Equal(t, "c", cfgFlag.Shorthand)

	require.NotNil(t, cmd.PersistentFlags().Lookup("log-level"))

	rec, _, err := cmd.Find([]string{"recommend"})
	require.NoError(t, err)
	count := rec.Flags().Lookup("count")
	require.NotNil(t, count)
	assert.Equal(t, "n", count.Shorthand)
}

// execute runs the root command with args against a data file in a temp dir.
func execute(t *testing.T, dataFile string, args ...string) (string, error) {
	t.Helper()
	t.Setenv("LOTTO_DATA_FILE", dataFile)
	t.Setenv("LOTTO_SEED", "42")

	var out, errOut bytes.Buffer
	cmd := NewRootCommand("test")
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func writeSampleHistory(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "lotto_winners.csv")
	require.NoError(t, history.NewStore(path).Save(sampleHistory(t)))
	return path
}

func TestInvalidFormat(t *testing.T) {
	_, err := execute(t, writeSampleHistory(t), "stats", "--format", "yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid format")
}

func TestInvalidLogLevel(t *testing.T) {
	_, err := execute(t, writeSampleHistory(t), "stats", "--log-level", "loud")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid log level")
}

func TestStatsCommand(t *testing.T) {
	path := writeSampleHistory(t)

	t.Run("text", func(t *testing.T) {
		out, err := execute(t, path, "stats")
		require.NoError(t, err)
		assert.Contains(t, out, "Draws analysed: 3")
		assert.Contains(t, out, "--- All numbers ---")
	})

	t.Run("json", func(t *testing.T) {
		out, err := execute(t, path, "stats", "--format", "json")
		require.NoError(t, err)

		var rep stats.FrequencyReport
		require.NoError(t, json.Unmarshal([]byte(out), &rep))
		assert.Equal(t, 3, rep.Draws)
		assert.Equal(t, 18, rep.Total)
		assert.Len(t, rep.Counts, 45)
		require.Len(t, rep.Top, 10)
		assert.Equal(t, 19, rep.Top[0].Number)
	})
}

func TestStatsCommandWithoutHistory(t *testing.T) {
	_, err := execute(t, filepath.Join(t.TempDir(), "missing.csv"), "stats")
	require.ErrorIs(t, err, history.ErrDataUnavailable)
}

func TestRecommendCommand(t *testing.T) {
	path := writeSampleHistory(t)

	t.Run("json", func(t *testing.T) {
		out, err := execute(t, path, "recommend", "-n", "3", "--format", "json")
		require.NoError(t, err)

		var rep RecommendationReport
		require.NoError(t, json.Unmarshal([]byte(out), &rep))
		assert.Equal(t, 3, rep.Requested)
		assert.Len(t, rep.Rationale, 6)
		assert.LessOrEqual(t, len(rep.Recommendations), 3)
		for _, a := range rep.Recommendations {
			assert.GreaterOrEqual(t, a.Sum, 100)
			assert.LessOrEqual(t, a.Sum, 200)
			assert.GreaterOrEqual(t, len(a.Sections), 3)
		}
	})

	t.Run("text", func(t *testing.T) {
		out, err := execute(t, path, "recommend", "-n", "2")
		require.NoError(t, err)
		assert.Contains(t, out, "--- Recommendations ---")
		assert.Contains(t, out, "--- Analysis ---")
	})

	t.Run("zero count", func(t *testing.T) {
		out, err := execute(t, path, "--format", "json", "recommend", "-n", "0")
		require.NoError(t, err)

		var rep RecommendationReport
		require.NoError(t, json.Unmarshal([]byte(out), &rep))
		assert.Equal(t, 0, rep.Requested)
		assert.Empty(t, rep.Recommendations)
		assert.Equal(t, 0, rep.Attempts)
	})

	t.Run("count out of range", func(t *testing.T) {
		for _, n := range []string{"-1", "11"} {
			_, err := execute(t, path, "recommend", "--count="+n)
			require.Error(t, err, "count %s", n)
			assert.Contains(t, err.Error(), "count must be between 0 and 10")
		}
	})

	t.Run("no history", func(t *testing.T) {
		_, err := execute(t, filepath.Join(t.TempDir(), "missing.csv"), "recommend")
		require.ErrorIs(t, err, history.ErrDataUnavailable)
	})
}

func roundPage(round int, balls ...int) string {
	var sb strings.Builder
	sb.WriteString(`<html><body><div class="win_result">`)
	fmt.Fprintf(&sb, `<h4><strong>%d회</strong> 당첨결과</h4><p>`, round)
	for _, b := range balls {
		fmt.Fprintf(&sb, `<span class="ball_645">%d</span>`, b)
	}
	sb.WriteString(`</p></div></body></html>`)
	return sb.String()
}

func TestSyncCommand(t *testing.T) {
	pages := map[string]string{
		"":  roundPage(5),
		"4": roundPage(4, 1, 9, 17, 25, 33, 41, 2),
		"5": roundPage(5, 2, 10, 18, 26, 34, 42, 3),
	}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		page, ok := pages[r.URL.Query().Get("drwNo")]
		if !ok {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write([]byte(page))
	}))
	defer srv.Close()

	t.Setenv("LOTTO_SOURCE_URL", srv.URL+"/gameResult.do?method=byWin")
	t.Setenv("LOTTO_REQUEST_DELAY", "200ms")

	path := writeSampleHistory(t)
	out, err := execute(t, path, "sync", "--format", "json")
	require.NoError(t, err)

	var report lottosync.Report
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	assert.Equal(t, 5, report.Latest)
	assert.Equal(t, 3, report.Saved)
	assert.Equal(t, []int{5, 4}, report.Fetched)
	assert.Equal(t, 5, report.Total)

	stored, err := history.NewStore(path).Load()
	require.NoError(t, err)
	require.Len(t, stored, 5)
	assert.Equal(t, [6]int{2, 10, 18, 26, 34, 42}, [6]int(stored[0]))
}
