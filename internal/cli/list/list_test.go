package list

import (
	"bytes"
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/require"

	"github.com/GustavoCaso/carlot/internal/config"
	"github.com/GustavoCaso/carlot/internal/testutil"
)

func runList(t *testing.T, args ...string) string {
	t.Helper()

	color.NoColor = true

	document := filepath.Join(t.TempDir(), "catalog.html")
	require.NoError(t, os.WriteFile(document, []byte(testutil.SampleDocument), 0600))

	logger := testutil.TestLogger(t)
	stor := testutil.SetupTestStorage(t, logger)

	out := &bytes.Buffer{}
	cmd := &listCommand{out: out}

	fs := flag.NewFlagSet("list", flag.ContinueOnError)
	cmd.SetFlags(fs)
	require.NoError(t, fs.Parse(append([]string{"-f", document}, args...)))

	require.NoError(t, cmd.Run(stor, config.Default(), logger))

	return out.String()
}

func TestSetFlags(t *testing.T) {
	cmd := NewCommand()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cmd.SetFlags(fs)

	for _, name := range []string{"f", "q", "min", "max"} {
		require.NotNil(t, fs.Lookup(name), "flag %s", name)
	}
}

func TestRun(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		expected []string
		count    string
	}{
		{
			name:     "no filters",
			expected: []string{"Toyota Corolla", "Honda Civic", "Toyota Camry"},
			count:    "Results: 3",
		},
		{
			name:     "query",
			args:     []string{"-q", "toyota"},
			expected: []string{"Toyota Corolla", "Toyota Camry"},
			count:    "Results: 2",
		},
		{
			name:     "price range",
			args:     []string{"-min", "16000", "-max", "25000"},
			expected: []string{"Toyota Corolla"},
			count:    "Results: 1",
		},
		{
			name:     "query and max",
			args:     []string{"-q", "civic", "-max", "10000"},
			expected: nil,
			count:    "Results: 0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := runList(t, tt.args...)

			lines := strings.Split(strings.TrimSpace(out), "\n")
			cards := []string{}
			for _, line := range lines {
				if strings.HasPrefix(line, "Results:") || line == "No results" {
					continue
				}
				title, _, _ := strings.Cut(line, " (")
				cards = append(cards, title)
			}

			if tt.expected == nil {
				require.Empty(t, cards)
				require.Contains(t, out, "No results")
			} else {
				require.Equal(t, tt.expected, cards)
				require.NotContains(t, out, "No results")
			}
			require.Contains(t, out, tt.count)
		})
	}
}

func TestRunPriceFormatting(t *testing.T) {
	out := runList(t, "-q", "corolla")
	require.Contains(t, out, "Toyota Corolla (Toyota Corolla) $20,000")
}

func TestRunWithoutCatalog(t *testing.T) {
	logger := testutil.TestLogger(t)
	stor := testutil.SetupTestStorage(t, logger)

	cmd := &listCommand{out: &bytes.Buffer{}}
	require.Error(t, cmd.Run(stor, config.Default(), logger))
}
