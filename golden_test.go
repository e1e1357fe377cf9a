package nain_test

import (
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/nain-lang/go-nain"
	"github.com/nain-lang/go-nain/internal/testutil"
	"github.com/nain-lang/go-nain/token"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

var update = flag.Bool("update", false, "update golden files")

type goldenFile struct {
	Tokens      []goldenToken      `yaml:"tokens"`
	Diagnostics []goldenDiagnostic `yaml:"diagnostics,omitempty"`
}

type goldenToken struct {
	Type    string `yaml:"type"`
	Literal string `yaml:"literal,omitempty"`
	Pos     string `yaml:"pos"`
}

type goldenDiagnostic struct {
	Severity string `yaml:"severity"`
	Title    string `yaml:"title"`
	Message  string `yaml:"message"`
	Pos      string `yaml:"pos"`
}

func TestGolden(t *testing.T) {
	files, err := testutil.SourceFiles()
	require.NoError(t, err)
	require.NotEmpty(t, files)

	for _, file := range files {
		t.Run(file, func(t *testing.T) {
			src, err := testutil.ReadTestData(file)
			require.NoError(t, err)

			toks, rep, err := nain.Tokenize(file, src)
			require.NoError(t, err)

			var actual goldenFile
			for _, tok := range toks {
				actual.Tokens = append(actual.Tokens, goldenToken{
					Type:    string(tok.Type),
					Literal: tok.Literal,
					Pos:     tok.Pos().String(),
				})
			}
			for _, d := range rep.Diagnostics() {
				actual.Diagnostics = append(actual.Diagnostics, goldenDiagnostic{
					Severity: d.Severity.String(),
					Title:    d.Title,
					Message:  d.Message,
					Pos:      token.Position{Line: d.Line, Column: d.Column}.String(),
				})
			}

			goldenName := testutil.GoldenName(file)

			// The update flag can be used to regenerate the golden files.
			// To use it, run: go test . -update
			if *update {
				out, err := yaml.Marshal(actual)
				require.NoError(t, err)
				err = os.WriteFile(filepath.Join("internal", "testutil", "testdata", goldenName), out, 0o644)
				require.NoError(t, err)
				return
			}

			data, err := testutil.ReadTestData(goldenName)
			require.NoError(t, err, "Golden file not found. Run with -update to create it.")

			var expected goldenFile
			require.NoError(t, yaml.Unmarshal(data, &expected))
			require.Equal(t, expected, actual, "Token stream does not match golden file.")
		})
	}
}
