package testutil

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"
)

// TestdataFS holds the embedded test data files.
//
//go:embed testdata
var TestdataFS embed.FS

// ReadTestData reads and returns the content of an embedded test file.
func ReadTestData(name string) ([]byte, error) {
	path := fmt.Sprintf("testdata/%s", name)
	data, err := fs.ReadFile(TestdataFS, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read test data file '%s': %w", name, err)
	}
	return data, nil
}

// SourceFiles returns the names of the embedded Nain source files.
func SourceFiles() ([]string, error) {
	paths, err := fs.Glob(TestdataFS, "testdata/*.nain")
	if err != nil {
		return nil, err
	}
	names := make([]string, len(paths))
	for i, p := range paths {
		names[i] = strings.TrimPrefix(p, "testdata/")
	}
	return names, nil
}

// GoldenName returns the name of the golden file paired with a source file.
func GoldenName(source string) string {
	return strings.TrimSuffix(source, ".nain") + ".golden.yaml"
}
