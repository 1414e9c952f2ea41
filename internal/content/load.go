package content

import (
	_ "embed"
	"fmt"
	"os"
	"regexp"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultDocument []byte

// DefaultPath is the name reported for the embedded catalog.
const DefaultPath = "<embedded>/default.yaml"

var (
	yamlLineRegex = regexp.MustCompile(`line (\d+)`)

	defaultOnce    sync.Once
	defaultCatalog *Catalog
	defaultErr     error
)

// Default returns a copy of the catalog compiled into the binary.
func Default() (*Catalog, error) {
	defaultOnce.Do(func() {
		defaultCatalog, defaultErr = Parse(DefaultPath, defaultDocument)
	})
	if defaultErr != nil {
		return nil, defaultErr
	}
	return defaultCatalog.Clone(), nil
}

// LoadFile reads, decodes and validates a catalog from disk.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, NewParseError(path, 0, err)
	}
	return Parse(path, data)
}

// Load returns the catalog at path, or the embedded default when path is
// empty.
func Load(path string) (*Catalog, error) {
	if path == "" {
		return Default()
	}
	return LoadFile(path)
}

// Parse decodes and validates a catalog document. name is used in errors.
func Parse(name string, data []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, NewParseError(name, extractLine(err), err)
	}

	if err := Validate(&c); err != nil {
		return nil, err
	}

	return &c, nil
}

// Marshal encodes a catalog back into its YAML document form.
func Marshal(c *Catalog) ([]byte, error) {
	out, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("encode catalog: %w", err)
	}
	return out, nil
}

func extractLine(err error) int {
	if err == nil {
		return 0
	}

	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	var line int
	if _, scanErr := fmt.Sscanf(matches[1], "%d", &line); scanErr != nil {
		return 0
	}
	return line
}
