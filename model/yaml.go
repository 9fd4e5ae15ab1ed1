package model

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// catalogFile is the on-disk shape of a model catalog override file.
type catalogFile struct {
	Models []Descriptor `yaml:"models"`
}

// LoadCatalog parses descriptors from a YAML document:
//
//	models:
//	  - id: deepseek-chat
//	    provider: deepseek
//	    input_per_million: 0.27
//	    output_per_million: 1.10
//	    temperature_enabled: true
func LoadCatalog(r io.Reader) ([]Descriptor, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("model: read catalog: %w", err)
	}

	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("model: parse catalog: %w", err)
	}

	for _, d := range file.Models {
		if d.ID == "" {
			return nil, fmt.Errorf("model: catalog entry missing id")
		}
		if d.Provider == "" {
			return nil, fmt.Errorf("model: catalog entry %q missing provider", d.ID)
		}
	}
	return file.Models, nil
}

// LoadCatalogFile reads descriptors from a YAML file on disk.
func LoadCatalogFile(path string) ([]Descriptor, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("model: open catalog: %w", err)
	}
	defer f.Close()
	return LoadCatalog(f)
}
