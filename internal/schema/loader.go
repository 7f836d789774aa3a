package schema

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type catalogFile struct {
	Tables []TableDef `yaml:"tables"`
}

// LoadCatalog reads table definitions from a YAML file of the form
//
//	tables:
//	  - name: train
//	    columns:
//	      - train_id BIGINT
//	      - train_name VARCHAR(100)
func LoadCatalog(path string) ([]TableDef, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog: %w", err)
	}
	return ParseCatalog(data)
}

// ParseCatalog decodes YAML catalog content. Order of tables and columns is kept.
func ParseCatalog(data []byte) ([]TableDef, error) {
	var f catalogFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}
	if len(f.Tables) == 0 {
		return nil, ErrEmptyCatalog
	}
	return f.Tables, nil
}
