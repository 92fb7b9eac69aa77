package models

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// TableConfig maps alert fields onto backend table and column names.
type TableConfig struct {
	Tablename            string `yaml:"tablename"`
	SymbolColumnName     string `yaml:"symbol_column_name"`
	PriceLevelColumnName string `yaml:"price_level_column_name"`
	UserIDColumnName     string `yaml:"user_id_column_name"`
	HashColumnName       string `yaml:"hash_column_name"`
	DirectionColumnName  string `yaml:"direction_column_name"`
}

func DefaultTableConfig() TableConfig {
	return TableConfig{
		Tablename:            "alerts",
		SymbolColumnName:     "symbol",
		PriceLevelColumnName: "price_level",
		UserIDColumnName:     "user_id",
		HashColumnName:       "hash",
		DirectionColumnName:  "initial_direction",
	}
}

func (c TableConfig) Validate() error {
	fields := []struct {
		name  string
		value string
	}{
		{"tablename", c.Tablename},
		{"symbol_column_name", c.SymbolColumnName},
		{"price_level_column_name", c.PriceLevelColumnName},
		{"user_id_column_name", c.UserIDColumnName},
		{"hash_column_name", c.HashColumnName},
		{"direction_column_name", c.DirectionColumnName},
	}
	for _, f := range fields {
		if f.value == "" {
			return fmt.Errorf("table config: %s must not be empty", f.name)
		}
	}
	return nil
}

// LoadTableConfig reads a YAML file on top of the defaults, so a file only needs
// the names that differ.
func LoadTableConfig(path string) (TableConfig, error) {
	cfg := DefaultTableConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read table config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("unmarshal table config yaml: %w", err)
	}
	return cfg, cfg.Validate()
}
