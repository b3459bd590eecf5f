// Public domain.

package necam

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/necam-obs/ingest/registry"
)

// ColumnType is a registry column's storage type.
type ColumnType string

const (
	ColumnText   ColumnType = "text"
	ColumnDouble ColumnType = "double"
)

// ParseConfig declares how registry fields are extracted from a header:
// direct keyword copies and named translator hooks.
type ParseConfig struct {
	// Translation maps registry field name to header keyword.
	Translation map[string]string `yaml:"translation"`

	// Translators maps registry field name to the hook computing it.
	Translators map[string]string `yaml:"translators"`
}

// RegisterConfig declares the shape of the ingest registry.
type RegisterConfig struct {
	// Visit lists the fields grouping detector readouts into visits.
	Visit []string `yaml:"visit"`

	// Unique lists the fields no two registry rows may share.
	Unique []string `yaml:"unique"`

	// Columns is the registry column schema.
	Columns map[string]ColumnType `yaml:"columns"`
}

// IngestConfig is the full declarative ingest configuration.
type IngestConfig struct {
	Parse    ParseConfig    `yaml:"parse"`
	Register RegisterConfig `yaml:"register"`
}

// DefaultIngestConfig returns the stock NeCam configuration.
func DefaultIngestConfig() IngestConfig {
	return IngestConfig{
		Parse: ParseConfig{
			Translation: map[string]string{
				"dataType": "IMGTYPE",
				"expTime":  "EXPTIME",
				"ccd":      "INSTRUME",
				"frameId":  "RUN-ID",
				"visit":    "RUN-ID",
				"filter":   "FILTER",
				"field":    "OBJECT",
			},
			Translators: map[string]string{
				"dateObs": "translate_Date",
				"taiObs":  "translate_Date",
			},
		},
		Register: RegisterConfig{
			Visit:  []string{"visit", "ccd", "filter", "dateObs", "taiObs"},
			Unique: []string{"visit", "ccd", "filter"},
			Columns: map[string]ColumnType{
				"frameId":  ColumnText,
				"visit":    ColumnText,
				"ccd":      ColumnText,
				"filter":   ColumnText,
				"dataType": ColumnText,
				"expTime":  ColumnDouble,
				"dateObs":  ColumnText,
				"taiObs":   ColumnText,
				"field":    ColumnText,
			},
		},
	}
}

// LoadIngestConfig returns the default configuration overlaid with the YAML
// file at path.  An empty path returns the defaults unchanged.
func LoadIngestConfig(path string) (IngestConfig, error) {
	cfg := DefaultIngestConfig()
	if path == "" {
		return cfg, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, errors.Wrapf(err, "unable to read config %s", path)
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, errors.Wrapf(err, "unable to parse config %s", path)
	}
	return cfg, nil
}

// RegistryConfig shapes the register section for the registry package.
func (c IngestConfig) RegistryConfig() registry.Config {
	cols := make(map[string]string, len(c.Register.Columns))
	for name, typ := range c.Register.Columns {
		cols[name] = string(typ)
	}
	return registry.Config{
		Columns: cols,
		Unique:  append([]string{}, c.Register.Unique...),
		Visit:   append([]string{}, c.Register.Visit...),
	}
}

// Validate checks the configuration's internal consistency: every visit and
// uniqueness key appears in the column schema, every translated field has a
// column, and every hook name resolves in hooks.
func (c IngestConfig) Validate(hooks map[string]Hook) error {
	for _, key := range c.Register.Visit {
		if _, ok := c.Register.Columns[key]; !ok {
			return errors.Errorf("necam: visit key %s not in column schema", key)
		}
	}
	for _, key := range c.Register.Unique {
		if _, ok := c.Register.Columns[key]; !ok {
			return errors.Errorf("necam: unique key %s not in column schema", key)
		}
	}
	for field := range c.Parse.Translation {
		if _, ok := c.Register.Columns[field]; !ok {
			return errors.Errorf("necam: translated field %s not in column schema", field)
		}
	}
	for field, hook := range c.Parse.Translators {
		if _, ok := c.Register.Columns[field]; !ok {
			return errors.Errorf("necam: translated field %s not in column schema", field)
		}
		if _, ok := hooks[hook]; !ok {
			return errors.Errorf("necam: field %s names unknown hook %s", field, hook)
		}
	}
	for col, typ := range c.Register.Columns {
		if typ != ColumnText && typ != ColumnDouble {
			return errors.Errorf("necam: column %s has unknown type %q", col, typ)
		}
	}
	return nil
}
