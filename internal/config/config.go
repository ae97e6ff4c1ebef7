// Package config loads generation settings from a YAML or JSON file with
// CRONOGRAMA_* environment overrides.
package config

import (
	"bytes"
	_ "embed"
	stdjson "encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"sync"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/santhosh-tekuri/jsonschema/v6"

	"github.com/rodrigofbmattos/gerar-cronograma/internal/duration"
	"github.com/rodrigofbmattos/gerar-cronograma/internal/export"
	"github.com/rodrigofbmattos/gerar-cronograma/internal/logger"
	"github.com/rodrigofbmattos/gerar-cronograma/internal/schedule"
	"github.com/rodrigofbmattos/gerar-cronograma/internal/source"
)

// EnvPrefix prefixes environment overrides. Nested keys use "__", e.g.
// CRONOGRAMA_SCHEDULE__WEEKLY_BLOCKS=5.
const EnvPrefix = "CRONOGRAMA_"

// DefaultOutputPath is the workbook written when no output is configured.
const DefaultOutputPath = "Cronograma De Estudos Intercalado Com Revisões Semanais e Mensais.xlsx"

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

//go:embed schema.json
var schemaJSON []byte

// Config is the full set of generation settings.
type Config struct {
	Subjects []source.Spec  `json:"subjects"`
	Schedule ScheduleConfig `json:"schedule"`
	Output   OutputConfig   `json:"output"`
	Log      logger.Config  `json:"log"`
	Store    StoreConfig    `json:"store"`
}

// ScheduleConfig holds the scheduling thresholds.
type ScheduleConfig struct {
	// BlockLimit is the block time budget as mm:ss or hh:mm:ss.
	BlockLimit      string `json:"block_limit"`
	WeeklyBlocks    int    `json:"weekly_blocks"`
	MonthlyWeeklies int    `json:"monthly_weeklies"`
	StrictDurations bool   `json:"strict_durations"`
}

// OutputConfig selects where and how the schedule is written.
type OutputConfig struct {
	Path   string `json:"path"`
	Format string `json:"format"`
	Sheet  string `json:"sheet"`
}

// StoreConfig locates the run history database.
type StoreConfig struct {
	// Path overrides the default database location when set.
	Path     string `json:"path"`
	Disabled bool   `json:"disabled"`
}

// SetDefaults fills every unset field.
func (c *Config) SetDefaults() {
	def := schedule.DefaultConfig()
	if c.Schedule.BlockLimit == "" {
		c.Schedule.BlockLimit = duration.Format(def.BlockLimit)
	}
	if c.Schedule.WeeklyBlocks == 0 {
		c.Schedule.WeeklyBlocks = def.WeeklyBlocks
	}
	if c.Schedule.MonthlyWeeklies == 0 {
		c.Schedule.MonthlyWeeklies = def.MonthlyWeeklies
	}
	if c.Output.Path == "" {
		c.Output.Path = DefaultOutputPath
	}
	if c.Output.Sheet == "" {
		c.Output.Sheet = export.DefaultSheet
	}
	c.Log.SetDefaults()
}

// Validate checks the settings after defaults are applied.
func (c *Config) Validate() error {
	if _, err := c.Schedule.Core(); err != nil {
		return fmt.Errorf("%w: schedule: %v", ErrInvalidConfig, err)
	}
	if _, err := export.FormatFor(c.Output.Path, c.Output.Format); err != nil {
		return fmt.Errorf("%w: output: %v", ErrInvalidConfig, err)
	}
	if err := c.Log.Validate(); err != nil {
		return fmt.Errorf("%w: log: %v", ErrInvalidConfig, err)
	}
	for i, s := range c.Subjects {
		if s.Path == "" {
			return fmt.Errorf("%w: subjects[%d]: path is required", ErrInvalidConfig, i)
		}
	}
	return nil
}

// Core converts the thresholds to a schedule.Config.
func (s ScheduleConfig) Core() (schedule.Config, error) {
	limit, ok := duration.ParseChecked(s.BlockLimit)
	if !ok {
		return schedule.Config{}, fmt.Errorf("block_limit %q is not mm:ss or hh:mm:ss", s.BlockLimit)
	}
	cfg := schedule.Config{
		BlockLimit:      limit,
		WeeklyBlocks:    s.WeeklyBlocks,
		MonthlyWeeklies: s.MonthlyWeeklies,
	}
	if err := cfg.Validate(); err != nil {
		return schedule.Config{}, err
	}
	return cfg, nil
}

// Load reads path (may be empty), applies environment overrides and
// defaults, and validates the result. The file itself is also checked
// against the embedded JSON schema.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	if path != "" {
		var parser koanf.Parser
		switch strings.ToLower(filepath.Ext(path)) {
		case ".yaml", ".yml":
			parser = yaml.Parser()
		case ".json":
			parser = json.Parser()
		default:
			return nil, fmt.Errorf("%w: unsupported config format %q", ErrInvalidConfig, filepath.Ext(path))
		}
		if err := k.Load(file.Provider(path), parser); err != nil {
			return nil, fmt.Errorf("load config: %w", err)
		}
		if err := validateDocument(k.Raw()); err != nil {
			return nil, err
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("load env: %w", err)
	}

	var cfg Config
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "json"}); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// envKey maps CRONOGRAMA_SCHEDULE__WEEKLY_BLOCKS to schedule.weekly_blocks.
func envKey(s string) string {
	s = strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	return strings.ReplaceAll(s, "__", ".")
}

var (
	schemaOnce     sync.Once
	compiledSchema *jsonschema.Schema
	schemaErr      error
)

func configSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(schemaJSON))
		if err != nil {
			schemaErr = fmt.Errorf("parse config schema: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		const url = "schema://cronograma-config.json"
		if err := c.AddResource(url, doc); err != nil {
			schemaErr = fmt.Errorf("add config schema: %w", err)
			return
		}
		compiledSchema, schemaErr = c.Compile(url)
	})
	return compiledSchema, schemaErr
}

// validateDocument checks a parsed config file against the schema. The
// value goes through JSON so numbers reach the validator as json.Number.
func validateDocument(raw map[string]any) error {
	sch, err := configSchema()
	if err != nil {
		return err
	}
	b, err := stdjson.Marshal(raw)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(b))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if err := sch.Validate(inst); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}
