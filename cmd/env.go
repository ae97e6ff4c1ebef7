package cmd

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/rodrigofbmattos/gerar-cronograma/internal/config"
	"github.com/rodrigofbmattos/gerar-cronograma/internal/logger"
	"github.com/rodrigofbmattos/gerar-cronograma/internal/schedule"
	"github.com/rodrigofbmattos/gerar-cronograma/internal/source"
	"github.com/rodrigofbmattos/gerar-cronograma/internal/store"
)

// env is the loaded configuration and logger shared by every command.
type env struct {
	cfg *config.Config
	log zerolog.Logger
}

// loadEnv reads --config and the environment, then builds the logger.
func loadEnv(cmd *cobra.Command) (*env, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	if lvl, _ := cmd.Flags().GetString("log-level"); lvl != "" {
		cfg.Log.Level = lvl
	}
	log, err := logger.New(cmd.ErrOrStderr(), cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("logger: %w", err)
	}
	return &env{cfg: cfg, log: log}, nil
}

// specs returns subject files from args, falling back to the config file.
func (e *env) specs(args []string) []source.Spec {
	if len(args) == 0 {
		return e.cfg.Subjects
	}
	specs := make([]source.Spec, len(args))
	for i, a := range args {
		specs[i] = source.Spec{Path: a}
	}
	return specs
}

// loadSubjects reads specs. Skipped duplicates and malformed durations are
// logged as warnings.
func (e *env) loadSubjects(specs []source.Spec) ([]schedule.Subject, error) {
	if len(specs) == 0 {
		return nil, fmt.Errorf("no subject files given: pass CSV paths or list them under subjects in the config")
	}
	opts := source.DefaultOptions()
	opts.Strict = e.cfg.Schedule.StrictDurations

	subjects, report, err := source.LoadAll(specs, opts)
	if err != nil {
		return nil, err
	}

	log := logger.Component(e.log, "source")
	for _, path := range report.Duplicates {
		log.Warn().Str("path", path).Msg("subject already loaded, skipping file")
	}
	for _, is := range report.Issues {
		log.Warn().
			Str("subject", is.Subject).
			Int("line", is.Line).
			Str("lesson", is.Lesson).
			Str("duration", is.Text).
			Msg("malformed duration counted as 00:00:00")
	}
	log.Debug().Int("subjects", len(subjects)).Msg("subjects loaded")
	return subjects, nil
}

// openRuns opens the run history store. It returns a nil repo when the
// store is disabled in the config.
func (e *env) openRuns(cmd *cobra.Command) (store.RunRepo, func(), error) {
	if e.cfg.Store.Disabled {
		return nil, func() {}, nil
	}
	dbPath, err := e.resolveDBPath(cmd)
	if err != nil {
		return nil, nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, nil, fmt.Errorf("open store: %w", err)
	}
	return st.RunRepo(), func() { st.Close() }, nil
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then the config file, then CRONOGRAMA_DB env var and the default XDG path.
func (e *env) resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	if p := e.cfg.Store.Path; p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
