package cmd

import (
	"bytes"
	"io"

	"github.com/spf13/cobra"

	"github.com/rodrigofbmattos/gerar-cronograma/internal/app"
	"github.com/rodrigofbmattos/gerar-cronograma/internal/logger"
)

func newOrderCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "order [files...]",
		Short: "Arrange subjects in the terminal UI, then generate",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(cmd, args)
		},
	}
	cmd.Flags().StringP("output", "o", "", "Output file path")
	cmd.Flags().String("format", "", "Output format: xlsx, csv or json (default: from the output extension)")
	return cmd
}

// runTUI loads the subjects and opens the order screen.
func runTUI(cmd *cobra.Command, args []string) error {
	e, err := loadEnv(cmd)
	if err != nil {
		return err
	}
	if err := applyGenerateFlags(cmd, e); err != nil {
		return err
	}

	subjects, err := e.loadSubjects(e.specs(args))
	if err != nil {
		return err
	}

	runs, closeRuns, err := e.openRuns(cmd)
	if err != nil {
		e.log.Warn().Err(err).Msg("run history unavailable")
		runs, closeRuns = nil, func() {}
	}
	defer closeRuns()

	p, err := newPipeline(cmd, e, subjects, runs)
	if err != nil {
		return err
	}
	return p.runTUI()
}

// runTUI holds log output back while the alternate screen is active and
// replays it once the program exits.
func (p *pipeline) runTUI() error {
	var held bytes.Buffer
	saved := p.env.log
	if l, err := logger.New(&held, p.env.cfg.Log); err == nil {
		p.env.log = l
	}
	defer func() {
		p.env.log = saved
		io.Copy(p.cmd.ErrOrStderr(), &held)
	}()

	_, err := app.Run(app.Options{
		Subjects: p.order,
		Generate: p.generate,
		Runs:     p.runs,
	})
	return err
}
