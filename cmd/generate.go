package cmd

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rodrigofbmattos/gerar-cronograma/internal/duration"
	"github.com/rodrigofbmattos/gerar-cronograma/internal/export"
	"github.com/rodrigofbmattos/gerar-cronograma/internal/logger"
	"github.com/rodrigofbmattos/gerar-cronograma/internal/ordering"
	"github.com/rodrigofbmattos/gerar-cronograma/internal/schedule"
	"github.com/rodrigofbmattos/gerar-cronograma/internal/store"
)

func newGenerateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate [files...]",
		Short: "Build the schedule and write it to a spreadsheet",
		Long: "generate reads one CSV per subject (columns Aula;Subtítulo;Vídeo;Videoaula;Duração),\n" +
			"interleaves their lessons and writes the schedule as xlsx, csv or json.\n" +
			"Subjects keep the order given unless --order, --prompt or --tui changes it.",
		RunE: runGenerate,
	}

	f := cmd.Flags()
	f.StringP("output", "o", "", "Output file path")
	f.String("format", "", "Output format: xlsx, csv or json (default: from the output extension)")
	f.String("order", "", "Subject order as 1-based positions, e.g. 2,1,3")
	f.Bool("prompt", false, "Print the subject list and read the order from stdin")
	f.Bool("tui", false, "Arrange subjects in the terminal UI before generating")
	f.Bool("strict", false, "Fail on malformed lesson durations instead of counting them as zero")
	f.String("block-limit", "", "Maximum block length as mm:ss or hh:mm:ss")
	return cmd
}

func runGenerate(cmd *cobra.Command, args []string) error {
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
		// History is optional; log but don't fail.
		e.log.Warn().Err(err).Msg("run history unavailable")
		runs, closeRuns = nil, func() {}
	}
	defer closeRuns()

	p, err := newPipeline(cmd, e, subjects, runs)
	if err != nil {
		return err
	}

	if tui, _ := cmd.Flags().GetBool("tui"); tui {
		return p.runTUI()
	}

	order := names(subjects)
	if text, _ := cmd.Flags().GetString("order"); text != "" {
		if order, err = reorder(order, text); err != nil {
			return err
		}
	}
	if prompt, _ := cmd.Flags().GetBool("prompt"); prompt {
		if order, err = promptOrder(cmd.InOrStdin(), cmd.OutOrStdout(), order); err != nil {
			return err
		}
	}

	res, out, err := p.generate(order)
	if err != nil {
		return err
	}
	printSummary(cmd.OutOrStdout(), res, out)
	return nil
}

// applyGenerateFlags copies explicitly set flags over the config and
// re-validates it.
func applyGenerateFlags(cmd *cobra.Command, e *env) error {
	f := cmd.Flags()
	if f.Changed("output") {
		e.cfg.Output.Path, _ = f.GetString("output")
		if !f.Changed("format") {
			e.cfg.Output.Format = ""
		}
	}
	if f.Changed("format") {
		e.cfg.Output.Format, _ = f.GetString("format")
	}
	if f.Changed("strict") {
		e.cfg.Schedule.StrictDurations, _ = f.GetBool("strict")
	}
	if f.Changed("block-limit") {
		e.cfg.Schedule.BlockLimit, _ = f.GetString("block-limit")
	}
	return e.cfg.Validate()
}

// pipeline builds, writes and records one schedule for a subject order.
type pipeline struct {
	cmd      *cobra.Command
	env      *env
	subjects map[string]schedule.Subject
	order    []string
	core     schedule.Config
	format   export.Format
	runs     store.RunRepo
}

func newPipeline(cmd *cobra.Command, e *env, subjects []schedule.Subject, runs store.RunRepo) (*pipeline, error) {
	core, err := e.cfg.Schedule.Core()
	if err != nil {
		return nil, err
	}
	format, err := export.FormatFor(e.cfg.Output.Path, e.cfg.Output.Format)
	if err != nil {
		return nil, err
	}
	byName := make(map[string]schedule.Subject, len(subjects))
	for _, s := range subjects {
		byName[s.Name] = s
	}
	return &pipeline{
		cmd:      cmd,
		env:      e,
		subjects: byName,
		order:    names(subjects),
		core:     core,
		format:   format,
		runs:     runs,
	}, nil
}

// generate schedules the named subjects in order, writes the output file
// and appends the run to the history.
func (p *pipeline) generate(order []string) (*schedule.Result, string, error) {
	subjects := make([]schedule.Subject, 0, len(order))
	for _, name := range order {
		s, ok := p.subjects[name]
		if !ok {
			return nil, "", fmt.Errorf("unknown subject %q", name)
		}
		subjects = append(subjects, s)
	}

	res, err := schedule.Build(subjects,
		schedule.WithConfig(p.core),
		schedule.WithLogger(logger.Component(p.env.log, "schedule")),
	)
	if err != nil {
		return nil, "", err
	}

	out := p.env.cfg.Output.Path
	sink, err := export.New(p.format, p.env.cfg.Output.Sheet)
	if err != nil {
		return nil, "", err
	}
	if err := export.WriteFile(out, sink, res.Rows); err != nil {
		return nil, "", err
	}
	p.env.log.Info().Str("path", out).Str("format", string(p.format)).Int("rows", len(res.Rows)).Msg("schedule written")

	p.record(res, out)
	return res, out, nil
}

// record appends res to the run history. Failures are logged only.
func (p *pipeline) record(res *schedule.Result, out string) {
	if p.runs == nil {
		return
	}
	st := res.Stats
	run := store.Run{
		ID:               res.ID.String(),
		Subjects:         res.SubjectNames(),
		Lessons:          st.Lessons,
		InvalidDurations: st.InvalidDurations,
		LessonBlocks:     st.LessonBlocks,
		WeeklyReviews:    st.WeeklyReviews,
		MonthlyReviews:   st.MonthlyReviews,
		Rows:             st.Rows,
		Rounds:           res.Rounds,
		TotalSeconds:     st.Seconds,
		OutputPath:       out,
	}
	if err := p.runs.Append(commandContext(p.cmd), run); err != nil {
		l := logger.Component(p.env.log, "store")
		l.Warn().Err(err).Str("run", run.ID).Msg("failed to record run")
	}
}

func names(subjects []schedule.Subject) []string {
	out := make([]string, len(subjects))
	for i, s := range subjects {
		out[i] = s.Name
	}
	return out
}

// reorder applies a typed order such as "2,1,3" to current.
func reorder(current []string, text string) ([]string, error) {
	idx, err := ordering.Parse(text, len(current))
	if err != nil {
		return nil, err
	}
	list := ordering.NewList(current)
	if err := list.Apply(idx); err != nil {
		return nil, err
	}
	return list.Items(), nil
}

// promptOrder lists current on w and reads one order line from r. An empty
// line keeps the current order.
func promptOrder(r io.Reader, w io.Writer, current []string) ([]string, error) {
	fmt.Fprintln(w, "Matérias:")
	for i, name := range current {
		fmt.Fprintf(w, "  %d. %s\n", i+1, name)
	}
	fmt.Fprint(w, "Ordem (ex.: 2, 1, 3; Enter mantém): ")

	sc := bufio.NewScanner(r)
	line := ""
	if sc.Scan() {
		line = sc.Text()
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read order: %w", err)
	}
	fmt.Fprintln(w)
	return reorder(current, strings.TrimSpace(line))
}

func printSummary(w io.Writer, res *schedule.Result, out string) {
	st := res.Stats
	fmt.Fprintf(w, "Cronograma salvo em %s\n", out)
	fmt.Fprintf(w, "  %d dias, %d aulas, %s de estudo\n", st.Rows, st.Lessons, duration.Format(st.Seconds))
	fmt.Fprintf(w, "  %d blocos, %d revisões semanais, %d revisões mensais\n",
		st.LessonBlocks, st.WeeklyReviews, st.MonthlyReviews)
	if st.InvalidDurations > 0 {
		fmt.Fprintf(w, "  %d aulas com duração inválida contadas como 00:00:00\n", st.InvalidDurations)
	}
	for _, ss := range st.Subjects {
		fmt.Fprintf(w, "  - %s: %d aulas em %d blocos (%s)\n",
			ss.Name, ss.Lessons, ss.Blocks, duration.Format(ss.Seconds))
	}
}
