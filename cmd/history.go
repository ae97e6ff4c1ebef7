package cmd

import (
	"fmt"
	"io"
	"strings"

	"charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/table"
	"github.com/spf13/cobra"

	"github.com/rodrigofbmattos/gerar-cronograma/internal/duration"
	"github.com/rodrigofbmattos/gerar-cronograma/internal/store"
)

func newHistoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "List previously generated schedules",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			n, _ := cmd.Flags().GetInt("limit")
			return withRuns(cmd, func(runs store.RunRepo) error {
				list, err := runs.Recent(commandContext(cmd), store.QueryOpts{Limit: n})
				if err != nil {
					return err
				}
				printRuns(cmd.OutOrStdout(), list)
				return nil
			})
		},
	}
	cmd.Flags().IntP("limit", "n", 20, "Number of runs to show (0 = all)")

	cmd.AddCommand(&cobra.Command{
		Use:   "show <id>",
		Short: "Show one run in detail",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withRuns(cmd, func(runs store.RunRepo) error {
				run, err := runs.Get(commandContext(cmd), args[0])
				if err != nil {
					return err
				}
				if run == nil {
					return fmt.Errorf("no run with id %q", args[0])
				}
				printRun(cmd.OutOrStdout(), run)
				return nil
			})
		},
	})
	return cmd
}

func withRuns(cmd *cobra.Command, fn func(store.RunRepo) error) error {
	e, err := loadEnv(cmd)
	if err != nil {
		return err
	}
	if e.cfg.Store.Disabled {
		return fmt.Errorf("run history is disabled in the config")
	}
	runs, closeRuns, err := e.openRuns(cmd)
	if err != nil {
		return err
	}
	defer closeRuns()
	return fn(runs)
}

func printRuns(w io.Writer, runs []store.Run) {
	if len(runs) == 0 {
		fmt.Fprintln(w, "Nenhum cronograma gerado ainda.")
		return
	}
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("ID", "Data", "Matérias", "Dias", "Aulas", "Tempo", "Arquivo")
	for _, r := range runs {
		t.Row(
			r.ID,
			r.CreatedAt.Local().Format("2006-01-02 15:04"),
			strings.Join(r.Subjects, ", "),
			fmt.Sprint(r.Rows),
			fmt.Sprint(r.Lessons),
			duration.Format(r.TotalSeconds),
			r.OutputPath,
		)
	}
	fmt.Fprintln(w, t.String())
}

func printRun(w io.Writer, r *store.Run) {
	fmt.Fprintf(w, "ID: %s\n", r.ID)
	fmt.Fprintf(w, "Data: %s\n", r.CreatedAt.Local().Format("2006-01-02 15:04:05"))
	fmt.Fprintf(w, "Arquivo: %s\n", r.OutputPath)
	fmt.Fprintf(w, "Ordem: %s\n", strings.Join(r.Subjects, ", "))
	fmt.Fprintf(w, "Dias: %d (%d rodadas)\n", r.Rows, r.Rounds)
	fmt.Fprintf(w, "Aulas: %d (%s)\n", r.Lessons, duration.Format(r.TotalSeconds))
	fmt.Fprintf(w, "Blocos: %d\n", r.LessonBlocks)
	fmt.Fprintf(w, "Revisões semanais: %d\n", r.WeeklyReviews)
	fmt.Fprintf(w, "Revisões mensais: %d\n", r.MonthlyReviews)
	if r.InvalidDurations > 0 {
		fmt.Fprintf(w, "Durações inválidas: %d\n", r.InvalidDurations)
	}
}
