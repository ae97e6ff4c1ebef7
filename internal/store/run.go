package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
)

const runsTable = "runs"

var runColumns = []string{
	"id", "created_at", "subjects", "lessons", "invalid_durations",
	"lesson_blocks", "weekly_reviews", "monthly_reviews", "rows_total",
	"rounds", "total_seconds", "output_path",
}

// runRepo implements RunRepo on SQLite. Queries are built with ent's SQL
// builder; the schema is a single hand-written table.
type runRepo struct {
	db *sql.DB
}

func builder() *entsql.DialectBuilder {
	return entsql.Dialect(dialect.SQLite)
}

func (r *runRepo) Append(ctx context.Context, run Run) error {
	subjects, err := json.Marshal(run.Subjects)
	if err != nil {
		return fmt.Errorf("marshal subjects: %w", err)
	}
	if run.CreatedAt.IsZero() {
		run.CreatedAt = time.Now()
	}

	query, args := builder().Insert(runsTable).
		Columns(runColumns...).
		Values(
			run.ID, run.CreatedAt.UTC().UnixMilli(), string(subjects), run.Lessons, run.InvalidDurations,
			run.LessonBlocks, run.WeeklyReviews, run.MonthlyReviews, run.Rows,
			run.Rounds, run.TotalSeconds, run.OutputPath,
		).
		Query()
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("save run: %w", err)
	}
	return nil
}

func (r *runRepo) Recent(ctx context.Context, opts QueryOpts) ([]Run, error) {
	sel := builder().Select(runColumns...).
		From(entsql.Table(runsTable)).
		OrderBy(entsql.Desc("seq"))

	var preds []*entsql.Predicate
	if !opts.From.IsZero() {
		preds = append(preds, entsql.GTE("created_at", opts.From.UTC().UnixMilli()))
	}
	if !opts.To.IsZero() {
		preds = append(preds, entsql.LTE("created_at", opts.To.UTC().UnixMilli()))
	}
	if len(preds) > 0 {
		sel = sel.Where(entsql.And(preds...))
	}
	if opts.Limit > 0 {
		sel = sel.Limit(opts.Limit)
	}

	query, args := sel.Query()
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, *run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate runs: %w", err)
	}
	return runs, nil
}

func (r *runRepo) Get(ctx context.Context, id string) (*Run, error) {
	query, args := builder().Select(runColumns...).
		From(entsql.Table(runsTable)).
		Where(entsql.EQ("id", id)).
		Query()

	run, err := scanRun(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return run, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRun(s scanner) (*Run, error) {
	var (
		run      Run
		created  int64
		subjects string
	)
	err := s.Scan(
		&run.ID, &created, &subjects, &run.Lessons, &run.InvalidDurations,
		&run.LessonBlocks, &run.WeeklyReviews, &run.MonthlyReviews, &run.Rows,
		&run.Rounds, &run.TotalSeconds, &run.OutputPath,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan run: %w", err)
	}
	if err := json.Unmarshal([]byte(subjects), &run.Subjects); err != nil {
		return nil, fmt.Errorf("unmarshal subjects: %w", err)
	}
	run.CreatedAt = time.UnixMilli(created).UTC()
	return &run, nil
}
