package reports_repo

import (
	"context"
	"encoding/json"
	"fmt"

	"returnhub/internal/domain/analysis"
	"returnhub/pkg/postgres"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type PgReportRepo struct {
	db      postgres.Executor
	builder squirrel.StatementBuilderType
}

var _ analysis.ReportRepo = (*PgReportRepo)(nil)

func NewPgReportRepo(pg *postgres.Postgres) *PgReportRepo {
	return &PgReportRepo{db: pg.Pool, builder: pg.Builder}
}

// Save upserts keyed by month, so regenerating a report replaces the
// previous one.
func (r *PgReportRepo) Save(ctx context.Context, report analysis.Report) (analysis.Report, error) {
	if report.ID == "" {
		report.ID = uuid.New().String()
	}

	content, err := json.Marshal(report.Content)
	if err != nil {
		return analysis.Report{}, fmt.Errorf("marshal report content: %w", err)
	}

	query, args, err := r.builder.Insert("analysis_reports").
		Columns("id", "month", "model", "content", "generated_at").
		Values(report.ID, report.Month, report.Model, content, report.GeneratedAt).
		Suffix(`ON CONFLICT (month) DO UPDATE SET
			model = EXCLUDED.model,
			content = EXCLUDED.content,
			generated_at = EXCLUDED.generated_at
			RETURNING id`).
		ToSql()
	if err != nil {
		return analysis.Report{}, fmt.Errorf("build upsert query: %w", err)
	}

	if err := r.db.QueryRow(ctx, query, args...).Scan(&report.ID); err != nil {
		return analysis.Report{}, fmt.Errorf("save report: %w", err)
	}
	return report, nil
}

func (r *PgReportRepo) GetByMonth(ctx context.Context, month string) (analysis.Report, error) {
	query, args, err := r.builder.Select("id", "month", "model", "content", "generated_at").
		From("analysis_reports").
		Where(squirrel.Eq{"month": month}).
		ToSql()
	if err != nil {
		return analysis.Report{}, fmt.Errorf("build select query: %w", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return analysis.Report{}, fmt.Errorf("query report: %w", err)
	}
	defer rows.Close()

	reports, err := parseReportRows(rows)
	if err != nil {
		return analysis.Report{}, err
	}
	if len(reports) == 0 {
		return analysis.Report{}, analysis.ErrReportNotFound
	}
	return reports[0], nil
}

func (r *PgReportRepo) List(ctx context.Context) ([]analysis.Report, error) {
	query, args, err := r.builder.Select("id", "month", "model", "content", "generated_at").
		From("analysis_reports").
		OrderBy("month DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select query: %w", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query reports: %w", err)
	}
	defer rows.Close()

	return parseReportRows(rows)
}

func parseReportRows(rows pgx.Rows) ([]analysis.Report, error) {
	var reports []analysis.Report
	for rows.Next() {
		var (
			report     analysis.Report
			rawContent []byte
		)
		if err := rows.Scan(&report.ID, &report.Month, &report.Model, &rawContent, &report.GeneratedAt); err != nil {
			return nil, fmt.Errorf("scan report row: %w", err)
		}
		if err := json.Unmarshal(rawContent, &report.Content); err != nil {
			return nil, fmt.Errorf("unmarshal report content: %w", err)
		}
		reports = append(reports, report)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate report rows: %w", err)
	}

	return reports, nil
}
