package activitylog_repo

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"returnhub/internal/domain/returns"
	"returnhub/pkg/postgres"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// PgActivityLog stores audit entries in the activity_logs table.
type PgActivityLog struct {
	db      postgres.Executor
	builder squirrel.StatementBuilderType
}

var _ returns.ActivityLog = (*PgActivityLog)(nil)

func NewPgActivityLog(pg *postgres.Postgres) *PgActivityLog {
	return &PgActivityLog{db: pg.Pool, builder: pg.Builder}
}

func (l *PgActivityLog) Record(ctx context.Context, entry returns.ActivityEntry) error {
	id := uuid.New().String()

	query, args, err := l.builder.Insert("activity_logs").
		Columns("id", "entity_type", "entity_id", "action", "actor_type", "actor_id", "old_value", "new_value", "description", "created_at").
		Values(id, entry.EntityType, entry.EntityID, entry.Action, entry.ActorType, nullable(entry.ActorID), string(entry.OldValue), string(entry.NewValue), entry.Description, squirrel.Expr("NOW()")).
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert query: %w", err)
	}

	if _, err := l.db.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("record activity entry: %w", err)
	}
	return nil
}

func (l *PgActivityLog) ListForEntity(ctx context.Context, entityType, entityID string) ([]returns.ActivityEntry, error) {
	query, args, err := l.builder.
		Select("id", "entity_type", "entity_id", "action", "actor_type", "actor_id", "old_value", "new_value", "description", "created_at").
		From("activity_logs").
		Where(squirrel.Eq{"entity_type": entityType, "entity_id": entityID}).
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select query: %w", err)
	}

	rows, err := l.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query activity entries: %w", err)
	}
	defer rows.Close()

	return parseEntryRows(rows)
}

func parseEntryRows(rows pgx.Rows) ([]returns.ActivityEntry, error) {
	var entries []returns.ActivityEntry
	for rows.Next() {
		var (
			entry    returns.ActivityEntry
			actorID  sql.NullString
			oldValue string
			newValue string
		)
		err := rows.Scan(&entry.ID, &entry.EntityType, &entry.EntityID, &entry.Action,
			&entry.ActorType, &actorID, &oldValue, &newValue, &entry.Description, &entry.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("scan activity entry row: %w", err)
		}
		entry.ActorID = actorID.String
		entry.OldValue = json.RawMessage(oldValue)
		entry.NewValue = json.RawMessage(newValue)
		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate activity entry rows: %w", err)
	}

	return entries, nil
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
