package repository

import (
	"context"
	"fmt"

	"github.com/developerjhp/jirawaka/internal/db"
)

// SQLiteRunLogRepo implements RunLogRepo using a SQLite database.
type SQLiteRunLogRepo struct {
	db db.DBTX
}

// NewSQLiteRunLogRepo creates a new SQLiteRunLogRepo.
func NewSQLiteRunLogRepo(db db.DBTX) *SQLiteRunLogRepo {
	return &SQLiteRunLogRepo{db: db}
}

func (r *SQLiteRunLogRepo) Append(ctx context.Context, log *RunLog) error {
	query := `INSERT INTO run_logs (id, project, run_date, report, total_minutes, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		log.ID,
		log.Project,
		log.RunDate,
		log.Report,
		log.TotalMinutes,
		log.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("appending run log: %w", err)
	}
	return nil
}

func (r *SQLiteRunLogRepo) ListByProject(ctx context.Context, project string, limit int) ([]*RunLog, error) {
	query := `SELECT id, project, run_date, report, total_minutes, created_at
		FROM run_logs WHERE project = ? ORDER BY created_at DESC LIMIT ?`
	rows, err := r.db.QueryContext(ctx, query, project, limit)
	if err != nil {
		return nil, fmt.Errorf("listing run logs: %w", err)
	}
	defer rows.Close()

	var logs []*RunLog
	for rows.Next() {
		var l RunLog
		if err := rows.Scan(&l.ID, &l.Project, &l.RunDate, &l.Report, &l.TotalMinutes, &l.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning run log: %w", err)
		}
		logs = append(logs, &l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating run logs: %w", err)
	}
	return logs, nil
}
