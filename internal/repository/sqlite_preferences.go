package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/alexanderramin/gradecast/internal/db"
	"github.com/alexanderramin/gradecast/internal/domain"
)

const defaultPreferencesID = "default"

// SQLitePreferencesRepo implements PreferencesRepo using a SQLite database.
type SQLitePreferencesRepo struct {
	db db.DBTX
}

func NewSQLitePreferencesRepo(conn db.DBTX) *SQLitePreferencesRepo {
	return &SQLitePreferencesRepo{db: conn}
}

func (r *SQLitePreferencesRepo) Get(ctx context.Context) (*domain.Preferences, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, program, level, bias FROM preferences WHERE id = ?`, defaultPreferencesID)

	var p domain.Preferences
	var program, level string
	if err := row.Scan(&p.ID, &program, &level, &p.Bias); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("preferences: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning preferences: %w", err)
	}
	p.Program = domain.Program(program)
	p.Level = domain.Level(level)
	return &p, nil
}

func (r *SQLitePreferencesRepo) Upsert(ctx context.Context, p *domain.Preferences) error {
	if p.ID == "" {
		p.ID = defaultPreferencesID
	}
	_, err := r.db.ExecContext(ctx,
		`INSERT OR REPLACE INTO preferences (id, program, level, bias) VALUES (?, ?, ?, ?)`,
		p.ID, string(p.Program), string(p.Level), p.Bias)
	if err != nil {
		return fmt.Errorf("upserting preferences: %w", err)
	}
	return nil
}
