package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/alexanderramin/gradecast/internal/db"
	"github.com/alexanderramin/gradecast/internal/domain"
	"github.com/google/uuid"
)

// SQLiteGradeRepo implements GradeRepo over one of the grade-shaped tables.
type SQLiteGradeRepo struct {
	db    db.DBTX
	table string
	noun  string
}

// NewSQLiteGradeRepo stores recorded grades.
func NewSQLiteGradeRepo(conn db.DBTX) *SQLiteGradeRepo {
	return &SQLiteGradeRepo{db: conn, table: "grades", noun: "grade"}
}

// NewSQLiteOverrideRepo stores what-if overrides for ungraded courses.
func NewSQLiteOverrideRepo(conn db.DBTX) *SQLiteGradeRepo {
	return &SQLiteGradeRepo{db: conn, table: "overrides", noun: "override"}
}

// Upsert inserts the record or replaces the grade of the existing row for the
// same course. The existing row keeps its ID, which is copied back into rec.
func (r *SQLiteGradeRepo) Upsert(ctx context.Context, rec *domain.GradeRecord) error {
	if rec.ID == "" {
		rec.ID = uuid.New().String()
	}
	query := `INSERT INTO ` + r.table + ` (id, program, course_name, grade, updated_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(program, course_name) DO UPDATE SET
			grade = excluded.grade,
			updated_at = excluded.updated_at`
	_, err := r.db.ExecContext(ctx, query,
		rec.ID,
		string(rec.Program),
		rec.CourseName,
		string(rec.Grade),
		formatTime(rec.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("upserting %s: %w", r.noun, err)
	}

	err = r.db.QueryRowContext(ctx,
		`SELECT id FROM `+r.table+` WHERE program = ? AND course_name = ?`,
		string(rec.Program), rec.CourseName,
	).Scan(&rec.ID)
	if err != nil {
		return fmt.Errorf("reading back %s id: %w", r.noun, err)
	}
	return nil
}

func (r *SQLiteGradeRepo) Get(ctx context.Context, program domain.Program, course string) (*domain.GradeRecord, error) {
	query := `SELECT id, program, course_name, grade, updated_at FROM ` + r.table + `
		WHERE program = ? AND course_name = ?`
	rec, err := scanRecord(r.db.QueryRowContext(ctx, query, string(program), course))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s for %q: %w", r.noun, course, ErrNotFound)
		}
		return nil, fmt.Errorf("scanning %s: %w", r.noun, err)
	}
	return rec, nil
}

func (r *SQLiteGradeRepo) ListByProgram(ctx context.Context, program domain.Program) ([]*domain.GradeRecord, error) {
	query := `SELECT id, program, course_name, grade, updated_at FROM ` + r.table + `
		WHERE program = ? ORDER BY course_name`
	rows, err := r.db.QueryContext(ctx, query, string(program))
	if err != nil {
		return nil, fmt.Errorf("listing %ss: %w", r.noun, err)
	}
	defer rows.Close()

	var out []*domain.GradeRecord
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning %s: %w", r.noun, err)
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

func (r *SQLiteGradeRepo) Delete(ctx context.Context, program domain.Program, course string) error {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM `+r.table+` WHERE program = ? AND course_name = ?`, string(program), course)
	if err != nil {
		return fmt.Errorf("deleting %s: %w", r.noun, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting %s: %w", r.noun, err)
	}
	if n == 0 {
		return fmt.Errorf("%s for %q: %w", r.noun, course, ErrNotFound)
	}
	return nil
}

// DeleteByProgram removes every row of the program and reports how many went.
func (r *SQLiteGradeRepo) DeleteByProgram(ctx context.Context, program domain.Program) (int, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM `+r.table+` WHERE program = ?`, string(program))
	if err != nil {
		return 0, fmt.Errorf("clearing %ss: %w", r.noun, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("clearing %ss: %w", r.noun, err)
	}
	return int(n), nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRecord(s scanner) (*domain.GradeRecord, error) {
	var (
		rec            domain.GradeRecord
		program, grade string
		updatedAt      string
	)
	if err := s.Scan(&rec.ID, &program, &rec.CourseName, &grade, &updatedAt); err != nil {
		return nil, err
	}
	rec.Program = domain.Program(program)
	rec.Grade = domain.Grade(grade)
	rec.UpdatedAt = parseTime(updatedAt)
	return &rec, nil
}
