package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/kmalyshev/beacon_response_system/internal/models"
	"github.com/kmalyshev/beacon_response_system/internal/service"
)

type AssignmentRepository struct {
	db *pgxpool.Pool
}

func NewAssignmentRepository(db *pgxpool.Pool) service.AssignmentRepository {
	return &AssignmentRepository{
		db: db,
	}
}

// CreateAssignment создает новое назначение в бд
func (r *AssignmentRepository) CreateAssignment(ctx context.Context, a *models.Assignment) error {
	query := `
		INSERT INTO assignments (case_id, helper_user_id, notes)
		VALUES ($1, $2, NULLIF($3, '')) RETURNING id, assigned_at;
	`
	err := r.db.QueryRow(ctx, query,
		a.CaseID,
		a.HelperUserID,
		a.Notes,
	).Scan(&a.ID, &a.AssignedAt)
	if err != nil {
		return fmt.Errorf("failed to create assignment: %w", err)
	}
	return nil
}

// GetAssignmentByID возвращает назначение по его идентификатору
func (r *AssignmentRepository) GetAssignmentByID(ctx context.Context, id int64) (*models.Assignment, error) {
	a := &models.Assignment{}
	query := `
		SELECT id, case_id, helper_user_id, assigned_at, completed_at, COALESCE(notes, ''), COALESCE(outcome, '')
		FROM assignments
		WHERE id = $1;
	`
	err := r.db.QueryRow(ctx, query, id).Scan(
		&a.ID,
		&a.CaseID,
		&a.HelperUserID,
		&a.AssignedAt,
		&a.CompletedAt,
		&a.Notes,
		&a.Outcome,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("assignment with id %d: %w", id, service.ErrAssignmentNotFound)
		}
		return nil, fmt.Errorf("failed to get assignment by id: %w", err)
	}
	return a, nil
}

// FindActiveAssignment ищет незавершенное назначение хелпера на обращение.
// Отсутствие такого назначения не является ошибкой.
func (r *AssignmentRepository) FindActiveAssignment(ctx context.Context, caseID, helperUserID int64) (*models.Assignment, error) {
	a := &models.Assignment{}
	query := `
		SELECT id, case_id, helper_user_id, assigned_at, completed_at, COALESCE(notes, ''), COALESCE(outcome, '')
		FROM assignments
		WHERE case_id = $1 AND helper_user_id = $2 AND completed_at IS NULL;
	`
	err := r.db.QueryRow(ctx, query, caseID, helperUserID).Scan(
		&a.ID,
		&a.CaseID,
		&a.HelperUserID,
		&a.AssignedAt,
		&a.CompletedAt,
		&a.Notes,
		&a.Outcome,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find active assignment: %w", err)
	}
	return a, nil
}

// ListAssignmentsForCase возвращает все назначения по обращению (свежие первыми)
func (r *AssignmentRepository) ListAssignmentsForCase(ctx context.Context, caseID int64) ([]*models.Assignment, error) {
	query := `
		SELECT id, case_id, helper_user_id, assigned_at, completed_at, COALESCE(notes, ''), COALESCE(outcome, '')
		FROM assignments
		WHERE case_id = $1
		ORDER BY assigned_at DESC;
	`
	rows, err := r.db.Query(ctx, query, caseID)
	if err != nil {
		return nil, fmt.Errorf("failed to list assignments for case: %w", err)
	}
	defer rows.Close()

	assignments := make([]*models.Assignment, 0)
	for rows.Next() {
		a := &models.Assignment{}
		err := rows.Scan(
			&a.ID,
			&a.CaseID,
			&a.HelperUserID,
			&a.AssignedAt,
			&a.CompletedAt,
			&a.Notes,
			&a.Outcome,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan assignment row: %w", err)
		}
		assignments = append(assignments, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error assignment list iteration: %w", err)
	}
	return assignments, nil
}

// ListAssignmentsForHelper возвращает назначения хелпера вместе с краткой
// информацией об обращениях
func (r *AssignmentRepository) ListAssignmentsForHelper(ctx context.Context, helperUserID int64, includeCompleted bool) ([]*models.AssignmentWithCase, error) {
	query := `
		SELECT
			a.id, a.case_id, a.helper_user_id, a.assigned_at, a.completed_at,
			COALESCE(a.notes, ''), COALESCE(a.outcome, ''),
			c.latitude, c.longitude, COALESCE(c.description, ''),
			c.urgency, c.danger_level, c.status
		FROM assignments a
		INNER JOIN cases c ON c.id = a.case_id
		WHERE a.helper_user_id = $1 AND ($2 OR a.completed_at IS NULL)
		ORDER BY a.assigned_at DESC;
	`
	rows, err := r.db.Query(ctx, query, helperUserID, includeCompleted)
	if err != nil {
		return nil, fmt.Errorf("failed to list assignments for helper: %w", err)
	}
	defer rows.Close()

	assignments := make([]*models.AssignmentWithCase, 0)
	for rows.Next() {
		a := &models.AssignmentWithCase{}
		err := rows.Scan(
			&a.ID,
			&a.CaseID,
			&a.HelperUserID,
			&a.AssignedAt,
			&a.CompletedAt,
			&a.Notes,
			&a.Outcome,
			&a.CaseLatitude,
			&a.CaseLongitude,
			&a.CaseDescription,
			&a.CaseUrgency,
			&a.CaseDangerLevel,
			&a.CaseStatus,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan assignment with case row: %w", err)
		}
		assignments = append(assignments, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error helper assignment list iteration: %w", err)
	}
	return assignments, nil
}

// CompleteAssignment помечает назначение завершенным
func (r *AssignmentRepository) CompleteAssignment(ctx context.Context, id int64, outcome, notes string) (*models.Assignment, error) {
	a := &models.Assignment{}
	query := `
		UPDATE assignments
		SET completed_at = NOW(), outcome = $1, notes = COALESCE(NULLIF($2, ''), notes)
		WHERE id = $3
		RETURNING id, case_id, helper_user_id, assigned_at, completed_at, COALESCE(notes, ''), COALESCE(outcome, '');
	`
	err := r.db.QueryRow(ctx, query, outcome, notes, id).Scan(
		&a.ID,
		&a.CaseID,
		&a.HelperUserID,
		&a.AssignedAt,
		&a.CompletedAt,
		&a.Notes,
		&a.Outcome,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("assignment with id %d: %w", id, service.ErrAssignmentNotFound)
		}
		return nil, fmt.Errorf("failed to complete assignment: %w", err)
	}
	return a, nil
}

// CountAssignments возвращает общее и завершенное количество назначений
// по обращению
func (r *AssignmentRepository) CountAssignments(ctx context.Context, caseID int64) (int, int, error) {
	query := `
		SELECT COUNT(*), COUNT(completed_at)
		FROM assignments
		WHERE case_id = $1;
	`
	var total, completed int
	err := r.db.QueryRow(ctx, query, caseID).Scan(&total, &completed)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to count assignments: %w", err)
	}
	return total, completed, nil
}
