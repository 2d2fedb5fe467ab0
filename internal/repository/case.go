package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/kmalyshev/beacon_response_system/internal/models"
	"github.com/kmalyshev/beacon_response_system/internal/service"
	"github.com/redis/go-redis/v9"
)

const caseColumns = `
	id,
	caller_user_id,
	case_group_id,
	latitude,
	longitude,
	COALESCE(description, ''),
	raw_problem_description,
	urgency,
	danger_level,
	status,
	created_at,
	resolved_at`

type CaseRepository struct {
	db          *pgxpool.Pool
	redisClient *redis.Client
}

func NewCaseRepository(db *pgxpool.Pool, redisClient *redis.Client) service.CaseRepository {
	return &CaseRepository{
		db:          db,
		redisClient: redisClient,
	}
}

// CreateCase создает новую запись об обращении в бд
func (r *CaseRepository) CreateCase(ctx context.Context, c *models.Case) error {
	query := `
		INSERT INTO cases (caller_user_id, latitude, longitude, description, raw_problem_description, urgency, danger_level, status)
		VALUES ($1, $2, $3, NULLIF($4, ''), $5, $6, $7, $8) RETURNING id, created_at;
	`
	err := r.db.QueryRow(ctx, query,
		c.CallerUserID,
		c.Latitude,
		c.Longitude,
		c.Description,
		c.RawProblemDescription,
		c.Urgency,
		c.DangerLevel,
		c.Status,
	).Scan(&c.ID, &c.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create case: %w", err)
	}
	return nil
}

// GetCaseByID возвращает обращение по его идентификатору
func (r *CaseRepository) GetCaseByID(ctx context.Context, id int64) (*models.Case, error) {
	c := &models.Case{}
	query := `SELECT` + caseColumns + `
		FROM cases
		WHERE id = $1;
	`
	err := r.db.QueryRow(ctx, query, id).Scan(
		&c.ID,
		&c.CallerUserID,
		&c.CaseGroupID,
		&c.Latitude,
		&c.Longitude,
		&c.Description,
		&c.RawProblemDescription,
		&c.Urgency,
		&c.DangerLevel,
		&c.Status,
		&c.CreatedAt,
		&c.ResolvedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("case with id %d: %w", id, service.ErrCaseNotFound)
		}
		return nil, fmt.Errorf("failed to get case by id: %w", err)
	}
	return c, nil
}

// ListCasesByStatus возвращает обращения в указанных статусах (свежие первыми)
func (r *CaseRepository) ListCasesByStatus(ctx context.Context, statuses []string) ([]*models.Case, error) {
	query := `SELECT` + caseColumns + `
		FROM cases
		WHERE status = ANY($1)
		ORDER BY created_at DESC;
	`
	rows, err := r.db.Query(ctx, query, statuses)
	if err != nil {
		return nil, fmt.Errorf("failed to list cases by status: %w", err)
	}
	defer rows.Close()

	return scanCases(rows)
}

// ListOpenUngroupedCases возвращает открытые обращения без группы,
// исключая указанное. Это набор кандидатов для группировки.
func (r *CaseRepository) ListOpenUngroupedCases(ctx context.Context, excludeID int64) ([]*models.Case, error) {
	query := `SELECT` + caseColumns + `
		FROM cases
		WHERE status = 'open' AND case_group_id IS NULL AND id <> $1;
	`
	rows, err := r.db.Query(ctx, query, excludeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list open ungrouped cases: %w", err)
	}
	defer rows.Close()

	return scanCases(rows)
}

// UpdateCaseStatus меняет статус обращения; markResolved дополнительно
// проставляет resolved_at
func (r *CaseRepository) UpdateCaseStatus(ctx context.Context, id int64, status string, markResolved bool) error {
	query := `
		UPDATE cases SET
			status = $1,
			resolved_at = CASE WHEN $2 THEN NOW() ELSE resolved_at END
		WHERE id = $3;
	`
	cmdTag, err := r.db.Exec(ctx, query, status, markResolved, id)
	if err != nil {
		return fmt.Errorf("failed to update case status: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("case with id %d: %w", id, service.ErrCaseNotFound)
	}
	return nil
}

// CreateGroupWithMembers создает группу и назначает членство одной транзакцией.
// Идентификатор группы выдает sequence бд, членство записывается условным
// обновлением (только открытые обращения без группы), чтобы два конкурентных
// запуска группировки не перезаписали назначения друг друга.
func (r *CaseRepository) CreateGroupWithMembers(ctx context.Context, label string, caseIDs []int64) (int64, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to begin grouping transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	var groupID int64
	err = tx.QueryRow(ctx,
		`INSERT INTO case_groups (label) VALUES ($1) RETURNING id;`,
		label,
	).Scan(&groupID)
	if err != nil {
		return 0, fmt.Errorf("failed to create case group: %w", err)
	}

	cmdTag, err := tx.Exec(ctx, `
		UPDATE cases SET case_group_id = $1
		WHERE id = ANY($2) AND case_group_id IS NULL AND status = 'open';
	`, groupID, caseIDs)
	if err != nil {
		return 0, fmt.Errorf("failed to assign group membership: %w", err)
	}

	// Если часть кандидатов успела сгруппироваться или закрыться,
	// откатываем: решение принималось по устаревшим данным
	if int(cmdTag.RowsAffected()) != len(caseIDs) {
		return 0, fmt.Errorf("grouping conflict: expected %d members, updated %d", len(caseIDs), cmdTag.RowsAffected())
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("failed to commit grouping transaction: %w", err)
	}
	return groupID, nil
}

// GetCaseGroup возвращает группу вместе с идентификаторами входящих обращений
func (r *CaseRepository) GetCaseGroup(ctx context.Context, id int64) (*models.CaseGroup, error) {
	group := &models.CaseGroup{}
	err := r.db.QueryRow(ctx,
		`SELECT id, label, created_at FROM case_groups WHERE id = $1;`,
		id,
	).Scan(&group.ID, &group.Label, &group.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("case group with id %d: %w", id, service.ErrGroupNotFound)
		}
		return nil, fmt.Errorf("failed to get case group by id: %w", err)
	}

	rows, err := r.db.Query(ctx,
		`SELECT id FROM cases WHERE case_group_id = $1 ORDER BY id;`,
		id,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list group members: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var caseID int64
		if err := rows.Scan(&caseID); err != nil {
			return nil, fmt.Errorf("failed to scan group member row: %w", err)
		}
		group.CaseIDs = append(group.CaseIDs, caseID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error group member iteration: %w", err)
	}
	return group, nil
}

// AppendUpdate добавляет запись в журнал событий обращения
func (r *CaseRepository) AppendUpdate(ctx context.Context, update *models.Update) error {
	query := `
		INSERT INTO updates (case_id, assignment_id, update_source, update_type, update_text)
		VALUES ($1, $2, $3, $4, $5) RETURNING id, created_at;
	`
	err := r.db.QueryRow(ctx, query,
		update.CaseID,
		update.AssignmentID,
		update.UpdateSource,
		update.UpdateType,
		update.UpdateText,
	).Scan(&update.ID, &update.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to append update: %w", err)
	}
	return nil
}

// GetCaseFromCache пытается получить обращение из Redis
func (r *CaseRepository) GetCaseFromCache(ctx context.Context, id int64) (*models.Case, error) {
	key := fmt.Sprintf("case:%d", id)
	val, err := r.redisClient.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get case from cache: %w", err)
	}

	c := &models.Case{}
	if err := json.Unmarshal(val, c); err != nil {
		return nil, fmt.Errorf("failed to unmarshal case from cache: %w", err)
	}
	return c, nil
}

// SetCaseCache сохраняет обращение в Redis
func (r *CaseRepository) SetCaseCache(ctx context.Context, c *models.Case) error {
	key := fmt.Sprintf("case:%d", c.ID)
	val, err := json.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal case for cache: %w", err)
	}
	// Устанавливаем срок жизни кэша, например, 5 минут
	if err := r.redisClient.Set(ctx, key, val, 5*time.Minute).Err(); err != nil {
		return fmt.Errorf("failed to set case in cache: %w", err)
	}
	return nil
}

// InvalidateCaseCache удаляет обращение из Redis кэша
func (r *CaseRepository) InvalidateCaseCache(ctx context.Context, id int64) error {
	key := fmt.Sprintf("case:%d", id)
	if err := r.redisClient.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("failed to invalidate case cache: %w", err)
	}
	return nil
}

// scanCases читает строки курсора в слайс обращений
func scanCases(rows pgx.Rows) ([]*models.Case, error) {
	cases := make([]*models.Case, 0)
	for rows.Next() {
		c := &models.Case{}
		err := rows.Scan(
			&c.ID,
			&c.CallerUserID,
			&c.CaseGroupID,
			&c.Latitude,
			&c.Longitude,
			&c.Description,
			&c.RawProblemDescription,
			&c.Urgency,
			&c.DangerLevel,
			&c.Status,
			&c.CreatedAt,
			&c.ResolvedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan case row: %w", err)
		}
		cases = append(cases, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error case list iteration: %w", err)
	}
	return cases, nil
}
