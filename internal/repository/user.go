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

type UserRepository struct {
	db *pgxpool.Pool
}

func NewUserRepository(db *pgxpool.Pool) service.UserRepository {
	return &UserRepository{
		db: db,
	}
}

// CreateUser создает нового пользователя в бд
func (r *UserRepository) CreateUser(ctx context.Context, user *models.User) error {
	query := `
		INSERT INTO users (name, contact_info, helper_skills, helper_max_range)
		VALUES ($1, NULLIF($2, ''), $3, $4) RETURNING id, created_at;
	`
	err := r.db.QueryRow(ctx, query,
		user.Name,
		user.ContactInfo,
		user.HelperSkills,
		user.HelperMaxRange,
	).Scan(&user.ID, &user.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// UpdateUser обновляет карточку пользователя
func (r *UserRepository) UpdateUser(ctx context.Context, user *models.User) error {
	query := `
		UPDATE users SET
			name = $1,
			contact_info = NULLIF($2, ''),
			helper_skills = $3,
			helper_max_range = $4
		WHERE id = $5;
	`
	cmdTag, err := r.db.Exec(ctx, query,
		user.Name,
		user.ContactInfo,
		user.HelperSkills,
		user.HelperMaxRange,
		user.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("user with id %d: %w", user.ID, service.ErrUserNotFound)
	}
	return nil
}

// GetUserByID возвращает пользователя по его идентификатору
func (r *UserRepository) GetUserByID(ctx context.Context, id int64) (*models.User, error) {
	user := &models.User{}
	query := `
		SELECT id, name, COALESCE(contact_info, ''), helper_skills, helper_max_range, created_at
		FROM users
		WHERE id = $1;
	`
	err := r.db.QueryRow(ctx, query, id).Scan(
		&user.ID,
		&user.Name,
		&user.ContactInfo,
		&user.HelperSkills,
		&user.HelperMaxRange,
		&user.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("user with id %d: %w", id, service.ErrUserNotFound)
		}
		return nil, fmt.Errorf("failed to get user by id: %w", err)
	}
	return user, nil
}

// AppendLocationSample добавляет запись в историю перемещений пользователя
func (r *UserRepository) AppendLocationSample(ctx context.Context, sample *models.LocationSample) error {
	query := `
		INSERT INTO location_tracking (user_id, latitude, longitude)
		VALUES ($1, $2, $3) RETURNING id, timestamp;
	`
	err := r.db.QueryRow(ctx, query,
		sample.UserID,
		sample.Latitude,
		sample.Longitude,
	).Scan(&sample.ID, &sample.Timestamp)
	if err != nil {
		return fmt.Errorf("failed to append location sample: %w", err)
	}
	return nil
}

// ListLocationHistory возвращает историю перемещений (свежие первыми)
func (r *UserRepository) ListLocationHistory(ctx context.Context, userID int64, limit int) ([]*models.LocationSample, error) {
	query := `
		SELECT id, user_id, latitude, longitude, timestamp
		FROM location_tracking
		WHERE user_id = $1
		ORDER BY timestamp DESC
		LIMIT $2;
	`
	rows, err := r.db.Query(ctx, query, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list location history: %w", err)
	}
	defer rows.Close()

	samples := make([]*models.LocationSample, 0)
	for rows.Next() {
		sample := &models.LocationSample{}
		err := rows.Scan(
			&sample.ID,
			&sample.UserID,
			&sample.Latitude,
			&sample.Longitude,
			&sample.Timestamp,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan location sample row: %w", err)
		}
		samples = append(samples, sample)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error location history iteration: %w", err)
	}
	return samples, nil
}

// ListActiveHelpers возвращает хелперов с навыками и их последней известной
// позицией. DISTINCT ON берет по одному самому свежему сэмплу на хелпера.
func (r *UserRepository) ListActiveHelpers(ctx context.Context) ([]*models.HelperCandidate, error) {
	query := `
		SELECT DISTINCT ON (lt.user_id)
			u.id,
			u.name,
			COALESCE(u.contact_info, ''),
			u.helper_skills,
			u.helper_max_range,
			lt.latitude,
			lt.longitude,
			lt.timestamp
		FROM users u
		INNER JOIN location_tracking lt ON lt.user_id = u.id
		WHERE u.helper_skills IS NOT NULL AND array_length(u.helper_skills, 1) > 0
		ORDER BY lt.user_id, lt.timestamp DESC;
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list active helpers: %w", err)
	}
	defer rows.Close()

	helpers := make([]*models.HelperCandidate, 0)
	for rows.Next() {
		helper := &models.HelperCandidate{}
		err := rows.Scan(
			&helper.UserID,
			&helper.Name,
			&helper.ContactInfo,
			&helper.Skills,
			&helper.HelperMaxRange,
			&helper.Latitude,
			&helper.Longitude,
			&helper.LastUpdated,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan helper row: %w", err)
		}
		helpers = append(helpers, helper)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error helper list iteration: %w", err)
	}
	return helpers, nil
}
