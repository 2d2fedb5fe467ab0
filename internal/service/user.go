package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/kmalyshev/beacon_response_system/internal/models"
	"github.com/kmalyshev/beacon_response_system/pkg/geo"
	"github.com/sirupsen/logrus"
)

// LocationConsentInput - входные данные согласия на передачу местоположения.
// UserID равен nil для нового (в том числе анонимного) пользователя.
type LocationConsentInput struct {
	UserID         *int64
	Latitude       float64
	Longitude      float64
	Name           string
	ContactInfo    string
	IsHelper       bool
	HelperSkills   []string
	HelperMaxRange *int
}

// UserService определяет контракт для бизнес-логики пользователей
type UserService interface {
	LocationConsent(ctx context.Context, input LocationConsentInput) (*models.User, error)
	GetUser(ctx context.Context, id int64) (*models.User, error)
	LocationHistory(ctx context.Context, userID int64, limit int) ([]*models.LocationSample, error)
}

type userService struct {
	repo   UserRepository
	logger *logrus.Logger
}

func NewUserService(repo UserRepository, logger *logrus.Logger) UserService {
	return &userService{
		repo:   repo,
		logger: logger,
	}
}

// LocationConsent создает или обновляет пользователя и добавляет сэмпл
// в историю перемещений. Это общая точка входа для пострадавших и хелперов.
func (s *userService) LocationConsent(ctx context.Context, input LocationConsentInput) (*models.User, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":   "user",
		"method":    "LocationConsent",
		"is_helper": input.IsHelper,
	})

	if !geo.ValidCoordinates(input.Latitude, input.Longitude) {
		return nil, fmt.Errorf("service: location (%.4f, %.4f): %w", input.Latitude, input.Longitude, ErrInvalidCoordinates)
	}

	var user *models.User
	if input.UserID != nil {
		existing, err := s.repo.GetUserByID(ctx, *input.UserID)
		if err != nil {
			log.WithError(err).Warn("Location consent for unknown user")
			return nil, fmt.Errorf("service: could not load user %d: %w", *input.UserID, err)
		}
		user = existing
		if input.Name != "" {
			user.Name = input.Name
		}
		if input.ContactInfo != "" {
			user.ContactInfo = input.ContactInfo
		}
		if input.IsHelper {
			user.HelperSkills = input.HelperSkills
			user.HelperMaxRange = input.HelperMaxRange
		}
		if err := s.repo.UpdateUser(ctx, user); err != nil {
			log.WithError(err).Error("Failed to update user in repository")
			return nil, fmt.Errorf("service: could not update user: %w", err)
		}
	} else {
		name := input.Name
		if name == "" {
			// Анонимному пользователю выдается различимое имя
			name = fmt.Sprintf("Anonymous User %s", uuid.NewString()[:8])
		}
		user = &models.User{
			Name:        name,
			ContactInfo: input.ContactInfo,
		}
		if input.IsHelper {
			user.HelperSkills = input.HelperSkills
			user.HelperMaxRange = input.HelperMaxRange
		}
		if err := s.repo.CreateUser(ctx, user); err != nil {
			log.WithError(err).Error("Failed to create user in repository")
			return nil, fmt.Errorf("service: could not create user: %w", err)
		}
	}

	if err := s.repo.AppendLocationSample(ctx, &models.LocationSample{
		UserID:    user.ID,
		Latitude:  input.Latitude,
		Longitude: input.Longitude,
	}); err != nil {
		log.WithError(err).Error("Failed to append location sample")
		return nil, fmt.Errorf("service: could not record location: %w", err)
	}

	log.WithField("user_id", user.ID).Info("Location consent recorded")
	return user, nil
}

// GetUser получает пользователя по ID
func (s *userService) GetUser(ctx context.Context, id int64) (*models.User, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "user",
		"method":  "GetUser",
		"user_id": id,
	})

	user, err := s.repo.GetUserByID(ctx, id)
	if err != nil {
		log.WithError(err).Warn("Failed to get user from repository")
		return nil, fmt.Errorf("service: could not get user: %w", err)
	}
	return user, nil
}

// LocationHistory возвращает историю перемещений пользователя (свежие первыми)
func (s *userService) LocationHistory(ctx context.Context, userID int64, limit int) ([]*models.LocationSample, error) {
	if limit < 1 || limit > 1000 {
		limit = 100
	}

	log := s.logger.WithFields(logrus.Fields{
		"service": "user",
		"method":  "LocationHistory",
		"user_id": userID,
		"limit":   limit,
	})

	if _, err := s.repo.GetUserByID(ctx, userID); err != nil {
		log.WithError(err).Warn("Location history requested for unknown user")
		return nil, fmt.Errorf("service: could not load user %d: %w", userID, err)
	}

	samples, err := s.repo.ListLocationHistory(ctx, userID, limit)
	if err != nil {
		log.WithError(err).Error("Failed to list location history")
		return nil, fmt.Errorf("service: could not list location history: %w", err)
	}

	return samples, nil
}
