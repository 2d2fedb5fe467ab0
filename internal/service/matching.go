package service

import (
	"context"
	"fmt"
	"math"
	"sort"

	"github.com/kmalyshev/beacon_response_system/internal/models"
	"github.com/kmalyshev/beacon_response_system/pkg/geo"
	"github.com/sirupsen/logrus"
)

// UserRepository определяет контракт для работы с бд пользователей
// и историей их перемещений
type UserRepository interface {
	CreateUser(ctx context.Context, user *models.User) error
	UpdateUser(ctx context.Context, user *models.User) error
	GetUserByID(ctx context.Context, id int64) (*models.User, error)
	AppendLocationSample(ctx context.Context, sample *models.LocationSample) error
	ListLocationHistory(ctx context.Context, userID int64, limit int) ([]*models.LocationSample, error)
	// ListActiveHelpers возвращает хелперов с навыками и их последней
	// известной позицией (по одному самому свежему сэмплу на хелпера)
	ListActiveHelpers(ctx context.Context) ([]*models.HelperCandidate, error)
}

// MatchingService определяет контракт движка подбора хелперов
type MatchingService interface {
	FindNearbyHelpers(ctx context.Context, lat, lon, radiusKm float64, requiredSkills []string) ([]*models.HelperMatch, error)
}

type matchingService struct {
	repo   UserRepository
	logger *logrus.Logger
}

func NewMatchingService(repo UserRepository, logger *logrus.Logger) MatchingService {
	return &matchingService{
		repo:   repo,
		logger: logger,
	}
}

// FindNearbyHelpers ранжирует активных хелперов по удаленности от точки.
//
// Фильтр по навыкам работает по принципу ИЛИ: хелпер проходит, если у него
// есть хотя бы один из требуемых навыков. Порядок результата - по возрастанию
// расстояния; вызывающая сторона трактует позицию в списке как приоритет.
// Пустой результат - штатный исход, а не ошибка.
func (s *matchingService) FindNearbyHelpers(ctx context.Context, lat, lon, radiusKm float64, requiredSkills []string) ([]*models.HelperMatch, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":   "matching",
		"method":    "FindNearbyHelpers",
		"radius_km": radiusKm,
	})

	if radiusKm <= 0 {
		return nil, fmt.Errorf("service: radius %.2f km: %w", radiusKm, ErrInvalidRadius)
	}
	if !geo.ValidCoordinates(lat, lon) {
		return nil, fmt.Errorf("service: point (%.4f, %.4f): %w", lat, lon, ErrInvalidCoordinates)
	}

	candidates, err := s.repo.ListActiveHelpers(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to list active helpers")
		return nil, fmt.Errorf("service: could not list active helpers: %w", err)
	}

	radiusMeters := radiusKm * 1000
	origin := geo.NewPoint(lat, lon)

	type rankedMatch struct {
		match          *models.HelperMatch
		distanceMeters float64
	}

	ranked := make([]rankedMatch, 0)
	for _, candidate := range candidates {
		if !hasAnySkill(candidate.Skills, requiredSkills) {
			continue
		}

		distanceMeters := geo.Distance(origin, geo.NewPoint(candidate.Latitude, candidate.Longitude))
		// Граница радиуса включается
		if distanceMeters > radiusMeters {
			continue
		}

		ranked = append(ranked, rankedMatch{
			match: &models.HelperMatch{
				HelperCandidate: *candidate,
				DistanceKm:      math.Round(distanceMeters/10) / 100,
			},
			distanceMeters: distanceMeters,
		})
	}

	// Сортируем по неокругленному расстоянию, чтобы округление до двух
	// знаков не ломало порядок близких кандидатов
	sort.Slice(ranked, func(i, j int) bool {
		return ranked[i].distanceMeters < ranked[j].distanceMeters
	})

	matches := make([]*models.HelperMatch, len(ranked))
	for i, r := range ranked {
		matches[i] = r.match
	}

	log.WithField("match_count", len(matches)).Info("Nearby helpers ranked")
	return matches, nil
}

// hasAnySkill проверяет пересечение навыков (пустой фильтр пропускает всех)
func hasAnySkill(skills, required []string) bool {
	if len(required) == 0 {
		return true
	}
	for _, req := range required {
		for _, skill := range skills {
			if skill == req {
				return true
			}
		}
	}
	return false
}
