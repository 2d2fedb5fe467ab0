package service

import (
	"context"
	"fmt"
	"math"
	"sort"

	"github.com/kmalyshev/beacon_response_system/internal/config"
	"github.com/kmalyshev/beacon_response_system/internal/dispatch"
	"github.com/kmalyshev/beacon_response_system/internal/models"
	"github.com/kmalyshev/beacon_response_system/pkg/geo"
	"github.com/sirupsen/logrus"
)

// CaseService определяет контракт для бизнес-логики управления обращениями
type CaseService interface {
	CreateCase(ctx context.Context, c *models.Case) error
	GetCase(ctx context.Context, id int64) (*models.Case, error)
	NearbyCases(ctx context.Context, lat, lon, radiusKm float64, statuses []string) ([]*models.NearbyCase, error)
	RouteToCase(ctx context.Context, id int64, fromLat, fromLon float64) (*models.RouteEstimate, error)
	UpdateCaseStatus(ctx context.Context, id int64, status string) (*models.Case, error)
}

// routeAverageSpeedKmh - средняя скорость движения хелпера для оценки
// времени прибытия
const routeAverageSpeedKmh = 30

// statusRank задает порядок жизненного цикла обращения.
// Переходы допускаются только вперед, из resolved обратно пути нет.
var statusRank = map[string]int{
	models.CaseStatusOpen:       1,
	models.CaseStatusAssigned:   2,
	models.CaseStatusInProgress: 3,
	models.CaseStatusResolved:   4,
	models.CaseStatusClosed:     5,
}

type caseService struct {
	repo      CaseRepository
	publisher dispatch.Publisher
	logger    *logrus.Logger
	cfg       *config.Config
}

func NewCaseService(repo CaseRepository, publisher dispatch.Publisher, logger *logrus.Logger, cfg *config.Config) CaseService {
	return &caseService{
		repo:      repo,
		publisher: publisher,
		logger:    logger,
		cfg:       cfg,
	}
}

// CreateCase создает обращение и ставит его в очередь на группировку.
// Решение о группировке принимается асинхронно: ответ вызывающей стороне
// не ждет результата, он виден позже через запросы.
func (s *caseService) CreateCase(ctx context.Context, c *models.Case) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "case",
		"method":  "CreateCase",
	})
	log.Info("Attempting to create a new case")

	if !geo.ValidCoordinates(c.Latitude, c.Longitude) {
		return fmt.Errorf("service: case location (%.4f, %.4f): %w", c.Latitude, c.Longitude, ErrInvalidCoordinates)
	}

	c.Status = models.CaseStatusOpen
	// Безопасные значения по умолчанию до уточнения обращения
	if c.Urgency == "" {
		c.Urgency = "high"
	}
	if c.DangerLevel == "" {
		c.DangerLevel = "severe"
	}

	if err := s.repo.CreateCase(ctx, c); err != nil {
		log.WithError(err).Error("Failed to create case in repository")
		return fmt.Errorf("service: could not create case: %w", err)
	}

	log = log.WithField("case_id", c.ID)

	if err := s.repo.AppendUpdate(ctx, &models.Update{
		CaseID:       c.ID,
		UpdateSource: models.UpdateSourceSystem,
		UpdateType:   models.UpdateTypeCaseCreated,
		UpdateText:   fmt.Sprintf("New case created from location (%.6f, %.6f)", c.Latitude, c.Longitude),
	}); err != nil {
		log.WithError(err).Warn("Failed to append case created update")
	}

	if err := s.publisher.PublishCaseCreated(ctx, c.ID); err != nil {
		// Обращение уже сохранено; потерянное событие группировки
		// не должно валить создание
		log.WithError(err).Error("Failed to enqueue case for grouping")
	}

	log.Info("Case created successfully")
	return nil
}

// GetCase получает обращение по ID (сначала кэш, потом бд)
func (s *caseService) GetCase(ctx context.Context, id int64) (*models.Case, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "case",
		"method":  "GetCase",
		"case_id": id,
	})

	cached, err := s.repo.GetCaseFromCache(ctx, id)
	if err != nil {
		log.WithError(err).Warn("Failed to read case from cache")
	}
	if cached != nil {
		log.Debug("Case fetched from cache")
		return cached, nil
	}

	c, err := s.repo.GetCaseByID(ctx, id)
	if err != nil {
		log.WithError(err).Warn("Failed to get case from repository")
		return nil, fmt.Errorf("service: could not get case: %w", err)
	}

	if err := s.repo.SetCaseCache(ctx, c); err != nil {
		log.WithError(err).Warn("Failed to cache case")
	}

	return c, nil
}

// NearbyCases возвращает обращения рядом с точкой (карта хелпера)
// с расстоянием до каждого
func (s *caseService) NearbyCases(ctx context.Context, lat, lon, radiusKm float64, statuses []string) ([]*models.NearbyCase, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":   "case",
		"method":    "NearbyCases",
		"radius_km": radiusKm,
	})

	if radiusKm <= 0 {
		return nil, fmt.Errorf("service: radius %.2f km: %w", radiusKm, ErrInvalidRadius)
	}
	if !geo.ValidCoordinates(lat, lon) {
		return nil, fmt.Errorf("service: point (%.4f, %.4f): %w", lat, lon, ErrInvalidCoordinates)
	}

	if len(statuses) == 0 {
		statuses = []string{models.CaseStatusOpen}
	}

	cases, err := s.repo.ListCasesByStatus(ctx, statuses)
	if err != nil {
		log.WithError(err).Error("Failed to list cases by status")
		return nil, fmt.Errorf("service: could not list cases: %w", err)
	}

	radiusMeters := radiusKm * 1000
	origin := geo.NewPoint(lat, lon)

	nearby := make([]*models.NearbyCase, 0)
	for _, c := range cases {
		distanceMeters := geo.Distance(origin, geo.NewPoint(c.Latitude, c.Longitude))
		if distanceMeters > radiusMeters {
			continue
		}
		nearby = append(nearby, &models.NearbyCase{
			Case:       *c,
			DistanceKm: math.Round(distanceMeters/10) / 100,
		})
	}

	// Свежие обращения первыми, как на карте
	sort.Slice(nearby, func(i, j int) bool {
		return nearby[i].CreatedAt.After(nearby[j].CreatedAt)
	})

	log.WithField("count", len(nearby)).Info("Nearby cases listed")
	return nearby, nil
}

// RouteToCase оценивает прямой маршрут от точки хелпера до обращения.
// Расстояние считается по дуге большого круга, время прибытия - от средней
// скорости routeAverageSpeedKmh; дорожная сеть не учитывается.
func (s *caseService) RouteToCase(ctx context.Context, id int64, fromLat, fromLon float64) (*models.RouteEstimate, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "case",
		"method":  "RouteToCase",
		"case_id": id,
	})

	if !geo.ValidCoordinates(fromLat, fromLon) {
		return nil, fmt.Errorf("service: route origin (%.4f, %.4f): %w", fromLat, fromLon, ErrInvalidCoordinates)
	}

	c, err := s.GetCase(ctx, id)
	if err != nil {
		return nil, err
	}

	distanceMeters := geo.Distance(geo.NewPoint(fromLat, fromLon), geo.NewPoint(c.Latitude, c.Longitude))
	distanceKm := distanceMeters / 1000

	estimate := &models.RouteEstimate{
		CaseID:        c.ID,
		FromLatitude:  fromLat,
		FromLongitude: fromLon,
		ToLatitude:    c.Latitude,
		ToLongitude:   c.Longitude,
		DistanceKm:    math.Round(distanceKm*100) / 100,
		ETAMinutes:    int(distanceKm / routeAverageSpeedKmh * 60),
	}

	log.WithField("distance_km", estimate.DistanceKm).Info("Route to case estimated")
	return estimate, nil
}

// UpdateCaseStatus переводит обращение в новый статус.
// Допускаются только переходы вперед по жизненному циклу.
func (s *caseService) UpdateCaseStatus(ctx context.Context, id int64, status string) (*models.Case, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "case",
		"method":  "UpdateCaseStatus",
		"case_id": id,
		"status":  status,
	})
	log.Info("Attempting to update case status")

	newRank, ok := statusRank[status]
	if !ok {
		return nil, fmt.Errorf("service: unknown status %q: %w", status, ErrInvalidStatusTransition)
	}

	existing, err := s.repo.GetCaseByID(ctx, id)
	if err != nil {
		log.WithError(err).Warn("Attempted to update status of a non-existent case")
		return nil, fmt.Errorf("service: could not load case %d: %w", id, err)
	}

	currentRank := statusRank[existing.Status]
	if newRank < currentRank {
		return nil, fmt.Errorf("service: transition %s -> %s: %w", existing.Status, status, ErrInvalidStatusTransition)
	}

	markResolved := status == models.CaseStatusResolved && existing.ResolvedAt == nil
	if err := s.repo.UpdateCaseStatus(ctx, id, status, markResolved); err != nil {
		log.WithError(err).Error("Failed to update case status in repository")
		return nil, fmt.Errorf("service: could not update case status: %w", err)
	}

	if err := s.repo.AppendUpdate(ctx, &models.Update{
		CaseID:       id,
		UpdateSource: models.UpdateSourceSystem,
		UpdateType:   models.UpdateTypeStatusChange,
		UpdateText:   fmt.Sprintf("Status changed to %s", status),
	}); err != nil {
		log.WithError(err).Warn("Failed to append status change update")
	}

	if err := s.repo.InvalidateCaseCache(ctx, id); err != nil {
		log.WithError(err).Warn("Failed to invalidate case cache")
	}

	updated, err := s.repo.GetCaseByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("service: could not reload case %d: %w", id, err)
	}

	log.Info("Case status updated successfully")
	return updated, nil
}
