package service

import (
	"context"
	"fmt"

	"github.com/kmalyshev/beacon_response_system/internal/config"
	"github.com/kmalyshev/beacon_response_system/internal/models"
	"github.com/kmalyshev/beacon_response_system/pkg/geo"
	"github.com/sirupsen/logrus"
)

// CaseRepository определяет контракт для работы с бд обращений и групп
type CaseRepository interface {
	CreateCase(ctx context.Context, c *models.Case) error
	GetCaseByID(ctx context.Context, id int64) (*models.Case, error)
	ListCasesByStatus(ctx context.Context, statuses []string) ([]*models.Case, error)
	ListOpenUngroupedCases(ctx context.Context, excludeID int64) ([]*models.Case, error)
	UpdateCaseStatus(ctx context.Context, id int64, status string, markResolved bool) error
	// CreateGroupWithMembers создает группу и назначает членство одной
	// транзакцией; идентификатор группы выдает sequence БД
	CreateGroupWithMembers(ctx context.Context, label string, caseIDs []int64) (int64, error)
	GetCaseGroup(ctx context.Context, id int64) (*models.CaseGroup, error)
	AppendUpdate(ctx context.Context, update *models.Update) error

	GetCaseFromCache(ctx context.Context, id int64) (*models.Case, error)
	SetCaseCache(ctx context.Context, c *models.Case) error
	InvalidateCaseCache(ctx context.Context, id int64) error
}

// GroupingService определяет контракт движка группировки обращений
type GroupingService interface {
	EvaluateGrouping(ctx context.Context, caseID int64) (*models.GroupingResult, error)
	GetGroup(ctx context.Context, id int64) (*models.CaseGroup, error)
}

type groupingService struct {
	repo   CaseRepository
	logger *logrus.Logger
	cfg    *config.Config
}

func NewGroupingService(repo CaseRepository, logger *logrus.Logger, cfg *config.Config) GroupingService {
	return &groupingService{
		repo:   repo,
		logger: logger,
		cfg:    cfg,
	}
}

// EvaluateGrouping решает, должно ли новое обращение породить кластер
// из близко расположенных открытых обращений.
//
// Кандидатами считаются только открытые обращения без группы: уже
// сгруппированные исключаются из выборки, чтобы повторный запуск не
// перезаписывал чужое членство. Если рядом набирается минимум
// cfg.GroupingMinGroupSize обращений (включая новое), создается группа
// и всем участникам проставляется ее идентификатор. Недобор до порога -
// штатный исход, а не ошибка.
func (s *groupingService) EvaluateGrouping(ctx context.Context, caseID int64) (*models.GroupingResult, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "grouping",
		"method":  "EvaluateGrouping",
		"case_id": caseID,
	})
	log.Info("Evaluating proximity grouping for case")

	newCase, err := s.repo.GetCaseByID(ctx, caseID)
	if err != nil {
		log.WithError(err).Warn("Failed to load case for grouping")
		return nil, fmt.Errorf("service: could not load case %d: %w", caseID, err)
	}

	if newCase.Status != models.CaseStatusOpen {
		log.WithField("status", newCase.Status).Warn("Grouping requested for non-open case")
		return nil, fmt.Errorf("service: case %d has status %q: %w", caseID, newCase.Status, ErrCaseNotOpen)
	}
	if newCase.CaseGroupID != nil {
		log.WithField("case_group_id", *newCase.CaseGroupID).Warn("Grouping requested for already grouped case")
		return nil, fmt.Errorf("service: case %d already in group %d: %w", caseID, *newCase.CaseGroupID, ErrCaseAlreadyGrouped)
	}

	candidates, err := s.repo.ListOpenUngroupedCases(ctx, caseID)
	if err != nil {
		log.WithError(err).Error("Failed to list candidate cases")
		return nil, fmt.Errorf("service: could not list candidate cases: %w", err)
	}

	origin := geo.NewPoint(newCase.Latitude, newCase.Longitude)
	bounds := geo.PointBounds(origin, s.cfg.GroupingRadiusMeters)

	var nearbyIDs []int64
	for _, candidate := range candidates {
		// В кластер входят только открытые обращения без группы
		if candidate.Status != models.CaseStatusOpen || candidate.CaseGroupID != nil {
			continue
		}

		point := geo.NewPoint(candidate.Latitude, candidate.Longitude)
		// Сначала дешевая рамка, потом точный гаверсинус
		if !geo.InBounds(bounds, point) {
			continue
		}
		if geo.Distance(origin, point) <= s.cfg.GroupingRadiusMeters {
			nearbyIDs = append(nearbyIDs, candidate.ID)
		}
	}

	// Порог: новое обращение плюс соседи
	if len(nearbyIDs)+1 < s.cfg.GroupingMinGroupSize {
		log.WithField("nearby_count", len(nearbyIDs)).Info("Not enough nearby cases to form a group")
		return &models.GroupingResult{
			GroupCreated: false,
			CasesFound:   append([]int64{caseID}, nearbyIDs...),
		}, nil
	}

	memberIDs := append([]int64{caseID}, nearbyIDs...)
	groupID, err := s.repo.CreateGroupWithMembers(ctx, "Proximity group", memberIDs)
	if err != nil {
		log.WithError(err).Error("Failed to create case group")
		return nil, fmt.Errorf("service: could not create case group: %w", err)
	}

	log = log.WithField("case_group_id", groupID)
	log.WithField("member_count", len(memberIDs)).Info("Case group created")

	if err := s.repo.AppendUpdate(ctx, &models.Update{
		CaseID:       caseID,
		UpdateSource: models.UpdateSourceSystem,
		UpdateType:   models.UpdateTypeGroupFormed,
		UpdateText:   fmt.Sprintf("Case grouped with %d nearby cases into group %d", len(nearbyIDs), groupID),
	}); err != nil {
		// Журнал событий вторичен по отношению к самой группировке
		log.WithError(err).Warn("Failed to append group formed update")
	}

	for _, id := range memberIDs {
		if err := s.repo.InvalidateCaseCache(ctx, id); err != nil {
			log.WithError(err).WithField("member_case_id", id).Warn("Failed to invalidate case cache")
		}
	}

	return &models.GroupingResult{
		GroupCreated: true,
		CaseGroupID:  &groupID,
		Cases:        memberIDs,
	}, nil
}

// GetGroup возвращает группу обращений с составом участников
func (s *groupingService) GetGroup(ctx context.Context, id int64) (*models.CaseGroup, error) {
	group, err := s.repo.GetCaseGroup(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("service: could not get case group %d: %w", id, err)
	}
	return group, nil
}
