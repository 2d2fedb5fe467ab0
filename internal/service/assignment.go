package service

import (
	"context"
	"fmt"

	"github.com/kmalyshev/beacon_response_system/internal/models"
	"github.com/sirupsen/logrus"
)

// AssignmentRepository определяет контракт для работы с бд назначений
type AssignmentRepository interface {
	CreateAssignment(ctx context.Context, a *models.Assignment) error
	GetAssignmentByID(ctx context.Context, id int64) (*models.Assignment, error)
	// FindActiveAssignment ищет незавершенное назначение хелпера на обращение,
	// возвращает nil без ошибки, если его нет
	FindActiveAssignment(ctx context.Context, caseID, helperUserID int64) (*models.Assignment, error)
	ListAssignmentsForCase(ctx context.Context, caseID int64) ([]*models.Assignment, error)
	ListAssignmentsForHelper(ctx context.Context, helperUserID int64, includeCompleted bool) ([]*models.AssignmentWithCase, error)
	CompleteAssignment(ctx context.Context, id int64, outcome, notes string) (*models.Assignment, error)
	// CountAssignments возвращает общее и завершенное количество назначений
	// по обращению
	CountAssignments(ctx context.Context, caseID int64) (total int, completed int, err error)
}

// AssignmentService определяет контракт жизненного цикла назначений
type AssignmentService interface {
	CreateAssignment(ctx context.Context, caseID, helperUserID int64, notes string) (*models.Assignment, error)
	GetAssignment(ctx context.Context, id int64) (*models.Assignment, error)
	ListForCase(ctx context.Context, caseID int64) ([]*models.Assignment, error)
	ListForHelper(ctx context.Context, helperUserID int64, includeCompleted bool) ([]*models.AssignmentWithCase, error)
	CompleteAssignment(ctx context.Context, id int64, outcome, notes string) (*models.Assignment, error)
}

type assignmentService struct {
	repo   AssignmentRepository
	cases  CaseRepository
	logger *logrus.Logger
}

func NewAssignmentService(repo AssignmentRepository, cases CaseRepository, logger *logrus.Logger) AssignmentService {
	return &assignmentService{
		repo:   repo,
		cases:  cases,
		logger: logger,
	}
}

// CreateAssignment - хелпер берет обращение в работу.
// Обращение должно быть открыто или уже назначено (несколько хелперов
// на одно обращение допускаются), повторное активное назначение того же
// хелпера запрещено.
func (s *assignmentService) CreateAssignment(ctx context.Context, caseID, helperUserID int64, notes string) (*models.Assignment, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":        "assignment",
		"method":         "CreateAssignment",
		"case_id":        caseID,
		"helper_user_id": helperUserID,
	})
	log.Info("Attempting to create assignment")

	c, err := s.cases.GetCaseByID(ctx, caseID)
	if err != nil {
		log.WithError(err).Warn("Assignment requested for non-existent case")
		return nil, fmt.Errorf("service: could not load case %d: %w", caseID, err)
	}

	if c.Status != models.CaseStatusOpen && c.Status != models.CaseStatusAssigned {
		log.WithField("status", c.Status).Warn("Assignment requested for unavailable case")
		return nil, fmt.Errorf("service: case %d has status %q: %w", caseID, c.Status, ErrCaseUnavailable)
	}

	existing, err := s.repo.FindActiveAssignment(ctx, caseID, helperUserID)
	if err != nil {
		log.WithError(err).Error("Failed to check existing assignment")
		return nil, fmt.Errorf("service: could not check existing assignment: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("service: helper %d, case %d: %w", helperUserID, caseID, ErrAlreadyAssigned)
	}

	assignment := &models.Assignment{
		CaseID:       caseID,
		HelperUserID: helperUserID,
		Notes:        notes,
	}
	if err := s.repo.CreateAssignment(ctx, assignment); err != nil {
		log.WithError(err).Error("Failed to create assignment in repository")
		return nil, fmt.Errorf("service: could not create assignment: %w", err)
	}

	if c.Status == models.CaseStatusOpen {
		if err := s.cases.UpdateCaseStatus(ctx, caseID, models.CaseStatusAssigned, false); err != nil {
			log.WithError(err).Error("Failed to mark case as assigned")
			return nil, fmt.Errorf("service: could not mark case assigned: %w", err)
		}
		if err := s.cases.InvalidateCaseCache(ctx, caseID); err != nil {
			log.WithError(err).Warn("Failed to invalidate case cache")
		}
	}

	if err := s.cases.AppendUpdate(ctx, &models.Update{
		CaseID:       caseID,
		AssignmentID: &assignment.ID,
		UpdateSource: models.UpdateSourceHelper,
		UpdateType:   models.UpdateTypeAssignmentCreated,
		UpdateText:   fmt.Sprintf("Helper %d assigned to case", helperUserID),
	}); err != nil {
		log.WithError(err).Warn("Failed to append assignment created update")
	}

	log.WithField("assignment_id", assignment.ID).Info("Assignment created successfully")
	return assignment, nil
}

// GetAssignment получает назначение по ID
func (s *assignmentService) GetAssignment(ctx context.Context, id int64) (*models.Assignment, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":       "assignment",
		"method":        "GetAssignment",
		"assignment_id": id,
	})

	assignment, err := s.repo.GetAssignmentByID(ctx, id)
	if err != nil {
		log.WithError(err).Warn("Failed to get assignment from repository")
		return nil, fmt.Errorf("service: could not get assignment: %w", err)
	}
	return assignment, nil
}

// ListForCase возвращает все назначения по обращению
func (s *assignmentService) ListForCase(ctx context.Context, caseID int64) ([]*models.Assignment, error) {
	assignments, err := s.repo.ListAssignmentsForCase(ctx, caseID)
	if err != nil {
		return nil, fmt.Errorf("service: could not list assignments for case %d: %w", caseID, err)
	}
	return assignments, nil
}

// ListForHelper возвращает назначения хелпера с краткой информацией об обращениях
func (s *assignmentService) ListForHelper(ctx context.Context, helperUserID int64, includeCompleted bool) ([]*models.AssignmentWithCase, error) {
	assignments, err := s.repo.ListAssignmentsForHelper(ctx, helperUserID, includeCompleted)
	if err != nil {
		return nil, fmt.Errorf("service: could not list assignments for helper %d: %w", helperUserID, err)
	}
	return assignments, nil
}

// CompleteAssignment завершает назначение. Когда завершены все назначения
// по обращению, обращение переводится в resolved.
func (s *assignmentService) CompleteAssignment(ctx context.Context, id int64, outcome, notes string) (*models.Assignment, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":       "assignment",
		"method":        "CompleteAssignment",
		"assignment_id": id,
	})
	log.Info("Attempting to complete assignment")

	assignment, err := s.repo.CompleteAssignment(ctx, id, outcome, notes)
	if err != nil {
		log.WithError(err).Warn("Failed to complete assignment in repository")
		return nil, fmt.Errorf("service: could not complete assignment: %w", err)
	}

	total, completed, err := s.repo.CountAssignments(ctx, assignment.CaseID)
	if err != nil {
		log.WithError(err).Error("Failed to count assignments for case")
		return nil, fmt.Errorf("service: could not count assignments: %w", err)
	}

	if total == completed {
		if err := s.cases.UpdateCaseStatus(ctx, assignment.CaseID, models.CaseStatusResolved, true); err != nil {
			log.WithError(err).Error("Failed to resolve case")
			return nil, fmt.Errorf("service: could not resolve case %d: %w", assignment.CaseID, err)
		}
		if err := s.cases.InvalidateCaseCache(ctx, assignment.CaseID); err != nil {
			log.WithError(err).Warn("Failed to invalidate case cache")
		}
		log.WithField("case_id", assignment.CaseID).Info("All assignments completed, case resolved")
	}

	if err := s.cases.AppendUpdate(ctx, &models.Update{
		CaseID:       assignment.CaseID,
		AssignmentID: &assignment.ID,
		UpdateSource: models.UpdateSourceHelper,
		UpdateType:   models.UpdateTypeAssignmentCompleted,
		UpdateText:   fmt.Sprintf("Assignment completed: %s", outcome),
	}); err != nil {
		log.WithError(err).Warn("Failed to append assignment completed update")
	}

	log.Info("Assignment completed successfully")
	return assignment, nil
}
