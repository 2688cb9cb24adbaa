package services

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/rs/zerolog"

	"github.com/deniz/credbridge/internal/app/models"
	"github.com/deniz/credbridge/internal/pkg/apperrors"
)

// Notes carried on persisted evaluation results.
const (
	NoteNoActiveRule     = "no active transfer rule between institutions"
	NoteNoRuleSatisfied  = "no active rule satisfied all criteria"
	NoteTransferApproved = "transfer approved"
)

// CourseFinder resolves courses by identity.
type CourseFinder interface {
	GetByID(ctx context.Context, id int64) (*models.Course, error)
}

// TopicFinder loads the content topics of a course.
type TopicFinder interface {
	GetByCourseID(ctx context.Context, courseID int64) ([]*models.CourseContentTopic, error)
}

// RuleFinder loads the active transfer rules for an ordered university pair.
type RuleFinder interface {
	GetActiveByUniversityPair(ctx context.Context, sourceUniversityID, targetUniversityID int64) ([]*models.TransferRule, error)
}

// EvaluationStore persists and retrieves evaluation results.
type EvaluationStore interface {
	Save(ctx context.Context, result *models.TransferEvaluationResult) (*models.TransferEvaluationResult, error)
	GetByID(ctx context.Context, id int64) (*models.TransferEvaluationResult, error)
	GetBySourceCourseID(ctx context.Context, courseID int64) ([]*models.TransferEvaluationResult, error)
}

// EvaluationService defines the interface for transfer evaluation operations
type EvaluationService interface {
	EvaluateTransfer(ctx context.Context, sourceCourseID, targetCourseID int64) (*models.TransferEvaluationResult, error)
	GetEvaluationByID(ctx context.Context, id int64) (*models.TransferEvaluationResult, error)
	GetEvaluationsForCourse(ctx context.Context, courseID int64) ([]*models.TransferEvaluationResult, error)
}

// EvaluationOptions tunes evaluation policy.
type EvaluationOptions struct {
	// EmptySyllabusFullMatch keeps the historical policy of reporting 100%
	// overlap when both courses carry no topics at all. When false such
	// pairs report 0% instead.
	EmptySyllabusFullMatch bool
}

// evaluationServiceImpl implements the EvaluationService interface
type evaluationServiceImpl struct {
	courseRepo CourseFinder
	topicRepo  TopicFinder
	ruleRepo   RuleFinder
	resultRepo EvaluationStore
	opts       EvaluationOptions
	logger     zerolog.Logger
}

// NewEvaluationService creates a new evaluation service instance
func NewEvaluationService(
	courseRepo CourseFinder,
	topicRepo TopicFinder,
	ruleRepo RuleFinder,
	resultRepo EvaluationStore,
	opts EvaluationOptions,
	logger zerolog.Logger,
) EvaluationService {
	return &evaluationServiceImpl{
		courseRepo: courseRepo,
		topicRepo:  topicRepo,
		ruleRepo:   ruleRepo,
		resultRepo: resultRepo,
		opts:       opts,
		logger:     logger,
	}
}

// EvaluateTransfer computes the syllabus overlap between the source and
// target course, applies the active transfer rules of the ordered
// institution pair, and persists the verdict. Evaluating a course against
// itself is allowed and takes the same path as any other pair.
func (s *evaluationServiceImpl) EvaluateTransfer(ctx context.Context, sourceCourseID, targetCourseID int64) (*models.TransferEvaluationResult, error) {
	if sourceCourseID <= 0 || targetCourseID <= 0 {
		return nil, fmt.Errorf("%w: course IDs must be positive", apperrors.ErrValidationFailed)
	}

	source, err := s.resolveActiveCourse(ctx, sourceCourseID)
	if err != nil {
		return nil, err
	}
	target, err := s.resolveActiveCourse(ctx, targetCourseID)
	if err != nil {
		return nil, err
	}

	sourceTopics, err := s.topicRepo.GetByCourseID(ctx, sourceCourseID)
	if err != nil {
		return nil, fmt.Errorf("error loading source topics: %w", err)
	}
	targetTopics, err := s.topicRepo.GetByCourseID(ctx, targetCourseID)
	if err != nil {
		return nil, fmt.Errorf("error loading target topics: %w", err)
	}

	overlap := s.computeOverlap(sourceTopics, targetTopics)

	rules, err := s.ruleRepo.GetActiveByUniversityPair(ctx, source.UniversityID, target.UniversityID)
	if err != nil {
		return nil, fmt.Errorf("error loading transfer rules: %w", err)
	}

	eligible, notes := decideEligibility(rules, overlap, source.CreditHours, target.CreditHours)

	result := &models.TransferEvaluationResult{
		SourceCourseID:    source.ID,
		TargetCourseID:    target.ID,
		OverlapPercentage: overlap,
		Eligible:          eligible,
		Notes:             notes,
	}

	stored, err := s.resultRepo.Save(ctx, result)
	if err != nil {
		return nil, fmt.Errorf("error saving evaluation result: %w", err)
	}

	s.logger.Info().
		Int64("sourceCourseID", source.ID).
		Int64("targetCourseID", target.ID).
		Float64("overlap", overlap).
		Bool("eligible", eligible).
		Msg("Transfer evaluation completed")

	return stored, nil
}

// resolveActiveCourse loads a course and rejects inactive ones. Deactivated
// courses are not valid transfer endpoints in either direction.
func (s *evaluationServiceImpl) resolveActiveCourse(ctx context.Context, id int64) (*models.Course, error) {
	course, err := s.courseRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrCourseNotFound) {
			return nil, apperrors.ErrCourseNotFound
		}
		return nil, fmt.Errorf("error retrieving course %d: %w", id, err)
	}
	if !course.Active {
		return nil, fmt.Errorf("%w: course %d", apperrors.ErrCourseNotActive, id)
	}
	return course, nil
}

// computeOverlap returns the share of the source course's weighted syllabus
// that has a matching topic on the target side, as a percentage in [0,100].
//
// Topic names match case-insensitively and each source topic is counted
// against at most one target topic (first match wins). Weights are not
// required to sum to 100 per course, so the quotient is clamped.
func (s *evaluationServiceImpl) computeOverlap(sourceTopics, targetTopics []*models.CourseContentTopic) float64 {
	if len(sourceTopics) == 0 && len(targetTopics) == 0 {
		if s.opts.EmptySyllabusFullMatch {
			return 100.0
		}
		return 0.0
	}
	if len(sourceTopics) == 0 || len(targetTopics) == 0 {
		return 0.0
	}

	matchedWeight := 0.0
	totalSourceWeight := 0.0

	for _, st := range sourceTopics {
		totalSourceWeight += st.WeightPercentage
		for _, tt := range targetTopics {
			if strings.EqualFold(st.TopicName, tt.TopicName) {
				matchedWeight += math.Min(st.WeightPercentage, tt.WeightPercentage)
				break
			}
		}
	}

	// Degenerate syllabi with all-zero weights would divide by zero
	if totalSourceWeight == 0 {
		totalSourceWeight = 100.0
	}

	overlap := (matchedWeight / totalSourceWeight) * 100
	return clampPercentage(overlap)
}

// decideEligibility applies rules in their natural (insertion) order; the
// first rule whose overlap threshold and credit-hour tolerance are both met
// wins. There is no priority field on rules.
func decideEligibility(rules []*models.TransferRule, overlap float64, sourceCredits, targetCredits int) (bool, string) {
	if len(rules) == 0 {
		return false, NoteNoActiveRule
	}

	creditDiff := sourceCredits - targetCredits
	if creditDiff < 0 {
		creditDiff = -creditDiff
	}

	for _, rule := range rules {
		if overlap >= rule.MinimumOverlapPercentage && creditDiff <= rule.Tolerance() {
			return true, NoteTransferApproved
		}
	}

	return false, NoteNoRuleSatisfied
}

func clampPercentage(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

// GetEvaluationByID retrieves a stored evaluation result by ID
func (s *evaluationServiceImpl) GetEvaluationByID(ctx context.Context, id int64) (*models.TransferEvaluationResult, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: invalid evaluation ID", apperrors.ErrValidationFailed)
	}

	result, err := s.resultRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrEvaluationNotFound) {
			return nil, apperrors.ErrEvaluationNotFound
		}
		return nil, fmt.Errorf("error retrieving evaluation: %w", err)
	}
	return result, nil
}

// GetEvaluationsForCourse retrieves all evaluations where the given course
// was the source. Courses with no history yield an empty slice, not an error.
func (s *evaluationServiceImpl) GetEvaluationsForCourse(ctx context.Context, courseID int64) ([]*models.TransferEvaluationResult, error) {
	if courseID <= 0 {
		return nil, fmt.Errorf("%w: invalid course ID", apperrors.ErrValidationFailed)
	}

	results, err := s.resultRepo.GetBySourceCourseID(ctx, courseID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving evaluations: %w", err)
	}
	return results, nil
}
