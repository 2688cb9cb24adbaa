package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/deniz/credbridge/internal/app/models"
	"github.com/deniz/credbridge/internal/app/repositories"
	"github.com/deniz/credbridge/internal/pkg/apperrors"
)

// RuleService defines the interface for transfer rule operations
type RuleService interface {
	CreateRule(ctx context.Context, rule *models.TransferRule) (int64, error)
	GetRuleByID(ctx context.Context, id int64) (*models.TransferRule, error)
	GetAllRules(ctx context.Context) ([]*models.TransferRule, error)
	DeleteRule(ctx context.Context, id int64) error
}

// ruleServiceImpl implements the RuleService interface
type ruleServiceImpl struct {
	ruleRepo       *repositories.RuleRepository
	universityRepo *repositories.UniversityRepository
}

// NewRuleService creates a new rule service instance
func NewRuleService(ruleRepo *repositories.RuleRepository, universityRepo *repositories.UniversityRepository) RuleService {
	return &ruleServiceImpl{
		ruleRepo:       ruleRepo,
		universityRepo: universityRepo,
	}
}

// validateRule validates transfer rule data before database operations
func validateRule(rule *models.TransferRule) error {
	if rule == nil {
		return fmt.Errorf("%w: rule is nil", apperrors.ErrValidationFailed)
	}

	if rule.SourceUniversityID <= 0 || rule.TargetUniversityID <= 0 {
		return fmt.Errorf("%w: source and target university IDs are required", apperrors.ErrValidationFailed)
	}

	if rule.MinimumOverlapPercentage < 0 || rule.MinimumOverlapPercentage > 100 {
		return fmt.Errorf("%w: minimum overlap percentage must be between 0 and 100", apperrors.ErrValidationFailed)
	}

	if rule.CreditHourTolerance != nil && *rule.CreditHourTolerance < 0 {
		return fmt.Errorf("%w: credit hour tolerance cannot be negative", apperrors.ErrValidationFailed)
	}

	return nil
}

// CreateRule creates a new transfer rule between two existing universities
func (s *ruleServiceImpl) CreateRule(ctx context.Context, rule *models.TransferRule) (int64, error) {
	if err := validateRule(rule); err != nil {
		return 0, err
	}

	// Both ends of the rule must exist
	for _, universityID := range []int64{rule.SourceUniversityID, rule.TargetUniversityID} {
		if _, err := s.universityRepo.GetByID(ctx, universityID); err != nil {
			if errors.Is(err, apperrors.ErrUniversityNotFound) {
				return 0, apperrors.ErrUniversityNotFound
			}
			return 0, fmt.Errorf("error checking university: %w", err)
		}
	}

	id, err := s.ruleRepo.Create(ctx, rule)
	if err != nil {
		return 0, fmt.Errorf("error creating rule: %w", err)
	}
	return id, nil
}

// GetRuleByID retrieves a transfer rule by ID
func (s *ruleServiceImpl) GetRuleByID(ctx context.Context, id int64) (*models.TransferRule, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: invalid rule ID", apperrors.ErrValidationFailed)
	}

	rule, err := s.ruleRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrTransferRuleNotFound) {
			return nil, apperrors.ErrTransferRuleNotFound
		}
		return nil, fmt.Errorf("error retrieving rule: %w", err)
	}
	return rule, nil
}

// GetAllRules retrieves all transfer rules
func (s *ruleServiceImpl) GetAllRules(ctx context.Context) ([]*models.TransferRule, error) {
	rules, err := s.ruleRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving rules: %w", err)
	}
	return rules, nil
}

// DeleteRule deletes a transfer rule by ID
func (s *ruleServiceImpl) DeleteRule(ctx context.Context, id int64) error {
	if id <= 0 {
		return fmt.Errorf("%w: invalid rule ID", apperrors.ErrValidationFailed)
	}

	err := s.ruleRepo.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrTransferRuleNotFound) {
			return apperrors.ErrTransferRuleNotFound
		}
		return fmt.Errorf("error deleting rule: %w", err)
	}
	return nil
}
