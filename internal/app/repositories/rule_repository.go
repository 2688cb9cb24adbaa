package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/deniz/credbridge/internal/app/models"
	"github.com/deniz/credbridge/internal/pkg/apperrors"
	"github.com/deniz/credbridge/internal/pkg/logger"
)

// RuleRepository handles transfer rule database operations
type RuleRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewRuleRepository creates a new RuleRepository
func NewRuleRepository(db *pgxpool.Pool) *RuleRepository {
	return &RuleRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

const ruleColumns = "id, source_university_id, target_university_id, minimum_overlap_percentage, credit_hour_tolerance, active"

func scanRule(row pgx.Row) (*models.TransferRule, error) {
	rule := &models.TransferRule{}
	err := row.Scan(
		&rule.ID,
		&rule.SourceUniversityID,
		&rule.TargetUniversityID,
		&rule.MinimumOverlapPercentage,
		&rule.CreditHourTolerance,
		&rule.Active,
	)
	if err != nil {
		return nil, err
	}
	return rule, nil
}

// Create inserts a new transfer rule and returns its assigned ID
func (r *RuleRepository) Create(ctx context.Context, rule *models.TransferRule) (int64, error) {
	sql, args, err := r.sb.Insert("transfer_rules").
		Columns("source_university_id", "target_university_id", "minimum_overlap_percentage", "credit_hour_tolerance", "active").
		Values(rule.SourceUniversityID, rule.TargetUniversityID, rule.MinimumOverlapPercentage, rule.CreditHourTolerance, rule.Active).
		Suffix("RETURNING id").
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building create rule SQL")
		return 0, fmt.Errorf("failed to build create rule query: %w", err)
	}

	var id int64
	err = r.db.QueryRow(ctx, sql, args...).Scan(&id)
	if err != nil {
		if isForeignKeyError(err) {
			return 0, apperrors.ErrUniversityNotFound
		}
		logger.Error().Err(err).Msg("Error executing create rule query")
		return 0, fmt.Errorf("error creating rule: %w", err)
	}

	return id, nil
}

// GetByID retrieves a transfer rule by ID
func (r *RuleRepository) GetByID(ctx context.Context, id int64) (*models.TransferRule, error) {
	sql, args, err := r.sb.Select(ruleColumns).
		From("transfer_rules").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building get rule by ID SQL")
		return nil, fmt.Errorf("failed to build get rule query: %w", err)
	}

	rule, err := scanRule(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrTransferRuleNotFound
		}
		logger.Error().Err(err).Int64("ruleID", id).Msg("Error scanning rule row")
		return nil, fmt.Errorf("error getting rule by ID: %w", err)
	}

	return rule, nil
}

// GetAll retrieves all transfer rules
func (r *RuleRepository) GetAll(ctx context.Context) ([]*models.TransferRule, error) {
	sql, args, err := r.sb.Select(ruleColumns).
		From("transfer_rules").
		OrderBy("id ASC").
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building get all rules SQL")
		return nil, fmt.Errorf("failed to build get all rules query: %w", err)
	}

	return r.queryRules(ctx, sql, args)
}

// GetActiveByUniversityPair retrieves active rules for the ordered pair
// (source, target). Direction matters: rules from A to B are not returned
// for B to A lookups. Results come back in insertion order, which is the
// order the evaluation engine applies them in.
func (r *RuleRepository) GetActiveByUniversityPair(ctx context.Context, sourceUniversityID, targetUniversityID int64) ([]*models.TransferRule, error) {
	sql, args, err := r.sb.Select(ruleColumns).
		From("transfer_rules").
		Where(squirrel.Eq{
			"source_university_id": sourceUniversityID,
			"target_university_id": targetUniversityID,
			"active":               true,
		}).
		OrderBy("id ASC").
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building get active rules SQL")
		return nil, fmt.Errorf("failed to build get active rules query: %w", err)
	}

	return r.queryRules(ctx, sql, args)
}

func (r *RuleRepository) queryRules(ctx context.Context, sql string, args []interface{}) ([]*models.TransferRule, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing rules query")
		return nil, fmt.Errorf("error querying rules: %w", err)
	}
	defer rows.Close()

	rules := []*models.TransferRule{}
	for rows.Next() {
		rule, err := scanRule(rows)
		if err != nil {
			logger.Error().Err(err).Msg("Error scanning rule row")
			return nil, fmt.Errorf("error scanning rule row: %w", err)
		}
		rules = append(rules, rule)
	}

	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating rule rows")
		return nil, fmt.Errorf("error iterating rule rows: %w", err)
	}

	return rules, nil
}

// Delete deletes a transfer rule by ID
func (r *RuleRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("transfer_rules").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building delete rule SQL")
		return fmt.Errorf("failed to build delete rule query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("ruleID", id).Msg("Error executing delete rule query")
		return fmt.Errorf("error deleting rule: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrTransferRuleNotFound
	}

	return nil
}
