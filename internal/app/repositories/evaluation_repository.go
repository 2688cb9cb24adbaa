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

// EvaluationRepository handles transfer evaluation result database operations.
// Results are insert-only; there is no update path.
type EvaluationRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewEvaluationRepository creates a new EvaluationRepository
func NewEvaluationRepository(db *pgxpool.Pool) *EvaluationRepository {
	return &EvaluationRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Save inserts a new evaluation result and returns it with the assigned
// identity and creation timestamp filled in.
func (r *EvaluationRepository) Save(ctx context.Context, result *models.TransferEvaluationResult) (*models.TransferEvaluationResult, error) {
	sql, args, err := r.sb.Insert("transfer_evaluation_results").
		Columns("source_course_id", "target_course_id", "overlap_percentage", "eligible", "notes").
		Values(result.SourceCourseID, result.TargetCourseID, result.OverlapPercentage, result.Eligible, result.Notes).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building save evaluation SQL")
		return nil, fmt.Errorf("failed to build save evaluation query: %w", err)
	}

	stored := *result
	err = r.db.QueryRow(ctx, sql, args...).Scan(&stored.ID, &stored.CreatedAt)
	if err != nil {
		if isForeignKeyError(err) {
			return nil, apperrors.ErrCourseNotFound
		}
		logger.Error().Err(err).Msg("Error executing save evaluation query")
		return nil, fmt.Errorf("error saving evaluation: %w", err)
	}

	return &stored, nil
}

// GetByID retrieves an evaluation result by ID
func (r *EvaluationRepository) GetByID(ctx context.Context, id int64) (*models.TransferEvaluationResult, error) {
	sql, args, err := r.sb.Select("id", "source_course_id", "target_course_id", "overlap_percentage", "eligible", "notes", "created_at").
		From("transfer_evaluation_results").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building get evaluation by ID SQL")
		return nil, fmt.Errorf("failed to build get evaluation query: %w", err)
	}

	result := &models.TransferEvaluationResult{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&result.ID, &result.SourceCourseID, &result.TargetCourseID,
		&result.OverlapPercentage, &result.Eligible, &result.Notes, &result.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrEvaluationNotFound
		}
		logger.Error().Err(err).Int64("evaluationID", id).Msg("Error scanning evaluation row")
		return nil, fmt.Errorf("error getting evaluation by ID: %w", err)
	}

	return result, nil
}

// GetBySourceCourseID retrieves all evaluation results where the given course
// was the source, newest first. Returns an empty slice when none exist.
func (r *EvaluationRepository) GetBySourceCourseID(ctx context.Context, courseID int64) ([]*models.TransferEvaluationResult, error) {
	sql, args, err := r.sb.Select("id", "source_course_id", "target_course_id", "overlap_percentage", "eligible", "notes", "created_at").
		From("transfer_evaluation_results").
		Where(squirrel.Eq{"source_course_id": courseID}).
		OrderBy("created_at DESC", "id DESC").
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building get evaluations by course SQL")
		return nil, fmt.Errorf("failed to build get evaluations by course query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("courseID", courseID).Msg("Error executing get evaluations by course query")
		return nil, fmt.Errorf("error querying evaluations: %w", err)
	}
	defer rows.Close()

	results := []*models.TransferEvaluationResult{}
	for rows.Next() {
		result := &models.TransferEvaluationResult{}
		if err := rows.Scan(
			&result.ID, &result.SourceCourseID, &result.TargetCourseID,
			&result.OverlapPercentage, &result.Eligible, &result.Notes, &result.CreatedAt); err != nil {
			logger.Error().Err(err).Msg("Error scanning evaluation row")
			return nil, fmt.Errorf("error scanning evaluation row: %w", err)
		}
		results = append(results, result)
	}

	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating evaluation rows")
		return nil, fmt.Errorf("error iterating evaluation rows: %w", err)
	}

	return results, nil
}
