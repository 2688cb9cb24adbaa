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

// UniversityRepository handles university database operations
type UniversityRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewUniversityRepository creates a new UniversityRepository
func NewUniversityRepository(db *pgxpool.Pool) *UniversityRepository {
	return &UniversityRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Create inserts a new university and returns its assigned ID
func (r *UniversityRepository) Create(ctx context.Context, university *models.University) (int64, error) {
	sql, args, err := r.sb.Insert("universities").
		Columns("name", "country", "active").
		Values(university.Name, university.Country, university.Active).
		Suffix("RETURNING id").
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building create university SQL")
		return 0, fmt.Errorf("failed to build create university query: %w", err)
	}

	var id int64
	err = r.db.QueryRow(ctx, sql, args...).Scan(&id)
	if err != nil {
		if isDuplicateKeyError(err) {
			return 0, apperrors.ErrUniversityAlreadyExists
		}
		logger.Error().Err(err).Msg("Error executing create university query")
		return 0, fmt.Errorf("error creating university: %w", err)
	}

	return id, nil
}

// GetByID retrieves a university by ID
func (r *UniversityRepository) GetByID(ctx context.Context, id int64) (*models.University, error) {
	sql, args, err := r.sb.Select("id", "name", "country", "active").
		From("universities").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building get university by ID SQL")
		return nil, fmt.Errorf("failed to build get university query: %w", err)
	}

	university := &models.University{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(&university.ID, &university.Name, &university.Country, &university.Active)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrUniversityNotFound
		}
		logger.Error().Err(err).Int64("universityID", id).Msg("Error scanning university row")
		return nil, fmt.Errorf("error getting university by ID: %w", err)
	}

	return university, nil
}

// GetAll retrieves all universities ordered by name
func (r *UniversityRepository) GetAll(ctx context.Context) ([]*models.University, error) {
	sql, args, err := r.sb.Select("id", "name", "country", "active").
		From("universities").
		OrderBy("name ASC").
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building get all universities SQL")
		return nil, fmt.Errorf("failed to build get all universities query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing get all universities query")
		return nil, fmt.Errorf("error querying universities: %w", err)
	}
	defer rows.Close()

	universities := []*models.University{}
	for rows.Next() {
		university := &models.University{}
		if err := rows.Scan(&university.ID, &university.Name, &university.Country, &university.Active); err != nil {
			logger.Error().Err(err).Msg("Error scanning university row during get all")
			return nil, fmt.Errorf("error scanning university row: %w", err)
		}
		universities = append(universities, university)
	}

	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating university rows")
		return nil, fmt.Errorf("error iterating university rows: %w", err)
	}

	return universities, nil
}

// Delete deletes a university by ID
func (r *UniversityRepository) Delete(ctx context.Context, id int64) error {
	// Universities with courses must not be deleted
	var hasCourses bool
	checkSql, checkArgs, err := r.sb.Select("1").
		From("courses").
		Where(squirrel.Eq{"university_id": id}).
		Prefix("SELECT EXISTS (").Suffix(")").
		Limit(1).
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building check courses SQL")
		return fmt.Errorf("failed to build check courses query: %w", err)
	}

	err = r.db.QueryRow(ctx, checkSql, checkArgs...).Scan(&hasCourses)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		logger.Error().Err(err).Int64("universityID", id).Msg("Error checking associated courses")
		return fmt.Errorf("error checking associated courses: %w", err)
	}

	if hasCourses {
		return apperrors.ErrUniversityHasCourses
	}

	sql, args, err := r.sb.Delete("universities").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building delete university SQL")
		return fmt.Errorf("failed to build delete university query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("universityID", id).Msg("Error executing delete university query")
		return fmt.Errorf("error deleting university: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrUniversityNotFound
	}

	return nil
}
