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

// TopicRepository handles course content topic database operations
type TopicRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewTopicRepository creates a new TopicRepository
func NewTopicRepository(db *pgxpool.Pool) *TopicRepository {
	return &TopicRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Create inserts a new content topic and returns its assigned ID
func (r *TopicRepository) Create(ctx context.Context, topic *models.CourseContentTopic) (int64, error) {
	sql, args, err := r.sb.Insert("course_content_topics").
		Columns("course_id", "topic_name", "weight_percentage").
		Values(topic.CourseID, topic.TopicName, topic.WeightPercentage).
		Suffix("RETURNING id").
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building create topic SQL")
		return 0, fmt.Errorf("failed to build create topic query: %w", err)
	}

	var id int64
	err = r.db.QueryRow(ctx, sql, args...).Scan(&id)
	if err != nil {
		if isForeignKeyError(err) {
			return 0, apperrors.ErrCourseNotFound
		}
		logger.Error().Err(err).Msg("Error executing create topic query")
		return 0, fmt.Errorf("error creating topic: %w", err)
	}

	return id, nil
}

// GetByID retrieves a content topic by ID
func (r *TopicRepository) GetByID(ctx context.Context, id int64) (*models.CourseContentTopic, error) {
	sql, args, err := r.sb.Select("id", "course_id", "topic_name", "weight_percentage").
		From("course_content_topics").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building get topic by ID SQL")
		return nil, fmt.Errorf("failed to build get topic query: %w", err)
	}

	topic := &models.CourseContentTopic{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(&topic.ID, &topic.CourseID, &topic.TopicName, &topic.WeightPercentage)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrTopicNotFound
		}
		logger.Error().Err(err).Int64("topicID", id).Msg("Error scanning topic row")
		return nil, fmt.Errorf("error getting topic by ID: %w", err)
	}

	return topic, nil
}

// GetByCourseID retrieves all content topics of a course in insertion order
func (r *TopicRepository) GetByCourseID(ctx context.Context, courseID int64) ([]*models.CourseContentTopic, error) {
	sql, args, err := r.sb.Select("id", "course_id", "topic_name", "weight_percentage").
		From("course_content_topics").
		Where(squirrel.Eq{"course_id": courseID}).
		OrderBy("id ASC").
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building get topics by course SQL")
		return nil, fmt.Errorf("failed to build get topics by course query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("courseID", courseID).Msg("Error executing get topics by course query")
		return nil, fmt.Errorf("error querying topics: %w", err)
	}
	defer rows.Close()

	topics := []*models.CourseContentTopic{}
	for rows.Next() {
		topic := &models.CourseContentTopic{}
		if err := rows.Scan(&topic.ID, &topic.CourseID, &topic.TopicName, &topic.WeightPercentage); err != nil {
			logger.Error().Err(err).Msg("Error scanning topic row")
			return nil, fmt.Errorf("error scanning topic row: %w", err)
		}
		topics = append(topics, topic)
	}

	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating topic rows")
		return nil, fmt.Errorf("error iterating topic rows: %w", err)
	}

	return topics, nil
}

// Delete deletes a content topic by ID
func (r *TopicRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("course_content_topics").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building delete topic SQL")
		return fmt.Errorf("failed to build delete topic query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("topicID", id).Msg("Error executing delete topic query")
		return fmt.Errorf("error deleting topic: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrTopicNotFound
	}

	return nil
}
