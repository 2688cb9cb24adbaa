package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/deniz/credbridge/internal/app/models"
	"github.com/deniz/credbridge/internal/app/repositories"
	"github.com/deniz/credbridge/internal/pkg/apperrors"
)

// TopicService defines the interface for content topic operations
type TopicService interface {
	CreateTopic(ctx context.Context, topic *models.CourseContentTopic) (int64, error)
	GetTopicByID(ctx context.Context, id int64) (*models.CourseContentTopic, error)
	GetTopicsForCourse(ctx context.Context, courseID int64) ([]*models.CourseContentTopic, error)
	DeleteTopic(ctx context.Context, id int64) error
}

// topicServiceImpl implements the TopicService interface
type topicServiceImpl struct {
	topicRepo  *repositories.TopicRepository
	courseRepo *repositories.CourseRepository
}

// NewTopicService creates a new topic service instance
func NewTopicService(topicRepo *repositories.TopicRepository, courseRepo *repositories.CourseRepository) TopicService {
	return &topicServiceImpl{
		topicRepo:  topicRepo,
		courseRepo: courseRepo,
	}
}

// validateTopic validates topic data before database operations
func validateTopic(topic *models.CourseContentTopic) error {
	if topic == nil {
		return fmt.Errorf("%w: topic is nil", apperrors.ErrValidationFailed)
	}

	if strings.TrimSpace(topic.TopicName) == "" {
		return fmt.Errorf("%w: topic name cannot be empty", apperrors.ErrValidationFailed)
	}

	if topic.CourseID <= 0 {
		return fmt.Errorf("%w: course ID is required", apperrors.ErrValidationFailed)
	}

	if topic.WeightPercentage < 0 || topic.WeightPercentage > 100 {
		return fmt.Errorf("%w: weight percentage must be between 0 and 100", apperrors.ErrValidationFailed)
	}

	return nil
}

// CreateTopic creates a new content topic under an existing course
func (s *topicServiceImpl) CreateTopic(ctx context.Context, topic *models.CourseContentTopic) (int64, error) {
	if err := validateTopic(topic); err != nil {
		return 0, err
	}

	// Owning course must exist
	if _, err := s.courseRepo.GetByID(ctx, topic.CourseID); err != nil {
		if errors.Is(err, apperrors.ErrCourseNotFound) {
			return 0, apperrors.ErrCourseNotFound
		}
		return 0, fmt.Errorf("error checking course: %w", err)
	}

	id, err := s.topicRepo.Create(ctx, topic)
	if err != nil {
		return 0, fmt.Errorf("error creating topic: %w", err)
	}
	return id, nil
}

// GetTopicByID retrieves a content topic by ID
func (s *topicServiceImpl) GetTopicByID(ctx context.Context, id int64) (*models.CourseContentTopic, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: invalid topic ID", apperrors.ErrValidationFailed)
	}

	topic, err := s.topicRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrTopicNotFound) {
			return nil, apperrors.ErrTopicNotFound
		}
		return nil, fmt.Errorf("error retrieving topic: %w", err)
	}
	return topic, nil
}

// GetTopicsForCourse retrieves all content topics of a course
func (s *topicServiceImpl) GetTopicsForCourse(ctx context.Context, courseID int64) ([]*models.CourseContentTopic, error) {
	if courseID <= 0 {
		return nil, fmt.Errorf("%w: invalid course ID", apperrors.ErrValidationFailed)
	}

	topics, err := s.topicRepo.GetByCourseID(ctx, courseID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving topics: %w", err)
	}
	return topics, nil
}

// DeleteTopic deletes a content topic by ID
func (s *topicServiceImpl) DeleteTopic(ctx context.Context, id int64) error {
	if id <= 0 {
		return fmt.Errorf("%w: invalid topic ID", apperrors.ErrValidationFailed)
	}

	err := s.topicRepo.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrTopicNotFound) {
			return apperrors.ErrTopicNotFound
		}
		return fmt.Errorf("error deleting topic: %w", err)
	}
	return nil
}
