package repositories

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories holds all the repository instances
type Repositories struct {
	UserRepository       *UserRepository
	UniversityRepository *UniversityRepository
	CourseRepository     *CourseRepository
	TopicRepository      *TopicRepository
	RuleRepository       *RuleRepository
	EvaluationRepository *EvaluationRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		UserRepository:       NewUserRepository(db),
		UniversityRepository: NewUniversityRepository(db),
		CourseRepository:     NewCourseRepository(db),
		TopicRepository:      NewTopicRepository(db),
		RuleRepository:       NewRuleRepository(db),
		EvaluationRepository: NewEvaluationRepository(db),
	}
}

// isDuplicateKeyError checks if the error is a PostgreSQL unique violation error.
func isDuplicateKeyError(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505" // 23505 is unique_violation
}

// isForeignKeyError checks if the error is a PostgreSQL foreign key violation error.
func isForeignKeyError(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23503" // 23503 is foreign_key_violation
}
