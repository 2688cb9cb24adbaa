package services

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deniz/credbridge/internal/app/models"
	"github.com/deniz/credbridge/internal/pkg/apperrors"
)

// In-memory fakes backing the evaluation service under test.

type fakeCourseRepo struct {
	courses map[int64]*models.Course
}

func (f *fakeCourseRepo) GetByID(_ context.Context, id int64) (*models.Course, error) {
	course, ok := f.courses[id]
	if !ok {
		return nil, apperrors.ErrCourseNotFound
	}
	return course, nil
}

type fakeTopicRepo struct {
	topics map[int64][]*models.CourseContentTopic
}

func (f *fakeTopicRepo) GetByCourseID(_ context.Context, courseID int64) ([]*models.CourseContentTopic, error) {
	return f.topics[courseID], nil
}

type fakeRuleRepo struct {
	rules []*models.TransferRule
}

func (f *fakeRuleRepo) GetActiveByUniversityPair(_ context.Context, sourceUniversityID, targetUniversityID int64) ([]*models.TransferRule, error) {
	var matched []*models.TransferRule
	for _, rule := range f.rules {
		if rule.Active && rule.SourceUniversityID == sourceUniversityID && rule.TargetUniversityID == targetUniversityID {
			matched = append(matched, rule)
		}
	}
	return matched, nil
}

type fakeEvaluationRepo struct {
	nextID  int64
	results []*models.TransferEvaluationResult
}

func (f *fakeEvaluationRepo) Save(_ context.Context, result *models.TransferEvaluationResult) (*models.TransferEvaluationResult, error) {
	f.nextID++
	stored := *result
	stored.ID = f.nextID
	stored.CreatedAt = time.Now()
	f.results = append(f.results, &stored)
	return &stored, nil
}

func (f *fakeEvaluationRepo) GetByID(_ context.Context, id int64) (*models.TransferEvaluationResult, error) {
	for _, r := range f.results {
		if r.ID == id {
			return r, nil
		}
	}
	return nil, apperrors.ErrEvaluationNotFound
}

func (f *fakeEvaluationRepo) GetBySourceCourseID(_ context.Context, courseID int64) ([]*models.TransferEvaluationResult, error) {
	results := []*models.TransferEvaluationResult{}
	for _, r := range f.results {
		if r.SourceCourseID == courseID {
			results = append(results, r)
		}
	}
	return results, nil
}

type evaluationFixture struct {
	courses *fakeCourseRepo
	topics  *fakeTopicRepo
	rules   *fakeRuleRepo
	store   *fakeEvaluationRepo
	service EvaluationService
}

func newEvaluationFixture(opts EvaluationOptions) *evaluationFixture {
	f := &evaluationFixture{
		courses: &fakeCourseRepo{courses: map[int64]*models.Course{}},
		topics:  &fakeTopicRepo{topics: map[int64][]*models.CourseContentTopic{}},
		rules:   &fakeRuleRepo{},
		store:   &fakeEvaluationRepo{},
	}
	f.service = NewEvaluationService(f.courses, f.topics, f.rules, f.store, opts, zerolog.Nop())
	return f
}

func (f *evaluationFixture) addCourse(id, universityID int64, creditHours int, active bool) {
	f.courses.courses[id] = &models.Course{
		ID:           id,
		UniversityID: universityID,
		CourseName:   "Course",
		CreditHours:  creditHours,
		Active:       active,
	}
}

func (f *evaluationFixture) addTopic(courseID int64, name string, weight float64) {
	f.topics.topics[courseID] = append(f.topics.topics[courseID], &models.CourseContentTopic{
		CourseID:         courseID,
		TopicName:        name,
		WeightPercentage: weight,
	})
}

func (f *evaluationFixture) addRule(sourceUni, targetUni int64, minOverlap float64, tolerance *int, active bool) {
	f.rules.rules = append(f.rules.rules, &models.TransferRule{
		SourceUniversityID:       sourceUni,
		TargetUniversityID:       targetUni,
		MinimumOverlapPercentage: minOverlap,
		CreditHourTolerance:      tolerance,
		Active:                   active,
	})
}

func intPtr(v int) *int { return &v }

func TestEvaluateTransfer_IdenticalSyllabusFullOverlap(t *testing.T) {
	f := newEvaluationFixture(EvaluationOptions{EmptySyllabusFullMatch: true})
	f.addCourse(1, 10, 3, true)
	f.addCourse(2, 20, 3, true)
	f.addTopic(1, "Linear Algebra", 60)
	f.addTopic(1, "Calculus", 40)
	f.addTopic(2, "Linear Algebra", 60)
	f.addTopic(2, "Calculus", 40)
	f.addRule(10, 20, 50, intPtr(0), true)

	result, err := f.service.EvaluateTransfer(context.Background(), 1, 2)
	require.NoError(t, err)

	assert.InDelta(t, 100.0, result.OverlapPercentage, 1e-9)
	assert.True(t, result.Eligible)
	assert.Equal(t, NoteTransferApproved, result.Notes)
	assert.NotZero(t, result.ID)
}

func TestEvaluateTransfer_CaseInsensitiveTopicMatch(t *testing.T) {
	f := newEvaluationFixture(EvaluationOptions{EmptySyllabusFullMatch: true})
	f.addCourse(1, 10, 3, true)
	f.addCourse(2, 20, 3, true)
	f.addTopic(1, "DATA STRUCTURES", 100)
	f.addTopic(2, "data structures", 100)

	result, err := f.service.EvaluateTransfer(context.Background(), 1, 2)
	require.NoError(t, err)

	assert.InDelta(t, 100.0, result.OverlapPercentage, 1e-9)
}

func TestEvaluateTransfer_PartialOverlapUsesMinWeight(t *testing.T) {
	f := newEvaluationFixture(EvaluationOptions{EmptySyllabusFullMatch: true})
	f.addCourse(1, 10, 3, true)
	f.addCourse(2, 20, 3, true)
	f.addTopic(1, "Recursion", 70)
	f.addTopic(1, "Graphs", 30)
	f.addTopic(2, "Recursion", 40)

	result, err := f.service.EvaluateTransfer(context.Background(), 1, 2)
	require.NoError(t, err)

	// min(70, 40) matched out of a total source weight of 100
	assert.InDelta(t, 40.0, result.OverlapPercentage, 1e-9)
}

func TestEvaluateTransfer_SourceTopicMatchesAtMostOnce(t *testing.T) {
	f := newEvaluationFixture(EvaluationOptions{EmptySyllabusFullMatch: true})
	f.addCourse(1, 10, 3, true)
	f.addCourse(2, 20, 3, true)
	f.addTopic(1, "Probability", 50)
	f.addTopic(2, "Probability", 30)
	f.addTopic(2, "probability", 50)

	result, err := f.service.EvaluateTransfer(context.Background(), 1, 2)
	require.NoError(t, err)

	// Only the first target topic counts: min(50, 30) out of 50
	assert.InDelta(t, 60.0, result.OverlapPercentage, 1e-9)
}

func TestEvaluateTransfer_OneEmptySyllabusYieldsZero(t *testing.T) {
	f := newEvaluationFixture(EvaluationOptions{EmptySyllabusFullMatch: true})
	f.addCourse(1, 10, 3, true)
	f.addCourse(2, 20, 3, true)
	f.addTopic(1, "Thermodynamics", 100)

	result, err := f.service.EvaluateTransfer(context.Background(), 1, 2)
	require.NoError(t, err)

	assert.Zero(t, result.OverlapPercentage)
	assert.False(t, result.Eligible)
}

func TestEvaluateTransfer_BothEmptySyllabiFullMatchPolicy(t *testing.T) {
	f := newEvaluationFixture(EvaluationOptions{EmptySyllabusFullMatch: true})
	f.addCourse(1, 10, 3, true)
	f.addCourse(2, 20, 3, true)
	f.addRule(10, 20, 50, intPtr(0), true)

	result, err := f.service.EvaluateTransfer(context.Background(), 1, 2)
	require.NoError(t, err)

	assert.InDelta(t, 100.0, result.OverlapPercentage, 1e-9)
	assert.True(t, result.Eligible)
}

func TestEvaluateTransfer_BothEmptySyllabiPolicyDisabled(t *testing.T) {
	f := newEvaluationFixture(EvaluationOptions{EmptySyllabusFullMatch: false})
	f.addCourse(1, 10, 3, true)
	f.addCourse(2, 20, 3, true)
	f.addRule(10, 20, 50, intPtr(0), true)

	result, err := f.service.EvaluateTransfer(context.Background(), 1, 2)
	require.NoError(t, err)

	assert.Zero(t, result.OverlapPercentage)
	assert.False(t, result.Eligible)
}

func TestEvaluateTransfer_AllZeroWeightsYieldZeroOverlap(t *testing.T) {
	f := newEvaluationFixture(EvaluationOptions{EmptySyllabusFullMatch: true})
	f.addCourse(1, 10, 3, true)
	f.addCourse(2, 20, 3, true)
	f.addTopic(1, "Optics", 0)
	f.addTopic(2, "Optics", 0)

	result, err := f.service.EvaluateTransfer(context.Background(), 1, 2)
	require.NoError(t, err)

	assert.Zero(t, result.OverlapPercentage)
}

func TestEvaluateTransfer_SelfEvaluationAllowed(t *testing.T) {
	f := newEvaluationFixture(EvaluationOptions{EmptySyllabusFullMatch: true})
	f.addCourse(1, 10, 3, true)
	f.addTopic(1, "Databases", 100)
	f.addRule(10, 10, 50, intPtr(0), true)

	result, err := f.service.EvaluateTransfer(context.Background(), 1, 1)
	require.NoError(t, err)

	assert.InDelta(t, 100.0, result.OverlapPercentage, 1e-9)
	assert.True(t, result.Eligible)
}

func TestEvaluateTransfer_CourseNotFound(t *testing.T) {
	f := newEvaluationFixture(EvaluationOptions{EmptySyllabusFullMatch: true})
	f.addCourse(1, 10, 3, true)

	_, err := f.service.EvaluateTransfer(context.Background(), 1, 99)
	assert.ErrorIs(t, err, apperrors.ErrCourseNotFound)
	assert.Empty(t, f.store.results)
}

func TestEvaluateTransfer_InactiveCourseRejected(t *testing.T) {
	f := newEvaluationFixture(EvaluationOptions{EmptySyllabusFullMatch: true})
	f.addCourse(1, 10, 3, true)
	f.addCourse(2, 20, 3, false)

	_, err := f.service.EvaluateTransfer(context.Background(), 1, 2)
	assert.ErrorIs(t, err, apperrors.ErrCourseNotActive)
	assert.Empty(t, f.store.results)
}

func TestEvaluateTransfer_NonPositiveIDsRejected(t *testing.T) {
	f := newEvaluationFixture(EvaluationOptions{EmptySyllabusFullMatch: true})

	_, err := f.service.EvaluateTransfer(context.Background(), 0, 2)
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

	_, err = f.service.EvaluateTransfer(context.Background(), 1, -5)
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestEvaluateTransfer_NoActiveRuleBetweenInstitutions(t *testing.T) {
	f := newEvaluationFixture(EvaluationOptions{EmptySyllabusFullMatch: true})
	f.addCourse(1, 10, 3, true)
	f.addCourse(2, 20, 3, true)
	f.addTopic(1, "Statistics", 100)
	f.addTopic(2, "Statistics", 100)
	// Rule exists for the reverse direction only
	f.addRule(20, 10, 50, intPtr(0), true)

	result, err := f.service.EvaluateTransfer(context.Background(), 1, 2)
	require.NoError(t, err)

	assert.False(t, result.Eligible)
	assert.Equal(t, NoteNoActiveRule, result.Notes)
	assert.Len(t, f.store.results, 1)
}

func TestEvaluateTransfer_InactiveRuleIgnored(t *testing.T) {
	f := newEvaluationFixture(EvaluationOptions{EmptySyllabusFullMatch: true})
	f.addCourse(1, 10, 3, true)
	f.addCourse(2, 20, 3, true)
	f.addTopic(1, "Statistics", 100)
	f.addTopic(2, "Statistics", 100)
	f.addRule(10, 20, 50, intPtr(0), false)

	result, err := f.service.EvaluateTransfer(context.Background(), 1, 2)
	require.NoError(t, err)

	assert.False(t, result.Eligible)
	assert.Equal(t, NoteNoActiveRule, result.Notes)
}

func TestEvaluateTransfer_RuleSatisfied(t *testing.T) {
	f := newEvaluationFixture(EvaluationOptions{EmptySyllabusFullMatch: true})
	f.addCourse(1, 10, 3, true)
	f.addCourse(2, 20, 3, true)
	f.addTopic(1, "Algorithms", 80)
	f.addTopic(1, "Compilers", 20)
	f.addTopic(2, "Algorithms", 80)
	f.addRule(10, 20, 50, intPtr(0), true)

	result, err := f.service.EvaluateTransfer(context.Background(), 1, 2)
	require.NoError(t, err)

	assert.InDelta(t, 80.0, result.OverlapPercentage, 1e-9)
	assert.True(t, result.Eligible)
	assert.Equal(t, NoteTransferApproved, result.Notes)
}

func TestEvaluateTransfer_CreditHourToleranceExceeded(t *testing.T) {
	f := newEvaluationFixture(EvaluationOptions{EmptySyllabusFullMatch: true})
	f.addCourse(1, 10, 5, true)
	f.addCourse(2, 20, 2, true)
	f.addTopic(1, "Networks", 100)
	f.addTopic(2, "Networks", 100)
	f.addRule(10, 20, 50, intPtr(1), true)

	result, err := f.service.EvaluateTransfer(context.Background(), 1, 2)
	require.NoError(t, err)

	assert.InDelta(t, 100.0, result.OverlapPercentage, 1e-9)
	assert.False(t, result.Eligible)
	assert.Equal(t, NoteNoRuleSatisfied, result.Notes)
}

func TestEvaluateTransfer_NilToleranceMeansExactCredits(t *testing.T) {
	f := newEvaluationFixture(EvaluationOptions{EmptySyllabusFullMatch: true})
	f.addCourse(1, 10, 4, true)
	f.addCourse(2, 20, 3, true)
	f.addTopic(1, "Signals", 100)
	f.addTopic(2, "Signals", 100)
	f.addRule(10, 20, 50, nil, true)

	result, err := f.service.EvaluateTransfer(context.Background(), 1, 2)
	require.NoError(t, err)

	assert.False(t, result.Eligible)
	assert.Equal(t, NoteNoRuleSatisfied, result.Notes)
}

func TestEvaluateTransfer_FirstSatisfyingRuleWins(t *testing.T) {
	f := newEvaluationFixture(EvaluationOptions{EmptySyllabusFullMatch: true})
	f.addCourse(1, 10, 3, true)
	f.addCourse(2, 20, 3, true)
	f.addTopic(1, "Geometry", 60)
	f.addTopic(1, "Topology", 40)
	f.addTopic(2, "Geometry", 60)
	// First rule demands more overlap than available, second one passes
	f.addRule(10, 20, 90, intPtr(0), true)
	f.addRule(10, 20, 50, intPtr(0), true)

	result, err := f.service.EvaluateTransfer(context.Background(), 1, 2)
	require.NoError(t, err)

	assert.True(t, result.Eligible)
	assert.Equal(t, NoteTransferApproved, result.Notes)
}

func TestGetEvaluationByID(t *testing.T) {
	f := newEvaluationFixture(EvaluationOptions{EmptySyllabusFullMatch: true})
	f.addCourse(1, 10, 3, true)
	f.addCourse(2, 20, 3, true)
	f.addTopic(1, "History", 100)
	f.addTopic(2, "History", 100)

	stored, err := f.service.EvaluateTransfer(context.Background(), 1, 2)
	require.NoError(t, err)

	fetched, err := f.service.GetEvaluationByID(context.Background(), stored.ID)
	require.NoError(t, err)
	assert.Equal(t, stored.ID, fetched.ID)
	assert.Equal(t, stored.Notes, fetched.Notes)
}

func TestGetEvaluationByID_NotFound(t *testing.T) {
	f := newEvaluationFixture(EvaluationOptions{EmptySyllabusFullMatch: true})

	_, err := f.service.GetEvaluationByID(context.Background(), 41)
	assert.ErrorIs(t, err, apperrors.ErrEvaluationNotFound)
}

func TestGetEvaluationByID_InvalidID(t *testing.T) {
	f := newEvaluationFixture(EvaluationOptions{EmptySyllabusFullMatch: true})

	_, err := f.service.GetEvaluationByID(context.Background(), 0)
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestGetEvaluationsForCourse_EmptyHistory(t *testing.T) {
	f := newEvaluationFixture(EvaluationOptions{EmptySyllabusFullMatch: true})

	results, err := f.service.GetEvaluationsForCourse(context.Background(), 7)
	require.NoError(t, err)
	assert.NotNil(t, results)
	assert.Empty(t, results)
}

func TestGetEvaluationsForCourse_ReturnsHistory(t *testing.T) {
	f := newEvaluationFixture(EvaluationOptions{EmptySyllabusFullMatch: true})
	f.addCourse(1, 10, 3, true)
	f.addCourse(2, 20, 3, true)
	f.addCourse(3, 20, 3, true)
	f.addTopic(1, "Chemistry", 100)
	f.addTopic(2, "Chemistry", 100)

	_, err := f.service.EvaluateTransfer(context.Background(), 1, 2)
	require.NoError(t, err)
	_, err = f.service.EvaluateTransfer(context.Background(), 1, 3)
	require.NoError(t, err)

	results, err := f.service.GetEvaluationsForCourse(context.Background(), 1)
	require.NoError(t, err)
	assert.Len(t, results, 2)
}

func TestClampPercentage(t *testing.T) {
	assert.Zero(t, clampPercentage(-4.2))
	assert.Equal(t, 100.0, clampPercentage(123.4))
	assert.Equal(t, 55.5, clampPercentage(55.5))
}
