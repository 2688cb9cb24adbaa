package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/deniz/credbridge/internal/app/models"
	"github.com/deniz/credbridge/internal/pkg/apperrors"
)

func TestValidateUniversity(t *testing.T) {
	assert.ErrorIs(t, validateUniversity(nil), apperrors.ErrValidationFailed)
	assert.ErrorIs(t, validateUniversity(&models.University{Name: "  "}), apperrors.ErrValidationFailed)
	assert.NoError(t, validateUniversity(&models.University{Name: "Northfield University", Country: "USA"}))
}

func TestValidateCourse(t *testing.T) {
	valid := models.Course{UniversityID: 1, CourseName: "Calculus I", CreditHours: 4}
	assert.NoError(t, validateCourse(&valid))

	assert.ErrorIs(t, validateCourse(nil), apperrors.ErrValidationFailed)

	noName := valid
	noName.CourseName = ""
	assert.ErrorIs(t, validateCourse(&noName), apperrors.ErrValidationFailed)

	noUniversity := valid
	noUniversity.UniversityID = 0
	assert.ErrorIs(t, validateCourse(&noUniversity), apperrors.ErrValidationFailed)

	zeroCredits := valid
	zeroCredits.CreditHours = 0
	assert.ErrorIs(t, validateCourse(&zeroCredits), apperrors.ErrValidationFailed)
}

func TestValidateTopic(t *testing.T) {
	valid := models.CourseContentTopic{CourseID: 1, TopicName: "Limits", WeightPercentage: 25}
	assert.NoError(t, validateTopic(&valid))

	assert.ErrorIs(t, validateTopic(nil), apperrors.ErrValidationFailed)

	noName := valid
	noName.TopicName = "   "
	assert.ErrorIs(t, validateTopic(&noName), apperrors.ErrValidationFailed)

	noCourse := valid
	noCourse.CourseID = 0
	assert.ErrorIs(t, validateTopic(&noCourse), apperrors.ErrValidationFailed)

	negativeWeight := valid
	negativeWeight.WeightPercentage = -1
	assert.ErrorIs(t, validateTopic(&negativeWeight), apperrors.ErrValidationFailed)

	excessiveWeight := valid
	excessiveWeight.WeightPercentage = 100.5
	assert.ErrorIs(t, validateTopic(&excessiveWeight), apperrors.ErrValidationFailed)
}

func TestValidateRule(t *testing.T) {
	tolerance := 1
	valid := models.TransferRule{
		SourceUniversityID:       1,
		TargetUniversityID:       2,
		MinimumOverlapPercentage: 70,
		CreditHourTolerance:      &tolerance,
		Active:                   true,
	}
	assert.NoError(t, validateRule(&valid))

	assert.ErrorIs(t, validateRule(nil), apperrors.ErrValidationFailed)

	noSource := valid
	noSource.SourceUniversityID = 0
	assert.ErrorIs(t, validateRule(&noSource), apperrors.ErrValidationFailed)

	badOverlap := valid
	badOverlap.MinimumOverlapPercentage = 101
	assert.ErrorIs(t, validateRule(&badOverlap), apperrors.ErrValidationFailed)

	negativeTolerance := -1
	badTolerance := valid
	badTolerance.CreditHourTolerance = &negativeTolerance
	assert.ErrorIs(t, validateRule(&badTolerance), apperrors.ErrValidationFailed)

	noTolerance := valid
	noTolerance.CreditHourTolerance = nil
	assert.NoError(t, validateRule(&noTolerance))
}

func TestTransferRuleTolerance(t *testing.T) {
	tolerance := 2
	withTolerance := models.TransferRule{CreditHourTolerance: &tolerance}
	assert.Equal(t, 2, withTolerance.Tolerance())

	withoutTolerance := models.TransferRule{}
	assert.Zero(t, withoutTolerance.Tolerance())
}
