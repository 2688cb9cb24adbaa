package middleware

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/deniz/credbridge/internal/pkg/apperrors"
)

func recordAPIError(err error) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	HandleAPIError(c, err)
	return w
}

func TestHandleAPIError_StatusMapping(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
	}{
		{"course not active", apperrors.ErrCourseNotActive, http.StatusUnprocessableEntity},
		{"wrapped course not active", fmt.Errorf("%w: course 3", apperrors.ErrCourseNotActive), http.StatusUnprocessableEntity},
		{"university not found", apperrors.ErrUniversityNotFound, http.StatusNotFound},
		{"course not found", apperrors.ErrCourseNotFound, http.StatusNotFound},
		{"topic not found", apperrors.ErrTopicNotFound, http.StatusNotFound},
		{"rule not found", apperrors.ErrTransferRuleNotFound, http.StatusNotFound},
		{"evaluation not found", apperrors.ErrEvaluationNotFound, http.StatusNotFound},
		{"validation failed", apperrors.ErrValidationFailed, http.StatusBadRequest},
		{"wrapped validation failed", fmt.Errorf("%w: weight out of range", apperrors.ErrValidationFailed), http.StatusBadRequest},
		{"university already exists", apperrors.ErrUniversityAlreadyExists, http.StatusConflict},
		{"email already exists", apperrors.ErrEmailAlreadyExists, http.StatusConflict},
		{"university has courses", apperrors.ErrUniversityHasCourses, http.StatusConflict},
		{"invalid credentials", apperrors.ErrInvalidCredentials, http.StatusUnauthorized},
		{"token expired", apperrors.ErrTokenExpired, http.StatusUnauthorized},
		{"token invalid", apperrors.ErrTokenInvalid, http.StatusUnauthorized},
		{"unknown error", fmt.Errorf("database exploded"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := recordAPIError(tc.err)
			assert.Equal(t, tc.status, w.Code)
		})
	}
}
