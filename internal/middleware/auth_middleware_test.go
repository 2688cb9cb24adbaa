package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deniz/credbridge/internal/app/models"
	"github.com/deniz/credbridge/internal/pkg/auth"
)

func newAuthTestRouter(t *testing.T) (*gin.Engine, *auth.JWTService) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:       "test-secret",
		AccessTokenExp:  time.Hour,
		RefreshTokenExp: 24 * time.Hour,
		TokenIssuer:     "credbridge.test",
	})
	m := NewAuthMiddleware(jwtService)

	router := gin.New()
	protected := router.Group("/protected")
	protected.Use(m.JWTAuth())
	protected.GET("", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"userID": c.MustGet(ContextUserID)})
	})

	advisorOnly := protected.Group("/advisor")
	advisorOnly.Use(m.RoleRequired(string(models.RoleAdvisor)))
	advisorOnly.GET("", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	return router, jwtService
}

func doRequest(router *gin.Engine, path, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestJWTAuth_MissingHeader(t *testing.T) {
	router, _ := newAuthTestRouter(t)

	w := doRequest(router, "/protected", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJWTAuth_MalformedHeader(t *testing.T) {
	router, _ := newAuthTestRouter(t)

	w := doRequest(router, "/protected", "Basic dXNlcjpwYXNz")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJWTAuth_ValidToken(t *testing.T) {
	router, jwtService := newAuthTestRouter(t)

	access, _, _, err := jwtService.GenerateTokenPair(&models.User{ID: 7, Email: "s@u.edu", RoleType: models.RoleStudent})
	require.NoError(t, err)

	w := doRequest(router, "/protected", "Bearer "+access)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestJWTAuth_RefreshTokenRejected(t *testing.T) {
	router, jwtService := newAuthTestRouter(t)

	_, refresh, _, err := jwtService.GenerateTokenPair(&models.User{ID: 7, Email: "s@u.edu", RoleType: models.RoleStudent})
	require.NoError(t, err)

	w := doRequest(router, "/protected", "Bearer "+refresh)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRoleRequired(t *testing.T) {
	router, jwtService := newAuthTestRouter(t)

	studentToken, _, _, err := jwtService.GenerateTokenPair(&models.User{ID: 7, Email: "s@u.edu", RoleType: models.RoleStudent})
	require.NoError(t, err)
	advisorToken, _, _, err := jwtService.GenerateTokenPair(&models.User{ID: 8, Email: "a@u.edu", RoleType: models.RoleAdvisor})
	require.NoError(t, err)

	w := doRequest(router, "/protected/advisor", "Bearer "+studentToken)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = doRequest(router, "/protected/advisor", "Bearer "+advisorToken)
	assert.Equal(t, http.StatusOK, w.Code)
}
