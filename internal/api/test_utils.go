package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/moodbite/backend/internal/database"
	"github.com/moodbite/backend/internal/middleware"
	"github.com/moodbite/backend/internal/service"
	"github.com/moodbite/backend/internal/types"
)

// stubGenerator is a canned TextGenerator for handler tests.
type stubGenerator struct {
	response string
	err      error
}

func (s *stubGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	return s.response, nil
}

// failingVideoSearcher forces the enrichment fallback path.
type failingVideoSearcher struct{}

func (failingVideoSearcher) Search(ctx context.Context, query string) (types.Video, error) {
	return types.Video{}, errors.New("video search unavailable")
}

type testEnv struct {
	Router  *gin.Engine
	DB      *gorm.DB
	Token   string
	Limiter *middleware.SlidingWindowLimiter
}

// setupTestEnv wires the handlers against an in-memory database, a stubbed
// generator and a video searcher that always falls back. It registers one
// user and returns their token.
func setupTestEnv(t *testing.T, generator service.TextGenerator) *testEnv {
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	authService := service.NewAuthService(db, "test-secret")
	extractor := service.NewExtractor(service.MatchFirst)
	enricher := service.NewEnricher(failingVideoSearcher{})
	recipeGenerator := service.NewRecipeGenerator(generator, extractor, enricher)
	plannerService := service.NewPlannerService(db, generator, extractor)

	limiterConfig := middleware.RateLimitConfig{Window: time.Minute, Limit: 5}
	generateLimiter := middleware.NewSlidingWindowLimiter(limiterConfig)
	plannerLimiter := middleware.NewSlidingWindowLimiter(limiterConfig)

	engine := gin.New()
	v1 := engine.Group("/api/v1")
	NewAuthHandler(authService).RegisterRoutes(v1)

	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(authService))
	NewRecipeHandler(db, recipeGenerator, generateLimiter).RegisterRoutes(protected)
	NewFavoriteHandler(db).RegisterRoutes(protected)
	NewPlannerHandler(plannerService).RegisterRoutes(protected, plannerLimiter.RateLimitMiddleware())

	token, _, err := authService.Register("Test User", "test@example.com", "password123")
	require.NoError(t, err)

	return &testEnv{
		Router:  engine,
		DB:      db,
		Token:   token,
		Limiter: generateLimiter,
	}
}

// doJSON performs an authenticated JSON request against the test router.
func (e *testEnv) doJSON(t *testing.T, method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if e.Token != "" {
		req.Header.Set("Authorization", "Bearer "+e.Token)
	}

	w := httptest.NewRecorder()
	e.Router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out), "body: %s", w.Body.String())
}
