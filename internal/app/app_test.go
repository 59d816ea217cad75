package app

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"resto_backend/database"
	"resto_backend/internal/auth"
	"resto_backend/internal/config"
	"resto_backend/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newTestRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.AutoMigrate(db))

	cfg := &config.Config{}
	cfg.Server.Env = "test"
	cfg.JWT.Secret = "test-secret"
	cfg.JWT.TTL = 60

	return SetupRouter(cfg, db), db
}

func doJSON(t *testing.T, router *gin.Engine, method, path, token string, body interface{}) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var parsed map[string]interface{}
	if w.Body.Len() > 0 {
		_ = json.Unmarshal(w.Body.Bytes(), &parsed)
	}
	return w, parsed
}

func registerAndLogin(t *testing.T, router *gin.Engine, username string) string {
	t.Helper()

	w, resp := doJSON(t, router, http.MethodPost, "/api/v1/auth/register", "", map[string]interface{}{
		"username": username,
		"email":    username + "@example.com",
		"password": "secret123",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	token, _ := resp["access_token"].(string)
	require.NotEmpty(t, token)
	return token
}

func adminToken(t *testing.T, router *gin.Engine, db *gorm.DB) string {
	t.Helper()

	hash, err := auth.HashPassword("admin-pass")
	require.NoError(t, err)
	require.NoError(t, db.Create(&models.User{
		Username:     "admin",
		Email:        "admin@example.com",
		PasswordHash: hash,
		Role:         models.UserRoleAdmin,
	}).Error)

	w, resp := doJSON(t, router, http.MethodPost, "/api/v1/auth/login", "", map[string]interface{}{
		"email":    "admin@example.com",
		"password": "admin-pass",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	token, _ := resp["access_token"].(string)
	require.NotEmpty(t, token)
	return token
}

func TestHealthAndBanner(t *testing.T) {
	router, _ := newTestRouter(t)

	w, _ := doJSON(t, router, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w, _ = doJSON(t, router, http.MethodGet, "/", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestReviewFlowOverHTTP(t *testing.T) {
	router, db := newTestRouter(t)
	admin := adminToken(t, router, db)
	user := registerAndLogin(t, router, "reviewer")

	w, category := doJSON(t, router, http.MethodPost, "/api/v1/categories", admin, map[string]interface{}{
		"name": "Steakhouse",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w, restaurant := doJSON(t, router, http.MethodPost, "/api/v1/restaurants", admin, map[string]interface{}{
		"name":        "Prime Cut",
		"description": "Dry-aged steaks",
		"category_id": category["id"],
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	restaurantID := restaurant["id"].(string)

	// Anonymous posting is rejected.
	w, _ = doJSON(t, router, http.MethodPost, "/api/v1/restaurants/"+restaurantID+"/reviews", "", map[string]interface{}{
		"rating": 5, "comment": "amazing",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// Out-of-range rating never reaches the store.
	w, _ = doJSON(t, router, http.MethodPost, "/api/v1/restaurants/"+restaurantID+"/reviews", user, map[string]interface{}{
		"rating": 6, "comment": "too enthusiastic",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, review := doJSON(t, router, http.MethodPost, "/api/v1/restaurants/"+restaurantID+"/reviews", user, map[string]interface{}{
		"rating": 5, "comment": "amazing",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	reviewID := review["id"].(string)

	// Listing is public and carries the author's display name.
	w, _ = doJSON(t, router, http.MethodGet, "/api/v1/restaurants/"+restaurantID+"/reviews", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"reviewer"`)

	// Authors cannot vote on their own review.
	w, _ = doJSON(t, router, http.MethodPost, "/api/v1/reviews/"+reviewID+"/like", user, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	voter := registerAndLogin(t, router, "voter")
	w, _ = doJSON(t, router, http.MethodPost, "/api/v1/reviews/"+reviewID+"/like", voter, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w, detail := doJSON(t, router, http.MethodGet, "/api/v1/restaurants/"+restaurantID, "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	summary := detail["rating_summary"].(map[string]interface{})
	assert.Equal(t, 5.0, summary["average_rating"])
	assert.Equal(t, 1.0, summary["review_count"])
	assert.Equal(t, 1.0, summary["total_likes"])
}

func TestModerationFlowOverHTTP(t *testing.T) {
	router, db := newTestRouter(t)
	admin := adminToken(t, router, db)
	user := registerAndLogin(t, router, "submitter")

	w, category := doJSON(t, router, http.MethodPost, "/api/v1/categories", admin, map[string]interface{}{
		"name": "Bistro",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	// Ordinary users cannot touch category administration.
	w, _ = doJSON(t, router, http.MethodPost, "/api/v1/categories", user, map[string]interface{}{"name": "Nope"})
	assert.Equal(t, http.StatusForbidden, w.Code)

	w, submitted := doJSON(t, router, http.MethodPost, "/api/v1/restaurants", user, map[string]interface{}{
		"name":        "Chez Nous",
		"description": "Family bistro",
		"category_id": category["id"],
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.Equal(t, "pending", submitted["status"])
	restaurantID := submitted["id"].(string)

	// Hidden from the public catalogue until approved.
	w, _ = doJSON(t, router, http.MethodGet, "/api/v1/restaurants", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), "Chez Nous")

	w, _ = doJSON(t, router, http.MethodGet, "/api/v1/admin/restaurants/pending", admin, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Chez Nous")

	w, _ = doJSON(t, router, http.MethodPatch, "/api/v1/admin/restaurants/"+restaurantID+"/approve", admin, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w, _ = doJSON(t, router, http.MethodGet, "/api/v1/restaurants", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Chez Nous")

	// Moderation endpoints are closed to ordinary users.
	w, _ = doJSON(t, router, http.MethodGet, "/api/v1/admin/restaurants/pending", user, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
}
