package server

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"toolhaven/internal/config"
	"toolhaven/internal/database"
	"toolhaven/internal/models"
	"toolhaven/internal/seed"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestApp builds a Fiber app over a seeded in-memory database with no
// Redis, so handlers always hit the repositories directly.
func newTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	require.NoError(t, seed.Run(context.Background(), db, seed.Options{}))

	cfg := &config.Config{Port: "0", DBName: "test", Env: "test"}
	srv := NewServerWithDeps(cfg, db, nil)

	app := fiber.New()
	srv.SetupMiddleware(app)
	srv.SetupRoutes(app)
	return app, db
}

func doRequest(t *testing.T, app *fiber.App, method, path string) (*http.Response, map[string]any) {
	t.Helper()

	req := httptest.NewRequest(method, path, nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var parsed map[string]any
	if len(body) > 0 {
		require.NoError(t, json.Unmarshal(body, &parsed))
	}
	return resp, parsed
}

func TestHealthCheck(t *testing.T) {
	app, _ := newTestApp(t)

	resp, body := doRequest(t, app, http.MethodGet, "/health")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, "ok", body["database"])
	assert.Equal(t, "disabled", body["cache"])
}

func TestListCategories(t *testing.T) {
	app, _ := newTestApp(t)

	resp, body := doRequest(t, app, http.MethodGet, "/api/categories")
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	categories := body["categories"].([]any)
	assert.Len(t, categories, 6)

	// Display order holds.
	first := categories[0].(map[string]any)
	assert.Equal(t, "writing", first["slug"])
}

func TestListToolsByCategory(t *testing.T) {
	app, _ := newTestApp(t)

	resp, body := doRequest(t, app, http.MethodGet, "/api/tools?category=writing")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Len(t, body["tools"].([]any), 2)

	resp, _ = doRequest(t, app, http.MethodGet, "/api/tools?category=no-such-section")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestListToolsFeatured(t *testing.T) {
	app, _ := newTestApp(t)

	resp, body := doRequest(t, app, http.MethodGet, "/api/tools?featured=true")
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	tools := body["tools"].([]any)
	assert.NotEmpty(t, tools)
	for _, raw := range tools {
		tool := raw.(map[string]any)
		assert.Equal(t, true, tool["featured"], "tool %v", tool["slug"])
	}
}

func TestGetToolWithStructuredData(t *testing.T) {
	app, _ := newTestApp(t)

	resp, body := doRequest(t, app, http.MethodGet, "/api/tools/chatgpt")
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	tool := body["tool"].(map[string]any)
	assert.Equal(t, "ChatGPT", tool["name"])

	sd := body["structured_data"].(map[string]any)
	appJSON := sd["software_application"].(string)
	assert.Contains(t, appJSON, `"@type":"SoftwareApplication"`)
	assert.Contains(t, appJSON, `"name":"ChatGPT"`)

	breadcrumb := sd["breadcrumb"].(string)
	assert.Contains(t, breadcrumb, `"@type":"BreadcrumbList"`)
	assert.Contains(t, breadcrumb, "https://toolhaven.io/tools/chatgpt")
}

func TestGetToolNotFound(t *testing.T) {
	app, _ := newTestApp(t)

	resp, body := doRequest(t, app, http.MethodGet, "/api/tools/does-not-exist")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "NOT_FOUND", body["code"])
}

func TestListPosts(t *testing.T) {
	app, _ := newTestApp(t)

	resp, body := doRequest(t, app, http.MethodGet, "/api/posts")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Len(t, body["posts"].([]any), 6)
}

func TestGetPostBumpsViews(t *testing.T) {
	app, db := newTestApp(t)

	resp, body := doRequest(t, app, http.MethodGet, "/api/posts/chatgpt-vs-claude-for-work")
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	post := body["post"].(map[string]any)
	assert.Equal(t, "chatgpt-vs-claude-for-work", post["slug"])
	assert.NotEmpty(t, body["last_updated"])

	sd := body["structured_data"].(map[string]any)
	assert.Contains(t, sd["article"].(string), `"@type":"Article"`)

	var stored models.BlogPost
	require.NoError(t, db.Where("slug = ?", "chatgpt-vs-claude-for-work").First(&stored).Error)
	assert.Equal(t, int64(1), stored.Views)
}

func TestGetPostUnpublishedIsHidden(t *testing.T) {
	app, db := newTestApp(t)

	require.NoError(t, db.Model(&models.BlogPost{}).
		Where("slug = ?", "midjourney-beginners-guide").
		Update("published", false).Error)

	resp, _ := doRequest(t, app, http.MethodGet, "/api/posts/midjourney-beginners-guide")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestListDeals(t *testing.T) {
	app, _ := newTestApp(t)

	resp, body := doRequest(t, app, http.MethodGet, "/api/deals")
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	deals := body["deals"].([]any)
	// The catalog ships one inactive deal and one already-expired window.
	for _, raw := range deals {
		deal := raw.(map[string]any)
		assert.Equal(t, true, deal["is_active"], "deal %v", deal["id"])
		assert.NotEqual(t, "copilot-team-50", deal["id"])
	}
}

func TestComparisons(t *testing.T) {
	app, _ := newTestApp(t)

	resp, body := doRequest(t, app, http.MethodGet, "/api/comparisons")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Len(t, body["comparisons"].([]any), 2)

	resp, body = doRequest(t, app, http.MethodGet, "/api/comparisons/chatgpt-vs-claude")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	comparison := body["comparison"].(map[string]any)
	assert.Equal(t, "Claude", comparison["verdict"])

	// Unpublished comparisons stay hidden from the detail route too.
	resp, _ = doRequest(t, app, http.MethodGet, "/api/comparisons/copilot-vs-cursor")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
