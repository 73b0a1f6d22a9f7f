package server

import (
	"context"
	"net/http"
	"testing"

	"toolhaven/internal/config"
	"toolhaven/internal/database"
	"toolhaven/internal/models"
	"toolhaven/internal/seed"

	"github.com/alicebob/miniredis/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newCachedTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	require.NoError(t, seed.Run(context.Background(), db, seed.Options{}))

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	cfg := &config.Config{Port: "0", DBName: "test", Env: "test"}
	srv := NewServerWithDeps(cfg, db, client)

	app := fiber.New()
	srv.SetupMiddleware(app)
	srv.SetupRoutes(app)
	return app, db
}

func TestListDealsServedFromCache(t *testing.T) {
	app, db := newCachedTestApp(t)

	resp, first := doRequest(t, app, http.MethodGet, "/api/deals")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	firstDeals := first["deals"].([]any)
	require.NotEmpty(t, firstDeals)

	// Wipe the table; the cached listing must still be served.
	require.NoError(t, db.Where("1 = 1").Delete(&models.Deal{}).Error)

	resp, second := doRequest(t, app, http.MethodGet, "/api/deals")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Len(t, second["deals"].([]any), len(firstDeals))
}

func TestListToolsServedFromCache(t *testing.T) {
	app, db := newCachedTestApp(t)

	resp, first := doRequest(t, app, http.MethodGet, "/api/tools")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	firstTools := first["tools"].([]any)
	require.NotEmpty(t, firstTools)

	require.NoError(t, db.Where("1 = 1").Delete(&models.Tool{}).Error)

	resp, second := doRequest(t, app, http.MethodGet, "/api/tools")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Len(t, second["tools"].([]any), len(firstTools))
}
