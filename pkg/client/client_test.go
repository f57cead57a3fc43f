package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	httpapi "tasklight.app/tasklight/internal/http"
	model "tasklight.app/tasklight/internal/models"
	repository "tasklight.app/tasklight/internal/repositories"
	"tasklight.app/tasklight/internal/services"
)

// startServer runs the real API over an in-memory database and counts
// the requests that actually reach it, so tests can tell a cache hit
// from a refetch.
func startServer(t *testing.T) (*httptest.Server, *atomic.Int64) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:?cache=shared"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.User{}, &model.Task{}))

	sqlDB, _ := db.DB()
	sqlDB.SetMaxOpenConns(1)

	authService := services.NewAuthService(repository.NewUserRepository(db), "test-secret", 7*24*time.Hour)
	taskService := services.NewTaskService(repository.NewTaskRepository(db))
	quoteService := services.NewQuoteService()

	e := echo.New()
	httpapi.Register(e, httpapi.NewAuthHandler(authService), httpapi.NewTaskHandler(taskService), httpapi.NewQuoteHandler(quoteService), authService)

	var hits atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		e.ServeHTTP(w, r)
	}))
	t.Cleanup(srv.Close)

	return srv, &hits
}

func TestClientSessionFlow(t *testing.T) {
	srv, _ := startServer(t)
	c, err := New(srv.URL)
	require.NoError(t, err)
	ctx := context.Background()

	user, err := c.Register(ctx, "alice", "pw1")
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)

	// the cookie jar carries the session from here on
	me, err := c.Me(ctx)
	require.NoError(t, err)
	assert.Equal(t, user.ID, me.ID)

	require.NoError(t, c.Logout(ctx))
	_, err = c.Me(ctx)
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
}

func TestClientCachesTasksUntilMutation(t *testing.T) {
	srv, hits := startServer(t)
	c, err := New(srv.URL)
	require.NoError(t, err)
	ctx := context.Background()

	_, err = c.Register(ctx, "alice", "pw1")
	require.NoError(t, err)

	_, err = c.Tasks(ctx)
	require.NoError(t, err)
	afterFirstList := hits.Load()

	// cache hit, no network traffic
	_, err = c.Tasks(ctx)
	require.NoError(t, err)
	assert.Equal(t, afterFirstList, hits.Load())

	created, err := c.CreateTask(ctx, CreateTaskInput{Title: "Buy milk"})
	require.NoError(t, err)
	assert.Equal(t, "medium", created.Priority)
	assert.False(t, created.Completed)

	// the mutation invalidated the cache, this refetches
	beforeRefetch := hits.Load()
	tasks, err := c.Tasks(ctx)
	require.NoError(t, err)
	assert.Equal(t, beforeRefetch+1, hits.Load())
	require.Len(t, tasks, 1)
	assert.Equal(t, created.ID, tasks[0].ID)
}

func TestClientUpdateAndDeleteInvalidate(t *testing.T) {
	srv, _ := startServer(t)
	c, err := New(srv.URL)
	require.NoError(t, err)
	ctx := context.Background()

	_, err = c.Register(ctx, "alice", "pw1")
	require.NoError(t, err)

	created, err := c.CreateTask(ctx, CreateTaskInput{Title: "Buy milk"})
	require.NoError(t, err)

	completed := true
	updated, err := c.UpdateTask(ctx, created.ID, UpdateTaskInput{Completed: &completed})
	require.NoError(t, err)
	assert.True(t, updated.Completed)
	assert.Equal(t, "Buy milk", updated.Title)

	require.NoError(t, c.DeleteTask(ctx, created.ID))

	tasks, err := c.Tasks(ctx)
	require.NoError(t, err)
	assert.Empty(t, tasks)

	err = c.DeleteTask(ctx, created.ID)
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
}

func TestClientSurfacesFieldErrors(t *testing.T) {
	srv, _ := startServer(t)
	c, err := New(srv.URL)
	require.NoError(t, err)
	ctx := context.Background()

	_, err = c.Register(ctx, "alice", "pw1")
	require.NoError(t, err)

	_, err = c.CreateTask(ctx, CreateTaskInput{Title: "", Priority: "urgent"})
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnprocessableEntity, apiErr.StatusCode)
	assert.Contains(t, apiErr.Fields, "title")
	assert.Contains(t, apiErr.Fields, "priority")
}

func TestClientQuoteCacheKeys(t *testing.T) {
	srv, hits := startServer(t)
	c, err := New(srv.URL)
	require.NoError(t, err)
	ctx := context.Background()

	first, err := c.DailyQuote(ctx)
	require.NoError(t, err)

	afterFirst := hits.Load()
	again, err := c.DailyQuote(ctx)
	require.NoError(t, err)
	assert.Equal(t, afterFirst, hits.Load())
	assert.Equal(t, first, again)

	// refresh goes out on a separate key but the server answer is the
	// same until the day rolls over
	refreshed, err := c.RefreshQuote(ctx)
	require.NoError(t, err)
	assert.Equal(t, afterFirst+1, hits.Load())
	assert.Equal(t, *first, *refreshed)
}
