package service

import (
	"fmt"
	"net/http/httptest"
	"testing"

	"ResumeBuilder/internal/cli/api"
	"ResumeBuilder/internal/config"
	"ResumeBuilder/internal/handlers"
	"ResumeBuilder/internal/middleware"
	"ResumeBuilder/internal/repo"
	server "ResumeBuilder/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const testSecret = "cli-service-secret"

// newTestClient поднимает настоящий API поверх in-memory SQLite и возвращает клиента owner.
func newTestClient(t *testing.T, owner string) *api.Client {
	t.Helper()
	db, err := repo.InitDB(fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString()))
	require.NoError(t, err)
	if sqlDB, err := db.DB(); err == nil {
		t.Cleanup(func() { _ = sqlDB.Close() })
	}
	logger := zap.NewNop().Sugar()
	h := handlers.NewHandler(server.NewResumeService(repo.NewResumeRepository(db), logger), logger, &config.Config{AuthSecret: testSecret})
	ts := httptest.NewServer(h.Router)
	t.Cleanup(ts.Close)

	tok, err := middleware.IssueToken(owner, testSecret)
	require.NoError(t, err)
	return api.NewClient(ts.URL, tok)
}
