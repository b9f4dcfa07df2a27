package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"ResumeBuilder/internal/config"
	"ResumeBuilder/internal/handlers"
	"ResumeBuilder/internal/middleware"
	"ResumeBuilder/internal/repo"
	"ResumeBuilder/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// testAPI — роутер поверх настоящей in-memory SQLite
type testAPI struct {
	t      *testing.T
	router http.Handler
	cfg    *config.Config
}

func newTestAPI(t *testing.T) *testAPI {
	t.Helper()
	db, err := repo.InitDB(fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString()))
	require.NoError(t, err)
	if sqlDB, err := db.DB(); err == nil {
		t.Cleanup(func() { _ = sqlDB.Close() })
	}

	cfg := &config.Config{AuthSecret: "test-secret"}
	logger := zap.NewNop().Sugar()
	svc := service.NewResumeService(repo.NewResumeRepository(db), logger)
	h := handlers.NewHandler(svc, logger, cfg)
	return &testAPI{t: t, router: h.Router, cfg: cfg}
}

// do выполняет запрос от имени owner ("" — анонимно)
func (a *testAPI) do(method, path, owner string, body any) *httptest.ResponseRecorder {
	a.t.Helper()
	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(a.t, err)
		rd = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, rd)
	req.Header.Set("Content-Type", "application/json")
	if owner != "" {
		tok, err := middleware.IssueToken(owner, a.cfg.AuthSecret)
		require.NoError(a.t, err)
		req.AddCookie(middleware.TokenCookie(tok))
	}
	rr := httptest.NewRecorder()
	a.router.ServeHTTP(rr, req)
	return rr
}

func decode[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &v), rr.Body.String())
	return v
}

func (a *testAPI) create(owner, title string) handlers.ResumeDTO {
	a.t.Helper()
	rr := a.do(http.MethodPost, "/api/resumes", owner, map[string]string{"title": title})
	require.Equal(a.t, http.StatusCreated, rr.Code, rr.Body.String())
	return decode[handlers.ResumeDTO](a.t, rr)
}
