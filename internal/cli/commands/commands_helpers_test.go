package commands

import (
	"bytes"
	"context"
	"fmt"
	"net/http/httptest"
	"path/filepath"
	"regexp"
	"testing"

	"ResumeBuilder/internal/config"
	"ResumeBuilder/internal/handlers"
	"ResumeBuilder/internal/repo"
	"ResumeBuilder/internal/service"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// withTestServer поднимает API поверх in-memory SQLite и возвращает конфиг CLI,
// у которого токен лежит во временном каталоге.
func withTestServer(t *testing.T) *config.Config {
	t.Helper()
	db, err := repo.InitDB(fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString()))
	if err != nil {
		t.Fatalf("init db: %v", err)
	}
	if sqlDB, err := db.DB(); err == nil {
		t.Cleanup(func() { _ = sqlDB.Close() })
	}
	cfg := &config.Config{
		AuthSecret: "cmd-test-secret",
		TokenFile:  filepath.Join(t.TempDir(), "token"),
	}
	logger := zap.NewNop().Sugar()
	h := handlers.NewHandler(service.NewResumeService(repo.NewResumeRepository(db), logger), logger, cfg)
	ts := httptest.NewServer(h.Router)
	t.Cleanup(ts.Close)
	cfg.ServerURL = ts.URL
	return cfg
}

// перехват stdout на время теста
func withStdoutCapture(t *testing.T, fn func()) string {
	t.Helper()
	old := Out
	var buf bytes.Buffer
	Out = &buf
	defer func() { Out = old }()
	fn()
	return buf.String()
}

// run выполняет команду через диспетчер и возвращает код и вывод.
func run(t *testing.T, cfg *config.Config, args ...string) (int, string) {
	t.Helper()
	var code int
	out := withStdoutCapture(t, func() { code = Dispatch(context.Background(), cfg, args) })
	return code, out
}

var idLine = regexp.MustCompile(`id:\s+(\S+)`)

func createdID(t *testing.T, out string) string {
	t.Helper()
	m := idLine.FindStringSubmatch(out)
	if m == nil {
		t.Fatalf("no id in output: %s", out)
	}
	return m[1]
}
