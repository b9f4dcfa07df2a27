package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"ResumeBuilder/internal/autosave"
	"ResumeBuilder/internal/document"

	"go.uber.org/zap"
)

// DefaultPollInterval — как часто проверяется файл.
const DefaultPollInterval = 300 * time.Millisecond

// WatchOptions настраивает сессию наблюдения за файлом.
type WatchOptions struct {
	TemplateID string
	Delay      time.Duration
	Poll       time.Duration
	Out        io.Writer
	Logger     *zap.SugaredLogger
}

// Watch открывает сессию редактирования записи id и прогоняет изменения файла path через автосохранение.
// Файл читается мягко (Normalize): недописанный JSON не роняет сессию.
// При отмене ctx ожидающий таймер бросается, а идущее сохранение завершается.
func Watch(ctx context.Context, store autosave.Store, id string, initial document.Document, path string, opts WatchOptions) error {
	if opts.Poll <= 0 {
		opts.Poll = DefaultPollInterval
	}
	if opts.Out == nil {
		opts.Out = io.Discard
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop().Sugar()
	}

	sessOpts := []autosave.Option{
		autosave.WithLogger(opts.Logger),
		autosave.OnError(func(err error) {
			fmt.Fprintf(opts.Out, "autosave failed, will retry: %v\n", err)
		}),
		autosave.OnSaved(func(document.Document) {
			fmt.Fprintf(opts.Out, "saved %s\n", time.Now().Format(time.TimeOnly))
		}),
	}
	if opts.Delay > 0 {
		sessOpts = append(sessOpts, autosave.WithDelay(opts.Delay))
	}
	sess := autosave.NewSession(store, id, initial, opts.TemplateID, sessOpts...)
	defer sess.Close()

	var lastMod time.Time
	ticker := time.NewTicker(opts.Poll)
	defer ticker.Stop()

	for {
		info, err := os.Stat(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
			// файл могут пересоздавать при сохранении из редактора
		case err != nil:
			return fmt.Errorf("stat %s: %w", path, err)
		case info.ModTime() != lastMod:
			lastMod = info.ModTime()
			raw, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("read %s: %w", path, err)
			}
			sess.Replace(document.Normalize(raw))
		}

		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}
