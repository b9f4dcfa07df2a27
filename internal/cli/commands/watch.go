package commands

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"ResumeBuilder/internal/cli/service"
	"ResumeBuilder/internal/config"

	"go.uber.org/zap"
)

type watchCmd struct{}

func (watchCmd) Name() string { return "watch" }
func (watchCmd) Description() string {
	return "Autosave edits of a local JSON file until interrupted"
}
func (watchCmd) Usage() string { return "watch <id> <file.json>" }

func (watchCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 2 {
		return ErrUsage
	}
	id, path := args[0], args[1]

	c, err := openClient(cfg)
	if err != nil {
		return err
	}
	res, doc, err := service.NewEditor(c).Load(ctx, id)
	if err != nil {
		return err
	}

	// файл создаётся из серверной версии, если его ещё нет
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		b, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			return err
		}
		if err := os.WriteFile(path, b, 0o600); err != nil {
			return err
		}
	}

	logger, err := zap.NewDevelopment()
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	fmt.Fprintf(Out, "Watching %s for %q (Ctrl+C to stop)\n", path, res.Title)
	return service.Watch(ctx, c, id, doc, path, service.WatchOptions{
		TemplateID: res.TemplateID,
		Delay:      cfg.AutosaveDelay,
		Out:        Out,
		Logger:     logger.Sugar(),
	})
}

func init() { RegisterCmd(watchCmd{}) }
