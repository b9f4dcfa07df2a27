package commands

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"ResumeBuilder/internal/cli/service"
	"ResumeBuilder/internal/config"
	"ResumeBuilder/internal/section"
)

type addCmd struct{}

func (addCmd) Name() string { return "add" }
func (addCmd) Description() string {
	return "Append an entry to a section: " + strings.Join(section.Keys(), "|")
}
func (addCmd) Usage() string { return "add <id> <section> [field=value ...]" }

func (addCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) < 2 {
		return ErrUsage
	}
	fields, err := parseFields(args[2:])
	if err != nil {
		return err
	}
	ed, err := openEditor(cfg)
	if err != nil {
		return err
	}
	entryID, err := ed.AddEntry(ctx, args[0], args[1], fields)
	if err != nil {
		return err
	}
	fmt.Fprintf(Out, "Added %s entry %s\n", args[1], entryID)
	return nil
}

type removeCmd struct{}

func (removeCmd) Name() string        { return "remove" }
func (removeCmd) Description() string { return "Remove a section entry by its id" }
func (removeCmd) Usage() string       { return "remove <id> <section> <entryId>" }

func (removeCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 3 {
		return ErrUsage
	}
	ed, err := openEditor(cfg)
	if err != nil {
		return err
	}
	if err := ed.RemoveEntry(ctx, args[0], args[1], args[2]); err != nil {
		return err
	}
	fmt.Fprintf(Out, "Removed %s entry %s\n", args[1], args[2])
	return nil
}

type moveCmd struct{}

func (moveCmd) Name() string        { return "move" }
func (moveCmd) Description() string { return "Move an entry within a section" }
func (moveCmd) Usage() string       { return "move <id> <section> <from> <to>" }

func (moveCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 4 {
		return ErrUsage
	}
	from, to, err := parseIndexes(args[2], args[3])
	if err != nil {
		return err
	}
	ed, err := openEditor(cfg)
	if err != nil {
		return err
	}
	if err := ed.MoveEntry(ctx, args[0], args[1], from, to); err != nil {
		return err
	}
	fmt.Fprintf(Out, "Moved %s entry %d → %d\n", args[1], from, to)
	return nil
}

type reorderCmd struct{}

func (reorderCmd) Name() string { return "reorder" }
func (reorderCmd) Description() string {
	return "Move a section (by index or key) within the section order"
}
func (reorderCmd) Usage() string { return "reorder <id> <from|section> <to>" }

func (reorderCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 3 {
		return ErrUsage
	}
	to, err := strconv.Atoi(args[2])
	if err != nil {
		return ErrUsage
	}
	ed, err := openEditor(cfg)
	if err != nil {
		return err
	}
	var order []string
	if from, convErr := strconv.Atoi(args[1]); convErr == nil {
		order, err = ed.Reorder(ctx, args[0], from, to)
	} else {
		order, err = ed.MoveSection(ctx, args[0], args[1], to)
	}
	if err != nil {
		return err
	}
	for i, key := range order {
		fmt.Fprintf(Out, "  %d. %s\n", i, section.Label(key))
	}
	return nil
}

func openEditor(cfg *config.Config) (*service.Editor, error) {
	c, err := openClient(cfg)
	if err != nil {
		return nil, err
	}
	return service.NewEditor(c), nil
}

// parseFields разбирает пары field=value; current принимает true/false.
func parseFields(args []string) (map[string]any, error) {
	fields := make(map[string]any, len(args))
	for _, a := range args {
		k, v, ok := strings.Cut(a, "=")
		if !ok || k == "" {
			return nil, ErrUsage
		}
		if k == "current" {
			b, err := strconv.ParseBool(v)
			if err != nil {
				return nil, fmt.Errorf("current must be true or false: %w", err)
			}
			fields[k] = b
			continue
		}
		fields[k] = v
	}
	return fields, nil
}

func parseIndexes(a, b string) (int, int, error) {
	from, err := strconv.Atoi(a)
	if err != nil {
		return 0, 0, ErrUsage
	}
	to, err := strconv.Atoi(b)
	if err != nil {
		return 0, 0, ErrUsage
	}
	return from, to, nil
}

func init() {
	RegisterCmd(addCmd{})
	RegisterCmd(removeCmd{})
	RegisterCmd(moveCmd{})
	RegisterCmd(reorderCmd{})
}
