package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"text/tabwriter"

	"ResumeBuilder/internal/cli/api"
	"ResumeBuilder/internal/config"
)

type listCmd struct{}

func (listCmd) Name() string        { return "list" }
func (listCmd) Description() string { return "List your resumes, most recently updated first" }
func (listCmd) Usage() string       { return "list" }

func (listCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}
	c, err := openClient(cfg)
	if err != nil {
		return err
	}
	list, err := c.List(ctx)
	if err != nil {
		return err
	}
	if len(list) == 0 {
		fmt.Fprintln(Out, "No resumes yet")
		return nil
	}
	tw := tabwriter.NewWriter(Out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTITLE\tTEMPLATE\tUPDATED")
	for _, r := range list {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", r.ID, r.Title, r.TemplateID, r.UpdatedAt)
	}
	return tw.Flush()
}

type createCmd struct{}

func (createCmd) Name() string        { return "create" }
func (createCmd) Description() string { return "Create an empty resume" }
func (createCmd) Usage() string       { return "create [title...]" }

func (createCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	c, err := openClient(cfg)
	if err != nil {
		return err
	}
	res, err := c.Create(ctx, strings.Join(args, " "))
	if err != nil {
		return err
	}
	printResume(res)
	return nil
}

type showCmd struct{}

func (showCmd) Name() string        { return "show" }
func (showCmd) Description() string { return "Print resume content as JSON" }
func (showCmd) Usage() string       { return "show <id>" }

func (showCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 1 {
		return ErrUsage
	}
	c, err := openClient(cfg)
	if err != nil {
		return err
	}
	res, err := c.Get(ctx, args[0])
	if err != nil {
		return err
	}
	enc := json.NewEncoder(Out)
	enc.SetIndent("", "  ")
	return enc.Encode(res.Content)
}

type renameCmd struct{}

func (renameCmd) Name() string        { return "rename" }
func (renameCmd) Description() string { return "Change resume title" }
func (renameCmd) Usage() string       { return "rename <id> <title...>" }

func (renameCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) < 2 {
		return ErrUsage
	}
	title := strings.Join(args[1:], " ")
	return patchAndPrint(ctx, cfg, args[0], api.Patch{Title: &title})
}

type templateCmd struct{}

func (templateCmd) Name() string        { return "template" }
func (templateCmd) Description() string { return "Switch resume template (modern|classic)" }
func (templateCmd) Usage() string       { return "template <id> <templateId>" }

func (templateCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 2 {
		return ErrUsage
	}
	tpl := args[1]
	return patchAndPrint(ctx, cfg, args[0], api.Patch{TemplateID: &tpl})
}

type deleteCmd struct{}

func (deleteCmd) Name() string        { return "delete" }
func (deleteCmd) Description() string { return "Delete a resume" }
func (deleteCmd) Usage() string       { return "delete <id>" }

func (deleteCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 1 {
		return ErrUsage
	}
	c, err := openClient(cfg)
	if err != nil {
		return err
	}
	if err := c.Delete(ctx, args[0]); err != nil {
		return err
	}
	fmt.Fprintf(Out, "Deleted %s\n", args[0])
	return nil
}

type duplicateCmd struct{}

func (duplicateCmd) Name() string        { return "duplicate" }
func (duplicateCmd) Description() string { return "Copy a resume under a new id" }
func (duplicateCmd) Usage() string       { return "duplicate <id>" }

func (duplicateCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 1 {
		return ErrUsage
	}
	c, err := openClient(cfg)
	if err != nil {
		return err
	}
	res, err := c.Duplicate(ctx, args[0])
	if err != nil {
		return err
	}
	printResume(res)
	return nil
}

func patchAndPrint(ctx context.Context, cfg *config.Config, id string, p api.Patch) error {
	c, err := openClient(cfg)
	if err != nil {
		return err
	}
	res, err := c.Update(ctx, id, p)
	if err != nil {
		return err
	}
	printResume(res)
	return nil
}

func printResume(r *api.Resume) {
	fmt.Fprintf(Out, "  id:       %s\n", r.ID)
	fmt.Fprintf(Out, "  title:    %s\n", r.Title)
	fmt.Fprintf(Out, "  template: %s\n", r.TemplateID)
}

func init() {
	RegisterCmd(listCmd{})
	RegisterCmd(createCmd{})
	RegisterCmd(showCmd{})
	RegisterCmd(renameCmd{})
	RegisterCmd(templateCmd{})
	RegisterCmd(deleteCmd{})
	RegisterCmd(duplicateCmd{})
}
