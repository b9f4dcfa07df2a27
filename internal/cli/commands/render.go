package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"ResumeBuilder/internal/config"
	"ResumeBuilder/internal/render"
)

type renderCmd struct{}

func (renderCmd) Name() string        { return "render" }
func (renderCmd) Description() string { return "Render resume as text or HTML" }
func (renderCmd) Usage() string       { return "render [--template=<id>] [--html] <id>" }

func (renderCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("render", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	tpl := fs.String("template", "", "template override")
	asHTML := fs.Bool("html", false, "print HTML preview")
	if err := fs.Parse(args); err != nil {
		return ErrUsage
	}
	if fs.NArg() != 1 {
		return ErrUsage
	}
	id := fs.Arg(0)

	c, err := openClient(cfg)
	if err != nil {
		return err
	}
	if *asHTML {
		page, err := c.Preview(ctx, id, *tpl)
		if err != nil {
			return err
		}
		_, err = Out.Write(page)
		return err
	}
	out, err := c.Render(ctx, id, *tpl)
	if err != nil {
		return err
	}
	return render.WriteText(Out, out)
}

type validateCmd struct{}

func (validateCmd) Name() string        { return "validate" }
func (validateCmd) Description() string { return "Check resume content against field rules" }
func (validateCmd) Usage() string       { return "validate <id>" }

func (validateCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 1 {
		return ErrUsage
	}
	c, err := openClient(cfg)
	if err != nil {
		return err
	}
	res, err := c.Validate(ctx, args[0])
	if err != nil {
		return err
	}
	if res.Valid {
		fmt.Fprintln(Out, "✓ valid")
		return nil
	}
	fmt.Fprintf(Out, "× %d problem(s):\n", len(res.Errors))
	for _, fe := range res.Errors {
		fmt.Fprintf(Out, "  %s: %s\n", fe.Field, fe.Message)
	}
	return nil
}

func init() {
	RegisterCmd(renderCmd{})
	RegisterCmd(validateCmd{})
}
