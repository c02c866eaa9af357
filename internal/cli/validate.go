package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/julianstephens/habitcraft/internal/errors"
	"github.com/julianstephens/habitcraft/internal/logger"
	"github.com/julianstephens/habitcraft/internal/schema"
	"github.com/julianstephens/habitcraft/internal/validation"
)

const stdinSource = "-"

type ValidateCmd struct {
	Kind  string   `arg:"" help:"Payload kind (see 'habitcraft kinds')."`
	Files []string `arg:"" optional:"" help:"JSON files to check. Reads stdin when omitted or '-'."`
	JSON  bool     `help:"Print the normalized record, or the API error body on failure, as JSON."`
}

func (c *ValidateCmd) Run(ctx *Context) error {
	kind, ok := schema.Lookup(c.Kind)
	if !ok {
		return fmt.Errorf("unknown kind %q (run 'habitcraft kinds' for the list)", c.Kind)
	}

	sources := c.Files
	if len(sources) == 0 {
		sources = []string{stdinSource}
	}

	failed := 0
	for _, src := range sources {
		data, err := readSource(ctx, src)
		if err != nil {
			return fmt.Errorf("reading %s: %w", displayName(src), err)
		}

		record, err := kind.Decode(data)
		if err != nil {
			failed++
			logger.Warn("Payload rejected", "source", displayName(src), "kind", kind.Name, "error", err)
		} else {
			logger.Debug("Payload accepted", "source", displayName(src), "kind", kind.Name)
		}

		if c.JSON {
			if err != nil {
				if perr := ctx.printJSON(errors.ToAPIError(err)); perr != nil {
					return perr
				}
				continue
			}
			if perr := ctx.printJSON(record); perr != nil {
				return perr
			}
			continue
		}

		c.printReport(ctx, displayName(src), kind, err)
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d payload(s) failed validation", failed, len(sources))
	}
	return nil
}

func (c *ValidateCmd) printReport(ctx *Context, name string, kind schema.Kind, err error) {
	if err == nil {
		fmt.Fprintf(ctx.Out, "%s %s\n", validStyle.Render("✓ "+name), mutedStyle.Render("valid "+kind.Name))
		return
	}

	verr, ok := validation.AsValidationError(err)
	if !ok {
		fmt.Fprintf(ctx.Out, "%s %v\n", invalidStyle.Render("✗ "+name), err)
		return
	}

	fmt.Fprintf(ctx.Out, "%s %s\n", invalidStyle.Render("✗ "+name), mutedStyle.Render(fmt.Sprintf("%d violation(s)", len(verr.Violations))))
	for _, v := range verr.Violations {
		fmt.Fprintln(ctx.Out, violationStyle.Render("- "+v.String()))
	}
}

func readSource(ctx *Context, src string) ([]byte, error) {
	if src == stdinSource {
		return io.ReadAll(ctx.In)
	}
	return os.ReadFile(src)
}

func displayName(src string) string {
	if src == stdinSource {
		return "<stdin>"
	}
	return src
}
