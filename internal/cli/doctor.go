package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/julianstephens/habitcraft/internal/constants"
	"github.com/julianstephens/habitcraft/internal/schema"
)

type DoctorCmd struct{}

func (cmd *DoctorCmd) Run(ctx *Context) error {
	fmt.Fprintln(ctx.Out, "Running diagnostics...")
	fmt.Fprintln(ctx.Out)

	hasError := false

	// Check 1: config directory writable
	if err := checkConfigDirWritable(ctx.ConfigDir); err != nil {
		fmt.Fprintf(ctx.Out, "❌ Config directory writable: FAIL\n")
		fmt.Fprintf(ctx.Out, "   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Fprintf(ctx.Out, "✓ Config directory writable: OK\n")
	}

	// Check 2: config file parses (warning only when missing)
	switch err := checkConfigFile(ctx.ConfigDir); {
	case os.IsNotExist(err):
		fmt.Fprintf(ctx.Out, "⚠ Config file: WARNING\n")
		fmt.Fprintf(ctx.Out, "   %s not found, using defaults\n", constants.ConfigFileName)
	case err != nil:
		fmt.Fprintf(ctx.Out, "❌ Config file: FAIL\n")
		fmt.Fprintf(ctx.Out, "   Error: %v\n", err)
		hasError = true
	default:
		fmt.Fprintf(ctx.Out, "✓ Config file: OK\n")
	}

	// Check 3: every kind accepts its own sample payload
	if err := checkSchemaKinds(ctx.Now()); err != nil {
		fmt.Fprintf(ctx.Out, "❌ Schema self-check: FAIL\n")
		fmt.Fprintf(ctx.Out, "   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Fprintf(ctx.Out, "✓ Schema self-check: OK (%d kinds)\n", len(schema.Kinds()))
	}

	// Check 4: clock sanity
	if err := checkClock(ctx.Now()); err != nil {
		fmt.Fprintf(ctx.Out, "❌ Clock/timezone: FAIL\n")
		fmt.Fprintf(ctx.Out, "   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Fprintf(ctx.Out, "✓ Clock/timezone: OK\n")
	}

	fmt.Fprintln(ctx.Out)
	if hasError {
		fmt.Fprintln(ctx.Out, "Diagnostics completed with errors.")
		return fmt.Errorf("one or more health checks failed")
	}

	fmt.Fprintln(ctx.Out, "All diagnostics passed!")
	return nil
}

func checkConfigDirWritable(dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create %s: %w", dir, err)
	}
	f, err := os.CreateTemp(dir, ".doctor-*")
	if err != nil {
		return fmt.Errorf("failed to write to %s: %w", dir, err)
	}
	name := f.Name()
	f.Close()
	return os.Remove(name)
}

// checkConfigFile returns an os.IsNotExist error when there is no config file.
func checkConfigFile(dir string) error {
	data, err := os.ReadFile(filepath.Join(dir, constants.ConfigFileName))
	if err != nil {
		return err
	}
	var cfg map[string]any
	if err := json.Unmarshal(data, &cfg); err != nil {
		return fmt.Errorf("%s is not a JSON object: %w", constants.ConfigFileName, err)
	}
	return nil
}

func checkSchemaKinds(now time.Time) error {
	for _, k := range schema.Kinds() {
		payload, ok := examplePayload(k.Name, now.UTC().Truncate(time.Second))
		if !ok {
			return fmt.Errorf("no sample payload for kind %q", k.Name)
		}
		data, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("encoding %s sample: %w", k.Name, err)
		}
		if _, err := k.Decode(data); err != nil {
			return fmt.Errorf("%s sample rejected: %w", k.Name, err)
		}
	}
	return nil
}

func checkClock(now time.Time) error {
	if now.Year() < 2020 || now.Year() > 2100 {
		return fmt.Errorf("system time appears incorrect: %s", now.Format(time.RFC3339))
	}
	return nil
}
