package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/julianstephens/habitcraft/internal/constants"
)

func setupTestDoctor(t *testing.T) (*Context, *bytes.Buffer, string) {
	ctx, out := newTestContext("")
	ctx.ConfigDir = filepath.Join(t.TempDir(), "habitcraft")
	return ctx, out, ctx.ConfigDir
}

func TestDoctorCmd_Healthy(t *testing.T) {
	ctx, out, dir := setupTestDoctor(t)
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, constants.ConfigFileName), []byte(`{"debug": true}`), 0644); err != nil {
		t.Fatal(err)
	}

	if err := (&DoctorCmd{}).Run(ctx); err != nil {
		t.Errorf("doctor command failed on healthy setup: %v", err)
	}
	if !strings.Contains(out.String(), "All diagnostics passed!") {
		t.Errorf("unexpected output:\n%s", out.String())
	}
}

func TestDoctorCmd_MissingConfigFile(t *testing.T) {
	ctx, out, _ := setupTestDoctor(t)

	// Missing config is a warning, not a failure
	if err := (&DoctorCmd{}).Run(ctx); err != nil {
		t.Errorf("doctor command should not fail on missing config file: %v", err)
	}
	if !strings.Contains(out.String(), "⚠ Config file: WARNING") {
		t.Errorf("expected config warning:\n%s", out.String())
	}
}

func TestDoctorCmd_BadConfigFile(t *testing.T) {
	ctx, _, dir := setupTestDoctor(t)
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, constants.ConfigFileName), []byte(`{debug`), 0644); err != nil {
		t.Fatal(err)
	}

	if err := (&DoctorCmd{}).Run(ctx); err == nil {
		t.Error("doctor command should fail on malformed config file")
	}
}

func TestCheckClock(t *testing.T) {
	tests := []struct {
		name    string
		now     time.Time
		wantErr bool
	}{
		{"current", fixedNow, false},
		{"too early", time.Date(1970, 1, 1, 0, 0, 0, 0, time.UTC), true},
		{"too late", time.Date(2150, 1, 1, 0, 0, 0, 0, time.UTC), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := checkClock(tt.now); (err != nil) != tt.wantErr {
				t.Errorf("checkClock() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestCheckSchemaKinds(t *testing.T) {
	if err := checkSchemaKinds(fixedNow); err != nil {
		t.Errorf("checkSchemaKinds() error = %v", err)
	}
}
