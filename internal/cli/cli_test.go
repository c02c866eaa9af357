package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/julianstephens/habitcraft/internal/models"
	"github.com/julianstephens/habitcraft/internal/schema"
)

var fixedNow = time.Date(2026, 1, 15, 9, 30, 0, 0, time.UTC)

func newTestContext(stdin string) (*Context, *bytes.Buffer) {
	out := &bytes.Buffer{}
	return &Context{
		Out:     out,
		In:      strings.NewReader(stdin),
		Now:     func() time.Time { return fixedNow },
		Version: "v0.0.0-test",
	}, out
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write %s: %v", name, err)
	}
	return path
}

func TestValidateCmd_ValidFile(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "habit.json", `{"name":"Read","frequency":"daily"}`)

	ctx, out := newTestContext("")
	cmd := &ValidateCmd{Kind: "habit_input", Files: []string{path}}
	if err := cmd.Run(ctx); err != nil {
		t.Fatalf("Run() unexpected error: %v", err)
	}

	if !strings.Contains(out.String(), "habit.json") || !strings.Contains(out.String(), "valid habit_input") {
		t.Errorf("unexpected output: %q", out.String())
	}
}

func TestValidateCmd_ReportsViolations(t *testing.T) {
	dir := t.TempDir()
	good := writeFile(t, dir, "good.json", `{"name":"Read","frequency":"daily"}`)
	bad := writeFile(t, dir, "bad.json", `{"name":"","frequency":"daily","color":"red","target_days":[7]}`)

	ctx, out := newTestContext("")
	cmd := &ValidateCmd{Kind: "habit_input", Files: []string{good, bad}}
	err := cmd.Run(ctx)
	if err == nil {
		t.Fatal("Run() expected error for invalid payload")
	}
	if !strings.Contains(err.Error(), "1 of 2") {
		t.Errorf("error = %q, want failure count", err.Error())
	}

	output := out.String()
	for _, want := range []string{"3 violation(s)", "name: ensure this value has at least 1 characters", "color: must be a valid hex color code", "target_days[0]: must be an integer between 0 and 6"} {
		if !strings.Contains(output, want) {
			t.Errorf("output missing %q:\n%s", want, output)
		}
	}
}

func TestValidateCmd_Stdin(t *testing.T) {
	ctx, out := newTestContext(`{"date":"2026-01-15"}`)
	cmd := &ValidateCmd{Kind: "completion_input"}
	if err := cmd.Run(ctx); err != nil {
		t.Fatalf("Run() unexpected error: %v", err)
	}
	if !strings.Contains(out.String(), "<stdin>") {
		t.Errorf("output = %q, want stdin source name", out.String())
	}
}

func TestValidateCmd_JSONOutput(t *testing.T) {
	ctx, out := newTestContext(`{"name":"Read","frequency":"weekly","target_days":[1,3]}`)
	cmd := &ValidateCmd{Kind: "habit_input", Files: []string{"-"}, JSON: true}
	if err := cmd.Run(ctx); err != nil {
		t.Fatalf("Run() unexpected error: %v", err)
	}

	var input models.HabitInput
	if err := json.Unmarshal(out.Bytes(), &input); err != nil {
		t.Fatalf("output is not a habit input: %v\n%s", err, out.String())
	}
	if input.Color != "#3B82F6" || input.Icon != "⭐" || !reflect.DeepEqual(input.TargetDays, []int{1, 3}) {
		t.Errorf("normalized record = %+v", input)
	}
}

func TestValidateCmd_JSONOutputOnFailure(t *testing.T) {
	ctx, out := newTestContext(`{"email":"ada@example.com","password":"short","name":"Ada"}`)
	cmd := &ValidateCmd{Kind: "user_registration", JSON: true}
	if err := cmd.Run(ctx); err == nil {
		t.Fatal("Run() expected error")
	}

	var apiErr models.ApiError
	if err := json.Unmarshal(out.Bytes(), &apiErr); err != nil {
		t.Fatalf("output is not an API error: %v\n%s", err, out.String())
	}
	if apiErr.StatusCode != 400 || apiErr.Code != "validation_error" || !strings.Contains(apiErr.Message, "password") {
		t.Errorf("ApiError = %+v", apiErr)
	}
}

func TestValidateCmd_UnknownKind(t *testing.T) {
	ctx, _ := newTestContext("{}")
	err := (&ValidateCmd{Kind: "habits"}).Run(ctx)
	if err == nil || !strings.Contains(err.Error(), "unknown kind") {
		t.Errorf("Run() error = %v, want unknown kind", err)
	}
}

func TestValidateCmd_MissingFile(t *testing.T) {
	ctx, _ := newTestContext("")
	err := (&ValidateCmd{Kind: "habit", Files: []string{filepath.Join(t.TempDir(), "nope.json")}}).Run(ctx)
	if err == nil || !strings.Contains(err.Error(), "nope.json") {
		t.Errorf("Run() error = %v, want reading error naming the file", err)
	}
}

func TestExamplePayloads_PassValidation(t *testing.T) {
	for _, k := range schema.Kinds() {
		t.Run(k.Name, func(t *testing.T) {
			payload, ok := examplePayload(k.Name, fixedNow)
			if !ok {
				t.Fatalf("no example for kind %s", k.Name)
			}

			data, err := json.Marshal(payload)
			if err != nil {
				t.Fatalf("Marshal failed: %v", err)
			}
			if _, err := k.Decode(data); err != nil {
				t.Errorf("example does not validate: %v\n%s", err, data)
			}
		})
	}
}

func TestExampleCmd(t *testing.T) {
	ctx, out := newTestContext("")
	if err := (&ExampleCmd{Kind: "habit"}).Run(ctx); err != nil {
		t.Fatalf("Run() unexpected error: %v", err)
	}

	habit, err := schema.Decode(out.Bytes(), schema.ParseHabit)
	if err != nil {
		t.Fatalf("example output does not decode: %v", err)
	}
	if !habit.CreatedAt.Equal(fixedNow) {
		t.Errorf("CreatedAt = %v, want %v", habit.CreatedAt, fixedNow)
	}

	if err := (&ExampleCmd{Kind: "nope"}).Run(ctx); err == nil {
		t.Error("Run() expected error for unknown kind")
	}
}

func TestKindsCmd(t *testing.T) {
	ctx, out := newTestContext("")
	if err := (&KindsCmd{}).Run(ctx); err != nil {
		t.Fatalf("Run() unexpected error: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != len(schema.Kinds()) {
		t.Errorf("got %d lines, want %d", len(lines), len(schema.Kinds()))
	}
	if !strings.Contains(out.String(), "habit_statistics") {
		t.Errorf("output missing habit_statistics:\n%s", out.String())
	}
}

func TestHealthCmd(t *testing.T) {
	ctx, out := newTestContext("")
	if err := (&HealthCmd{}).Run(ctx); err != nil {
		t.Fatalf("Run() unexpected error: %v", err)
	}

	health, err := schema.Decode(out.Bytes(), schema.ParseHealthResponse)
	if err != nil {
		t.Fatalf("health output does not decode: %v", err)
	}
	if health.Status != "ok" || health.Version != "v0.0.0-test" || !health.Timestamp.Equal(fixedNow) {
		t.Errorf("HealthResponse = %+v", health)
	}
}

func TestHabitDraft_Raw(t *testing.T) {
	draft := newHabitDraft()
	draft.Name = "  Stretch  "
	draft.TargetDays = []int{5, 1, 3}

	input, err := schema.ParseHabitInput(draft.raw())
	if err != nil {
		t.Fatalf("ParseHabitInput() unexpected error: %v", err)
	}
	want := models.HabitInput{
		Name:       "Stretch",
		Frequency:  models.FrequencyDaily,
		TargetDays: []int{1, 3, 5},
		Color:      "#3B82F6",
		Icon:       "⭐",
	}
	if !reflect.DeepEqual(input, want) {
		t.Errorf("ParseHabitInput(draft) = %+v, want %+v", input, want)
	}
	if draft.TargetDays[0] != 5 {
		t.Error("raw() reordered the draft's own target days")
	}
}

func TestHabitDraft_RawDescription(t *testing.T) {
	draft := newHabitDraft()
	draft.Name = "Journal"

	draft.Description = "   "
	if _, ok := draft.raw()["description"]; ok {
		t.Error("blank description should be omitted")
	}

	draft.Description = " Three lines a day "
	if got := draft.raw()["description"]; got != "Three lines a day" {
		t.Errorf("description = %v", got)
	}
}

func TestValidateHabitName(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		wantErr bool
	}{
		{"empty", "", true},
		{"whitespace", "   ", true},
		{"normal", "Read", false},
		{"max", strings.Repeat("a", 100), false},
		{"too long", strings.Repeat("a", 101), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := validateHabitName(tt.value); (err != nil) != tt.wantErr {
				t.Errorf("validateHabitName(%q) error = %v, wantErr %v", tt.value, err, tt.wantErr)
			}
		})
	}
}

func TestNewHabitForm_Builds(t *testing.T) {
	draft := newHabitDraft()
	if newHabitForm(&draft) == nil {
		t.Fatal("newHabitForm() returned nil")
	}
}
