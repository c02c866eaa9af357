package schema

import (
	"testing"
)

func TestDecodeRaw_RejectsNonObjects(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"empty", ""},
		{"malformed", `{"name":`},
		{"array", `[1, 2]`},
		{"string", `"habit"`},
		{"null", `null`},
		{"trailing data", `{"name":"a"} {"name":"b"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeRaw([]byte(tt.data))
			if err == nil {
				t.Fatal("expected error")
			}
			if !mustValidationError(t, err).Has(BodyField) {
				t.Errorf("error %v should be reported on %s", err, BodyField)
			}
		})
	}
}

func TestDecode_IntegerFieldsRejectFractions(t *testing.T) {
	_, err := Decode([]byte(`{"name":"Run","frequency":"daily","target_days":[1, 2.0, 3.5]}`), ParseHabitInput)
	verr := mustValidationError(t, err)

	if !verr.Has("target_days[1]") || !verr.Has("target_days[2]") || verr.Has("target_days[0]") {
		t.Errorf("violations = %v", verr.Fields())
	}
}

func TestDecode_AbsentVersusNull(t *testing.T) {
	input, err := Decode([]byte(`{"name":"Run","frequency":"daily","color":null,"target_days":null}`), ParseHabitInput)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if input.Color != "" {
		t.Errorf("null color = %q, want empty (no default)", input.Color)
	}
	if input.Icon != "⭐" {
		t.Errorf("absent icon = %q, want default", input.Icon)
	}
	if input.TargetDays == nil || len(input.TargetDays) != 0 {
		t.Errorf("null target_days = %#v, want empty slice", input.TargetDays)
	}
}

func TestDecode_IgnoresUnknownFields(t *testing.T) {
	_, err := Decode([]byte(`{"message":"hi","extra":true}`), ParseHelloResponse)
	if err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}
