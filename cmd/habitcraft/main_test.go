package main

import (
	"reflect"
	"testing"

	"github.com/julianstephens/habitcraft/internal/constants"
)

func TestConfigDirFlag_MatchesResolver(t *testing.T) {
	field, ok := reflect.TypeOf(CLI).FieldByName("ConfigDir")
	if !ok {
		t.Fatal("CLI has no ConfigDir field")
	}
	if got := field.Tag.Get("env"); got != constants.ConfigDirEnv {
		t.Errorf("ConfigDir env = %q, want %q", got, constants.ConfigDirEnv)
	}
}
