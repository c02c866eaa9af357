// Package schema constructs validated API records from untyped input.
//
// Every Parse function is all-or-nothing: it returns either a fully
// populated record and a nil error, or the zero record and a
// *validation.ValidationError listing every violated field.
package schema

import (
	"github.com/julianstephens/habitcraft/internal/validation"
)

func build[T any](raw Raw, read func(*reader) T) (T, error) {
	var result validation.Result
	record := read(newReader(raw, &result))
	result.CheckStruct(record)
	if err := result.Err(); err != nil {
		var zero T
		return zero, err
	}
	return record, nil
}
