package level

import (
	"errors"
	"fmt"
)

// ErrMalformed matches every *MalformedLevelError via errors.Is.
var ErrMalformed = errors.New("malformed level")

// Failure codes, also used as metric labels.
const (
	CodeDecode          = "decode"
	CodeMissingField    = "missing_field"
	CodeInvalidValue    = "invalid_value"
	CodeUnknownType     = "unknown_type"
	CodeUnknownGoal     = "unknown_goal"
	CodeOutOfBounds     = "out_of_bounds"
	CodeDuplicatePlayer = "duplicate_player"
)

// MalformedLevelError rejects a whole level description.
// The load is aborted; no dungeon is returned alongside it.
type MalformedLevelError struct {
	Level  string // level name, empty for in-memory descriptions
	Field  string // path of the offending field, e.g. "entities[3].id"
	Code   string // one of the Code* constants
	Reason string
	Err    error // underlying decode error, if any
}

func (e *MalformedLevelError) Error() string {
	msg := "malformed level"
	if e.Level != "" {
		msg += " " + e.Level
	}
	if e.Field != "" {
		msg += ": " + e.Field
	}
	msg += ": " + e.Reason
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *MalformedLevelError) Unwrap() error { return e.Err }

// Is reports ErrMalformed as a match.
func (e *MalformedLevelError) Is(target error) bool { return target == ErrMalformed }

func malformed(field, code, format string, args ...any) *MalformedLevelError {
	return &MalformedLevelError{Field: field, Code: code, Reason: fmt.Sprintf(format, args...)}
}

// failureCode extracts the metric label for err.
func failureCode(err error) string {
	var mle *MalformedLevelError
	if errors.As(err, &mle) && mle.Code != "" {
		return mle.Code
	}
	return "internal"
}

// withLevel stamps the level name on a malformed error, leaving other errors untouched.
func withLevel(err error, name string) error {
	var mle *MalformedLevelError
	if name != "" && errors.As(err, &mle) && mle.Level == "" {
		mle.Level = name
	}
	return err
}
