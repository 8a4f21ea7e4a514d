package engine

import (
	"strings"

	"bet-advisor/internal/model"
	"bet-advisor/internal/normalize"
)

// ErrorCode classifies pipeline failures the caller is expected to react to
// programmatically. Anything outside this taxonomy propagates as a plain
// error and should be treated as fatal.
type ErrorCode string

const (
	ErrInvalidInput     ErrorCode = "invalid_input"
	ErrTeamNotFound     ErrorCode = "team_not_found"
	ErrInsufficientData ErrorCode = "insufficient_data"
	ErrParseFailure     ErrorCode = "parse_failure"
)

// Error is a structured pipeline failure. Exactly the fields relevant to the
// code are populated: suggestions for team_not_found, missing fields for
// invalid_input, missing stats for insufficient_data, clarifications for
// parse_failure.
type Error struct {
	Code                ErrorCode                `json:"error"`
	Message             string                   `json:"message"`
	Suggestions         []string                 `json:"suggestions,omitempty"`
	MissingFields       []normalize.MissingField `json:"missing_fields,omitempty"`
	MissingStats        []model.MissingStat      `json:"missing_stats,omitempty"`
	ClarificationNeeded []string                 `json:"clarification_needed,omitempty"`
}

func (e *Error) Error() string {
	return string(e.Code) + ": " + e.Message
}

// invalidInput builds an invalid_input error from normalization misses; the
// message names every absent canonical field so it is directly actionable.
func invalidInput(missing []normalize.MissingField) *Error {
	names := make([]string, len(missing))
	for i, m := range missing {
		names[i] = m.Field
	}
	return &Error{
		Code:          ErrInvalidInput,
		Message:       "missing required fields: " + strings.Join(names, ", "),
		MissingFields: missing,
	}
}
