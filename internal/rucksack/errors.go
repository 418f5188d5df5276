package rucksack

import (
	"errors"
	"fmt"
)

// ErrMalformedInput matches every *MalformedInputError.
var ErrMalformedInput = errors.New("malformed rucksack")

// Reason classifies a malformed rucksack line.
type Reason string

const (
	ReasonEmpty               Reason = "empty"
	ReasonOddLength           Reason = "odd_length"
	ReasonInvalidChar         Reason = "invalid_char"
	ReasonNoCommonItem        Reason = "no_common_item"
	ReasonMultipleCommonItems Reason = "multiple_common_items"
)

// MalformedInputError reports a line that cannot be scored.
type MalformedInputError struct {
	Line    int // 1-based; 0 when the line was scored on its own
	Content string
	Reason  Reason
	Detail  string
}

func (e *MalformedInputError) Error() string {
	msg := "malformed rucksack"
	if e.Line > 0 {
		msg = fmt.Sprintf("%s at line %d", msg, e.Line)
	}
	msg = fmt.Sprintf("%s %q: %s", msg, e.Content, e.Reason)
	if e.Detail != "" {
		msg += " (" + e.Detail + ")"
	}
	return msg
}

// Is makes errors.Is(err, ErrMalformedInput) hold.
func (e *MalformedInputError) Is(target error) bool {
	return target == ErrMalformedInput
}
