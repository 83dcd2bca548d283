// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package mujson

import "fmt"

// Code identifies a class of parse failure. The numeric values match the
// error codes of the mu_json C library this package reimplements, so a
// caller porting firmware logs can match them up directly; Go code
// should compare against the exported Code constants rather than the
// underlying integers.
type Code int

// Error code constants, mirroring the mu_json_err_t enumeration.
const (
	CodeNone            Code = 0
	CodeBadFormat       Code = -1
	CodeIncomplete      Code = -2
	CodeNoEntities      Code = -3
	CodeStrayInput      Code = -4
	CodeNotEnoughTokens Code = -5
	CodeBadArgument     Code = -6
	CodeTooDeep         Code = -7
	CodeNoMultibyte     Code = -8
	CodeInternal        Code = -9
)

var codeStr = map[Code]string{
	CodeNone:            "NONE",
	CodeBadFormat:       "BAD_FORMAT",
	CodeIncomplete:      "INCOMPLETE",
	CodeNoEntities:      "NO_ENTITIES",
	CodeStrayInput:      "STRAY_INPUT",
	CodeNotEnoughTokens: "NOT_ENOUGH_TOKENS",
	CodeBadArgument:     "BAD_ARGUMENT",
	CodeTooDeep:         "TOO_DEEP",
	CodeNoMultibyte:     "NO_MULTIBYTE",
	CodeInternal:        "INTERNAL",
}

// String returns the human-readable name of c, the Go equivalent of
// mu_json_error_name.
func (c Code) String() string {
	if s, ok := codeStr[c]; ok {
		return s
	}
	return "UNKNOWN"
}

// A ParseError reports why [Parse] rejected an input, and the byte
// offset within the input at which the failure was detected.
type ParseError struct {
	Code   Code
	Offset int
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("mujson: %s at offset %d", e.Code, e.Offset)
}

func parseErr(code Code, offset int) error {
	return &ParseError{Code: code, Offset: offset}
}
