package main

import "fmt"

// UsageError reports a malformed command line.
type UsageError struct {
	Msg string
}

func (e *UsageError) Error() string {
	return e.Msg
}

// ParseError reports a numeric argument that is not a number.
type ParseError struct {
	Field string
	Value string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid value %q for %s: must be a number", e.Value, e.Field)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
