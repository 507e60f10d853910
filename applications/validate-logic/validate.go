package main

import (
	"bytes"
	"encoding/json"
	"unicode/utf8"
)

const (
	inputField     = "input"
	minInputLength = 3

	validMessage   = "Valid input"
	invalidMessage = "Invalid input"
)

// Request is the event delivered by the caller. Only the "input" field is read.
type Request map[string]any

// UnmarshalJSON keeps numbers as json.Number so they are echoed back exactly.
func (r *Request) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var m map[string]any
	if err := dec.Decode(&m); err != nil {
		return err
	}
	*r = m
	return nil
}

// Response is the verdict returned to the caller.
type Response struct {
	Input   any    `json:"input"`
	IsValid bool   `json:"is_valid"`
	Message string `json:"message"`
}

// Validate reports whether the "input" field is a string longer than three
// characters. A missing field is treated as the empty string and any
// non-string value is invalid.
func Validate(req Request) Response {
	value, ok := req[inputField]
	if !ok {
		value = ""
	}

	s, isString := value.(string)
	isValid := isString && utf8.RuneCountInString(s) > minInputLength

	message := invalidMessage
	if isValid {
		message = validMessage
	}

	return Response{
		Input:   value,
		IsValid: isValid,
		Message: message,
	}
}
