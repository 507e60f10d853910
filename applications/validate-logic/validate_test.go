package main

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		req  Request
		want Response
	}{
		{
			name: "long string",
			req:  Request{"input": "hello"},
			want: Response{Input: "hello", IsValid: true, Message: "Valid input"},
		},
		{
			name: "short string",
			req:  Request{"input": "hi"},
			want: Response{Input: "hi", IsValid: false, Message: "Invalid input"},
		},
		{
			name: "exactly four characters",
			req:  Request{"input": "test"},
			want: Response{Input: "test", IsValid: true, Message: "Valid input"},
		},
		{
			name: "exactly three characters",
			req:  Request{"input": "abc"},
			want: Response{Input: "abc", IsValid: false, Message: "Invalid input"},
		},
		{
			name: "empty string",
			req:  Request{"input": ""},
			want: Response{Input: "", IsValid: false, Message: "Invalid input"},
		},
		{
			name: "missing field",
			req:  Request{},
			want: Response{Input: "", IsValid: false, Message: "Invalid input"},
		},
		{
			name: "nil request",
			req:  nil,
			want: Response{Input: "", IsValid: false, Message: "Invalid input"},
		},
		{
			name: "other fields ignored",
			req:  Request{"name": "long enough", "input": "ok"},
			want: Response{Input: "ok", IsValid: false, Message: "Invalid input"},
		},
		{
			name: "multibyte characters counted as runes",
			req:  Request{"input": "日本語"},
			want: Response{Input: "日本語", IsValid: false, Message: "Invalid input"},
		},
		{
			name: "four multibyte characters",
			req:  Request{"input": "日本語だ"},
			want: Response{Input: "日本語だ", IsValid: true, Message: "Valid input"},
		},
		{
			name: "whitespace is not trimmed",
			req:  Request{"input": "  a  "},
			want: Response{Input: "  a  ", IsValid: true, Message: "Valid input"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Validate(tt.req))
		})
	}
}

func TestValidate_NonStringInputIsInvalid(t *testing.T) {
	values := map[string]any{
		"json number": json.Number("12345"),
		"int":         12345,
		"float":       3.14159,
		"bool":        true,
		"null":        nil,
		"list":        []any{"a", "b", "c", "d", "e"},
		"object":      map[string]any{"a": 1, "b": 2, "c": 3, "d": 4},
	}

	for name, v := range values {
		t.Run(name, func(t *testing.T) {
			got := Validate(Request{"input": v})
			assert.False(t, got.IsValid)
			assert.Equal(t, "Invalid input", got.Message)
			assert.Equal(t, v, got.Input)
		})
	}
}

func TestValidate_Idempotent(t *testing.T) {
	req := Request{"input": "hello"}

	first := Validate(req)
	second := Validate(req)

	assert.Equal(t, first, second)
	assert.Equal(t, Request{"input": "hello"}, req)
}

func TestRequest_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		want    string
	}{
		{
			name:    "string",
			payload: `{"input": "hello"}`,
			want:    `{"input": "hello", "is_valid": true, "message": "Valid input"}`,
		},
		{
			name:    "empty object",
			payload: `{}`,
			want:    `{"input": "", "is_valid": false, "message": "Invalid input"}`,
		},
		{
			name:    "number passes through",
			payload: `{"input": 12345}`,
			want:    `{"input": 12345, "is_valid": false, "message": "Invalid input"}`,
		},
		{
			name:    "large number keeps precision",
			payload: `{"input": 12345678901234567890}`,
			want:    `{"input": 12345678901234567890, "is_valid": false, "message": "Invalid input"}`,
		},
		{
			name:    "explicit null",
			payload: `{"input": null}`,
			want:    `{"input": null, "is_valid": false, "message": "Invalid input"}`,
		},
		{
			name:    "nested object",
			payload: `{"input": {"value": "hello"}}`,
			want:    `{"input": {"value": "hello"}, "is_valid": false, "message": "Invalid input"}`,
		},
		{
			name:    "null event",
			payload: `null`,
			want:    `{"input": "", "is_valid": false, "message": "Invalid input"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req Request
			require.NoError(t, json.Unmarshal([]byte(tt.payload), &req))

			out, err := json.Marshal(Validate(req))
			require.NoError(t, err)
			assert.JSONEq(t, tt.want, string(out))
		})
	}
}

func TestRequest_UnmarshalJSON_NotAnObject(t *testing.T) {
	for _, payload := range []string{`"hello"`, `[1, 2, 3]`, `42`} {
		var req Request
		assert.Error(t, json.Unmarshal([]byte(payload), &req), payload)
	}
}
