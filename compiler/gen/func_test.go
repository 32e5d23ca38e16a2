package gen

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSnake(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"Username", "username"},
		{"FullName", "full_name"},
		{"HTTPCode", "http_code"},
		{"XMLParser", "xml_parser"},
		{"ItemState", "item_state"},
		{"already_snake", "already_snake"},
		{"A", "a"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, snake(tt.input))
		})
	}
}

func TestPlural(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"color", "colors"},
		{"item_state", "item_states"},
		{"category", "categories"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, plural(tt.input))
		})
	}
}

func TestReceiver(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"Color", "c"},
		{"ItemState", "is"},
		{"HTTPStatus", "h"},
		{"Vehicle", "e"}, // v is a parameter name
		{"OK", "e"},
		{"IFace", "e"}, // if is a keyword
		{"Weekday", "e"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, receiver(tt.input))
		})
	}
}

func TestUpperSnake(t *testing.T) {
	assert.Equal(t, "DARK_BLUE", upperSnake("DarkBlue"))
	assert.Equal(t, "RED", upperSnake("Red"))
	assert.Equal(t, "HTTP_ERROR", upperSnake("HTTPError"))
}
