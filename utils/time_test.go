package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type DurationTestCase struct {
	input    int
	expected string
}

func TestFormatDuration(t *testing.T) {
	tests := []DurationTestCase{
		{0, "00:00:00"},
		{45, "00:00:45"},
		{225, "00:03:45"},
		{5025, "01:23:45"},
		{90000, "25:00:00"},
		{-5, "00:00:00"},
	}

	for _, tt := range tests {
		result := FormatDuration(tt.input)
		assert.Equal(t, tt.expected, result)
	}
}
