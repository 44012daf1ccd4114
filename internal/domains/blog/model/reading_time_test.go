package model

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEstimateReadingTime(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"empty body", "", "1 min read"},
		{"whitespace only", "  \n\t ", "1 min read"},
		{"single word", "hello", "1 min read"},
		{"exactly one minute", words(200), "1 min read"},
		{"just over one minute", words(201), "2 min read"},
		{"several minutes", words(450), "3 min read"},
		{"mixed whitespace", "one\ttwo\nthree  four", "1 min read"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, EstimateReadingTime(tt.body))
		})
	}
}

func words(n int) string {
	return strings.TrimSpace(strings.Repeat("word ", n))
}
