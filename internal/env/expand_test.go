package env

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExpand(t *testing.T) {
	tests := []struct {
		name     string
		env      map[string]string
		input    string
		expected string
	}{
		{
			name:     "no expressions",
			input:    "just a plain string",
			expected: "just a plain string",
		},
		{
			name:     "single expression",
			env:      map[string]string{"MINIRT_LEVEL": "debug"},
			input:    "level: ${env.MINIRT_LEVEL}",
			expected: "level: debug",
		},
		{
			name:     "multiple expressions",
			env:      map[string]string{"MINIRT_A": "1", "MINIRT_B": "2"},
			input:    "${env.MINIRT_A}-${env.MINIRT_B}-${env.MINIRT_A}",
			expected: "1-2-1",
		},
		{
			name:     "unset variable becomes empty",
			input:    "unset=${env.MINIRT_NOTSET}-end",
			expected: "unset=-end",
		},
		{
			name:     "missing closing brace",
			env:      map[string]string{"MINIRT_X": "x"},
			input:    "start ${env.MINIRT_X and more",
			expected: "start ${env.MINIRT_X and more",
		},
		{
			name:     "invalid key keeps prefix",
			env:      map[string]string{"MINIRT_Y": "y"},
			input:    "a ${env.bad key} ${env.MINIRT_Y}",
			expected: "a ${env.bad key} y",
		},
		{
			name:     "prefix only no key",
			input:    "oops ${env.} done",
			expected: "oops  done",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			for k, v := range tc.env {
				t.Setenv(k, v)
			}
			assert.Equal(t, tc.expected, Expand(tc.input))
		})
	}
}
