package flagx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterArgs(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		allowed  []string
		expected []string
	}{
		{
			name:     "separate value",
			args:     []string{"-c", "conf.json", "-x", "other"},
			allowed:  []string{"-c"},
			expected: []string{"-c", "conf.json"},
		},
		{
			name:     "equals form",
			args:     []string{"--config=conf.json", "-v"},
			allowed:  []string{"--config"},
			expected: []string{"--config=conf.json"},
		},
		{
			name:     "nothing allowed",
			args:     []string{"-a", "1", "-b"},
			allowed:  []string{"-c"},
			expected: []string{},
		},
		{
			name:     "flag followed by another flag keeps only the flag",
			args:     []string{"-c", "-v"},
			allowed:  []string{"-c"},
			expected: []string{"-c"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FilterArgs(tt.args, tt.allowed))
		})
	}
}
