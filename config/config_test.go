package config

import (
	"testing"

	"github.com/bwmarrin/lit"
	"github.com/stretchr/testify/assert"
)

func TestApplyLogLevel(t *testing.T) {
	t.Cleanup(func() { lit.LogLevel = lit.LogError })

	tests := []struct {
		level string
		want  int
	}{
		{"", lit.LogError},
		{"nonsense", lit.LogError},
		{"warning", lit.LogWarning},
		{"LogWarning", lit.LogWarning},
		{"info", lit.LogInformational},
		{"informational", lit.LogInformational},
		{"debug", lit.LogDebug},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			applyLogLevel(tt.level)
			assert.Equal(t, tt.want, lit.LogLevel)
		})
	}
}
