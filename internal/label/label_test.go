package label

import (
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestFirstLine(t *testing.T) {
	tests := []struct {
		name     string
		in       string
		expected string
	}{
		{name: "single line", in: "fixing login bug\n", expected: "fixing login bug"},
		{name: "multi line keeps first", in: "deploy checklist\nextra chatter\n", expected: "deploy checklist"},
		{name: "surrounding whitespace", in: "  label  ", expected: "label"},
		{name: "empty", in: "\n\n", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, firstLine(tt.in))
		})
	}
}

func TestOllamaPrompt(t *testing.T) {
	o := NewOllama("", zerolog.Nop())

	prompt := o.prompt(
		[]Keyword{{Word: "grafana", Count: 3}, {Word: "latency", Count: 1}},
		[]string{"Grafana Dashboard"},
	)

	assert.Contains(t, prompt, "grafana(3)")
	assert.Contains(t, prompt, "latency(1)")
	assert.Contains(t, prompt, "Grafana Dashboard")
	assert.Contains(t, prompt, "at most 4 lowercase words")
}

func TestNewOllamaDefaults(t *testing.T) {
	o := NewOllama("", zerolog.Nop())

	assert.Equal(t, DefaultModel, o.Model)
	assert.Equal(t, 30*time.Second, o.Timeout)
}
