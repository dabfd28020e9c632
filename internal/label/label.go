// Package label turns session keywords into a short descriptive label by
// invoking a local language model process.
package label

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Status distinguishes a produced label from the two failure modes, so a
// subprocess failure is never conflated with "no label produced".
type Status int

const (
	StatusOK Status = iota
	StatusUnavailable
	StatusTimedOut
)

// Result is the outcome of a label-generation request.
type Result struct {
	Status Status
	Label  string
}

// Keyword is a word with its occurrence count, ordered most frequent first
// when passed to a Generator.
type Keyword struct {
	Word  string
	Count int
}

// Generator produces a short raw label for a session from its top keywords
// and entity candidates, within a bounded time.
type Generator interface {
	Generate(ctx context.Context, keywords []Keyword, entities []string) Result
}

// DefaultTimeout bounds a single label-generation call.
const DefaultTimeout = 30 * time.Second

// DefaultModel is the ollama model used when none is configured.
const DefaultModel = "llama3.2"

// Ollama generates labels by running a prompt through the local ollama CLI.
type Ollama struct {
	Model   string
	Timeout time.Duration

	log zerolog.Logger
}

// NewOllama returns a Generator backed by `ollama run`.
func NewOllama(model string, log zerolog.Logger) *Ollama {
	if model == "" {
		model = DefaultModel
	}
	return &Ollama{Model: model, Timeout: DefaultTimeout, log: log}
}

// Generate runs the model under the configured timeout. A deadline hit maps
// to StatusTimedOut; a missing binary or non-zero exit maps to
// StatusUnavailable. Only the first line of output is used.
func (o *Ollama) Generate(ctx context.Context, keywords []Keyword, entities []string) Result {
	if _, err := exec.LookPath("ollama"); err != nil {
		o.log.Warn().Msg("ollama not found on PATH")
		return Result{Status: StatusUnavailable}
	}

	ctx, cancel := context.WithTimeout(ctx, o.Timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, "ollama", "run", o.Model, o.prompt(keywords, entities))
	out, err := cmd.Output()
	if err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			o.log.Warn().Dur("timeout", o.Timeout).Msg("label generation timed out")
			return Result{Status: StatusTimedOut}
		}
		o.log.Warn().Err(err).Msg("label generation failed")
		return Result{Status: StatusUnavailable}
	}

	line := firstLine(string(out))
	if line == "" {
		return Result{Status: StatusUnavailable}
	}
	return Result{Status: StatusOK, Label: line}
}

func (o *Ollama) prompt(keywords []Keyword, entities []string) string {
	var b strings.Builder
	b.WriteString("Summarize one work session in at most 4 lowercase words, ")
	b.WriteString("no punctuation, no explanation.\nKeywords:")
	for _, kw := range keywords {
		fmt.Fprintf(&b, " %s(%d)", kw.Word, kw.Count)
	}
	if len(entities) > 0 {
		b.WriteString("\nNames seen: ")
		b.WriteString(strings.Join(entities, ", "))
	}
	return b.String()
}

func firstLine(s string) string {
	s = strings.TrimSpace(s)
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[:i]
	}
	return strings.TrimSpace(s)
}
