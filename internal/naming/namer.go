// Package naming assigns each session its folder name: a timestamp prefix
// with a per-date ordinal, optionally extended with a content-derived
// label.
package naming

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"screenshot-organizer/internal/label"
	"screenshot-organizer/internal/model"
)

const (
	// maxSample bounds how many screenshots per session are OCR'd.
	maxSample = 3
	// maxLabelTokens caps the sanitized label length.
	maxLabelTokens = 4
	// maxPromptKeywords bounds how many keywords the generator sees.
	maxPromptKeywords = 10
	// fallbackKeywords is how many raw keywords form the fallback label.
	fallbackKeywords = 3
)

// Extractor pulls visible text out of an image; empty string on failure.
type Extractor func(ctx context.Context, path string) string

// Namer derives session folder names. With Smart unset it produces pure
// timestamp names; with Smart set it additionally derives a descriptive
// suffix from OCR text and the label generator, falling back to raw
// keywords and finally to the bare timestamp name.
type Namer struct {
	Smart     bool
	Extract   Extractor
	Generator label.Generator
	Stopwords map[string]bool

	Log zerolog.Logger
}

// AssignNames gives every session a unique, deterministic folder name of
// the form {date}_{time}_session_{n}[_{label}]. The ordinal n is 1-based
// among same-date sessions in chronological order and is recomputed on
// every call, so it stays correct after upstream splits and merges.
func (n *Namer) AssignNames(ctx context.Context, sessions []*model.Session) {
	perDate := make(map[string]int)

	for _, session := range sessions {
		start := session.StartTime()
		date := start.Format("2006-01-02")
		perDate[date]++

		name := fmt.Sprintf("%s_%s_session_%d", date, start.Format("150405"), perDate[date])

		if n.Smart {
			if suffix := n.describe(ctx, session); suffix != "" {
				name += "_" + suffix
			}
		}

		session.FolderName = name
	}
}

// describe derives the descriptive suffix for one session, or "" when no
// usable text was found.
func (n *Namer) describe(ctx context.Context, session *model.Session) string {
	if n.Extract == nil {
		return ""
	}
	stopwords := n.Stopwords
	if stopwords == nil {
		stopwords = DefaultStopwords
	}

	sample := session.Screenshots
	if len(sample) > maxSample {
		sample = sample[:maxSample]
	}

	var texts []string
	for _, shot := range sample {
		if text := n.Extract(ctx, shot.Path); text != "" {
			texts = append(texts, text)
		}
	}
	combined := strings.Join(texts, "\n")
	if strings.TrimSpace(combined) == "" {
		return ""
	}

	keywords := extractKeywords(combined, stopwords)
	if len(keywords) == 0 {
		return ""
	}
	entities := extractEntities(combined, stopwords)

	if n.Generator != nil {
		prompt := keywords
		if len(prompt) > maxPromptKeywords {
			prompt = prompt[:maxPromptKeywords]
		}
		res := n.Generator.Generate(ctx, prompt, entities)
		if res.Status == label.StatusOK {
			if suffix := Sanitize(res.Label); suffix != "" {
				return suffix
			}
		}
		n.Log.Debug().Int("status", int(res.Status)).Msg("no usable label, falling back to keywords")
	}

	// No label from the generator: fall back to the top raw keywords.
	top := keywords
	if len(top) > fallbackKeywords {
		top = top[:fallbackKeywords]
	}
	words := make([]string, len(top))
	for i, kw := range top {
		words[i] = kw.Word
	}
	return Sanitize(strings.Join(words, "_"))
}

// Sanitize reduces a raw label to a filesystem-safe token form: lowercase,
// non-alphanumeric runs become single underscores, leading and trailing
// separators are trimmed, and at most four tokens survive.
func Sanitize(raw string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(raw) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}

	tokens := strings.FieldsFunc(b.String(), func(r rune) bool { return r == '_' })
	if len(tokens) > maxLabelTokens {
		tokens = tokens[:maxLabelTokens]
	}
	return strings.Join(tokens, "_")
}
