package naming

import (
	"regexp"
	"sort"
	"strings"

	"screenshot-organizer/internal/label"
)

// DefaultStopwords is the default denylist for keyword extraction: common
// English function words plus chrome that shows up in almost any
// screenshot.
var DefaultStopwords = map[string]bool{
	"the": true, "a": true, "an": true, "is": true, "are": true,
	"was": true, "were": true, "be": true, "been": true, "being": true,
	"have": true, "has": true, "had": true, "do": true, "does": true,
	"did": true, "will": true, "would": true, "could": true, "should": true,
	"may": true, "might": true, "must": true, "shall": true,
	"this": true, "that": true, "these": true, "those": true,
	"and": true, "or": true, "but": true, "if": true, "then": true,
	"for": true, "from": true, "with": true, "about": true, "into": true,
	"to": true, "of": true, "in": true, "on": true, "at": true, "by": true,
	"it": true, "its": true, "which": true, "who": true, "what": true,
	"when": true, "where": true, "how": true, "why": true, "you": true,
	"your": true, "not": true, "all": true, "can": true, "new": true,
	// screenshot chrome
	"file": true, "edit": true, "view": true, "window": true, "help": true,
	"search": true, "menu": true, "close": true, "open": true, "save": true,
	"tab": true, "page": true, "screenshot": true,
}

var (
	wordPattern = regexp.MustCompile(`[a-zA-Z][a-zA-Z0-9]{2,}`)

	// Capitalized runs ("Visual Studio Code") and double-quoted phrases
	// are treated as entity candidates.
	capitalizedPattern = regexp.MustCompile(`\b[A-Z][a-zA-Z0-9]+(?: [A-Z][a-zA-Z0-9]+)*\b`)
	quotedPattern      = regexp.MustCompile(`"([^"\n]{2,60})"`)
)

// extractKeywords builds a stopword-filtered frequency table from extracted
// text, ordered by count descending then word ascending so results are
// deterministic.
func extractKeywords(text string, stopwords map[string]bool) []label.Keyword {
	counts := make(map[string]int)
	for _, word := range wordPattern.FindAllString(text, -1) {
		word = strings.ToLower(word)
		if !stopwords[word] {
			counts[word]++
		}
	}

	keywords := make([]label.Keyword, 0, len(counts))
	for word, count := range counts {
		keywords = append(keywords, label.Keyword{Word: word, Count: count})
	}
	sort.Slice(keywords, func(i, j int) bool {
		if keywords[i].Count != keywords[j].Count {
			return keywords[i].Count > keywords[j].Count
		}
		return keywords[i].Word < keywords[j].Word
	})

	return keywords
}

// extractEntities collects capitalized and quoted substrings, deduplicated
// in first-occurrence order. Single stopwords that merely start a sentence
// ("The", "When") are dropped.
func extractEntities(text string, stopwords map[string]bool) []string {
	var entities []string
	seen := make(map[string]bool)

	add := func(candidate string) {
		candidate = strings.TrimSpace(candidate)
		if candidate == "" || seen[candidate] {
			return
		}
		if !strings.Contains(candidate, " ") && stopwords[strings.ToLower(candidate)] {
			return
		}
		seen[candidate] = true
		entities = append(entities, candidate)
	}

	for _, m := range capitalizedPattern.FindAllString(text, -1) {
		add(m)
	}
	for _, m := range quotedPattern.FindAllStringSubmatch(text, -1) {
		add(m[1])
	}

	return entities
}
