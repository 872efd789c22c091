// Package words turns raw text or manifest files into weighted, pixel-sized
// words ready for cloud layout.
//
// The package covers the input half of the pipeline: counting word
// frequencies in plain text, loading explicit word/weight lists from TOML
// manifests, and converting weights into integer rectangle sizes through
// font scaling and text measurement.
package words

import (
	"bufio"
	"io"
	"sort"
	"strings"
	"unicode"

	"github.com/maruel/natural"

	"github.com/mkessel/cumulus/pkg/errors"
)

// Word is a cloud entry: the text to render and its relative weight.
// Weights are arbitrary positive values; only their ratios matter.
type Word struct {
	Text   string  `json:"text"`
	Weight float64 `json:"weight"`
}

// CountOptions controls frequency counting.
type CountOptions struct {
	// MinLength drops words shorter than this many runes. Zero means 2.
	MinLength int

	// MaxWords caps the result at the heaviest N words. Zero means 100.
	MaxWords int

	// KeepCase disables case folding.
	KeepCase bool

	// StopWords are dropped after case folding. Nil uses DefaultStopWords.
	StopWords map[string]bool
}

// DefaultStopWords is the built-in English stop word list applied by Count
// when no custom list is given.
var DefaultStopWords = map[string]bool{
	"a": true, "an": true, "and": true, "are": true, "as": true, "at": true,
	"be": true, "but": true, "by": true, "for": true, "from": true,
	"has": true, "have": true, "he": true, "her": true, "his": true,
	"if": true, "in": true, "is": true, "it": true, "its": true,
	"not": true, "of": true, "on": true, "or": true, "she": true,
	"that": true, "the": true, "their": true, "they": true, "this": true,
	"to": true, "was": true, "were": true, "will": true, "with": true,
	"you": true,
}

// Count reads text from r and returns words ordered by descending frequency.
// Ties are broken by natural text order so the result is deterministic.
func Count(r io.Reader, opts CountOptions) ([]Word, error) {
	if opts.MinLength == 0 {
		opts.MinLength = 2
	}
	if opts.MaxWords == 0 {
		opts.MaxWords = 100
	}
	stop := opts.StopWords
	if stop == nil {
		stop = DefaultStopWords
	}

	freq := make(map[string]int)
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	scanner.Split(bufio.ScanWords)
	for scanner.Scan() {
		for _, tok := range splitToken(scanner.Text()) {
			if !opts.KeepCase {
				tok = strings.ToLower(tok)
			}
			if len([]rune(tok)) < opts.MinLength || stop[tok] {
				continue
			}
			freq[tok]++
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "failed to read input text")
	}

	out := make([]Word, 0, len(freq))
	for text, n := range freq {
		out = append(out, Word{Text: text, Weight: float64(n)})
	}
	SortByWeight(out)

	if len(out) > opts.MaxWords {
		out = out[:opts.MaxWords]
	}
	return out, nil
}

// splitToken strips punctuation and splits a whitespace token on any
// remaining non-letter, non-digit runs. Apostrophes and hyphens inside a
// word are kept so "don't" and "well-known" survive as single words.
func splitToken(tok string) []string {
	return strings.FieldsFunc(tok, func(r rune) bool {
		if r == '\'' || r == '-' {
			return false
		}
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

// SortByWeight orders words by descending weight, then natural text order.
func SortByWeight(ws []Word) {
	sort.SliceStable(ws, func(i, j int) bool {
		if ws[i].Weight != ws[j].Weight {
			return ws[i].Weight > ws[j].Weight
		}
		return natural.Less(ws[i].Text, ws[j].Text)
	})
}

// Validate checks every word for renderability and positive weight.
func Validate(ws []Word) error {
	if len(ws) == 0 {
		return errors.New(errors.ErrCodeInvalidInput, "no words to lay out")
	}
	for _, w := range ws {
		if err := errors.ValidateWord(w.Text); err != nil {
			return err
		}
		if w.Weight <= 0 {
			return errors.New(errors.ErrCodeInvalidInput, "word %q has non-positive weight %g", w.Text, w.Weight)
		}
	}
	return nil
}
