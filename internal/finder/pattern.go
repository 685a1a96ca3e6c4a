// Package finder implements the search core: pattern compilation,
// match scanning across document collections, cursor navigation, and
// replacement.
package finder

import (
	"errors"
	"fmt"
	"regexp"
)

// ErrInvalidPattern reports a regex-mode query that does not compile.
// Callers surface it as zero matches, not a failure.
var ErrInvalidPattern = errors.New("invalid search pattern")

// Options are the three search modifiers.
type Options struct {
	Regex         bool
	CaseSensitive bool
	WholeWord     bool
}

// Pattern is a compiled, modifier-aware matching rule. The zero value
// is the empty pattern, which matches nothing.
type Pattern struct {
	re *regexp.Regexp
}

// Empty reports whether the pattern is the empty-query sentinel.
func (p Pattern) Empty() bool {
	return p.re == nil
}

// Compile builds a Pattern from a raw query and modifiers.
//
// An empty query compiles to the empty Pattern without error. In
// literal mode every metacharacter is escaped so it matches itself.
// Whole-word wraps the expression in word boundaries after escaping,
// so it applies uniformly to literal and regex queries. Matching
// folds case unless CaseSensitive is set.
func Compile(query string, opts Options) (Pattern, error) {
	if query == "" {
		return Pattern{}, nil
	}

	expr := query
	if !opts.Regex {
		expr = regexp.QuoteMeta(expr)
	}
	if opts.WholeWord {
		expr = `\b(?:` + expr + `)\b`
	}
	if !opts.CaseSensitive {
		expr = "(?i)" + expr
	}

	re, err := regexp.Compile(expr)
	if err != nil {
		return Pattern{}, fmt.Errorf("%w: %v", ErrInvalidPattern, err)
	}
	return Pattern{re: re}, nil
}
