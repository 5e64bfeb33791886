// Package extractor pulls the inner markup of the root vector element out of
// converted component code.
package extractor

import (
	"errors"
	"regexp"
	"strings"
)

// ErrNoMarkup is returned when no vector markup could be located in the converted code.
var ErrNoMarkup = errors.New("no svg markup found in converted code")

// Strategy identifies which extraction pass produced the markup.
type Strategy int

const (
	StrategyNone Strategy = iota
	// StrategyRoot captured the content of the first <svg> element.
	StrategyRoot
	// StrategyReturn captured an <svg> element inside a return expression.
	StrategyReturn
	// StrategyElement captured the first bare drawing element.
	StrategyElement
)

func (s Strategy) String() string {
	switch s {
	case StrategyRoot:
		return "root"
	case StrategyReturn:
		return "return"
	case StrategyElement:
		return "element"
	default:
		return "none"
	}
}

// Leaf drawing elements recognized by the element fallback.
const drawingTags = `path|circle|rect|line|polyline|polygon|ellipse|g`

var (
	rootPattern   = regexp.MustCompile(`(?s)<svg[^>]*>(.*?)</svg>`)
	returnPattern = regexp.MustCompile(`(?s)return\s*\((.*?)\)\s*;`)
	// Inside a return expression the root may be a component such as <Svg>.
	returnRootPattern = regexp.MustCompile(`(?is)<svg\b[^>]*>(.*?)</svg>`)

	// A complete drawing element, either self-closing or with a closing tag.
	elementPattern = regexp.MustCompile(`(?s)<(?:` + drawingTags + `)\b[^>]*?/>` +
		`|<(?:` + drawingTags + `)\b[^>]*>.*?</(?:` + drawingTags + `)>`)
)

// Result is the outcome of an extraction.
type Result struct {
	Markup   string
	Strategy Strategy
}

// Extract returns the inner markup of the root <svg> element in code.
//
// The passes are tried in order and the first one to yield markup wins:
// the first <svg>...</svg> pair, an <svg> (matched case-insensitively) inside
// a return (...); expression, and finally the first complete drawing element
// anywhere in the text.
// ErrNoMarkup is returned when every pass comes up empty.
func Extract(code string) (Result, error) {
	if m := rootPattern.FindStringSubmatch(code); m != nil {
		if markup := strings.TrimSpace(m[1]); markup != "" {
			return Result{Markup: markup, Strategy: StrategyRoot}, nil
		}
	} else if m := returnPattern.FindStringSubmatch(code); m != nil {
		body := strings.TrimSpace(m[1])
		if inner := returnRootPattern.FindStringSubmatch(body); inner != nil {
			if markup := strings.TrimSpace(inner[1]); markup != "" {
				return Result{Markup: markup, Strategy: StrategyReturn}, nil
			}
		}
	}

	if m := elementPattern.FindString(code); m != "" {
		return Result{Markup: strings.TrimSpace(m), Strategy: StrategyElement}, nil
	}

	return Result{}, ErrNoMarkup
}
