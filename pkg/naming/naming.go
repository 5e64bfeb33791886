package naming

import (
	"errors"
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	// Ext is the extension every icon source must carry.
	Ext = ".svg"
	// FilledMarker is the last name segment that marks a Filled icon.
	FilledMarker = "filled"
	// FilledSuffix is appended to the identifier of a Filled icon.
	FilledSuffix = "Filled"

	delimiter = "-"
)

var (
	ErrNotSVG            = errors.New("not an svg file")
	ErrEmptyIdentifier   = errors.New("empty component identifier")
	ErrInvalidIdentifier = errors.New("invalid component identifier")
)

// Variant is the rendering style of an icon.
type Variant int

const (
	Outline Variant = iota
	Filled
)

func (v Variant) String() string {
	switch v {
	case Filled:
		return "filled"
	default:
		return "outline"
	}
}

// ParseVariant parses "outline" or "filled".
func ParseVariant(s string) (Variant, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "outline", "":
		return Outline, nil
	case "filled":
		return Filled, nil
	default:
		return Outline, fmt.Errorf("unknown variant %q (must be outline or filled)", s)
	}
}

// Icon is the normalized form of an icon source file name.
type Icon struct {
	Name    string // component identifier, e.g. "HeartFilled"
	Variant Variant
}

var identifierPattern = regexp.MustCompile(`^[A-Za-z_$][A-Za-z0-9_$]*$`)

// Normalize maps a file name to its component identifier and variant:
// heart.svg -> Heart, arrow-left-filled.svg -> ArrowLeftFilled.
// Directory components of filename are ignored.
func Normalize(filename string) (Icon, error) {
	base := filepath.Base(filename)
	if len(base) < len(Ext) || !strings.EqualFold(base[len(base)-len(Ext):], Ext) {
		return Icon{}, fmt.Errorf("%s: %w", filename, ErrNotSVG)
	}

	parts := strings.Split(base[:len(base)-len(Ext)], delimiter)

	icon := Icon{Variant: Outline}
	if parts[len(parts)-1] == FilledMarker {
		icon.Variant = Filled
		parts = parts[:len(parts)-1]
	}

	icon.Name = pascalCase(parts)
	if icon.Variant == Filled {
		icon.Name += FilledSuffix
	}

	if icon.Name == "" {
		return Icon{}, fmt.Errorf("%s: %w", filename, ErrEmptyIdentifier)
	}
	if !identifierPattern.MatchString(icon.Name) {
		return Icon{}, fmt.Errorf("%s: %q: %w", filename, icon.Name, ErrInvalidIdentifier)
	}

	return icon, nil
}

// IsFilled reports whether filename follows the Filled naming convention.
func IsFilled(filename string) bool {
	icon, err := Normalize(filename)
	return err == nil && icon.Variant == Filled
}

// pascalCase upper-cases the first character of each segment, lower-cases
// the rest and joins them without separators.
func pascalCase(parts []string) string {
	upper := cases.Upper(language.Und)
	lower := cases.Lower(language.Und)

	var sb strings.Builder
	for _, part := range parts {
		if part == "" {
			continue
		}
		_, size := utf8.DecodeRuneInString(part)
		sb.WriteString(upper.String(part[:size]))
		sb.WriteString(lower.String(part[size:]))
	}

	return sb.String()
}
