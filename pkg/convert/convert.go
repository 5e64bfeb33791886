// Package convert turns SVG documents into JSX.
//
// Parsing is done with golang.org/x/net/html, which keeps <svg> content in
// the SVG namespace and restores SVG casing for tag and attribute names
// (viewBox, linearGradient, clipPath). The JSX produced follows the usual
// React conventions: camelCased attribute names, numeric presentation values
// as expressions and style declarations as objects.
package convert

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// ErrNoSVGRoot is returned when the input has no <svg> element.
var ErrNoSVGRoot = errors.New("no <svg> root element")

// DefaultComponentName names the throwaway component wrapping the converted markup.
const DefaultComponentName = "Temp"

// Options configures the conversion.
type Options struct {
	// ReplaceAttrValues maps exact attribute values to their replacement.
	// A nil map means DefaultReplaceAttrValues.
	ReplaceAttrValues map[string]string
	ComponentName     string
}

// DefaultReplaceAttrValues maps black to currentColor so icons inherit the text color.
func DefaultReplaceAttrValues() map[string]string {
	return map[string]string{
		"#000000": "currentColor",
		"#000":    "currentColor",
		"black":   "currentColor",
	}
}

func (o Options) replacements() map[string]string {
	if o.ReplaceAttrValues == nil {
		return DefaultReplaceAttrValues()
	}
	return o.ReplaceAttrValues
}

func (o Options) componentName() string {
	if o.ComponentName == "" {
		return DefaultComponentName
	}
	return o.ComponentName
}

// Parse reads an SVG document and returns its root <svg> element.
func Parse(r io.Reader) (*html.Node, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse svg: %w", err)
	}

	root := FindRoot(doc)
	if root == nil {
		return nil, ErrNoSVGRoot
	}

	return root, nil
}

// FindRoot returns the first <svg> element under n, or nil.
func FindRoot(n *html.Node) *html.Node {
	if n.Type == html.ElementNode && n.DataAtom == atom.Svg {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := FindRoot(c); found != nil {
			return found
		}
	}
	return nil
}

// Convert parses src and renders it as a TSX module whose default export is
// a component returning the converted <svg> element.
func Convert(src []byte, opts Options) (string, error) {
	root, err := Parse(bytes.NewReader(src))
	if err != nil {
		return "", err
	}

	name := opts.componentName()

	var sb strings.Builder
	sb.WriteString("import * as React from \"react\";\n")
	sb.WriteString("import type { SVGProps } from \"react\";\n")
	fmt.Fprintf(&sb, "const %s = (props: SVGProps<SVGSVGElement>) => (\n", name)
	writeElement(&sb, root, 1, true, opts.replacements())
	sb.WriteString(");\n")
	fmt.Fprintf(&sb, "export default %s;\n", name)

	return sb.String(), nil
}

// Children renders the JSX of root's children, one top-level element per
// line group, without the root element itself.
func Children(root *html.Node, opts Options) string {
	replace := opts.replacements()

	var sb strings.Builder
	for c := root.FirstChild; c != nil; c = c.NextSibling {
		writeNode(&sb, c, 0, replace)
	}

	return strings.TrimRight(sb.String(), "\n")
}

func writeNode(sb *strings.Builder, n *html.Node, depth int, replace map[string]string) {
	switch n.Type {
	case html.ElementNode:
		writeElement(sb, n, depth, false, replace)
	case html.TextNode:
		text := strings.TrimSpace(n.Data)
		if text == "" {
			return
		}
		indent(sb, depth)
		sb.WriteString("{")
		sb.WriteString(jsQuote(text))
		sb.WriteString("}\n")
	}
}

func writeElement(sb *strings.Builder, n *html.Node, depth int, isRoot bool, replace map[string]string) {
	indent(sb, depth)
	sb.WriteByte('<')
	sb.WriteString(n.Data)

	for _, a := range n.Attr {
		name := JSXAttrName(attrName(a))
		value := a.Val
		if r, ok := replace[value]; ok {
			value = r
		}
		sb.WriteByte(' ')
		sb.WriteString(name)
		sb.WriteByte('=')
		sb.WriteString(jsxValue(name, value))
	}

	if isRoot {
		sb.WriteString(" {...props}")
	}

	if !hasContent(n) {
		sb.WriteString(" />\n")
		return
	}

	sb.WriteString(">\n")
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		writeNode(sb, c, depth+1, replace)
	}
	indent(sb, depth)
	sb.WriteString("</")
	sb.WriteString(n.Data)
	sb.WriteString(">\n")
}

// hasContent reports whether n has children that render to JSX.
func hasContent(n *html.Node) bool {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		switch c.Type {
		case html.ElementNode:
			return true
		case html.TextNode:
			if strings.TrimSpace(c.Data) != "" {
				return true
			}
		}
	}
	return false
}

func indent(sb *strings.Builder, depth int) {
	sb.WriteString(strings.Repeat("  ", depth))
}

func attrName(a html.Attribute) string {
	if a.Namespace != "" {
		return a.Namespace + ":" + a.Key
	}
	return a.Key
}

var jsxReserved = map[string]string{
	"class":    "className",
	"for":      "htmlFor",
	"tabindex": "tabIndex",
}

// JSXAttrName converts an SVG attribute name to its JSX spelling:
// stroke-width -> strokeWidth, xlink:href -> xlinkHref, class -> className.
// data-* and aria-* attributes keep their hyphens.
func JSXAttrName(name string) string {
	if r, ok := jsxReserved[name]; ok {
		return r
	}
	if strings.HasPrefix(name, "data-") || strings.HasPrefix(name, "aria-") {
		return name
	}
	return camelCase(name)
}

func camelCase(name string) string {
	parts := strings.FieldsFunc(name, func(r rune) bool { return r == '-' || r == ':' })
	if len(parts) == 0 {
		return name
	}

	var sb strings.Builder
	sb.WriteString(parts[0])
	for _, p := range parts[1:] {
		sb.WriteString(strings.ToUpper(p[:1]))
		sb.WriteString(p[1:])
	}
	return sb.String()
}

// numericAttrs are rendered as number expressions when their value is a plain number.
var numericAttrs = map[string]bool{
	"cx": true, "cy": true, "r": true, "rx": true, "ry": true,
	"x": true, "y": true, "x1": true, "x2": true, "y1": true, "y2": true,
	"width": true, "height": true,
	"opacity": true, "fillOpacity": true, "strokeOpacity": true,
	"strokeWidth": true, "strokeMiterlimit": true, "strokeDashoffset": true,
	"offset": true, "stopOpacity": true,
}

var numberPattern = regexp.MustCompile(`^-?(0|[1-9][0-9]*)(\.[0-9]+)?$`)

func jsxValue(name, value string) string {
	if name == "style" {
		return styleObject(value)
	}
	if numericAttrs[name] && numberPattern.MatchString(value) {
		return "{" + value + "}"
	}
	return jsxString(value)
}

// Generated code is later matched by tag patterns that stop at the first
// '>', so it never appears literally inside attribute values or text.
var attrEscaper = strings.NewReplacer("&", "&amp;", ">", "&gt;")

func jsxString(s string) string {
	if strings.ContainsAny(s, "\"\\\n") {
		return "{" + jsQuote(s) + "}"
	}
	return `"` + attrEscaper.Replace(s) + `"`
}

// jsQuote returns s as a JavaScript string literal.
func jsQuote(s string) string {
	return strings.ReplaceAll(strconv.Quote(s), ">", `\u003e`)
}

// styleObject renders an inline CSS declaration list as a JSX style object.
func styleObject(css string) string {
	decls := make(map[string]string)
	var keys []string

	for _, decl := range strings.Split(css, ";") {
		prop, val, ok := strings.Cut(decl, ":")
		if !ok {
			continue
		}
		prop = strings.TrimSpace(prop)
		val = strings.TrimSpace(val)
		if prop == "" {
			continue
		}
		key := styleKey(prop)
		if _, seen := decls[key]; !seen {
			keys = append(keys, key)
		}
		decls[key] = val
	}

	if len(keys) == 0 {
		return "{{}}"
	}

	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+jsQuote(decls[k]))
	}
	return "{{ " + strings.Join(parts, ", ") + " }}"
}

func styleKey(prop string) string {
	if strings.HasPrefix(prop, "--") {
		return strconv.Quote(prop)
	}
	prop = strings.ToLower(prop)
	if strings.HasPrefix(prop, "-") {
		// -webkit-transform -> WebkitTransform
		c := camelCase(prop[1:])
		if c == "" {
			return strconv.Quote(prop)
		}
		return strings.ToUpper(c[:1]) + c[1:]
	}
	return camelCase(prop)
}
