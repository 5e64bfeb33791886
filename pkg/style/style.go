// Package style applies Outline (stroke) or Filled (fill) styling to vector markup.
//
// The functions are pure: they deep-copy their input and return a new <svg>
// tree whose drawable shapes carry the variant's styling attributes,
// overwriting whatever values the shapes had.
package style

import (
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/kataras/iconsgen/pkg/naming"
)

// Defaults of the base wrappers.
const (
	DefaultSize           = "24"
	DefaultViewBox        = "0 0 24 24"
	DefaultColor          = "currentColor"
	DefaultStrokeWidth    = "2"
	DefaultStrokeLinecap  = "round"
	DefaultStrokeLinejoin = "round"
)

// Options configures a wrapper. Empty fields take their defaults.
type Options struct {
	Size    string // overrides width and height uniformly
	Width   string
	Height  string
	ViewBox string
	// Color is the stroke color for Outline and the fill color for Filled.
	Color          string
	StrokeWidth    string // Outline only
	StrokeLinecap  string // Outline only
	StrokeLinejoin string // Outline only
	// Title, when set, renders an accessible <title> and marks the root as an image.
	Title string
	// Attrs are applied to the root last and override everything above.
	Attrs []html.Attribute
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

// Shape is a drawable SVG element kind.
type Shape int

const (
	NotShape Shape = iota
	Path
	Circle
	Rect
	Line
	Polyline
	Polygon
	Ellipse
)

// ShapeOf returns the shape kind of the element n, or NotShape.
func ShapeOf(n *html.Node) Shape {
	if n.Type != html.ElementNode {
		return NotShape
	}
	switch n.Data {
	case "path":
		return Path
	case "circle":
		return Circle
	case "rect":
		return Rect
	case "line":
		return Line
	case "polyline":
		return Polyline
	case "polygon":
		return Polygon
	case "ellipse":
		return Ellipse
	default:
		return NotShape
	}
}

// Strokes reports whether the Outline wrapper styles s.
func (s Shape) Strokes() bool {
	return s != NotShape
}

// Fills reports whether the Filled wrapper styles s. Open shapes (line,
// polyline) are left alone.
func (s Shape) Fills() bool {
	switch s {
	case Path, Circle, Rect, Polygon, Ellipse:
		return true
	default:
		return false
	}
}

// Apply dispatches to Outline or Filled.
func Apply(v naming.Variant, children []*html.Node, opts Options) *html.Node {
	if v == naming.Filled {
		return Filled(children, opts)
	}
	return Outline(children, opts)
}

// Outline wraps children in an <svg> root and sets stroke, stroke-width,
// stroke-linecap and stroke-linejoin on every drawable shape.
func Outline(children []*html.Node, opts Options) *html.Node {
	attrs := []html.Attribute{
		{Key: "stroke", Val: orDefault(opts.Color, DefaultColor)},
		{Key: "stroke-width", Val: orDefault(opts.StrokeWidth, DefaultStrokeWidth)},
		{Key: "stroke-linecap", Val: orDefault(opts.StrokeLinecap, DefaultStrokeLinecap)},
		{Key: "stroke-linejoin", Val: orDefault(opts.StrokeLinejoin, DefaultStrokeLinejoin)},
	}
	return wrap(children, opts, Shape.Strokes, attrs)
}

// Filled wraps children in an <svg> root and sets fill on every closed shape.
func Filled(children []*html.Node, opts Options) *html.Node {
	attrs := []html.Attribute{
		{Key: "fill", Val: orDefault(opts.Color, DefaultColor)},
	}
	return wrap(children, opts, Shape.Fills, attrs)
}

func wrap(children []*html.Node, opts Options, styled func(Shape) bool, attrs []html.Attribute) *html.Node {
	root := newRoot(opts)

	if opts.Title != "" {
		title := &html.Node{Type: html.ElementNode, Data: "title", DataAtom: atom.Title, Namespace: "svg"}
		title.AppendChild(&html.Node{Type: html.TextNode, Data: opts.Title})
		root.AppendChild(title)
	}

	for _, c := range children {
		root.AppendChild(restyle(c, styled, attrs))
	}

	return root
}

func newRoot(opts Options) *html.Node {
	size := orDefault(opts.Size, DefaultSize)

	slot := "icon"
	if opts.Title != "" {
		slot = opts.Title + " icon"
	}

	root := &html.Node{
		Type:      html.ElementNode,
		Data:      "svg",
		DataAtom:  atom.Svg,
		Namespace: "svg",
		Attr: []html.Attribute{
			{Key: "data-slot", Val: slot},
			{Key: "width", Val: orDefault(opts.Width, size)},
			{Key: "height", Val: orDefault(opts.Height, size)},
			{Key: "viewBox", Val: orDefault(opts.ViewBox, DefaultViewBox)},
			{Key: "fill", Val: "none"},
		},
	}

	if opts.Title != "" {
		setAttr(root, html.Attribute{Key: "role", Val: "img"})
	} else {
		setAttr(root, html.Attribute{Key: "role", Val: "presentation"})
		setAttr(root, html.Attribute{Key: "aria-hidden", Val: "true"})
	}

	for _, a := range opts.Attrs {
		setAttr(root, a)
	}

	return root
}

// restyle returns a styled deep copy of n.
func restyle(n *html.Node, styled func(Shape) bool, attrs []html.Attribute) *html.Node {
	if styled(ShapeOf(n)) {
		cp := Clone(n)
		for _, a := range attrs {
			setAttr(cp, a)
		}
		return cp
	}

	cp := shallowCopy(n)
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		cp.AppendChild(restyle(c, styled, attrs))
	}
	return cp
}

// Clone returns a deep copy of n, detached from any parent or siblings.
func Clone(n *html.Node) *html.Node {
	cp := shallowCopy(n)
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		cp.AppendChild(Clone(c))
	}
	return cp
}

func shallowCopy(n *html.Node) *html.Node {
	cp := &html.Node{
		Type:      n.Type,
		DataAtom:  n.DataAtom,
		Data:      n.Data,
		Namespace: n.Namespace,
	}
	if len(n.Attr) > 0 {
		cp.Attr = make([]html.Attribute, len(n.Attr))
		copy(cp.Attr, n.Attr)
	}
	return cp
}

// setAttr overwrites the attribute with the same key or appends it.
func setAttr(n *html.Node, a html.Attribute) {
	for i := range n.Attr {
		if n.Attr[i].Key == a.Key && n.Attr[i].Namespace == a.Namespace {
			n.Attr[i].Val = a.Val
			return
		}
	}
	n.Attr = append(n.Attr, a)
}

// Attr returns the value of the attribute key on n.
func Attr(n *html.Node, key string) (string, bool) {
	for _, a := range n.Attr {
		if a.Key == key && a.Namespace == "" {
			return a.Val, true
		}
	}
	return "", false
}
