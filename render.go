package iconsgen

import (
	"bytes"
	"fmt"

	"golang.org/x/net/html"

	"github.com/kataras/iconsgen/pkg/convert"
	"github.com/kataras/iconsgen/pkg/naming"
	"github.com/kataras/iconsgen/pkg/style"
)

const svgNamespace = "http://www.w3.org/2000/svg"

// RenderSVG applies the base wrapper styling of variant to the children of
// the SVG document src and returns the result as a standalone SVG document.
// It is the static counterpart of the OutlineIcon and FilledIcon components.
func RenderSVG(src []byte, variant naming.Variant, opts style.Options) ([]byte, error) {
	root, err := convert.Parse(bytes.NewReader(src))
	if err != nil {
		return nil, err
	}

	var children []*html.Node
	for c := root.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			children = append(children, c)
		}
	}

	// Standalone documents need the namespace declaration.
	opts.Attrs = append([]html.Attribute{{Key: "xmlns", Val: svgNamespace}}, opts.Attrs...)

	var buf bytes.Buffer
	if err := html.Render(&buf, style.Apply(variant, children, opts)); err != nil {
		return nil, fmt.Errorf("render svg: %w", err)
	}
	buf.WriteByte('\n')

	return buf.Bytes(), nil
}
