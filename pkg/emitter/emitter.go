// Package emitter renders icon component sources and scaffolds the base
// wrapper components they delegate to.
package emitter

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"text/template"

	"github.com/kataras/iconsgen/pkg/naming"
)

// Ext is the extension of every generated component file.
const Ext = ".tsx"

//go:embed templates
var templates embed.FS

var componentTemplate = template.Must(template.ParseFS(templates, "templates/component.tsx.tmpl"))

// Component is a generated icon component.
type Component struct {
	Name    string
	Variant naming.Variant
	Markup  string
}

// FileName returns the conventional file name of the component named name.
func FileName(name string) string {
	return name + Ext
}

type componentData struct {
	Name   string
	Base   string // base wrapper component
	Props  string // props contract
	Kind   string // "outline" or "filled", the base module name prefix
	Markup string
}

// BaseComponent returns the base wrapper and props type names for v.
func BaseComponent(v naming.Variant) (base, props string) {
	if v == naming.Filled {
		return "FilledIcon", "FilledIconProps"
	}
	return "OutlineIcon", "OutlineIconProps"
}

// Render returns the TSX source of c. The markup is embedded verbatim.
func Render(c Component) ([]byte, error) {
	if c.Name == "" {
		return nil, errors.New("component name is required")
	}

	base, props := BaseComponent(c.Variant)
	data := componentData{
		Name:   c.Name,
		Base:   base,
		Props:  props,
		Kind:   c.Variant.String(),
		Markup: c.Markup,
	}

	var buf bytes.Buffer
	if err := componentTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("render %s: %w", c.Name, err)
	}

	return buf.Bytes(), nil
}

// scaffoldFiles maps embedded templates to their destination, relative to
// the base (components) and props directories.
var scaffoldFiles = []struct {
	template string
	props    bool
	name     string
}{
	{template: "templates/outline-icon.tsx", name: "outline-icon.tsx"},
	{template: "templates/filled-icon.tsx", name: "filled-icon.tsx"},
	{template: "templates/outline-icon-props.ts", props: true, name: "outline-icon-props.ts"},
	{template: "templates/filled-icon-props.ts", props: true, name: "filled-icon-props.ts"},
}

// Scaffold writes the base wrapper components into baseDir and their props
// contracts into propsDir. Files that already exist are left untouched.
// It returns the paths it created.
func Scaffold(baseDir, propsDir string) ([]string, error) {
	var created []string

	for _, f := range scaffoldFiles {
		dir := baseDir
		if f.props {
			dir = propsDir
		}
		dest := filepath.Join(dir, f.name)

		if _, err := os.Stat(dest); err == nil {
			continue
		} else if !errors.Is(err, fs.ErrNotExist) {
			return created, fmt.Errorf("stat %s: %w", dest, err)
		}

		content, err := templates.ReadFile(f.template)
		if err != nil {
			return created, fmt.Errorf("read template %s: %w", f.template, err)
		}

		if err := os.MkdirAll(dir, 0755); err != nil {
			return created, fmt.Errorf("failed to create directory %q: %w", dir, err)
		}
		if err := os.WriteFile(dest, content, 0644); err != nil {
			return created, fmt.Errorf("write %s: %w", dest, err)
		}

		created = append(created, dest)
	}

	return created, nil
}
