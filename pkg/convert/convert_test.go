package convert

import (
	"errors"
	"strings"
	"testing"
)

const heartSVG = `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="24" height="24" viewBox="0 0 24 24" fill="none">
  <path d="M12 20C12 20 3 15 3 8.5" stroke="#000" stroke-width="2" stroke-linecap="round"/>
</svg>
`

func TestConvert(t *testing.T) {
	got, err := Convert([]byte(heartSVG), Options{})
	if err != nil {
		t.Fatalf("Convert() error = %v", err)
	}

	wants := []string{
		`const Temp = (props: SVGProps<SVGSVGElement>) => (`,
		`<svg xmlns="http://www.w3.org/2000/svg" width={24} height={24} viewBox="0 0 24 24" fill="none" {...props}>`,
		`<path d="M12 20C12 20 3 15 3 8.5" stroke="currentColor" strokeWidth={2} strokeLinecap="round" />`,
		`</svg>`,
		`export default Temp;`,
	}
	for _, want := range wants {
		if !strings.Contains(got, want) {
			t.Errorf("Convert() output missing %q\n%s", want, got)
		}
	}
}

func TestConvert_ComponentName(t *testing.T) {
	got, err := Convert([]byte(heartSVG), Options{ComponentName: "Heart"})
	if err != nil {
		t.Fatalf("Convert() error = %v", err)
	}
	if !strings.Contains(got, "export default Heart;") {
		t.Errorf("Convert() did not use the component name:\n%s", got)
	}
}

func TestConvert_NoRoot(t *testing.T) {
	_, err := Convert([]byte(`<div><p>not an icon</p></div>`), Options{})
	if !errors.Is(err, ErrNoSVGRoot) {
		t.Fatalf("Convert() error = %v, want ErrNoSVGRoot", err)
	}
}

func TestConvert_CustomReplacements(t *testing.T) {
	src := `<svg viewBox="0 0 24 24"><circle cx="12" cy="12" r="3" fill="#ff0000"/></svg>`
	got, err := Convert([]byte(src), Options{ReplaceAttrValues: map[string]string{"#ff0000": "var(--accent)"}})
	if err != nil {
		t.Fatalf("Convert() error = %v", err)
	}
	if !strings.Contains(got, `<circle cx={12} cy={12} r={3} fill="var(--accent)" />`) {
		t.Errorf("Convert() replacement not applied:\n%s", got)
	}
}

func TestChildren(t *testing.T) {
	src := `<svg viewBox="0 0 24 24">
	<!-- comment -->
	<g class="group" clip-path="url(#a)">
		<rect x="2" y="2" width="20" height="20" rx="2"/>
	</g>
	<defs><clipPath id="a"><path d="M0 0h24v24H0z"/></clipPath></defs>
</svg>`

	root, err := Parse(strings.NewReader(src))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	got := Children(root, Options{})
	want := `<g className="group" clipPath="url(#a)">
  <rect x={2} y={2} width={20} height={20} rx={2} />
</g>
<defs>
  <clipPath id="a">
    <path d="M0 0h24v24H0z" />
  </clipPath>
</defs>`

	if got != want {
		t.Errorf("Children() =\n%s\nwant\n%s", got, want)
	}
}

func TestJSXAttrName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"d", "d"},
		{"class", "className"},
		{"stroke-width", "strokeWidth"},
		{"stroke-linejoin", "strokeLinejoin"},
		{"xlink:href", "xlinkHref"},
		{"xml:space", "xmlSpace"},
		{"xmlns:xlink", "xmlnsXlink"},
		{"data-name", "data-name"},
		{"aria-label", "aria-label"},
		{"viewBox", "viewBox"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := JSXAttrName(tt.in); got != tt.want {
				t.Errorf("JSXAttrName(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestJSXValue(t *testing.T) {
	tests := []struct {
		name  string
		attr  string
		value string
		want  string
	}{
		{"numeric attribute", "strokeWidth", "1.5", "{1.5}"},
		{"negative number", "x", "-4", "{-4}"},
		{"leading zero is kept as string", "x", "007", `"007"`},
		{"non numeric attribute", "id", "1", `"1"`},
		{"unit suffix", "width", "24px", `"24px"`},
		{"quote in value", "d", `a"b`, `{"a\"b"}`},
		{"angle bracket", "data-x", "a>b", `"a&gt;b"`},
		{"ampersand", "id", "a&b", `"a&amp;b"`},
		{"angle bracket in expression", "d", `a">b`, `{"a\"\u003eb"}`},
		{"angle bracket in style", "style", "content:a>b", `{{ content: "a\u003eb" }}`},
		{"style object", "style", "fill: red; stroke-width:2", `{{ fill: "red", strokeWidth: "2" }}`},
		{"vendor prefixed style", "style", "-webkit-transform:none", `{{ WebkitTransform: "none" }}`},
		{"custom property style", "style", "--size:4px", `{{ "--size": "4px" }}`},
		{"empty style", "style", " ; ", "{{}}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := jsxValue(tt.attr, tt.value); got != tt.want {
				t.Errorf("jsxValue(%q, %q) = %s, want %s", tt.attr, tt.value, got, tt.want)
			}
		})
	}
}
