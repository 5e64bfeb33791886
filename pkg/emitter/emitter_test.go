package emitter

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/kataras/iconsgen/pkg/naming"
)

func TestRender(t *testing.T) {
	tests := []struct {
		name      string
		component Component
		wants     []string
	}{
		{
			name: "outline",
			component: Component{
				Name:    "Heart",
				Variant: naming.Outline,
				Markup:  `<path d="M0 0" />`,
			},
			wants: []string{
				`import { OutlineIcon } from "../base/outline-icon";`,
				`import type { OutlineIconProps } from "../../props/outline-icon-props";`,
				`const Heart = React.forwardRef<SVGSVGElement, OutlineIconProps>(`,
				`<OutlineIcon ref={ref} {...props}>`,
				`<path d="M0 0" />`,
				`</OutlineIcon>`,
				`Heart.displayName = "Heart";`,
				`export { Heart };`,
			},
		},
		{
			name: "filled",
			component: Component{
				Name:    "HeartFilled",
				Variant: naming.Filled,
				Markup:  `<circle cx={12} cy={12} r={4} />`,
			},
			wants: []string{
				`import { FilledIcon } from "../base/filled-icon";`,
				`import type { FilledIconProps } from "../../props/filled-icon-props";`,
				`const HeartFilled = React.forwardRef<SVGSVGElement, FilledIconProps>(`,
				`<FilledIcon ref={ref} {...props}>`,
				`<circle cx={12} cy={12} r={4} />`,
				`HeartFilled.displayName = "HeartFilled";`,
				`export { HeartFilled };`,
			},
		},
		{
			name: "markup is embedded verbatim",
			component: Component{
				Name:   "Broken",
				Markup: `<path d="M0 0"`,
			},
			wants: []string{"        <path d=\"M0 0\"\n      </OutlineIcon>"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Render(tt.component)
			if err != nil {
				t.Fatalf("Render() error = %v", err)
			}
			for _, want := range tt.wants {
				if !strings.Contains(string(got), want) {
					t.Errorf("Render() output missing %q\n%s", want, got)
				}
			}
			if strings.Contains(string(got), "Filled") != (tt.component.Variant == naming.Filled) {
				t.Errorf("Render() mixed variants:\n%s", got)
			}
		})
	}
}

func TestRender_RequiresName(t *testing.T) {
	if _, err := Render(Component{Markup: "<path />"}); err == nil {
		t.Fatal("Render() with empty name: expected error")
	}
}

func TestScaffold(t *testing.T) {
	dir := t.TempDir()
	baseDir := filepath.Join(dir, "src", "components", "base")
	propsDir := filepath.Join(dir, "src", "props")

	// A pre-existing file must survive.
	if err := os.MkdirAll(baseDir, 0755); err != nil {
		t.Fatal(err)
	}
	custom := filepath.Join(baseDir, "outline-icon.tsx")
	if err := os.WriteFile(custom, []byte("// custom"), 0644); err != nil {
		t.Fatal(err)
	}

	created, err := Scaffold(baseDir, propsDir)
	if err != nil {
		t.Fatalf("Scaffold() error = %v", err)
	}
	if len(created) != 3 {
		t.Fatalf("Scaffold() created %d files, want 3: %v", len(created), created)
	}

	content, err := os.ReadFile(custom)
	if err != nil {
		t.Fatal(err)
	}
	if string(content) != "// custom" {
		t.Errorf("Scaffold() overwrote %s", custom)
	}

	filled, err := os.ReadFile(filepath.Join(baseDir, "filled-icon.tsx"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(filled), "export { FilledIcon };") {
		t.Errorf("filled-icon.tsx has unexpected content:\n%s", filled)
	}

	if _, err := os.Stat(filepath.Join(propsDir, "outline-icon-props.ts")); err != nil {
		t.Errorf("outline-icon-props.ts not created: %v", err)
	}

	again, err := Scaffold(baseDir, propsDir)
	if err != nil {
		t.Fatalf("second Scaffold() error = %v", err)
	}
	if len(again) != 0 {
		t.Errorf("second Scaffold() created %v, want nothing", again)
	}
}
