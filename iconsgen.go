package iconsgen

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/kataras/iconsgen/pkg/convert"
	"github.com/kataras/iconsgen/pkg/emitter"
	"github.com/kataras/iconsgen/pkg/extractor"
	"github.com/kataras/iconsgen/pkg/formatter"
	"github.com/kataras/iconsgen/pkg/lockfile"
	"github.com/kataras/iconsgen/pkg/manifest"
	"github.com/kataras/iconsgen/pkg/naming"
)

// Version is the current release of iconsgen.
const Version = "0.1.0"

// Options configures a generation run.
type Options struct {
	Root string // project root, default "."
	// LockFile enables fingerprint tracking. Relative paths are resolved
	// against Root. Empty disables it.
	LockFile string
	// RegenerateStale overwrites components whose recorded source
	// fingerprint no longer matches. Requires LockFile.
	RegenerateStale bool
	// ReplaceAttrValues overrides the attribute value replacements of the
	// SVG conversion. nil keeps the defaults.
	ReplaceAttrValues map[string]string
	Logger            Logger // nil = no logging
}

// Logger receives progress messages. A nil Logger means silent operation.
type Logger interface {
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

func (o *Options) logInfo(f string, a ...any) {
	if o.Logger != nil {
		o.Logger.Infof(f, a...)
	}
}

func (o *Options) logWarn(f string, a ...any) {
	if o.Logger != nil {
		o.Logger.Warnf(f, a...)
	}
}

func (o *Options) logError(f string, a ...any) {
	if o.Logger != nil {
		o.Logger.Errorf(f, a...)
	}
}

// Layout is the conventional file layout under a project root.
type Layout struct {
	Root      string
	SVGDir    string // src/svg
	IconsDir  string // src/components/icons
	BaseDir   string // src/components/base
	PropsDir  string // src/props
	IndexFile string // src/index.ts
}

// NewLayout returns the layout rooted at root.
func NewLayout(root string) Layout {
	if root == "" {
		root = "."
	}
	return Layout{
		Root:      root,
		SVGDir:    filepath.Join(root, "src", "svg"),
		IconsDir:  filepath.Join(root, "src", "components", "icons"),
		BaseDir:   filepath.Join(root, "src", "components", "base"),
		PropsDir:  filepath.Join(root, "src", "props"),
		IndexFile: filepath.Join(root, "src", "index.ts"),
	}
}

// Status is the outcome of processing one icon source.
type Status string

const (
	StatusConverted Status = "converted"
	StatusSkipped   Status = "skipped"
	StatusFailed    Status = "failed"
)

// Icon describes one processed source file.
type Icon struct {
	Source      string // file name inside the svg directory
	Name        string // component identifier, empty if naming failed
	Variant     naming.Variant
	Status      Status
	Regenerated bool               // converted over a stale component
	Strategy    extractor.Strategy // extraction pass that found the markup
	Err         error
}

// Result contains the outcome of a run.
type Result struct {
	Icons      []Icon
	Converted  []string // identifiers written during this run
	Skipped    []string // identifiers whose component already existed
	Failed     []Icon
	Components []string // every identifier listed in the manifest, sorted
}

// Report converts the result for formatter.ToMarkdown. Components without a
// source in this run are listed as "existing". A component whose
// regeneration failed is listed once, as failed.
func (r *Result) Report() formatter.Report {
	report := formatter.Report{
		Converted: len(r.Converted),
		Skipped:   len(r.Skipped),
		Failed:    len(r.Failed),
		Total:     len(r.Components),
	}

	seen := make(map[string]bool, len(r.Icons))
	for _, icon := range r.Icons {
		e := formatter.Entry{
			Name:    icon.Name,
			Variant: icon.Variant.String(),
			Source:  icon.Source,
			Status:  string(icon.Status),
		}
		if icon.Err != nil {
			e.Error = icon.Err.Error()
		}
		report.Entries = append(report.Entries, e)
		if icon.Name != "" {
			seen[icon.Name] = true
		}
	}

	for _, name := range r.Components {
		if seen[name] {
			continue
		}
		variant := naming.Outline
		if strings.HasSuffix(name, naming.FilledSuffix) {
			variant = naming.Filled
		}
		report.Entries = append(report.Entries, formatter.Entry{
			Name:    name,
			Variant: variant.String(),
			Status:  "existing",
		})
	}

	return report
}

// Run converts every SVG in the source directory that has no component yet,
// then rewrites the export manifest with every known component.
//
// A failure on a single icon is logged, recorded in Result.Failed and does
// not stop the batch. Failing to prepare the output directory, to write the
// manifest or to save the lock file aborts the run with an error.
func Run(opts Options) (*Result, error) {
	layout := NewLayout(opts.Root)

	if err := os.MkdirAll(layout.IconsDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory %q: %w", layout.IconsDir, err)
	}

	sources, err := findSources(layout.SVGDir)
	if err != nil {
		return nil, err
	}
	if len(sources) == 0 {
		opts.logWarn("No SVG files found in %s", layout.SVGDir)
	} else {
		opts.logInfo("Found %d SVG file(s)", len(sources))
	}

	g := &generator{opts: &opts, layout: layout}

	lockPath := opts.LockFile
	if lockPath != "" {
		if !filepath.IsAbs(lockPath) {
			lockPath = filepath.Join(layout.Root, lockPath)
		}
		if g.lock, err = lockfile.Load(lockPath); err != nil {
			return nil, err
		}
	} else if opts.RegenerateStale {
		opts.logWarn("Stale regeneration needs a lock file, ignoring")
	}

	result := &Result{}
	for _, source := range sources {
		icon := g.process(source)
		result.Icons = append(result.Icons, icon)

		switch icon.Status {
		case StatusConverted:
			result.Converted = append(result.Converted, icon.Name)
		case StatusSkipped:
			result.Skipped = append(result.Skipped, icon.Name)
		case StatusFailed:
			result.Failed = append(result.Failed, icon)
		}
	}

	existing, err := manifest.Collect(layout.IconsDir, emitter.Ext)
	if err != nil {
		return nil, err
	}

	all := make([]string, 0, len(result.Converted)+len(result.Skipped)+len(existing))
	all = append(all, result.Converted...)
	all = append(all, result.Skipped...)
	all = append(all, existing...)
	result.Components = manifest.Names(all)

	if err := manifest.Write(layout.IndexFile, result.Components); err != nil {
		return nil, fmt.Errorf("generate manifest: %w", err)
	}
	opts.logInfo("✓ Generated %s with %d exports", layout.IndexFile, len(result.Components))

	if g.lock != nil {
		if err := g.lock.Save(lockPath); err != nil {
			return nil, err
		}
	}

	return result, nil
}

// Init scaffolds the base wrapper components and props contracts and creates
// the source and output directories. Existing files are kept.
func Init(root string, logger Logger) ([]string, error) {
	opts := Options{Root: root, Logger: logger}
	layout := NewLayout(root)

	for _, dir := range []string{layout.SVGDir, layout.IconsDir} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create directory %q: %w", dir, err)
		}
	}

	created, err := emitter.Scaffold(layout.BaseDir, layout.PropsDir)
	for _, path := range created {
		opts.logInfo("✓ Created %s", path)
	}
	if err != nil {
		return created, fmt.Errorf("scaffold: %w", err)
	}
	if len(created) == 0 {
		opts.logInfo("Base components already present")
	}

	return created, nil
}

// findSources returns the .svg file names directly inside dir, sorted.
// A missing dir yields no sources.
func findSources(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read source directory: %w", err)
	}

	var sources []string
	for _, e := range entries {
		if e.IsDir() || !strings.EqualFold(filepath.Ext(e.Name()), naming.Ext) {
			continue
		}
		sources = append(sources, e.Name())
	}
	sort.Strings(sources)

	return sources, nil
}

type generator struct {
	opts   *Options
	layout Layout
	lock   *lockfile.File // nil when fingerprints are disabled
}

func (g *generator) process(source string) Icon {
	icon := Icon{Source: source}

	n, err := naming.Normalize(source)
	if err != nil {
		return g.fail(icon, err)
	}
	icon.Name, icon.Variant = n.Name, n.Variant

	dest := filepath.Join(g.layout.IconsDir, emitter.FileName(icon.Name))
	if _, err := os.Stat(dest); err == nil {
		stale, err := g.stale(icon)
		if err != nil {
			return g.fail(icon, err)
		}
		if !stale {
			g.opts.logInfo("⏭ Skipping %s (already exists)", icon.Name)
			icon.Status = StatusSkipped
			return icon
		}
		g.opts.logInfo("♻ Regenerating %s (source changed)", icon.Name)
		icon.Regenerated = true
	} else if !errors.Is(err, fs.ErrNotExist) {
		return g.fail(icon, err)
	}

	if err := g.convert(&icon, dest); err != nil {
		return g.fail(icon, err)
	}

	g.opts.logInfo("✓ Converted %s → %s", source, filepath.Base(dest))
	icon.Status = StatusConverted
	return icon
}

func (g *generator) fail(icon Icon, err error) Icon {
	g.opts.logError("Error converting %s: %v", icon.Source, err)
	icon.Status = StatusFailed
	icon.Err = err
	return icon
}

// stale reports whether the existing component of icon must be regenerated.
// Components seen for the first time are adopted into the lock as they are.
func (g *generator) stale(icon Icon) (bool, error) {
	if g.lock == nil {
		return false, nil
	}

	data, err := os.ReadFile(filepath.Join(g.layout.SVGDir, icon.Source))
	if err != nil {
		return false, err
	}
	hash := lockfile.Fingerprint(data)

	if _, recorded := g.lock.Icons[icon.Name]; !recorded {
		g.lock.Record(icon.Name, icon.Source, hash)
		return false, nil
	}

	return g.opts.RegenerateStale && g.lock.Stale(icon.Name, hash), nil
}

func (g *generator) convert(icon *Icon, dest string) error {
	data, err := os.ReadFile(filepath.Join(g.layout.SVGDir, icon.Source))
	if err != nil {
		return err
	}

	code, err := convert.Convert(data, convert.Options{ReplaceAttrValues: g.opts.ReplaceAttrValues})
	if err != nil {
		return err
	}

	extracted, err := extractor.Extract(code)
	if err != nil {
		return err
	}
	icon.Strategy = extracted.Strategy

	source, err := emitter.Render(emitter.Component{
		Name:    icon.Name,
		Variant: icon.Variant,
		Markup:  extracted.Markup,
	})
	if err != nil {
		return err
	}

	if err := os.WriteFile(dest, source, 0644); err != nil {
		return fmt.Errorf("write component: %w", err)
	}

	if g.lock != nil {
		g.lock.Record(icon.Name, icon.Source, lockfile.Fingerprint(data))
	}

	return nil
}
