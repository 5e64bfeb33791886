package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/kataras/iconsgen"
	"github.com/kataras/iconsgen/pkg/formatter"
	"github.com/kataras/iconsgen/pkg/naming"
	"github.com/kataras/iconsgen/pkg/style"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

const version = iconsgen.Version

var (
	configFile      string
	root            string
	lockFile        string
	regenerateStale bool
	reportFile      string
	watch           bool

	renderVariant     string
	renderSize        string
	renderWidth       string
	renderHeight      string
	renderViewBox     string
	renderColor       string
	renderStrokeWidth string
	renderTitle       string
	renderOutput      string
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "iconsgen",
		Short: "Generate React icon components from SVG files",
		Long:  "A tool to convert the SVG files of src/svg into typed React icon components and keep the src/index.ts export manifest in sync",
		Args:  cobra.NoArgs,
		Run:   runGenerate,
	}
	addGenerateFlags(rootCmd)

	generateCmd := &cobra.Command{
		Use:   "generate",
		Short: "Convert new SVG files and rewrite the export manifest (default)",
		Args:  cobra.NoArgs,
		Run:   runGenerate,
	}
	addGenerateFlags(generateCmd)

	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Create the directory layout and the base icon components",
		Args:  cobra.NoArgs,
		Run:   runInit,
	}
	initCmd.Flags().StringVarP(&root, "root", "r", ".", "Project root")

	renderCmd := &cobra.Command{
		Use:   "render <file.svg>",
		Short: "Print an SVG file styled like the base icon components",
		Args:  cobra.ExactArgs(1),
		Run:   runRender,
	}
	renderCmd.Flags().StringVar(&renderVariant, "variant", "", "Icon variant: outline or filled (default: from the file name)")
	renderCmd.Flags().StringVarP(&renderSize, "size", "s", "", "Width and height (default 24)")
	renderCmd.Flags().StringVar(&renderWidth, "width", "", "Width, overrides --size")
	renderCmd.Flags().StringVar(&renderHeight, "height", "", "Height, overrides --size")
	renderCmd.Flags().StringVar(&renderViewBox, "view-box", "", "viewBox (default \"0 0 24 24\")")
	renderCmd.Flags().StringVarP(&renderColor, "color", "c", "", "Stroke or fill color (default currentColor)")
	renderCmd.Flags().StringVar(&renderStrokeWidth, "stroke-width", "", "Stroke width of outline icons (default 2)")
	renderCmd.Flags().StringVar(&renderTitle, "title", "", "Accessible title")
	renderCmd.Flags().StringVarP(&renderOutput, "output", "o", "", "Output file (default: stdout)")

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("iconsgen version %s\n", version)
		},
	}

	rootCmd.AddCommand(generateCmd, initCmd, renderCmd, versionCmd)

	return rootCmd
}

func addGenerateFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&configFile, "config", "", "Config file (default: iconsgen.toml in the project root)")
	cmd.Flags().StringVarP(&root, "root", "r", ".", "Project root")
	cmd.Flags().StringVarP(&lockFile, "lock", "l", "", "Fingerprint lock file, relative to the root (e.g. iconsgen.lock)")
	cmd.Flags().BoolVar(&regenerateStale, "regenerate-stale", false, "Regenerate components whose SVG changed since they were generated (requires --lock)")
	cmd.Flags().StringVar(&reportFile, "report", "", "Write a markdown catalog of the run to this file")
	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "Keep running and regenerate when SVG files change")
}

func runGenerate(cmd *cobra.Command, args []string) {
	red := color.New(color.FgRed)
	cyan := color.New(color.FgCyan)

	cfg, err := loadConfig(cmd.Flags(), configFile)
	if err != nil {
		red.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	cyan.Println("\n🔄 Starting icon conversion...")
	cyan.Println("==============================")
	cyan.Println()

	opts := iconsgen.Options{
		Root:              cfg.Root,
		LockFile:          cfg.Lock,
		RegenerateStale:   cfg.RegenerateStale,
		ReplaceAttrValues: cfg.ReplaceAttrValues,
		Logger:            &cliLogger{},
	}

	if watch {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		err := iconsgen.Watch(ctx, opts, func(result *iconsgen.Result, err error) {
			if err != nil {
				red.Printf("Error: %v\n", err)
				return
			}
			printSummary(result)
			if err := writeReport(cfg.Report, cfg.Root, result); err != nil {
				red.Printf("Error: %v\n", err)
			}
		})
		if err != nil {
			red.Printf("Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	result, err := iconsgen.Run(opts)
	if err != nil {
		red.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	printSummary(result)

	if err := writeReport(cfg.Report, cfg.Root, result); err != nil {
		red.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}

func printSummary(result *iconsgen.Result) {
	green := color.New(color.FgGreen)
	cyan := color.New(color.FgCyan)

	cyan.Println("\n📊 Conversion Summary:")
	fmt.Printf("  • Converted: %d\n", len(result.Converted))
	fmt.Printf("  • Skipped: %d\n", len(result.Skipped))
	if len(result.Failed) > 0 {
		color.New(color.FgRed).Printf("  • Failed: %d\n", len(result.Failed))
	}
	fmt.Printf("  • Total components: %d\n", len(result.Components))

	green.Println("\n✨ Conversion complete!")
	fmt.Println()
}

func writeReport(path, projectRoot string, result *iconsgen.Result) error {
	if path == "" {
		return nil
	}

	green := color.New(color.FgGreen)
	red := color.New(color.FgRed)

	title := filepath.Base(filepath.Clean(projectRoot))
	if abs, err := filepath.Abs(projectRoot); err == nil {
		title = filepath.Base(abs)
	}

	green.Printf("💾 Writing report to %s... ", path)
	if err := os.WriteFile(path, []byte(formatter.ToMarkdown(result.Report(), title)), 0644); err != nil {
		red.Printf("✗\n")
		return fmt.Errorf("write report: %w", err)
	}
	green.Println("✓")

	return nil
}

func runInit(cmd *cobra.Command, args []string) {
	red := color.New(color.FgRed)
	green := color.New(color.FgGreen)

	created, err := iconsgen.Init(root, &cliLogger{})
	if err != nil {
		red.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	green.Printf("\n✨ Project ready (%d file(s) created)\n\n", len(created))
}

func runRender(cmd *cobra.Command, args []string) {
	red := color.New(color.FgRed)

	src, err := os.ReadFile(args[0])
	if err != nil {
		red.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	variant := naming.Outline
	if renderVariant != "" {
		if variant, err = naming.ParseVariant(renderVariant); err != nil {
			red.Printf("Error: %v\n", err)
			os.Exit(1)
		}
	} else if naming.IsFilled(args[0]) {
		variant = naming.Filled
	}

	out, err := iconsgen.RenderSVG(src, variant, style.Options{
		Size:        renderSize,
		Width:       renderWidth,
		Height:      renderHeight,
		ViewBox:     renderViewBox,
		Color:       renderColor,
		StrokeWidth: renderStrokeWidth,
		Title:       renderTitle,
	})
	if err != nil {
		red.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	if renderOutput == "" {
		if _, err := os.Stdout.Write(out); err != nil {
			red.Printf("Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := os.WriteFile(renderOutput, out, 0644); err != nil {
		red.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}

// cliLogger implements iconsgen.Logger with colored terminal output.
type cliLogger struct{}

func (l *cliLogger) Infof(format string, args ...any) {
	color.New(color.FgGreen).Printf(format+"\n", args...)
}

func (l *cliLogger) Warnf(format string, args ...any) {
	color.New(color.FgYellow).Printf("⚠ "+format+"\n", args...)
}

func (l *cliLogger) Errorf(format string, args ...any) {
	color.New(color.FgRed).Printf("✗ "+format+"\n", args...)
}
