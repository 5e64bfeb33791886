// Package iconsgen converts raw SVG icons into typed React (TSX) components.
//
// The CLI lives in cmd/iconsgen; this root package exposes the same pipeline
// as a Go API so that build tools can run generation without shelling out.
//
// # Layout
//
// Paths are fixed relative to a project root:
//
//	src/svg/*.svg               icon sources
//	src/components/icons/*.tsx  generated components, one per icon
//	src/components/base/        OutlineIcon and FilledIcon wrappers
//	src/props/                  their props contracts
//	src/index.ts                export manifest
//
// A source named heart.svg becomes the component Heart wrapped in OutlineIcon.
// heart-filled.svg becomes HeartFilled wrapped in FilledIcon.
//
// # Quick start
//
//	result, err := iconsgen.Run(iconsgen.Options{Root: "."})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("converted %d, skipped %d\n", len(result.Converted), len(result.Skipped))
//
// Components that already exist are never overwritten. Delete a stale
// component to regenerate it, or set [Options.LockFile] together with
// [Options.RegenerateStale] to regenerate components whose source changed.
//
// # Logging
//
// Pass a [Logger] implementation in [Options.Logger] to receive progress
// messages. A nil Logger silences all output.
//
// # Watching
//
// [Watch] runs the generator and re-runs it whenever an SVG source changes.
//
//	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
//	defer stop()
//	iconsgen.Watch(ctx, opts, func(r *iconsgen.Result, err error) { ... })
package iconsgen
