// Package pkg provides the core libraries for Cumulus tag cloud generation.
//
// # Overview
//
// Cumulus turns texts and weighted word lists into compact tag clouds: the
// heaviest words sit at the center and lighter words spiral outward until
// they find a free spot. The pkg directory is organized into five main areas:
//
//  1. [geom] - Integer rectangle geometry shared by every stage
//  2. [cloud] - The placement engine (spiral search + compaction)
//  3. [words] - Word counting, manifests, and text measurement
//  4. [render] - Layouts, styles, and output sinks (SVG, PNG, PDF, JSON, DOT)
//  5. [pipeline] - Orchestration (parse → layout → render) with caching
//
// # Architecture
//
// The typical data flow through Cumulus:
//
//	Text / TOML manifest
//	         ↓
//	    [words] package (count, filter, size)
//	         ↓
//	    [cloud] package (place rectangles)
//	         ↓
//	    [render/cloud] package (layout + sinks)
//	         ↓
//	    SVG/PNG/PDF/JSON/DOT output
//
// # Quick Start
//
// Count words, place them, and render an SVG:
//
//	import (
//	    "strings"
//	    "github.com/mkessel/cumulus/pkg/render/cloud"
//	    "github.com/mkessel/cumulus/pkg/render/cloud/sink"
//	    "github.com/mkessel/cumulus/pkg/words"
//	)
//
//	// 1. Count and sort words
//	ws, _ := words.Count(strings.NewReader(text), words.CountOptions{})
//	words.SortByWeight(ws)
//
//	// 2. Size them
//	sized, _ := words.Scale(ws, words.HeuristicMeasurer{}, words.ScaleOptions{})
//
//	// 3. Place them into a layout
//	l, _ := cloud.Build(sized, cloud.BuildOptions{Width: 800, Height: 600})
//
//	// 4. Render to SVG
//	svg, _ := sink.RenderSVG(l)
//
// Applications that want caching and defaults should use [pipeline.Runner]
// instead of wiring the stages by hand; the cumulus CLI and the HTTP preview
// server are both thin wrappers around it.
//
// # Supporting Packages
//
// [errors] - Structured error codes shared across the module.
//
// [cache] - Layout and artifact caches: FileCache for the CLI, Redis and
// MongoDB backends for shared server deployments, NullCache for tests.
//
// [httputil] - Retrying fetcher for remote text inputs.
//
// [observability] - Optional hooks for metrics and tracing backends.
//
// [buildinfo] - Version information injected at build time via ldflags.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...          # All tests
//	go test ./pkg/cloud/...    # Specific package
//	go test -run Example       # Examples only
//
// [geom]: https://pkg.go.dev/github.com/mkessel/cumulus/pkg/geom
// [cloud]: https://pkg.go.dev/github.com/mkessel/cumulus/pkg/cloud
// [words]: https://pkg.go.dev/github.com/mkessel/cumulus/pkg/words
// [render]: https://pkg.go.dev/github.com/mkessel/cumulus/pkg/render
// [pipeline]: https://pkg.go.dev/github.com/mkessel/cumulus/pkg/pipeline
// [errors]: https://pkg.go.dev/github.com/mkessel/cumulus/pkg/errors
// [cache]: https://pkg.go.dev/github.com/mkessel/cumulus/pkg/cache
// [httputil]: https://pkg.go.dev/github.com/mkessel/cumulus/pkg/httputil
// [observability]: https://pkg.go.dev/github.com/mkessel/cumulus/pkg/observability
// [buildinfo]: https://pkg.go.dev/github.com/mkessel/cumulus/pkg/buildinfo
//
// [render/cloud]: https://pkg.go.dev/github.com/mkessel/cumulus/pkg/render/cloud
package pkg
