// Package render provides output rendering for laid-out tag clouds.
//
// # Overview
//
// This package contains the rendering pipeline that transforms cloud layouts
// into visual outputs. It provides:
//
//   - Generic format conversion (SVG to PDF/PNG)
//   - Cloud rendering (in [cloud] subpackage)
//
// # Format Conversion
//
// The [ToPDF] and [ToPNG] functions convert any SVG to other formats using
// the external rsvg-convert tool (from librsvg).
//
//	svg := sink.RenderSVG(layout, opts...)
//	pdf, err := render.ToPDF(svg)
//	png, err := render.ToPNG(svg, 2.0)  // 2x scale
//
// # Cloud Rendering
//
// The [cloud] subpackage holds the serializable layout model and its sinks:
//   - [cloud]: Layout model, engine driving, JSON import/export
//   - [cloud/sink]: Output formats (SVG, PNG, PDF, JSON, DOT)
//   - [cloud/styles]: Visual styles (simple, ink)
//
// The PNG sink rasterizes rectangles directly; it exists primarily as a
// diagnostic view of the placement result.
//
// [cloud]: github.com/mkessel/cumulus/pkg/render/cloud
// [cloud/sink]: github.com/mkessel/cumulus/pkg/render/cloud/sink
// [cloud/styles]: github.com/mkessel/cumulus/pkg/render/cloud/styles
package render
