// Package sink provides output format renderers for cloud layouts.
//
// # Overview
//
// A "sink" transforms a computed [cloud.Layout] into a final output format.
// This package provides renderers for:
//
//   - SVG: Scalable vector graphics with styled text
//   - JSON: Layout data export and round-tripping
//   - PDF: Print-ready output (requires rsvg-convert)
//   - PNG: Direct raster output of the placement rectangles
//   - DOT: Contact graph of touching words as Graphviz source, or rendered
//     to SVG through Graphviz
//
// # SVG Output
//
// [RenderSVG] produces the primary visual output. Style, background and
// palette default to whatever the layout recorded; options override them:
//
//	svg := sink.RenderSVG(layout,
//	    sink.WithStyle(styles.Ink{}),
//	    sink.WithBoxes(),  // show placement rectangles
//	)
//
// # JSON Output
//
// [RenderJSON] exports the complete layout as JSON. A layout exported this
// way can be re-imported with [cloud.Read] and re-rendered identically, so
// expensive placements only run once.
//
// # PNG Output
//
// [RenderPNG] rasterizes the placement rectangles directly instead of going
// through SVG. It is mainly a diagnostic view: each word becomes a solid
// block of its palette color, making packing gaps immediately visible.
//
// # PDF Output
//
// [RenderPDF] renders via SVG then converts with [render.ToPDF]. Requires
// librsvg (brew install librsvg / apt install librsvg2-bin).
//
// # DOT Output
//
// [ToDOT] builds the contact graph: words whose rectangles touch become
// connected nodes. [RenderDOT] emits it as DOT source bytes;
// [RenderContactGraph] runs it through Graphviz for an SVG view.
//
// [cloud.Layout]: github.com/mkessel/cumulus/pkg/render/cloud.Layout
// [cloud.Read]: github.com/mkessel/cumulus/pkg/render/cloud.Read
// [render.ToPDF]: github.com/mkessel/cumulus/pkg/render.ToPDF
package sink
