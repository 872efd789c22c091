package sink

import (
	"bytes"

	"github.com/mkessel/cumulus/pkg/render/cloud"
)

// RenderJSON exports the layout as a pretty-printed JSON document. This is
// the primary data interchange format for cumulus, enabling:
//
//   - Caching computed layouts for fast re-rendering
//   - Round-trip rendering with [cloud.Read]
//   - Integration with external visualization tools
//
// RenderJSON does not modify l and is safe to call concurrently.
func RenderJSON(l *cloud.Layout) ([]byte, error) {
	var buf bytes.Buffer
	if err := cloud.Write(l, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
