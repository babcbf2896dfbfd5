package sink

import (
	"encoding/json"

	"github.com/levelplot/levelplot/pkg/render"
)

// JSONOption configures JSON rendering via [RenderJSON].
type JSONOption func(*jsonRenderer)

type jsonRenderer struct {
	style string
}

// WithJSONStyle records the style name (e.g. "simple") in the JSON output
// for documentation or round-trip rendering.
func WithJSONStyle(s string) JSONOption { return func(r *jsonRenderer) { r.style = s } }

type jsonOutput struct {
	Style string `json:"style,omitempty"`
	*render.Scene
}

// RenderJSON exports the resolved scene as a pretty-printed JSON document:
// every primitive with its coordinates, plus the title and the visible
// window. The output is deterministic for a given scene, which makes it
// usable both for external tooling and as a cache key source.
func RenderJSON(s *render.Scene, opts ...JSONOption) ([]byte, error) {
	r := jsonRenderer{}
	for _, opt := range opts {
		opt(&r)
	}
	return json.MarshalIndent(jsonOutput{Style: r.style, Scene: s}, "", "  ")
}
