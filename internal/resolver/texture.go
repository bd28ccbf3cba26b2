package resolver

import "math"

// TiledMode is the uvTilingMode value that selects per-tile (UDIM) addressing.
const TiledMode = 3

const (
	attrFileTextureName = "fileTextureName"
	attrUVTilingMode    = "uvTilingMode"
)

// Texture is the outcome of resolving one plug.
type Texture struct {
	FilePath string `json:"filePath"`
	UDIM     bool   `json:"udim"`
}

// Found reports whether a file node with a non-empty path ended the chain.
func (t Texture) Found() bool {
	return t.FilePath != ""
}

// isTiledMode reports whether a raw tiling attribute value equals TiledMode.
// Host tools store enums as integers; snapshots decode them as float64.
func isTiledMode(v any) bool {
	switch n := v.(type) {
	case int:
		return n == TiledMode
	case int32:
		return n == TiledMode
	case int64:
		return n == TiledMode
	case float32:
		return float64(n) == TiledMode
	case float64:
		return !math.IsNaN(n) && n == TiledMode
	case []any:
		// getAttr-style single-element wrapping.
		return len(n) == 1 && isTiledMode(n[0])
	default:
		return false
	}
}
