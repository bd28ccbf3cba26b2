package export

import "github.com/specialistvlad/matexport/internal/resolver"

// Document is the full export: every mesh with its shader assignments and
// one record per distinct shader.
type Document struct {
	Meshes  map[string]*MeshEntry      `json:"meshes"`
	Shaders map[string]*MaterialRecord `json:"shaders"`
}

// MeshEntry lists the shaders assigned to one mesh, in shading-group order.
type MeshEntry struct {
	Transform string   `json:"transform"`
	Materials []string `json:"materials"`
}

// MaterialRecord holds the shader inputs that resolved to something. An
// attribute name appears in Textures or Values, never both.
type MaterialRecord struct {
	Textures map[string]resolver.Texture `json:"textures"`
	Values   map[string]any              `json:"values"`
}

// NewDocument returns an empty document.
func NewDocument() *Document {
	return &Document{
		Meshes:  make(map[string]*MeshEntry),
		Shaders: make(map[string]*MaterialRecord),
	}
}

func newMaterialRecord() *MaterialRecord {
	return &MaterialRecord{
		Textures: make(map[string]resolver.Texture),
		Values:   make(map[string]any),
	}
}
