package node

// Kind is the closed set of node classes the exporter distinguishes.
// Every host type outside the table below is KindOther.
type Kind int

const (
	KindOther Kind = iota
	KindMesh
	KindTransform
	KindShadingGroup
	KindSurfaceShader
	KindFileSource
	KindBumpIndirection
	KindNormalIndirection
)

var kindsByType = map[string]Kind{
	TypeMesh:            KindMesh,
	TypeTransform:       KindTransform,
	TypeShadingEngine:   KindShadingGroup,
	TypeStandardSurface: KindSurfaceShader,
	TypeFile:            KindFileSource,
	TypeBump:            KindBumpIndirection,
	TypeNormalMap:       KindNormalIndirection,
}

// KindOf maps a host type name onto its Kind.
func KindOf(nodeType string) Kind {
	if k, ok := kindsByType[nodeType]; ok {
		return k
	}
	return KindOther
}

// Passthrough reports the input attribute an indirection node forwards.
// Only bump and normal-map nodes have one.
func (k Kind) Passthrough() (string, bool) {
	switch k {
	case KindBumpIndirection:
		return "bumpValue", true
	case KindNormalIndirection:
		return "input", true
	default:
		return "", false
	}
}

func (k Kind) String() string {
	switch k {
	case KindMesh:
		return "mesh"
	case KindTransform:
		return "transform"
	case KindShadingGroup:
		return "shadingGroup"
	case KindSurfaceShader:
		return "surfaceShader"
	case KindFileSource:
		return "fileSource"
	case KindBumpIndirection:
		return "bumpIndirection"
	case KindNormalIndirection:
		return "normalIndirection"
	default:
		return "other"
	}
}
