package node

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	testCases := []struct {
		nodeType string
		expected Kind
	}{
		{"mesh", KindMesh},
		{"transform", KindTransform},
		{"shadingEngine", KindShadingGroup},
		{"aiStandardSurface", KindSurfaceShader},
		{"file", KindFileSource},
		{"bump2d", KindBumpIndirection},
		{"aiNormalMap", KindNormalIndirection},
		{"ramp", KindOther},
		{"", KindOther},
	}

	for _, tc := range testCases {
		t.Run(tc.nodeType, func(t *testing.T) {
			assert.Equal(t, tc.expected, KindOf(tc.nodeType))
		})
	}
}

func TestKind_Passthrough(t *testing.T) {
	attr, ok := KindBumpIndirection.Passthrough()
	assert.True(t, ok)
	assert.Equal(t, "bumpValue", attr)

	attr, ok = KindNormalIndirection.Passthrough()
	assert.True(t, ok)
	assert.Equal(t, "input", attr)

	for _, k := range []Kind{KindOther, KindMesh, KindTransform, KindShadingGroup, KindSurfaceShader, KindFileSource} {
		_, ok := k.Passthrough()
		assert.False(t, ok, "kind %s should not forward an input", k)
	}
}

func TestNode_Attrs(t *testing.T) {
	n := New("file1", TypeFile).SetAttr("fileTextureName", "tex.png").SetAttr("colorSpace", nil)

	assert.Equal(t, KindFileSource, KindOf(n.Type))
	assert.True(t, n.HasAttr("colorSpace"), "a nil value still declares the attribute")
	assert.False(t, n.HasAttr("uvTilingMode"))

	v, ok := n.Attr("fileTextureName")
	assert.True(t, ok)
	assert.Equal(t, "tex.png", v)
}

func TestNode_SetAttr_NilMap(t *testing.T) {
	n := &Node{Name: "x", Type: "ramp"}
	n.SetAttr("a", 1.0)
	assert.True(t, n.HasAttr("a"))
}
