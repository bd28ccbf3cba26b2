package plug

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	testCases := []struct {
		name         string
		raw          string
		expectErr    bool
		expectedAddr Address
	}{
		{
			name:         "simple plug",
			raw:          "file1.outColor",
			expectedAddr: Address{Node: "file1", Attr: "outColor"},
		},
		{
			name:         "dag path node",
			raw:          "|group1|pCube1.visibility",
			expectedAddr: Address{Node: "|group1|pCube1", Attr: "visibility"},
		},
		{
			name:         "indexed compound attribute",
			raw:          "pCubeShape1.instObjGroups[0].objectGroups[2]",
			expectedAddr: Address{Node: "pCubeShape1", Attr: "instObjGroups[0].objectGroups[2]"},
		},
		{
			name:         "namespaced node",
			raw:          "char:skin_mtl.baseColor",
			expectedAddr: Address{Node: "char:skin_mtl", Attr: "baseColor"},
		},
		{
			name:      "error - empty string",
			raw:       "",
			expectErr: true,
		},
		{
			name:      "error - no attribute",
			raw:       "file1",
			expectErr: true,
		},
		{
			name:      "error - empty node",
			raw:       ".outColor",
			expectErr: true,
		},
		{
			name:      "error - empty attribute segment",
			raw:       "file1.outColor..r",
			expectErr: true,
		},
		{
			name:      "error - bad index",
			raw:       "sg1.dagSetMembers[x]",
			expectErr: true,
		},
		{
			name:      "error - trailing pipe",
			raw:       "|group1|.visibility",
			expectErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			addr, err := Parse(tc.raw)

			if tc.expectErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.True(t, tc.expectedAddr.Equal(addr), "got %s", addr)
		})
	}
}

func TestMustParse_Panics(t *testing.T) {
	assert.Panics(t, func() { MustParse("nodot") })
	assert.NotPanics(t, func() { MustParse("a.b") })
}
