/*
Package plug provides a structured representation of attribute addresses
within a scene graph, based on the canonical format `node.attribute`.

The node part is a node name or a `|`-separated DAG path, e.g. `|group1|pCube1`.
The attribute part is a dot-separated sequence of segments, each optionally
indexed, e.g. `instObjGroups[0].objectGroups[2]`.

A connection source such as `file1.outColor` and a shader input such as
`aiStd1.baseColor` are both plugs; this package centralizes splitting and
formatting them so that stores and resolvers never do string surgery.
*/
package plug
