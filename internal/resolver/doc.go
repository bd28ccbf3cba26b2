// Package resolver finds the image file behind a shader input.
//
// Resolution follows the first incoming connection of a plug. File nodes end
// the walk; bump and normal-map nodes forward to their input attribute; any
// other node ends it with no result. Nothing here returns an error: an
// unwired or malformed input resolves to an empty Texture so that one bad
// shader never aborts a whole export.
package resolver
