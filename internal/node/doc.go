// Package node defines the scene node value and the closed Kind variant
// used to dispatch on node types without string comparison.
package node
