// Package inmemoryscene provides a thread-safe, in-memory implementation
// of the scene.Graph interface. It holds one snapshot of a shading network
// and is designed for scenes that fit comfortably in memory.
package inmemoryscene
