// Package hcl_adapter provides the HCL implementation of the scene.Loader
// interface. It is responsible for discovering snapshot files, parsing them,
// translating node and connect blocks into the in-memory scene, and
// converting CTY attribute values into plain Go values.
package hcl_adapter
