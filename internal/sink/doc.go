// Package sink encodes the export document and persists it to its
// destination: a file, standard output, or an S3-compatible bucket.
package sink
