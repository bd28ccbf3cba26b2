package sink

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrNoDestination is returned when no destination was chosen.
var ErrNoDestination = errors.New("no destination selected")

// StdoutDestination selects standard output.
const StdoutDestination = "-"

// Sink persists one encoded document.
type Sink interface {
	// Write stores data at the sink's location. It is called exactly once.
	Write(ctx context.Context, data []byte) error
	// Location describes where the data goes, for log and user messages.
	Location() string
}

// Options carries what the individual sinks need besides the destination.
type Options struct {
	Stdout io.Writer
	S3     S3Config
}

// New picks a sink for the destination string: "-" for stdout,
// "s3://bucket/key" for object storage, anything else is a file path.
// File and object destinations always end in ".json".
func New(dest string, opts Options) (Sink, error) {
	dest = strings.TrimSpace(dest)
	switch {
	case dest == "":
		return nil, ErrNoDestination
	case dest == StdoutDestination:
		if opts.Stdout == nil {
			return nil, fmt.Errorf("stdout destination requires a writer")
		}
		return NewWriterSink(opts.Stdout, "stdout"), nil
	case strings.HasPrefix(strings.ToLower(dest), s3Scheme):
		bucket, key, err := ParseS3URL(dest)
		if err != nil {
			return nil, err
		}
		return NewS3Sink(opts.S3, bucket, EnsureJSONExt(key))
	default:
		return NewFileSink(EnsureJSONExt(dest)), nil
	}
}

// EnsureJSONExt appends ".json" unless the path already ends with it, in any case.
func EnsureJSONExt(path string) string {
	if strings.HasSuffix(strings.ToLower(path), ".json") {
		return path
	}
	return path + ".json"
}
