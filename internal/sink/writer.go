package sink

import (
	"context"
	"fmt"
	"io"
)

// WriterSink writes to an arbitrary io.Writer, e.g. standard output.
type WriterSink struct {
	w    io.Writer
	name string
}

// NewWriterSink wraps w; name is used as the sink's location.
func NewWriterSink(w io.Writer, name string) *WriterSink {
	return &WriterSink{w: w, name: name}
}

func (s *WriterSink) Location() string {
	return s.name
}

func (s *WriterSink) Write(ctx context.Context, data []byte) error {
	if _, err := s.w.Write(data); err != nil {
		return fmt.Errorf("write to %s: %w", s.name, err)
	}
	return nil
}
