package utils

import "io"

type flushableWriter interface {
	Flush() error
}

// FlushingWriter pushes report output through buffered command streams
// immediately, so table rows and warnings appear as soon as they are written.
type FlushingWriter struct {
	destination io.Writer
}

// NewFlushingWriter wraps the destination, flushing after every write when the
// destination supports it.
func NewFlushingWriter(destination io.Writer) io.Writer {
	if destination == nil {
		return nil
	}
	if _, alreadyFlushing := destination.(*FlushingWriter); alreadyFlushing {
		return destination
	}
	return &FlushingWriter{destination: destination}
}

// Write delegates to the destination and flushes it when possible.
func (writer *FlushingWriter) Write(payload []byte) (int, error) {
	writtenBytes, writeError := writer.destination.Write(payload)
	if writeError != nil {
		return writtenBytes, writeError
	}
	if flushable, supportsFlush := writer.destination.(flushableWriter); supportsFlush {
		return writtenBytes, flushable.Flush()
	}
	return writtenBytes, nil
}
