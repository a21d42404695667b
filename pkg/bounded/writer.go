// Package bounded provides an append-only writer over a caller-owned buffer.
//
// The writer never grows its buffer. A fragment is either appended in full or
// rejected with ErrOutOfMemory, in which case nothing past the cursor changes.
//
// Errors are sticky in the manner of bufio.Writer: once a write fails, every
// later write is a no-op returning the same error, and Err reports it. A
// template can therefore be emitted as a plain sequence of writes followed by
// a single Err check.
package bounded

import (
	"bytes"
	"fmt"
	"strconv"
)

var formatErrorMarker = []byte("%!")

// Writer appends fragments into a fixed buffer.
type Writer struct {
	buf []byte
	n   int
	err error
}

// NewWriter creates a Writer over buf. The capacity is len(buf).
func NewWriter(buf []byte) *Writer {
	return &Writer{buf: buf}
}

// Reset rewinds the cursor to the start of the buffer and clears any error.
func (w *Writer) Reset() {
	w.n = 0
	w.err = nil
}

// Err returns the first error encountered, if any.
func (w *Writer) Err() error {
	return w.err
}

// Len returns the number of bytes written so far.
func (w *Writer) Len() int {
	return w.n
}

// Remaining returns the capacity left after the cursor.
func (w *Writer) Remaining() int {
	return len(w.buf) - w.n
}

// Bytes returns the written prefix of the buffer.
func (w *Writer) Bytes() []byte {
	return w.buf[:w.n]
}

func (w *Writer) fail(err error) error {
	w.err = err
	return err
}

// Write appends p.
func (w *Writer) Write(p []byte) error {
	if w.err != nil {
		return w.err
	}
	if len(p) > w.Remaining() {
		return w.fail(ErrOutOfMemory)
	}
	w.n += copy(w.buf[w.n:], p)
	return nil
}

// WriteString appends s.
func (w *Writer) WriteString(s string) error {
	if w.err != nil {
		return w.err
	}
	if len(s) > w.Remaining() {
		return w.fail(ErrOutOfMemory)
	}
	w.n += copy(w.buf[w.n:], s)
	return nil
}

// WriteByte appends a single byte.
func (w *Writer) WriteByte(c byte) error {
	if w.err != nil {
		return w.err
	}
	if w.Remaining() < 1 {
		return w.fail(ErrOutOfMemory)
	}
	w.buf[w.n] = c
	w.n++
	return nil
}

// WriteUint appends the decimal form of v.
func (w *Writer) WriteUint(v uint64) error {
	var digits [20]byte
	return w.Write(strconv.AppendUint(digits[:0], v, 10))
}

// Printf formats according to format and appends the result.
//
// The fragment is formatted into the free tail of the buffer, capped at its
// capacity, so an oversized fragment is built in a fresh array and rejected.
// Output carrying the fmt error marker "%!" fails with ErrFormat.
func (w *Writer) Printf(format string, args ...any) error {
	if w.err != nil {
		return w.err
	}
	free := w.Remaining()
	out := fmt.Appendf(w.buf[w.n:w.n:len(w.buf)], format, args...)
	if len(out) > free {
		return w.fail(ErrOutOfMemory)
	}
	if bytes.Contains(out, formatErrorMarker) {
		return w.fail(ErrFormat)
	}
	w.n += len(out)
	return nil
}

// Each calls fn for i in [0, count), writing a ',' separator before every
// item after the first. It stops at the first error from fn or the writer.
func (w *Writer) Each(count int, fn func(i int) error) error {
	for i := 0; i < count; i++ {
		if i > 0 {
			if err := w.WriteByte(','); err != nil {
				return err
			}
		}
		if err := fn(i); err != nil {
			return err
		}
	}
	return w.err
}
