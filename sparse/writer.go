package sparse

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
)

// Writer serializes records as parallel text streams, one line per record.
// Output is buffered; call Flush after the last record.
type Writer struct {
	format   Format
	suffixes []string
	bufs     []*bufio.Writer
	scratch  []byte
	lines    int
}

// NewWriter binds a format to its output streams, in Format.Suffixes order.
// Errors: ErrUnsupportedFormat; ErrStreamCount when len(ws) != f.Streams().
func NewWriter(f Format, ws ...io.Writer) (*Writer, error) {
	if !f.Valid() {
		return nil, fmt.Errorf("NewWriter(%d): %w", int(f), ErrUnsupportedFormat)
	}
	if len(ws) != f.Streams() {
		return nil, fmt.Errorf("NewWriter(%s): got %d streams, want %d: %w", f, len(ws), f.Streams(), ErrStreamCount)
	}
	w := &Writer{format: f, suffixes: f.Suffixes(), bufs: make([]*bufio.Writer, len(ws))}
	for i, s := range ws {
		if s == nil {
			return nil, fmt.Errorf("NewWriter(%s): stream %s is nil: %w", f, w.suffixes[i], ErrStreamCount)
		}
		w.bufs[i] = bufio.NewWriter(s)
	}

	return w, nil
}

// Format returns the format being written.
func (w *Writer) Format() Format { return w.format }

// Lines returns the number of records written so far.
func (w *Writer) Lines() int { return w.lines }

// Write emits one line per stream for rec.
func (w *Writer) Write(rec Record) error {
	if err := w.line(0, appendValues(w.scratch[:0], rec.Values)); err != nil {
		return err
	}
	if err := w.line(1, appendTerminated(w.scratch[:0], rec.Index)); err != nil {
		return err
	}
	switch w.format {
	case CSC, CSR:
		if err := w.line(2, appendJoined(w.scratch[:0], rec.Ptr)); err != nil {
			return err
		}
	case COO:
		if err := w.line(2, appendTerminated(w.scratch[:0], rec.Rows)); err != nil {
			return err
		}
	}
	w.lines++

	return nil
}

// Flush writes buffered data of every stream.
func (w *Writer) Flush() error {
	for i, b := range w.bufs {
		if err := b.Flush(); err != nil {
			return fmt.Errorf("flush %s: %w", w.suffixes[i], err)
		}
	}

	return nil
}

func (w *Writer) line(k int, b []byte) error {
	w.scratch = append(b, '\n')
	if _, err := w.bufs[k].Write(w.scratch); err != nil {
		return fmt.Errorf("write %s line %d: %w", w.suffixes[k], w.lines, err)
	}

	return nil
}

// appendValues prints every value with %f and a trailing comma.
func appendValues(b []byte, vs []float64) []byte {
	for _, v := range vs {
		b = strconv.AppendFloat(b, v, 'f', 6, 64)
		b = append(b, ',')
	}

	return b
}

// appendTerminated prints every integer followed by a comma.
func appendTerminated(b []byte, xs []int) []byte {
	for _, x := range xs {
		b = strconv.AppendInt(b, int64(x), 10)
		b = append(b, ',')
	}

	return b
}

// appendJoined prints integers separated by commas.
func appendJoined(b []byte, xs []int) []byte {
	for i, x := range xs {
		if i > 0 {
			b = append(b, ',')
		}
		b = strconv.AppendInt(b, int64(x), 10)
	}

	return b
}
