package session

import (
	"fmt"
	"io"

	"github.com/katalvlaran/gridsparse/grid"
	"github.com/katalvlaran/gridsparse/matrix"
	"github.com/katalvlaran/gridsparse/sparse"
	"github.com/sirupsen/logrus"
)

// AutoWidth asks MaterializeEllpack to use the grid-wide maximum row length.
const AutoWidth = -1

// Session binds a matrix, a Px×Py grid and a sparse format.
type Session struct {
	layout  *grid.Layout
	scanner *grid.Scanner
	format  sparse.Format
	sizer   *sparse.Sizer
	log     logrus.FieldLogger
}

// New validates the grid and the format and prepares a sweep. Nothing is
// scanned yet.
func New(m *matrix.Dense, px, py int, f sparse.Format, opts ...Option) (*Session, error) {
	const op = "session.New"
	if m == nil {
		return nil, configErrorf(op, matrix.ErrNilMatrix)
	}
	rows, cols := m.Shape()
	l, err := grid.NewLayout(rows, cols, px, py)
	if err != nil {
		return nil, configErrorf(op, err)
	}
	if !f.Valid() {
		return nil, configErrorf(op, fmt.Errorf("format %d: %w", int(f), sparse.ErrUnsupportedFormat))
	}
	sc, err := grid.NewScanner(l, m)
	if err != nil {
		return nil, configErrorf(op, err)
	}
	z, err := sparse.NewSizer(f, sc)
	if err != nil {
		return nil, configErrorf(op, err)
	}

	s := &Session{layout: l, scanner: sc, format: f, sizer: z, log: discardLogger()}
	for _, opt := range opts {
		opt(s)
	}

	return s, nil
}

// Layout returns the grid layout.
func (s *Session) Layout() *grid.Layout { return s.layout }

// Format returns the session format.
func (s *Session) Format() sparse.Format { return s.format }

// SizeQuery measures every cell and folds the counts into grid-wide maxima.
// It only reads the matrix, so repeated calls return equal Stats.
func (s *Session) SizeQuery() sparse.Stats {
	st := s.sweep(s.sizer)
	s.log.WithFields(logrus.Fields{
		"format": s.format,
		"cells":  st.Cells,
		"nnz":    st.TotalValues,
		"result": st.Result(),
	}).Info("size query done")

	return st
}

func (s *Session) sweep(z *sparse.Sizer) sparse.Stats {
	st := sparse.NewStats(z.Format())
	for v := range s.layout.Cells() {
		c := z.Measure(v)
		s.cellEntry(v, c.NNZ).Debug("cell measured")
		st = st.Fold(c)
	}

	return st
}

// Loads returns the nonzero count of every cell, in row-major grid order.
func (s *Session) Loads() []int {
	loads := make([]int, 0, s.layout.NumCells())
	for v := range s.layout.Cells() {
		loads = append(loads, s.sizer.Measure(v).NNZ)
	}

	return loads
}

// Materialize writes one line per cell to each stream of the session format,
// ws in sparse.Format.Suffixes order. ELLPACK needs a row width and is
// rejected here; see MaterializeEllpack. Write errors are returned wrapped
// with the failing cell and are not retried.
func (s *Session) Materialize(ws ...io.Writer) error {
	const op = "Materialize"
	enc, err := sparse.NewEncoder(s.format, s.scanner)
	if err != nil {
		return configErrorf(op, err)
	}
	w, err := sparse.NewWriter(s.format, ws...)
	if err != nil {
		return configErrorf(op, err)
	}

	return s.write(op, w, func(v grid.View) (sparse.Record, error) {
		return enc.Encode(v), nil
	})
}

// EllpackWidth resolves the ELLPACK row width: AutoWidth becomes the
// grid-wide maximum row length, and a width below that maximum is a
// configuration error wrapping sparse.ErrRowOverflow. It only reads the
// matrix, so callers can check a width before opening any output.
func (s *Session) EllpackWidth(width int) (int, error) {
	const op = "EllpackWidth"
	z, err := sparse.NewSizer(sparse.ELLPACK, s.scanner)
	if err != nil {
		return 0, configErrorf(op, err)
	}
	need := s.sweep(z).MaxRowLen
	if width == AutoWidth {
		return need, nil
	}
	if width < need {
		return 0, configErrorf(op, fmt.Errorf("width %d below max row length %d: %w", width, need, sparse.ErrRowOverflow))
	}

	return width, nil
}

// MaterializeEllpack writes every cell in ELLPACK with the width resolved by
// EllpackWidth. A rejected width is reported before anything is written.
func (s *Session) MaterializeEllpack(width int, ws ...io.Writer) error {
	const op = "MaterializeEllpack"
	w, err := sparse.NewWriter(sparse.ELLPACK, ws...)
	if err != nil {
		return configErrorf(op, err)
	}
	if width, err = s.EllpackWidth(width); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	enc, err := sparse.NewEllpackEncoder(s.scanner, width)
	if err != nil {
		return configErrorf(op, err)
	}

	return s.write(op, w, enc.Encode)
}

func (s *Session) write(op string, w *sparse.Writer, encode func(grid.View) (sparse.Record, error)) error {
	var nnz int
	for v := range s.layout.Cells() {
		rec, err := encode(v)
		if err != nil {
			return fmt.Errorf("%s: cell %d: %w", op, v.Index(), err)
		}
		if err = w.Write(rec); err != nil {
			return fmt.Errorf("%s: cell %d: %w", op, v.Index(), err)
		}
		nnz += rec.NNZ()
		s.cellEntry(v, rec.NNZ()).Debug("cell written")
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	s.log.WithFields(logrus.Fields{
		"format": w.Format(),
		"cells":  w.Lines(),
		"values": nnz,
	}).Info("materialize done")

	return nil
}

func (s *Session) cellEntry(v grid.View, nnz int) *logrus.Entry {
	return s.log.WithFields(logrus.Fields{
		"cell": v.Index(),
		"i":    v.I,
		"j":    v.J,
		"nnz":  nnz,
	})
}
