package wav

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
)

var (
	ErrSinkCreate = errors.New("create output")
	ErrSinkWrite  = errors.New("write output")
	ErrClosed     = errors.New("writer closed")
	ErrTooLarge   = errors.New("data exceeds WAV size limit")
)

// maxDataSize keeps the RIFF size field (36 + data) within 32 bits.
const maxDataSize = math.MaxUint32 - 36

// Writer streams 16-bit samples to a seekable destination. The header is
// written with zero sizes up front and patched on Close.
//
// This is boundary code - performs I/O.
type Writer struct {
	dst    io.WriteSeeker
	file   *os.File // set when the Writer owns the destination
	buf    *bufio.Writer
	format Format
	data   uint32
	closed bool
	err    error
}

// Create opens path for writing and returns a Writer that closes the file
// on Close.
func Create(path string, f Format) (*Writer, error) {
	file, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSinkCreate, err)
	}

	w, err := NewWriter(file, f)
	if err != nil {
		file.Close()
		return nil, err
	}
	w.file = file
	return w, nil
}

// NewWriter writes a placeholder header to dst.
func NewWriter(dst io.WriteSeeker, f Format) (*Writer, error) {
	if f.BitsPerSample != 16 {
		return nil, fmt.Errorf("%w: %d bits per sample not supported", ErrSinkCreate, f.BitsPerSample)
	}

	w := &Writer{
		dst:    dst,
		buf:    bufio.NewWriter(dst),
		format: f,
	}
	if _, err := w.buf.Write(Header(f, 0)); err != nil {
		return nil, fmt.Errorf("%w: header: %w", ErrSinkWrite, err)
	}
	return w, nil
}

// Format returns the PCM layout being written.
func (w *Writer) Format() Format {
	return w.format
}

// Samples returns the number of samples written so far.
func (w *Writer) Samples() int {
	return int(w.data / 2)
}

// WriteSample appends one sample. After the first failure every call
// returns the same error.
func (w *Writer) WriteSample(s int16) error {
	if w.closed {
		return ErrClosed
	}
	if w.err != nil {
		return w.err
	}
	if w.data > maxDataSize-2 {
		w.err = fmt.Errorf("%w: %w", ErrSinkWrite, ErrTooLarge)
		return w.err
	}

	var b [2]byte
	binary.LittleEndian.PutUint16(b[:], uint16(s))
	if _, err := w.buf.Write(b[:]); err != nil {
		w.err = fmt.Errorf("%w: %w", ErrSinkWrite, err)
		return w.err
	}
	w.data += 2
	return nil
}

// Close flushes buffered samples, rewrites the header with the final
// sizes and, for Writers from Create, closes the file. Calling Close more
// than once returns nil.
func (w *Writer) Close() error {
	if w.closed {
		return nil
	}
	w.closed = true

	err := w.finalize()
	if w.file != nil {
		if cerr := w.file.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("%w: close: %w", ErrSinkWrite, cerr)
		}
	}
	return err
}

func (w *Writer) finalize() error {
	if err := w.buf.Flush(); err != nil {
		return fmt.Errorf("%w: flush: %w", ErrSinkWrite, err)
	}

	// Patch RIFF size and data size
	if _, err := w.dst.Seek(0, io.SeekStart); err != nil {
		return fmt.Errorf("%w: seek: %w", ErrSinkWrite, err)
	}
	if _, err := w.dst.Write(Header(w.format, w.data)); err != nil {
		return fmt.Errorf("%w: header: %w", ErrSinkWrite, err)
	}
	if _, err := w.dst.Seek(0, io.SeekEnd); err != nil {
		return fmt.Errorf("%w: seek: %w", ErrSinkWrite, err)
	}
	return nil
}
