package ico

import (
	"bytes"
	"encoding/binary"
)

// Writer is a little-endian binary cursor over an in-memory buffer.
// The first write error is sticky; later writes are dropped and Err
// reports it.
type Writer struct {
	buf bytes.Buffer
	err error
}

// Offset returns the number of bytes written so far.
func (w *Writer) Offset() int { return w.buf.Len() }

// PutUint8 writes one byte.
func (w *Writer) PutUint8(v uint8) {
	if w.err != nil {
		return
	}
	w.err = w.buf.WriteByte(v)
}

// PutUint16 writes v as two little-endian bytes.
func (w *Writer) PutUint16(v uint16) {
	w.Write(binary.LittleEndian.AppendUint16(nil, v))
}

// PutUint32 writes v as four little-endian bytes.
func (w *Writer) PutUint32(v uint32) {
	w.Write(binary.LittleEndian.AppendUint32(nil, v))
}

// Write appends p verbatim.
func (w *Writer) Write(p []byte) {
	if w.err != nil {
		return
	}
	_, w.err = w.buf.Write(p)
}

// Err returns the first write error.
func (w *Writer) Err() error { return w.err }

// Bytes returns the written bytes.
func (w *Writer) Bytes() []byte { return w.buf.Bytes() }
