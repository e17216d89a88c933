package favicon

import (
	"archive/zip"
	"bytes"
	"io"

	"github.com/bward3321/pixelforge/pkg/errors"
)

// zipWriter wraps zip.Writer with a sticky error.
type zipWriter struct {
	w   *zip.Writer
	err error
}

func (z *zipWriter) add(name string, data []byte) {
	if z.err != nil {
		return
	}
	var w io.Writer
	// Zero Modified leaves the DOS time fields empty, keeping output stable.
	w, z.err = z.w.CreateHeader(&zip.FileHeader{Name: name, Method: zip.Deflate})
	if z.err != nil {
		return
	}
	_, z.err = w.Write(data)
}

func (z *zipWriter) close() error {
	if err := z.w.Close(); z.err == nil {
		z.err = err
	}
	return z.err
}

// Zip writes every entry, in order, into a deflated zip archive.
func (b *Bundle) Zip() ([]byte, error) {
	if err := b.Err(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeEncodingFailure, err, "favicon package incomplete")
	}
	var buf bytes.Buffer
	z := &zipWriter{w: zip.NewWriter(&buf)}
	for _, e := range b.Entries {
		z.add(e.Name, e.Data)
	}
	if err := z.close(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeEncodingFailure, err, "write zip")
	}
	return buf.Bytes(), nil
}
