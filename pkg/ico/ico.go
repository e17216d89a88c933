package ico

import (
	"encoding/binary"

	"github.com/bward3321/pixelforge/pkg/errors"
)

const (
	// HeaderSize is the size of the ICONDIR header.
	HeaderSize = 6
	// EntrySize is the size of one ICONDIRENTRY.
	EntrySize = 16
	// MaxSize is the largest icon edge an entry can describe.
	MaxSize = 256

	typeIcon  = 1
	planes    = 1
	bitDepth  = 32
	maxImages = 0xffff
)

// Image is one embedded icon image: a square edge length in pixels and its
// encoded (PNG) bytes.
type Image struct {
	Size int
	Data []byte
}

// Header is the decoded ICONDIR.
type Header struct {
	Reserved uint16
	Type     uint16
	Count    uint16
}

// Entry is a decoded ICONDIRENTRY.
type Entry struct {
	Width      int // 1..256
	Height     int // 1..256
	ColorCount uint8
	Reserved   uint8
	Planes     uint16
	BitDepth   uint16
	Length     uint32
	Offset     uint32
}

// sizeByte encodes an edge length; 256 is stored as 0.
func sizeByte(n int) uint8 { return uint8(n % MaxSize) }

// DataStart returns the offset of the first payload in a container with n
// images.
func DataStart(n int) int { return HeaderSize + EntrySize*n }

// Encode assembles a container from images in order. An empty list yields
// the bare 6-byte header with a zero count.
func Encode(images []Image) ([]byte, error) {
	if len(images) > maxImages {
		return nil, errors.New(errors.ErrCodeInvalidInput, "too many icon images: %d", len(images))
	}
	for _, img := range images {
		if img.Size <= 0 || img.Size > MaxSize {
			return nil, errors.New(errors.ErrCodeInvalidDimension,
				"icon size must be between 1 and %d, got %d", MaxSize, img.Size)
		}
		if len(img.Data) == 0 {
			return nil, errors.New(errors.ErrCodeEncodingFailure, "icon image %dx%d has no data", img.Size, img.Size)
		}
	}

	var w Writer
	w.PutUint16(0)
	w.PutUint16(typeIcon)
	w.PutUint16(uint16(len(images)))

	offset := DataStart(len(images))
	for _, img := range images {
		w.PutUint8(sizeByte(img.Size))
		w.PutUint8(sizeByte(img.Size))
		w.PutUint8(0) // color count
		w.PutUint8(0) // reserved
		w.PutUint16(planes)
		w.PutUint16(bitDepth)
		w.PutUint32(uint32(len(img.Data)))
		w.PutUint32(uint32(offset))
		offset += len(img.Data)
	}

	if w.Offset() != DataStart(len(images)) {
		return nil, errors.New(errors.ErrCodeInternal, "icon directory ends at %d, want %d", w.Offset(), DataStart(len(images)))
	}
	for _, img := range images {
		w.Write(img.Data)
	}
	if err := w.Err(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeEncodingFailure, err, "write icon container")
	}
	return w.Bytes(), nil
}

// Decode parses a container produced by Encode (or any PNG-payload .ico).
// It checks the header fields and that the payloads, in directory order,
// are contiguous and end exactly at the end of data.
func Decode(data []byte) (Header, []Entry, error) {
	if len(data) < HeaderSize {
		return Header{}, nil, errors.New(errors.ErrCodeInvalidFormat, "icon data too short: %d bytes", len(data))
	}
	le := binary.LittleEndian
	h := Header{
		Reserved: le.Uint16(data[0:]),
		Type:     le.Uint16(data[2:]),
		Count:    le.Uint16(data[4:]),
	}
	if h.Reserved != 0 || h.Type != typeIcon {
		return h, nil, errors.New(errors.ErrCodeInvalidFormat, "not an icon container (reserved=%d type=%d)", h.Reserved, h.Type)
	}

	n := int(h.Count)
	if len(data) < DataStart(n) {
		return h, nil, errors.New(errors.ErrCodeInvalidFormat, "icon directory truncated: need %d bytes, have %d", DataStart(n), len(data))
	}

	entries := make([]Entry, n)
	next := uint64(DataStart(n))
	for i := range entries {
		b := data[HeaderSize+EntrySize*i:]
		e := Entry{
			Width:      decodeSize(b[0]),
			Height:     decodeSize(b[1]),
			ColorCount: b[2],
			Reserved:   b[3],
			Planes:     le.Uint16(b[4:]),
			BitDepth:   le.Uint16(b[6:]),
			Length:     le.Uint32(b[8:]),
			Offset:     le.Uint32(b[12:]),
		}
		if uint64(e.Offset) != next {
			return h, nil, errors.New(errors.ErrCodeInvalidFormat, "entry %d offset %d, want %d", i, e.Offset, next)
		}
		next += uint64(e.Length)
		entries[i] = e
	}
	if next != uint64(len(data)) {
		return h, nil, errors.New(errors.ErrCodeInvalidFormat, "payloads end at %d, file is %d bytes", next, len(data))
	}
	return h, entries, nil
}

// Payload returns the bytes of e within data.
func Payload(data []byte, e Entry) []byte {
	return data[e.Offset : e.Offset+e.Length]
}

func decodeSize(b uint8) int {
	if b == 0 {
		return MaxSize
	}
	return int(b)
}
