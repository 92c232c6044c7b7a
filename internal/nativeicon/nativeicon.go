// Package nativeicon adapts a rendered badge into the handle-based icon
// resources tray hosts consume.
//
// Icon handles are a limited OS resource, so acquisition is scoped: the
// intermediate handle produced while encoding is released on every exit
// path, and the caller receives an independent clone of the icon bytes.
// Release failures are reported as ErrResourceRelease; they are logged by
// the acquisition path but never fatal, since the cloned icon is already
// valid by the time release runs.
package nativeicon

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"image"
	"log"
)

// ErrResourceRelease reports a failed or repeated release of a native icon
// handle.
var ErrResourceRelease = errors.New("icon handle release failed")

// Handle wraps an acquired icon resource that must be released exactly once.
type Handle struct {
	data     []byte
	release  func() error
	released bool
}

// Bytes exposes the handle's encoded icon resource. The returned slice is
// only valid until Close; callers that need the data afterward must clone it.
func (h *Handle) Bytes() []byte {
	return h.data
}

// Close releases the underlying resource. A second Close, or a failing
// releaser, returns an error wrapping ErrResourceRelease.
func (h *Handle) Close() error {
	if h.released {
		return fmt.Errorf("%w: already released", ErrResourceRelease)
	}
	h.released = true
	h.data = nil
	if h.release != nil {
		if err := h.release(); err != nil {
			return fmt.Errorf("%w: %v", ErrResourceRelease, err)
		}
	}
	return nil
}

// Icon is a caller-owned icon resource, independent of any native handle.
type Icon struct {
	ICO    []byte // single-image ICO file contents
	Width  int
	Height int
}

// FromImage encodes img as an icon resource through a scoped handle.
//
// The intermediate handle is always released before return, success or
// failure; a release failure is logged and otherwise ignored because the
// returned Icon holds its own copy of the bytes.
func FromImage(img image.Image) (*Icon, error) {
	handle, err := acquire(img)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := handle.Close(); cerr != nil {
			log.Printf("nativeicon: %v", cerr)
		}
	}()

	bounds := img.Bounds()
	icon := &Icon{
		ICO:    bytes.Clone(handle.Bytes()),
		Width:  bounds.Dx(),
		Height: bounds.Dy(),
	}
	return icon, nil
}

// acquire encodes img and wraps the result in a release-once Handle.
func acquire(img image.Image) (*Handle, error) {
	data, err := Encode(img)
	if err != nil {
		return nil, err
	}
	return &Handle{data: data}, nil
}

// Encode serializes img as a single-image 32-bpp ICO file.
//
// The layout is the classic Windows format: ICONDIR header, one directory
// entry, a BITMAPINFOHEADER with doubled height for the XOR+AND masks,
// BGRA pixel rows bottom-to-top, and an all-zero AND mask (transparency
// lives in the alpha channel).
func Encode(img image.Image) ([]byte, error) {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()
	if width <= 0 || height <= 0 || width > 256 || height > 256 {
		return nil, fmt.Errorf("icon dimensions %dx%d outside 1-256 range", width, height)
	}

	pixelDataSize := width * height * 4
	andMaskRowSize := ((width + 31) / 32) * 4 // 4-byte aligned
	andMaskSize := andMaskRowSize * height
	const headerSize = 6
	const dirEntrySize = 16
	const bmpInfoHeaderSize = 40
	imageDataSize := bmpInfoHeaderSize + pixelDataSize + andMaskSize

	var buf bytes.Buffer
	buf.Grow(headerSize + dirEntrySize + imageDataSize)

	// ICONDIR
	binary.Write(&buf, binary.LittleEndian, uint16(0)) // reserved
	binary.Write(&buf, binary.LittleEndian, uint16(1)) // type: icon
	binary.Write(&buf, binary.LittleEndian, uint16(1)) // image count

	// ICONDIRENTRY; width/height bytes use 0 to mean 256
	buf.WriteByte(byte(width % 256))
	buf.WriteByte(byte(height % 256))
	buf.WriteByte(0) // no palette
	buf.WriteByte(0) // reserved
	binary.Write(&buf, binary.LittleEndian, uint16(1))  // color planes
	binary.Write(&buf, binary.LittleEndian, uint16(32)) // bits per pixel
	binary.Write(&buf, binary.LittleEndian, uint32(imageDataSize))
	binary.Write(&buf, binary.LittleEndian, uint32(headerSize+dirEntrySize))

	// BITMAPINFOHEADER, height doubled for XOR+AND masks
	binary.Write(&buf, binary.LittleEndian, uint32(bmpInfoHeaderSize))
	binary.Write(&buf, binary.LittleEndian, int32(width))
	binary.Write(&buf, binary.LittleEndian, int32(height*2))
	binary.Write(&buf, binary.LittleEndian, uint16(1))  // planes
	binary.Write(&buf, binary.LittleEndian, uint16(32)) // bits per pixel
	binary.Write(&buf, binary.LittleEndian, uint32(0))  // no compression
	binary.Write(&buf, binary.LittleEndian, uint32(pixelDataSize+andMaskSize))
	binary.Write(&buf, binary.LittleEndian, int32(0)) // x pixels per meter
	binary.Write(&buf, binary.LittleEndian, int32(0)) // y pixels per meter
	binary.Write(&buf, binary.LittleEndian, uint32(0))
	binary.Write(&buf, binary.LittleEndian, uint32(0))

	// BGRA rows, bottom to top
	for y := bounds.Max.Y - 1; y >= bounds.Min.Y; y-- {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, a := img.At(x, y).RGBA()
			buf.WriteByte(uint8(b >> 8))
			buf.WriteByte(uint8(g >> 8))
			buf.WriteByte(uint8(r >> 8))
			buf.WriteByte(uint8(a >> 8))
		}
	}

	// AND mask all zero: opacity comes from the alpha channel
	buf.Write(make([]byte, andMaskSize))

	return buf.Bytes(), nil
}
