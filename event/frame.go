package event

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
)

// Recording header.
const (
	Magic   = "IFRM"
	Version = 1
)

const frameHeaderSize = 10

// ErrBadHeader is returned when a recording does not start with Magic/Version.
var ErrBadHeader = errors.New("not an input recording")

// MarshalBinary encodes the frame.
//
// Frame layout:
//
//	Bytes 0-3: Width (uint32)
//	Bytes 4-7: Height (uint32)
//	Bytes 8-9: Record count (uint16)
//	Bytes 10+: Records
func (f *Frame) MarshalBinary() ([]byte, error) {
	if f.Width < 0 || f.Height < 0 || uint64(f.Width) > math.MaxUint32 || uint64(f.Height) > math.MaxUint32 {
		return nil, fmt.Errorf("frame extent %dx%d out of range", f.Width, f.Height)
	}
	if len(f.Events) > math.MaxUint16 {
		return nil, fmt.Errorf("frame has %d events, max %d", len(f.Events), math.MaxUint16)
	}
	b := make([]byte, frameHeaderSize, frameHeaderSize+len(f.Events)*6)
	binary.LittleEndian.PutUint32(b[0:], uint32(f.Width))
	binary.LittleEndian.PutUint32(b[4:], uint32(f.Height))
	binary.LittleEndian.PutUint16(b[8:], uint16(len(f.Events)))
	for i, ev := range f.Events {
		var err error
		if b, err = AppendEvent(b, ev); err != nil {
			return nil, fmt.Errorf("event %d: %w", i, err)
		}
	}
	return b, nil
}

// UnmarshalBinary decodes a frame. Malformed records are dropped and
// reported through a *SkipError, the frame is still filled in.
func (f *Frame) UnmarshalBinary(data []byte) error {
	if len(data) < frameHeaderSize {
		return io.ErrUnexpectedEOF
	}
	f.Width = int(binary.LittleEndian.Uint32(data[0:]))
	f.Height = int(binary.LittleEndian.Uint32(data[4:]))
	count := int(binary.LittleEndian.Uint16(data[8:]))
	data = data[frameHeaderSize:]

	f.Events = f.Events[:0]
	var skipped []error
	for i := 0; i < count; i++ {
		ev, n, err := ParseEvent(data)
		if n == 0 {
			return err
		}
		data = data[n:]
		if err != nil {
			skipped = append(skipped, err)
			continue
		}
		f.Events = append(f.Events, ev)
	}
	return skipError(skipped)
}

// Encoder writes a recording: the header followed by frames.
type Encoder struct {
	w           io.Writer
	wroteHeader bool
}

// NewEncoder returns an Encoder writing to w. The header is written with
// the first frame.
func NewEncoder(w io.Writer) *Encoder {
	return &Encoder{w: w}
}

// WriteFrame appends one frame to the recording.
func (e *Encoder) WriteFrame(f Frame) error {
	b, err := f.MarshalBinary()
	if err != nil {
		return err
	}
	if !e.wroteHeader {
		if _, err := e.w.Write(append([]byte(Magic), Version)); err != nil {
			return fmt.Errorf("write header: %w", err)
		}
		e.wroteHeader = true
	}
	if _, err := e.w.Write(b); err != nil {
		return fmt.Errorf("write frame: %w", err)
	}
	return nil
}

// Decoder reads frames from a recording.
type Decoder struct {
	r          *bufio.Reader
	readHeader bool
}

// NewDecoder returns a Decoder reading from r.
func NewDecoder(r io.Reader) *Decoder {
	return &Decoder{r: bufio.NewReader(r)}
}

// ReadFrame returns the next frame, or io.EOF after the last one.
// A *SkipError accompanies a usable frame whose malformed records were dropped.
func (d *Decoder) ReadFrame() (Frame, error) {
	if !d.readHeader {
		hdr := make([]byte, len(Magic)+1)
		if _, err := io.ReadFull(d.r, hdr); err != nil {
			if err == io.EOF {
				return Frame{}, io.EOF
			}
			return Frame{}, fmt.Errorf("read header: %w", err)
		}
		if string(hdr[:len(Magic)]) != Magic || hdr[len(Magic)] != Version {
			return Frame{}, ErrBadHeader
		}
		d.readHeader = true
	}

	head := make([]byte, frameHeaderSize)
	if _, err := io.ReadFull(d.r, head); err != nil {
		if err == io.EOF {
			return Frame{}, io.EOF
		}
		return Frame{}, fmt.Errorf("read frame header: %w", err)
	}
	buf := head
	count := int(binary.LittleEndian.Uint16(head[8:]))
	for i := 0; i < count; i++ {
		rec := make([]byte, 2)
		if _, err := io.ReadFull(d.r, rec); err != nil {
			return Frame{}, fmt.Errorf("read record %d: %w", i, io.ErrUnexpectedEOF)
		}
		payload := make([]byte, rec[1])
		if _, err := io.ReadFull(d.r, payload); err != nil {
			return Frame{}, fmt.Errorf("read record %d: %w", i, io.ErrUnexpectedEOF)
		}
		buf = append(append(buf, rec...), payload...)
	}

	var f Frame
	err := f.UnmarshalBinary(buf)
	return f, err
}
