package event

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
	"strings"
	"unicode/utf8"

	"github.com/Alia5/inputframe/keyboard"
	"github.com/Alia5/inputframe/mouse"
)

// Record tags.
const (
	TagKey         uint8 = 0x01
	TagCursorMoved uint8 = 0x02
	TagMotion      uint8 = 0x03
	TagAxis        uint8 = 0x04
	TagButton      uint8 = 0x05
	TagWheel       uint8 = 0x06
	TagChar        uint8 = 0x07
)

// payloadSize is the fixed payload length per known tag.
var payloadSize = map[uint8]int{
	TagKey:         2,
	TagCursorMoved: 8,
	TagMotion:      8,
	TagAxis:        5,
	TagButton:      2,
	TagWheel:       9,
	TagChar:        4,
}

// MalformedError describes a record whose framing was intact but whose
// payload could not be interpreted. The record is skipped.
type MalformedError struct {
	Tag    uint8
	Reason string
}

func (e *MalformedError) Error() string {
	return fmt.Sprintf("malformed event record (tag 0x%02x): %s", e.Tag, e.Reason)
}

// SkipError lists the records skipped while decoding an otherwise valid batch.
type SkipError struct {
	Errs []error
}

func (e *SkipError) Error() string {
	msgs := make([]string, len(e.Errs))
	for i, err := range e.Errs {
		msgs[i] = err.Error()
	}
	return fmt.Sprintf("skipped %d event record(s): %s", len(e.Errs), strings.Join(msgs, "; "))
}

func (e *SkipError) Unwrap() []error { return e.Errs }

// AppendEvent appends the wire record for ev to dst.
//
// Record layout:
//
//	Byte 0: Tag
//	Byte 1: Payload length
//	Bytes 2+: Payload (little endian)
func AppendEvent(dst []byte, ev RawEvent) ([]byte, error) {
	var (
		tag uint8
		p   []byte
	)
	switch e := ev.(type) {
	case Key:
		tag, p = TagKey, []byte{uint8(e.State), uint8(e.Code)}
	case CursorMoved:
		tag, p = TagCursorMoved, appendFloats(nil, e.X, e.Y)
	case Motion:
		tag, p = TagMotion, appendFloats(nil, e.DX, e.DY)
	case Axis:
		tag, p = TagAxis, appendFloats([]byte{e.Axis}, e.Value)
	case Button:
		tag, p = TagButton, []byte{uint8(e.State), uint8(e.Button)}
	case Wheel:
		tag, p = TagWheel, appendFloats([]byte{uint8(e.Unit)}, e.X, e.Y)
	case Char:
		tag, p = TagChar, binary.LittleEndian.AppendUint32(nil, uint32(e.Rune))
	case Unknown:
		if len(e.Payload) > math.MaxUint8 {
			return dst, fmt.Errorf("unknown event payload too large: %d bytes", len(e.Payload))
		}
		tag, p = e.Tag, e.Payload
	default:
		return dst, fmt.Errorf("cannot encode event of type %T", ev)
	}
	dst = append(dst, tag, uint8(len(p)))
	return append(dst, p...), nil
}

// ParseEvent decodes the record at the start of data and returns the number
// of bytes it occupied. A *MalformedError comes with a valid n so the caller
// can skip the record; truncated input returns io.ErrUnexpectedEOF.
// Records with tags this package does not know decode to Unknown.
func ParseEvent(data []byte) (RawEvent, int, error) {
	if len(data) < 2 {
		return nil, 0, io.ErrUnexpectedEOF
	}
	tag, size := data[0], int(data[1])
	n := 2 + size
	if len(data) < n {
		return nil, 0, io.ErrUnexpectedEOF
	}
	ev, err := decodePayload(tag, data[2:n])
	return ev, n, err
}

func decodePayload(tag uint8, p []byte) (RawEvent, error) {
	want, known := payloadSize[tag]
	if !known {
		return Unknown{Tag: tag, Payload: append([]byte(nil), p...)}, nil
	}
	if len(p) != want {
		return nil, &MalformedError{Tag: tag, Reason: fmt.Sprintf("payload is %d bytes, want %d", len(p), want)}
	}
	switch tag {
	case TagKey:
		st, err := parseState(tag, p[0])
		if err != nil {
			return nil, err
		}
		return Key{State: st, Code: keyboard.Key(p[1])}, nil
	case TagCursorMoved:
		return CursorMoved{X: float(p[0:]), Y: float(p[4:])}, nil
	case TagMotion:
		return Motion{DX: float(p[0:]), DY: float(p[4:])}, nil
	case TagAxis:
		return Axis{Axis: p[0], Value: float(p[1:])}, nil
	case TagButton:
		st, err := parseState(tag, p[0])
		if err != nil {
			return nil, err
		}
		return Button{State: st, Button: mouse.Button(p[1])}, nil
	case TagWheel:
		u := ScrollUnit(p[0])
		if u != Lines && u != Pixels {
			return nil, &MalformedError{Tag: tag, Reason: fmt.Sprintf("invalid scroll unit %d", p[0])}
		}
		return Wheel{Unit: u, X: float(p[1:]), Y: float(p[5:])}, nil
	case TagChar:
		r := rune(binary.LittleEndian.Uint32(p))
		if !utf8.ValidRune(r) {
			return nil, &MalformedError{Tag: tag, Reason: fmt.Sprintf("invalid rune 0x%x", uint32(r))}
		}
		return Char{Rune: r}, nil
	}
	return nil, &MalformedError{Tag: tag, Reason: "unhandled tag"}
}

func parseState(tag, b uint8) (ElementState, error) {
	st := ElementState(b)
	if st != Pressed && st != Released {
		return 0, &MalformedError{Tag: tag, Reason: fmt.Sprintf("invalid element state %d", b)}
	}
	return st, nil
}

func appendFloats(dst []byte, fs ...float32) []byte {
	for _, f := range fs {
		dst = binary.LittleEndian.AppendUint32(dst, math.Float32bits(f))
	}
	return dst
}

func float(b []byte) float32 {
	return math.Float32frombits(binary.LittleEndian.Uint32(b))
}

// EncodeBatch encodes events as consecutive records.
func EncodeBatch(events []RawEvent) ([]byte, error) {
	var b []byte
	for i, ev := range events {
		var err error
		if b, err = AppendEvent(b, ev); err != nil {
			return nil, fmt.Errorf("event %d: %w", i, err)
		}
	}
	return b, nil
}

// DecodeBatch decodes consecutive records. Malformed records are skipped and
// reported through a *SkipError; the remaining events are still returned.
// A truncated trailing record ends decoding with io.ErrUnexpectedEOF.
func DecodeBatch(data []byte) ([]RawEvent, error) {
	var (
		events  []RawEvent
		skipped []error
	)
	for len(data) > 0 {
		ev, n, err := ParseEvent(data)
		if n == 0 {
			return events, errors.Join(skipError(skipped), err)
		}
		data = data[n:]
		if err != nil {
			skipped = append(skipped, err)
			continue
		}
		events = append(events, ev)
	}
	return events, skipError(skipped)
}

func skipError(errs []error) error {
	if len(errs) == 0 {
		return nil
	}
	return &SkipError{Errs: errs}
}
