package log

import (
	"bytes"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/Alia5/inputframe/event"
)

// EventLogger writes a trace line per frame with the frame's wire encoding
// as a hex dump.
type EventLogger interface {
	Log(source string, f event.Frame)
}

type eventLogger struct {
	w   io.Writer
	mu  sync.Mutex
	now func() time.Time
}

// NewEventLogger creates an EventLogger. A nil writer gives a no-op logger.
func NewEventLogger(w io.Writer) EventLogger {
	return &eventLogger{w: w, now: time.Now}
}

// Log emits one line: timestamp, source, extent, event count and hex.
// Frames without events are not logged.
func (l *eventLogger) Log(source string, f event.Frame) {
	if l.w == nil || len(f.Events) == 0 {
		return
	}
	data, err := f.MarshalBinary()
	if err != nil {
		l.write(fmt.Sprintf("%s %s frame %dx%d: encode failed: %v\n",
			l.now().Format("2006/01/02 15:04:05"), source, f.Width, f.Height, err))
		return
	}

	var hexbuf bytes.Buffer
	const hexdigits = "0123456789abcdef"
	for i, b := range data {
		if i > 0 {
			hexbuf.WriteByte(' ')
		}
		hexbuf.WriteByte(hexdigits[b>>4])
		hexbuf.WriteByte(hexdigits[b&0x0f])
	}

	l.write(fmt.Sprintf("%s %s frame %dx%d: %d events, %d bytes, hex: %s\n",
		l.now().Format("2006/01/02 15:04:05"),
		source,
		f.Width, f.Height,
		len(f.Events),
		len(data),
		hexbuf.String()))
}

func (l *eventLogger) write(line string) {
	l.mu.Lock()
	_, _ = io.WriteString(l.w, line)
	l.mu.Unlock()
}
