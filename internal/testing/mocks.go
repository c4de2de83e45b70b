package testing

import (
	"fmt"
	"testing"
)

// CursorCall is one request recorded by MockCursor.
type CursorCall struct {
	Method string
	Args   []any
}

func (c CursorCall) String() string {
	return fmt.Sprintf("%s%v", c.Method, c.Args)
}

// MockCursor records every cursor request and fails the ones named in Fail.
type MockCursor struct {
	t     *testing.T
	Calls []CursorCall
	// Fail maps a method name to the error it returns.
	Fail map[string]error
}

func CreateMockCursor(t *testing.T) *MockCursor {
	t.Helper()
	return &MockCursor{t: t, Fail: map[string]error{}}
}

func (m *MockCursor) record(method string, args ...any) error {
	m.Calls = append(m.Calls, CursorCall{Method: method, Args: args})
	if err, ok := m.Fail[method]; ok {
		m.t.Logf("mock cursor: %s rejected: %v", method, err)
		return err
	}
	return nil
}

func (m *MockCursor) SetCursorVisible(visible bool) error {
	return m.record("SetCursorVisible", visible)
}

func (m *MockCursor) SetCursorGrab(grab bool) error {
	return m.record("SetCursorGrab", grab)
}

func (m *MockCursor) SetCursorPosition(x, y float32) error {
	return m.record("SetCursorPosition", x, y)
}

// Reset forgets recorded calls.
func (m *MockCursor) Reset() {
	m.Calls = m.Calls[:0]
}

// Methods returns the recorded method names in order.
func (m *MockCursor) Methods() []string {
	out := make([]string, len(m.Calls))
	for i, c := range m.Calls {
		out[i] = c.Method
	}
	return out
}
