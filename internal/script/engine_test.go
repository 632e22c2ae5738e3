package script

import (
	"io"
	"log/slog"
	"strings"
	"testing"
)

// fakeHost records everything scripts do to it.
type fakeHost struct {
	actions    map[string]func() error
	recordable map[string]bool
	unsafe     map[string]bool
	bindings   map[string]string
	text       string
	offset     int
	message    string
}

func newFakeHost() *fakeHost {
	return &fakeHost{
		actions:    make(map[string]func() error),
		recordable: make(map[string]bool),
		unsafe:     make(map[string]bool),
		bindings:   make(map[string]string),
	}
}

func (h *fakeHost) RegisterAction(name string, recordable bool, fn func() error) {
	h.actions[name] = fn
	h.recordable[name] = recordable
}

func (h *fakeHost) MarkUnsafe(actions ...string) {
	for _, a := range actions {
		h.unsafe[a] = true
	}
}

func (h *fakeHost) Bind(keys, action string) error {
	h.bindings[keys] = action
	return nil
}

func (h *fakeHost) Text() string { return h.text }

func (h *fakeHost) Offset() int { return h.offset }

func (h *fakeHost) SetOffset(o int) { h.offset = o }

func (h *fakeHost) Insert(text string) { h.text += text }

func (h *fakeHost) Notify(message string) { h.message = message }

func newTestEngine(t *testing.T, host Host) *Engine {
	t.Helper()
	e := New(host, slog.New(slog.NewTextHandler(io.Discard, nil)))
	t.Cleanup(e.Close)
	return e
}

func TestCommandRegistration(t *testing.T) {
	host := newFakeHost()
	e := newTestEngine(t, host)

	src := `
vicmd.command("user.hello", function()
  vicmd.notify("hello")
end, { recordable = true, keys = "+h" })
`
	if err := e.LoadString(src); err != nil {
		t.Fatalf("LoadString: %v", err)
	}

	fn, ok := host.actions["user.hello"]
	if !ok {
		t.Fatal("action not registered")
	}
	if !host.recordable["user.hello"] {
		t.Error("recordable flag not passed")
	}
	if host.bindings["+h"] != "user.hello" {
		t.Errorf("bindings = %v", host.bindings)
	}

	if err := fn(); err != nil {
		t.Fatalf("invoke: %v", err)
	}
	if host.message != "hello" {
		t.Errorf("message = %q", host.message)
	}
}

func TestCommandUnsafeFlag(t *testing.T) {
	host := newFakeHost()
	e := newTestEngine(t, host)

	src := `vicmd.command("session.wipe", function() end, { unsafe = true })`
	if err := e.LoadString(src); err != nil {
		t.Fatalf("LoadString: %v", err)
	}
	if !host.unsafe["session.wipe"] {
		t.Error("unsafe flag not passed")
	}
}

func TestBufferAccess(t *testing.T) {
	host := newFakeHost()
	host.text = "alpha"
	host.offset = 3
	e := newTestEngine(t, host)

	src := `
vicmd.command("user.probe", function()
  vicmd.notify(vicmd.text() .. "@" .. vicmd.offset())
  vicmd.insert("!")
  vicmd.set_offset(0)
end)
`
	if err := e.LoadString(src); err != nil {
		t.Fatalf("LoadString: %v", err)
	}
	if err := host.actions["user.probe"](); err != nil {
		t.Fatalf("invoke: %v", err)
	}

	if host.message != "alpha@3" {
		t.Errorf("message = %q", host.message)
	}
	if host.text != "alpha!" {
		t.Errorf("text = %q", host.text)
	}
	if host.offset != 0 {
		t.Errorf("offset = %d", host.offset)
	}
}

func TestCommandErrorPropagates(t *testing.T) {
	host := newFakeHost()
	e := newTestEngine(t, host)

	src := `vicmd.command("user.boom", function() error("kaboom") end)`
	if err := e.LoadString(src); err != nil {
		t.Fatalf("LoadString: %v", err)
	}

	err := host.actions["user.boom"]()
	if err == nil || !strings.Contains(err.Error(), "kaboom") {
		t.Errorf("error = %v, want kaboom", err)
	}
}

func TestLoadStringSyntaxError(t *testing.T) {
	e := newTestEngine(t, newFakeHost())
	if err := e.LoadString("this is not lua"); err == nil {
		t.Error("expected a syntax error")
	}
}

func TestSandboxExcludesOS(t *testing.T) {
	e := newTestEngine(t, newFakeHost())
	if err := e.LoadString(`assert(os == nil); assert(io == nil)`); err != nil {
		t.Errorf("os/io should be absent: %v", err)
	}
}
