package script

import (
	"fmt"
	"log/slog"

	lua "github.com/yuin/gopher-lua"
)

// Host is the editor surface scripts program against. The dispatcher
// implements it.
type Host interface {
	// RegisterAction makes a named action dispatchable. Recordable
	// actions enter repeat scripts as symbolic tokens.
	RegisterAction(name string, recordable bool, fn func() error)

	// MarkUnsafe blocks actions from replay.
	MarkUnsafe(actions ...string)

	// Bind maps a key sequence to an action name.
	Bind(keys, action string) error

	// Text returns the buffer contents.
	Text() string

	// Offset returns the cursor's character offset.
	Offset() int

	// SetOffset moves the cursor.
	SetOffset(o int)

	// Insert inserts text at the cursor.
	Insert(text string)

	// Notify sets the status message.
	Notify(message string)
}

// Engine runs user Lua scripts and bridges them to the editor.
//
// The Lua state is not goroutine-safe; the engine must only be used
// from the dispatch goroutine.
type Engine struct {
	L    *lua.LState
	host Host
	log  *slog.Logger
}

// New creates an engine with the vicmd API installed. Only the safe
// Lua standard libraries are opened; scripts get no io, os, or debug.
func New(host Host, log *slog.Logger) *Engine {
	L := lua.NewState(lua.Options{SkipOpenLibs: true})
	lua.OpenBase(L)
	lua.OpenTable(L)
	lua.OpenString(L)
	lua.OpenMath(L)

	e := &Engine{L: L, host: host, log: log}
	e.installAPI()
	return e
}

// Close releases the Lua state.
func (e *Engine) Close() {
	e.L.Close()
}

// LoadString runs a script from source.
func (e *Engine) LoadString(src string) error {
	if err := e.L.DoString(src); err != nil {
		return fmt.Errorf("script: %w", err)
	}
	return nil
}

// LoadFile runs a script file.
func (e *Engine) LoadFile(path string) error {
	if err := e.L.DoFile(path); err != nil {
		return fmt.Errorf("script: %s: %w", path, err)
	}
	e.log.Info("script loaded", "path", path)
	return nil
}

// LoadFiles runs script files in order, stopping at the first error.
func (e *Engine) LoadFiles(paths []string) error {
	for _, p := range paths {
		if err := e.LoadFile(p); err != nil {
			return err
		}
	}
	return nil
}

// installAPI registers the vicmd table in the Lua state.
func (e *Engine) installAPI() {
	api := e.L.NewTable()
	e.L.SetGlobal("vicmd", api)

	e.L.SetField(api, "command", e.L.NewFunction(e.luaCommand))
	e.L.SetField(api, "text", e.L.NewFunction(e.luaText))
	e.L.SetField(api, "offset", e.L.NewFunction(e.luaOffset))
	e.L.SetField(api, "set_offset", e.L.NewFunction(e.luaSetOffset))
	e.L.SetField(api, "insert", e.L.NewFunction(e.luaInsert))
	e.L.SetField(api, "notify", e.L.NewFunction(e.luaNotify))
}

// luaCommand implements vicmd.command(name, fn [, opts]).
//
// opts is a table: recordable (boolean) puts the command into repeat
// scripts as a symbolic token, unsafe (boolean) blocks it from replay,
// keys (string) binds a key sequence to it.
func (e *Engine) luaCommand(L *lua.LState) int {
	name := L.CheckString(1)
	fn := L.CheckFunction(2)

	recordable := false
	unsafe := false
	keys := ""
	if L.GetTop() >= 3 {
		opts := L.CheckTable(3)
		recordable = lua.LVAsBool(opts.RawGetString("recordable"))
		unsafe = lua.LVAsBool(opts.RawGetString("unsafe"))
		keys = lua.LVAsString(opts.RawGetString("keys"))
	}

	invoke := func() error {
		L.Push(fn)
		if err := L.PCall(0, 0, nil); err != nil {
			return fmt.Errorf("script: command %s: %w", name, err)
		}
		return nil
	}

	e.host.RegisterAction(name, recordable, invoke)
	if unsafe {
		e.host.MarkUnsafe(name)
	}
	if keys != "" {
		if err := e.host.Bind(keys, name); err != nil {
			L.RaiseError("bind %q: %v", keys, err)
		}
	}

	e.log.Debug("script command registered",
		"name", name, "recordable", recordable, "unsafe", unsafe, "keys", keys)
	return 0
}

// luaText implements vicmd.text() -> string.
func (e *Engine) luaText(L *lua.LState) int {
	L.Push(lua.LString(e.host.Text()))
	return 1
}

// luaOffset implements vicmd.offset() -> number. Offsets are 0-based
// character counts, matching the editor's addressing.
func (e *Engine) luaOffset(L *lua.LState) int {
	L.Push(lua.LNumber(e.host.Offset()))
	return 1
}

// luaSetOffset implements vicmd.set_offset(n).
func (e *Engine) luaSetOffset(L *lua.LState) int {
	e.host.SetOffset(L.CheckInt(1))
	return 0
}

// luaInsert implements vicmd.insert(text).
func (e *Engine) luaInsert(L *lua.LState) int {
	e.host.Insert(L.CheckString(1))
	return 0
}

// luaNotify implements vicmd.notify(message).
func (e *Engine) luaNotify(L *lua.LState) int {
	e.host.Notify(L.CheckString(1))
	return 0
}
