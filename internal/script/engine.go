// Package script provides Lua scripting hooks for the editor.
//
// Scripts are loaded from a user directory at startup. Two globals act
// as lifecycle hooks when defined:
//
//	function on_open(path, size) end
//	function on_save(path, size) end
//
// Any other global function taking a byte and returning a byte can be
// applied to the byte under the cursor as a named transform:
//
//	function invert(b) return 255 - b end
package script

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	lua "github.com/yuin/gopher-lua"
)

// Errors returned by the script engine.
var (
	ErrEngineClosed = errors.New("script engine is closed")
	ErrNoFunction   = errors.New("no such transform function")
	ErrBadReturn    = errors.New("transform must return a byte value (0-255)")
)

// Engine owns one sandboxed Lua state. The state is not goroutine-safe;
// the editor only ever calls it from the event-loop thread.
type Engine struct {
	L      *lua.LState
	closed bool
}

// NewEngine creates a sandboxed engine with only safe libraries opened.
func NewEngine() *Engine {
	L := lua.NewState(lua.Options{
		SkipOpenLibs: true, // opened selectively below
	})

	// Base, table, string, math only. io, os, debug and package stay
	// closed so scripts cannot reach outside the editor.
	lua.OpenBase(L)
	lua.OpenTable(L)
	lua.OpenString(L)
	lua.OpenMath(L)

	return &Engine{L: L}
}

// Close releases the Lua state.
func (e *Engine) Close() {
	if e.closed {
		return
	}
	e.closed = true
	e.L.Close()
}

// LoadDir executes every .lua file in dir in name order. A missing or
// empty directory is not an error.
func (e *Engine) LoadDir(dir string) error {
	if e.closed {
		return ErrEngineClosed
	}
	if dir == "" {
		return nil
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("reading script dir %s: %w", dir, err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".lua") {
			continue
		}
		names = append(names, entry.Name())
	}
	sort.Strings(names)

	for _, name := range names {
		path := filepath.Join(dir, name)
		if err := e.L.DoFile(path); err != nil {
			return fmt.Errorf("loading script %s: %w", path, err)
		}
	}

	return nil
}

// LoadString executes Lua source directly. Used by tests and startup
// checks.
func (e *Engine) LoadString(src string) error {
	if e.closed {
		return ErrEngineClosed
	}
	return e.L.DoString(src)
}

// OnOpen invokes the on_open hook if a script defined one.
func (e *Engine) OnOpen(path string, size int) error {
	return e.callHook("on_open", path, size)
}

// OnSave invokes the on_save hook if a script defined one.
func (e *Engine) OnSave(path string, size int) error {
	return e.callHook("on_save", path, size)
}

func (e *Engine) callHook(name, path string, size int) error {
	if e.closed {
		return ErrEngineClosed
	}

	fn := e.L.GetGlobal(name)
	if fn.Type() != lua.LTFunction {
		return nil
	}

	err := e.L.CallByParam(lua.P{
		Fn:      fn,
		NRet:    0,
		Protect: true,
	}, lua.LString(path), lua.LNumber(size))
	if err != nil {
		return fmt.Errorf("%s hook: %w", name, err)
	}
	return nil
}

// HasTransform reports whether a global function with the given name
// exists.
func (e *Engine) HasTransform(name string) bool {
	if e.closed {
		return false
	}
	return e.L.GetGlobal(name).Type() == lua.LTFunction
}

// Transform applies the named function to one byte value and returns
// the result. The function must return a number in [0, 255].
func (e *Engine) Transform(name string, value byte) (byte, error) {
	if e.closed {
		return 0, ErrEngineClosed
	}

	fn := e.L.GetGlobal(name)
	if fn.Type() != lua.LTFunction {
		return 0, fmt.Errorf("%w: %s", ErrNoFunction, name)
	}

	err := e.L.CallByParam(lua.P{
		Fn:      fn,
		NRet:    1,
		Protect: true,
	}, lua.LNumber(value))
	if err != nil {
		return 0, fmt.Errorf("transform %s: %w", name, err)
	}

	ret := e.L.Get(-1)
	e.L.Pop(1)

	num, ok := ret.(lua.LNumber)
	if !ok {
		return 0, fmt.Errorf("%w: %s returned %s", ErrBadReturn, name, ret.Type())
	}
	n := int(num)
	if n < 0 || n > 255 {
		return 0, fmt.Errorf("%w: %s returned %d", ErrBadReturn, name, n)
	}

	return byte(n), nil
}
