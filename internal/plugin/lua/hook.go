package lua

import (
	"time"

	"github.com/dshills/markgutter/internal/logging"
	"github.com/dshills/markgutter/internal/renderer/gutter"
	lua "github.com/yuin/gopher-lua"
)

// Names of the global functions a bookmark script may define.
const (
	BeforeAddFunc    = "before_add_bookmark"
	BeforeRemoveFunc = "before_remove_bookmark"
)

// ModuleName is the module scripts require to reach the editor.
const ModuleName = "markgutter"

// LineTextFunc returns the text of a 0-based line.
type LineTextFunc func(line int) (string, error)

// BookmarkHook is a gutter.BookmarkListener backed by a Lua script.
type BookmarkHook struct {
	state    *State
	logger   *logging.Logger
	lineText LineTextFunc
	timeout  time.Duration
}

// HookOption configures a BookmarkHook.
type HookOption func(*BookmarkHook)

// WithLogger sets the logger for script output and failures.
func WithLogger(l *logging.Logger) HookOption {
	return func(h *BookmarkHook) {
		if l != nil {
			h.logger = l.WithComponent("lua")
		}
	}
}

// WithLineText exposes line text to scripts as markgutter.line_text.
func WithLineText(fn LineTextFunc) HookOption {
	return func(h *BookmarkHook) {
		h.lineText = fn
	}
}

// WithTimeout bounds each script call.
func WithTimeout(d time.Duration) HookOption {
	return func(h *BookmarkHook) {
		h.timeout = d
	}
}

// NewBookmarkHook creates a hook over a fresh sandboxed state and
// registers the markgutter module. Load a script with LoadFile or
// LoadString.
func NewBookmarkHook(opts ...HookOption) *BookmarkHook {
	h := &BookmarkHook{
		logger:  logging.NullLogger,
		timeout: DefaultExecutionTimeout,
	}
	for _, opt := range opts {
		opt(h)
	}
	h.state = NewState(WithExecutionTimeout(h.timeout))
	h.state.PreloadModule(ModuleName, h.loadModule)
	return h
}

// LoadFile runs the script at path.
func (h *BookmarkHook) LoadFile(path string) error {
	return h.state.DoFile(path)
}

// LoadString runs a script from source.
func (h *BookmarkHook) LoadString(code string) error {
	return h.state.DoString(code)
}

// Close releases the Lua state.
func (h *BookmarkHook) Close() {
	h.state.Close()
}

// BeforeAddBookmark implements gutter.BookmarkListener.
func (h *BookmarkHook) BeforeAddBookmark(line int) bool {
	return h.ask(BeforeAddFunc, line)
}

// BeforeRemoveBookmark implements gutter.BookmarkListener.
func (h *BookmarkHook) BeforeRemoveBookmark(line int) bool {
	return h.ask(BeforeRemoveFunc, line)
}

// ask calls fn(line). Only an explicit false or nil result vetoes.
func (h *BookmarkHook) ask(fn string, line int) bool {
	if !h.state.HasFunction(fn) {
		return true
	}
	results, err := h.state.Call(fn, lua.LNumber(line))
	if err != nil {
		h.logger.Warn("%s(%d) failed, approving: %v", fn, line, err)
		return true
	}
	if len(results) == 0 {
		return true
	}
	approved := lua.LVAsBool(results[0])
	if !approved {
		h.logger.Debug("%s(%d) vetoed", fn, line)
	}
	return approved
}

func (h *BookmarkHook) loadModule(L *lua.LState) int {
	mod := L.SetFuncs(L.NewTable(), map[string]lua.LGFunction{
		"log":       h.luaLog,
		"line_text": h.luaLineText,
	})
	L.Push(mod)
	return 1
}

// markgutter.log(msg)
func (h *BookmarkHook) luaLog(L *lua.LState) int {
	h.logger.Info("%s", L.CheckString(1))
	return 0
}

// markgutter.line_text(line) returns the text, or nil and an error message.
func (h *BookmarkHook) luaLineText(L *lua.LState) int {
	line := L.CheckInt(1)
	if h.lineText == nil {
		L.Push(lua.LNil)
		L.Push(lua.LString("line text not available"))
		return 2
	}
	text, err := h.lineText(line)
	if err != nil {
		L.Push(lua.LNil)
		L.Push(lua.LString(err.Error()))
		return 2
	}
	L.Push(lua.LString(text))
	return 1
}

var _ gutter.BookmarkListener = (*BookmarkHook)(nil)
