package lua

import (
	lua "github.com/yuin/gopher-lua"
)

// removedGlobals are base library functions that can load code from disk
// or from strings, bypassing the sandbox.
var removedGlobals = []string{
	"dofile",
	"loadfile",
	"load",
	"loadstring",
}

// openSafeLibraries opens only the Lua standard libraries scripts may use.
// io, os, debug and package are never opened.
func openSafeLibraries(L *lua.LState) {
	lua.OpenBase(L)
	lua.OpenTable(L)
	lua.OpenString(L)
	lua.OpenMath(L)
}

// installSandbox strips loaders from the base library and installs a
// require that only resolves modules registered with PreloadModule.
func installSandbox(L *lua.LState, modules map[string]lua.LGFunction) {
	for _, name := range removedGlobals {
		L.SetGlobal(name, lua.LNil)
	}

	loaded := L.NewTable()
	L.SetGlobal("require", L.NewFunction(func(L *lua.LState) int {
		name := L.CheckString(1)
		if mod := loaded.RawGetString(name); mod != lua.LNil {
			L.Push(mod)
			return 1
		}
		loader, ok := modules[name]
		if !ok {
			L.RaiseError("module %q is not available", name)
			return 0
		}
		L.Push(L.NewFunction(loader))
		L.Call(0, 1)
		mod := L.Get(-1)
		loaded.RawSetString(name, mod)
		return 1
	}))
}
