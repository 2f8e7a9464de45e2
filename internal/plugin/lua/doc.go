// Package lua runs user scripts that take part in bookmark decisions.
//
// A script is loaded into a sandboxed gopher-lua state that only has the
// base, table, string and math libraries. Files, processes and module
// loading are not available. Scripts reach the editor through the
// preloaded markgutter module:
//
//	local mg = require("markgutter")
//
//	function before_add_bookmark(line)
//	    return mg.line_text(line) ~= ""
//	end
//
//	function before_remove_bookmark(line)
//	    mg.log("removing bookmark on line " .. line)
//	    return true
//	end
//
// # BookmarkHook
//
// BookmarkHook adapts such a script to gutter.BookmarkListener. A missing
// function approves. So does a script that fails or runs past its
// timeout; the failure is logged.
//
// # Threading
//
// gopher-lua states are not goroutine-safe. State serializes Go callers
// with a mutex, and the hook is meant to be called from the UI goroutine.
package lua
