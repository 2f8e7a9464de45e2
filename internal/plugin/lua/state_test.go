package lua

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	glua "github.com/yuin/gopher-lua"
)

func TestStateCall(t *testing.T) {
	s := NewState()
	defer s.Close()

	require.NoError(t, s.DoString(`
		function add(a, b) return a + b end
		function nothing() end
	`))

	results, err := s.Call("add", glua.LNumber(2), glua.LNumber(3))
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, glua.LNumber(5), results[0])

	results, err = s.Call("nothing")
	require.NoError(t, err)
	assert.NotNil(t, results)
	assert.Empty(t, results)

	_, err = s.Call("missing")
	assert.ErrorIs(t, err, ErrFunctionNotFound)
	assert.True(t, s.HasFunction("add"))
	assert.False(t, s.HasFunction("missing"))
}

func TestStateCallKeepsStackBalanced(t *testing.T) {
	s := NewState()
	defer s.Close()
	require.NoError(t, s.DoString(`function pair() return 1, 2 end`))

	top := s.L.GetTop()
	for i := 0; i < 3; i++ {
		results, err := s.Call("pair")
		require.NoError(t, err)
		assert.Len(t, results, 2)
	}
	assert.Equal(t, top, s.L.GetTop())
}

func TestStateRuntimeError(t *testing.T) {
	s := NewState()
	defer s.Close()
	require.NoError(t, s.DoString(`function boom() error("nope") end`))

	_, err := s.Call("boom")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nope")
}

func TestSandboxRemovesLoaders(t *testing.T) {
	s := NewState()
	defer s.Close()

	for _, name := range []string{"dofile", "loadfile", "load", "loadstring", "io", "os", "debug"} {
		assert.Equal(t, glua.LNil, s.L.GetGlobal(name), name)
	}

	err := s.DoString(`require("os")`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not available")
}

func TestPreloadModule(t *testing.T) {
	s := NewState()
	defer s.Close()

	calls := 0
	s.PreloadModule("answer", func(L *glua.LState) int {
		calls++
		mod := L.NewTable()
		L.SetField(mod, "value", glua.LNumber(42))
		L.Push(mod)
		return 1
	})

	require.NoError(t, s.DoString(`
		local a = require("answer")
		local b = require("answer")
		result = a.value + b.value
	`))
	assert.Equal(t, 1, calls, "modules load once")
	assert.Equal(t, glua.LNumber(84), s.L.GetGlobal("result"))
}

func TestExecutionTimeout(t *testing.T) {
	s := NewState(WithExecutionTimeout(20 * time.Millisecond))
	defer s.Close()
	require.NoError(t, s.DoString(`function spin() while true do end end`))

	_, err := s.Call("spin")
	assert.ErrorIs(t, err, ErrExecutionTimeout)

	// The state is still usable afterwards.
	require.NoError(t, s.DoString(`x = 1`))
}

func TestClosedState(t *testing.T) {
	s := NewState()
	s.Close()
	s.Close()

	assert.ErrorIs(t, s.DoString(`x = 1`), ErrStateClosed)
	_, err := s.Call("x")
	assert.ErrorIs(t, err, ErrStateClosed)
	assert.False(t, s.HasFunction("x"))
}
