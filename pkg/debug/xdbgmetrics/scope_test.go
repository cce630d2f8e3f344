//go:build !xdbgmetrics_off

package xdbgmetrics

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScopeHook_RunsExactlyOnce(t *testing.T) {
	m := New(io.Discard, Config{ProcessAllEvents: true})
	calls := 0

	hook := NewScopeHook(m, func(m *Metrics) {
		calls++
		m.Inc("scope.exit", NoLabels)
	})
	hook.Close()
	hook.Close()

	assert.Equal(t, 1, calls)
	assert.Len(t, m.EventsForKey("scope.exit"), 1)
	m.Close()
}

func TestScopeHook_RunsOnPanicPath(t *testing.T) {
	m := New(io.Discard, Config{})
	ran := false

	func() {
		defer func() { _ = recover() }()
		hook := NewScopeHook(m, func(*Metrics) { ran = true })
		defer hook.Close()
		panic("boom")
	}()

	assert.True(t, ran)
}

func TestScopeHook_NilCallback(t *testing.T) {
	m := New(io.Discard, Config{})
	hook := NewScopeHook(m, nil)
	assert.NotPanics(t, hook.Close)
}

func TestSafeMetrics_WithScopeHook_VisibleToFlush(t *testing.T) {
	var buf bytes.Buffer
	s := New(&buf, Config{ProcessAllEvents: true}).Safe()

	// 钩子嵌套在记录器生命周期内：其效果对落盘可见
	hook := s.WithScopeHook(func(s *SafeMetrics) {
		s.Inc("scope.exit", NoLabels)
	})
	hook.Close()
	s.Close()

	assert.Equal(t, "scope.exit: 1 :: {}\n", buf.String())
}
