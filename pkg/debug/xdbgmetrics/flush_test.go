//go:build !xdbgmetrics_off

package xdbgmetrics

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// flushSink 记录写入内容与 Flush 调用次数。
type flushSink struct {
	bytes.Buffer
	flushes int
}

func (s *flushSink) Flush() error {
	s.flushes++
	return nil
}

// errSink 按配置在写入或刷新时失败。
type errSink struct {
	failWrite bool
	failFlush bool
}

func (s *errSink) Write(p []byte) (int, error) {
	if s.failWrite {
		return 0, errors.New("sink write failed")
	}
	return len(p), nil
}

func (s *errSink) Flush() error {
	if s.failFlush {
		return errors.New("sink flush failed")
	}
	return nil
}

func TestClose_FlushesSinkEvenWhenEmpty(t *testing.T) {
	sink := &flushSink{}
	m := New(sink, Config{})

	m.Close()

	assert.Zero(t, sink.Len())
	assert.Equal(t, 1, sink.flushes)
}

func TestClose_Idempotent(t *testing.T) {
	sink := &flushSink{}
	m := New(sink, Config{ProcessAllEvents: true})
	m.Inc("k", NoLabels)

	m.Close()
	m.Close()

	assert.Equal(t, "k: 1 :: {}\n", sink.String())
	assert.Equal(t, 1, sink.flushes)
}

func TestClose_NoLabelsPlaceholder(t *testing.T) {
	var buf bytes.Buffer
	m := New(&buf, VerboseConfig())

	// 空键标签是"无标签"调用点的占位符
	m.Inc("example", Pairs(Label{}))
	require.Len(t, m.EventsForKey("example"), 1)

	m.Close()
	assert.Equal(t, "example: 1 :: {}\n", buf.String())
}

func TestClose_DropHookFiltersByDisplayKey(t *testing.T) {
	var buf bytes.Buffer
	m := New(&buf, Config{})
	m.AddRecordingRule("a", "^a")
	m.AddRecordingRule("b", "^b")
	m.AddDropHook("a")

	m.Inc("a", NoLabels)
	m.Inc("b", NoLabels)
	// 两个键都有事件，但只有 a 在落盘打印集合中
	require.Len(t, m.EventsForKey("a"), 1)
	require.Len(t, m.EventsForKey("b"), 1)

	m.Close()
	assert.Equal(t, "a: 1 :: {\"a\": \"1\"}\n", buf.String())
}

func TestClose_CaptureAllPrintsEverything(t *testing.T) {
	var buf bytes.Buffer
	m := New(&buf, Config{ProcessAllEvents: true})

	m.Inc("a", NoLabels)
	m.Inc("b", NoLabels)

	m.Close()
	assert.Equal(t, "a: 1 :: {}\nb: 1 :: {}\n", buf.String())
}

func TestClose_WriteFailureIsFatal(t *testing.T) {
	m := New(&errSink{failWrite: true}, Config{ProcessAllEvents: true})
	m.Inc("k", NoLabels)

	assert.Panics(t, m.Close)
}

func TestClose_FlushFailureIsFatal(t *testing.T) {
	m := New(&errSink{failFlush: true}, Config{})

	assert.Panics(t, m.Close)
}
