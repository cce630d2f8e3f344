package xdbgmetrics

import (
	"fmt"
	"io"
	"log/slog"
	"maps"
	"slices"
	"strconv"
	"strings"
)

// close 执行落盘（Drop-Flush）：按插入顺序遍历事件日志，
// ProcessAllEvents 开启或展示键在落盘打印集合中的事件写出一行，
// 最后刷新 sink（即使没有任何行写出）。幂等。
//
// 落盘阶段的写入/刷新失败没有后续上报时机，属于不可恢复的致命错误，
// 直接 panic 而不是返回错误值。
func (e *engine) close() {
	if e.closed {
		return
	}
	e.closed = true

	lines := 0
	for _, ev := range e.events {
		if !e.cfg.ProcessAllEvents {
			if _, ok := e.dropPrint[ev.Key()]; !ok {
				continue
			}
		}
		if _, err := io.WriteString(e.w, formatEvent(ev)); err != nil {
			panic(fmt.Sprintf("xdbgmetrics: write event log: %v", err))
		}
		lines++
	}
	if f, ok := e.w.(Flusher); ok {
		if err := f.Flush(); err != nil {
			panic(fmt.Sprintf("xdbgmetrics: flush sink: %v", err))
		}
	}
	e.log.Debug("event log flushed",
		slog.Int("events", len(e.events)), slog.Int("lines", lines))
}

// formatEvent 渲染一行事件：
//
//	key: value :: {"k": "v", ...}
//	key (caused by cause): value :: {"k": "v", ...}
//
// 快照为依赖与标签的合并映射，数值字符串化，键按字典序排列。
func formatEvent(ev Event) string {
	key, cause, value, deps, labels := displayParts(ev)

	var b strings.Builder
	b.WriteString(key)
	if cause != "" {
		b.WriteString(" (caused by ")
		b.WriteString(cause)
		b.WriteByte(')')
	}
	b.WriteString(": ")
	b.WriteString(value)
	b.WriteString(" :: ")
	writeSnapshot(&b, deps, labels)
	b.WriteByte('\n')
	return b.String()
}

// displayParts 返回事件的展示键、触发源（非级联为空串）、展示值与快照。
func displayParts(ev Event) (key, cause, value string, deps map[string]uint64, labels map[string]string) {
	switch ch := ev.(type) {
	case MetricChange:
		return ch.Metric, "", strconv.FormatUint(ch.Count, 10), ch.Dependencies, ch.Labels
	case LabelChange:
		return ch.Label, "", ch.Value, ch.Dependencies, ch.Labels
	case CascadeMetricChange:
		return ch.Metric, ch.Cause, strconv.FormatUint(ch.Count, 10), ch.Dependencies, ch.Labels
	case CascadeLabelChange:
		return ch.Label, ch.Cause, ch.Value, ch.Dependencies, ch.Labels
	default:
		return "", "", "", nil, nil
	}
}

// writeSnapshot 渲染合并快照。计数器与标签共享键命名空间，
// 合并不会产生键冲突。
func writeSnapshot(b *strings.Builder, deps map[string]uint64, labels map[string]string) {
	merged := make(map[string]string, len(deps)+len(labels))
	for k, v := range deps {
		merged[k] = strconv.FormatUint(v, 10)
	}
	maps.Copy(merged, labels)

	b.WriteByte('{')
	for i, k := range slices.Sorted(maps.Keys(merged)) {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(b, "%q: %q", k, merged[k])
	}
	b.WriteByte('}')
}
