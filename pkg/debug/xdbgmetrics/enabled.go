//go:build !xdbgmetrics_off

package xdbgmetrics

import (
	"io"
	"log/slog"
)

// Enabled 报告插桩是否在编译期启用。
// 使用构建标签 xdbgmetrics_off 可整体禁用插桩。
const Enabled = true

// newRecorder 选择活动引擎作为记录器内核。
func newRecorder(w io.Writer, cfg Config, log *slog.Logger) recorder {
	return newEngine(w, cfg, log)
}
