//go:build xdbgmetrics_off

package xdbgmetrics

import (
	"io"
	"log/slog"
)

// Enabled 报告插桩是否在编译期启用。
// 本构建（xdbgmetrics_off）下插桩被整体禁用。
const Enabled = false

// newRecorder 选择空对象作为记录器内核：所有变更操作无效果，
// 所有查询返回空，调用方获得与启用构建完全一致的控制流。
func newRecorder(io.Writer, Config, *slog.Logger) recorder {
	return noopRecorder{}
}
