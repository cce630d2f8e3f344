package xdbgmetrics

import "sync"

// ScopeHook 在作用域结束时对记录器执行一次副作用回调，
// 用于确定性地触发收尾记账（例如最终指标发射）。配合 defer 使用时，
// 回调在正常返回与 panic 展开两条退出路径上都恰好执行一次：
//
//	hook := xdbgmetrics.NewScopeHook(m, func(m *xdbgmetrics.Metrics) {
//		m.Inc("scope.exit", xdbgmetrics.NoLabels)
//	})
//	defer hook.Close()
//
// 类型参数 R 覆盖独占持有（*Metrics）与共享句柄（*SafeMetrics）两种
// 访问方式。钩子嵌套在记录器的生命周期之内，其效果对记录器自身的
// 落盘可见。
type ScopeHook[R Recorder] struct {
	rec  R
	fn   func(R)
	once sync.Once
}

// NewScopeHook 构造作用域钩子。fn 为 nil 时 Close 不执行任何操作。
func NewScopeHook[R Recorder](rec R, fn func(R)) *ScopeHook[R] {
	return &ScopeHook[R]{rec: rec, fn: fn}
}

// Close 执行回调；多次调用只生效一次。
func (h *ScopeHook[R]) Close() {
	h.once.Do(func() {
		if h.fn != nil {
			h.fn(h.rec)
		}
	})
}
