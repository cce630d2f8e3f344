package xdbgmetrics

import (
	"io"
	"sync"
	"sync/atomic"
)

// SafeMetrics 是 [Metrics] 的线程安全句柄：所有公开操作在互斥锁内
// 执行并在返回前释放（引擎除落盘外不做 I/O，不存在跨挂起点持锁）。
// 并发调用方的事件严格按获得锁的顺序进入日志。
//
// 句柄可通过 Clone 复制，所有副本共享同一底层实例（引用计数）；
// 最后一个存活句柄 Close 时执行唯一一次落盘。
type SafeMetrics struct {
	inner *sharedState
	// closed 标记本句柄是否已释放，防止重复递减引用计数。
	closed atomic.Bool
}

// sharedState 是被全部句柄共享的底层状态。
type sharedState struct {
	mu   sync.Mutex
	m    *Metrics
	refs atomic.Int64
}

// NewSafe 构造线程安全记录器，等价于 New(w, cfg, opts...).Safe()。
func NewSafe(w io.Writer, cfg Config, opts ...Option) *SafeMetrics {
	return New(w, cfg, opts...).Safe()
}

// AddRecordingRule 将正则模式并入 key 的记录规则集合（只增不减）。
func (s *SafeMetrics) AddRecordingRule(key string, patterns ...string) {
	s.inner.mu.Lock()
	defer s.inner.mu.Unlock()
	s.inner.m.AddRecordingRule(key, patterns...)
}

// AddDropHook 将 key 加入落盘打印集合（只增不减）。
func (s *SafeMetrics) AddDropHook(key string) {
	s.inner.mu.Lock()
	defer s.inner.mu.Unlock()
	s.inner.m.AddDropHook(key)
}

// Inc 将 key 对应的计数器加一，并处理随附标签。
func (s *SafeMetrics) Inc(key string, labels LabelSource) {
	s.inner.mu.Lock()
	defer s.inner.mu.Unlock()
	s.inner.m.Inc(key, labels)
}

// Set 将 key 对应的计数器置为绝对值，并处理随附标签。
func (s *SafeMetrics) Set(key string, value uint64, labels LabelSource) {
	s.inner.mu.Lock()
	defer s.inner.mu.Unlock()
	s.inner.m.Set(key, value, labels)
}

// SetLabel 设置标签值（创建或覆盖）。
func (s *SafeMetrics) SetLabel(key, value string) {
	s.inner.mu.Lock()
	defer s.inner.mu.Unlock()
	s.inner.m.SetLabel(key, value)
}

// EventsForKey 按日志顺序返回 key 命中的事件（防御性副本）。
func (s *SafeMetrics) EventsForKey(key string) []Event {
	s.inner.mu.Lock()
	defer s.inner.mu.Unlock()
	return s.inner.m.EventsForKey(key)
}

// Clone 返回共享同一底层实例的新句柄。
func (s *SafeMetrics) Clone() *SafeMetrics {
	s.inner.refs.Add(1)
	return &SafeMetrics{inner: s.inner}
}

// Close 释放本句柄（按句柄幂等）；最后一个存活句柄负责执行唯一一次
// 落盘。非最后句柄的 Close 不加锁、不触碰 sink。
func (s *SafeMetrics) Close() {
	if s.closed.Swap(true) {
		return
	}
	if s.inner.refs.Add(-1) == 0 {
		s.inner.mu.Lock()
		defer s.inner.mu.Unlock()
		s.inner.m.Close()
	}
}

// WithScopeHook 返回作用域钩子：作用域结束时对本句柄执行一次 fn。
// 钩子不持有引用计数，调用方需保证钩子先于对应句柄的 Close 执行
// （通常二者在同一函数内 defer，后注册者先运行）。
func (s *SafeMetrics) WithScopeHook(fn func(*SafeMetrics)) *ScopeHook[*SafeMetrics] {
	return NewScopeHook(s, fn)
}
