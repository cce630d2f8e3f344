package xdbgmetrics

import (
	"io"
	"maps"
	"os"
	"slices"
)

// Metrics 是单持有者的调试指标记录器：无内部同步，适用于单线程或
// 外部已串行化的场景。并发场景通过 [Metrics.Safe] 获取线程安全句柄。
// 必须通过 [New]/[NewDefault] 创建，零值不可用。
//
// 内部记录器在编译期选择：默认构建为活动引擎，
// xdbgmetrics_off 构建为空对象（见 [Enabled]）。
type Metrics struct {
	rec recorder
}

// 编译期接口实现检查。
var (
	_ Recorder = (*Metrics)(nil)
	_ Recorder = (*SafeMetrics)(nil)
)

// New 构造记录器。sink w 自此由记录器独占持有，配置 cfg 是构造时刻的
// 不可变快照，两者在记录器生命周期内不再变化。
func New(w io.Writer, cfg Config, opts ...Option) *Metrics {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(o)
		}
	}

	m := &Metrics{rec: newRecorder(w, cfg, o.logger)}
	for _, key := range slices.Sorted(maps.Keys(o.rules)) {
		m.rec.addRecordingRule(key, o.rules[key])
	}
	for _, key := range o.dropHooks {
		m.rec.addDropHook(key)
	}
	return m
}

// NewDefault 返回写往标准输出、全策略关闭的记录器。
func NewDefault() *Metrics {
	return New(os.Stdout, Config{})
}

// AddRecordingRule 将正则模式并入 key 的记录规则集合（只增不减）。
// 模式按求值惰性编译，非法模式在首次参与匹配时触发致命错误（panic）。
func (m *Metrics) AddRecordingRule(key string, patterns ...string) {
	m.rec.addRecordingRule(key, patterns)
}

// AddDropHook 将 key 加入落盘打印集合：Close 时即使全量捕获关闭，
// 展示键为 key 的事件也会被打印。
func (m *Metrics) AddDropHook(key string) {
	m.rec.addDropHook(key)
}

// Inc 将 key 对应的计数器加一（首次出现时创建），随附标签写入标签
// 存储并可能生成级联事件。无标签时传 [NoLabels]。
func (m *Metrics) Inc(key string, labels LabelSource) {
	m.rec.inc(key, labels)
}

// Set 将 key 对应的计数器置为 value，其余语义与 [Metrics.Inc] 相同。
func (m *Metrics) Set(key string, value uint64, labels LabelSource) {
	m.rec.set(key, value, labels)
}

// SetLabel 设置标签值（创建或覆盖），并可能生成一条标签变更事件。
func (m *Metrics) SetLabel(key, value string) {
	m.rec.setLabel(key, value)
}

// EventsForKey 按日志顺序返回主键为 key 的事件，以及以 key 为触发源
// （cause）的级联事件。返回防御性副本；禁用构建下恒为空。
func (m *Metrics) EventsForKey(key string) []Event {
	return m.rec.eventsForKey(key)
}

// Close 执行落盘（Drop-Flush）并刷新 sink。幂等。
// sink 写入/刷新失败是不可恢复的致命错误（panic），见包文档的失败模型。
func (m *Metrics) Close() {
	m.rec.close()
}

// Safe 将记录器包装为线程安全句柄。包装后不应再直接使用原 Metrics，
// 所有访问都应经由返回的句柄（及其 Clone）进行。
func (m *Metrics) Safe() *SafeMetrics {
	s := &SafeMetrics{inner: &sharedState{m: m}}
	s.inner.refs.Store(1)
	return s
}
