package xdbgmetrics

// Recorder 是调试指标记录器的统一公开契约，
// 由单持有者 *Metrics 与线程安全 *SafeMetrics 共同实现。
type Recorder interface {
	// AddRecordingRule 将正则模式并入 key 的记录规则集合（只增不减）。
	AddRecordingRule(key string, patterns ...string)

	// AddDropHook 将 key 加入落盘打印集合（只增不减）。
	AddDropHook(key string)

	// Inc 将 key 对应的计数器加一（首次出现时创建），并处理随附标签。
	Inc(key string, labels LabelSource)

	// Set 将 key 对应的计数器置为绝对值，并处理随附标签。
	Set(key string, value uint64, labels LabelSource)

	// SetLabel 设置标签值（创建或覆盖）。
	SetLabel(key, value string)

	// EventsForKey 按日志顺序返回主键为 key 的事件，以及以 key 为
	// 触发源（cause）的级联事件。只读操作，重复调用结果一致。
	EventsForKey(key string) []Event
}

// Flusher 描述输出 sink 的可选刷新能力。
// Close 落盘后若 sink 实现该接口则调用 Flush（即使没有任何行写出）。
type Flusher interface {
	Flush() error
}

// recorder 是编译期策略选择的内部契约：活动引擎或空对象实现。
// 公开包装类型 Metrics 仅做转发，调用方在两种构建下获得完全一致的
// 控制流与 API 形状。
type recorder interface {
	addRecordingRule(key string, patterns []string)
	addDropHook(key string)
	inc(key string, labels LabelSource)
	set(key string, value uint64, labels LabelSource)
	setLabel(key, value string)
	eventsForKey(key string) []Event
	close()
}
