package xdbgmetrics

// noopRecorder 是空对象实现：与活动引擎保持完全一致的内部契约，
// 但所有变更操作无任何效果（值存储与规则表完全惰性）、所有查询返回空、
// close 不触碰 sink。xdbgmetrics_off 构建下 New 返回的记录器以它为内核；
// 空对象始终参与编译，保证两种构建下包的 API 形状一致。
type noopRecorder struct{}

func (noopRecorder) addRecordingRule(string, []string) {}

func (noopRecorder) addDropHook(string) {}

func (noopRecorder) inc(string, LabelSource) {}

func (noopRecorder) set(string, uint64, LabelSource) {}

func (noopRecorder) setLabel(string, string) {}

func (noopRecorder) eventsForKey(string) []Event { return nil }

func (noopRecorder) close() {}
