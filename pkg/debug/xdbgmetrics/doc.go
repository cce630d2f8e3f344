// Package xdbgmetrics 提供进程内的调试插桩能力：记录计数器与标签状态，
// 通过记录规则自动捕获相关键的快照，并在作用域结束时输出因果标注的事件日志。
//
// # 设计理念
//
// xdbgmetrics 不是生产级 metrics/telemetry 管道（也不是 OTel），
// 它面向单进程内复杂控制流的调试场景，只在调试构建中启用：
//
//   - 计数器与标签共享同一键命名空间，构成当前进程的调试状态
//   - 记录规则（正则模式集合）声明"此键变化时，一并捕获哪些相关键的快照"
//   - 计数器变更随附的标签更新生成级联事件，回链触发源（cause）
//   - 事件日志只追加、不收缩、不重排，插入顺序是唯一的顺序保证
//   - Close 时按 DropPrintSet 与 ProcessAllEvents 策略过滤事件并落盘
//
// 默认低开销、按需可见：没有匹配规则且未开启全量捕获时，变更不产生任何事件。
//
// # 使用示例
//
//	m := xdbgmetrics.New(os.Stdout, xdbgmetrics.Config{})
//	defer m.Close()
//
//	m.AddRecordingRule("stage", ".+")
//	m.AddDropHook("stage")
//	m.SetLabel("stage", "zero")
//	m.Inc("metric", xdbgmetrics.Pairs(xdbgmetrics.Label{Key: "stage", Value: "one"}))
//
// # 并发
//
// Metrics 是单持有者变体，无内部同步，适用于单线程或外部已串行化的场景。
// Safe 返回引用计数的并发安全句柄 SafeMetrics：所有公开操作在互斥锁内执行，
// 并发调用方的事件严格按获得锁的顺序进入日志；句柄可 Clone 共享同一底层
// 实例，最后一个存活句柄 Close 时执行唯一一次落盘。
//
// # 编译期开关
//
// 构建标签 xdbgmetrics_off 在编译期整体禁用插桩：所有变更操作变为空操作，
// 所有查询返回空，公开 API 形状不变，调用方无需任何条件编译。
// [Enabled] 常量报告当前构建模式。
//
// # 失败模型
//
// 引擎的公开操作不返回可恢复错误：未匹配的规则、禁用构建下的调用都是
// 静默的；非法正则模式在首次参与匹配时触发致命错误（panic），落盘阶段的
// sink 写入/刷新失败同样致命（落盘之后已无上报时机）。
// 仅配置加载（ConfigFromFile/ConfigFromBytes）返回错误值。
package xdbgmetrics
