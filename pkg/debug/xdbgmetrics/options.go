package xdbgmetrics

import "log/slog"

// options 构造期可选配置（非导出，仅通过 Option 函数式选项设置）。
type options struct {
	logger    *slog.Logger
	rules     map[string][]string
	dropHooks []string
}

// Option 配置选项函数类型。
type Option func(*options)

// defaultOptions 返回默认配置：丢弃诊断日志，无预注册规则。
func defaultOptions() *options {
	return &options{
		logger: slog.New(slog.DiscardHandler),
	}
}

// WithLogger 注入诊断日志记录器。仅输出 Debug 级诊断信息
// （规则注册、落盘统计），不影响事件语义。nil 被忽略。
func WithLogger(log *slog.Logger) Option {
	return func(o *options) {
		if log != nil {
			o.logger = log
		}
	}
}

// WithRules 在构造期预注册记录规则，等价于逐条调用 AddRecordingRule。
// 多次使用时同键的模式集合取并。
func WithRules(rules map[string][]string) Option {
	return func(o *options) {
		if o.rules == nil {
			o.rules = make(map[string][]string, len(rules))
		}
		for key, patterns := range rules {
			o.rules[key] = append(o.rules[key], patterns...)
		}
	}
}

// WithDropHooks 在构造期预注册落盘打印键，等价于逐条调用 AddDropHook。
func WithDropHooks(keys ...string) Option {
	return func(o *options) {
		o.dropHooks = append(o.dropHooks, keys...)
	}
}
