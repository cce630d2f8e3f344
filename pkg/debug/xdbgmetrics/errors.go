package xdbgmetrics

import "errors"

// 配置加载错误。引擎自身的公开操作不返回可恢复错误（见包文档的
// 失败模型），错误值仅出现在 ConfigFromFile/ConfigFromBytes 路径。
var (
	// ErrEmptyPath 表示配置文件路径为空。
	ErrEmptyPath = errors.New("xdbgmetrics: config path is empty")

	// ErrUnsupportedFormat 表示不支持的配置格式。
	ErrUnsupportedFormat = errors.New("xdbgmetrics: unsupported config format")

	// ErrLoadFailed 表示配置文件读取失败。
	ErrLoadFailed = errors.New("xdbgmetrics: load config failed")

	// ErrParseFailed 表示配置数据解析失败。
	ErrParseFailed = errors.New("xdbgmetrics: parse config failed")
)
