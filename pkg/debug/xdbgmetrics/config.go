package xdbgmetrics

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"
)

// Config 是事件合成与打印策略的不可变快照，在构造时固定，
// 记录器生命周期内不再变化。零值表示全部策略关闭（最低开销）。
type Config struct {
	// ProcessAllEvents 为 true 时即使没有匹配的记录规则也生成事件，
	// 且落盘时打印全部事件（全量捕获策略）。
	ProcessAllEvents bool `koanf:"process_all_events"`

	// RecordLabelChanges 是保留策略位，当前不影响任何行为。
	//
	// 设计决策: 原始设计声明了该开关但从未在事件构造逻辑中消费，
	// 其意图（例如整体抑制标签事件的生成）没有定论。此处保留字段
	// 以维持配置结构的前向兼容，显式不接线，避免臆测语义。
	RecordLabelChanges bool `koanf:"record_label_changes"`

	// AllLabelsEveryEvent 为 true 时，每个生成的事件的 Labels 字段
	// 合并当前全量标签表，并覆盖规则匹配得到的同名标签。
	AllLabelsEveryEvent bool `koanf:"all_labels_every_event"`
}

// VerboseConfig 返回全量捕获配置：无规则也记录事件，
// 且每个事件携带全量标签表。
func VerboseConfig() Config {
	return Config{
		ProcessAllEvents:    true,
		AllLabelsEveryEvent: true,
	}
}

// Format 定义配置文件格式。
type Format string

// 支持的配置格式。
const (
	// FormatYAML YAML 格式。
	FormatYAML Format = "yaml"

	// FormatJSON JSON 格式。
	FormatJSON Format = "json"
)

// ConfigFromFile 从配置文件加载 Config。
// 根据文件扩展名自动检测格式（.yaml/.yml 或 .json）。
func ConfigFromFile(path string) (Config, error) {
	if path == "" {
		return Config{}, ErrEmptyPath
	}

	format, err := detectFormat(path)
	if err != nil {
		return Config{}, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrLoadFailed, err)
	}
	return ConfigFromBytes(data, format)
}

// ConfigFromBytes 从字节数据加载 Config，需显式指定格式。
// 空数据返回零值配置（全策略关闭），与 ConfigFromFile 读取空文件的
// 行为一致。未出现的字段保持零值。
func ConfigFromBytes(data []byte, format Format) (Config, error) {
	var parser koanf.Parser
	switch format {
	case FormatYAML:
		parser = yaml.Parser()
	case FormatJSON:
		parser = json.Parser()
	default:
		return Config{}, ErrUnsupportedFormat
	}

	k := koanf.New(".")
	if len(data) > 0 {
		if err := k.Load(rawbytes.Provider(data), parser); err != nil {
			return Config{}, fmt.Errorf("%w: %w", ErrParseFailed, err)
		}
	}

	var cfg Config
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrParseFailed, err)
	}
	return cfg, nil
}

// detectFormat 根据文件扩展名检测配置格式。
func detectFormat(path string) (Format, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("%w: unknown extension %s", ErrUnsupportedFormat, ext)
	}
}
