package xdbgmetrics

import "maps"

// Event 表示一次被观测到的变更记录。
// 事件一经构造即不可变；实现类型为 [MetricChange]、[LabelChange]、
// [CascadeMetricChange]、[CascadeLabelChange] 四种。
//
// Dependencies 保存事件构造时刻按规则匹配到的计数器快照，
// Labels 保存规则匹配或全量标签策略注入的标签快照；
// 两个映射中每个键至多出现一次（首个匹配的模式生效）。
type Event interface {
	// Key 返回事件的展示主键（指标事件为指标名，标签事件为标签名）。
	Key() string

	// sealed 密封接口，防止包外实现。
	sealed()
}

// MetricChange 表示一次计数器变更事件。
type MetricChange struct {
	// Metric 指标名。
	Metric string
	// Count 变更后的计数值。
	Count uint64
	// Dependencies 计数器快照。
	Dependencies map[string]uint64
	// Labels 标签快照。
	Labels map[string]string
}

// Key 返回指标名。
func (e MetricChange) Key() string { return e.Metric }

func (e MetricChange) sealed() {}

// LabelChange 表示一次标签变更事件。
type LabelChange struct {
	// Label 标签名。
	Label string
	// Value 变更后的标签值。
	Value string
	// Dependencies 计数器快照。
	Dependencies map[string]uint64
	// Labels 标签快照。
	Labels map[string]string
}

// Key 返回标签名。
func (e LabelChange) Key() string { return e.Label }

func (e LabelChange) sealed() {}

// CascadeMetricChange 表示由其他键的变更触发的计数器级联事件。
type CascadeMetricChange struct {
	// Cause 触发本事件的键。
	Cause string
	// Metric 指标名。
	Metric string
	// Count 变更后的计数值。
	Count uint64
	// Dependencies 计数器快照。
	Dependencies map[string]uint64
	// Labels 标签快照。
	Labels map[string]string
}

// Key 返回指标名。
func (e CascadeMetricChange) Key() string { return e.Metric }

func (e CascadeMetricChange) sealed() {}

// CascadeLabelChange 表示由计数器变更随附的标签更新触发的级联事件。
type CascadeLabelChange struct {
	// Cause 触发本事件的键（发生变更的计数器）。
	Cause string
	// Label 标签名。
	Label string
	// Value 变更后的标签值。
	Value string
	// Dependencies 计数器快照。
	Dependencies map[string]uint64
	// Labels 标签快照。
	Labels map[string]string
}

// Key 返回标签名。
func (e CascadeLabelChange) Key() string { return e.Label }

func (e CascadeLabelChange) sealed() {}

// promote 将主事件提升为级联变体，标注触发键 cause。
func promote(ev Event, cause string) Event {
	switch ch := ev.(type) {
	case MetricChange:
		return CascadeMetricChange{
			Cause:        cause,
			Metric:       ch.Metric,
			Count:        ch.Count,
			Dependencies: ch.Dependencies,
			Labels:       ch.Labels,
		}
	case LabelChange:
		return CascadeLabelChange{
			Cause:        cause,
			Label:        ch.Label,
			Value:        ch.Value,
			Dependencies: ch.Dependencies,
			Labels:       ch.Labels,
		}
	default:
		return ev
	}
}

// eventMatchesKey 报告事件是否命中按键查询：主键相等，
// 或（级联变体）触发源相等。
func eventMatchesKey(ev Event, key string) bool {
	switch ch := ev.(type) {
	case MetricChange:
		return ch.Metric == key
	case LabelChange:
		return ch.Label == key
	case CascadeMetricChange:
		return ch.Metric == key || ch.Cause == key
	case CascadeLabelChange:
		return ch.Label == key || ch.Cause == key
	default:
		return false
	}
}

// cloneEvent 返回事件的防御性副本，调用方无法通过返回值篡改已记录状态。
func cloneEvent(ev Event) Event {
	switch ch := ev.(type) {
	case MetricChange:
		ch.Dependencies = maps.Clone(ch.Dependencies)
		ch.Labels = maps.Clone(ch.Labels)
		return ch
	case LabelChange:
		ch.Dependencies = maps.Clone(ch.Dependencies)
		ch.Labels = maps.Clone(ch.Labels)
		return ch
	case CascadeMetricChange:
		ch.Dependencies = maps.Clone(ch.Dependencies)
		ch.Labels = maps.Clone(ch.Labels)
		return ch
	case CascadeLabelChange:
		ch.Dependencies = maps.Clone(ch.Dependencies)
		ch.Labels = maps.Clone(ch.Labels)
		return ch
	default:
		return ev
	}
}
