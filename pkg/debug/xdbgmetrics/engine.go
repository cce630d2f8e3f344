package xdbgmetrics

import (
	"io"
	"log/slog"
	"maps"
	"regexp"
	"slices"
)

// keyKind 区分同一键命名空间下的计数器与标签（一个键不会同时是两者）。
type keyKind int

const (
	kindCounter keyKind = iota
	kindLabel
)

// engine 是单线程事件引擎：持有值存储（计数器/标签）、规则表、
// 落盘打印集合、事件日志与输出 sink。所有非平凡逻辑都在这里，
// 公开包装类型与线程安全门面只做转发与加锁。
type engine struct {
	// rules 记录规则表：键 → 正则模式集合。模式集合只增不减。
	rules map[string]map[string]struct{}
	// counts 计数器存储：键 → 当前计数。
	counts map[string]uint64
	// labels 标签存储：键 → 当前标签值。
	labels map[string]string
	// dropPrint 落盘打印集合：Close 时强制打印的展示键。
	dropPrint map[string]struct{}
	// events 只追加的事件日志，插入顺序是唯一的顺序保证。
	events []Event

	w      io.Writer
	cfg    Config
	log    *slog.Logger
	closed bool
}

// newEngine 构造活动引擎。sink 自此由引擎独占持有直至 Close。
func newEngine(w io.Writer, cfg Config, log *slog.Logger) *engine {
	return &engine{
		rules:     make(map[string]map[string]struct{}),
		counts:    make(map[string]uint64),
		labels:    make(map[string]string),
		dropPrint: make(map[string]struct{}),
		w:         w,
		cfg:       cfg,
		log:       log,
	}
}

// addRecordingRule 将模式并入 key 的规则集合，条目不存在时创建。
// 模式此时不编译；非法模式在首次参与匹配时才触发致命错误。
func (e *engine) addRecordingRule(key string, patterns []string) {
	set, ok := e.rules[key]
	if !ok {
		set = make(map[string]struct{}, len(patterns))
		e.rules[key] = set
	}
	for _, p := range patterns {
		set[p] = struct{}{}
	}
	e.log.Debug("recording rule added",
		slog.String("key", key), slog.Int("patterns", len(patterns)))
}

func (e *engine) addDropHook(key string) {
	e.dropPrint[key] = struct{}{}
}

func (e *engine) inc(key string, labels LabelSource) {
	e.counts[key]++
	e.recordCounter(key, labels)
}

func (e *engine) set(key string, value uint64, labels LabelSource) {
	e.counts[key] = value
	e.recordCounter(key, labels)
}

func (e *engine) setLabel(key, value string) {
	e.labels[key] = value
	if ev := e.synthesize(key, kindLabel); ev != nil {
		e.events = append(e.events, ev)
	}
}

// recordCounter 在计数器已写入后处理随附标签与主事件。
// 每个非空键标签先写入标签存储，再为该标签键合成事件并提升为级联
// 变体（cause 为本次变更的计数器键）；级联事件按标签调用顺序先于
// 主事件进入日志。
func (e *engine) recordCounter(key string, labels LabelSource) {
	if labels != nil {
		for lk, lv := range labels {
			if lk == "" {
				// "无标签"调用点的保留占位符
				continue
			}
			e.labels[lk] = lv
			if ev := e.synthesize(lk, kindLabel); ev != nil {
				e.events = append(e.events, promote(ev, key))
			}
		}
	}
	if ev := e.synthesize(key, kindCounter); ev != nil {
		e.events = append(e.events, ev)
	}
}

// synthesize 为已变更的键合成主事件：规则查找、全量捕获兜底、
// 全量标签增强。三步均未产出事件时返回 nil（不记录即最低开销）。
func (e *engine) synthesize(key string, kind keyKind) Event {
	var ev Event
	if patterns, ok := e.rules[key]; ok {
		deps, labs := e.matchSnapshot(patterns)
		ev = e.newChange(key, kind, deps, labs)
	} else if e.cfg.ProcessAllEvents {
		ev = e.newChange(key, kind, map[string]uint64{}, map[string]string{})
	}
	if ev == nil {
		return nil
	}
	if e.cfg.AllLabelsEveryEvent {
		// 全量标签表覆盖规则匹配得到的同名标签
		switch ch := ev.(type) {
		case MetricChange:
			maps.Copy(ch.Labels, e.labels)
		case LabelChange:
			maps.Copy(ch.Labels, e.labels)
		}
	}
	return ev
}

// newChange 以键的当前值构造对应类型的主事件。
func (e *engine) newChange(key string, kind keyKind, deps map[string]uint64, labs map[string]string) Event {
	if kind == kindCounter {
		return MetricChange{
			Metric:       key,
			Count:        e.counts[key],
			Dependencies: deps,
			Labels:       labs,
		}
	}
	return LabelChange{
		Label:        key,
		Value:        e.labels[key],
		Dependencies: deps,
		Labels:       labs,
	}
}

// matchSnapshot 按"模式→键"的确定顺序（模式与键均按字典序）扫描当前
// 计数器与标签存储，返回匹配键的快照。每个候选键至多捕获一次，
// 首个匹配的模式生效；同一模式下先扫计数器、后扫标签。
func (e *engine) matchSnapshot(patterns map[string]struct{}) (map[string]uint64, map[string]string) {
	deps := make(map[string]uint64)
	labs := make(map[string]string)
	found := make(map[string]struct{})

	countKeys := slices.Sorted(maps.Keys(e.counts))
	labelKeys := slices.Sorted(maps.Keys(e.labels))

	for _, patt := range slices.Sorted(maps.Keys(patterns)) {
		// 模式按求值惰性编译；非法正则是致命的配置错误，立即失败。
		re := regexp.MustCompile(patt)
		for _, k := range countKeys {
			if _, ok := found[k]; ok {
				continue
			}
			if re.MatchString(k) {
				found[k] = struct{}{}
				deps[k] = e.counts[k]
			}
		}
		for _, k := range labelKeys {
			if _, ok := found[k]; ok {
				continue
			}
			if re.MatchString(k) {
				found[k] = struct{}{}
				labs[k] = e.labels[k]
			}
		}
	}
	return deps, labs
}

// eventsForKey 按日志顺序返回主键为 key 的事件与以 key 为触发源的
// 级联事件，返回值为防御性副本。
func (e *engine) eventsForKey(key string) []Event {
	var out []Event
	for _, ev := range e.events {
		if eventMatchesKey(ev, key) {
			out = append(out, cloneEvent(ev))
		}
	}
	return out
}
