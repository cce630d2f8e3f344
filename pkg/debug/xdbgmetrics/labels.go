package xdbgmetrics

import "iter"

// LabelSource 提供零个或多个标签键值对的序列，按产出顺序消费一次。
// 调用方可以传字面量元组（[Pairs]）、自有集合适配的迭代器，
// 或任何有限（或由调用方截断）的序列。
type LabelSource = iter.Seq2[string, string]

// NoLabels 是"无标签"哨兵：nil 的 LabelSource 不分配任何集合，
// 引擎将其视为空序列。
var NoLabels LabelSource

// Label 表示一个标签键值对。
// 键为空的条目是"无标签"调用点的保留占位符，引擎会静默跳过。
type Label struct {
	Key   string
	Value string
}

// Pairs 将固定标签元组适配为 LabelSource。
func Pairs(labels ...Label) LabelSource {
	return func(yield func(string, string) bool) {
		for _, l := range labels {
			if !yield(l.Key, l.Value) {
				return
			}
		}
	}
}
