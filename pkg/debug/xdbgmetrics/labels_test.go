package xdbgmetrics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPairs_YieldsInOrder(t *testing.T) {
	src := Pairs(
		Label{Key: "a", Value: "1"},
		Label{Key: "b", Value: "2"},
	)

	var got []Label
	for k, v := range src {
		got = append(got, Label{Key: k, Value: v})
	}
	assert.Equal(t, []Label{
		{Key: "a", Value: "1"},
		{Key: "b", Value: "2"},
	}, got)
}

func TestPairs_Empty(t *testing.T) {
	count := 0
	for range Pairs() {
		count++
	}
	assert.Zero(t, count)
}

func TestPairs_EarlyTermination(t *testing.T) {
	src := Pairs(Label{Key: "a"}, Label{Key: "b"}, Label{Key: "c"})

	count := 0
	for range src {
		count++
		break
	}
	assert.Equal(t, 1, count)
}

func TestNoLabels_IsNilSentinel(t *testing.T) {
	// 哨兵不分配集合，引擎将 nil 视为空序列
	assert.Nil(t, NoLabels)
}
