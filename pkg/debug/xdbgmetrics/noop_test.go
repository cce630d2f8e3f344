package xdbgmetrics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// 空对象在任何构建下都参与编译，这里直接验证其惰性。
func TestNoopRecorder_FullyInert(t *testing.T) {
	var rec recorder = noopRecorder{}

	rec.addRecordingRule("k", []string{".+"})
	rec.addDropHook("k")
	rec.inc("k", NoLabels)
	rec.set("k", 42, NoLabels)
	rec.setLabel("stage", "zero")

	assert.Empty(t, rec.eventsForKey("k"))
	assert.Empty(t, rec.eventsForKey("stage"))
	assert.NotPanics(t, rec.close)
}
