//go:build !xdbgmetrics_off

package xdbgmetrics

import (
	"io"
	"strconv"
	"testing"
)

func BenchmarkInc_NoRule(b *testing.B) {
	m := New(io.Discard, Config{})

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		m.Inc("requests", NoLabels)
	}
}

func BenchmarkInc_CaptureAll(b *testing.B) {
	m := New(io.Discard, Config{ProcessAllEvents: true})

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		m.Inc("requests", NoLabels)
	}
}

func BenchmarkInc_RuleMatch(b *testing.B) {
	m := New(io.Discard, Config{})
	m.AddRecordingRule("requests", "^related\\.")
	for i := range 16 {
		m.Set("related."+strconv.Itoa(i), uint64(i), NoLabels)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		m.Inc("requests", NoLabels)
	}
}

func BenchmarkInc_WithLabels(b *testing.B) {
	m := New(io.Discard, VerboseConfig())

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		m.Inc("requests", Pairs(Label{Key: "stage", Value: "one"}))
	}
}

func BenchmarkSafeMetrics_Inc(b *testing.B) {
	s := New(io.Discard, Config{}).Safe()
	defer s.Close()

	b.ReportAllocs()
	b.RunParallel(func(pb *testing.PB) {
		h := s.Clone()
		defer h.Close()
		for pb.Next() {
			h.Inc("requests", NoLabels)
		}
	})
}
