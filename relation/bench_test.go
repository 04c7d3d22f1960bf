package relation_test

import (
	"testing"

	"github.com/taufulou/bazi-app-sub000/chart/charttest"
	"github.com/taufulou/bazi-app-sub000/relation"
)

func BenchmarkAnalyze(b *testing.B) {
	c := charttest.Build(b, "甲寅 丁卯 戊辰 庚申")
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := relation.Analyze(c); err != nil {
			b.Fatal(err)
		}
	}
}
