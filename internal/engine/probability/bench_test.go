package probability_test

import (
	"testing"

	"go.trai.ch/gtprob/internal/adapters/logger"
	"go.trai.ch/gtprob/internal/adapters/metrics"
	"go.trai.ch/gtprob/internal/adapters/store"
	"go.trai.ch/gtprob/internal/core/domain"
	"go.trai.ch/gtprob/internal/engine/probability"
)

func benchmarkCalculate(b *testing.B, newick string) {
	b.Helper()
	e := probability.NewEvaluator(store.NewFactory(), metrics.New(), logger.New())
	t := domain.MustParseTopology(newick)

	b.ReportAllocs()
	for b.Loop() {
		if _, err := e.Calculate(t, 1); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkCalculate_Caterpillar(b *testing.B) {
	benchmarkCalculate(b, "(1,(1,(1,(1,(1,1)))))")
}

func BenchmarkCalculate_Balanced(b *testing.B) {
	benchmarkCalculate(b, "((3,4),(5,6))")
}

func BenchmarkCalculate_Deep(b *testing.B) {
	benchmarkCalculate(b, "(10,(20,(1,5)))")
}
