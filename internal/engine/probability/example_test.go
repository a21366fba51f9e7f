package probability_test

import (
	"fmt"

	"go.trai.ch/gtprob/internal/adapters/logger"
	"go.trai.ch/gtprob/internal/adapters/metrics"
	"go.trai.ch/gtprob/internal/adapters/store"
	"go.trai.ch/gtprob/internal/core/domain"
	"go.trai.ch/gtprob/internal/engine/probability"
)

func ExampleCalculateProbability() {
	p, err := probability.CalculateProbability("(1,(1,1))", 1)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("%.7f\n", p)
	// Output: 0.0205761
}

func ExampleEvaluator_Decompose() {
	e := probability.NewEvaluator(store.NewFactory(), metrics.New(), logger.New())

	d, err := e.Decompose(domain.MustParseTopology("(2,(1,3))"), 1)
	if err != nil {
		fmt.Println(err)
		return
	}
	for _, term := range d.Terms {
		fmt.Printf("%s x%d coefficient=%.4f\n", term.Topology, term.Multiplicity, term.Coefficient)
	}
	// Output:
	// (1,(1,3)) x2 coefficient=0.0556
	// (2,4) x1 coefficient=0.0278
	// (2,(1,2)) x3 coefficient=0.1667
}
