package golden_test

import (
	"fmt"

	"github.com/conneroisu/steroscopic-hardware/golden"
)

func ExampleGenerator_Shifted() {
	g, err := golden.NewGenerator(golden.DefaultOptions(), golden.WithSeed(1))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	v, err := g.Shifted(21)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(v.Disparity, v.Cost, v.Recovered())
	// Output: 21 0 true
}
