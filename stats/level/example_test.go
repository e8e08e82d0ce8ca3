package level_test

import (
	"fmt"

	"github.com/cwbudde/algo-stereoviz/stats/level"
)

func ExampleMeasure() {
	left := []float64{1, -1, 1, -1}
	right := []float64{0.5, -0.5, 0.5, -0.5}
	img := level.Measure(left, right)
	fmt.Printf("corr=%.1f balance=%.1f\n", img.Correlation, img.Balance)

	// Output:
	// corr=1.0 balance=-0.5
}
