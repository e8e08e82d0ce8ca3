package window_test

import (
	"fmt"

	"github.com/cwbudde/algo-stereoviz/dsp/window"
)

func ExampleGenerate() {
	w := window.Generate(window.TypeHann, 4)
	fmt.Printf("%.2f\n", w)

	// Output:
	// [0.00 0.50 1.00 0.50]
}
