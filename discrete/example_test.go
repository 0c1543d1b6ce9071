package discrete_test

import (
	"fmt"

	"github.com/katalvlaran/flexgen/discrete"
)

// ExampleSampler_Draw maps uniforms onto indices proportionally to the
// weights 1:2:1.
func ExampleSampler_Draw() {
	d, err := discrete.New([]float64{1, 2, 1})
	if err != nil {
		fmt.Println("invalid weights:", err)

		return
	}
	fmt.Println(d.Draw(0.1), d.Draw(0.5), d.Draw(0.9))
	// Output: 0 1 2
}
