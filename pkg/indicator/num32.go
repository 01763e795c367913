//go:build float32

package indicator

import "math"

// Num is the numeric type used for every sample, state variable and output in
// this package. This build uses float32 (the `float32` build tag is set).
type Num = float32

func sqrtNum(x Num) Num { return Num(math.Sqrt(float64(x))) }

func absNum(x Num) Num {
	if x < 0 {
		return -x
	}
	return x
}

func maxNum(a, b Num) Num {
	if a > b {
		return a
	}
	return b
}
