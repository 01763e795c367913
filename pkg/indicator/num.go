//go:build !float32

package indicator

import "math"

// Num is the numeric type used for every sample, state variable and output in
// this package. The default build uses float64; build with the `float32` tag
// to switch the whole library to single precision.
type Num = float64

func sqrtNum(x Num) Num { return math.Sqrt(x) }

func absNum(x Num) Num { return math.Abs(x) }

func maxNum(a, b Num) Num { return math.Max(a, b) }
