package floats

import "math"

// Slice is a plain float64 series with helpers for the small amount of
// vector math the indicator tooling needs.
type Slice []float64

func New(a ...float64) Slice {
	return Slice(a)
}

func (s *Slice) Push(v float64) {
	*s = append(*s, v)
}

func (s *Slice) Pop(i int64) (v float64) {
	v = (*s)[i]
	*s = append((*s)[:i], (*s)[i+1:]...)
	return v
}

func (s Slice) Add(b Slice) (c Slice) {
	c = make(Slice, len(s))
	for i := range s {
		c[i] = s[i] + b[i]
	}
	return c
}

func (s Slice) Sub(b Slice) (c Slice) {
	c = make(Slice, len(s))
	for i := range s {
		c[i] = s[i] - b[i]
	}
	return c
}

func (s Slice) Mul(b Slice) (c Slice) {
	c = make(Slice, len(s))
	for i := range s {
		c[i] = s[i] * b[i]
	}
	return c
}

func (s Slice) Sum() (sum float64) {
	for _, v := range s {
		sum += v
	}
	return sum
}

func (s Slice) Mean() (mean float64) {
	length := len(s)
	if length == 0 {
		return 0.0
	}
	return s.Sum() / float64(length)
}

func (s Slice) Max() float64 {
	m := math.Inf(-1)
	for _, v := range s {
		m = math.Max(m, v)
	}
	return m
}

func (s Slice) Min() float64 {
	m := math.Inf(1)
	for _, v := range s {
		m = math.Min(m, v)
	}
	return m
}

// Tail returns the last size elements without copying. The full slice is
// returned when size exceeds the length.
func (s Slice) Tail(size int) Slice {
	length := len(s)
	if length <= size {
		return s
	}
	return s[length-size:]
}

// Diff returns the step-to-step differences; the result is one element
// shorter than the input.
func (s Slice) Diff() (d Slice) {
	d = make(Slice, 0, len(s))
	for i := 1; i < len(s); i++ {
		d = append(d, s[i]-s[i-1])
	}
	return d
}

func (s Slice) Last() float64 {
	if len(s) == 0 {
		return 0.0
	}
	return s[len(s)-1]
}

func (s Slice) Length() int {
	return len(s)
}

func (s Slice) Truncate(size int) Slice {
	if size < 0 || len(s) <= size {
		return s
	}
	return s[len(s)-size:]
}
