package indicator

import "github.com/pkg/errors"

// Buffer is a fixed-capacity FIFO window over Num samples. It maintains a
// running sum so the mean stays O(1) as the window slides; variance and
// standard deviation walk the window on demand.
type Buffer struct {
	buf  []Num
	head int // index of the oldest element
	size int
	sum  Num
}

// NewBuffer creates a buffer of the given capacity seeded with data. When
// data is longer than the capacity only the trailing capacity elements are
// kept; when shorter, the buffer starts partially filled and grows on Shift
// until it reaches capacity.
func NewBuffer(capacity int, data []Num) (*Buffer, error) {
	if capacity < 1 {
		return nil, errors.Wrapf(ErrInvalidSize, "buffer capacity must be at least 1, got %d", capacity)
	}
	if len(data) == 0 {
		return nil, errors.Wrap(ErrInvalidData, "buffer requires at least one seed sample")
	}

	if len(data) > capacity {
		data = data[len(data)-capacity:]
	}

	b := &Buffer{buf: make([]Num, capacity)}
	for _, v := range data {
		b.buf[b.size] = v
		b.sum += v
		b.size++
	}
	return b, nil
}

// Cap is the maximum number of samples the buffer holds.
func (b *Buffer) Cap() int { return len(b.buf) }

// Len is the number of samples currently held.
func (b *Buffer) Len() int { return b.size }

// IsReady reports whether the buffer has filled to capacity.
func (b *Buffer) IsReady() bool { return b.size == len(b.buf) }

// Oldest returns the sample that the next Shift at capacity will evict.
// Constructors guarantee a non-empty buffer.
func (b *Buffer) Oldest() Num { return b.buf[b.head] }

// Newest returns the most recently added sample.
func (b *Buffer) Newest() Num {
	return b.buf[(b.head+b.size-1)%len(b.buf)]
}

// Values returns the current contents, oldest first.
func (b *Buffer) Values() []Num {
	out := make([]Num, b.size)
	for i := 0; i < b.size; i++ {
		out[i] = b.buf[(b.head+i)%len(b.buf)]
	}
	return out
}

// Shift appends v. At capacity it evicts and returns the oldest sample;
// while still warming up it grows instead and returns 0, which callers must
// not treat as an evicted value.
func (b *Buffer) Shift(v Num) Num {
	if b.size < len(b.buf) {
		b.buf[(b.head+b.size)%len(b.buf)] = v
		b.size++
		b.sum += v
		return 0
	}

	evicted := b.buf[b.head]
	b.buf[b.head] = v
	b.head = (b.head + 1) % len(b.buf)
	b.sum += v - evicted
	return evicted
}

// Sum is the running sum of the current contents.
func (b *Buffer) Sum() Num { return b.sum }

// Mean of the current contents.
func (b *Buffer) Mean() Num { return b.sum / Num(b.size) }

// Variance of the current contents. The divisor is len-1 when sample is
// true, len otherwise. A single-element buffer with sample set divides by
// zero; sample-variance consumers must use a period of at least 2.
func (b *Buffer) Variance(sample bool) Num {
	mean := b.Mean()
	var sq Num
	for i := 0; i < b.size; i++ {
		d := b.buf[(b.head+i)%len(b.buf)] - mean
		sq += d * d
	}

	n := Num(b.size)
	if sample {
		n -= 1
	}
	return sq / n
}

// Stdev is the square root of Variance.
func (b *Buffer) Stdev(sample bool) Num {
	return sqrtNum(b.Variance(sample))
}
