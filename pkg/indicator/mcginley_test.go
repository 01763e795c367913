package indicator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_McGinleyDynamic(t *testing.T) {
	md, err := NewMcGinleyDynamic(10, talibSmall[:19], DefaultMcGinleyK)
	assert.NoError(t, err)
	assert.Equal(t, 10, md.Period())
	assert.InDelta(t, 91.6428518997655, float64(md.Value()), testDelta)

	assert.InDelta(t, 91.32433432593635, float64(md.Next(talibSmall[19])), testDelta)
}

func Test_McGinleyDynamic_Validation(t *testing.T) {
	_, err := NewMcGinleyDynamic(1, talibSmall, DefaultMcGinleyK)
	assert.ErrorIs(t, err, ErrInvalidSize)

	_, err = NewMcGinleyDynamic(10, talibSmall[:10], DefaultMcGinleyK)
	assert.ErrorIs(t, err, ErrInvalidData)
}

func Test_McGinleyDynamic_SeedMatchesIncremental(t *testing.T) {
	full, err := NewMcGinleyDynamic(10, talibSmall[:19], DefaultMcGinleyK)
	assert.NoError(t, err)

	inc, err := NewMcGinleyDynamic(10, talibSmall[:11], DefaultMcGinleyK)
	assert.NoError(t, err)
	for _, v := range talibSmall[11:19] {
		inc.Next(v)
	}

	assert.InDelta(t, float64(full.Value()), float64(inc.Value()), testDelta)
}
