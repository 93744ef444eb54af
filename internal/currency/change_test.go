package currency

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecompose(t *testing.T) {
	c := MustConverter(DefaultRatios())

	ch := c.Decompose(1122334455)

	assert.Equal(t, Change{Gold: 1122, Silver: 33, Copper: 44, Iron: 55}, ch)
}

func TestComposeDecompose_RoundTrip(t *testing.T) {
	c := MustConverter(DefaultRatios())

	for _, p := range []int64{0, 1, 99, 100, 101, 9999, 10000, 1000000, 1000001, 123456789, 1122334455} {
		assert.Equal(t, p, c.Compose(c.Decompose(p)), "price %d", p)
	}
}

func TestComposeDecompose_CustomRatios(t *testing.T) {
	c, err := NewConverter(Ratios{IronPerCopper: 10, CopperPerSilver: 20, SilverPerGold: 50})
	require.NoError(t, err)

	ch := c.Decompose(10*20*50 + 10*20*3 + 10*7 + 9)

	assert.Equal(t, Change{Gold: 1, Silver: 3, Copper: 7, Iron: 9}, ch)
	for p := int64(0); p < 25000; p += 37 {
		assert.Equal(t, p, c.Compose(c.Decompose(p)))
	}
}

func TestCompose_Negative(t *testing.T) {
	c := MustConverter(DefaultRatios())

	assert.Equal(t, int64(-1000000+5), c.Compose(Change{Gold: -1, Iron: 5}))
	assert.Equal(t, Change{}, c.Decompose(-5))
}

func TestNewConverter_InvalidRatio(t *testing.T) {
	_, err := NewConverter(Ratios{IronPerCopper: 1, CopperPerSilver: 100, SilverPerGold: 100})

	assert.ErrorIs(t, err, ErrInvalidRatio)
}

func TestChange_WithAndGet(t *testing.T) {
	ch := Change{}.With(Silver, 4).With(Iron, 2)

	assert.Equal(t, int64(4), ch.Get(Silver))
	assert.Equal(t, int64(2), ch.Get(Iron))
	assert.Equal(t, int64(0), ch.Get(Gold))
}

func TestFormat(t *testing.T) {
	c := MustConverter(DefaultRatios())

	assert.Equal(t, "0i", c.Format(0))
	assert.Equal(t, "1g 2c", c.Format(1000200))
	assert.Equal(t, "1122g 33s 44c 55i", c.Format(1122334455))
}
