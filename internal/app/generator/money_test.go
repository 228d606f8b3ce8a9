package generator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRound2(t *testing.T) {
	assert.Equal(t, 1.23, round2(1.234))
	assert.Equal(t, 1.24, round2(1.235))
	assert.Equal(t, 100.0, round2(99.999))
	assert.Equal(t, 0.0, round2(0))
}

func TestLineTotal(t *testing.T) {
	// 199.99 * 3 * (1 - 0.10) = 539.973 -> 539.97
	assert.Equal(t, 539.97, lineTotal(199.99, 3, 10))

	// no discount
	assert.Equal(t, 599.97, lineTotal(199.99, 3, 0))

	// full allowed discount
	assert.Equal(t, 479.98, lineTotal(199.99, 3, 20))
}

func TestDiscountValue(t *testing.T) {
	v := discountValue(100, 2, 15)
	assert.Equal(t, 30.0, v.InexactFloat64())
}
