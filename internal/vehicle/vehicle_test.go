package vehicle

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClamp(t *testing.T) {
	assert.Equal(t, 120, Clamp(math.MinInt, 120, 180))
	assert.Equal(t, 120, Clamp(119, 120, 180))
	assert.Equal(t, 120, Clamp(120, 120, 180))
	assert.Equal(t, 150, Clamp(150, 120, 180))
	assert.Equal(t, 180, Clamp(180, 120, 180))
	assert.Equal(t, 180, Clamp(181, 120, 180))
	assert.Equal(t, 180, Clamp(math.MaxInt, 120, 180))
}

func TestStepWithClampDoesNotWrap(t *testing.T) {
	assert.Equal(t, 180, StepWithClamp(150, math.MaxInt, 120, 180))
	assert.Equal(t, 180, StepWithClamp(math.MaxInt, 1, 120, 180))
	assert.Equal(t, 120, StepWithClamp(150, math.MinInt, 120, 180))
	assert.Equal(t, 120, StepWithClamp(math.MinInt, -1, 120, 180))
	assert.Equal(t, 151, StepWithClamp(150, 1, 120, 180))
	assert.Equal(t, 149, StepWithClamp(150, -1, 120, 180))
}
