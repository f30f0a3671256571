package keyracer

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClampSteerTotal(t *testing.T) {
	values := []int{math.MinInt, -1, 0, 119, 120, 150, 180, 181, 2000, math.MaxInt}
	for v := -500; v <= 500; v++ {
		values = append(values, v)
	}

	for _, v := range values {
		clamped := ClampSteer(v)
		assert.GreaterOrEqual(t, clamped, MinSteer, "value %d", v)
		assert.LessOrEqual(t, clamped, MaxSteer, "value %d", v)
		assert.Equal(t, clamped, ClampSteer(clamped), "clamp not idempotent for %d", v)
		if v >= MinSteer && v <= MaxSteer {
			assert.Equal(t, v, clamped)
		}
	}
}

func TestClampEscTotal(t *testing.T) {
	values := []int{math.MinInt, -1, 0, 100, 119, 120, 150, 160, 161, 180, math.MaxInt}
	for v := -500; v <= 500; v++ {
		values = append(values, v)
	}

	for _, v := range values {
		clamped := ClampEsc(v)
		assert.GreaterOrEqual(t, clamped, MinEsc, "value %d", v)
		assert.LessOrEqual(t, clamped, MaxEsc, "value %d", v)
		assert.Equal(t, clamped, ClampEsc(clamped), "clamp not idempotent for %d", v)
		if v >= MinEsc && v <= MaxEsc {
			assert.Equal(t, v, clamped)
		}
	}
}

func TestBrakeFromIsBistable(t *testing.T) {
	assert.Equal(t, 100, BrakeFrom(151))
	assert.Equal(t, 150, BrakeFrom(150))
	assert.Equal(t, 150, BrakeFrom(100))
	assert.Equal(t, 100, BrakeFrom(160))

	for _, v := range []int{math.MinInt, 0, 120, 149, 152, 1000, math.MaxInt} {
		result := BrakeFrom(v)
		assert.Contains(t, []int{BrakeValue, NeutralValue}, result, "value %d", v)
	}
}

func TestStateTransitions(t *testing.T) {
	state := NewKeyRacerState()
	assert.Equal(t, KeyRacerState{Steer: 150, Esc: 150}, state)

	state.steer(1)
	state.throttle(-1)
	assert.Equal(t, KeyRacerState{Steer: 151, Esc: 149}, state)

	state.steer(math.MaxInt)
	assert.Equal(t, MaxSteer, state.Steer)
	state.steer(math.MinInt)
	assert.Equal(t, MinSteer, state.Steer)

	state.throttle(1000)
	assert.Equal(t, MaxEsc, state.Esc)
	state.brake()
	assert.Equal(t, BrakeValue, state.Esc)
	assert.Equal(t, MinSteer, state.Steer, "brake must not touch steering")

	// brake output sits under the throttle range, the next throttle step pulls it back in
	state.throttle(1)
	assert.Equal(t, MinEsc, state.Esc)
}
