package command

const (
	CycleLength = 2000 // ticks per 20ms period, 10us per tick
	CenterValue = 150  // 1.5ms
	MinValue    = 100  // 1ms
	MaxValue    = 200  // 2ms
)

// Mirror reflects a duty value around the center pulse, used for servos mounted the other way round.
func Mirror(value int) int {
	return 2*CenterValue - value
}

func MapToRange(value, min, max, minReturn, maxReturn float64) float64 {
	mappedValue := (maxReturn-minReturn)*(value-min)/(max-min) + minReturn

	if mappedValue > maxReturn {
		return maxReturn
	} else if mappedValue < minReturn {
		return minReturn
	} else {
		return mappedValue
	}
}
