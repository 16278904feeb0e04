package game

import "time"

// Board geometry in logical pixels. Width and Height must be multiples of UnitSize.
const (
	UnitSize    = 25
	BoardWidth  = 500
	BoardHeight = 500
)

// Snake rendering
const (
	SnakeCornerRadius = 5.0
	LargeFontSize     = 50.0 // "GAME OVER" overlay
)

// TickInterval is the simulation step period.
const TickInterval = 75 * time.Millisecond
