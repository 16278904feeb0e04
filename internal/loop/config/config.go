// Package config centralizes the session and terminal tunables. Board
// geometry and the simulation clock live in package game.
package config

import "time"

// Render area limits in terminal cells. One board unit maps to roughly
// MaxTermWidth/20 columns at the largest size.
const (
	MaxTermWidth  = 100
	MaxTermHeight = 50
	MinTermWidth  = 20 // One column per board cell
	MinTermHeight = 10 // One sub-pixel per board cell
)

// UI refresh (resize polling, countdowns, blinking prompts)
const (
	UIRefreshInterval = 100 * time.Millisecond
)

// Shutdown
const (
	ShutdownDisplaySeconds = 10.0 // Seconds to show shutdown message before auto-disconnect
	ShutdownGracePeriod    = 15 * time.Second
)

// Inactivity
const (
	InactivityWarnUser       = 90 * time.Second
	InactivityDisconnectUser = 120 * time.Second
)
