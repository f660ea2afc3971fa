package ui

import "time"

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
	IconRefresh  = "⟳"
	IconCursor   = "▶"
	IconSelected = "✓"
)

// Text fragments
const (
	MiddleDotSeparator = " · "
	DashPlaceholder    = "—"
)

// Window and layout sizing
const (
	WindowWidth          float32 = 900
	WindowHeight         float32 = 600
	SettingsDialogWidth  float32 = 520
	SettingsDialogHeight float32 = 380
)

// Colour-button palette, matching the receiver remote keys
const (
	ColorGreenHex  = "#1F771F"
	ColorYellowHex = "#9F9F13"
	ColorRedHex    = "#9F1313"
)

// Delays
const (
	AutoStartDelay = 300 * time.Millisecond
)
