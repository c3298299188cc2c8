package constants

import "time"

// Application identity
const (
	AppID   = "com.railroute.app"
	AppName = "RailRoute"
)

// File names
const (
	OffersFixtureName = "offers.jsonc"
)

// Preference keys
const (
	DarkModePrefKey = "darkMode"
)

// Timing for the mock catalog and the booking flow.
const (
	// CatalogLoadDelay simulates the latency of a real inventory lookup.
	CatalogLoadDelay = 1 * time.Second
	// ConfirmationResetDelay keeps the confirmation visible before the
	// wizard returns to the first step.
	ConfirmationResetDelay = 2 * time.Second
)

// Application version
// Can be overridden at build time using -ldflags="-X railroute/internal/constants.AppVersion=..."
var (
	AppVersion = "v0.1.0" // Default version, overridden by build scripts from git tag
)

// UI Theme settings
const (
	// Default when no darkMode preference has been stored yet:
	// "dark", "light", or "default" (follows the system theme)
	AppTheme = "default"
)
