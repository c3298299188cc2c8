package services

import (
	"fyne.io/fyne/v2"

	"railroute/internal/constants"
	"railroute/internal/debuglog"
)

// darkModeSetKey marks that the user has toggled the theme at least once,
// so startup can tell a stored "false" apart from "never chosen".
const darkModeSetKey = constants.DarkModePrefKey + ".set"

// PreferenceService is the persistence boundary for display preferences.
// It owns the single persisted flag (dark mode) and notifies the UI layer
// on every write so no other code mutates global theme state.
type PreferenceService struct {
	prefs    fyne.Preferences
	onChange func(dark bool)
}

// NewPreferenceService wraps the application's preference store.
func NewPreferenceService(prefs fyne.Preferences) *PreferenceService {
	return &PreferenceService{prefs: prefs}
}

// SetOnChange registers the callback invoked after each write-through.
func (s *PreferenceService) SetOnChange(fn func(dark bool)) {
	s.onChange = fn
}

// DarkMode reads the persisted flag. Falls back to the compile-time theme
// default when the user has never toggled.
func (s *PreferenceService) DarkMode() bool {
	return s.prefs.BoolWithFallback(constants.DarkModePrefKey, constants.AppTheme == "dark")
}

// HasDarkModePreference reports whether the user has ever toggled the
// theme in a previous session.
func (s *PreferenceService) HasDarkModePreference() bool {
	return s.prefs.Bool(darkModeSetKey)
}

// SetDarkMode writes the flag through to the store and notifies the UI.
func (s *PreferenceService) SetDarkMode(dark bool) {
	s.prefs.SetBool(constants.DarkModePrefKey, dark)
	s.prefs.SetBool(darkModeSetKey, true)
	debuglog.VerboseLog("preferences: darkMode set to %v", dark)
	if s.onChange != nil {
		s.onChange(dark)
	}
}
