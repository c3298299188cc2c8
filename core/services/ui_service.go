package services

import (
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/theme"

	"railroute/internal/constants"
)

// UIService manages the Fyne application, theming, and UI callbacks.
// It encapsulates all Fyne components to keep AppController small.
type UIService struct {
	Application fyne.App
	MainWindow  fyne.Window
	Preferences *PreferenceService

	// OnStateChange is called when the theme changes so visible controls
	// (for example the toggle button icon) can refresh themselves.
	OnStateChange func()
}

// NewUIService creates the Fyne application and applies the initial theme:
// the stored preference when one exists, otherwise the compile-time
// default from internal/constants.
func NewUIService() *UIService {
	ui := &UIService{}

	log.Println("UIService: Initializing Fyne application...")
	ui.Application = app.NewWithID(constants.AppID)

	ui.Preferences = NewPreferenceService(ui.Application.Preferences())
	ui.Preferences.SetOnChange(func(dark bool) {
		ui.ApplyTheme(dark)
		if ui.OnStateChange != nil {
			ui.OnStateChange()
		}
	})

	if ui.Preferences.HasDarkModePreference() {
		ui.ApplyTheme(ui.Preferences.DarkMode())
	} else {
		switch constants.AppTheme {
		case "dark":
			ui.Application.Settings().SetTheme(theme.DarkTheme())
		case "light":
			ui.Application.Settings().SetTheme(theme.LightTheme())
		default:
			ui.Application.Settings().SetTheme(theme.DefaultTheme())
		}
	}

	return ui
}

// ApplyTheme switches the application theme.
func (ui *UIService) ApplyTheme(dark bool) {
	if dark {
		ui.Application.Settings().SetTheme(theme.DarkTheme())
	} else {
		ui.Application.Settings().SetTheme(theme.LightTheme())
	}
}

// ToggleDarkMode flips the persisted flag; the preference write-through
// re-applies the theme and fires OnStateChange.
func (ui *UIService) ToggleDarkMode() {
	ui.Preferences.SetDarkMode(!ui.Preferences.DarkMode())
}

// QuitApplication quits the Fyne application.
func (ui *UIService) QuitApplication() {
	if ui.Application != nil {
		ui.Application.Quit()
	}
}
