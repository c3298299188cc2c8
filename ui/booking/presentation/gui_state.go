// Package presentation connects the booking wizard to its Fyne widgets.
//
// GUIState holds only widgets and UI flags; business data lives in
// models.WizardModel. The BookingPresenter is the single point of contact
// between the two: it forwards user intents into the wizard operations and
// re-renders the step view from the model after each one.
package presentation

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"railroute/ui/components"
)

// GUIState contains only GUI widgets and UI flags for one booking session.
type GUIState struct {
	Window fyne.Window

	// Root is the stable outer container; the step content inside it is
	// rebuilt on every render.
	Root      *fyne.Container
	StepLabel *widget.Label

	// Step 1 widgets
	Loading     *widget.ProgressBarInfinite
	FetchBanner *components.ErrorBanner

	// Step 3 widgets; kept across renders so typed input and model state
	// stay in sync through SetText rather than widget recreation.
	NameEntry    *widget.Entry
	EmailEntry   *widget.Entry
	PhoneEntry   *widget.Entry
	AddressEntry *widget.Entry
	SubmitButton *widget.Button

	// UI flags
	FetchInProgress bool
	FetchFailed     bool
}

// NewGUIState creates the widget set for a booking session.
func NewGUIState(window fyne.Window) *GUIState {
	gui := &GUIState{
		Window:    window,
		StepLabel: widget.NewLabel(""),
		Loading:   widget.NewProgressBarInfinite(),
	}
	gui.StepLabel.TextStyle = fyne.TextStyle{Bold: true}

	gui.NameEntry = widget.NewEntry()
	gui.NameEntry.SetPlaceHolder("Enter your full name")
	gui.EmailEntry = widget.NewEntry()
	gui.EmailEntry.SetPlaceHolder("your@email.com")
	gui.PhoneEntry = widget.NewEntry()
	gui.PhoneEntry.SetPlaceHolder("Enter your phone number")
	gui.AddressEntry = widget.NewEntry()
	gui.AddressEntry.SetPlaceHolder("Enter your address (optional)")

	gui.Root = container.NewVBox()
	return gui
}
