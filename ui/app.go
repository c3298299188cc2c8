// Package ui assembles the main window: the header with the dark-mode
// toggle, the search form, and the swappable booking area.
package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"railroute/core"
	"railroute/core/catalog"
	"railroute/internal/constants"
	"railroute/ui/booking/presentation"
)

// App owns the window content. Only one booking flow is live at a time;
// a new search disposes the previous presenter before starting the next.
type App struct {
	controller *core.AppController

	searchForm  *SearchForm
	bookingArea *fyne.Container
	themeToggle *widget.Button

	presenter *presentation.BookingPresenter
}

func NewApp(controller *core.AppController) *App {
	a := &App{controller: controller}
	a.searchForm = NewSearchForm(controller, a.startBooking)
	a.bookingArea = container.NewVBox()
	return a
}

// Content builds the full window layout.
func (a *App) Content() fyne.CanvasObject {
	title := widget.NewLabelWithStyle(constants.AppName, fyne.TextAlignLeading,
		fyne.TextStyle{Bold: true})

	a.themeToggle = widget.NewButtonWithIcon("", a.themeToggleIcon(), func() {
		a.controller.UIService.ToggleDarkMode()
	})
	a.controller.UIService.OnStateChange = func() {
		a.themeToggle.SetIcon(a.themeToggleIcon())
	}

	header := container.NewHBox(title, layout.NewSpacer(), a.themeToggle)

	return container.NewBorder(
		container.NewVBox(header, widget.NewSeparator()),
		nil, nil, nil,
		container.NewVScroll(container.NewVBox(
			a.searchForm.Content(),
			a.bookingArea,
		)),
	)
}

func (a *App) themeToggleIcon() fyne.Resource {
	if a.controller.UIService.Preferences.DarkMode() {
		return theme.VisibilityOffIcon()
	}
	return theme.VisibilityIcon()
}

// startBooking replaces the booking area with a fresh wizard for the
// given query. Any in-flight flow is disposed first so its pending
// catalog fetch and reset timer cannot touch the new view.
func (a *App) startBooking(query catalog.Query) {
	if a.presenter != nil {
		a.presenter.Dispose()
	}

	a.presenter = presentation.NewBookingPresenter(a.controller, a.controller.MainWindow, query)
	a.bookingArea.Objects = []fyne.CanvasObject{
		widget.NewSeparator(),
		a.presenter.Content(),
	}
	a.bookingArea.Refresh()
	a.presenter.Start()
}
