package components

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// ErrorBanner displays a red error banner with an optional retry action.
type ErrorBanner struct {
	container *fyne.Container
	text      *widget.Label
	rect      *canvas.Rectangle
	retry     *widget.Button
}

// NewErrorBanner creates a new error banner widget. onRetry may be nil
// when the failure has no recovery action.
func NewErrorBanner(message string, onRetry func()) *ErrorBanner {
	text := widget.NewLabel(message)
	text.Wrapping = fyne.TextWrapWord
	text.Alignment = fyne.TextAlignCenter

	rect := canvas.NewRectangle(color.NRGBA{R: 255, G: 200, B: 200, A: 255})
	rect.SetMinSize(fyne.NewSize(0, 40))

	inner := container.NewVBox(
		container.NewHBox(widget.NewIcon(IconWarning.Resource()), text),
	)
	var retry *widget.Button
	if onRetry != nil {
		retry = widget.NewButton("Retry", onRetry)
		inner.Add(container.NewCenter(retry))
	}

	content := container.NewStack(
		rect,
		container.NewPadded(inner),
	)

	return &ErrorBanner{
		container: content,
		text:      text,
		rect:      rect,
		retry:     retry,
	}
}

// GetContainer returns the container for embedding in UI
func (eb *ErrorBanner) GetContainer() *fyne.Container {
	return eb.container
}

// SetMessage updates the error message
func (eb *ErrorBanner) SetMessage(message string) {
	eb.text.SetText("❌ " + message)
	eb.container.Refresh()
}

// Hide hides the error banner
func (eb *ErrorBanner) Hide() {
	eb.container.Hide()
}

// Show shows the error banner
func (eb *ErrorBanner) Show() {
	eb.container.Show()
}

// IsVisible returns whether the banner is visible
func (eb *ErrorBanner) IsVisible() bool {
	return eb.container.Visible()
}
