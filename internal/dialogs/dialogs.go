package dialogs

import (
	"fmt"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
)

// Kind classifies a transient user-facing notification.
type Kind int

const (
	KindInfo Kind = iota
	KindSuccess
	KindError
)

func (k Kind) title() string {
	switch k {
	case KindSuccess:
		return "Success"
	case KindError:
		return "Error"
	default:
		return "Info"
	}
}

// autoHideAfter is how long a toast stays on screen before hiding itself.
const autoHideAfter = 2500 * time.Millisecond

// ShowError shows an error dialog to the user
func ShowError(window fyne.Window, err error) {
	fyne.Do(func() {
		dialog.ShowError(err, window)
	})
}

// ShowErrorText shows an error dialog with a text message
func ShowErrorText(window fyne.Window, title, message string) {
	fyne.Do(func() {
		dialog.ShowError(fmt.Errorf("%s: %s", title, message), window)
	})
}

// ShowInfo shows an information dialog to the user
func ShowInfo(window fyne.Window, title, message string) {
	fyne.Do(func() {
		dialog.ShowInformation(title, message, window)
	})
}

// ShowConfirm shows a confirmation dialog
func ShowConfirm(window fyne.Window, title, message string, onConfirm func(bool)) {
	fyne.Do(func() {
		dialog.ShowConfirm(title, message, onConfirm, window)
	})
}

// Toast shows a transient fire-and-forget notification: a system
// notification plus an in-window dialog that hides itself after a short
// delay. There is no acknowledgment contract; callers never wait on it.
func Toast(app fyne.App, window fyne.Window, kind Kind, message string) {
	app.SendNotification(&fyne.Notification{Title: kind.title(), Content: message})
	fyne.Do(func() {
		d := dialog.NewCustomWithoutButtons(kind.title(), widget.NewLabel(message), window)
		d.Show()
		go func() {
			time.Sleep(autoHideAfter)
			fyne.Do(func() { d.Hide() })
		}()
	})
}
