// Package components holds small reusable UI pieces shared by the shell
// and the booking presenter.
package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// Icon is the closed set of icons the app renders. Each value maps
// statically to a theme resource; there is no string-keyed lookup, so an
// unknown icon cannot appear at runtime.
type Icon int

const (
	IconSearch Icon = iota
	IconBack
	IconNext
	IconConfirm
	IconInfo
	IconWarning
	IconPassenger
	IconDate
	IconTheme
)

// Resource resolves the icon to the current theme's resource.
func (i Icon) Resource() fyne.Resource {
	switch i {
	case IconSearch:
		return theme.SearchIcon()
	case IconBack:
		return theme.NavigateBackIcon()
	case IconNext:
		return theme.NavigateNextIcon()
	case IconConfirm:
		return theme.ConfirmIcon()
	case IconInfo:
		return theme.InfoIcon()
	case IconWarning:
		return theme.WarningIcon()
	case IconPassenger:
		return theme.AccountIcon()
	case IconDate:
		return theme.HistoryIcon()
	case IconTheme:
		return theme.ColorPaletteIcon()
	default:
		return theme.QuestionIcon()
	}
}
