package presentation

import (
	"context"
	"errors"
	"fmt"

	"fyne.io/fyne/v2"

	"railroute/core"
	"railroute/core/catalog"
	"railroute/internal/debuglog"
	"railroute/internal/dialogs"
	"railroute/ui/booking/business"
	"railroute/ui/booking/models"
)

// BookingPresenter mediates between the wizard state machine and the GUI
// for one booking session. It owns the catalog fetch context and disposes
// the wizard when the session is torn down, so a late fetch result or a
// pending reset timer can never mutate dead state.
type BookingPresenter struct {
	wizard     *business.Wizard
	gui        *GUIState
	controller *core.AppController
	query      catalog.Query

	fetchCancel context.CancelFunc
	disposed    bool

	// lastConfirmation backs the confirmation view shown between a
	// successful submission and the delayed reset.
	lastConfirmation *business.Confirmation
}

// NewBookingPresenter creates a presenter for one search query.
func NewBookingPresenter(controller *core.AppController, window fyne.Window, query catalog.Query) *BookingPresenter {
	p := &BookingPresenter{
		gui:        NewGUIState(window),
		controller: controller,
		query:      query,
	}
	p.wizard = business.NewWizard(
		business.WithRunOnMain(func(fn func()) { SafeFyneDo(window, fn) }),
		business.WithOnReset(func() {
			p.lastConfirmation = nil
			p.Render()
		}),
	)
	return p
}

// Wizard exposes the underlying state machine.
func (p *BookingPresenter) Wizard() *business.Wizard {
	return p.wizard
}

// Content returns the root canvas object for embedding in the shell.
func (p *BookingPresenter) Content() fyne.CanvasObject {
	return p.gui.Root
}

// Start renders the loading state and kicks off the catalog fetch.
func (p *BookingPresenter) Start() {
	p.Render()
	p.fetchCatalog()
}

// fetchCatalog asks the catalog service for offers on a worker goroutine
// and marshals the outcome back onto the Fyne main loop.
func (p *BookingPresenter) fetchCatalog() {
	ctx, cancel := context.WithCancel(context.Background())
	p.fetchCancel = cancel
	p.gui.FetchInProgress = true
	p.gui.FetchFailed = false

	go func() {
		offers, err := p.controller.Catalog.FetchOffers(ctx, p.query)
		SafeFyneDo(p.gui.Window, func() {
			if p.disposed {
				debuglog.VerboseLog("booking: dropping catalog result for disposed session")
				return
			}
			p.gui.FetchInProgress = false
			if err != nil {
				if ctx.Err() != nil {
					return
				}
				debuglog.ErrorLog("booking: catalog fetch failed: %v", err)
				p.gui.FetchFailed = true
				dialogs.Toast(p.controller.Application, p.gui.Window, dialogs.KindError,
					"Could not load available trains. Please retry.")
				p.Render()
				return
			}
			p.wizard.LoadCatalog(offers)
			p.Render()
		})
	}()
}

// retryFetch re-runs a failed catalog fetch.
func (p *BookingPresenter) retryFetch() {
	if p.gui.FetchInProgress {
		return
	}
	p.Render()
	p.fetchCatalog()
}

// Dispose tears the session down: cancels a pending fetch and stops the
// wizard's reset timer.
func (p *BookingPresenter) Dispose() {
	p.disposed = true
	if p.fetchCancel != nil {
		p.fetchCancel()
	}
	p.wizard.Dispose()
}

// notify reports a wizard outcome through the notification sink.
func (p *BookingPresenter) notify(kind dialogs.Kind, message string) {
	dialogs.Toast(p.controller.Application, p.gui.Window, kind, message)
}

// handleSelectOffer forwards the select-offer intent.
func (p *BookingPresenter) handleSelectOffer(offer *catalog.Offer) {
	if err := p.wizard.SelectOffer(offer); err != nil {
		debuglog.ErrorLog("booking: SelectOffer rejected: %v", err)
		return
	}
	p.Render()
}

// handleSelectSeatClass forwards the select-seat-class intent. Sold-out
// tiers never reach here because their controls are disabled.
func (p *BookingPresenter) handleSelectSeatClass(seatClass *catalog.SeatClass) {
	if err := p.wizard.SelectSeatClass(seatClass); err != nil {
		debuglog.ErrorLog("booking: SelectSeatClass rejected: %v", err)
		return
	}
	p.Render()
}

// handleGoBack forwards the go-back intent.
func (p *BookingPresenter) handleGoBack() {
	if err := p.wizard.GoBack(); err != nil {
		debuglog.ErrorLog("booking: GoBack rejected: %v", err)
		return
	}
	p.Render()
}

// handleFieldEdit forwards a passenger form edit.
func (p *BookingPresenter) handleFieldEdit(field models.PassengerField, value string) {
	if err := p.wizard.UpdateField(field, value); err != nil {
		debuglog.ErrorLog("booking: UpdateField rejected: %v", err)
	}
}

// handleSubmit forwards the submit intent and surfaces the outcome.
func (p *BookingPresenter) handleSubmit() {
	conf, err := p.wizard.SubmitBooking()
	if err != nil {
		var verr *business.ValidationError
		if errors.As(err, &verr) {
			p.notify(dialogs.KindError, verr.Message)
			return
		}
		debuglog.ErrorLog("booking: SubmitBooking rejected: %v", err)
		return
	}

	p.lastConfirmation = conf
	p.notify(dialogs.KindSuccess, fmt.Sprintf("Booking confirmed for %s!", conf.OfferName))
	p.Render()
}

// SafeFyneDo safely executes fn on the Fyne UI thread. It checks that the
// window is not nil before calling fyne.Do, so it stays usable from
// goroutines during window teardown.
func SafeFyneDo(window fyne.Window, fn func()) {
	if window != nil {
		fyne.Do(fn)
	}
}
