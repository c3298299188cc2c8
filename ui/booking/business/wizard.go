// Package business contains the booking wizard state machine and its
// validation rules, free of any GUI dependency.
//
// The Wizard owns a models.WizardModel and is the only code that mutates
// it. All operations run to completion on the caller's turn; the two
// asynchronous edges (catalog arrival, post-confirmation reset) are
// marshaled back onto the caller's main loop through the runOnMain hook
// before they touch state.
package business

import (
	"time"

	"github.com/google/uuid"
	"railroute/core/catalog"
	"railroute/internal/constants"
	"railroute/internal/debuglog"
	"railroute/ui/booking/models"
)

// Confirmation is the outcome of a successful submission.
type Confirmation struct {
	Reference     string
	OfferName     string
	SeatClassName string
	Passenger     models.PassengerDetails
	TotalPrice    int
}

// Wizard drives one booking session through its three steps.
type Wizard struct {
	model *models.WizardModel

	resetDelay time.Duration
	resetTimer *time.Timer
	disposed   bool

	// runOnMain marshals timer callbacks onto the UI loop. Defaults to a
	// direct call, which keeps the wizard usable in tests.
	runOnMain func(func())
	// onReset is invoked after the delayed reset has been applied.
	onReset func()
}

// Option configures a Wizard.
type Option func(*Wizard)

// WithResetDelay overrides the confirmation reset delay.
func WithResetDelay(d time.Duration) Option {
	return func(w *Wizard) { w.resetDelay = d }
}

// WithRunOnMain sets the function used to marshal the reset callback onto
// the UI thread.
func WithRunOnMain(fn func(func())) Option {
	return func(w *Wizard) { w.runOnMain = fn }
}

// WithOnReset sets a hook invoked after the post-confirmation reset.
func WithOnReset(fn func()) Option {
	return func(w *Wizard) { w.onReset = fn }
}

// NewWizard creates a wizard on the first step with an empty catalog.
func NewWizard(opts ...Option) *Wizard {
	w := &Wizard{
		model:      models.NewWizardModel(),
		resetDelay: constants.ConfirmationResetDelay,
		runOnMain:  func(fn func()) { fn() },
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Model exposes the session state for rendering. Callers must treat it as
// read-only; all mutation goes through the wizard operations.
func (w *Wizard) Model() *models.WizardModel {
	return w.model
}

// LoadCatalog installs the catalog service result. It only applies while
// the wizard is on the first step with an empty catalog; any later call is
// a no-op, so a duplicate or stale delivery can never clobber a session.
func (w *Wizard) LoadCatalog(offers []*catalog.Offer) {
	if w.disposed {
		return
	}
	if w.model.CurrentStep != models.StepSelectTrain || len(w.model.Catalog) > 0 {
		debuglog.VerboseLog("wizard: ignoring catalog delivery (step=%s, loaded=%d)",
			w.model.CurrentStep, len(w.model.Catalog))
		return
	}
	w.model.Catalog = offers
}

// SelectOffer records the chosen offer and advances to seat selection.
// The offer must be a member of the loaded catalog.
func (w *Wizard) SelectOffer(offer *catalog.Offer) error {
	if w.model.CurrentStep != models.StepSelectTrain {
		return preconditionErr("SelectOffer", "not on train selection step (step=%s)", w.model.CurrentStep)
	}
	if !w.catalogContains(offer) {
		return preconditionErr("SelectOffer", "offer is not part of the loaded catalog")
	}

	w.model.SelectedOffer = offer
	w.model.CurrentStep = models.StepChooseSeat
	return nil
}

// SelectSeatClass records the chosen seat class and advances to the
// passenger form. A sold-out seat class leaves the state untouched: the
// presentation layer renders those controls disabled, so reaching here
// with one is not worth reporting.
func (w *Wizard) SelectSeatClass(seatClass *catalog.SeatClass) error {
	if w.model.CurrentStep != models.StepChooseSeat {
		return preconditionErr("SelectSeatClass", "not on seat selection step (step=%s)", w.model.CurrentStep)
	}
	if w.model.SelectedOffer == nil {
		return preconditionErr("SelectSeatClass", "no offer selected")
	}
	if !offerOwnsSeatClass(w.model.SelectedOffer, seatClass) {
		return preconditionErr("SelectSeatClass", "seat class does not belong to the selected offer")
	}
	if seatClass.Available == 0 {
		return nil
	}

	w.model.SelectedSeatClass = seatClass
	w.model.CurrentStep = models.StepPassengerInfo
	return nil
}

// UpdateField overwrites one passenger form field verbatim. No
// normalization happens on write; validation runs only at submission.
func (w *Wizard) UpdateField(field models.PassengerField, value string) error {
	if w.model.CurrentStep != models.StepPassengerInfo {
		return preconditionErr("UpdateField", "not on passenger step (step=%s)", w.model.CurrentStep)
	}
	w.model.Passenger.Set(field, value)
	return nil
}

// GoBack steps back exactly one step and clears the selection tied to the
// step being vacated. Passenger fields survive so a round trip does not
// lose typed input.
func (w *Wizard) GoBack() error {
	switch w.model.CurrentStep {
	case models.StepPassengerInfo:
		w.model.SelectedSeatClass = nil
		w.model.CurrentStep = models.StepChooseSeat
	case models.StepChooseSeat:
		w.model.SelectedOffer = nil
		w.model.CurrentStep = models.StepSelectTrain
	default:
		return preconditionErr("GoBack", "already on the first step")
	}
	return nil
}

// TotalPrice is the derived summary total for the current selections.
func (w *Wizard) TotalPrice() int {
	return DisplayPrice(w.model.SelectedOffer, w.model.SelectedSeatClass)
}

// SubmitBooking validates the passenger form and, on success, commits the
// booking and schedules the delayed reset back to the first step. The
// confirmation UI stays visible until the reset fires.
//
// Validation failures leave the state untouched; the caller surfaces the
// returned ValidationError and the user retries on the same step.
func (w *Wizard) SubmitBooking() (*Confirmation, error) {
	if w.model.CurrentStep != models.StepPassengerInfo {
		return nil, preconditionErr("SubmitBooking", "not on passenger step (step=%s)", w.model.CurrentStep)
	}
	if w.model.SelectedOffer == nil || w.model.SelectedSeatClass == nil {
		return nil, preconditionErr("SubmitBooking", "offer or seat class not selected")
	}
	if w.model.Submitting {
		return nil, preconditionErr("SubmitBooking", "submission already in progress")
	}

	if verr := ValidatePassengerDetails(w.model.Passenger); verr != nil {
		return nil, verr
	}

	conf := &Confirmation{
		Reference:     uuid.NewString(),
		OfferName:     w.model.SelectedOffer.Name,
		SeatClassName: w.model.SelectedSeatClass.Name,
		Passenger:     w.model.Passenger,
		TotalPrice:    w.TotalPrice(),
	}

	w.model.Submitting = true
	w.scheduleReset()

	debuglog.InfoLog("wizard: booking %s confirmed for %s (%s), total %d",
		conf.Reference, conf.OfferName, conf.SeatClassName, conf.TotalPrice)
	return conf, nil
}

// scheduleReset arms the cancelable reset timer. The callback re-checks
// disposal on the main loop because Dispose may have won the race between
// the timer firing and the marshaled function running.
func (w *Wizard) scheduleReset() {
	w.resetTimer = time.AfterFunc(w.resetDelay, func() {
		w.runOnMain(func() {
			if w.disposed {
				return
			}
			w.resetTimer = nil
			w.Reset()
			if w.onReset != nil {
				w.onReset()
			}
		})
	})
}

// Reset returns the wizard to the first step: selections and passenger
// fields cleared, catalog retained.
func (w *Wizard) Reset() {
	w.model.CurrentStep = models.StepSelectTrain
	w.model.SelectedOffer = nil
	w.model.SelectedSeatClass = nil
	w.model.Passenger = models.PassengerDetails{}
	w.model.Submitting = false
}

// Dispose tears the session down: the pending reset timer, if any, is
// canceled and all later timer or catalog deliveries become no-ops.
func (w *Wizard) Dispose() {
	w.disposed = true
	if w.resetTimer != nil {
		w.resetTimer.Stop()
		w.resetTimer = nil
	}
}

// Disposed reports whether Dispose has been called.
func (w *Wizard) Disposed() bool {
	return w.disposed
}

func (w *Wizard) catalogContains(offer *catalog.Offer) bool {
	for _, o := range w.model.Catalog {
		if o == offer {
			return true
		}
	}
	return false
}

func offerOwnsSeatClass(offer *catalog.Offer, seatClass *catalog.SeatClass) bool {
	if seatClass == nil {
		return false
	}
	for i := range offer.SeatClasses {
		if &offer.SeatClasses[i] == seatClass {
			return true
		}
	}
	return false
}
