// Package models contains the data model of the booking wizard.
//
// WizardModel holds only business data (no Fyne widgets):
//   - the loaded catalog of offers
//   - the current step and the selections made so far
//   - the passenger form state
//   - the submitting flag covering the confirmation window
//
// GUI state (Fyne widgets, UI flags) lives in presentation/GUIState. The
// two are connected only through the BookingPresenter, which keeps the
// model usable from business logic and tests without a GUI.
package models

import (
	"railroute/core/catalog"
)

// Step identifies the wizard step currently shown.
type Step int

const (
	StepSelectTrain Step = iota
	StepChooseSeat
	StepPassengerInfo
)

func (s Step) String() string {
	switch s {
	case StepSelectTrain:
		return "Select Train"
	case StepChooseSeat:
		return "Choose Seat"
	case StepPassengerInfo:
		return "Passenger Details"
	default:
		return "Unknown"
	}
}

// PassengerField names one field of the passenger form.
type PassengerField int

const (
	FieldFullName PassengerField = iota
	FieldEmail
	FieldPhone
	FieldAddress
)

// PassengerDetails is the mutable passenger form state. Values are stored
// verbatim as typed; validation happens only at submission time.
type PassengerDetails struct {
	FullName string
	Email    string
	Phone    string
	Address  string
}

// Set overwrites the named field.
func (d *PassengerDetails) Set(field PassengerField, value string) {
	switch field {
	case FieldFullName:
		d.FullName = value
	case FieldEmail:
		d.Email = value
	case FieldPhone:
		d.Phone = value
	case FieldAddress:
		d.Address = value
	}
}

// WizardModel is the state of one booking session.
//
// Invariants, maintained by the business layer after every operation:
//   - CurrentStep == StepChooseSeat implies SelectedOffer != nil
//   - CurrentStep == StepPassengerInfo implies SelectedOffer != nil and
//     SelectedSeatClass != nil
//   - SelectedSeatClass, when set, points into SelectedOffer.SeatClasses
type WizardModel struct {
	CurrentStep Step

	// Catalog is owned by the model; empty until the catalog service
	// delivers a result set.
	Catalog []*catalog.Offer

	// Selections are non-owning references into Catalog.
	SelectedOffer     *catalog.Offer
	SelectedSeatClass *catalog.SeatClass

	Passenger PassengerDetails

	// Submitting is set between a successful submission and the delayed
	// reset. While set, further submissions are rejected.
	Submitting bool
}

// NewWizardModel creates a fresh session model on the first step.
func NewWizardModel() *WizardModel {
	return &WizardModel{
		CurrentStep: StepSelectTrain,
		Catalog:     make([]*catalog.Offer, 0),
	}
}
