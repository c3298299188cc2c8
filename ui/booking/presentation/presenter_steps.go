package presentation

import (
	"fmt"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"

	"railroute/core/catalog"
	"railroute/ui/booking/business"
	"railroute/ui/booking/models"
	"railroute/ui/components"
)

// Render rebuilds the step view from the wizard model. It is called after
// every state transition; the derived prices are recomputed here and never
// cached, so a changed selection can never show a stale total.
func (p *BookingPresenter) Render() {
	m := p.wizard.Model()
	p.gui.StepLabel.SetText(fmt.Sprintf("Step %d of 3: %s", int(m.CurrentStep)+1, m.CurrentStep))

	var content fyne.CanvasObject
	switch m.CurrentStep {
	case models.StepSelectTrain:
		content = p.renderSelectTrain()
	case models.StepChooseSeat:
		content = p.renderChooseSeat()
	case models.StepPassengerInfo:
		if m.Submitting && p.lastConfirmation != nil {
			content = p.renderConfirmation()
		} else {
			content = p.renderPassengerInfo()
		}
	}

	p.gui.Root.Objects = []fyne.CanvasObject{
		container.NewHBox(p.gui.StepLabel, layout.NewSpacer()),
		widget.NewSeparator(),
		content,
	}
	p.gui.Root.Refresh()
}

// renderSelectTrain shows the loading indicator, the fetch error banner,
// or the offer list.
func (p *BookingPresenter) renderSelectTrain() fyne.CanvasObject {
	m := p.wizard.Model()

	header := widget.NewLabel(fmt.Sprintf("Available Trains — %s to %s", p.query.Origin, p.query.Destination))
	header.TextStyle = fyne.TextStyle{Bold: true}

	if p.gui.FetchFailed {
		p.gui.FetchBanner = components.NewErrorBanner("Could not load available trains.", func() {
			p.retryFetch()
		})
		return container.NewVBox(header, p.gui.FetchBanner.GetContainer())
	}

	if len(m.Catalog) == 0 {
		p.gui.Loading.Start()
		return container.NewVBox(
			header,
			widget.NewLabel("Loading available trains..."),
			p.gui.Loading,
		)
	}
	p.gui.Loading.Stop()

	list := container.NewVBox(header)
	for _, offer := range m.Catalog {
		list.Add(p.offerCard(offer))
	}
	return list
}

func (p *BookingPresenter) offerCard(offer *catalog.Offer) fyne.CanvasObject {
	schedule := widget.NewLabel(fmt.Sprintf("%s  %s → %s  %s (%s)",
		p.query.Origin, offer.DepartureTime, offer.ArrivalTime, p.query.Destination, offer.Duration))
	price := widget.NewLabel(fmt.Sprintf("$%d", offer.BasePrice))
	price.TextStyle = fyne.TextStyle{Bold: true}

	selectButton := widget.NewButtonWithIcon("Select", components.IconNext.Resource(), func() {
		p.handleSelectOffer(offer)
	})
	selectButton.Importance = widget.HighImportance

	return widget.NewCard(offer.Name, "Train #"+offer.ID,
		container.NewVBox(
			schedule,
			container.NewHBox(price, layout.NewSpacer(), selectButton),
		),
	)
}

// renderChooseSeat shows the selected offer summary, one card per seat
// tier, and the amenity list.
func (p *BookingPresenter) renderChooseSeat() fyne.CanvasObject {
	m := p.wizard.Model()
	offer := m.SelectedOffer

	backButton := widget.NewButtonWithIcon("Back", components.IconBack.Resource(), func() {
		p.handleGoBack()
	})

	summary := widget.NewLabel(fmt.Sprintf("%s (Train #%s)  %s → %s",
		offer.Name, offer.ID, offer.DepartureTime, offer.ArrivalTime))

	tiers := container.NewGridWithColumns(len(offer.SeatClasses))
	for i := range offer.SeatClasses {
		tiers.Add(p.seatClassCard(offer, &offer.SeatClasses[i]))
	}

	amenities := widget.NewLabel("Amenities on this train: " + strings.Join(offer.Amenities, ", "))
	amenities.Wrapping = fyne.TextWrapWord

	return container.NewVBox(
		container.NewHBox(backButton, summary),
		widget.NewLabel("Available Seat Types"),
		tiers,
		container.NewHBox(widget.NewIcon(components.IconInfo.Resource()), amenities),
	)
}

func (p *BookingPresenter) seatClassCard(offer *catalog.Offer, seatClass *catalog.SeatClass) fyne.CanvasObject {
	price := business.DisplayPrice(offer, seatClass)
	priceText := fmt.Sprintf("$%d", price)
	if seatClass.Surcharge > 0 {
		priceText += fmt.Sprintf(" (+$%d)", seatClass.Surcharge)
	}
	priceLabel := widget.NewLabel(priceText)
	priceLabel.TextStyle = fyne.TextStyle{Bold: true}

	availability := widget.NewLabel(fmt.Sprintf("%d available", seatClass.Available))
	if seatClass.Available == 0 {
		availability.SetText("Sold out")
	}

	perks := container.NewVBox()
	for _, perk := range seatClassPerks(seatClass.Code) {
		perks.Add(widget.NewLabel("✓ " + perk))
	}

	selectButton := widget.NewButtonWithIcon("Select", components.IconNext.Resource(), func() {
		p.handleSelectSeatClass(seatClass)
	})
	// Sold-out tiers must be non-interactive; the wizard treats a tap on
	// one as a no-op but the control never offers the intent.
	if seatClass.Available == 0 {
		selectButton.Disable()
	}

	return widget.NewCard(seatClass.Name, "",
		container.NewVBox(priceLabel, availability, perks, selectButton),
	)
}

// seatClassPerks mirrors the per-tier feature lines of the demo data.
func seatClassPerks(code string) []string {
	perks := []string{"Assigned Seat"}
	switch code {
	case "BC":
		perks = append(perks, "Extra Legroom")
	case "FC":
		perks = append(perks, "Extra Legroom", "Meal Service")
	}
	return perks
}

// renderPassengerInfo shows the passenger form and the booking summary.
func (p *BookingPresenter) renderPassengerInfo() fyne.CanvasObject {
	m := p.wizard.Model()

	backButton := widget.NewButtonWithIcon("Back", components.IconBack.Resource(), func() {
		p.handleGoBack()
	})

	// Re-seed entries from the model so typed input survives a go-back
	// round trip; edits flow back through the field-edit intent.
	p.gui.NameEntry.OnChanged = nil
	p.gui.EmailEntry.OnChanged = nil
	p.gui.PhoneEntry.OnChanged = nil
	p.gui.AddressEntry.OnChanged = nil
	p.gui.NameEntry.SetText(m.Passenger.FullName)
	p.gui.EmailEntry.SetText(m.Passenger.Email)
	p.gui.PhoneEntry.SetText(m.Passenger.Phone)
	p.gui.AddressEntry.SetText(m.Passenger.Address)
	p.gui.NameEntry.OnChanged = func(v string) { p.handleFieldEdit(models.FieldFullName, v) }
	p.gui.EmailEntry.OnChanged = func(v string) { p.handleFieldEdit(models.FieldEmail, v) }
	p.gui.PhoneEntry.OnChanged = func(v string) { p.handleFieldEdit(models.FieldPhone, v) }
	p.gui.AddressEntry.OnChanged = func(v string) { p.handleFieldEdit(models.FieldAddress, v) }

	form := widget.NewForm(
		widget.NewFormItem("Full Name *", p.gui.NameEntry),
		widget.NewFormItem("Email Address *", p.gui.EmailEntry),
		widget.NewFormItem("Phone Number *", p.gui.PhoneEntry),
		widget.NewFormItem("Address", p.gui.AddressEntry),
	)

	total := p.wizard.TotalPrice()
	p.gui.SubmitButton = widget.NewButtonWithIcon(
		fmt.Sprintf("Confirm & Pay $%d", total),
		components.IconConfirm.Resource(),
		func() { p.handleSubmit() },
	)
	p.gui.SubmitButton.Importance = widget.HighImportance

	summary := widget.NewCard("Booking Summary", "", container.NewVBox(
		summaryRow("Train", m.SelectedOffer.Name),
		summaryRow("Date", p.query.Date),
		summaryRow("Time", m.SelectedOffer.DepartureTime+" - "+m.SelectedOffer.ArrivalTime),
		summaryRow("Route", p.query.Origin+" → "+p.query.Destination),
		summaryRow("Seat Type", m.SelectedSeatClass.Name),
		widget.NewSeparator(),
		summaryRow("Total", fmt.Sprintf("$%d", total)),
	))

	return container.NewVBox(
		container.NewHBox(backButton,
			widget.NewIcon(components.IconPassenger.Resource()),
			widget.NewLabel("Passenger Details")),
		container.NewGridWithColumns(2,
			container.NewVBox(form, p.gui.SubmitButton),
			summary,
		),
	)
}

// renderConfirmation is shown between a successful submission and the
// delayed reset back to the first step.
func (p *BookingPresenter) renderConfirmation() fyne.CanvasObject {
	conf := p.lastConfirmation

	title := widget.NewLabel(fmt.Sprintf("Booking confirmed for %s!", conf.OfferName))
	title.TextStyle = fyne.TextStyle{Bold: true}

	return container.NewVBox(
		container.NewHBox(widget.NewIcon(components.IconConfirm.Resource()), title),
		widget.NewCard("Your Booking", "", container.NewVBox(
			summaryRow("Reference", conf.Reference),
			summaryRow("Train", conf.OfferName),
			summaryRow("Seat Type", conf.SeatClassName),
			summaryRow("Passenger", conf.Passenger.FullName),
			summaryRow("Total Paid", fmt.Sprintf("$%d", conf.TotalPrice)),
		)),
		widget.NewLabel("Your e-ticket will be sent to your email. Returning to search..."),
	)
}

func summaryRow(name, value string) fyne.CanvasObject {
	valueLabel := widget.NewLabel(value)
	valueLabel.TextStyle = fyne.TextStyle{Bold: true}
	return container.NewHBox(widget.NewLabel(name), layout.NewSpacer(), valueLabel)
}
