package business

import (
	"errors"
	"testing"
	"time"

	"railroute/core/catalog"
	"railroute/ui/booking/models"
)

func testOffers() []*catalog.Offer {
	return []*catalog.Offer{
		{
			ID:            "TR001",
			Name:          "Pacific Express",
			DepartureTime: "08:30",
			ArrivalTime:   "12:45",
			Duration:      "4h 15m",
			BasePrice:     120,
			SeatClasses: []catalog.SeatClass{
				{Code: "EC", Name: "Economy", Surcharge: 0, Available: 42},
				{Code: "BC", Name: "Business", Surcharge: 65, Available: 28},
				{Code: "FC", Name: "First Class", Surcharge: 120, Available: 0},
			},
			Amenities: []string{"WiFi", "Dining Car"},
		},
		{
			ID:            "TR002",
			Name:          "Mountain Explorer",
			DepartureTime: "10:15",
			ArrivalTime:   "15:20",
			Duration:      "5h 05m",
			BasePrice:     95,
			SeatClasses: []catalog.SeatClass{
				{Code: "EC", Name: "Economy", Surcharge: 0, Available: 56},
				{Code: "BC", Name: "Business", Surcharge: 45, Available: 22},
			},
			Amenities: []string{"WiFi"},
		},
	}
}

func newLoadedWizard(t *testing.T, opts ...Option) *Wizard {
	t.Helper()
	w := NewWizard(opts...)
	w.LoadCatalog(testOffers())
	if len(w.Model().Catalog) != 2 {
		t.Fatalf("Expected 2 offers in catalog, got %d", len(w.Model().Catalog))
	}
	return w
}

func fillValidPassenger(t *testing.T, w *Wizard) {
	t.Helper()
	for field, value := range map[models.PassengerField]string{
		models.FieldFullName: "Jane Doe",
		models.FieldEmail:    "jane@x.com",
		models.FieldPhone:    "555-123-4567",
	} {
		if err := w.UpdateField(field, value); err != nil {
			t.Fatalf("UpdateField(%v): unexpected error: %v", field, err)
		}
	}
}

// advanceToPassengerInfo selects the first offer and its business class.
func advanceToPassengerInfo(t *testing.T, w *Wizard) {
	t.Helper()
	offer := w.Model().Catalog[0]
	if err := w.SelectOffer(offer); err != nil {
		t.Fatalf("SelectOffer: unexpected error: %v", err)
	}
	if err := w.SelectSeatClass(offer.SeatClassByCode("BC")); err != nil {
		t.Fatalf("SelectSeatClass: unexpected error: %v", err)
	}
	if w.Model().CurrentStep != models.StepPassengerInfo {
		t.Fatalf("Expected passenger step, got %s", w.Model().CurrentStep)
	}
}

func TestLoadCatalog(t *testing.T) {
	t.Run("Populates empty catalog", func(t *testing.T) {
		w := NewWizard()
		w.LoadCatalog(testOffers())
		if len(w.Model().Catalog) != 2 {
			t.Errorf("Expected 2 offers, got %d", len(w.Model().Catalog))
		}
	})

	t.Run("Second delivery is a no-op", func(t *testing.T) {
		w := newLoadedWizard(t)
		first := w.Model().Catalog
		w.LoadCatalog([]*catalog.Offer{{ID: "TR099", Name: "Ghost Train"}})
		if len(w.Model().Catalog) != 2 {
			t.Errorf("Expected catalog unchanged, got %d offers", len(w.Model().Catalog))
		}
		for i := range first {
			if w.Model().Catalog[i] != first[i] {
				t.Errorf("Catalog entry %d was replaced", i)
			}
		}
	})

	t.Run("Delivery after leaving first step is a no-op", func(t *testing.T) {
		w := newLoadedWizard(t)
		if err := w.SelectOffer(w.Model().Catalog[0]); err != nil {
			t.Fatalf("SelectOffer: %v", err)
		}
		w.LoadCatalog([]*catalog.Offer{{ID: "TR099"}})
		if len(w.Model().Catalog) != 2 {
			t.Errorf("Expected catalog unchanged, got %d offers", len(w.Model().Catalog))
		}
	})

	t.Run("Delivery after dispose is ignored", func(t *testing.T) {
		w := NewWizard()
		w.Dispose()
		w.LoadCatalog(testOffers())
		if len(w.Model().Catalog) != 0 {
			t.Errorf("Expected empty catalog on disposed wizard, got %d", len(w.Model().Catalog))
		}
	})
}

func TestSelectOffer(t *testing.T) {
	t.Run("Transitions to seat selection", func(t *testing.T) {
		w := newLoadedWizard(t)
		offer := w.Model().Catalog[0]
		if err := w.SelectOffer(offer); err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if w.Model().CurrentStep != models.StepChooseSeat {
			t.Errorf("Expected seat step, got %s", w.Model().CurrentStep)
		}
		if w.Model().SelectedOffer != offer {
			t.Error("Expected SelectedOffer to be the chosen offer")
		}
	})

	t.Run("Rejects offer outside the catalog", func(t *testing.T) {
		w := newLoadedWizard(t)
		foreign := &catalog.Offer{ID: "TR003", Name: "Coastal Liner"}
		err := w.SelectOffer(foreign)
		var perr *PreconditionError
		if !errors.As(err, &perr) {
			t.Fatalf("Expected PreconditionError, got %v", err)
		}
		if w.Model().SelectedOffer != nil {
			t.Error("Expected no selection after rejected offer")
		}
	})

	t.Run("Rejects when not on first step", func(t *testing.T) {
		w := newLoadedWizard(t)
		offer := w.Model().Catalog[0]
		if err := w.SelectOffer(offer); err != nil {
			t.Fatalf("SelectOffer: %v", err)
		}
		if err := w.SelectOffer(offer); err == nil {
			t.Error("Expected precondition error on second SelectOffer")
		}
	})
}

func TestSelectOfferGoBackRoundTrip(t *testing.T) {
	w := newLoadedWizard(t)
	if err := w.SelectOffer(w.Model().Catalog[0]); err != nil {
		t.Fatalf("SelectOffer: %v", err)
	}
	if err := w.GoBack(); err != nil {
		t.Fatalf("GoBack: %v", err)
	}

	m := w.Model()
	if m.CurrentStep != models.StepSelectTrain {
		t.Errorf("Expected first step after round trip, got %s", m.CurrentStep)
	}
	if m.SelectedOffer != nil {
		t.Error("Expected SelectedOffer cleared after round trip")
	}
	if len(m.Catalog) != 2 {
		t.Errorf("Expected catalog unchanged, got %d offers", len(m.Catalog))
	}
}

func TestSelectSeatClass(t *testing.T) {
	t.Run("Transitions to passenger step", func(t *testing.T) {
		w := newLoadedWizard(t)
		offer := w.Model().Catalog[0]
		if err := w.SelectOffer(offer); err != nil {
			t.Fatalf("SelectOffer: %v", err)
		}
		seat := offer.SeatClassByCode("BC")
		if err := w.SelectSeatClass(seat); err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if w.Model().CurrentStep != models.StepPassengerInfo {
			t.Errorf("Expected passenger step, got %s", w.Model().CurrentStep)
		}
		if w.Model().SelectedSeatClass != seat {
			t.Error("Expected SelectedSeatClass to be the chosen tier")
		}
	})

	t.Run("Sold-out tier has no effect", func(t *testing.T) {
		w := newLoadedWizard(t)
		offer := w.Model().Catalog[0]
		if err := w.SelectOffer(offer); err != nil {
			t.Fatalf("SelectOffer: %v", err)
		}
		soldOut := offer.SeatClassByCode("FC")
		if soldOut.Available != 0 {
			t.Fatalf("Fixture error: expected FC to be sold out")
		}
		if err := w.SelectSeatClass(soldOut); err != nil {
			t.Fatalf("Expected silent no-op for sold-out tier, got %v", err)
		}
		if w.Model().CurrentStep != models.StepChooseSeat {
			t.Errorf("Expected to stay on seat step, got %s", w.Model().CurrentStep)
		}
		if w.Model().SelectedSeatClass != nil {
			t.Error("Expected no seat selection after sold-out tap")
		}
	})

	t.Run("Rejects tier of another offer", func(t *testing.T) {
		w := newLoadedWizard(t)
		if err := w.SelectOffer(w.Model().Catalog[0]); err != nil {
			t.Fatalf("SelectOffer: %v", err)
		}
		foreign := w.Model().Catalog[1].SeatClassByCode("EC")
		err := w.SelectSeatClass(foreign)
		var perr *PreconditionError
		if !errors.As(err, &perr) {
			t.Fatalf("Expected PreconditionError, got %v", err)
		}
	})

	t.Run("Rejects when not on seat step", func(t *testing.T) {
		w := newLoadedWizard(t)
		seat := w.Model().Catalog[0].SeatClassByCode("EC")
		if err := w.SelectSeatClass(seat); err == nil {
			t.Error("Expected precondition error on first step")
		}
	})
}

func TestGoBack(t *testing.T) {
	t.Run("Clears only the vacated selection", func(t *testing.T) {
		w := newLoadedWizard(t)
		advanceToPassengerInfo(t, w)
		fillValidPassenger(t, w)

		if err := w.GoBack(); err != nil {
			t.Fatalf("GoBack: %v", err)
		}
		m := w.Model()
		if m.CurrentStep != models.StepChooseSeat {
			t.Errorf("Expected seat step, got %s", m.CurrentStep)
		}
		if m.SelectedSeatClass != nil {
			t.Error("Expected seat selection cleared")
		}
		if m.SelectedOffer == nil {
			t.Error("Expected offer selection kept")
		}
		if m.Passenger.FullName != "Jane Doe" {
			t.Errorf("Expected passenger fields kept, got %q", m.Passenger.FullName)
		}

		if err := w.GoBack(); err != nil {
			t.Fatalf("GoBack: %v", err)
		}
		if m.CurrentStep != models.StepSelectTrain {
			t.Errorf("Expected first step, got %s", m.CurrentStep)
		}
		if m.SelectedOffer != nil {
			t.Error("Expected offer selection cleared")
		}
	})

	t.Run("Rejected on the first step", func(t *testing.T) {
		w := newLoadedWizard(t)
		if err := w.GoBack(); err == nil {
			t.Error("Expected precondition error on first step")
		}
	})
}

func TestUpdateField(t *testing.T) {
	t.Run("Writes verbatim", func(t *testing.T) {
		w := newLoadedWizard(t)
		advanceToPassengerInfo(t, w)
		if err := w.UpdateField(models.FieldPhone, " (555) 123-4567 "); err != nil {
			t.Fatalf("UpdateField: %v", err)
		}
		if got := w.Model().Passenger.Phone; got != " (555) 123-4567 " {
			t.Errorf("Expected verbatim write, got %q", got)
		}
	})

	t.Run("Rejected outside passenger step", func(t *testing.T) {
		w := newLoadedWizard(t)
		if err := w.UpdateField(models.FieldFullName, "Jane"); err == nil {
			t.Error("Expected precondition error on first step")
		}
	})
}

func TestSubmitBooking(t *testing.T) {
	t.Run("Success computes total and schedules reset", func(t *testing.T) {
		resetDone := make(chan struct{})
		w := newLoadedWizard(t,
			WithResetDelay(10*time.Millisecond),
			WithOnReset(func() { close(resetDone) }),
		)
		advanceToPassengerInfo(t, w)
		fillValidPassenger(t, w)

		conf, err := w.SubmitBooking()
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if conf.OfferName != "Pacific Express" {
			t.Errorf("Expected offer name in confirmation, got %q", conf.OfferName)
		}
		if conf.TotalPrice != 120+65 {
			t.Errorf("Expected total 185, got %d", conf.TotalPrice)
		}
		if conf.Reference == "" {
			t.Error("Expected a booking reference")
		}
		if !w.Model().Submitting {
			t.Error("Expected Submitting set after successful submission")
		}

		select {
		case <-resetDone:
		case <-time.After(time.Second):
			t.Fatal("Reset did not fire")
		}

		m := w.Model()
		if m.CurrentStep != models.StepSelectTrain {
			t.Errorf("Expected first step after reset, got %s", m.CurrentStep)
		}
		if m.SelectedOffer != nil || m.SelectedSeatClass != nil {
			t.Error("Expected selections cleared after reset")
		}
		if m.Passenger != (models.PassengerDetails{}) {
			t.Errorf("Expected passenger fields cleared, got %+v", m.Passenger)
		}
		if m.Submitting {
			t.Error("Expected Submitting cleared after reset")
		}
		if len(m.Catalog) != 2 {
			t.Errorf("Expected catalog retained, got %d offers", len(m.Catalog))
		}
	})

	t.Run("Duplicate submission is rejected", func(t *testing.T) {
		w := newLoadedWizard(t, WithResetDelay(time.Minute))
		defer w.Dispose()
		advanceToPassengerInfo(t, w)
		fillValidPassenger(t, w)

		if _, err := w.SubmitBooking(); err != nil {
			t.Fatalf("First submission failed: %v", err)
		}
		_, err := w.SubmitBooking()
		var perr *PreconditionError
		if !errors.As(err, &perr) {
			t.Fatalf("Expected PreconditionError for double submit, got %v", err)
		}
	})

	t.Run("Validation failures leave state as entered", func(t *testing.T) {
		cases := []struct {
			name  string
			email string
			phone string
			kind  ValidationKind
		}{
			{"Invalid email", "not-an-email", "555-123-4567", InvalidEmail},
			{"Phone too short", "jane@x.com", "12345", InvalidPhone},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				w := newLoadedWizard(t)
				advanceToPassengerInfo(t, w)
				if err := w.UpdateField(models.FieldFullName, "Jane Doe"); err != nil {
					t.Fatalf("UpdateField: %v", err)
				}
				if err := w.UpdateField(models.FieldEmail, tc.email); err != nil {
					t.Fatalf("UpdateField: %v", err)
				}
				if err := w.UpdateField(models.FieldPhone, tc.phone); err != nil {
					t.Fatalf("UpdateField: %v", err)
				}

				_, err := w.SubmitBooking()
				var verr *ValidationError
				if !errors.As(err, &verr) {
					t.Fatalf("Expected ValidationError, got %v", err)
				}
				if verr.Kind != tc.kind {
					t.Errorf("Expected kind %v, got %v", tc.kind, verr.Kind)
				}

				m := w.Model()
				if m.CurrentStep != models.StepPassengerInfo {
					t.Errorf("Expected to stay on passenger step, got %s", m.CurrentStep)
				}
				if m.Passenger.Email != tc.email || m.Passenger.Phone != tc.phone {
					t.Error("Expected fields left as entered after failure")
				}
				if m.Submitting {
					t.Error("Expected Submitting unset after failure")
				}
			})
		}
	})

	t.Run("Formatted 10-digit phone is accepted", func(t *testing.T) {
		w := newLoadedWizard(t, WithResetDelay(time.Minute))
		defer w.Dispose()
		advanceToPassengerInfo(t, w)
		fillValidPassenger(t, w)
		if err := w.UpdateField(models.FieldPhone, "(555) 123-4567"); err != nil {
			t.Fatalf("UpdateField: %v", err)
		}
		if _, err := w.SubmitBooking(); err != nil {
			t.Errorf("Expected formatted phone to pass, got %v", err)
		}
	})

	t.Run("Rejected before selections exist", func(t *testing.T) {
		w := newLoadedWizard(t)
		if _, err := w.SubmitBooking(); err == nil {
			t.Error("Expected precondition error on first step")
		}
	})
}

func TestDisposeCancelsReset(t *testing.T) {
	resetFired := false
	w := newLoadedWizard(t,
		WithResetDelay(20*time.Millisecond),
		WithOnReset(func() { resetFired = true }),
	)
	advanceToPassengerInfo(t, w)
	fillValidPassenger(t, w)

	if _, err := w.SubmitBooking(); err != nil {
		t.Fatalf("SubmitBooking: %v", err)
	}
	w.Dispose()

	time.Sleep(100 * time.Millisecond)
	if resetFired {
		t.Error("Expected reset callback suppressed after dispose")
	}
	if w.Model().CurrentStep != models.StepPassengerInfo {
		t.Errorf("Expected disposed state untouched, got %s", w.Model().CurrentStep)
	}
}

func TestDisplayPrice(t *testing.T) {
	t.Run("Base plus surcharge", func(t *testing.T) {
		offers := testOffers()
		if got := DisplayPrice(offers[0], offers[0].SeatClassByCode("BC")); got != 185 {
			t.Errorf("Expected 185, got %d", got)
		}
	})

	t.Run("Recomputed after offer changes", func(t *testing.T) {
		w := newLoadedWizard(t)
		first := w.Model().Catalog[0]
		second := w.Model().Catalog[1]

		if err := w.SelectOffer(first); err != nil {
			t.Fatalf("SelectOffer: %v", err)
		}
		if got := DisplayPrice(w.Model().SelectedOffer, first.SeatClassByCode("BC")); got != 185 {
			t.Errorf("Expected 185 for first offer, got %d", got)
		}

		if err := w.GoBack(); err != nil {
			t.Fatalf("GoBack: %v", err)
		}
		if err := w.SelectOffer(second); err != nil {
			t.Fatalf("SelectOffer: %v", err)
		}
		if got := DisplayPrice(w.Model().SelectedOffer, second.SeatClassByCode("BC")); got != 95+45 {
			t.Errorf("Expected 140 for second offer, got %d", got)
		}
	})

	t.Run("Nil selections price as zero", func(t *testing.T) {
		if got := DisplayPrice(nil, nil); got != 0 {
			t.Errorf("Expected 0, got %d", got)
		}
	})
}
