// Package catalog supplies the train offers shown in the booking flow.
//
// In this demo the catalog is a static fixture shipped with the binary
// (assets/offers.jsonc, optionally overridden by a file of the same name
// next to the executable). A real deployment would replace Service with a
// network-backed inventory lookup behind the same interface.
package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/muhammadmuzzammil1998/jsonc"
	"railroute/internal/constants"
	"railroute/internal/debuglog"
)

// SeatClass is one fare tier within an Offer. Codes are open-ended strings
// (EC/BC/FC today) so future tiers need no code change.
type SeatClass struct {
	Code      string `json:"code"`
	Name      string `json:"name"`
	Surcharge int    `json:"surcharge"`
	Available int    `json:"available"`
}

// Offer is one bookable train journey. Offers are immutable once parsed;
// the booking wizard only ever holds non-owning references into a fetched
// result set.
type Offer struct {
	ID            string      `json:"id"`
	Name          string      `json:"name"`
	DepartureTime string      `json:"departure_time"`
	ArrivalTime   string      `json:"arrival_time"`
	Duration      string      `json:"duration"`
	BasePrice     int         `json:"base_price"`
	SeatClasses   []SeatClass `json:"seat_classes"`
	Amenities     []string    `json:"amenities"`
}

// SeatClassByCode returns the seat class with the given code, or nil.
func (o *Offer) SeatClassByCode(code string) *SeatClass {
	for i := range o.SeatClasses {
		if o.SeatClasses[i].Code == code {
			return &o.SeatClasses[i]
		}
	}
	return nil
}

// Query carries the search inputs. All fields are opaque to the catalog in
// this demo; a real provider would filter on them.
type Query struct {
	Origin      string
	Destination string
	Date        string
	Passengers  int
}

type offersFile struct {
	Offers []Offer `json:"offers"`
}

// ParseFixture parses an offers fixture. The fixture format is JSONC so the
// shipped file can carry comments.
func ParseFixture(data []byte) ([]Offer, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("offers fixture is empty")
	}

	jsonBytes := jsonc.ToJSON(data)
	if !json.Valid(jsonBytes) {
		return nil, fmt.Errorf("offers fixture is not valid JSON(C)")
	}

	var file offersFile
	if err := json.Unmarshal(jsonBytes, &file); err != nil {
		return nil, fmt.Errorf("failed to parse offers fixture: %w", err)
	}
	if len(file.Offers) == 0 {
		return nil, fmt.Errorf("offers fixture contains no offers")
	}

	for i, offer := range file.Offers {
		if err := validateOffer(&offer); err != nil {
			return nil, fmt.Errorf("offer %d: %w", i, err)
		}
	}

	return file.Offers, nil
}

func validateOffer(o *Offer) error {
	if o.ID == "" {
		return fmt.Errorf("offer id is empty")
	}
	if o.Name == "" {
		return fmt.Errorf("offer name is empty")
	}
	if o.BasePrice < 0 {
		return fmt.Errorf("offer base price is negative (%d)", o.BasePrice)
	}
	if len(o.SeatClasses) == 0 {
		return fmt.Errorf("offer has no seat classes")
	}
	for j, sc := range o.SeatClasses {
		if sc.Code == "" {
			return fmt.Errorf("seat class %d: code is empty", j)
		}
		if sc.Surcharge < 0 {
			return fmt.Errorf("seat class %d: surcharge is negative (%d)", j, sc.Surcharge)
		}
		if sc.Available < 0 {
			return fmt.Errorf("seat class %d: availability is negative (%d)", j, sc.Available)
		}
	}
	return nil
}

// ReadFixture returns the offers fixture bytes, preferring an override file
// next to the executable over the embedded default.
func ReadFixture(execDir string, embedded []byte) []byte {
	overridePath := filepath.Join(execDir, constants.OffersFixtureName)
	data, err := os.ReadFile(overridePath)
	if err != nil {
		return embedded
	}
	debuglog.InfoLog("catalog: using offers override from %s", overridePath)
	return data
}
