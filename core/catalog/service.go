package catalog

import (
	"context"
	"time"

	"railroute/internal/debuglog"
)

// Service delivers offers for a query, exactly once per call, after a fixed
// delay that stands in for network latency.
type Service struct {
	offers []Offer
	delay  time.Duration
}

// NewService parses the fixture once and keeps the parsed offers for the
// lifetime of the process.
func NewService(fixture []byte, delay time.Duration) (*Service, error) {
	offers, err := ParseFixture(fixture)
	if err != nil {
		return nil, err
	}
	return &Service{offers: offers, delay: delay}, nil
}

// FetchOffers returns the offers for the given query. The call blocks for
// the configured delay unless ctx is canceled first. Each call returns a
// fresh result set so one booking session can never observe another's
// slice.
func (s *Service) FetchOffers(ctx context.Context, q Query) ([]*Offer, error) {
	debuglog.VerboseLog("catalog: fetching offers for %s -> %s on %s (%d pax)",
		q.Origin, q.Destination, q.Date, q.Passengers)

	select {
	case <-time.After(s.delay):
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	results := make([]*Offer, 0, len(s.offers))
	for i := range s.offers {
		offer := s.offers[i]
		offer.SeatClasses = append([]SeatClass(nil), s.offers[i].SeatClasses...)
		offer.Amenities = append([]string(nil), s.offers[i].Amenities...)
		results = append(results, &offer)
	}
	return results, nil
}
