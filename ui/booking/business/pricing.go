package business

import (
	"railroute/core/catalog"
)

// DisplayPrice is the price shown for a seat class on a given offer:
// base price plus the tier surcharge. It is a pure projection, recomputed
// from the current selections on every render and never stored.
func DisplayPrice(offer *catalog.Offer, seatClass *catalog.SeatClass) int {
	if offer == nil || seatClass == nil {
		return 0
	}
	return offer.BasePrice + seatClass.Surcharge
}
