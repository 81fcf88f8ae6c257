package get_quote

import (
	"time"

	"github.com/Ha-Xuan-Hau/SU25-SE490-G78-RFT-sub001/internal/domain"
)

// Request asks for a price quote for one vehicle over one rental window.
type Request struct {
	VehicleID int64
	Start     time.Time
	End       time.Time
}

// Response is the advisory quote the frontend shows while the renter picks
// a window. The backend recomputes the price at booking time.
type Response struct {
	VehicleID      int64
	Start          time.Time
	End            time.Time
	PriceType      domain.PriceType
	BillingDays    int
	BillingHours   int
	BillingMinutes int
	TotalCost      float64
	DurationLabel  string
}
