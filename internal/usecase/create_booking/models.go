package create_booking

import (
	"time"

	"github.com/Ha-Xuan-Hau/SU25-SE490-G78-RFT-sub001/internal/domain"
)

// Request carries the renter's booking intent. Start and End are already
// normalized absolute instants; the wire decoding happens in the handler.
type Request struct {
	RenterID  int64
	VehicleID int64
	Start     time.Time
	End       time.Time
}

// Response is the created booking, with the window kept as instants. The
// handler renders them back into the civil wire format.
type Response struct {
	ID          int64
	RenterID    int64
	VehicleID   int64
	Start       time.Time
	End         time.Time
	Status      string
	VehicleName *string
	TotalCost   float64
	PriceType   domain.PriceType
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
