package get_quote

import (
	getQuote "github.com/Ha-Xuan-Hau/SU25-SE490-G78-RFT-sub001/internal/usecase/get_quote"
	"github.com/Ha-Xuan-Hau/SU25-SE490-G78-RFT-sub001/pkg/vntime"
)

// QuoteResponse is the HTTP response model.
type QuoteResponse struct {
	VehicleID      int64   `json:"vehicleId"`
	Start          string  `json:"start"`
	End            string  `json:"end"`
	PriceType      string  `json:"priceType"`
	BillingDays    int     `json:"billingDays"`
	BillingHours   int     `json:"billingHours"`
	BillingMinutes int     `json:"billingMinutes"`
	TotalCost      float64 `json:"totalCost"`
	DurationLabel  string  `json:"durationLabel"`
}

// FromUseCaseResponse converts the use case response into the HTTP model.
func FromUseCaseResponse(resp *getQuote.Response) *QuoteResponse {
	return &QuoteResponse{
		VehicleID:      resp.VehicleID,
		Start:          vntime.Format(resp.Start),
		End:            vntime.Format(resp.End),
		PriceType:      string(resp.PriceType),
		BillingDays:    resp.BillingDays,
		BillingHours:   resp.BillingHours,
		BillingMinutes: resp.BillingMinutes,
		TotalCost:      resp.TotalCost,
		DurationLabel:  resp.DurationLabel,
	}
}

// ToUseCaseRequest builds the use case request from the parsed URL parts.
func ToUseCaseRequest(vehicleID int64, startStr, endStr string) (*getQuote.Request, error) {
	start, err := vntime.ParseString(startStr)
	if err != nil {
		return nil, err
	}

	end, err := vntime.ParseString(endStr)
	if err != nil {
		return nil, err
	}

	return &getQuote.Request{
		VehicleID: vehicleID,
		Start:     start,
		End:       end,
	}, nil
}
