package vehicleservice

import "github.com/Ha-Xuan-Hau/SU25-SE490-G78-RFT-sub001/internal/domain"

// Vehicle is the vehicle payload of the main RFT backend.
type Vehicle struct {
	ID          int64   `json:"id"`
	ProviderID  int64   `json:"userId"`
	Name        string  `json:"thumb"`
	VehicleType string  `json:"vehicleType"`
	OpenTime    string  `json:"openTime"`
	CloseTime   string  `json:"closeTime"`
	CostPerDay  float64 `json:"costPerDay"`
	CostPerHour float64 `json:"costPerHour"`
	Status      string  `json:"status"`
}

// ToDomain converts the wire payload into the domain vehicle.
func (v *Vehicle) ToDomain() *domain.Vehicle {
	return &domain.Vehicle{
		ID:          v.ID,
		ProviderID:  v.ProviderID,
		Name:        v.Name,
		VehicleType: domain.VehicleType(v.VehicleType),
		OpenTime:    v.OpenTime,
		CloseTime:   v.CloseTime,
		CostPerDay:  v.CostPerDay,
		CostPerHour: v.CostPerHour,
		Status:      v.Status,
	}
}

// ErrorResponse is the backend's error payload.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Logger is the logging interface the client needs.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
