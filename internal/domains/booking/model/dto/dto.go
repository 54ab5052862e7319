package dto

import (
	"strconv"
	"time"

	"tatkal/internal/domains/booking/model"
)

// CreateBookingRequest carries the quote context across the availability ->
// booking boundary as flat strings, the way the original client posts it.
// Numeric fields are re-parsed server-side.
type CreateBookingRequest struct {
	TrainID     string                    `json:"train_id"    validate:"required"`
	TrainName   string                    `json:"train_name"  validate:"required"`
	Source      string                    `json:"source"      validate:"required"`
	Destination string                    `json:"destination" validate:"required"`
	Date        string                    `json:"date"        validate:"required"`
	Class       string                    `json:"class"       validate:"required"`
	Quota       string                    `json:"quota"       validate:"required"`
	Fare        string                    `json:"fare"        validate:"required,numeric"`
	Available   string                    `json:"available"   validate:"required,numeric"`
	Passengers  []BookingPassengerRequest `json:"passengers"  validate:"required,min=1,dive"`
}

type BookingPassengerRequest struct {
	Name   string `json:"name"   validate:"required"`
	Age    int    `json:"age"    validate:"required,gte=1,lte=120"`
	Gender string `json:"gender" validate:"omitempty,oneof=male female other"`
	Berth  string `json:"berth"  validate:"omitempty"`
}

func (r *CreateBookingRequest) FareValue() (int, error) {
	return strconv.Atoi(r.Fare)
}

func (r *CreateBookingRequest) AvailableValue() (int, error) {
	return strconv.Atoi(r.Available)
}

func (r *CreateBookingRequest) PassengerDetails() []model.PassengerDetail {
	details := make([]model.PassengerDetail, len(r.Passengers))
	for i, p := range r.Passengers {
		details[i] = model.PassengerDetail{
			Name:   p.Name,
			Age:    p.Age,
			Gender: p.Gender,
			Berth:  p.Berth,
		}
	}

	return details
}

type BookingPassengerResponse struct {
	Name   string `json:"name"`
	Age    int    `json:"age"`
	Gender string `json:"gender,omitempty"`
	Berth  string `json:"berth,omitempty"`
}

type BookingResponse struct {
	ID          string                     `json:"id"`
	PNR         string                     `json:"pnr"`
	TrainID     string                     `json:"train_id"`
	TrainName   string                     `json:"train_name"`
	Source      string                     `json:"source"`
	Destination string                     `json:"destination"`
	Date        string                     `json:"date"`
	Class       string                     `json:"class"`
	Quota       string                     `json:"quota"`
	Passengers  []BookingPassengerResponse `json:"passengers"`
	Fare        int                        `json:"fare"`
	Status      string                     `json:"status"`
	BookingDate time.Time                  `json:"booking_date"`
}

func (r *BookingResponse) FromModel(m model.Booking) {
	r.ID = m.ID
	r.PNR = m.PNR
	r.TrainID = m.TrainID
	r.TrainName = m.TrainName
	r.Source = m.Source
	r.Destination = m.Destination
	r.Date = m.Date
	r.Class = m.Class
	r.Quota = m.Quota
	r.Fare = m.Fare
	r.Status = m.Status
	r.BookingDate = m.BookingDate

	r.Passengers = make([]BookingPassengerResponse, len(m.Passengers))
	for i, p := range m.Passengers {
		r.Passengers[i] = BookingPassengerResponse{
			Name:   p.Name,
			Age:    p.Age,
			Gender: p.Gender,
			Berth:  p.Berth,
		}
	}
}

type GetBookingsResponse struct {
	Bookings  []BookingResponse `json:"bookings"`
	TotalData int               `json:"total_data"`
}

func (r *GetBookingsResponse) FromModels(models []model.Booking) {
	r.TotalData = len(models)

	r.Bookings = make([]BookingResponse, len(models))
	for i, mod := range models {
		r.Bookings[i].FromModel(mod)
	}
}
