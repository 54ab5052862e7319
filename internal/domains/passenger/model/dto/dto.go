package dto

import (
	"time"

	"github.com/google/uuid"

	"tatkal/internal/domains/passenger/model"
	"tatkal/shared/timezone"
)

type CreatePassengerRequest struct {
	Name   string `json:"name"   validate:"required"`
	Age    int    `json:"age"    validate:"required,gte=1,lte=120"`
	Gender string `json:"gender" validate:"required,oneof=male female other"`
	Berth  string `json:"berth"  validate:"omitempty,oneof=no-preference lower middle upper side-lower side-upper"`
}

func (r *CreatePassengerRequest) ToModel() model.Passenger {
	berth := r.Berth
	if berth == "" {
		berth = model.BerthNoPreference
	}

	return model.Passenger{
		ID:        uuid.NewString(),
		Name:      r.Name,
		Age:       r.Age,
		Gender:    r.Gender,
		Berth:     berth,
		CreatedAt: timezone.Now(),
	}
}

type UpdatePassengerRequest struct {
	Name   string `json:"name"   validate:"required"`
	Age    int    `json:"age"    validate:"required,gte=1,lte=120"`
	Gender string `json:"gender" validate:"required,oneof=male female other"`
	Berth  string `json:"berth"  validate:"omitempty,oneof=no-preference lower middle upper side-lower side-upper"`
}

type PassengerResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Age       int       `json:"age"`
	Gender    string    `json:"gender"`
	Berth     string    `json:"berth"`
	CreatedAt time.Time `json:"created_at"`
}

func (r *PassengerResponse) FromModel(m model.Passenger) {
	r.ID = m.ID
	r.Name = m.Name
	r.Age = m.Age
	r.Gender = m.Gender
	r.Berth = m.Berth
	r.CreatedAt = m.CreatedAt
}

type GetPassengersResponse struct {
	Passengers []PassengerResponse `json:"passengers"`
	TotalData  int                 `json:"total_data"`
}

func (r *GetPassengersResponse) FromModels(models []model.Passenger) {
	r.TotalData = len(models)

	r.Passengers = make([]PassengerResponse, len(models))
	for i, mod := range models {
		r.Passengers[i].FromModel(mod)
	}
}
