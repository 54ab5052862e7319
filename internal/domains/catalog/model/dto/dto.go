package dto

import (
	"github.com/google/uuid"

	"tatkal/internal/domains/catalog/model"
)

type CreateTrainRequest struct {
	TrainNo       string `json:"train_no"       validate:"required"`
	Name          string `json:"name"           validate:"required"`
	Source        string `json:"source"         validate:"required"`
	Destination   string `json:"destination"    validate:"required"`
	DepartureTime string `json:"departure_time" validate:"required"`
	ArrivalTime   string `json:"arrival_time"   validate:"required"`
	Duration      string `json:"duration"       validate:"required"`
	Classes       string `json:"classes"        validate:"required"`
}

func (r *CreateTrainRequest) ToModel() model.Train {
	return model.Train{
		ID:            uuid.NewString(),
		TrainNo:       r.TrainNo,
		Name:          r.Name,
		Source:        r.Source,
		Destination:   r.Destination,
		DepartureTime: r.DepartureTime,
		ArrivalTime:   r.ArrivalTime,
		Duration:      r.Duration,
		Classes:       model.ParseClasses(r.Classes),
	}
}

type TrainResponse struct {
	ID            string   `json:"id"`
	TrainNo       string   `json:"train_no"`
	Name          string   `json:"name"`
	Source        string   `json:"source"`
	Destination   string   `json:"destination"`
	DepartureTime string   `json:"departure_time"`
	ArrivalTime   string   `json:"arrival_time"`
	Duration      string   `json:"duration"`
	Classes       []string `json:"classes"`
}

func (r *TrainResponse) FromModel(m model.Train) {
	r.ID = m.ID
	r.TrainNo = m.TrainNo
	r.Name = m.Name
	r.Source = m.Source
	r.Destination = m.Destination
	r.DepartureTime = m.DepartureTime
	r.ArrivalTime = m.ArrivalTime
	r.Duration = m.Duration
	r.Classes = m.Classes
}

type GetTrainsResponse struct {
	Trains    []TrainResponse `json:"trains"`
	TotalData int             `json:"total_data"`
}

func (r *GetTrainsResponse) FromModels(models []model.Train) {
	r.TotalData = len(models)

	r.Trains = make([]TrainResponse, len(models))
	for i, mod := range models {
		r.Trains[i].FromModel(mod)
	}
}
