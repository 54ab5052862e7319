package dto

type QuoteResponse struct {
	Class       string `json:"class"`
	Quota       string `json:"quota"`
	Available   int    `json:"available"`
	Waiting     int    `json:"waiting"`
	RAC         int    `json:"rac"`
	FarePerSeat int    `json:"fare_per_seat"`
}
