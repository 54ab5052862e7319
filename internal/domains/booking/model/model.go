package model

import (
	"fmt"
	"sync"
	"time"

	"tatkal/shared/constant"
)

const (
	EntityName = "booking"
)

// PassengerDetail is the snapshot embedded in a booking at creation time.
// Edits to the profile's saved passengers never reach past bookings.
type PassengerDetail struct {
	Name   string `json:"name"`
	Age    int    `json:"age"`
	Gender string `json:"gender,omitempty"`
	Berth  string `json:"berth,omitempty"`
}

// Booking is one ledger entry. Immutable after creation except Status, which
// only ever moves confirmed -> cancelled.
type Booking struct {
	ID          string            `json:"id"`
	PNR         string            `json:"pnr"`
	TrainID     string            `json:"trainId"`
	TrainName   string            `json:"trainName"`
	Source      string            `json:"source"`
	Destination string            `json:"destination"`
	Date        string            `json:"date"`
	Class       string            `json:"class"`
	Quota       string            `json:"quota"`
	Passengers  []PassengerDetail `json:"passengers"`
	Fare        int               `json:"fare"`
	Status      string            `json:"status"`
	BookingDate time.Time         `json:"bookingDate"`
}

const pnrModulus = 10_000_000_000 // 10^constant.PNRSuffixDigits

// PNRGenerator mints PNR numbers from a monotonically increasing time-based
// counter: "PNR" plus exactly ten digits. Monotonic within one process only;
// uniqueness is weak by design and the ledger re-checks for collisions.
type PNRGenerator struct {
	mu   sync.Mutex
	last int64
}

func NewPNRGenerator() *PNRGenerator {
	return &PNRGenerator{}
}

func (g *PNRGenerator) Next(now time.Time) string {
	g.mu.Lock()

	n := now.UnixMilli()
	if n <= g.last {
		n = g.last + 1
	}
	g.last = n

	g.mu.Unlock()

	return fmt.Sprintf("%s%0*d", constant.PNRPrefix, constant.PNRSuffixDigits, n%pnrModulus)
}
