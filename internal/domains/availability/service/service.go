package service

import (
	"context"
	"math/rand/v2"

	"tatkal/infras/otel"
	"tatkal/internal/domains/availability/model/dto"
	"tatkal/shared/constant"
)

// farePerSeat is the fixed per-class fare table. Unknown classes fall back to
// the default fare rather than failing the quote.
var farePerSeat = map[string]int{
	"1A": 3500,
	"2A": 2500,
	"3A": 1500,
	"SL": 800,
	"CC": 1200,
	"2S": 400,
}

const defaultFare = 1000

type Availability interface {
	Quote(ctx context.Context, class, quota string) (dto.QuoteResponse, error)
}

type serviceImpl struct {
	otel otel.Otel
}

func New(ot otel.Otel) Availability {
	return &serviceImpl{
		otel: ot,
	}
}

// Quote fabricates seat availability for a class/quota pair. Numbers are
// freshly pseudo-random every call and never persisted; booking a ticket does
// not decrement anything, two quotes for the same train disagree.
func (s *serviceImpl) Quote(ctx context.Context, class, quota string) (dto.QuoteResponse, error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Quote")
	defer scope.End()

	fare, ok := farePerSeat[class]
	if !ok {
		fare = defaultFare
	}

	return dto.QuoteResponse{
		Class:       class,
		Quota:       quota,
		Available:   rand.IntN(20) + 1,
		Waiting:     rand.IntN(10),
		RAC:         rand.IntN(5),
		FarePerSeat: fare,
	}, nil
}
