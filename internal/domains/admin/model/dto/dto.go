package dto

import (
	bookingDto "tatkal/internal/domains/booking/model/dto"
)

type StatsResponse struct {
	TotalUsers        int `json:"total_users"`
	TotalBookings     int `json:"total_bookings"`
	ConfirmedBookings int `json:"confirmed_bookings"`
	CancelledBookings int `json:"cancelled_bookings"`
	TotalRevenue      int `json:"total_revenue"`
}

// AdminBookingResponse is a ledger entry annotated with its owner, for the
// cross-tenant admin view.
type AdminBookingResponse struct {
	bookingDto.BookingResponse
	UserID    string `json:"user_id"`
	UserName  string `json:"user_name"`
	UserEmail string `json:"user_email"`
}

type GetAllBookingsResponse struct {
	Bookings  []AdminBookingResponse `json:"bookings"`
	TotalData int                    `json:"total_data"`
}
