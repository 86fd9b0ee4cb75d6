package model

import "github.com/shopspring/decimal"

type Statistics struct {
	TotalBookings      int             `db:"total_bookings"`
	PendingBookings    int             `db:"pending_bookings"`
	ConfirmedBookings  int             `db:"confirmed_bookings"`
	CheckedInBookings  int             `db:"checked_in_bookings"`
	CheckedOutBookings int             `db:"checked_out_bookings"`
	CancelledBookings  int             `db:"cancelled_bookings"`
	NoShowBookings     int             `db:"no_show_bookings"`
	TotalRevenue       decimal.Decimal `db:"total_revenue"`
	TotalPaid          decimal.Decimal `db:"total_paid"`
	PendingAmount      decimal.Decimal `db:"pending_amount"`
}
