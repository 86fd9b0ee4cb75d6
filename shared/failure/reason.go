package failure

const (
	ReasonNotFound               = "not_found"
	ReasonInvalidDateRange       = "invalid_date_range"
	ReasonCapacityExceeded       = "capacity_exceeded"
	ReasonRoomHomestayMismatch   = "room_homestay_mismatch"
	ReasonRoomBlocked            = "room_blocked"
	ReasonRoomBooked             = "room_booked"
	ReasonDiscountExceedsTotal   = "discount_exceeds_subtotal"
	ReasonInvalidStatusChange    = "invalid_status_transition"
	ReasonDuplicateRoomInRequest = "duplicate_room"
	ReasonPriceBelowMinimum      = "price_below_minimum"
	ReasonQuoteRequired          = "quote_required"
)
