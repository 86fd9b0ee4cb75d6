// Package timezone holds the application clock.
//
// Instants such as created_at or a payment date are kept in the application timezone configured by
// APP_TIMEZONE. Stay dates are calendar days and are always handled as midnight UTC, see ParseDate
// and Today.
package timezone
