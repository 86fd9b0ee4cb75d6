package validator_test

import (
	"mime/multipart"
	"net/textproto"
	"strings"
	"testing"

	"homestay/shared/validator"

	"github.com/shopspring/decimal"
)

type roomLine struct {
	RoomID string `json:"room_id" validate:"required,uuid"`
	Guests int    `json:"guests"  validate:"required,min=1"`
}

type bookingRequest struct {
	GuestEmail  string          `json:"guest_email"   validate:"required,email"`
	CheckInDate string          `json:"check_in_date" validate:"required,datetime=2006-01-02"`
	Status      string          `json:"status"        validate:"omitempty,oneof=pending confirmed"`
	Discount    decimal.Decimal `json:"discount"      validate:"gte=0"`
	TaxPercent  decimal.Decimal `json:"tax_percent"   validate:"gte=0,lte=100,decimalplaces=2"`
	Rooms       []roomLine      `json:"rooms"         validate:"required,min=1,dive"`
}

func validRequest() bookingRequest {
	return bookingRequest{
		GuestEmail:  "guest@example.com",
		CheckInDate: "2025-01-10",
		Discount:    decimal.NewFromInt(500),
		TaxPercent:  decimal.NewFromInt(12),
		Rooms: []roomLine{
			{RoomID: "550e8400-e29b-41d4-a716-446655440000", Guests: 2},
		},
	}
}

func TestValidateStruct(t *testing.T) {
	tests := []struct {
		name        string
		mutate      func(req *bookingRequest)
		expectError bool
	}{
		{
			name:        "valid request",
			mutate:      func(_ *bookingRequest) {},
			expectError: false,
		},
		{
			name:        "invalid email",
			mutate:      func(req *bookingRequest) { req.GuestEmail = "not-an-email" },
			expectError: true,
		},
		{
			name:        "date in wrong layout",
			mutate:      func(req *bookingRequest) { req.CheckInDate = "10/01/2025" },
			expectError: true,
		},
		{
			name:        "unknown status",
			mutate:      func(req *bookingRequest) { req.Status = "archived" },
			expectError: true,
		},
		{
			name:        "negative discount",
			mutate:      func(req *bookingRequest) { req.Discount = decimal.NewFromFloat(-0.01) },
			expectError: true,
		},
		{
			name:        "tax above one hundred percent",
			mutate:      func(req *bookingRequest) { req.TaxPercent = decimal.NewFromFloat(100.5) },
			expectError: true,
		},
		{
			name:        "tax percent with two places",
			mutate:      func(req *bookingRequest) { req.TaxPercent = decimal.RequireFromString("12.35") },
			expectError: false,
		},
		{
			name:        "tax percent finer than a NUMERIC(5,2) column",
			mutate:      func(req *bookingRequest) { req.TaxPercent = decimal.RequireFromString("12.345") },
			expectError: true,
		},
		{
			name:        "no rooms",
			mutate:      func(req *bookingRequest) { req.Rooms = nil },
			expectError: true,
		},
		{
			name:        "room line without guests",
			mutate:      func(req *bookingRequest) { req.Rooms[0].Guests = 0 },
			expectError: true,
		},
		{
			name:        "room line with malformed id",
			mutate:      func(req *bookingRequest) { req.Rooms[0].RoomID = "room-1" },
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(&req)

			err := validator.ValidateStruct(&req)

			if tt.expectError && err == nil {
				t.Error("expected validation error, got nil")
			}

			if !tt.expectError && err != nil {
				t.Errorf("expected no validation error, got: %v", err)
			}
		})
	}
}

func TestValidateVar(t *testing.T) {
	tests := []struct {
		name        string
		field       interface{}
		tag         string
		expectError bool
	}{
		{name: "valid uuid", field: "550e8400-e29b-41d4-a716-446655440000", tag: "uuid", expectError: false},
		{name: "invalid uuid", field: "abc", tag: "uuid", expectError: true},
		{name: "room status", field: "blocked", tag: "oneof=available blocked maintenance", expectError: false},
		{name: "unknown room status", field: "closed", tag: "oneof=available blocked maintenance", expectError: true},
		{name: "decimal in range", field: decimal.RequireFromString("1499.99"), tag: "gte=0", expectError: false},
		{name: "whole amount", field: decimal.NewFromInt(1500), tag: "decimalplaces=2", expectError: false},
		{name: "cents", field: decimal.RequireFromString("0.05"), tag: "decimalplaces=2", expectError: false},
		{name: "fraction of a cent", field: decimal.RequireFromString("0.005"), tag: "decimalplaces=2", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateVar(tt.field, tt.tag)

			if tt.expectError && err == nil {
				t.Error("expected validation error, got nil")
			}

			if !tt.expectError && err != nil {
				t.Errorf("expected no validation error, got: %v", err)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name        string
		jsonBody    string
		expectError bool
	}{
		{
			name: "valid body with string and numeric money",
			jsonBody: `{"guest_email":"guest@example.com","check_in_date":"2025-01-10","discount":"500.00",` +
				`"tax_percent":12,"rooms":[{"room_id":"550e8400-e29b-41d4-a716-446655440000","guests":1}]}`,
			expectError: false,
		},
		{
			name:        "malformed JSON",
			jsonBody:    `{"guest_email":}`,
			expectError: true,
		},
		{
			name:        "empty JSON",
			jsonBody:    `{}`,
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var data bookingRequest
			err := validator.Validate(strings.NewReader(tt.jsonBody), &data)

			if tt.expectError && err == nil {
				t.Error("expected validation error, got nil")
			}

			if !tt.expectError && err != nil {
				t.Errorf("expected no validation error, got: %v", err)
			}
		})
	}
}

func TestValidationMessagesUseJSONNames(t *testing.T) {
	req := validRequest()
	req.CheckInDate = ""

	err := validator.ValidateStruct(&req)
	if err == nil {
		t.Fatal("expected validation error")
	}

	if err.Error() != "check_in_date is required" {
		t.Errorf("unexpected message %q", err.Error())
	}
}

type receiptUpload struct {
	File multipart.FileHeader `json:"file" validate:"required,mimetypes=image/jpeg image/png application/pdf,maxfilesize=5"`
}

func TestFileValidation(t *testing.T) {
	receipt := func(contentType string, size int64) receiptUpload {
		header := textproto.MIMEHeader{}
		header.Set("Content-Type", contentType)

		return receiptUpload{File: multipart.FileHeader{Filename: "transfer", Header: header, Size: size}}
	}

	tests := []struct {
		name        string
		upload      receiptUpload
		expectError bool
	}{
		{name: "png receipt", upload: receipt("image/png", 1024)},
		{name: "pdf with parameters", upload: receipt("application/pdf; name=receipt.pdf", 2048)},
		{name: "unsupported type", upload: receipt("text/html", 10), expectError: true},
		{name: "too large", upload: receipt("image/jpeg", 6*1024*1024), expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateStruct(&tt.upload)

			if tt.expectError != (err != nil) {
				t.Errorf("expected error %v, got %v", tt.expectError, err)
			}
		})
	}
}
