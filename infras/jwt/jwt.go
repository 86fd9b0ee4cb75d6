package jwt

//go:generate go run go.uber.org/mock/mockgen -source=./jwt.go -destination=./mocks/jwt_mock.go -package=mocks

import (
	"errors"
	"fmt"
	"time"

	"homestay/config"
	"homestay/shared/constant"
	"homestay/shared/timezone"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token has expired")
	ErrInvalidClaim = errors.New("invalid token claim")
)

const voucherSubjectPrefix = "booking:"

// VoucherClaims is the payload of a guest booking voucher.
type VoucherClaims struct {
	BookingID    string `json:"booking_id"`
	Reference    string `json:"reference"`
	HomestayID   string `json:"homestay_id"`
	GuestName    string `json:"guest_name"`
	CheckInDate  string `json:"check_in_date"`
	CheckOutDate string `json:"check_out_date"`
	jwt.RegisteredClaims
}

// JWT signs and verifies booking vouchers.
type JWT interface {
	SignVoucher(claims VoucherClaims, checkOut time.Time) (token string, expiresAt time.Time, err error)
	VerifyVoucher(token string) (*VoucherClaims, error)
}

type Service struct {
	config *config.Config
}

func New(cfg *config.Config) JWT {
	return &Service{
		config: cfg,
	}
}

// SignVoucher issues a voucher that stays valid until the configured grace period after check-out.
func (s *Service) SignVoucher(claims VoucherClaims, checkOut time.Time) (string, time.Time, error) {
	if claims.BookingID == constant.Empty {
		return constant.Empty, time.Time{}, ErrInvalidClaim
	}

	now := timezone.Now()
	expiresAt := checkOut.Add(time.Duration(s.config.JWT.VoucherGraceHours) * time.Hour)

	claims.RegisteredClaims = jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(expiresAt),
		IssuedAt:  jwt.NewNumericDate(now),
		NotBefore: jwt.NewNumericDate(now),
		Issuer:    s.issuer(),
		Subject:   voucherSubjectPrefix + claims.BookingID,
		ID:        uuid.NewString(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signed, err := token.SignedString([]byte(s.config.JWT.VoucherSecret))
	if err != nil {
		return constant.Empty, time.Time{}, fmt.Errorf("failed to sign voucher: %w", err)
	}

	return signed, expiresAt, nil
}

// VerifyVoucher validates the signature, issuer and expiry of a voucher.
func (s *Service) VerifyVoucher(tokenString string) (*VoucherClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &VoucherClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}

		return []byte(s.config.JWT.VoucherSecret), nil
	}, jwt.WithIssuer(s.issuer()))

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}

		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*VoucherClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	if claims.BookingID == constant.Empty || claims.Subject != voucherSubjectPrefix+claims.BookingID {
		return nil, ErrInvalidClaim
	}

	return claims, nil
}

func (s *Service) issuer() string {
	if s.config.JWT.VoucherIssuer != constant.Empty {
		return s.config.JWT.VoucherIssuer
	}

	return s.config.App.Name
}
