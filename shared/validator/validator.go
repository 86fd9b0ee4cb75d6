package validator

import (
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"reflect"
	"slices"
	"strconv"
	"strings"

	"homestay/shared/constant"
	"homestay/shared/failure"

	val "github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var validate *val.Validate

// registerMimetypeValidation checks the content type the client declared for an uploaded room image
// or payment receipt.
func registerMimetypeValidation(field val.FieldLevel) bool {
	file, ok := field.Field().Interface().(multipart.FileHeader)
	if !ok {
		return false
	}

	contentType, _, _ := strings.Cut(file.Header.Get(constant.RequestHeaderContentType), ";")
	allowedTypes := strings.Split(field.Param(), " ")

	return slices.Contains(allowedTypes, strings.TrimSpace(contentType))
}

func registerFileSizeValidation(field val.FieldLevel) bool {
	file, ok := field.Field().Interface().(multipart.FileHeader)
	if !ok {
		return false
	}

	fileSize := int(file.Size)

	maxSizeMB, err := strconv.ParseFloat(field.Param(), 64)
	if err != nil {
		return false
	}

	bytesConversion := 1024.0
	maxSizeBytes := int(maxSizeMB * bytesConversion * bytesConversion)

	return fileSize <= maxSizeBytes
}

// registerDecimalPlacesValidation caps the fractional digits of an amount so it is stored in a
// two place NUMERIC column without being rounded.
func registerDecimalPlacesValidation(field val.FieldLevel) bool {
	places, err := strconv.ParseInt(field.Param(), 10, 32)
	if err != nil {
		return false
	}

	var amount decimal.Decimal

	switch value := field.Field(); value.Kind() {
	case reflect.Float32, reflect.Float64:
		amount = decimal.NewFromFloat(value.Float())
	case reflect.String:
		amount, err = decimal.NewFromString(value.String())
		if err != nil {
			return false
		}
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return true
	default:
		return false
	}

	return amount.Equal(amount.Truncate(int32(places)))
}

// decimalValue lets numeric tags such as gte and lte apply to money fields.
func decimalValue(field reflect.Value) any {
	if amount, ok := field.Interface().(decimal.Decimal); ok {
		return amount.InexactFloat64()
	}

	return nil
}

func init() {
	validate = val.New(val.WithRequiredStructEnabled())
	validate.RegisterCustomTypeFunc(decimalValue, decimal.Decimal{})
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return constant.Empty
		}

		return name
	})

	err := validate.RegisterValidation("empty", func(fl val.FieldLevel) bool {
		empty := fl.Field().IsZero()

		return empty
	})

	if err != nil {
		panic(err)
	}

	err = validate.RegisterValidation("mimetypes", registerMimetypeValidation)
	if err != nil {
		panic(err)
	}

	err = validate.RegisterValidation("maxfilesize", registerFileSizeValidation)
	if err != nil {
		panic(err)
	}

	err = validate.RegisterValidation("decimalplaces", registerDecimalPlacesValidation)
	if err != nil {
		panic(err)
	}
}

// Validate reads from the given io.Reader into the given struct, and then performs validation
// on the struct using the validator package. If the struct is invalid according to the
// validation rules, an error is returned. Otherwise, nil is returned.
// https://github.com/go-playground/validator
func Validate[T any](r io.Reader, data *T) error {
	decoder := json.NewDecoder(r)
	err := decoder.Decode(data)

	if err != nil {
		return failure.BadRequest(fmt.Errorf("failed to decode request body: %w", err)) //nolint:wrapcheck
	}

	return ValidateStruct(data)
}

func ValidateStruct[T any](data *T) error {
	err := validate.Struct(data)

	if err != nil {
		msg := message(err)

		return failure.BadRequestFromString(msg) //nolint:wrapcheck
	}

	return nil
}

func ValidateVar(field any, tag string) error {
	err := validate.Var(field, tag)

	if err != nil {
		msg := message(err)

		return failure.BadRequestFromString(msg) //nolint:wrapcheck
	}

	return nil
}
