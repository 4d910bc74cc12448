package validator

import (
	"fmt"
	"regexp"
	"time"

	"github.com/bookmymovie/booking-system/internal/domain"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

const (
	ErrRequired    = "is required"
	ErrInvalid     = "is invalid"
	ErrMinValue    = "must be at least %s"
	ErrMaxValue    = "must be at most %s"
	ErrGreaterThan = "must be greater than %s"
	ErrInvalidSlot = "must be one of 11:00-14:00, 14:30-17:30, 18:00-21:00"
	ErrInvalidDate = "must be a calendar date in YYYY-MM-DD format"
	ErrEmptySeats  = "must contain at least one seat label"
	ErrInvalidType = "must be one of REGULAR, PREMIUM, RECLINER"
	ErrNotPositive = "must be greater than zero"
)

var seatListRgx = regexp.MustCompile(`^[A-Za-z0-9]+(?:\s*,\s*[A-Za-z0-9]+)*$`)

func NewValidator() *validator.Validate {
	validate := validator.New(validator.WithRequiredStructEnabled())

	validate.RegisterValidation("slot", validateSlot)
	validate.RegisterValidation("bookingdate", validateBookingDate)
	validate.RegisterValidation("seatlist", validateSeatList)
	validate.RegisterValidation("seattype", validateSeatType)
	validate.RegisterValidation("positiveamount", validatePositiveAmount)

	return validate
}

func validateSlot(fl validator.FieldLevel) bool {
	return domain.IsValidSlot(fl.Field().String())
}

// A booking date is a calendar day without a time component.
func validateBookingDate(fl validator.FieldLevel) bool {
	_, err := time.Parse(time.DateOnly, fl.Field().String())
	return err == nil
}

func validateSeatList(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	if !seatListRgx.MatchString(s) {
		return false
	}

	return len(domain.ParseSeatList(s)) > 0
}

func validateSeatType(fl validator.FieldLevel) bool {
	return domain.IsValidSeatType(fl.Field().String())
}

// Monetary amounts (seat prices) must be strictly positive.
func validatePositiveAmount(fl validator.FieldLevel) bool {
	amount, ok := fl.Field().Interface().(decimal.Decimal)
	if !ok {
		return false
	}

	return amount.IsPositive()
}

// ValidationMessage converts validator errors into readable messages
func ValidationMessage(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return ErrRequired
	case "gt":
		return fmt.Sprintf(ErrGreaterThan, err.Param())
	case "min":
		return fmt.Sprintf(ErrMinValue, err.Param())
	case "lte", "max":
		return fmt.Sprintf(ErrMaxValue, err.Param())
	case "slot":
		return ErrInvalidSlot
	case "bookingdate":
		return ErrInvalidDate
	case "seatlist":
		return ErrEmptySeats
	case "seattype":
		return ErrInvalidType
	case "positiveamount":
		return ErrNotPositive
	default:
		return ErrInvalid
	}
}
