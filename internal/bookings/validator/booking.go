package validator

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"roomly/internal/timegrid"
	"roomly/pkg/logger"
	"roomly/pkg/model"
)

type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (v ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", v.Field, v.Message)
}

type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	if len(v) == 0 {
		return ""
	}
	var messages []string
	for _, err := range v {
		messages = append(messages, err.Error())
	}
	return fmt.Sprintf("validation failed: %d error(s): [%s]", len(v), strings.Join(messages, "; "))
}

type BookingValidator struct {
	validate *validator.Validate
	logger   *logger.Logger
}

func NewBookingValidator(log *logger.Logger) *BookingValidator {
	v := validator.New()

	if err := v.RegisterValidation("slot_label", validateSlotLabel); err != nil {
		log.Fatal("Failed to register 'slot_label' validator", "error", err)
	}
	if err := v.RegisterValidation("end_label", validateEndLabel); err != nil {
		log.Fatal("Failed to register 'end_label' validator", "error", err)
	}

	return &BookingValidator{
		validate: v,
		logger:   log,
	}
}

func validateSlotLabel(fl validator.FieldLevel) bool {
	return timegrid.ValidStart(fl.Field().String())
}

func validateEndLabel(fl validator.FieldLevel) bool {
	return timegrid.ValidEnd(fl.Field().String())
}

func (v *BookingValidator) Validate(booking *model.Booking) error {
	if err := v.validate.Struct(booking); err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			return v.translateValidationErrors(validationErrs)
		}
		return err
	}

	// Grid ordering: plain label comparison, the end-of-day sentinel sorts
	// after every start label.
	if booking.EndTime <= booking.StartTime {
		return ValidationErrors{
			ValidationError{
				Field:   "EndTime",
				Message: "endTime must be after startTime",
			},
		}
	}

	return nil
}

func (v *BookingValidator) ValidatePatch(patch *model.BookingPatch) error {
	if err := v.validate.Struct(patch); err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			return v.translateValidationErrors(validationErrs)
		}
		return err
	}
	return nil
}

func (v *BookingValidator) translateValidationErrors(errs validator.ValidationErrors) ValidationErrors {
	var out ValidationErrors
	for _, fe := range errs {
		out = append(out, ValidationError{
			Field:   fe.Field(),
			Message: messageForTag(fe),
		})
	}
	return out
}

func messageForTag(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "datetime":
		return "must be a calendar date in YYYY-MM-DD format"
	case "slot_label":
		return "must be an HH:MM label on the 15-minute grid"
	case "end_label":
		return "must be an HH:MM label on the 15-minute grid, or 23:59"
	default:
		return fmt.Sprintf("failed '%s' validation", fe.Tag())
	}
}
