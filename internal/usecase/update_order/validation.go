package update_order

import (
	"fmt"
	"unicode/utf8"

	"github.com/m04kA/SMC-GroomingService/internal/domain"
)

func validateRequest(orderID int64, req *Request) error {
	if orderID <= 0 {
		return fmt.Errorf("%w: orderId must be positive", ErrInvalidInput)
	}
	if req == nil {
		return fmt.Errorf("%w: request is nil", ErrInvalidInput)
	}
	if req.MasterID <= 0 {
		return fmt.Errorf("%w: masterId must be positive", ErrInvalidInput)
	}
	if req.ServiceID <= 0 {
		return fmt.Errorf("%w: serviceId must be positive", ErrInvalidInput)
	}
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: startTime: %v", ErrInvalidInput, err)
	}
	if req.PetSize != nil && !req.PetSize.IsValid() {
		return fmt.Errorf("%w: %w: %q", ErrInvalidInput, domain.ErrUnknownPetSize, *req.PetSize)
	}
	if len(req.ExtraServiceIDs) > domain.MaxExtraServices {
		return fmt.Errorf("%w: too many extra services (max %d)", ErrInvalidInput, domain.MaxExtraServices)
	}
	if req.Price != nil && *req.Price < 0 {
		return fmt.Errorf("%w: price must not be negative", ErrInvalidInput)
	}
	if req.Comment != nil && utf8.RuneCountInString(*req.Comment) > domain.MaxCommentLength {
		return fmt.Errorf("%w: comment is longer than %d", ErrInvalidInput, domain.MaxCommentLength)
	}
	return nil
}
