package create_order

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/m04kA/SMC-GroomingService/internal/domain"
)

// validateRequest проверяет входные данные до обращения к хранилищу
func validateRequest(req *Request) error {
	if req == nil {
		return fmt.Errorf("%w: request is nil", ErrInvalidInput)
	}

	fullName := strings.TrimSpace(req.FullName)
	if fullName == "" {
		return fmt.Errorf("%w: fullName is required", ErrInvalidInput)
	}
	if utf8.RuneCountInString(fullName) > domain.MaxFullNameLength {
		return fmt.Errorf("%w: fullName is longer than %d", ErrInvalidInput, domain.MaxFullNameLength)
	}

	if err := validatePet(&req.Pet); err != nil {
		return err
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

func validatePet(pet *PetRequest) error {
	name := strings.TrimSpace(pet.Name)
	if name == "" {
		return fmt.Errorf("%w: pet.name is required", ErrInvalidInput)
	}
	if utf8.RuneCountInString(name) > domain.MaxPetNameLength {
		return fmt.Errorf("%w: pet.name is longer than %d", ErrInvalidInput, domain.MaxPetNameLength)
	}
	if !pet.Species.IsValid() {
		return fmt.Errorf("%w: %w: %q", ErrInvalidInput, domain.ErrUnknownSpecies, pet.Species)
	}
	if pet.AgeGroupID <= 0 {
		return fmt.Errorf("%w: pet.ageGroupId must be positive", ErrInvalidInput)
	}
	if pet.Size != nil && !pet.Size.IsValid() {
		return fmt.Errorf("%w: %w: %q", ErrInvalidInput, domain.ErrUnknownPetSize, *pet.Size)
	}
	return nil
}
