package domain

import "fmt"

// PetSize категория размера питомца
type PetSize string

const (
	PetSizeDecorative PetSize = "decorative"
	PetSizeMedium     PetSize = "medium"
	PetSizeLarge      PetSize = "large"
	PetSizeExtraLarge PetSize = "extra_large"
)

// PetSizes все категории размера в порядке возрастания
var PetSizes = []PetSize{PetSizeDecorative, PetSizeMedium, PetSizeLarge, PetSizeExtraLarge}

// IsValid проверяет, что размер входит в закрытый набор
func (s PetSize) IsValid() bool {
	switch s {
	case PetSizeDecorative, PetSizeMedium, PetSizeLarge, PetSizeExtraLarge:
		return true
	}
	return false
}

// ParsePetSize разбирает размер питомца
func ParsePetSize(s string) (PetSize, error) {
	size := PetSize(s)
	if !size.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownPetSize, s)
	}
	return size, nil
}

// Species вид животного
type Species string

const (
	SpeciesDog Species = "dog"
	SpeciesCat Species = "cat"
)

// IsValid проверяет вид животного
func (s Species) IsValid() bool {
	return s == SpeciesDog || s == SpeciesCat
}

// ParseSpecies разбирает вид животного
func ParseSpecies(s string) (Species, error) {
	species := Species(s)
	if !species.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownSpecies, s)
	}
	return species, nil
}

// Master мастер-грумер
type Master struct {
	ID       int64
	Name     string
	Group    string // A или B
	IsActive bool
}

// Service услуга
type Service struct {
	ID   int64
	Name string
}

// ServiceTariff цена и длительность услуги для категории размера
type ServiceTariff struct {
	ID              int64
	ServiceID       int64
	Size            PetSize
	Price           int64
	DurationMinutes int
}

// ExtraService дополнительная услуга с фиксированной ценой
type ExtraService struct {
	ID    int64
	Name  string
	Price int64
}

// AgeGroup возрастная группа, PriceFactor в процентах (90, 100, 110)
type AgeGroup struct {
	ID          int64
	Name        string
	PriceFactor int
}

// Breed порода. DefaultSize == nil для метисов, размер тогда выбирается вручную.
type Breed struct {
	ID          int64
	Name        string
	Species     Species
	DefaultSize *PetSize
}
