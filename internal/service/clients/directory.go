package clients

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/m04kA/SMC-GroomingService/internal/domain"
)

// Identity данные клиента из заявки
type Identity struct {
	Phone    *string
	FullName string
}

// PetDescriptor данные питомца из заявки
type PetDescriptor struct {
	Name       string
	Species    domain.Species
	BreedID    *int64
	AgeGroupID int64
	Size       *domain.PetSize
}

// Directory поиск и ленивое создание клиентов и питомцев
type Directory struct {
	repo  Repository
	sizes SizeResolver
}

// NewDirectory создает новый справочник клиентов
func NewDirectory(repo Repository, sizes SizeResolver) *Directory {
	return &Directory{repo: repo, sizes: sizes}
}

// ResolveOrCreateClient ищет клиента по телефону, затем по точному ФИО, иначе создает нового.
// Второе значение true, если клиент создан.
func (d *Directory) ResolveOrCreateClient(ctx context.Context, identity Identity) (*domain.Client, bool, error) {
	fullName := strings.TrimSpace(identity.FullName)
	if fullName == "" {
		return nil, false, ErrInvalidIdentity
	}
	if utf8.RuneCountInString(fullName) > domain.MaxFullNameLength {
		return nil, false, fmt.Errorf("%w: full name is longer than %d", ErrInvalidIdentity, domain.MaxFullNameLength)
	}

	phone := normalizePhone(identity.Phone)
	if phone != nil {
		client, err := d.repo.FindClientByPhone(ctx, *phone)
		if err == nil {
			return client, false, nil
		}
		if !errors.Is(err, domain.ErrNotFound) {
			return nil, false, fmt.Errorf("%w: find client by phone: %w", ErrRepository, err)
		}
	}

	client, err := d.repo.FindClientByFullName(ctx, fullName)
	if err == nil {
		return client, false, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, false, fmt.Errorf("%w: find client by name: %w", ErrRepository, err)
	}

	created, err := d.repo.CreateClient(ctx, &domain.Client{FullName: fullName, Phone: phone})
	if err != nil {
		return nil, false, fmt.Errorf("%w: create client: %w", ErrRepository, err)
	}
	return created, true, nil
}

// ResolveOrCreatePet ищет питомца клиента по (имя, вид), иначе создает нового.
// Найденный питомец возвращается без изменений.
func (d *Directory) ResolveOrCreatePet(ctx context.Context, clientID int64, desc PetDescriptor) (*domain.Pet, bool, error) {
	name := strings.TrimSpace(desc.Name)
	if name == "" {
		return nil, false, fmt.Errorf("%w: pet name is required", ErrInvalidPet)
	}
	if utf8.RuneCountInString(name) > domain.MaxPetNameLength {
		return nil, false, fmt.Errorf("%w: pet name is longer than %d", ErrInvalidPet, domain.MaxPetNameLength)
	}
	if !desc.Species.IsValid() {
		return nil, false, fmt.Errorf("%w: %q", domain.ErrUnknownSpecies, desc.Species)
	}

	pet, err := d.repo.FindPet(ctx, clientID, name, desc.Species)
	if err == nil {
		return pet, false, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, false, fmt.Errorf("%w: find pet: %w", ErrRepository, err)
	}

	if _, err := d.sizes.ResolveAgeGroup(ctx, desc.AgeGroupID); err != nil {
		return nil, false, err
	}

	size, err := d.sizes.ResolvePetSize(ctx, desc.Size, desc.BreedID, desc.Species)
	if err != nil {
		return nil, false, err
	}

	created, err := d.repo.CreatePet(ctx, &domain.Pet{
		ClientID:   clientID,
		Name:       name,
		Species:    desc.Species,
		BreedID:    desc.BreedID,
		AgeGroupID: desc.AgeGroupID,
		Size:       size,
	})
	if err != nil {
		return nil, false, fmt.Errorf("%w: create pet: %w", ErrRepository, err)
	}
	return created, true, nil
}

// GetClient возвращает клиента по id
func (d *Directory) GetClient(ctx context.Context, id int64) (*domain.Client, error) {
	client, err := d.repo.GetClient(ctx, id)
	if err != nil {
		return nil, wrapNotFound(err, ErrClientNotFound, "client id=%d", id)
	}
	return client, nil
}

// GetPet возвращает питомца по id
func (d *Directory) GetPet(ctx context.Context, id int64) (*domain.Pet, error) {
	pet, err := d.repo.GetPet(ctx, id)
	if err != nil {
		return nil, wrapNotFound(err, ErrPetNotFound, "pet id=%d", id)
	}
	return pet, nil
}

// SearchByPhone ищет клиента по точному номеру телефона вместе с питомцами
func (d *Directory) SearchByPhone(ctx context.Context, phone string) (*domain.ClientWithPets, error) {
	normalized := normalizePhone(&phone)
	if normalized == nil {
		return nil, ErrInvalidQuery
	}

	client, err := d.repo.FindClientByPhone(ctx, *normalized)
	if err != nil {
		return nil, wrapNotFound(err, ErrClientNotFound, "phone=%s", *normalized)
	}

	return d.withPets(ctx, client)
}

// SearchByName ищет клиентов по части ФИО без учета регистра
func (d *Directory) SearchByName(ctx context.Context, namePart string) ([]*domain.ClientWithPets, error) {
	namePart = strings.TrimSpace(namePart)
	if namePart == "" {
		return nil, ErrInvalidQuery
	}

	found, err := d.repo.SearchClientsByName(ctx, namePart)
	if err != nil {
		return nil, fmt.Errorf("%w: search clients: %w", ErrRepository, err)
	}

	result := make([]*domain.ClientWithPets, 0, len(found))
	for _, client := range found {
		item, err := d.withPets(ctx, client)
		if err != nil {
			return nil, err
		}
		result = append(result, item)
	}
	return result, nil
}

func (d *Directory) withPets(ctx context.Context, client *domain.Client) (*domain.ClientWithPets, error) {
	pets, err := d.repo.ListPets(ctx, client.ID)
	if err != nil {
		return nil, fmt.Errorf("%w: list pets of client id=%d: %w", ErrRepository, client.ID, err)
	}
	return &domain.ClientWithPets{Client: client, Pets: pets}, nil
}

func normalizePhone(phone *string) *string {
	if phone == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*phone)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

func wrapNotFound(err error, notFound error, format string, args ...interface{}) error {
	what := fmt.Sprintf(format, args...)
	if errors.Is(err, domain.ErrNotFound) {
		return fmt.Errorf("%w: %s", notFound, what)
	}
	return fmt.Errorf("%w: %s: %w", ErrRepository, what, err)
}
