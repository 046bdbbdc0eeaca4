package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-GroomingService/internal/domain"
)

// Resolver чтение справочных данных для расчета заказа
type Resolver struct {
	repo Repository
}

// NewResolver создает новый экземпляр резолвера справочников
func NewResolver(repo Repository) *Resolver {
	return &Resolver{repo: repo}
}

// ResolveMaster возвращает активного мастера
func (r *Resolver) ResolveMaster(ctx context.Context, id int64) (*domain.Master, error) {
	master, err := r.repo.GetMaster(ctx, id)
	if err != nil {
		return nil, wrapLookup(err, ErrMasterNotFound, "master id=%d", id)
	}
	if !master.IsActive {
		return nil, fmt.Errorf("%w: master id=%d", ErrMasterInactive, id)
	}
	return master, nil
}

// ResolveService возвращает услугу
func (r *Resolver) ResolveService(ctx context.Context, id int64) (*domain.Service, error) {
	service, err := r.repo.GetService(ctx, id)
	if err != nil {
		return nil, wrapLookup(err, ErrServiceNotFound, "service id=%d", id)
	}
	return service, nil
}

// ResolveTariff возвращает тариф для пары (услуга, размер)
func (r *Resolver) ResolveTariff(ctx context.Context, serviceID int64, size domain.PetSize) (*domain.ServiceTariff, error) {
	if !size.IsValid() {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownPetSize, size)
	}
	tariff, err := r.repo.GetTariff(ctx, serviceID, size)
	if err != nil {
		return nil, wrapLookup(err, ErrTariffNotFound, "service id=%d, size=%s", serviceID, size)
	}
	return tariff, nil
}

// AgeFactor возвращает возрастной коэффициент группы в процентах
func (r *Resolver) AgeFactor(ctx context.Context, ageGroupID int64) (int, error) {
	group, err := r.repo.GetAgeGroup(ctx, ageGroupID)
	if err != nil {
		return 0, wrapLookup(err, ErrAgeGroupNotFound, "age group id=%d", ageGroupID)
	}
	return group.PriceFactor, nil
}

// ResolveAgeGroup проверяет существование возрастной группы
func (r *Resolver) ResolveAgeGroup(ctx context.Context, ageGroupID int64) (*domain.AgeGroup, error) {
	group, err := r.repo.GetAgeGroup(ctx, ageGroupID)
	if err != nil {
		return nil, wrapLookup(err, ErrAgeGroupNotFound, "age group id=%d", ageGroupID)
	}
	return group, nil
}

// ResolveExtras возвращает доп. услуги по id в порядке запроса.
// Повторы схлопываются, неизвестные id молча отбрасываются.
func (r *Resolver) ResolveExtras(ctx context.Context, ids []int64) ([]*domain.ExtraService, error) {
	unique := dedupe(ids)
	if len(unique) == 0 {
		return nil, nil
	}

	found, err := r.repo.ListExtraServicesByIDs(ctx, unique)
	if err != nil {
		return nil, fmt.Errorf("%w: list extra services: %w", ErrRepository, err)
	}

	byID := make(map[int64]*domain.ExtraService, len(found))
	for _, extra := range found {
		byID[extra.ID] = extra
	}

	result := make([]*domain.ExtraService, 0, len(found))
	for _, id := range unique {
		if extra, ok := byID[id]; ok {
			result = append(result, extra)
		}
	}
	return result, nil
}

// ResolvePetSize определяет размер питомца: явно указанный размер имеет приоритет,
// иначе берется размер породы по умолчанию. Без того и другого - ошибка валидации.
func (r *Resolver) ResolvePetSize(
	ctx context.Context,
	requested *domain.PetSize,
	breedID *int64,
	species domain.Species,
) (domain.PetSize, error) {
	var breed *domain.Breed
	if breedID != nil {
		b, err := r.repo.GetBreed(ctx, *breedID)
		if err != nil {
			return "", wrapLookup(err, ErrBreedNotFound, "breed id=%d", *breedID)
		}
		if species != "" && b.Species != species {
			return "", fmt.Errorf("%w: breed id=%d is %s, pet is %s", ErrBreedSpeciesMismatch, b.ID, b.Species, species)
		}
		breed = b
	}

	if requested != nil {
		if !requested.IsValid() {
			return "", fmt.Errorf("%w: %q", domain.ErrUnknownPetSize, *requested)
		}
		return *requested, nil
	}

	if breed != nil && breed.DefaultSize != nil {
		return *breed.DefaultSize, nil
	}

	return "", ErrPetSizeRequired
}

// ListMasters возвращает активных мастеров
func (r *Resolver) ListMasters(ctx context.Context) ([]*domain.Master, error) {
	masters, err := r.repo.ListMasters(ctx, true)
	if err != nil {
		return nil, fmt.Errorf("%w: list masters: %w", ErrRepository, err)
	}
	return masters, nil
}

// ListServices возвращает все услуги
func (r *Resolver) ListServices(ctx context.Context) ([]*domain.Service, error) {
	services, err := r.repo.ListServices(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: list services: %w", ErrRepository, err)
	}
	return services, nil
}

// ListExtraServices возвращает все доп. услуги
func (r *Resolver) ListExtraServices(ctx context.Context) ([]*domain.ExtraService, error) {
	extras, err := r.repo.ListExtraServices(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: list extra services: %w", ErrRepository, err)
	}
	return extras, nil
}

// ListAgeGroups возвращает возрастные группы
func (r *Resolver) ListAgeGroups(ctx context.Context) ([]*domain.AgeGroup, error) {
	groups, err := r.repo.ListAgeGroups(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: list age groups: %w", ErrRepository, err)
	}
	return groups, nil
}

// ListBreeds возвращает породы, при species != nil только указанного вида
func (r *Resolver) ListBreeds(ctx context.Context, species *domain.Species) ([]*domain.Breed, error) {
	if species != nil && !species.IsValid() {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownSpecies, *species)
	}
	breeds, err := r.repo.ListBreeds(ctx, species)
	if err != nil {
		return nil, fmt.Errorf("%w: list breeds: %w", ErrRepository, err)
	}
	return breeds, nil
}

func wrapLookup(err error, notFound error, format string, args ...interface{}) error {
	what := fmt.Sprintf(format, args...)
	if errors.Is(err, domain.ErrNotFound) {
		return fmt.Errorf("%w: %s", notFound, what)
	}
	return fmt.Errorf("%w: %s: %w", ErrRepository, what, err)
}

func dedupe(ids []int64) []int64 {
	seen := make(map[int64]struct{}, len(ids))
	result := make([]int64, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		result = append(result, id)
	}
	return result
}
