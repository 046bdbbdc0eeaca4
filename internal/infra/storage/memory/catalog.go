package memory

import (
	"context"
	"sort"

	"github.com/m04kA/SMC-GroomingService/internal/domain"
)

// CatalogRepository справочники в памяти
type CatalogRepository struct {
	store *Store
}

func (r *CatalogRepository) GetMaster(_ context.Context, id int64) (*domain.Master, error) {
	var result *domain.Master
	r.store.read(func(d *state) {
		if row, ok := d.masters[id]; ok {
			result = copyOf(row)
		}
	})
	if result == nil {
		return nil, ErrMasterNotFound
	}
	return result, nil
}

func (r *CatalogRepository) GetService(_ context.Context, id int64) (*domain.Service, error) {
	var result *domain.Service
	r.store.read(func(d *state) {
		if row, ok := d.services[id]; ok {
			result = copyOf(row)
		}
	})
	if result == nil {
		return nil, ErrServiceNotFound
	}
	return result, nil
}

func (r *CatalogRepository) GetTariff(_ context.Context, serviceID int64, size domain.PetSize) (*domain.ServiceTariff, error) {
	var result *domain.ServiceTariff
	r.store.read(func(d *state) {
		for _, row := range d.tariffs {
			if row.ServiceID == serviceID && row.Size == size {
				result = copyOf(row)
				return
			}
		}
	})
	if result == nil {
		return nil, ErrTariffNotFound
	}
	return result, nil
}

func (r *CatalogRepository) GetAgeGroup(_ context.Context, id int64) (*domain.AgeGroup, error) {
	var result *domain.AgeGroup
	r.store.read(func(d *state) {
		if row, ok := d.ageGroups[id]; ok {
			result = copyOf(row)
		}
	})
	if result == nil {
		return nil, ErrAgeGroupNotFound
	}
	return result, nil
}

func (r *CatalogRepository) GetBreed(_ context.Context, id int64) (*domain.Breed, error) {
	var result *domain.Breed
	r.store.read(func(d *state) {
		if row, ok := d.breeds[id]; ok {
			result = copyOf(row)
		}
	})
	if result == nil {
		return nil, ErrBreedNotFound
	}
	return result, nil
}

func (r *CatalogRepository) ListExtraServicesByIDs(_ context.Context, ids []int64) ([]*domain.ExtraService, error) {
	result := make([]*domain.ExtraService, 0, len(ids))
	r.store.read(func(d *state) {
		seen := make(map[int64]struct{}, len(ids))
		for _, id := range ids {
			if _, ok := seen[id]; ok {
				continue
			}
			seen[id] = struct{}{}
			if row, ok := d.extraServices[id]; ok {
				result = append(result, copyOf(row))
			}
		}
	})
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (r *CatalogRepository) ListMasters(_ context.Context, activeOnly bool) ([]*domain.Master, error) {
	var result []*domain.Master
	r.store.read(func(d *state) {
		for _, row := range d.masters {
			if activeOnly && !row.IsActive {
				continue
			}
			result = append(result, copyOf(row))
		}
	})
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (r *CatalogRepository) ListServices(_ context.Context) ([]*domain.Service, error) {
	var result []*domain.Service
	r.store.read(func(d *state) {
		for _, row := range d.services {
			result = append(result, copyOf(row))
		}
	})
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (r *CatalogRepository) ListExtraServices(_ context.Context) ([]*domain.ExtraService, error) {
	var result []*domain.ExtraService
	r.store.read(func(d *state) {
		for _, row := range d.extraServices {
			result = append(result, copyOf(row))
		}
	})
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (r *CatalogRepository) ListAgeGroups(_ context.Context) ([]*domain.AgeGroup, error) {
	var result []*domain.AgeGroup
	r.store.read(func(d *state) {
		for _, row := range d.ageGroups {
			result = append(result, copyOf(row))
		}
	})
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (r *CatalogRepository) ListBreeds(_ context.Context, species *domain.Species) ([]*domain.Breed, error) {
	var result []*domain.Breed
	r.store.read(func(d *state) {
		for _, row := range d.breeds {
			if species != nil && row.Species != *species {
				continue
			}
			result = append(result, copyOf(row))
		}
	})
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

// AddMaster добавляет мастера (для сидов и тестов)
func (r *CatalogRepository) AddMaster(m domain.Master) *domain.Master {
	var result *domain.Master
	_ = r.store.write(context.Background(), func(d *state) error {
		m.ID = d.nextID("masters")
		d.masters[m.ID] = copyOf(&m)
		result = copyOf(&m)
		return nil
	})
	return result
}

// SetMasterActive меняет флаг активности мастера
func (r *CatalogRepository) SetMasterActive(id int64, active bool) error {
	return r.store.write(context.Background(), func(d *state) error {
		row, ok := d.masters[id]
		if !ok {
			return ErrMasterNotFound
		}
		row.IsActive = active
		return nil
	})
}

// AddService добавляет услугу
func (r *CatalogRepository) AddService(s domain.Service) *domain.Service {
	var result *domain.Service
	_ = r.store.write(context.Background(), func(d *state) error {
		s.ID = d.nextID("services")
		d.services[s.ID] = copyOf(&s)
		result = copyOf(&s)
		return nil
	})
	return result
}

// AddTariff добавляет тариф
func (r *CatalogRepository) AddTariff(t domain.ServiceTariff) *domain.ServiceTariff {
	var result *domain.ServiceTariff
	_ = r.store.write(context.Background(), func(d *state) error {
		t.ID = d.nextID("service_tariffs")
		d.tariffs[t.ID] = copyOf(&t)
		result = copyOf(&t)
		return nil
	})
	return result
}

// AddExtraService добавляет доп. услугу
func (r *CatalogRepository) AddExtraService(e domain.ExtraService) *domain.ExtraService {
	var result *domain.ExtraService
	_ = r.store.write(context.Background(), func(d *state) error {
		e.ID = d.nextID("extra_services")
		d.extraServices[e.ID] = copyOf(&e)
		result = copyOf(&e)
		return nil
	})
	return result
}

// AddAgeGroup добавляет возрастную группу
func (r *CatalogRepository) AddAgeGroup(g domain.AgeGroup) *domain.AgeGroup {
	var result *domain.AgeGroup
	_ = r.store.write(context.Background(), func(d *state) error {
		g.ID = d.nextID("age_groups")
		d.ageGroups[g.ID] = copyOf(&g)
		result = copyOf(&g)
		return nil
	})
	return result
}

// AddBreed добавляет породу
func (r *CatalogRepository) AddBreed(b domain.Breed) *domain.Breed {
	var result *domain.Breed
	_ = r.store.write(context.Background(), func(d *state) error {
		b.ID = d.nextID("breeds")
		d.breeds[b.ID] = copyOf(&b)
		result = copyOf(&b)
		return nil
	})
	return result
}
