package memory

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/m04kA/SMC-GroomingService/internal/domain"
)

// ClientRepository клиенты и питомцы в памяти
type ClientRepository struct {
	store *Store
}

func (r *ClientRepository) GetClient(_ context.Context, id int64) (*domain.Client, error) {
	var result *domain.Client
	r.store.read(func(d *state) {
		if row, ok := d.clients[id]; ok {
			result = copyOf(row)
		}
	})
	if result == nil {
		return nil, ErrClientNotFound
	}
	return result, nil
}

func (r *ClientRepository) FindClientByPhone(_ context.Context, phone string) (*domain.Client, error) {
	return r.findClient(func(c *clientRow) bool {
		return c.Phone != nil && *c.Phone == phone
	})
}

func (r *ClientRepository) FindClientByFullName(_ context.Context, fullName string) (*domain.Client, error) {
	return r.findClient(func(c *clientRow) bool {
		return c.FullName == fullName
	})
}

// findClient возвращает клиента с минимальным id среди подходящих
func (r *ClientRepository) findClient(match func(c *clientRow) bool) (*domain.Client, error) {
	var result *domain.Client
	r.store.read(func(d *state) {
		for _, row := range d.clients {
			if !match(row) {
				continue
			}
			if result == nil || row.ID < result.ID {
				result = copyOf(row)
			}
		}
	})
	if result == nil {
		return nil, ErrClientNotFound
	}
	return result, nil
}

func (r *ClientRepository) SearchClientsByName(_ context.Context, namePart string) ([]*domain.Client, error) {
	needle := strings.ToLower(namePart)
	var result []*domain.Client
	r.store.read(func(d *state) {
		for _, row := range d.clients {
			if strings.Contains(strings.ToLower(row.FullName), needle) {
				result = append(result, copyOf(row))
			}
		}
	})
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (r *ClientRepository) CreateClient(ctx context.Context, client *domain.Client) (*domain.Client, error) {
	var result *domain.Client
	err := r.store.write(ctx, func(d *state) error {
		row := copyOf(client)
		row.ID = d.nextID("clients")
		row.CreatedAt = time.Now().UTC()
		d.clients[row.ID] = row
		result = copyOf(row)
		return nil
	})
	return result, err
}

func (r *ClientRepository) GetPet(_ context.Context, id int64) (*domain.Pet, error) {
	var result *domain.Pet
	r.store.read(func(d *state) {
		if row, ok := d.pets[id]; ok {
			result = copyOf(row)
		}
	})
	if result == nil {
		return nil, ErrPetNotFound
	}
	return result, nil
}

func (r *ClientRepository) FindPet(_ context.Context, clientID int64, name string, species domain.Species) (*domain.Pet, error) {
	var result *domain.Pet
	r.store.read(func(d *state) {
		for _, row := range d.pets {
			if row.ClientID != clientID || row.Name != name || row.Species != species {
				continue
			}
			if result == nil || row.ID < result.ID {
				result = copyOf(row)
			}
		}
	})
	if result == nil {
		return nil, ErrPetNotFound
	}
	return result, nil
}

func (r *ClientRepository) ListPets(_ context.Context, clientID int64) ([]*domain.Pet, error) {
	result := make([]*domain.Pet, 0)
	r.store.read(func(d *state) {
		for _, row := range d.pets {
			if row.ClientID == clientID {
				result = append(result, copyOf(row))
			}
		}
	})
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (r *ClientRepository) CreatePet(ctx context.Context, pet *domain.Pet) (*domain.Pet, error) {
	var result *domain.Pet
	err := r.store.write(ctx, func(d *state) error {
		if _, ok := d.clients[pet.ClientID]; !ok {
			return ErrClientNotFound
		}
		row := copyOf(pet)
		row.ID = d.nextID("pets")
		d.pets[row.ID] = row
		result = copyOf(row)
		return nil
	})
	return result, err
}

// CountClients количество клиентов (для тестов)
func (r *ClientRepository) CountClients() int {
	var n int
	r.store.read(func(d *state) { n = len(d.clients) })
	return n
}

// CountPets количество питомцев (для тестов)
func (r *ClientRepository) CountPets() int {
	var n int
	r.store.read(func(d *state) { n = len(d.pets) })
	return n
}
