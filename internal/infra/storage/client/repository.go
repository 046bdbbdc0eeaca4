package client

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-GroomingService/internal/domain"
	"github.com/m04kA/SMC-GroomingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-GroomingService/pkg/psqlbuilder"
)

var (
	clientColumns = []string{"id", "full_name", "phone", "created_at"}
	petColumns    = []string{"id", "client_id", "name", "species", "breed_id", "age_group_id", "size"}
)

// Repository репозиторий клиентов и питомцев
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория клиентов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

func (r *Repository) GetClient(ctx context.Context, id int64) (*domain.Client, error) {
	return r.findClient(ctx, squirrel.Eq{"id": id}, "GetClient")
}

func (r *Repository) FindClientByPhone(ctx context.Context, phone string) (*domain.Client, error) {
	return r.findClient(ctx, squirrel.Eq{"phone": phone}, "FindClientByPhone")
}

func (r *Repository) FindClientByFullName(ctx context.Context, fullName string) (*domain.Client, error) {
	return r.findClient(ctx, squirrel.Eq{"full_name": fullName}, "FindClientByFullName")
}

func (r *Repository) findClient(ctx context.Context, where squirrel.Sqlizer, op string) (*domain.Client, error) {
	query, args, err := psqlbuilder.Select(clientColumns...).
		From("clients").
		Where(where).
		OrderBy("id").
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, op, err)
	}

	client, err := scanClient(r.executor(ctx).QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrClientNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s - scan: %w", ErrScanRow, op, err)
	}
	return client, nil
}

// SearchClientsByName ищет клиентов по части ФИО без учета регистра (ILIKE)
func (r *Repository) SearchClientsByName(ctx context.Context, namePart string) ([]*domain.Client, error) {
	query, args, err := psqlbuilder.Select(clientColumns...).
		From("clients").
		Where(squirrel.ILike{"full_name": "%" + escapeLike(namePart) + "%"}).
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: SearchClientsByName - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.executor(ctx).QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: SearchClientsByName - execute select: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	result := make([]*domain.Client, 0)
	for rows.Next() {
		client, err := scanClient(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: SearchClientsByName - scan: %w", ErrScanRow, err)
		}
		result = append(result, client)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: SearchClientsByName - rows iteration: %w", ErrScanRow, err)
	}
	return result, nil
}

func (r *Repository) CreateClient(ctx context.Context, client *domain.Client) (*domain.Client, error) {
	query, args, err := psqlbuilder.Insert("clients").
		Columns("full_name", "phone").
		Values(client.FullName, client.Phone).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: CreateClient - build insert query: %v", ErrBuildQuery, err)
	}

	created := *client
	if err := r.executor(ctx).QueryRowContext(ctx, query, args...).Scan(&created.ID, &created.CreatedAt); err != nil {
		return nil, fmt.Errorf("%w: CreateClient - execute insert: %w", ErrExecQuery, err)
	}
	return &created, nil
}

func (r *Repository) GetPet(ctx context.Context, id int64) (*domain.Pet, error) {
	return r.findPet(ctx, squirrel.Eq{"id": id}, "GetPet")
}

func (r *Repository) FindPet(ctx context.Context, clientID int64, name string, species domain.Species) (*domain.Pet, error) {
	return r.findPet(ctx, squirrel.Eq{"client_id": clientID, "name": name, "species": species}, "FindPet")
}

func (r *Repository) findPet(ctx context.Context, where squirrel.Sqlizer, op string) (*domain.Pet, error) {
	query, args, err := psqlbuilder.Select(petColumns...).
		From("pets").
		Where(where).
		OrderBy("id").
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, op, err)
	}

	pet, err := scanPet(r.executor(ctx).QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrPetNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s - scan: %w", ErrScanRow, op, err)
	}
	return pet, nil
}

func (r *Repository) ListPets(ctx context.Context, clientID int64) ([]*domain.Pet, error) {
	query, args, err := psqlbuilder.Select(petColumns...).
		From("pets").
		Where(squirrel.Eq{"client_id": clientID}).
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListPets - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.executor(ctx).QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListPets - execute select: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	result := make([]*domain.Pet, 0)
	for rows.Next() {
		pet, err := scanPet(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: ListPets - scan: %w", ErrScanRow, err)
		}
		result = append(result, pet)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListPets - rows iteration: %w", ErrScanRow, err)
	}
	return result, nil
}

func (r *Repository) CreatePet(ctx context.Context, pet *domain.Pet) (*domain.Pet, error) {
	query, args, err := psqlbuilder.Insert("pets").
		Columns("client_id", "name", "species", "breed_id", "age_group_id", "size").
		Values(pet.ClientID, pet.Name, pet.Species, pet.BreedID, pet.AgeGroupID, pet.Size).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: CreatePet - build insert query: %v", ErrBuildQuery, err)
	}

	created := *pet
	if err := r.executor(ctx).QueryRowContext(ctx, query, args...).Scan(&created.ID); err != nil {
		return nil, fmt.Errorf("%w: CreatePet - execute insert: %w", ErrExecQuery, err)
	}
	return &created, nil
}

func (r *Repository) executor(ctx context.Context) DBExecutor {
	return dbmetrics.GetExecutor(ctx, r.db)
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanClient(row rowScanner) (*domain.Client, error) {
	var c domain.Client
	if err := row.Scan(&c.ID, &c.FullName, &c.Phone, &c.CreatedAt); err != nil {
		return nil, err
	}
	return &c, nil
}

func scanPet(row rowScanner) (*domain.Pet, error) {
	var p domain.Pet
	if err := row.Scan(&p.ID, &p.ClientID, &p.Name, &p.Species, &p.BreedID, &p.AgeGroupID, &p.Size); err != nil {
		return nil, err
	}
	return &p, nil
}

// escapeLike экранирует спецсимволы шаблона LIKE
func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}
