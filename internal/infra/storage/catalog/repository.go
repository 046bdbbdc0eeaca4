package catalog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-GroomingService/internal/domain"
	"github.com/m04kA/SMC-GroomingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-GroomingService/pkg/psqlbuilder"
)

// Repository справочники салона в PostgreSQL (только чтение)
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория справочников
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

var (
	masterColumns   = []string{"id", "name", "group_label", "is_active"}
	tariffColumns   = []string{"id", "service_id", "size", "price", "duration_minutes"}
	ageGroupColumns = []string{"id", "name", "price_factor"}
	breedColumns    = []string{"id", "name", "species", "default_size"}
)

func (r *Repository) GetMaster(ctx context.Context, id int64) (*domain.Master, error) {
	query, args, err := psqlbuilder.Select(masterColumns...).
		From("masters").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetMaster - build select query: %v", ErrBuildQuery, err)
	}

	var m domain.Master
	err = r.executor(ctx).QueryRowContext(ctx, query, args...).Scan(&m.ID, &m.Name, &m.Group, &m.IsActive)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrMasterNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetMaster - scan: %w", ErrScanRow, err)
	}
	return &m, nil
}

func (r *Repository) GetService(ctx context.Context, id int64) (*domain.Service, error) {
	query, args, err := psqlbuilder.Select("id", "name").
		From("services").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetService - build select query: %v", ErrBuildQuery, err)
	}

	var s domain.Service
	err = r.executor(ctx).QueryRowContext(ctx, query, args...).Scan(&s.ID, &s.Name)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrServiceNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetService - scan: %w", ErrScanRow, err)
	}
	return &s, nil
}

func (r *Repository) GetTariff(ctx context.Context, serviceID int64, size domain.PetSize) (*domain.ServiceTariff, error) {
	query, args, err := psqlbuilder.Select(tariffColumns...).
		From("service_tariffs").
		Where(squirrel.Eq{"service_id": serviceID, "size": size}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetTariff - build select query: %v", ErrBuildQuery, err)
	}

	var t domain.ServiceTariff
	err = r.executor(ctx).QueryRowContext(ctx, query, args...).
		Scan(&t.ID, &t.ServiceID, &t.Size, &t.Price, &t.DurationMinutes)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrTariffNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetTariff - scan: %w", ErrScanRow, err)
	}
	return &t, nil
}

func (r *Repository) GetAgeGroup(ctx context.Context, id int64) (*domain.AgeGroup, error) {
	query, args, err := psqlbuilder.Select(ageGroupColumns...).
		From("age_groups").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetAgeGroup - build select query: %v", ErrBuildQuery, err)
	}

	var g domain.AgeGroup
	err = r.executor(ctx).QueryRowContext(ctx, query, args...).Scan(&g.ID, &g.Name, &g.PriceFactor)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrAgeGroupNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetAgeGroup - scan: %w", ErrScanRow, err)
	}
	return &g, nil
}

func (r *Repository) GetBreed(ctx context.Context, id int64) (*domain.Breed, error) {
	query, args, err := psqlbuilder.Select(breedColumns...).
		From("breeds").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetBreed - build select query: %v", ErrBuildQuery, err)
	}

	b, err := scanBreed(r.executor(ctx).QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBreedNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetBreed - scan: %w", ErrScanRow, err)
	}
	return b, nil
}

// ListExtraServicesByIDs возвращает найденные доп. услуги, отсутствующие id пропускаются
func (r *Repository) ListExtraServicesByIDs(ctx context.Context, ids []int64) ([]*domain.ExtraService, error) {
	if len(ids) == 0 {
		return []*domain.ExtraService{}, nil
	}
	return r.listExtraServices(ctx, squirrel.Eq{"id": ids}, "ListExtraServicesByIDs")
}

func (r *Repository) ListExtraServices(ctx context.Context) ([]*domain.ExtraService, error) {
	return r.listExtraServices(ctx, nil, "ListExtraServices")
}

func (r *Repository) listExtraServices(ctx context.Context, where squirrel.Sqlizer, op string) ([]*domain.ExtraService, error) {
	builder := psqlbuilder.Select("id", "name", "price").
		From("extra_services").
		OrderBy("id")
	if where != nil {
		builder = builder.Where(where)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, op, err)
	}

	rows, err := r.executor(ctx).QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %s - execute select: %w", ErrExecQuery, op, err)
	}
	defer rows.Close()

	result := make([]*domain.ExtraService, 0)
	for rows.Next() {
		var e domain.ExtraService
		if err := rows.Scan(&e.ID, &e.Name, &e.Price); err != nil {
			return nil, fmt.Errorf("%w: %s - scan: %w", ErrScanRow, op, err)
		}
		result = append(result, &e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s - rows iteration: %w", ErrScanRow, op, err)
	}
	return result, nil
}

func (r *Repository) ListMasters(ctx context.Context, activeOnly bool) ([]*domain.Master, error) {
	builder := psqlbuilder.Select(masterColumns...).
		From("masters").
		OrderBy("id")
	if activeOnly {
		builder = builder.Where(squirrel.Eq{"is_active": true})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListMasters - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.executor(ctx).QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListMasters - execute select: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	result := make([]*domain.Master, 0)
	for rows.Next() {
		var m domain.Master
		if err := rows.Scan(&m.ID, &m.Name, &m.Group, &m.IsActive); err != nil {
			return nil, fmt.Errorf("%w: ListMasters - scan: %w", ErrScanRow, err)
		}
		result = append(result, &m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListMasters - rows iteration: %w", ErrScanRow, err)
	}
	return result, nil
}

func (r *Repository) ListServices(ctx context.Context) ([]*domain.Service, error) {
	query, args, err := psqlbuilder.Select("id", "name").
		From("services").
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListServices - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.executor(ctx).QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListServices - execute select: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	result := make([]*domain.Service, 0)
	for rows.Next() {
		var s domain.Service
		if err := rows.Scan(&s.ID, &s.Name); err != nil {
			return nil, fmt.Errorf("%w: ListServices - scan: %w", ErrScanRow, err)
		}
		result = append(result, &s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListServices - rows iteration: %w", ErrScanRow, err)
	}
	return result, nil
}

func (r *Repository) ListAgeGroups(ctx context.Context) ([]*domain.AgeGroup, error) {
	query, args, err := psqlbuilder.Select(ageGroupColumns...).
		From("age_groups").
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListAgeGroups - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.executor(ctx).QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListAgeGroups - execute select: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	result := make([]*domain.AgeGroup, 0)
	for rows.Next() {
		var g domain.AgeGroup
		if err := rows.Scan(&g.ID, &g.Name, &g.PriceFactor); err != nil {
			return nil, fmt.Errorf("%w: ListAgeGroups - scan: %w", ErrScanRow, err)
		}
		result = append(result, &g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListAgeGroups - rows iteration: %w", ErrScanRow, err)
	}
	return result, nil
}

func (r *Repository) ListBreeds(ctx context.Context, species *domain.Species) ([]*domain.Breed, error) {
	builder := psqlbuilder.Select(breedColumns...).
		From("breeds").
		OrderBy("id")
	if species != nil {
		builder = builder.Where(squirrel.Eq{"species": *species})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListBreeds - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.executor(ctx).QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListBreeds - execute select: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	result := make([]*domain.Breed, 0)
	for rows.Next() {
		b, err := scanBreed(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: ListBreeds - scan: %w", ErrScanRow, err)
		}
		result = append(result, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListBreeds - rows iteration: %w", ErrScanRow, err)
	}
	return result, nil
}

func (r *Repository) executor(ctx context.Context) DBExecutor {
	return dbmetrics.GetExecutor(ctx, r.db)
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanBreed(row rowScanner) (*domain.Breed, error) {
	var b domain.Breed
	var defaultSize sql.NullString
	if err := row.Scan(&b.ID, &b.Name, &b.Species, &defaultSize); err != nil {
		return nil, err
	}
	if defaultSize.Valid {
		size := domain.PetSize(defaultSize.String)
		b.DefaultSize = &size
	}
	return &b, nil
}
