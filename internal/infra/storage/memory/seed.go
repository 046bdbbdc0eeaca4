package memory

import (
	"github.com/m04kA/SMC-GroomingService/internal/domain"
	"github.com/m04kA/SMC-GroomingService/pkg/ptr"
)

// SeedDefaults заполняет справочники стартовыми данными салона.
// Повторный вызов ничего не делает.
func (s *Store) SeedDefaults() {
	var seeded bool
	s.read(func(d *state) { seeded = len(d.masters) > 0 })
	if seeded {
		return
	}

	catalog := s.Catalog()

	for _, m := range []domain.Master{
		{Name: "Анна", Group: "A", IsActive: true},
		{Name: "Ольга", Group: "A", IsActive: true},
		{Name: "Ирина", Group: "B", IsActive: true},
		{Name: "Мария", Group: "B", IsActive: true},
	} {
		catalog.AddMaster(m)
	}

	for _, g := range []domain.AgeGroup{
		{Name: "Щенок", PriceFactor: 90},
		{Name: "Взрослый", PriceFactor: 100},
		{Name: "Пожилой", PriceFactor: 110},
	} {
		catalog.AddAgeGroup(g)
	}

	for _, b := range defaultBreeds() {
		catalog.AddBreed(b)
	}

	services := make(map[string]int64)
	for _, name := range []string{"Комплексный уход", "Гигиенический уход", "Тримминг", "Стрижка", "Экспресс-линька"} {
		services[name] = catalog.AddService(domain.Service{Name: name}).ID
	}

	type tariff struct {
		service  string
		size     domain.PetSize
		price    int64
		duration int
	}
	for _, t := range []tariff{
		{"Комплексный уход", domain.PetSizeDecorative, 2000, 90},
		{"Гигиенический уход", domain.PetSizeDecorative, 1300, 60},
		{"Тримминг", domain.PetSizeDecorative, 2600, 90},
		{"Стрижка", domain.PetSizeDecorative, 2200, 90},

		{"Комплексный уход", domain.PetSizeMedium, 2900, 120},
		{"Гигиенический уход", domain.PetSizeMedium, 2000, 90},
		{"Тримминг", domain.PetSizeMedium, 3000, 120},
		{"Стрижка", domain.PetSizeMedium, 2500, 120},

		{"Комплексный уход", domain.PetSizeLarge, 4200, 150},
		{"Гигиенический уход", domain.PetSizeLarge, 3200, 120},
		{"Тримминг", domain.PetSizeLarge, 4900, 180},
		{"Стрижка", domain.PetSizeLarge, 4300, 150},

		{"Комплексный уход", domain.PetSizeExtraLarge, 5500, 180},
		{"Гигиенический уход", domain.PetSizeExtraLarge, 4700, 150},
		{"Тримминг", domain.PetSizeExtraLarge, 8000, 210},
		{"Стрижка", domain.PetSizeExtraLarge, 5500, 180},
	} {
		catalog.AddTariff(domain.ServiceTariff{
			ServiceID:       services[t.service],
			Size:            t.size,
			Price:           t.price,
			DurationMinutes: t.duration,
		})
	}

	for _, e := range []domain.ExtraService{
		{Name: "Окрашивание шерсти", Price: 500},
		{Name: "Выбривание узора", Price: 200},
		{Name: "Стрижка когтей с подпиливанием", Price: 300},
		{Name: "Вычес шерсти (1 час)", Price: 400},
		{Name: "Доплата за агрессивность", Price: 500},
		{Name: "Сухой уход для щенков до 3 месяцев", Price: 500},
	} {
		catalog.AddExtraService(e)
	}
}

func defaultBreeds() []domain.Breed {
	dog := func(name string, size domain.PetSize) domain.Breed {
		return domain.Breed{Name: name, Species: domain.SpeciesDog, DefaultSize: ptr.Ptr(size)}
	}

	return []domain.Breed{
		dog("Йоркширский терьер", domain.PetSizeDecorative),
		dog("Мальтезе", domain.PetSizeDecorative),
		dog("Шпиц померанский", domain.PetSizeDecorative),
		dog("Чихуахуа", domain.PetSizeDecorative),
		dog("Той-терьер", domain.PetSizeDecorative),
		dog("Китайская хохлатая", domain.PetSizeDecorative),

		dog("Мопс", domain.PetSizeMedium),
		dog("Французский бульдог", domain.PetSizeMedium),
		dog("Корги", domain.PetSizeMedium),
		dog("Сиба-ину", domain.PetSizeMedium),
		dog("Бигль", domain.PetSizeMedium),

		dog("Лабрадор", domain.PetSizeLarge),
		dog("Хаски", domain.PetSizeLarge),
		dog("Немецкая овчарка", domain.PetSizeLarge),
		dog("Золотистый ретривер", domain.PetSizeLarge),

		dog("Сенбернар", domain.PetSizeExtraLarge),
		dog("Алабай", domain.PetSizeExtraLarge),
		dog("Ньюфаундленд", domain.PetSizeExtraLarge),

		dog("Беспородная (мелкая)", domain.PetSizeDecorative),
		dog("Беспородная (средняя)", domain.PetSizeMedium),
		dog("Беспородная (крупная)", domain.PetSizeLarge),

		{Name: "Метис", Species: domain.SpeciesDog},
		{Name: "Британская короткошерстная", Species: domain.SpeciesCat, DefaultSize: ptr.Ptr(domain.PetSizeMedium)},
		{Name: "Мейн-кун", Species: domain.SpeciesCat, DefaultSize: ptr.Ptr(domain.PetSizeLarge)},
		{Name: "Беспородная кошка", Species: domain.SpeciesCat},
	}
}
