package domain

import "time"

// Client клиент салона
type Client struct {
	ID        int64
	FullName  string
	Phone     *string
	CreatedAt time.Time
}

// Pet питомец клиента
type Pet struct {
	ID         int64
	ClientID   int64
	Name       string
	Species    Species
	BreedID    *int64
	AgeGroupID int64
	Size       PetSize
}

// ClientWithPets клиент вместе с питомцами (результат поиска)
type ClientWithPets struct {
	Client *Client
	Pets   []*Pet
}
