package search_clients

import "github.com/m04kA/SMC-GroomingService/internal/domain"

// ClientResponse клиент вместе с питомцами
type ClientResponse struct {
	ID       int64         `json:"id"`
	FullName string        `json:"fullName"`
	Phone    *string       `json:"phone"`
	Pets     []PetResponse `json:"pets"`
}

type PetResponse struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	Species    string `json:"species"`
	BreedID    *int64 `json:"breedId"`
	AgeGroupID int64  `json:"ageGroupId"`
	Size       string `json:"size"`
}

func fromClient(c *domain.ClientWithPets) ClientResponse {
	pets := make([]PetResponse, 0, len(c.Pets))
	for _, p := range c.Pets {
		pets = append(pets, PetResponse{
			ID:         p.ID,
			Name:       p.Name,
			Species:    string(p.Species),
			BreedID:    p.BreedID,
			AgeGroupID: p.AgeGroupID,
			Size:       string(p.Size),
		})
	}
	return ClientResponse{
		ID:       c.Client.ID,
		FullName: c.Client.FullName,
		Phone:    c.Client.Phone,
		Pets:     pets,
	}
}

func fromClients(items []*domain.ClientWithPets) []ClientResponse {
	result := make([]ClientResponse, 0, len(items))
	for _, c := range items {
		result = append(result, fromClient(c))
	}
	return result
}
