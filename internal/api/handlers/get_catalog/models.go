package get_catalog

import "github.com/m04kA/SMC-GroomingService/internal/domain"

type MasterResponse struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Group string `json:"group"`
}

type ServiceResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type ExtraServiceResponse struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Price int64  `json:"price"`
}

type AgeGroupResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	PriceFactor int    `json:"priceFactor"`
}

type BreedResponse struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Species     string  `json:"species"`
	DefaultSize *string `json:"defaultSize"`
}

func fromMasters(items []*domain.Master) []MasterResponse {
	result := make([]MasterResponse, 0, len(items))
	for _, m := range items {
		result = append(result, MasterResponse{ID: m.ID, Name: m.Name, Group: m.Group})
	}
	return result
}

func fromServices(items []*domain.Service) []ServiceResponse {
	result := make([]ServiceResponse, 0, len(items))
	for _, s := range items {
		result = append(result, ServiceResponse{ID: s.ID, Name: s.Name})
	}
	return result
}

func fromExtraServices(items []*domain.ExtraService) []ExtraServiceResponse {
	result := make([]ExtraServiceResponse, 0, len(items))
	for _, e := range items {
		result = append(result, ExtraServiceResponse{ID: e.ID, Name: e.Name, Price: e.Price})
	}
	return result
}

func fromAgeGroups(items []*domain.AgeGroup) []AgeGroupResponse {
	result := make([]AgeGroupResponse, 0, len(items))
	for _, g := range items {
		result = append(result, AgeGroupResponse{ID: g.ID, Name: g.Name, PriceFactor: g.PriceFactor})
	}
	return result
}

func fromBreeds(items []*domain.Breed) []BreedResponse {
	result := make([]BreedResponse, 0, len(items))
	for _, b := range items {
		item := BreedResponse{ID: b.ID, Name: b.Name, Species: string(b.Species)}
		if b.DefaultSize != nil {
			size := string(*b.DefaultSize)
			item.DefaultSize = &size
		}
		result = append(result, item)
	}
	return result
}
