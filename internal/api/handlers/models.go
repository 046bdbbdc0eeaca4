package handlers

import (
	"github.com/m04kA/SMC-GroomingService/internal/domain"
)

// OrderResponse HTTP представление заказа
type OrderResponse struct {
	ID              int64   `json:"id"`
	Date            string  `json:"date"`
	StartTime       string  `json:"startTime"`
	EndTime         string  `json:"endTime"`
	Price           int64   `json:"price"`
	Status          string  `json:"status"`
	ClientID        int64   `json:"clientId"`
	ClientName      string  `json:"clientName"`
	PetID           int64   `json:"petId"`
	PetName         string  `json:"petName"`
	ServiceID       int64   `json:"serviceId"`
	ServiceName     string  `json:"serviceName"`
	MasterID        int64   `json:"masterId"`
	MasterName      string  `json:"masterName"`
	Comment         *string `json:"comment,omitempty"`
	ExtraServiceIDs []int64 `json:"extraServiceIds"`
}

// FromOrderView конвертирует представление заказа в HTTP ответ
func FromOrderView(v *domain.OrderView) *OrderResponse {
	extras := v.ExtraServiceIDs
	if extras == nil {
		extras = []int64{}
	}
	return &OrderResponse{
		ID:              v.ID,
		Date:            v.Date.Format(domain.DateFormat),
		StartTime:       v.StartTime.String(),
		EndTime:         v.EndTime.String(),
		Price:           v.Price,
		Status:          string(v.Status),
		ClientID:        v.ClientID,
		ClientName:      v.ClientName,
		PetID:           v.PetID,
		PetName:         v.PetName,
		ServiceID:       v.ServiceID,
		ServiceName:     v.ServiceName,
		MasterID:        v.MasterID,
		MasterName:      v.MasterName,
		Comment:         v.Comment,
		ExtraServiceIDs: extras,
	}
}

// FromOrderViews конвертирует список заказов, пустой список остается массивом
func FromOrderViews(views []*domain.OrderView) []*OrderResponse {
	result := make([]*OrderResponse, 0, len(views))
	for _, v := range views {
		result = append(result, FromOrderView(v))
	}
	return result
}
