package set_order_status

// SetStatusRequest HTTP request model
type SetStatusRequest struct {
	Status string `json:"status"` // planned | done | cancelled
}
