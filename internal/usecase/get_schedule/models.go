package get_schedule

import "time"

// Request границы периода включительно, мастер необязателен
type Request struct {
	DateFrom time.Time
	DateTo   time.Time
	MasterID *int64
}
