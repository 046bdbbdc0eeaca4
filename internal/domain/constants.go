package domain

// Рабочий день салона, полуинтервал [BusinessDayStart, BusinessDayEnd)
const (
	BusinessDayStart = "09:00"
	BusinessDayEnd   = "20:00"
)

// Business validation constants
const (
	MaxCommentLength  = 1000
	MaxFullNameLength = 255
	MaxPetNameLength  = 100
	MaxExtraServices  = 20
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
