package models

import (
	"time"
)

type User struct {
	ID             int64     `json:"user_id"`
	Name           string    `json:"name"`
	ContactInfo    string    `json:"contact_info,omitempty"`
	HelperSkills   []string  `json:"helper_skills,omitempty"`
	HelperMaxRange *int      `json:"helper_max_range,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

// LocationSample - запись истории перемещений пользователя.
// При подборе хелперов используется только самый свежий сэмпл.
type LocationSample struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	Timestamp time.Time `json:"timestamp"`
}

// HelperCandidate - активный хелпер с его последней известной позицией.
// Хелпер считается активным, если у него есть хотя бы один навык
// и хотя бы одна запись в истории перемещений.
type HelperCandidate struct {
	UserID         int64     `json:"user_id"`
	Name           string    `json:"name"`
	ContactInfo    string    `json:"contact_info,omitempty"`
	Skills         []string  `json:"skills"`
	HelperMaxRange *int      `json:"max_range,omitempty"`
	Latitude       float64   `json:"latitude"`
	Longitude      float64   `json:"longitude"`
	LastUpdated    time.Time `json:"last_updated"`
}

// HelperMatch - кандидат с рассчитанным расстоянием до точки запроса
type HelperMatch struct {
	HelperCandidate
	DistanceKm float64 `json:"distance_km"`
}
