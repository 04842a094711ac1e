package dto

import "time"

// ErrorMessageResponse is the error body returned by the course endpoints
type ErrorMessageResponse struct {
	Error string `json:"error" example:"invalid startTime \"8am\": time must be formatted as HH:MM"`
}

// HealthResponse reports whether course data is loaded
type HealthResponse struct {
	Message      string             `json:"message" example:"pong"`
	Status       string             `json:"status" example:"success"`
	Sections     int                `json:"sections"`
	Requirements int                `json:"requirements"`
	LoadedAt     *time.Time         `json:"loadedAt,omitempty"`
	Stats        *LoadStatsResponse `json:"stats,omitempty"`
}

// LoadStatsResponse reports what the last load kept and dropped
type LoadStatsResponse struct {
	DroppedBadDay    int `json:"droppedBadDay"`
	DroppedBadTime   int `json:"droppedBadTime"`
	DefaultedType    int `json:"defaultedType"`
	ConflictingCodes int `json:"conflictingCodes"`
}
