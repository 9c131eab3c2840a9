package models

// ErrorResponse is the JSON error envelope returned by every endpoint.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// MatchesResponse is the paginated match list envelope.
type MatchesResponse struct {
	Matches    []MatchDetail `json:"matches"`
	Total      int64         `json:"total"`
	Page       int64         `json:"page"`
	TotalPages int64         `json:"totalPages"`
}

// RatingsResponse is the paginated rating list envelope.
type RatingsResponse struct {
	Ratings    []RatingDetail `json:"ratings"`
	Total      int64          `json:"total"`
	Page       int64          `json:"page"`
	TotalPages int64          `json:"totalPages"`
}

// PlayersResponse wraps the proximity query results.
type PlayersResponse struct {
	Players []AvailablePlayer `json:"players"`
}

// AvailabilityResponse wraps a player's availability sub-record.
type AvailabilityResponse struct {
	Availability *Availability `json:"availability"`
}
