package models

import "time"

// Role discriminates the user sub-shape stored alongside the common fields.
type Role string

const (
	RolePlayer Role = "player"
	RoleTeam   Role = "team"
	RoleScout  Role = "scout"
)

func (r Role) Valid() bool {
	switch r {
	case RolePlayer, RoleTeam, RoleScout:
		return true
	}
	return false
}

// Coordinates is a latitude/longitude pair in degrees.
type Coordinates struct {
	Latitude  float64 `json:"latitude" bson:"latitude"`
	Longitude float64 `json:"longitude" bson:"longitude"`
}

// Availability is a player's self-reported, time-bounded willingness to join
// pickup games.
type Availability struct {
	IsAvailable        bool         `json:"isAvailable" bson:"isAvailable"`
	AvailableUntil     *time.Time   `json:"availableUntil,omitempty" bson:"availableUntil,omitempty"`
	PreferredPositions []string     `json:"preferredPositions,omitempty" bson:"preferredPositions,omitempty"`
	MaxDistance        int          `json:"maxDistance,omitempty" bson:"maxDistance,omitempty"`
	Location           *Coordinates `json:"location,omitempty" bson:"location,omitempty"`
	LastUpdated        time.Time    `json:"lastUpdated" bson:"lastUpdated"`
}

// PlayerProfile holds the player-specific payload.
type PlayerProfile struct {
	Position      string        `json:"position,omitempty" bson:"position,omitempty"`
	Skills        []string      `json:"skills,omitempty" bson:"skills,omitempty"`
	Age           int           `json:"age,omitempty" bson:"age,omitempty"`
	Height        int           `json:"height,omitempty" bson:"height,omitempty"`
	Weight        int           `json:"weight,omitempty" bson:"weight,omitempty"`
	DominantFoot  string        `json:"dominantFoot,omitempty" bson:"dominantFoot,omitempty"`
	AverageRating float64       `json:"averageRating" bson:"averageRating"`
	MatchesPlayed int           `json:"matchesPlayed" bson:"matchesPlayed"`
	Availability  *Availability `json:"availability,omitempty" bson:"availability,omitempty"`
}

// TeamProfile holds the team-specific payload.
type TeamProfile struct {
	Players   []string   `json:"players,omitempty" bson:"players,omitempty"`
	Matches   []string   `json:"matches,omitempty" bson:"matches,omitempty"`
	FoundedAt *time.Time `json:"foundedAt,omitempty" bson:"foundedAt,omitempty"`
}

// ScoutProfile holds the scout-specific payload.
type ScoutProfile struct {
	Organization   string   `json:"organization,omitempty" bson:"organization,omitempty"`
	PlayersTracked []string `json:"playersTracked,omitempty" bson:"playersTracked,omitempty"`
}

// User is a registered account. Exactly one of Player/Team/Scout is set,
// matching the Role discriminator.
type User struct {
	ID             string         `json:"id" bson:"_id"`
	Name           string         `json:"name" bson:"name"`
	Email          string         `json:"email" bson:"email"`
	PasswordHash   string         `json:"-" bson:"passwordHash"`
	Role           Role           `json:"role" bson:"role"`
	ProfilePicture string         `json:"profilePicture,omitempty" bson:"profilePicture,omitempty"`
	Bio            string         `json:"bio,omitempty" bson:"bio,omitempty"`
	Location       string         `json:"location,omitempty" bson:"location,omitempty"`
	Player         *PlayerProfile `json:"player,omitempty" bson:"player,omitempty"`
	Team           *TeamProfile   `json:"team,omitempty" bson:"team,omitempty"`
	Scout          *ScoutProfile  `json:"scout,omitempty" bson:"scout,omitempty"`
	CreatedAt      time.Time      `json:"createdAt" bson:"createdAt"`
	UpdatedAt      time.Time      `json:"updatedAt" bson:"updatedAt"`
}

// PublicUser is the representation safe to return to other users.
type PublicUser struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Role Role   `json:"role"`
}

func (u *User) Public() PublicUser {
	return PublicUser{ID: u.ID, Name: u.Name, Role: u.Role}
}

// AvailablePlayer is the proximity query result row.
type AvailablePlayer struct {
	ID             string     `json:"id"`
	Name           string     `json:"name"`
	Positions      []string   `json:"position"`
	MaxDistance    int        `json:"maxDistance"`
	AvailableUntil *time.Time `json:"availableUntil,omitempty"`
	DistanceKm     float64    `json:"distanceKm"`
}
