package models

import "time"

// MatchStatus is the match lifecycle state.
type MatchStatus string

const (
	StatusScheduled  MatchStatus = "scheduled"
	StatusInProgress MatchStatus = "in-progress"
	StatusCompleted  MatchStatus = "completed"
)

func (s MatchStatus) Valid() bool {
	switch s {
	case StatusScheduled, StatusInProgress, StatusCompleted:
		return true
	}
	return false
}

// Rank orders statuses for detecting backwards transitions. Unknown values
// rank lowest.
func (s MatchStatus) Rank() int {
	switch s {
	case StatusScheduled:
		return 1
	case StatusInProgress:
		return 2
	case StatusCompleted:
		return 3
	}
	return 0
}

// TeamSide selects the home or away roster.
type TeamSide string

const (
	SideHome TeamSide = "home"
	SideAway TeamSide = "away"
)

func (s TeamSide) Valid() bool { return s == SideHome || s == SideAway }

// Location is where a match is played.
type Location struct {
	Name        string      `json:"name" bson:"name"`
	Address     string      `json:"address" bson:"address"`
	City        string      `json:"city" bson:"city"`
	Coordinates Coordinates `json:"coordinates" bson:"coordinates"`
}

// Teams holds the two rosters. The same player id never appears in both.
type Teams struct {
	Home []string `json:"home" bson:"home"`
	Away []string `json:"away" bson:"away"`
}

// Contains reports whether the player appears in either roster.
func (t Teams) Contains(playerID string) bool {
	for _, id := range t.Home {
		if id == playerID {
			return true
		}
	}
	for _, id := range t.Away {
		if id == playerID {
			return true
		}
	}
	return false
}

// Scores is the final or running score pair. Meaningful once completed.
type Scores struct {
	Home int `json:"home" bson:"home"`
	Away int `json:"away" bson:"away"`
}

// Match is a scheduled game between two ad hoc rosters.
type Match struct {
	ID        string      `json:"id" bson:"_id"`
	Date      time.Time   `json:"date" bson:"date"`
	Location  Location    `json:"location" bson:"location"`
	Teams     Teams       `json:"teams" bson:"teams"`
	Status    MatchStatus `json:"status" bson:"status"`
	Scores    Scores      `json:"scores" bson:"scores"`
	CreatedBy string      `json:"createdBy" bson:"createdBy"`
	CreatedAt time.Time   `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time   `json:"updatedAt" bson:"updatedAt"`
}

// MatchDetail is a match with roster and creator ids resolved to names.
type MatchDetail struct {
	Match
	HomePlayers   []PublicUser `json:"homePlayers"`
	AwayPlayers   []PublicUser `json:"awayPlayers"`
	CreatedByName string       `json:"createdByName"`
}

// MatchFilter is the conjunctive filter set for listing matches.
type MatchFilter struct {
	Status    MatchStatus
	City      string
	DateFrom  *time.Time
	DateTo    *time.Time
	Limit     int64
	Skip      int64
}
