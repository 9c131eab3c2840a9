package models

import "time"

// Skills is the six-dimension skill vector, each bounded 1..10.
type Skills struct {
	Pace      int `json:"pace" bson:"pace"`
	Shooting  int `json:"shooting" bson:"shooting"`
	Passing   int `json:"passing" bson:"passing"`
	Dribbling int `json:"dribbling" bson:"dribbling"`
	Defending int `json:"defending" bson:"defending"`
	Physical  int `json:"physical" bson:"physical"`
}

// Valid reports whether every dimension is within 1..10.
func (s Skills) Valid() bool {
	for _, v := range [6]int{s.Pace, s.Shooting, s.Passing, s.Dribbling, s.Defending, s.Physical} {
		if v < 1 || v > 10 {
			return false
		}
	}
	return true
}

// Overall is the mean of the six dimensions.
func (s Skills) Overall() float64 {
	sum := s.Pace + s.Shooting + s.Passing + s.Dribbling + s.Defending + s.Physical
	return float64(sum) / 6
}

// SkillsPatch carries the subset of dimensions supplied by an update.
// Nil fields are left untouched.
type SkillsPatch struct {
	Pace      *int `json:"pace,omitempty"`
	Shooting  *int `json:"shooting,omitempty"`
	Passing   *int `json:"passing,omitempty"`
	Dribbling *int `json:"dribbling,omitempty"`
	Defending *int `json:"defending,omitempty"`
	Physical  *int `json:"physical,omitempty"`
}

// Apply merges the patch into a copy of base.
func (p SkillsPatch) Apply(base Skills) Skills {
	if p.Pace != nil {
		base.Pace = *p.Pace
	}
	if p.Shooting != nil {
		base.Shooting = *p.Shooting
	}
	if p.Passing != nil {
		base.Passing = *p.Passing
	}
	if p.Dribbling != nil {
		base.Dribbling = *p.Dribbling
	}
	if p.Defending != nil {
		base.Defending = *p.Defending
	}
	if p.Physical != nil {
		base.Physical = *p.Physical
	}
	return base
}

// Rating ties one rater's judgement of one player's performance in one match.
// At most one rating exists per (match, player, rater) triple.
type Rating struct {
	ID        string    `json:"id" bson:"_id"`
	MatchID   string    `json:"matchId" bson:"matchId"`
	PlayerID  string    `json:"playerId" bson:"playerId"`
	RaterID   string    `json:"raterId" bson:"raterId"`
	Skills    Skills    `json:"skills" bson:"skills"`
	Comments  string    `json:"comments,omitempty" bson:"comments,omitempty"`
	Overall   float64   `json:"overall" bson:"overall"`
	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt" bson:"updatedAt"`
}

// RatingDetail is a rating with player and rater names resolved.
type RatingDetail struct {
	Rating
	PlayerName string `json:"playerName"`
	RaterName  string `json:"raterName"`
}

// AverageRatings is the per-dimension mean over all of a player's ratings.
type AverageRatings struct {
	Overall      float64 `json:"overall"`
	Skills       struct {
		Pace      float64 `json:"pace"`
		Shooting  float64 `json:"shooting"`
		Passing   float64 `json:"passing"`
		Dribbling float64 `json:"dribbling"`
		Defending float64 `json:"defending"`
		Physical  float64 `json:"physical"`
	} `json:"skills"`
	TotalRatings int `json:"totalRatings"`
}

// RatingListOptions controls pagination and ordering of player rating lists.
type RatingListOptions struct {
	Limit  int64
	Skip   int64
	SortBy string // "date" or "rating"
	Order  string // "asc" or "desc"
}
