package model

// PlayerProfile is a named record of a player's score.
// Name is the primary key in every store.
type PlayerProfile struct {
	Name  string `yaml:"name"`
	Score int    `yaml:"score"`
}

// NewPlayerProfile returns a fresh profile with score 0.
func NewPlayerProfile(name string) PlayerProfile {
	return PlayerProfile{Name: name}
}
