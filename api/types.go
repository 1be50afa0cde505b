package api

// RegisterRequest is the request body for account registration
type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest is the request body for login
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResult is the response from register and login
type AuthResult struct {
	PlayerID string `json:"playerId"`
	Token    string `json:"token"`
}

// Profile is the current player's profile snapshot
type Profile struct {
	Username    string `json:"username"`
	Level       int    `json:"level"`
	Currency    int    `json:"currency"`
	Rating      int    `json:"rating"`
	RosterCount int    `json:"rosterCount"`
	TeamCount   int    `json:"teamCount"`
}

// Ability is a unit ability
type Ability struct {
	Name string `json:"name"`
}

// Unit is a combat character, as returned by the shop and roster endpoints.
// Shop units carry UnlockCost and AlreadyOwned; roster units carry Level and
// Abilities. The server may return more fields; unknown ones are ignored.
type Unit struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Class        string    `json:"class"`
	Health       int       `json:"health"`
	Attack       int       `json:"attack"`
	Defense      int       `json:"defense"`
	Speed        int       `json:"speed"`
	UnlockCost   int       `json:"unlockCost"`
	AlreadyOwned bool      `json:"alreadyOwned"`
	Level        int       `json:"level"`
	Abilities    []Ability `json:"abilities"`
}

// Strategy is a team's battle strategy
type Strategy struct {
	Formation      string   `json:"formation"`
	TargetPriority []string `json:"targetPriority"`
}

// TeamRequest is the request body for team configuration
type TeamRequest struct {
	Name     string   `json:"name"`
	UnitIDs  []string `json:"unitIds"`
	Strategy Strategy `json:"strategy"`
}

// Team is a configured battle team
type Team struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Units    []Unit   `json:"units"`
	Strategy Strategy `json:"strategy"`
}

// QueueRequest is the request body for queuing a battle
type QueueRequest struct {
	TeamID string `json:"teamId"`
	Mode   string `json:"mode"`
}

// BattleStatus is the response from the queue and status endpoints
type BattleStatus struct {
	BattleID string `json:"battleId"`
	Status   string `json:"status"`
}

// Rewards is the reward summary attached to a battle result
type Rewards struct {
	RatingChange     int `json:"ratingChange"`
	Currency         int `json:"currency"`
	ExperienceEarned int `json:"experienceEarned"`
}

// BattleResult is the full outcome of a completed battle
type BattleResult struct {
	Turns     int      `json:"turns"`
	WinnerID  string   `json:"winnerId"`
	Rewards   *Rewards `json:"rewards"`
	BattleLog []string `json:"battleLog"`
}

// Battle status values reported by the server
const (
	BattleStatusCompleted = "Completed"
)

// Battle modes accepted by the queue endpoint
const (
	ModeCasual = "casual"
)
