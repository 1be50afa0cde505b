package api

import "fmt"

// API path constants
const (
	// Base API path
	APIBase = "/api/v1"

	// Authentication paths
	AuthBase     = APIBase + "/auth"
	AuthRegister = AuthBase + "/register"
	AuthLogin    = AuthBase + "/login"

	// Player paths
	PlayerBase            = APIBase + "/player"
	PlayerProfile         = PlayerBase + "/profile"
	PlayerRoster          = PlayerBase + "/roster"
	PlayerRosterAvailable = PlayerRoster + "/available"

	// Team paths
	TeamBase      = APIBase + "/team"
	TeamConfigure = TeamBase + "/configure"
	TeamList      = TeamBase + "/list"

	// Battle paths
	BattleBase  = APIBase + "/battle"
	BattleQueue = BattleBase + "/queue"
)

// BattleStatusPath returns the path for a battle's status
func BattleStatusPath(battleID string) string {
	return fmt.Sprintf("%s/status/%s", BattleBase, battleID)
}

// BattleResultsPath returns the path for a battle's results
func BattleResultsPath(battleID string) string {
	return fmt.Sprintf("%s/results/%s", BattleBase, battleID)
}
