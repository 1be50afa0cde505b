package flow

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/apicombat/go-starter-client/api"
	"github.com/apicombat/go-starter-client/lib/clock"
	"github.com/apicombat/go-starter-client/lib/credentials"
	"github.com/apicombat/go-starter-client/lib/logger"
	"github.com/apicombat/go-starter-client/lib/random"
)

const (
	// teamName is the name submitted when the run has to create a team
	teamName = "Python Starter Team"

	// maxTeamSize is the most units ever submitted to team configuration
	maxTeamSize = 5

	// battleLogDisplayLimit caps how many combat log entries are printed
	battleLogDisplayLimit = 20
)

// Runner plays through the full game loop against the API Combat server:
// authenticate, inspect profile/shop/roster, assemble a team, queue a
// casual battle and wait for the result. Progress is written to Out.
//
// A run has three soft endings besides completion: an empty roster, a
// rejected battle queue and a poll timeout. All three finish the run
// normally; only authentication, team-creation and transport failures are
// reported as errors.
type Runner struct {
	Client *api.Client
	Out    io.Writer
	Clock  clock.Clock
	Random random.Random

	// PollInterval is the delay between battle status checks
	PollInterval time.Duration
	// MaxWait bounds how long the runner polls for battle completion
	MaxWait time.Duration
}

// NewRunner creates a Runner with the default polling cadence
func NewRunner(client *api.Client, out io.Writer) *Runner {
	return &Runner{
		Client:       client,
		Out:          out,
		Clock:        clock.New(),
		Random:       random.New(),
		PollInterval: 3 * time.Second,
		MaxWait:      60 * time.Second,
	}
}

// Run executes the full session sequence. When email and password are both
// non-empty the run logs in; otherwise it registers a fresh account with
// generated credentials.
func (r *Runner) Run(ctx context.Context, email, password string) error {
	r.printf("%s\n", strings.Repeat("=", 50))
	r.printf("  API Combat - Starter Client\n")
	r.printf("%s\n", strings.Repeat("=", 50))

	if err := r.authenticate(ctx, email, password); err != nil {
		return err
	}

	if err := r.showProfile(ctx); err != nil {
		return err
	}

	if err := r.browseShop(ctx); err != nil {
		return err
	}

	roster, err := r.showRoster(ctx)
	if err != nil {
		return err
	}
	if len(roster) == 0 {
		r.printf("\nNo units in roster. Buy some from the shop first!\n")
		return nil
	}

	team, err := r.chooseTeam(ctx, roster)
	if err != nil {
		return err
	}

	status, err := r.queueBattle(ctx, team)
	if err != nil {
		return err
	}
	if status == nil {
		// Queue rejected; a normal ending
		return nil
	}

	if err := r.waitForResult(ctx, status.BattleID); err != nil {
		return err
	}

	r.printf("\n%s\n", strings.Repeat("=", 50))
	r.printf("  GG! Modify this client to build your own.\n")
	r.printf("  Docs: https://apicombat.com/api-docs/v1\n")
	r.printf("%s\n", strings.Repeat("=", 50))
	return nil
}

// authenticate logs in when credentials were supplied, otherwise registers
// a new account with generated credentials
func (r *Runner) authenticate(ctx context.Context, email, password string) error {
	if email != "" && password != "" {
		r.printf("\n--- Logging in as '%s' ---\n", email)
		result, err := r.Client.Login(ctx, email, password)
		if err != nil {
			return fmt.Errorf("login failed: %w", err)
		}
		r.printf("Logged in! Player ID: %s\n", result.PlayerID)
		return nil
	}

	creds := credentials.Generate(r.Random)
	r.printf("\n  Generated credentials:\n")
	r.printf("    Email:    %s\n", creds.Email)
	r.printf("    Password: %s\n", creds.Password)
	r.printf("    (save these to log in later with --email/--password)\n")

	r.printf("\n--- Registering as '%s' ---\n", creds.Username)
	result, err := r.Client.Register(ctx, creds.Username, creds.Email, creds.Password)
	if err != nil {
		return fmt.Errorf("registration failed: %w", err)
	}
	r.printf("Registered! Player ID: %s\n", result.PlayerID)
	return nil
}

// showProfile fetches and prints the player profile
func (r *Runner) showProfile(ctx context.Context) error {
	r.printf("\n--- Player Profile ---\n")
	profile, err := r.Client.GetProfile(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch profile: %w", err)
	}
	r.printf("  Username:  %s\n", profile.Username)
	r.printf("  Level:     %d\n", profile.Level)
	r.printf("  Currency:  %dg\n", profile.Currency)
	r.printf("  Rating:    %d\n", profile.Rating)
	r.printf("  Roster:    %d units\n", profile.RosterCount)
	r.printf("  Teams:     %d teams\n", profile.TeamCount)
	return nil
}

// browseShop lists the units available for purchase
func (r *Runner) browseShop(ctx context.Context) error {
	r.printf("\n--- Unit Shop ---\n")
	units, err := r.Client.ListAvailableUnits(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch shop: %w", err)
	}
	for _, u := range units {
		owned := ""
		if u.AlreadyOwned {
			owned = " (owned)"
		}
		r.printf("  [%-7s] %-20s  HP:%3d  ATK:%3d  DEF:%3d  SPD:%3d  Cost:%4dg%s\n",
			u.Class, u.Name, u.Health, u.Attack, u.Defense, u.Speed, u.UnlockCost, owned)
	}
	return nil
}

// showRoster lists the player's owned units and returns them
func (r *Runner) showRoster(ctx context.Context) ([]api.Unit, error) {
	r.printf("\n--- Your Roster ---\n")
	units, err := r.Client.GetRoster(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch roster: %w", err)
	}
	if len(units) == 0 {
		r.printf("  (empty -- buy units from the shop!)\n")
	}
	for _, u := range units {
		names := make([]string, 0, len(u.Abilities))
		for _, a := range u.Abilities {
			names = append(names, a.Name)
		}
		abilities := strings.Join(names, ", ")
		if abilities == "" {
			abilities = "none"
		}
		r.printf("  [%-7s] %-20s  Lv.%d  HP:%3d  ATK:%3d  DEF:%3d  SPD:%3d  Abilities: %s\n",
			u.Class, u.Name, u.Level, u.Health, u.Attack, u.Defense, u.Speed, abilities)
	}
	return units, nil
}

// chooseTeam reuses the first existing team, or creates one from the roster
func (r *Runner) chooseTeam(ctx context.Context, roster []api.Unit) (*api.Team, error) {
	teams, err := r.Client.ListTeams(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list teams: %w", err)
	}
	if len(teams) > 0 {
		team := teams[0]
		r.printf("\n--- Using existing team: '%s' ---\n", team.Name)
		return &team, nil
	}
	return r.createTeam(ctx, roster)
}

// createTeam configures a team from at most the first maxTeamSize roster units
func (r *Runner) createTeam(ctx context.Context, roster []api.Unit) (*api.Team, error) {
	r.printf("\n--- Creating Team ---\n")

	limit := len(roster)
	if limit > maxTeamSize {
		limit = maxTeamSize
	}
	unitIDs := make([]string, 0, limit)
	for _, u := range roster[:limit] {
		unitIDs = append(unitIDs, u.ID)
	}

	team, err := r.Client.ConfigureTeam(ctx, &api.TeamRequest{
		Name:    teamName,
		UnitIDs: unitIDs,
		Strategy: api.Strategy{
			Formation:      "balanced",
			TargetPriority: []string{"lowest_hp", "healers"},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("team creation failed: %w", err)
	}
	r.printf("  Team '%s' created with %d units\n", team.Name, len(team.Units))
	return team, nil
}

// queueBattle queues the team for a casual battle. A rejection from the
// server (daily battle limit, for instance) is not an error: it prints a
// hint and returns a nil status so the run can end normally.
func (r *Runner) queueBattle(ctx context.Context, team *api.Team) (*api.BattleStatus, error) {
	r.printf("\n--- Queuing for Battle ---\n")
	status, err := r.Client.QueueBattle(ctx, team.ID, api.ModeCasual)
	if err != nil {
		var apiErr *api.APIError
		if errors.As(err, &apiErr) {
			r.printf("  Queue failed (%d): %s\n", apiErr.StatusCode, apiErr.Body)
			r.printf("\nCould not queue. You may have hit the daily battle limit.\n")
			return nil, nil
		}
		return nil, fmt.Errorf("failed to queue battle: %w", err)
	}
	r.printf("  Battle ID: %s\n", status.BattleID)
	r.printf("  Status:    %s\n", status.Status)
	return status, nil
}

// waitForResult polls the battle status until it completes or MaxWait is
// exhausted. A timeout is not an error.
func (r *Runner) waitForResult(ctx context.Context, battleID string) error {
	r.printf("\n--- Waiting for Battle Result ---\n")

	checks := int(r.MaxWait / r.PollInterval)
	for i := 0; i < checks; i++ {
		status, err := r.Client.GetBattleStatus(ctx, battleID)
		if err != nil {
			return fmt.Errorf("failed to fetch battle status: %w", err)
		}

		elapsed := time.Duration(i) * r.PollInterval
		r.printf("  [%ds] Status: %s\n", int(elapsed.Seconds()), status.Status)

		if status.Status == api.BattleStatusCompleted {
			return r.showResults(ctx, battleID)
		}

		r.Clock.Sleep(r.PollInterval)
	}

	logger.Flow.Warn().Str("battleId", battleID).Msg("Battle did not complete in time")
	r.printf("  Timed out waiting for battle to complete.\n")
	return nil
}

// showResults fetches and prints the battle outcome
func (r *Runner) showResults(ctx context.Context, battleID string) error {
	r.printf("\n--- Battle Results ---\n")
	result, err := r.Client.GetBattleResults(ctx, battleID)
	if err != nil {
		return fmt.Errorf("failed to fetch battle results: %w", err)
	}

	winner := result.WinnerID
	if winner == "" {
		winner = "draw"
	}
	r.printf("  Turns:         %d\n", result.Turns)
	r.printf("  Winner:        %s\n", winner)

	// An absent or empty rewards object means there is nothing to report
	if rewards := result.Rewards; rewards != nil && *rewards != (api.Rewards{}) {
		r.printf("  Rating Change: %+d\n", rewards.RatingChange)
		r.printf("  Gold Earned:   %dg\n", rewards.Currency)
		r.printf("  XP Earned:     %d\n", rewards.ExperienceEarned)
	}

	if len(result.BattleLog) > 0 {
		r.printf("\n  --- Combat Log (%d entries) ---\n", len(result.BattleLog))
		limit := len(result.BattleLog)
		if limit > battleLogDisplayLimit {
			limit = battleLogDisplayLimit
		}
		for _, entry := range result.BattleLog[:limit] {
			r.printf("    %s\n", entry)
		}
	}
	return nil
}

func (r *Runner) printf(format string, args ...interface{}) {
	if _, err := fmt.Fprintf(r.Out, format, args...); err != nil {
		logger.Flow.Warn().Err(err).Msg("Failed to write output")
	}
}
