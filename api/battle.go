package api

import (
	"context"
	"net/http"
)

// QueueBattle queues a team for a battle in the given mode. Only a 201
// counts as success; any other status is an APIError so callers can treat
// the rejection as a soft stop.
func (c *Client) QueueBattle(ctx context.Context, teamID, mode string) (*BattleStatus, error) {
	req := QueueRequest{
		TeamID: teamID,
		Mode:   mode,
	}

	var status BattleStatus
	if err := c.postExpect(ctx, BattleQueue, http.StatusCreated, req, &status); err != nil {
		return nil, err
	}
	return &status, nil
}

// GetBattleStatus retrieves the current status of a battle
func (c *Client) GetBattleStatus(ctx context.Context, battleID string) (*BattleStatus, error) {
	var status BattleStatus
	if err := c.get(ctx, BattleStatusPath(battleID), &status); err != nil {
		return nil, err
	}
	return &status, nil
}

// GetBattleResults retrieves the full results of a completed battle
func (c *Client) GetBattleResults(ctx context.Context, battleID string) (*BattleResult, error) {
	var result BattleResult
	if err := c.get(ctx, BattleResultsPath(battleID), &result); err != nil {
		return nil, err
	}
	return &result, nil
}
