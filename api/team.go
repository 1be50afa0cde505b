package api

import (
	"context"
	"net/http"
)

// ConfigureTeam creates a new battle team. Only a 201 counts as success.
func (c *Client) ConfigureTeam(ctx context.Context, req *TeamRequest) (*Team, error) {
	var team Team
	if err := c.postExpect(ctx, TeamConfigure, http.StatusCreated, req, &team); err != nil {
		return nil, err
	}
	return &team, nil
}

// ListTeams retrieves the player's existing teams
func (c *Client) ListTeams(ctx context.Context) ([]Team, error) {
	var teams []Team
	if err := c.get(ctx, TeamList, &teams); err != nil {
		return nil, err
	}
	return teams, nil
}
