package api

import "context"

// GetProfile retrieves the current player's profile
func (c *Client) GetProfile(ctx context.Context) (*Profile, error) {
	var profile Profile
	if err := c.get(ctx, PlayerProfile, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

// ListAvailableUnits retrieves the units available in the shop
func (c *Client) ListAvailableUnits(ctx context.Context) ([]Unit, error) {
	var units []Unit
	if err := c.get(ctx, PlayerRosterAvailable, &units); err != nil {
		return nil, err
	}
	return units, nil
}

// GetRoster retrieves the player's owned units
func (c *Client) GetRoster(ctx context.Context) ([]Unit, error) {
	var units []Unit
	if err := c.get(ctx, PlayerRoster, &units); err != nil {
		return nil, err
	}
	return units, nil
}
