package piano

import (
	"context"
	"fmt"
)

// GetStations returns the listener's stations in the order the service lists
// them.
func (c *Client) GetStations(ctx context.Context) ([]Station, error) {
	token, err := c.authToken()
	if err != nil {
		return nil, err
	}
	doc, err := c.call(ctx, "station.getStations", token)
	if err != nil {
		return nil, err
	}
	stations, err := ParseStations(doc)
	if err != nil {
		return nil, fmt.Errorf("parse station list: %w", err)
	}
	return stations, nil
}

// RenameStation gives the station a new name.
func (c *Client) RenameStation(ctx context.Context, stationID, name string) error {
	token, err := c.authToken()
	if err != nil {
		return err
	}
	return c.callSimple(ctx, "station.setStationName", token, stationID, name)
}

// DeleteStation removes the station from the listener's station list.
func (c *Client) DeleteStation(ctx context.Context, stationID string) error {
	token, err := c.authToken()
	if err != nil {
		return err
	}
	return c.callSimple(ctx, "station.removeStation", token, stationID)
}
