package piano

import (
	"context"
	"fmt"
)

// Login authenticates the listener and keeps the returned session on the
// client for the calls that follow.
func (c *Client) Login(ctx context.Context, username, password string) (*UserInfo, error) {
	doc, err := c.call(ctx, "listener.authenticateListener", username, password)
	if err != nil {
		return nil, err
	}
	user, err := ParseUserInfo(doc)
	if err != nil {
		return nil, fmt.Errorf("parse login response: %w", err)
	}
	if user.AuthToken == "" {
		return nil, fmt.Errorf("login response carried no auth token: %w", ErrShape)
	}

	c.user = user
	c.log.Info().Str("listener_id", user.ListenerID).Msg("logged in")
	return user, nil
}
