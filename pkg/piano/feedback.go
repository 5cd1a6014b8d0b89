package piano

import (
	"context"
	"fmt"
)

// RateSong sends the listener's rating of song, played on the given station,
// and records it on song once the service acknowledged it. Only [RatingLove]
// can be sent.
func (c *Client) RateSong(ctx context.Context, stationID string, song *Song, rating Rating) error {
	if rating != RatingLove {
		return fmt.Errorf("cannot send rating %s", rating)
	}
	token, err := c.authToken()
	if err != nil {
		return err
	}
	err = c.callSimple(ctx, "station.addFeedback", token, stationID,
		song.MusicID, song.MatchingSeed, song.UserSeed, song.FocusTraitID, true)
	if err != nil {
		return err
	}
	song.Rating = rating
	return nil
}
