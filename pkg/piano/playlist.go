package piano

import (
	"context"
	"fmt"
)

// AudioFormat selects the encoding of the audio URLs in a playlist.
type AudioFormat string

const (
	AudioFormatAACPlus AudioFormat = "aacplus"
	AudioFormatMP3     AudioFormat = "mp3"
	AudioFormatMP3Hifi AudioFormat = "mp3-hifi"
)

// GetPlaylist fetches the next few songs of a station. The audio URLs of the
// returned songs are already decrypted.
func (c *Client) GetPlaylist(ctx context.Context, stationID string, format AudioFormat) ([]Song, error) {
	token, err := c.authToken()
	if err != nil {
		return nil, err
	}
	if format == "" {
		format = AudioFormatMP3
	}
	doc, err := c.call(ctx, "playlist.getFragment", token, stationID, string(format))
	if err != nil {
		return nil, err
	}
	songs, err := ParsePlaylist(doc, c.decrypter)
	if err != nil {
		return nil, fmt.Errorf("parse playlist of station %s: %w", stationID, err)
	}
	return songs, nil
}
