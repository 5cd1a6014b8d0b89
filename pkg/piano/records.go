package piano

// UserInfo is the session information returned by a login. Fields the
// service did not send are left empty.
type UserInfo struct {
	WebAuthToken string
	AuthToken    string
	ListenerID   string
}

// Station is a radio station of the logged in listener.
type Station struct {
	ID   string
	Name string
}

// Rating is the listener's opinion of a song.
type Rating int

const (
	RatingNone Rating = iota
	RatingLove
)

func (r Rating) String() string {
	switch r {
	case RatingLove:
		return "love"
	default:
		return "none"
	}
}

// Song is an entry of a station's playlist.
type Song struct {
	// AudioURL is the playable URL with its encrypted tail already decrypted.
	AudioURL     string
	Artist       string
	MusicID      string
	MatchingSeed string
	UserSeed     string
	FocusTraitID string
	Title        string
	Rating       Rating
}

// scalarText returns the string held by a <value> element, either as its own
// text or as the text of its single typed child such as <string> or
// <boolean>.
func scalarText(value *node) (string, bool) {
	if value.text != "" {
		return value.text, true
	}
	if len(value.children) == 1 && value.children[0].text != "" {
		return value.children[0].text, true
	}
	return "", false
}

func visitUserInfo(user *UserInfo, key string, value *node) error {
	s, ok := scalarText(value)
	if !ok {
		return nil
	}
	switch key {
	case "webAuthToken":
		user.WebAuthToken = s
	case "authToken":
		user.AuthToken = s
	case "listenerId":
		user.ListenerID = s
	}
	return nil
}

func visitStation(station *Station, key string, value *node) error {
	s, ok := scalarText(value)
	if !ok {
		return nil
	}
	switch key {
	case "stationName":
		station.Name = s
	case "stationId":
		station.ID = s
	}
	return nil
}

// songVisitor builds songs, decrypting audio URLs with dec.
func songVisitor(dec Decrypter) memberVisitor[Song] {
	return func(song *Song, key string, value *node) error {
		s, ok := scalarText(value)
		if !ok {
			return nil
		}
		switch key {
		case "audioURL":
			url, err := reconstructAudioURL(s, dec)
			if err != nil {
				return err
			}
			song.AudioURL = url
		case "artistSummary":
			song.Artist = s
		case "musicId":
			song.MusicID = s
		case "matchingSeed":
			song.MatchingSeed = s
		case "userSeed":
			song.UserSeed = s
		case "focusTraitId":
			song.FocusTraitID = s
		case "songTitle":
			song.Title = s
		case "rating":
			if s == "1" {
				song.Rating = RatingLove
			} else {
				song.Rating = RatingNone
			}
		}
		return nil
	}
}
