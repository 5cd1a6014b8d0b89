package piano_test

import (
	"fmt"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sublime-music/piano/pkg/piano"
)

var (
	testEncryptKey = []byte("request key")
	testDecryptKey = []byte("audio url key")
)

func fixture(t *testing.T, name string) string {
	t.Helper()
	b, err := os.ReadFile("testdata/" + name)
	require.NoError(t, err)
	return string(b)
}

func newBlowfish(t *testing.T, key []byte) *piano.Blowfish {
	t.Helper()
	bf, err := piano.NewBlowfish(key)
	require.NoError(t, err)
	return bf
}

func simpleResponse(value string) string {
	return `<?xml version="1.0" encoding="UTF-8"?><methodResponse><params><param><value>` +
		value + `</value></param></params></methodResponse>`
}

type testSong struct {
	title, artist, musicID, rating string
	urlHead, urlTail               string
}

// playlistResponse renders a playlist fragment whose audio URLs carry the
// songs' URL tails encrypted with enc the way the service does it.
func playlistResponse(enc piano.Encrypter, songs ...testSong) string {
	var b strings.Builder
	b.WriteString(`<?xml version="1.0" encoding="UTF-8"?><methodResponse><params><param><value><array><data>`)
	for _, s := range songs {
		url := s.urlHead + enc.Encrypt(s.urlTail+strings.Repeat("\x08", 8))
		fmt.Fprintf(&b, `<value><struct>
			<member><name>audioURL</name><value>%s</value></member>
			<member><name>artistSummary</name><value>%s</value></member>
			<member><name>musicId</name><value>%s</value></member>
			<member><name>matchingSeed</name><value>matching-%s</value></member>
			<member><name>userSeed</name><value>user-%s</value></member>
			<member><name>focusTraitId</name><value><string>trait-%s</string></value></member>
			<member><name>songTitle</name><value>%s</value></member>
			<member><name>rating</name><value><int>%s</int></value></member>
			<member><name>artRadio</name><value/></member>
			<member><name>unknownKey</name><value>ignored</value></member>
		</struct></value>`,
			piano.EncodeString(url), piano.EncodeString(s.artist), s.musicID, s.musicID, s.musicID, s.musicID,
			piano.EncodeString(s.title), s.rating)
	}
	b.WriteString(`</data></array></value></param></params></methodResponse>`)
	return b.String()
}
