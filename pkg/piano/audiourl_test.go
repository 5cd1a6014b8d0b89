package piano

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReconstructAudioURL(t *testing.T) {
	tail := strings.Repeat("ab", 24)
	dec := DecrypterFunc(func(cipherHex string) ([]byte, error) {
		assert.Equal(t, tail, cipherHex)
		return []byte("0123456789abcdefPADDING!"), nil
	})

	for _, head := range []string{"h", "http://audio.example.com/access/?token=", strings.Repeat("x", 500)} {
		url, err := reconstructAudioURL(head+tail, dec)
		require.NoError(t, err)
		assert.Equal(t, head+"0123456789abcdef", url)
	}
}

func TestReconstructAudioURLWithBlowfish(t *testing.T) {
	bf, err := NewBlowfish([]byte("audio url key"))
	require.NoError(t, err)

	head := "http://audio.example.com/access/3461?version=4&lid=123&token="
	tail := bf.Encrypt("0123456789abcdef" + strings.Repeat("\x08", 8))
	require.Len(t, tail, audioURLTailLen)

	url, err := reconstructAudioURL(head+tail, bf)
	require.NoError(t, err)
	assert.Equal(t, head+"0123456789abcdef", url)
}

func TestReconstructAudioURLTooShort(t *testing.T) {
	dec := DecrypterFunc(func(string) ([]byte, error) {
		t.Fatal("decrypter must not be called")
		return nil, nil
	})

	for _, raw := range []string{"", "short", strings.Repeat("a", audioURLTailLen)} {
		_, err := reconstructAudioURL(raw, dec)
		assert.ErrorIs(t, err, ErrReconstruction)
	}
}

func TestReconstructAudioURLDecryptFailure(t *testing.T) {
	boom := errors.New("bad cipher text")
	dec := DecrypterFunc(func(string) ([]byte, error) {
		return nil, boom
	})

	_, err := reconstructAudioURL("http://x/"+strings.Repeat("0", audioURLTailLen), dec)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrReconstruction)
	assert.ErrorIs(t, err, boom)

	var reconErr *ReconstructionError
	require.True(t, errors.As(err, &reconErr))
	assert.Equal(t, "decrypt tail", reconErr.Reason)
}

func TestReconstructAudioURLShortPlaintext(t *testing.T) {
	dec := DecrypterFunc(func(string) ([]byte, error) {
		return []byte("tiny"), nil
	})
	_, err := reconstructAudioURL("http://x/"+strings.Repeat("0", audioURLTailLen), dec)
	assert.ErrorIs(t, err, ErrReconstruction)
}

func TestReconstructAudioURLWithoutDecrypter(t *testing.T) {
	_, err := reconstructAudioURL("http://x/"+strings.Repeat("0", audioURLTailLen), nil)
	assert.ErrorIs(t, err, ErrReconstruction)
}
