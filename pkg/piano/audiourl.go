package piano

const (
	// audioURLTailLen is the number of hex characters at the end of an
	// audioURL that are encrypted.
	audioURLTailLen = 48
	// audioURLKeepLen is how much of the decrypted tail belongs to the URL.
	// The tail decodes to 24 bytes, the last 8 of which are 0x08 filler the
	// service appends.
	audioURLKeepLen = audioURLTailLen/2 - 8
)

// reconstructAudioURL replaces the encrypted tail of raw with the first
// audioURLKeepLen bytes of its decryption.
func reconstructAudioURL(raw string, dec Decrypter) (string, error) {
	if len(raw) <= audioURLTailLen {
		return "", &ReconstructionError{URL: raw, Reason: "URL is too short to carry an encrypted tail"}
	}
	if dec == nil {
		return "", &ReconstructionError{URL: raw, Reason: "no decrypter configured"}
	}

	split := len(raw) - audioURLTailLen
	head, tail := raw[:split], raw[split:]

	plain, err := dec.Decrypt(tail)
	if err != nil {
		return "", &ReconstructionError{URL: raw, Reason: "decrypt tail", Err: err}
	}
	if len(plain) < audioURLKeepLen {
		return "", &ReconstructionError{URL: raw, Reason: "decrypted tail is too short"}
	}
	return head + string(plain[:audioURLKeepLen]), nil
}
