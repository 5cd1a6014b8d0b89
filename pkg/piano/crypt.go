package piano

import (
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/blowfish"
)

// Decrypter turns a hex-encoded cipher text into plain bytes.
type Decrypter interface {
	Decrypt(cipherHex string) ([]byte, error)
}

// DecrypterFunc adapts a plain function to the [Decrypter] interface.
type DecrypterFunc func(cipherHex string) ([]byte, error)

func (f DecrypterFunc) Decrypt(cipherHex string) ([]byte, error) {
	return f(cipherHex)
}

// Encrypter turns a request body into the hex-encoded form the service
// expects.
type Encrypter interface {
	Encrypt(plain string) string
}

// Blowfish is the service's block cipher: Blowfish in ECB mode over 8 byte
// blocks, with the cipher text exchanged as lowercase hex.
type Blowfish struct {
	cipher *blowfish.Cipher
}

var (
	_ Decrypter = (*Blowfish)(nil)
	_ Encrypter = (*Blowfish)(nil)
)

func NewBlowfish(key []byte) (*Blowfish, error) {
	c, err := blowfish.NewCipher(key)
	if err != nil {
		return nil, err
	}
	return &Blowfish{cipher: c}, nil
}

// Decrypt decodes cipherHex and decrypts it block by block. Padding is left in
// place for the caller to deal with.
func (b *Blowfish) Decrypt(cipherHex string) ([]byte, error) {
	data, err := hex.DecodeString(cipherHex)
	if err != nil {
		return nil, fmt.Errorf("decode cipher text: %w", err)
	}
	if len(data)%blowfish.BlockSize != 0 {
		return nil, fmt.Errorf("cipher text is %d bytes, not a multiple of %d", len(data), blowfish.BlockSize)
	}

	out := make([]byte, len(data))
	for i := 0; i < len(data); i += blowfish.BlockSize {
		b.cipher.Decrypt(out[i:i+blowfish.BlockSize], data[i:i+blowfish.BlockSize])
	}
	return out, nil
}

// Encrypt zero-pads plain to the block size, encrypts it and returns the
// result as hex.
func (b *Blowfish) Encrypt(plain string) string {
	n := len(plain)
	if rem := n % blowfish.BlockSize; rem != 0 {
		n += blowfish.BlockSize - rem
	}
	in := make([]byte, n)
	copy(in, plain)

	out := make([]byte, n)
	for i := 0; i < n; i += blowfish.BlockSize {
		b.cipher.Encrypt(out[i:i+blowfish.BlockSize], in[i:i+blowfish.BlockSize])
	}
	return hex.EncodeToString(out)
}
