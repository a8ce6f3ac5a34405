package transform

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"fmt"
	"io"
	"pxsteg/pkg/model"

	"golang.org/x/crypto/scrypt"
)

const (
	EncryptionName = "AES-256-GCM"
	KDFName        = "scrypt"

	SaltSize  = 16
	NonceSize = 12
	TagSize   = 16
	// EncryptionOverhead is how many bytes encryption adds to a payload
	EncryptionOverhead = SaltSize + NonceSize + TagSize

	keySize = 32
	// Interactive login parameters recommended by the scrypt package documentation
	scryptN = 1 << 15
	scryptR = 8
	scryptP = 1
)

func deriveKey(password string, salt []byte) ([]byte, error) {
	return scrypt.Key([]byte(password), salt, scryptN, scryptR, scryptP, keySize)
}

func newGCM(password string, salt []byte) (cipher.AEAD, error) {
	key, err := deriveKey(password, salt)
	if err != nil {
		return nil, err
	}
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	return cipher.NewGCM(block)
}

// Encrypt seals the payload with a key derived from password. The output is salt|nonce|ciphertext|tag
func Encrypt(payload []byte, password string) ([]byte, error) {
	if password == "" {
		return nil, fmt.Errorf("%w: encryption requires a password", model.ErrInvalidParameter)
	}

	out := make([]byte, SaltSize+NonceSize, SaltSize+NonceSize+len(payload)+TagSize)
	salt, nonce := out[:SaltSize], out[SaltSize:]
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return nil, err
	}
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, err
	}

	gcm, err := newGCM(password, salt)
	if err != nil {
		return nil, err
	}
	return gcm.Seal(out, nonce, payload, nil), nil
}

func Decrypt(envelope []byte, password string) ([]byte, error) {
	if len(envelope) < EncryptionOverhead {
		return nil, fmt.Errorf("%w: encrypted payload is %d bytes, shorter than salt, nonce and tag", model.ErrCorruptPayload, len(envelope))
	}
	if password == "" {
		return nil, fmt.Errorf("%w: payload is encrypted and no password was supplied", model.ErrDecryption)
	}

	salt := envelope[:SaltSize]
	nonce := envelope[SaltSize : SaltSize+NonceSize]
	gcm, err := newGCM(password, salt)
	if err != nil {
		return nil, err
	}

	payload, err := gcm.Open(nil, nonce, envelope[SaltSize+NonceSize:], nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", model.ErrDecryption, err)
	}
	return payload, nil
}
