// Package chacha20 implements the AEAD half of C5: each plaintext chunk
// becomes a distinct authenticated frame under a single passphrase-derived
// key, encrypted with ChaCha20-Poly1305 and a session-wide nonce counter.
package chacha20

import (
	"crypto/cipher"
	"fmt"

	"golang.org/x/crypto/chacha20poly1305"

	coreerrors "github.com/samir0909/flyingcarpet/domain/errors"
)

// Cipher is an application.CryptographyService backed by
// ChaCha20-Poly1305. Associated data is always empty: the wire framing
// (length prefix, frame ordering) is not itself authenticated, only the
// chunk payloads are, matching the protocol's AEAD contract.
type Cipher struct {
	aead   cipher.AEAD
	nonces *counter
}

// New builds a Cipher from the 32-byte key produced by C1.
func New(key [32]byte) (*Cipher, error) {
	aead, err := chacha20poly1305.New(key[:])
	if err != nil {
		return nil, fmt.Errorf("construct chacha20poly1305 aead: %w", err)
	}
	return &Cipher{aead: aead, nonces: newCounter()}, nil
}

// Encrypt seals plaintext under the next nonce in the session-wide
// counter and returns ciphertext||tag.
func (c *Cipher) Encrypt(plaintext []byte) ([]byte, error) {
	nonce, err := c.nonces.next()
	if err != nil {
		return nil, err
	}
	return c.aead.Seal(nil, nonce[:], plaintext, nil), nil
}

// Decrypt opens a frame produced by the peer's Encrypt, advancing this
// side's own counter in lockstep. A failure here always means wrong
// passphrase or tampering, never a transient condition.
func (c *Cipher) Decrypt(ciphertext []byte) ([]byte, error) {
	nonce, err := c.nonces.next()
	if err != nil {
		return nil, err
	}
	plaintext, err := c.aead.Open(nil, nonce[:], ciphertext, nil)
	if err != nil {
		return nil, coreerrors.NewIntegrity(coreerrors.PhaseReceivingFile)
	}
	return plaintext, nil
}
