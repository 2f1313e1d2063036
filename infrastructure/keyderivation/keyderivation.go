// Package keyderivation implements C1: deriving a symmetric AEAD key and a
// deterministic SSID from a shared passphrase, with no exchange between
// peers. Both outputs are pure functions of the passphrase so two ends
// given the same passphrase agree without negotiation, and the key is
// never transmitted.
package keyderivation

import (
	"crypto/sha256"
	"encoding/hex"
	"io"

	"golang.org/x/crypto/hkdf"
	"golang.org/x/crypto/pbkdf2"
)

const (
	// KeySize is the AEAD key length required by chacha20poly1305.
	KeySize = 32

	// ssidPrefix is the public, human-readable portion of the SSID; both
	// ends agree on it without negotiation because it is a constant.
	ssidPrefix = "flyingCarpet_"

	// ssidSuffixLen is the number of hex characters appended to ssidPrefix.
	ssidSuffixLen = 8

	// iterations and salt are fixed: the protocol's security budget is the
	// passphrase itself (see design notes), so a per-session random salt
	// would only need to be transmitted in the clear, buying nothing.
	iterations = 100_000
)

var pbkdf2Salt = []byte("flyingcarpet-pbkdf2-v1")

// Derived holds the two pure functions of a passphrase: the AEAD key and
// the SSID both ends will pick independently.
type Derived struct {
	Key  [KeySize]byte
	SSID string
}

// Derive computes Key and SSID from passphrase. It is deterministic:
// Derive(p) always equals Derive(p) for the same p, and (with overwhelming
// probability) differs between distinct passphrases.
func Derive(passphrase string) Derived {
	seed := pbkdf2.Key([]byte(passphrase), pbkdf2Salt, iterations, KeySize, sha256.New)

	var d Derived
	copy(d.Key[:], seed)

	// The SSID suffix is an independent HKDF expansion of the same seed,
	// not a truncation of the AEAD key itself, so the broadcast SSID never
	// leaks key material.
	suffix := make([]byte, ssidSuffixLen/2)
	kdf := hkdf.New(sha256.New, seed, []byte("flyingcarpet-ssid"), nil)
	_, _ = io.ReadFull(kdf, suffix)
	d.SSID = ssidPrefix + hex.EncodeToString(suffix)

	return d
}
