// Package cryptox holds the credential primitives used by the user registry:
// salted digests, salt generation and random access codes.
package cryptox

import (
	"crypto/md5"
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"math/big"

	"github.com/dmitrijs2005/userholder/internal/common"
	"golang.org/x/crypto/argon2"
)

const (
	// SaltSize is the number of random bytes in a user salt.
	SaltSize = 16

	// AlgorithmMD5 and AlgorithmArgon2id name the supported digests.
	AlgorithmMD5      = "md5"
	AlgorithmArgon2id = "argon2id"
)

// Hasher derives a digest of salt+secret. Implementations must be deterministic
// for the same salt and secret.
type Hasher interface {
	Hash(salt, secret string) string
}

// MD5Hasher renders md5(salt+secret) as 32 lower-case hex characters.
// It is fast and weak; it exists for compatibility with previously exported
// salt:hash pairs.
type MD5Hasher struct{}

func (MD5Hasher) Hash(salt, secret string) string {
	sum := md5.Sum([]byte(salt + secret))
	return hex.EncodeToString(sum[:])
}

// Argon2idParams configures the memory-hard hasher.
type Argon2idParams struct {
	Time      uint32
	MemoryKiB uint32
	Threads   uint8
	KeyLen    uint32
}

// DefaultArgon2idParams returns the parameters used when none are configured.
func DefaultArgon2idParams() Argon2idParams {
	return Argon2idParams{
		Time:      1,
		MemoryKiB: 64 * 1024,
		Threads:   4,
		KeyLen:    32,
	}
}

// Argon2idHasher renders argon2id(secret, salt) as lower-case hex.
type Argon2idHasher struct {
	params Argon2idParams
}

// NewArgon2idHasher clamps zero or tiny parameters to usable minima.
func NewArgon2idHasher(p Argon2idParams) *Argon2idHasher {
	if p.Time == 0 {
		p.Time = 1
	}
	if p.Threads == 0 {
		p.Threads = 1
	}
	if p.MemoryKiB < 8*1024 {
		p.MemoryKiB = 8 * 1024
	}
	if p.KeyLen < 16 {
		p.KeyLen = 32
	}
	return &Argon2idHasher{params: p}
}

func (h *Argon2idHasher) Hash(salt, secret string) string {
	pw := []byte(secret)
	defer common.WipeByteArray(pw)

	key := argon2.IDKey(pw, []byte(salt), h.params.Time, h.params.MemoryKiB, h.params.Threads, h.params.KeyLen)
	defer common.WipeByteArray(key)

	return hex.EncodeToString(key)
}

// NewHasher returns the hasher registered under name.
func NewHasher(name string, p Argon2idParams) (Hasher, error) {
	switch name {
	case AlgorithmMD5, "":
		return MD5Hasher{}, nil
	case AlgorithmArgon2id:
		return NewArgon2idHasher(p), nil
	default:
		return nil, fmt.Errorf("unknown hash algorithm %q", name)
	}
}

// NewSalt draws SaltSize bytes from crypto/rand and hex-encodes them.
func NewSalt() (string, error) {
	return common.MakeRandHexString(SaltSize)
}

// RandomString draws n characters uniformly from alphabet using crypto/rand.
func RandomString(n int, alphabet string) (string, error) {
	if alphabet == "" {
		return "", fmt.Errorf("empty alphabet")
	}
	max := big.NewInt(int64(len(alphabet)))
	out := make([]byte, n)
	for i := range out {
		idx, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		out[i] = alphabet[idx.Int64()]
	}
	return string(out), nil
}

// Equal compares two digests in constant time.
func Equal(a, b string) bool {
	return subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}
