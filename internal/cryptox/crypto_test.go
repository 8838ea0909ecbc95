package cryptox

import (
	"encoding/hex"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMD5Hasher_KnownDigest(t *testing.T) {
	h := MD5Hasher{}

	// md5("abc")
	assert.Equal(t, "900150983cd24fb0d6963f7d28e17f72", h.Hash("a", "bc"))
	// md5("") keeps the leading zero nibbles
	assert.Equal(t, "d41d8cd98f00b204e9800998ecf8427e", h.Hash("", ""))
}

func TestMD5Hasher_SaltMatters(t *testing.T) {
	h := MD5Hasher{}

	assert.NotEqual(t, h.Hash("salt-1", "secret"), h.Hash("salt-2", "secret"))
	assert.Len(t, h.Hash("salt", "secret"), 32)
}

func TestArgon2idHasher_Deterministic(t *testing.T) {
	h := NewArgon2idHasher(Argon2idParams{Time: 1, MemoryKiB: 8 * 1024, Threads: 1, KeyLen: 32})

	a := h.Hash("fixed-salt", "secret-password")
	b := h.Hash("fixed-salt", "secret-password")

	assert.Equal(t, a, b)
	assert.Len(t, a, 64)
	assert.NotEqual(t, a, h.Hash("other-salt", "secret-password"))
}

func TestNewArgon2idHasher_ClampsParams(t *testing.T) {
	h := NewArgon2idHasher(Argon2idParams{})

	assert.Equal(t, uint32(1), h.params.Time)
	assert.Equal(t, uint8(1), h.params.Threads)
	assert.Equal(t, uint32(8*1024), h.params.MemoryKiB)
	assert.Equal(t, uint32(32), h.params.KeyLen)
}

func TestNewHasher(t *testing.T) {
	tests := []struct {
		name    string
		alg     string
		wantErr bool
	}{
		{name: "default", alg: ""},
		{name: "md5", alg: AlgorithmMD5},
		{name: "argon2id", alg: AlgorithmArgon2id},
		{name: "unknown", alg: "sha1", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, err := NewHasher(tt.alg, DefaultArgon2idParams())
			if tt.wantErr {
				require.Error(t, err)
				assert.Nil(t, h)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, h)
		})
	}
}

func TestNewSalt(t *testing.T) {
	a, err := NewSalt()
	require.NoError(t, err)
	b, err := NewSalt()
	require.NoError(t, err)

	assert.Len(t, a, SaltSize*2)
	_, err = hex.DecodeString(a)
	assert.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func TestRandomString(t *testing.T) {
	const alphabet = "ab"

	s, err := RandomString(64, alphabet)
	require.NoError(t, err)
	assert.Len(t, s, 64)
	assert.Empty(t, strings.Trim(s, alphabet))

	_, err = RandomString(6, "")
	assert.Error(t, err)
}

func TestEqual(t *testing.T) {
	assert.True(t, Equal("abc", "abc"))
	assert.False(t, Equal("abc", "abd"))
	assert.False(t, Equal("abc", "ab"))
}
