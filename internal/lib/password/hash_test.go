package password

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCompare(t *testing.T) {
	tests := []struct {
		name     string
		password string
	}{
		{name: "simple password", password: "Passw0rd1"},
		{name: "long password", password: "VeryLongPassword1234567890!@#$"},
		{name: "unicode password", password: "Пароль123Ä"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hash, err := Hash(tt.password)
			require.NoError(t, err)
			assert.NotEqual(t, tt.password, hash)

			assert.NoError(t, Compare(hash, tt.password))
			assert.Error(t, Compare(hash, tt.password+"x"))
		})
	}
}

func TestCompare_DifferentPasswordsDoNotMatch(t *testing.T) {
	hash, err := Hash("FirstPassword1")
	require.NoError(t, err)

	assert.Error(t, Compare(hash, "SecondPassword2"))
}

func TestCompare_MalformedHash(t *testing.T) {
	// Мусор вместо хеша — ошибка, а не паника.
	assert.Error(t, Compare("not-a-bcrypt-hash", "Passw0rd1"))
	assert.Error(t, Compare("", "Passw0rd1"))
}

func TestValidatePolicy(t *testing.T) {
	tests := []struct {
		name     string
		password string
		want     []string
	}{
		{
			name:     "valid password",
			password: "ShortPass1",
			want:     nil,
		},
		{
			name:     "all rules violated",
			password: "short",
			want:     []string{msgTooShort, msgNoUppercase, msgNoDigit},
		},
		{
			name:     "empty password",
			password: "",
			want:     []string{msgTooShort, msgNoUppercase, msgNoDigit},
		},
		{
			name:     "no uppercase",
			password: "nouppercase1",
			want:     []string{msgNoUppercase},
		},
		{
			name:     "no digit",
			password: "NoDigits",
			want:     []string{msgNoDigit},
		},
		{
			name:     "too short but has upper and digit",
			password: "Ab1",
			want:     []string{msgTooShort},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ValidatePolicy(tt.password)
			assert.Equal(t, tt.want, got)
		})
	}
}
