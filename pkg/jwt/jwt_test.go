package jwt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateParse_RoundTrip(t *testing.T) {
	tok, err := Generate("s3cret", "ana", RoleAdmin, "cpr-planning", 5)
	require.NoError(t, err)

	user, role, err := Parse("s3cret", tok)
	require.NoError(t, err)
	assert.Equal(t, "ana", user)
	assert.Equal(t, RoleAdmin, role)
}

func TestParse_FirmaIncorrecta(t *testing.T) {
	tok, err := Generate("s3cret", "ana", RoleCook, "cpr-planning", 5)
	require.NoError(t, err)
	_, _, err = Parse("otra", tok)
	assert.Error(t, err)
}

func TestParse_Expirado(t *testing.T) {
	tok, err := Generate("s3cret", "ana", RoleCook, "cpr-planning", -1)
	require.NoError(t, err)
	_, _, err = Parse("s3cret", tok)
	assert.Error(t, err)
}

func TestGenerate_SinSecret(t *testing.T) {
	_, err := Generate("", "ana", RoleCook, "x", 5)
	assert.Error(t, err)
}
