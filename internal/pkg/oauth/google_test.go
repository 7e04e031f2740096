package oauth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func newTestService() GoogleService {
	return NewGoogleService("client-id", "client-secret", "http://localhost:8080/api/v1/auth/oauth/callback/google", []string{"email", "profile"})
}

func TestGenerateStateIsRandom(t *testing.T) {
	svc := newTestService()

	first := svc.GenerateState()
	second := svc.GenerateState()

	assert.NotEmpty(t, first)
	assert.NotEqual(t, first, second)
}

func TestAuthURLCarriesState(t *testing.T) {
	svc := newTestService()

	url := svc.AuthURL("state-nonce")

	assert.Contains(t, url, "state=state-nonce")
	assert.Contains(t, url, "client_id=client-id")
}
