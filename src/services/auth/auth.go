package auth

import "context"

// CredentialVerifier is the pluggable seam for the login gate. The demo ships
// a static implementation; a real deployment would back this with a user store.
type CredentialVerifier interface {
	Verify(ctx context.Context, username, password string) bool
}

type StaticVerifier struct {
	username string
	password string
}

func NewStaticVerifier(username, password string) *StaticVerifier {
	return &StaticVerifier{username: username, password: password}
}

func (v *StaticVerifier) Verify(ctx context.Context, username, password string) bool {
	return username == v.username && password == v.password
}
