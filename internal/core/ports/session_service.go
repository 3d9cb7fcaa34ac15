package ports

// Claims is the decoded payload of a verified session token. The login
// payload is embedded as-is, so arbitrary keys may be present alongside
// the guaranteed "email", "iat" and "exp" entries.
type Claims map[string]any

// Email returns the identity claim, or "" when absent.
func (c Claims) Email() string {
	email, _ := c["email"].(string)
	return email
}

// SessionService mints and verifies the signed session tokens carried in
// the SyncHome cookie.
type SessionService interface {
	// Issue signs a token embedding the full login payload plus issuance
	// and expiry timestamps. Fails with domain.ErrMissingEmail when the
	// payload carries no email.
	Issue(payload map[string]any) (string, error)

	// Verify checks signature and expiry and returns the embedded claims.
	// Any failure (malformed, expired, tampered, wrong key) is reported
	// as domain.ErrUnauthorized without further distinction.
	Verify(token string) (Claims, error)
}
