// Package session defines the SyncHome session cookie and its attribute
// policy. Issuance and logout must build from the same place so the cleared
// cookie always carries the same name and attributes as the issued one.
package session

import (
	"net/http"
	"time"
)

// CookieName is the cookie carrying the signed session token.
const CookieName = "SyncHomeToken"

// TokenTTL is the session lifetime. The cookie max-age matches the token
// expiry embedded at issuance.
const TokenTTL = 24 * time.Hour

// New builds the session cookie set at login. HttpOnly always. In
// production the cookie is Secure with SameSite=Strict; in development it
// stays plain-HTTP with SameSite=Lax so the front-end can run on another
// local port.
func New(token string, production bool) *http.Cookie {
	c := &http.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(TokenTTL.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	if production {
		c.Secure = true
		c.SameSite = http.SameSiteStrictMode
	}
	return c
}

// Expired builds the clearing cookie sent at logout: same name and
// attributes, immediate expiry.
func Expired(production bool) *http.Cookie {
	c := New("", production)
	c.MaxAge = -1
	c.Expires = time.Unix(0, 0)
	return c
}
