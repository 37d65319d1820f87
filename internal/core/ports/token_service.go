package ports

// TokenClaims is the decoded, verified content of a bearer credential.
// SessionID is only populated on refresh credentials.
type TokenClaims struct {
	AccountID string
	Role      string
	SessionID string
}

// TokenService issues and verifies signed, time-bounded bearer credentials.
// Verification is stateless: the claims carry everything needed to authorize
// a request without a store lookup. Any malformed, tampered, or expired input
// yields domain.ErrInvalidToken.
type TokenService interface {
	IssueAccessToken(accountID, role string) (string, error)
	// IssueRefreshToken returns the signed token and the session ID embedded
	// in it, so the caller can register the session for later revocation.
	IssueRefreshToken(accountID, role string) (token string, sessionID string, err error)
	VerifyAccessToken(raw string) (*TokenClaims, error)
	VerifyRefreshToken(raw string) (*TokenClaims, error)
}
