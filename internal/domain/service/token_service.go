package service

// Claims are the identity facts carried by a validated access token.
type Claims struct {
	Subject string   // Recipient email.
	Roles   []string // Roles granted by the issuer.
}

// TokenService validates bearer tokens issued by the external auth collaborator.
type TokenService interface {
	// GenerateAccessToken issues an access token for the subject.
	GenerateAccessToken(subject string, roles []string) (string, error)

	// ValidateToken checks the token signature and expiry and returns its claims.
	ValidateToken(tokenString string) (*Claims, error)
}
