package auth

// TokenIssuer signs session tokens.
type TokenIssuer interface {
	GenerateToken(name, pic string) (string, error)
}
