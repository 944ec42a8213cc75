package auth

// Claims representa la identidad resuelta a partir del token de sesión.
type Claims struct {
	UserID      string // email de login
	Email       string
	Role        string
	DisplayName string
	Token       string
}
