package auth

// Claims representa la información extraída del token.
// El rol no viaja en el token: sale del perfil (user_profiles).
type Claims struct {
	UserID string
	Email  string
}
