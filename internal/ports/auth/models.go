package auth

// Claims identifica a quien invoca la API (el dispatcher de la plataforma de chat).
type Claims struct {
	Subject string
}
