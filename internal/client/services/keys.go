package services

// Storage keys shared with earlier releases of the client.
const (
	TokenKey = "@auth_token"
	UserKey  = "@auth_user"
	ThemeKey = "@app_theme"
)
