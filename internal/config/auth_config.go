package config

const (
	loginEmailVar    = "STORE_LOGIN_EMAIL"
	loginPasswordVar = "STORE_LOGIN_PASSWORD"
	storageKeyVar    = "SESSION_STORAGE_KEY"
)

type Auth struct{}

var _ AuthConfig = Auth{}

func (Auth) GetLoginEmail() string {
	return GetEnv(loginEmailVar, "test@example.com")
}

func (Auth) GetLoginPassword() string {
	return GetEnv(loginPasswordVar, "Test@123")
}

func (Auth) GetSessionStorageKey() string {
	return GetEnv(storageKeyVar, "user")
}
