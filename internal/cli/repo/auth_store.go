package repo

// TokenStore хранит подписанный токен идентичности между запусками CLI.
type TokenStore interface {
	Save(token string) error
	Load() (string, error)
}

// UserContextStore хранит владельца, от имени которого выдан токен.
type UserContextStore interface {
	SaveOwner(owner string) error
	LoadOwner() (string, error)
	Clear() error
}

// AuthStore — всё локальное состояние входа.
type AuthStore interface {
	TokenStore
	UserContextStore
}
