package session

import (
	"github.com/spf13/viper"
)

const tokenKey = "auth_token"

// Store is the single persisted key-value slot holding the auth token.
type Store interface {
	Load() (string, error)
	Save(token string) error
	Clear() error
}

// FileStore keeps the token in the client's yaml config file, the same file
// viper reads settings from, so one slot survives restarts.
type FileStore struct {
	path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (f *FileStore) open() (*viper.Viper, error) {
	v := viper.New()
	v.SetConfigFile(f.path)
	if err := v.ReadInConfig(); err != nil {
		return v, err
	}
	return v, nil
}

func (f *FileStore) Load() (string, error) {
	v, err := f.open()
	if err != nil {
		return "", err
	}
	return v.GetString(tokenKey), nil
}

func (f *FileStore) Save(token string) error {
	// The config file may not exist yet on first login; keep whatever other
	// settings it already holds.
	v, _ := f.open()
	v.Set(tokenKey, token)
	return v.WriteConfigAs(f.path)
}

func (f *FileStore) Clear() error {
	v, err := f.open()
	if err != nil {
		// Nothing persisted, nothing to clear.
		return nil
	}
	v.Set(tokenKey, "")
	return v.WriteConfigAs(f.path)
}
