// Package profile handles the auxiliary per-device keys: the mocked
// login flag, the denormalized current user, and UI preferences. None
// of this is real authentication; the role is a display field any local
// user can flip.
package profile

import (
	"github.com/taskerhq/tasker/internal/member"
	"github.com/taskerhq/tasker/internal/storage"
)

// User is the denormalized current-user record kept alongside the
// logged-in flag.
type User struct {
	Name  string      `json:"name"`
	Email string      `json:"email"`
	Role  member.Role `json:"role"`
}

// IsAdmin reports whether the user carries the admin role flag.
func (u User) IsAdmin() bool {
	return u.Role == member.RoleAdmin
}

// Login records the user as logged in.
func Login(b storage.Backend, u User) error {
	if err := storage.Save(b, storage.KeyLoggedIn, true); err != nil {
		return err
	}
	return storage.Save(b, storage.KeyCurrentUser, u)
}

// Logout clears the logged-in flag and the current user.
func Logout(b storage.Backend) error {
	if err := storage.Remove(b, storage.KeyLoggedIn); err != nil {
		return err
	}
	return storage.Remove(b, storage.KeyCurrentUser)
}

// IsLoggedIn reports whether a login was recorded.
func IsLoggedIn(b storage.Backend) bool {
	return storage.Load(b, storage.KeyLoggedIn, false)
}

// Current returns the recorded current user, if any.
func Current(b storage.Backend) (User, bool) {
	if !IsLoggedIn(b) {
		return User{}, false
	}
	u := storage.Load(b, storage.KeyCurrentUser, User{})
	if u.Email == "" && u.Name == "" {
		return User{}, false
	}
	return u, true
}

// Settings are the per-device UI preference flags.
type Settings struct {
	Theme                 string `json:"theme"`
	TaskNotifications     bool   `json:"taskNotifications"`
	DeadlineNotifications bool   `json:"deadlineNotifications"`
}

// DefaultSettings returns the preferences a fresh device starts with.
func DefaultSettings() Settings {
	return Settings{
		Theme:                 "light",
		TaskNotifications:     true,
		DeadlineNotifications: true,
	}
}

// LoadSettings reads the persisted preferences, falling back to defaults.
func LoadSettings(b storage.Backend) Settings {
	return storage.Load(b, storage.KeySettings, DefaultSettings())
}

// SaveSettings persists the preferences.
func SaveSettings(b storage.Backend, s Settings) error {
	return storage.Save(b, storage.KeySettings, s)
}
