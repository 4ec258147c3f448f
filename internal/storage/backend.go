package storage

// Persisted collection keys. Each key holds one JSON-encoded value.
const (
	KeyTasks       = "tasks"
	KeyCategories  = "categories"
	KeyMembers     = "members"
	KeyRewards     = "rewards"
	KeyLoggedIn    = "isLoggedIn"
	KeyCurrentUser = "currentUser"
	KeySettings    = "settings"
)

// Backend is a local key-value byte store. Implementations must treat a
// missing key as (nil, false, nil), not as an error.
type Backend interface {
	Get(key string) ([]byte, bool, error)
	Put(key string, value []byte) error
	Delete(key string) error
	Close() error
}
