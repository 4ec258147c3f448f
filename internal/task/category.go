package task

// Category is a named, colored grouping for tasks.
type Category struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
}

// The four default category IDs. These are seeded on first load and
// protected from deletion; tasks created before custom categories
// existed reference them by these fixed strings.
const (
	CategoryWork     = "work"
	CategoryPersonal = "personal"
	CategoryHealth   = "health"
	CategoryErrands  = "errands"
)

// DefaultCategories returns the protected categories seeded when no
// category collection has been persisted yet.
func DefaultCategories() []Category {
	return []Category{
		{ID: CategoryWork, Name: "Trabalho", Color: "#4f46e5"},
		{ID: CategoryPersonal, Name: "Pessoal", Color: "#0ea5e9"},
		{ID: CategoryHealth, Name: "Saúde", Color: "#10b981"},
		{ID: CategoryErrands, Name: "Tarefas", Color: "#f59e0b"},
	}
}

// IsDefaultCategory reports whether id is one of the protected defaults.
func IsDefaultCategory(id string) bool {
	switch id {
	case CategoryWork, CategoryPersonal, CategoryHealth, CategoryErrands:
		return true
	default:
		return false
	}
}
