package models

// CategoryConfig represents a category keyword rule in the YAML file
type CategoryConfig struct {
	Name     string   `yaml:"name"`
	Keywords []string `yaml:"keywords"`
}

// CategoriesConfig represents the structure of the categories YAML file
type CategoriesConfig struct {
	Categories []CategoryConfig `yaml:"categories"`
}

// ExpenseCategorizer assigns a category to an expense based on its
// description. The boolean reports whether any rule matched.
type ExpenseCategorizer interface {
	Categorize(description string) (string, bool)
}

// CategoryRemovalMode defines what happens to expenses referencing a
// category when it is removed.
type CategoryRemovalMode string

const (
	// CategoryRemovalFail refuses removal while expenses still use the category
	CategoryRemovalFail CategoryRemovalMode = "fail"
	// CategoryRemovalDelete deletes all expenses in the category
	CategoryRemovalDelete CategoryRemovalMode = "delete"
	// CategoryRemovalReassign moves the expenses to another category
	CategoryRemovalReassign CategoryRemovalMode = "reassign"
)
