package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	err := os.WriteFile(path, []byte(content), 0600)
	require.NoError(t, err)
}

func TestNewCategoryStore(t *testing.T) {
	s := NewCategoryStore("categories.yaml")
	assert.Equal(t, "categories.yaml", s.CategoriesFile)
}

func TestCategoryStore_FindConfigFile(t *testing.T) {
	dir := t.TempDir()
	testFile := filepath.Join(dir, "test.yaml")
	writeFile(t, testFile, "test content")

	s := NewCategoryStore("")

	// Absolute path that exists
	file, err := s.FindConfigFile(testFile)
	require.NoError(t, err)
	assert.Equal(t, testFile, file)

	// Absolute path that doesn't exist
	_, err = s.FindConfigFile(filepath.Join(dir, "nonexistent.yaml"))
	assert.Error(t, err)
}

func TestCategoryStore_LoadCategories(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "categories.yaml")
	writeFile(t, file, `categories:
  - name: Groceries
    keywords: ["supermarket", "grocery"]
  - name: Rent
    keywords: ["apartment", "rent"]
`)

	s := NewCategoryStore(file)
	cats, err := s.LoadCategories()

	require.NoError(t, err)
	require.Len(t, cats, 2)
	assert.Equal(t, "Groceries", cats[0].Name)
	assert.Equal(t, []string{"supermarket", "grocery"}, cats[0].Keywords)
}

func TestCategoryStore_LoadCategories_BareArray(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "categories.yaml")
	writeFile(t, file, `- name: Groceries
  keywords: ["supermarket"]
- name: Transport
  keywords: ["sbb", "bus"]
`)

	s := NewCategoryStore(file)
	cats, err := s.LoadCategories()

	require.NoError(t, err)
	require.Len(t, cats, 2)
	assert.Equal(t, "Transport", cats[1].Name)
}

func TestCategoryStore_LoadCategories_LegacyMap(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "categories.yaml")
	writeFile(t, file, `Groceries:
  keywords: ["Supermarket", "GROCERY"]
Rent: monthly apartment rent
`)

	s := NewCategoryStore(file)
	cats, err := s.LoadCategories()

	require.NoError(t, err)
	require.Len(t, cats, 2)

	byName := map[string][]string{}
	for _, c := range cats {
		byName[c.Name] = c.Keywords
	}
	// Legacy keywords are lowercased on load.
	assert.Equal(t, []string{"supermarket", "grocery"}, byName["Groceries"])
	assert.Empty(t, byName["Rent"])
}

func TestCategoryStore_LoadCategories_Missing(t *testing.T) {
	s := NewCategoryStore(filepath.Join(t.TempDir(), "missing.yaml"))

	cats, err := s.LoadCategories()

	require.NoError(t, err)
	assert.Empty(t, cats)
}

func TestCategoryStore_LoadCategories_Malformed(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "categories.yaml")
	writeFile(t, file, `{malformed: yaml: content}`)

	s := NewCategoryStore(file)
	_, err := s.LoadCategories()

	assert.Error(t, err)
}
