package store

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"fjacquet/expense-tracker/internal/logging"
	"fjacquet/expense-tracker/internal/models"
)

// CategoryStore loads the category keyword definitions used for
// auto-categorization. The definitions are plain YAML maintained by
// hand, separate from the ledger data file.
type CategoryStore struct {
	CategoriesFile string
}

// NewCategoryStore creates a store for the category definitions file
func NewCategoryStore(categoriesFile string) *CategoryStore {
	return &CategoryStore{CategoriesFile: categoriesFile}
}

// FindConfigFile looks for a configuration file in standard locations
func (s *CategoryStore) FindConfigFile(filename string) (string, error) {
	if filepath.IsAbs(filename) {
		if _, err := os.Stat(filename); err == nil {
			return filename, nil
		}
		return "", os.ErrNotExist
	}

	locations := []string{
		filename,                          // Current directory
		filepath.Join("config", filename), // ./config/ directory
	}

	for _, location := range locations {
		if _, err := os.Stat(location); err == nil {
			return location, nil
		}
	}

	// Last resort: the user's home config directory
	homeDir, err := os.UserHomeDir()
	if err == nil {
		configPath := filepath.Join(homeDir, ".expense-tracker", filename)
		if _, err := os.Stat(configPath); err == nil {
			return configPath, nil
		}
	}

	return "", os.ErrNotExist
}

func (s *CategoryStore) resolveConfigFile(filename string) (string, error) {
	if filepath.IsAbs(filename) {
		return filename, nil
	}

	path, err := s.FindConfigFile(filename)
	if err != nil {
		log.Warn("configuration file not found",
			logging.Field{Key: logging.FieldFile, Value: filename})
		return "", err
	}

	return path, nil
}

// LoadCategories loads category definitions from the YAML file. A
// missing file is not an error: auto-categorization simply has nothing
// to match against.
func (s *CategoryStore) LoadCategories() ([]models.CategoryConfig, error) {
	filename := s.CategoriesFile
	if filename == "" {
		filename = "categories.yaml"
	}

	filePath, err := s.resolveConfigFile(filename)
	if err != nil {
		if os.IsNotExist(err) {
			return []models.CategoryConfig{}, nil
		}
		return nil, fmt.Errorf("error resolving categories file: %w", err)
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return []models.CategoryConfig{}, nil
		}
		return nil, fmt.Errorf("error reading categories file: %w", err)
	}

	// The documented structure is "categories: [...]"
	var categoriesConfig models.CategoriesConfig
	err = yaml.Unmarshal(data, &categoriesConfig)
	if err == nil && len(categoriesConfig.Categories) > 0 {
		log.Debug("loaded category definitions",
			logging.Field{Key: logging.FieldFile, Value: filePath},
			logging.Field{Key: logging.FieldCount, Value: len(categoriesConfig.Categories)})
		return categoriesConfig.Categories, nil
	}

	// Fallback: a bare array without the top-level key
	var categories []models.CategoryConfig
	err = yaml.Unmarshal(data, &categories)
	if err == nil && len(categories) > 0 {
		log.Debug("loaded category definitions from bare array",
			logging.Field{Key: logging.FieldFile, Value: filePath},
			logging.Field{Key: logging.FieldCount, Value: len(categories)})
		return categories, nil
	}

	return s.parseLegacyCategoriesFile(data)
}

// parseLegacyCategoriesFile handles the oldest file format: a map of
// category name to either a description string or a nested map with a
// keywords list. Returns an empty slice for an empty file.
func (s *CategoryStore) parseLegacyCategoriesFile(data []byte) ([]models.CategoryConfig, error) {
	var categoriesMap map[string]interface{}
	if err := yaml.Unmarshal(data, &categoriesMap); err != nil {
		return nil, fmt.Errorf("error parsing categories file: %w", err)
	}

	var categories []models.CategoryConfig
	for name, value := range categoriesMap {
		category := models.CategoryConfig{Name: name}

		if nested, ok := value.(map[string]interface{}); ok {
			if keywordsVal, ok := nested["keywords"]; ok {
				if keywordsList, ok := keywordsVal.([]interface{}); ok {
					for _, k := range keywordsList {
						if keyword, ok := k.(string); ok {
							category.Keywords = append(category.Keywords, strings.ToLower(keyword))
						}
					}
				}
			}
		}

		categories = append(categories, category)
	}

	log.Debug("parsed category definitions in legacy format",
		logging.Field{Key: logging.FieldCount, Value: len(categories)})
	return categories, nil
}
