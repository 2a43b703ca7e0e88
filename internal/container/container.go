// Package container provides dependency injection for the expense
// tracker. It centralizes the creation and wiring of all application
// dependencies, making them explicit and testable.
package container

import (
	"fmt"

	"fjacquet/expense-tracker/internal/categorizer"
	"fjacquet/expense-tracker/internal/config"
	"fjacquet/expense-tracker/internal/logging"
	"fjacquet/expense-tracker/internal/models"
	"fjacquet/expense-tracker/internal/store"
	"fjacquet/expense-tracker/internal/validation"
)

// Container holds all application dependencies and provides methods to
// access them. It is immutable after creation - all fields are private
// and can only be reached through getter methods.
type Container struct {
	logger        logging.Logger
	config        *config.Config
	store         *store.Store
	categoryStore *store.CategoryStore
	categorizer   *categorizer.Categorizer
}

// NewContainer creates and wires all application dependencies.
// This is the main entry point for dependency injection.
//
// Parameters:
//   - cfg: Application configuration
//
// Returns:
//   - *Container: Fully wired container with all dependencies
//   - error: Any error encountered during dependency creation
func NewContainer(cfg *config.Config) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration cannot be nil")
	}

	// Create logger first as it's needed by other components
	logger := logging.NewLogrusAdapter(cfg.Log.Level, cfg.Log.Format)

	// Create the expense store
	expenseStore := store.New(cfg.DataFilePath(), cfg.BackupFilePath())

	// The data file holds personal finance records; flag it when other
	// users could read it.
	if err := validation.CheckDataFilePermissions(expenseStore.DataFile); err != nil {
		logger.WithError(err).Warn("data file is accessible to other users")
	}

	// Create category store
	categoryStore := store.NewCategoryStore(cfg.Categories.File)

	// Create keyword categorizer (if enabled)
	var cat *categorizer.Categorizer
	if cfg.Categorization.AutoCategorize {
		cat = categorizer.NewCategorizer(categoryStore, logger)
		cat.SetCaseSensitive(cfg.Categorization.CaseSensitive)
		logger.Info("keyword categorization enabled")
	} else {
		logger.Info("keyword categorization disabled")
	}

	logger.Info("Container initialized successfully",
		logging.Field{Key: "data_file", Value: expenseStore.DataFile},
		logging.Field{Key: "backup_file", Value: expenseStore.BackupFile},
		logging.Field{Key: "auto_categorize", Value: cfg.Categorization.AutoCategorize})

	return &Container{
		logger:        logger,
		config:        cfg,
		store:         expenseStore,
		categoryStore: categoryStore,
		categorizer:   cat,
	}, nil
}

// GetLogger returns the container's logger instance.
func (c *Container) GetLogger() logging.Logger {
	return c.logger
}

// GetConfig returns the container's configuration instance.
func (c *Container) GetConfig() *config.Config {
	return c.config
}

// GetStore returns the container's expense store instance.
func (c *Container) GetStore() *store.Store {
	return c.store
}

// GetCategoryStore returns the container's category store instance.
func (c *Container) GetCategoryStore() *store.CategoryStore {
	return c.categoryStore
}

// GetCategorizer returns the container's categorizer instance.
// Returns nil if keyword categorization is disabled.
func (c *Container) GetCategorizer() *categorizer.Categorizer {
	return c.categorizer
}

// ExpenseCategorizer returns the categorizer as the interface the
// import pipeline consumes, or nil when categorization is disabled.
// Going through this method avoids handing a typed nil to callers.
func (c *Container) ExpenseCategorizer() models.ExpenseCategorizer {
	if c.categorizer == nil {
		return nil
	}
	return c.categorizer
}

// Close performs cleanup of container resources.
// This method should be called when the container is no longer needed.
func (c *Container) Close() error {
	// Currently no resources need explicit cleanup
	// This method is provided for future extensibility
	c.logger.Info("Container closed")
	return nil
}
