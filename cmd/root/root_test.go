package root

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRootCommand_Metadata(t *testing.T) {
	assert.Equal(t, "expense-tracker", Cmd.Use)
	assert.NotEmpty(t, Cmd.Short)
	assert.NotEmpty(t, Cmd.Long)
	assert.NotNil(t, Cmd.Run)
	assert.NotNil(t, Cmd.PersistentPreRunE)
}

func TestInit_RegistersPersistentFlags(t *testing.T) {
	Init()

	flags := Cmd.PersistentFlags()
	for _, name := range []string{"file", "backup-file", "input", "output", "validate", "yes"} {
		assert.NotNil(t, flags.Lookup(name), "missing persistent flag %q", name)
	}
	assert.Equal(t, "f", flags.Lookup("file").Shorthand)
	assert.Equal(t, "i", flags.Lookup("input").Shorthand)
	assert.Equal(t, "o", flags.Lookup("output").Shorthand)
	assert.Equal(t, "y", flags.Lookup("yes").Shorthand)
}

func TestGetContainer_ReflectsAppContainer(t *testing.T) {
	original := AppContainer
	defer func() { AppContainer = original }()

	AppContainer = nil
	assert.Nil(t, GetContainer())
}

func TestSharedFlags_Defaults(t *testing.T) {
	flags := CommonFlags{}
	assert.Empty(t, flags.File)
	assert.Empty(t, flags.Backup)
	assert.Empty(t, flags.Input)
	assert.Empty(t, flags.Output)
	assert.False(t, flags.Validate)
	assert.False(t, flags.Yes)
}
