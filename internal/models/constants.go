package models

// Default categories
const (
	CategoryDefault  = "Misc"
	CategoryImported = "Imported"
)

// File permissions
const (
	PermissionDataFile   = 0600
	PermissionExportFile = 0644
	PermissionDirectory  = 0750
)
