package models

// Setting is a single back-office configuration entry. Values are
// stored as strings; booleans are "true"/"false".
type Setting struct {
	Key   string `json:"key" gorm:"primaryKey;type:varchar(100)"`
	Value string `json:"value" gorm:"type:varchar(255)"`
}

// StoreSettings is the typed view of the settings table exposed to the
// admin UI. Unknown keys in the table are ignored.
type StoreSettings struct {
	EmailNotifications bool `json:"emailNotifications"`
	OrderNotifications bool `json:"orderNotifications"`
	LowStockAlerts     bool `json:"lowStockAlerts"`
	MaintenanceMode    bool `json:"maintenanceMode"`
}

// DefaultStoreSettings returns the values used when a key has never
// been saved.
func DefaultStoreSettings() StoreSettings {
	return StoreSettings{
		EmailNotifications: true,
		OrderNotifications: true,
		LowStockAlerts:     true,
		MaintenanceMode:    false,
	}
}
