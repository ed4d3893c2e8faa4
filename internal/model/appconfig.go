package model

// AppConfig holds application-wide preferences and default settings.
type AppConfig struct {
	// Defaults applied to new calculators
	DefaultReservePercent float64 `json:"default_reserve_percent"`

	// Report preferences
	Currency  string `json:"currency"`   // symbol appended to costs in reports
	ExportDir string `json:"export_dir"` // directory for generated reports, "" = cwd

	// Application preferences
	RecentReports []string `json:"recent_reports"`
}

// DefaultReservePercent is the reserve margin applied when nothing else is configured.
const DefaultReservePercent = 10.0

// DefaultAppConfig returns an AppConfig populated with sensible defaults.
func DefaultAppConfig() AppConfig {
	return AppConfig{
		DefaultReservePercent: DefaultReservePercent,
		Currency:              "₽",
		ExportDir:             "",
		RecentReports:         []string{},
	}
}

// AddRecentReport prepends a report path, dropping duplicates and keeping
// at most ten entries.
func (c *AppConfig) AddRecentReport(path string) {
	recent := []string{path}
	for _, p := range c.RecentReports {
		if p != path {
			recent = append(recent, p)
		}
	}
	if len(recent) > 10 {
		recent = recent[:10]
	}
	c.RecentReports = recent
}
