package config

// Database/application settings.
const (
	AppName    = "gantterm"
	DBFileName = "gantterm.db"
)

// Settings keys persisted in the settings table.
const (
	SettingTheme        = "theme"
	SettingZoom         = "zoom"
	SettingShowWeekends = "show_weekends"
	SettingShowToday    = "show_today"
	SettingSnapToGrid   = "snap_to_grid"
	SettingShowDayLines = "show_day_lines"
	SettingPixelsPerDay = "pixels_per_day"
)
