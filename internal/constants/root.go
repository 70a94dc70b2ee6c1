package constants

import "time"

const (
	AppName           = "flipdeck"
	DefaultConfigPath = "~/.config/flipdeck/flipdeck.db"
	DefaultConfigFile = "~/.config/flipdeck/config.yaml"
	Version           = "v0.3.0"

	// Storage keys for the two progress documents. They are written together.
	ProgressScoresKey     = "flipdeck_history_v1"
	ProgressTimestampsKey = "flipdeck_timestamps_v1"
	SessionHistoryKey     = "flipdeck_sessions_v1"

	// MaxSessionHistory caps the session log kept under SessionHistoryKey
	MaxSessionHistory = 100

	// MasteryThreshold is the score at or above which an item is mastered
	MasteryThreshold = 3

	// OneWeek is the decay period; a positive score loses one point per
	// whole week since its last update.
	OneWeek = 7 * 24 * time.Hour

	// Gesture tuning
	TapTimeout        = 250 * time.Millisecond
	TapJitter         = 10.0
	SwipeThreshold    = 80.0
	IntentRampFactor  = 1.5
	CommitAnimation   = 300 * time.Millisecond
	DefaultSetSize    = 50
	DefaultDeckSheet  = "Sheet1"
	DefaultDateFormat = "2006-01-02 15:04"

	// Backup constants
	MaxBackups       = 14
	BackupDirName    = "backups"
	BackupFilePrefix = "flipdeck-"
	BackupFileSuffix = ".db"
)
