package config

import "time"

// Base application details
const AppName = "retrace"
const DefaultConfigFileName = "config.toml" // Main config file
const DefaultLogFileName = "retrace.log"
const HistoryDirName = "history" // Under the user cache dir

// History
const DefaultMaxUndo = 0 // Unbounded, as the history engine defaults to
const DefaultMaxRedo = 0
const DefaultSnapshotFormat = "toml"
const DefaultSaveDelay = 500 * time.Millisecond

// Editor
const DefaultTabWidth = 4
const SystemClipboard = true

// Status Bar
const MessageTimeout = 4 * time.Second
