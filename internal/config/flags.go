package config

import (
	"flag"
	"time"
)

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-s server base URL (e.g. https://vault.example.com)
//	-d local database DSN (file path or :memory:)
//	-c/-config json file path with configs
//	-request-timeout outbound request timeout (e.g., "15s")
//	-debounce sync debounce window (e.g., "1500ms")
//	-sync-interval auto-sync base interval (e.g., "60s")
//	-history-limit max history entries fetched per item
func ParseFlags() *StructuredConfig {
	var serverURL string
	var databaseDSN string
	var jsonConfigPath string
	var requestTimeout time.Duration
	var debounceWindow time.Duration
	var baseInterval time.Duration
	var historyLimit int

	flag.StringVar(&serverURL, "s", "", "Remote server base URL")
	flag.StringVar(&databaseDSN, "d", "", "Local database DSN")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 15s)")
	flag.DurationVar(&debounceWindow, "debounce", 0, "Sync debounce window (e.g., 1500ms)")
	flag.DurationVar(&baseInterval, "sync-interval", 0, "Auto-sync base interval (e.g., 60s)")
	flag.IntVar(&historyLimit, "history-limit", 0, "Max history entries fetched per item")

	flag.Parse()

	return &StructuredConfig{
		Adapter: Adapter{
			ServerURL:      serverURL,
			RequestTimeout: requestTimeout,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		Sync: Sync{
			DebounceWindow: debounceWindow,
			BaseInterval:   baseInterval,
			HistoryLimit:   historyLimit,
		},
		JSONFilePath: jsonConfigPath,
	}
}
