package cmd

import (
	mdwlog "github.com/msto63/gregor/foundation/core/log"
	"github.com/msto63/gregor/internal/timeline"
	"github.com/msto63/gregor/pkg/core/logging"
)

// openStore opens the configured marks database
func openStore() (*timeline.SQLiteStore, error) {
	return timeline.NewSQLiteStore(timeline.Config{
		Path:   cfg.Timeline.Path,
		Logger: logging.Wrap(mdwlog.GetDefault(), "timeline"),
	})
}
