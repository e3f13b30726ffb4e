package adapters

import (
	"fmt"
	"strings"
	"time"
)

// catalogTimeLayouts covers timestamps written by this adapter and by
// SQLite's CURRENT_TIMESTAMP default.
var catalogTimeLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	time.DateTime,
}

func parseCatalogTime(value string) (time.Time, error) {
	trimmed := strings.TrimSpace(value)
	for _, layout := range catalogTimeLayouts {
		if parsed, err := time.Parse(layout, trimmed); err == nil {
			return parsed.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized timestamp %q", value)
}
