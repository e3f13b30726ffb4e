package ports

import (
	"context"
	"time"

	"github.com/tim-tx/cello-utils/internal/types"
)

// MetricsPort records one run's counters.
type MetricsPort interface {
	ObserveStage(stage string, rows int, elapsed time.Duration)
	CountWarning(code types.WarningCode)
	SetCollections(kind types.Kind, count int)
	Flush(ctx context.Context) error
}
