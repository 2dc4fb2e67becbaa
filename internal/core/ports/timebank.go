package ports

import (
	"context"
	"time"
)

// TimeBankRepository accumulates minutes saved by finishing tasks under
// their planned duration, one row per user and date.
type TimeBankRepository interface {
	AddSaved(ctx context.Context, userID string, date time.Time, minutes int) error
}
