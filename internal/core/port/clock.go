package port

import "time"

// Clock supplies the current time. Implementations must never go backwards.
type Clock interface {
	Now() time.Time
}
