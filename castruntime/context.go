package castruntime

import (
	"context"
	"time"
)

type sessionTimeZoneKey struct{}

// WithSessionTimeZone stores the session time zone used to render
// TIMESTAMP WITH LOCAL TIME ZONE values
func WithSessionTimeZone(ctx context.Context, loc *time.Location) context.Context {
	return context.WithValue(ctx, sessionTimeZoneKey{}, loc)
}

// SessionTimeZone returns the session time zone stored on ctx, or UTC when none is set
func SessionTimeZone(ctx context.Context) *time.Location {
	if value := ctx.Value(sessionTimeZoneKey{}); value != nil {
		if loc, ok := value.(*time.Location); ok && loc != nil {
			return loc
		}
	}

	return UTCZone
}
