// Package lock serialises book/reschedule per doctor so two callers cannot
// both pass the conflict check before either writes.
package lock

import "context"

// Locker acquires an exclusive lock on key. The returned func releases it and
// must be called exactly once.
type Locker interface {
	Lock(ctx context.Context, key string) (unlock func(), err error)
}

func DoctorKey(doctorID string) string {
	return "doctor:" + doctorID
}
