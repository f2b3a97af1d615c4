package contracts

import "context"

// DoctorEventPublisher pushes change envelopes after a successful write.
// Publishing is fire-and-forget from the caller's perspective: a failed
// publish must never fail the write that triggered it.
type DoctorEventPublisher interface {
	PublishDoctorEvent(ctx context.Context, action, doctorID string) error
}
