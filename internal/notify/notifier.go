// Package notify delivers best-effort notifications to users.
package notify

import "context"

// Notifier sends a single notification. Implementations are best-effort;
// callers must not treat delivery failure as an operation failure.
type Notifier interface {
	Send(ctx context.Context, address, subject, body string) error
}

// NopNotifier discards every notification. Used when no mail backend is
// configured.
type NopNotifier struct{}

// Send implements Notifier.
func (NopNotifier) Send(_ context.Context, _, _, _ string) error { return nil }
