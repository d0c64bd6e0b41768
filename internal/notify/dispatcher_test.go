package notify

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type notifierStub struct {
	mu   sync.Mutex
	sent []string
	err  error
}

func (n *notifierStub) Send(_ context.Context, address, _, _ string) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.err != nil {
		return n.err
	}
	n.sent = append(n.sent, address)
	return nil
}

func (n *notifierStub) addresses() []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]string(nil), n.sent...)
}

func TestDispatcherDelivers(t *testing.T) {
	stub := &notifierStub{}
	d := NewDispatcher(zap.NewNop().Sugar(), stub, 8)

	d.Dispatch("alice@example.com", "subject", "body")
	d.Dispatch("bob@example.com", "subject", "body")
	d.Stop()

	require.Equal(t, []string{"alice@example.com", "bob@example.com"}, stub.addresses())
}

func TestDispatcherSurvivesDeliveryFailure(t *testing.T) {
	stub := &notifierStub{err: fmt.Errorf("smtp down")}
	d := NewDispatcher(zap.NewNop().Sugar(), stub, 8)

	d.Dispatch("alice@example.com", "subject", "body")
	d.Stop()
	// no panic, nothing recorded
	require.Empty(t, stub.addresses())
}

func TestDispatcherStopIdempotent(t *testing.T) {
	d := NewDispatcher(zap.NewNop().Sugar(), NopNotifier{}, 1)
	d.Stop()
	d.Stop()
}
