package assistant

import (
	"context"
	"sync"
	"testing"

	"brewvoice/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// blockingPlacer parks PlaceOrder until released, to exercise the
// in-flight finalize guard.
type blockingPlacer struct {
	fakePlacer
	entered chan struct{}
	release chan struct{}
}

func newBlockingPlacer() *blockingPlacer {
	return &blockingPlacer{
		entered: make(chan struct{}),
		release: make(chan struct{}),
	}
}

func (b *blockingPlacer) PlaceOrder(ctx context.Context, req models.PlaceOrderRequest) error {
	close(b.entered)
	<-b.release
	return b.fakePlacer.PlaceOrder(ctx, req)
}

func setupService(t *testing.T, placer OrderPlacer) *DefaultAssistantService {
	t.Helper()
	catalog := models.NewCatalog(models.DefaultMenu())
	reducer := &Reducer{
		Catalog:     catalog,
		Placer:      placer,
		Artifact:    &fakeArtifact{},
		TableNumber: 1,
		Logger:      zap.NewNop(),
	}
	return NewDefaultAssistantService(NewParser(catalog), reducer, NewMemorySessionStore(), zap.NewNop())
}

func TestStartAndResetSession(t *testing.T) {
	svc := setupService(t, &fakePlacer{})
	ctx := context.Background()

	first, err := svc.StartSession(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, first.Session.SessionID)
	assert.Equal(t, models.OrderOpen, first.Order.Status)
	assert.Empty(t, first.Order.Lines)

	second, err := svc.ResetSession(ctx, first.Session.SessionID)
	require.NoError(t, err)
	assert.NotEqual(t, first.Session.SessionID, second.Session.SessionID)

	// The old snapshot is gone.
	_, err = svc.Store.Get(ctx, first.Session.SessionID)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestToggleCapture(t *testing.T) {
	svc := setupService(t, &fakePlacer{})
	ctx := context.Background()

	snap, err := svc.StartSession(ctx)
	require.NoError(t, err)

	active, err := svc.ToggleCapture(ctx, snap.Session.SessionID)
	require.NoError(t, err)
	assert.True(t, active)

	// Toggling while active stops capture.
	active, err = svc.ToggleCapture(ctx, snap.Session.SessionID)
	require.NoError(t, err)
	assert.False(t, active)

	_, err = svc.ToggleCapture(ctx, "no-such-session")
	assert.Error(t, err)
}

func TestHandleTranscriptFlow(t *testing.T) {
	svc := setupService(t, &fakePlacer{})
	ctx := context.Background()

	resp, err := svc.HandleTranscript(ctx, "", "two espresso")
	require.NoError(t, err)
	require.NotEmpty(t, resp.SessionID)

	// User echo first, then the confirmation and a follow-up prompt.
	require.NotEmpty(t, resp.Messages)
	assert.Equal(t, models.SenderUser, resp.Messages[0].Sender)
	assert.Equal(t, "2 espressos added to your order.", resp.Messages[1].Text)
	assert.Len(t, resp.Speech, len(resp.Messages)-1)

	require.Len(t, resp.Order.Lines, 1)
	assert.Equal(t, 2, resp.Order.Lines[0].Quantity)

	// The same session keeps accumulating.
	resp2, err := svc.HandleTranscript(ctx, resp.SessionID, "one espresso")
	require.NoError(t, err)
	assert.Equal(t, resp.SessionID, resp2.SessionID)
	assert.Equal(t, 3, resp2.Order.Lines[0].Quantity)
}

func TestHandleTranscriptUserEcho(t *testing.T) {
	svc := setupService(t, &fakePlacer{})

	resp, err := svc.HandleTranscript(context.Background(), "", "for espresso")
	require.NoError(t, err)
	assert.Equal(t, "four espresso", resp.Messages[0].Text)
}

func TestFinalizeInFlightGuard(t *testing.T) {
	placer := newBlockingPlacer()
	svc := setupService(t, placer)
	ctx := context.Background()

	snap, err := svc.StartSession(ctx)
	require.NoError(t, err)
	sessionID := snap.Session.SessionID

	_, err = svc.HandleTranscript(ctx, sessionID, "one espresso")
	require.NoError(t, err)

	var wg sync.WaitGroup
	wg.Add(1)
	var firstResp *models.AssistantResponse
	go func() {
		defer wg.Done()
		firstResp, _ = svc.HandleTranscript(ctx, sessionID, "finalize")
	}()

	// Wait until the first finalize is inside the remote call, then try a
	// second one.
	<-placer.entered
	busyResp, err := svc.HandleTranscript(ctx, sessionID, "finalize")
	require.NoError(t, err)
	assert.Equal(t, "Hold on, your order is already being placed.", busyResp.Messages[1].Text)
	assert.Empty(t, placer.placed)

	close(placer.release)
	wg.Wait()

	require.NotNil(t, firstResp)
	assert.Equal(t, models.OrderFinalized, firstResp.Order.Status)
	assert.Len(t, placer.placed, 1)
}

func TestHandleTranscriptExpiredSessionStartsFresh(t *testing.T) {
	svc := setupService(t, &fakePlacer{})

	resp, err := svc.HandleTranscript(context.Background(), "expired-session", "one cappuccino")
	require.NoError(t, err)
	assert.NotEqual(t, "expired-session", resp.SessionID)
	require.Len(t, resp.Order.Lines, 1)
}
