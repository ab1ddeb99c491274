package events

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func receive(t *testing.T, c chan []byte) []byte {
	t.Helper()
	select {
	case payload, ok := <-c:
		require.True(t, ok, "channel closed before a message arrived")
		return payload
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for event")
		return nil
	}
}

func TestHub_PublishReachesSubscribers(t *testing.T) {
	t.Parallel()

	hub := NewHub()
	sub1 := hub.Subscribe("t1")
	sub2 := hub.Subscribe("t1")
	other := hub.Subscribe("t2")

	require.Equal(t, 2, hub.SubscriberCount("t1"))
	require.Equal(t, 1, hub.SubscriberCount("t2"))

	hub.Publish("t1", NewNewBid("team1", 2_000_000, "alice"))

	for _, sub := range []*Subscription{sub1, sub2} {
		var event NewBid
		require.NoError(t, json.Unmarshal(receive(t, sub.C), &event))
		require.Equal(t, TypeNewBid, event.Type)
		require.Equal(t, "team1", event.TeamID)
		require.Equal(t, int64(2_000_000), event.Amount)
		require.Equal(t, "alice", event.Username)
	}

	select {
	case payload := <-other.C:
		t.Fatalf("observer of another tournament received %s", payload)
	default:
	}
}

func TestHub_Unsubscribe(t *testing.T) {
	t.Parallel()

	hub := NewHub()
	sub := hub.Subscribe("t1")

	hub.Unsubscribe(sub)
	require.Equal(t, 0, hub.SubscriberCount("t1"))

	_, open := <-sub.C
	require.False(t, open)

	// Idempotent, and publishing to nobody is fine.
	hub.Unsubscribe(sub)
	hub.Publish("t1", NewNextTeam("team2", time.Now()))
}

func TestHub_SlowSubscriberDropsEvents(t *testing.T) {
	t.Parallel()

	hub := NewHub()
	sub := hub.Subscribe("t1")

	for i := 0; i < subscriptionBuffer+10; i++ {
		hub.Publish("t1", NewNewBid("team1", int64(i+1), "alice"))
	}

	// The buffer holds the first events; the overflow is dropped, never
	// blocking the publisher.
	require.Len(t, sub.C, subscriptionBuffer)

	var first NewBid
	require.NoError(t, json.Unmarshal(receive(t, sub.C), &first))
	require.Equal(t, int64(1), first.Amount)
}

func TestHub_Close(t *testing.T) {
	t.Parallel()

	hub := NewHub()
	sub := hub.Subscribe("t1")

	hub.Close()

	_, open := <-sub.C
	require.False(t, open)
	require.Equal(t, 0, hub.SubscriberCount("t1"))

	// Post-close operations are no-ops rather than panics.
	hub.Publish("t1", NewAuctionCompleted("t1"))
	hub.Close()

	late := hub.Subscribe("t1")
	_, open = <-late.C
	require.False(t, open)
}

func TestHub_PayloadIsFlatJSON(t *testing.T) {
	t.Parallel()

	hub := NewHub()
	sub := hub.Subscribe("t1")

	deadline := time.Date(2026, 3, 1, 12, 2, 0, 0, time.UTC)
	hub.Publish("t1", NewAuctionStarted("team1", deadline))

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(receive(t, sub.C), &decoded))
	require.Equal(t, "auction_started", decoded["type"])
	require.Equal(t, "team1", decoded["current_team_id"])
	require.Equal(t, "2026-03-01T12:02:00Z", decoded["bid_end_time"])
}
