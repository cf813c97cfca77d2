package repository

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/halcyon-app/halcyon/backend/internal/models"
	"github.com/halcyon-app/halcyon/backend/pkg/supabase"
)

// newStubbedChatRepository points the supabase client at a stub PostgREST
// server that records the request and replies with the given messages.
func newStubbedChatRepository(t *testing.T, reply []models.ChatMessage, gotQuery *url.Values, gotAuth *string) ChatRepository {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if gotQuery != nil {
			*gotQuery = r.URL.Query()
		}
		if gotAuth != nil {
			*gotAuth = r.Header.Get("Authorization")
		}
		json.NewEncoder(w).Encode(reply)
	}))
	t.Cleanup(srv.Close)
	return NewChatRepository(supabase.NewClient(srv.URL, "service-key"))
}

func TestGetMessagesLimitedReturnsMostRecentOldestFirst(t *testing.T) {
	// PostgREST applies limit after ordering, so a limited read must order
	// descending to keep the newest rows. Stub replies newest-first.
	var gotQuery url.Values
	repo := newStubbedChatRepository(t, []models.ChatMessage{
		{ID: "m3", Content: "third"},
		{ID: "m2", Content: "second"},
		{ID: "m1", Content: "first"},
	}, &gotQuery, nil)

	messages, err := repo.GetMessagesBySessionID(context.Background(), "s1", 3)
	if err != nil {
		t.Fatalf("GetMessagesBySessionID returned error: %v", err)
	}

	if got := gotQuery.Get("order"); got != "created_at.desc" {
		t.Errorf("order = %q, want created_at.desc (ascending order with a limit keeps the oldest rows)", got)
	}
	if got := gotQuery.Get("limit"); got != "3" {
		t.Errorf("limit = %q, want 3", got)
	}

	if len(messages) != 3 {
		t.Fatalf("got %d messages, want 3", len(messages))
	}
	if messages[0].ID != "m1" || messages[1].ID != "m2" || messages[2].ID != "m3" {
		t.Errorf("messages not in chronological order: %q, %q, %q",
			messages[0].ID, messages[1].ID, messages[2].ID)
	}
}

func TestGetMessagesUnlimitedStaysChronological(t *testing.T) {
	var gotQuery url.Values
	repo := newStubbedChatRepository(t, []models.ChatMessage{
		{ID: "m1"}, {ID: "m2"},
	}, &gotQuery, nil)

	messages, err := repo.GetMessagesBySessionID(context.Background(), "s1", 0)
	if err != nil {
		t.Fatalf("GetMessagesBySessionID returned error: %v", err)
	}

	if got := gotQuery.Get("order"); got != "created_at.asc" {
		t.Errorf("order = %q, want created_at.asc", got)
	}
	if gotQuery.Get("limit") != "" {
		t.Errorf("limit should not be set, got %q", gotQuery.Get("limit"))
	}
	if len(messages) != 2 || messages[0].ID != "m1" {
		t.Errorf("messages reordered unexpectedly: %+v", messages)
	}
}

func TestGetMessagesForwardsUserTokenForRLS(t *testing.T) {
	var gotAuth string
	repo := newStubbedChatRepository(t, nil, nil, &gotAuth)

	ctx := context.WithValue(context.Background(), "user_token", "user-jwt")
	if _, err := repo.GetMessagesBySessionID(ctx, "s1", 0); err != nil {
		t.Fatalf("GetMessagesBySessionID returned error: %v", err)
	}

	if gotAuth != "Bearer user-jwt" {
		t.Errorf("Authorization = %q, want the caller JWT", gotAuth)
	}
}

func TestGetMessagesFallsBackToServiceKey(t *testing.T) {
	var gotAuth string
	repo := newStubbedChatRepository(t, nil, nil, &gotAuth)

	if _, err := repo.GetMessagesBySessionID(context.Background(), "s1", 0); err != nil {
		t.Fatalf("GetMessagesBySessionID returned error: %v", err)
	}

	if gotAuth != "Bearer service-key" {
		t.Errorf("Authorization = %q, want the service key fallback", gotAuth)
	}
}
