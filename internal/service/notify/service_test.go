package notify

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/heartmarshall/hearthhub/internal/adapter/memory"
	"github.com/heartmarshall/hearthhub/internal/domain"
	"github.com/heartmarshall/hearthhub/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

// newTestService creates a Service with the given mock and a default logger.
func newTestService(t *testing.T, mock *notificationStoreMock) *Service {
	t.Helper()
	return &Service{
		store: mock,
		log:   slog.Default(),
	}
}

func fixture() []domain.Notification {
	return []domain.Notification{
		{ID: "n4", Title: "theirs", UserID: ptr("u2")},
		{ID: "n3", Title: "mine read", UserID: ptr("u1"), Read: true},
		{ID: "n2", Title: "mine", UserID: ptr("u1")},
		{ID: "n1", Title: "global"},
	}
}

func listMock() *notificationStoreMock {
	return &notificationStoreMock{
		NotificationsFunc: fixture,
		MarkNotificationsReadFunc: func(ctx context.Context, ids []string) int {
			return len(ids)
		},
		DeleteNotificationFunc: func(ctx context.Context, id string) bool {
			return true
		},
	}
}

// ---------------------------------------------------------------------------
// Push
// ---------------------------------------------------------------------------

func TestPush_Defaults(t *testing.T) {
	t.Parallel()

	mock := &notificationStoreMock{
		AddNotificationFunc: func(ctx context.Context, p domain.NotificationPayload) domain.Notification {
			return domain.Notification{ID: "n1", Title: p.Title, Type: p.Type, ActionType: p.ActionType}
		},
	}
	svc := newTestService(t, mock)

	n, err := svc.Push(context.Background(), PushInput{Title: "  Welcome  ", Message: "hi"})
	require.NoError(t, err)
	assert.Equal(t, "n1", n.ID)

	calls := mock.AddNotificationCalls()
	require.Len(t, calls, 1)
	p := calls[0].P
	assert.Equal(t, "Welcome", p.Title)
	assert.Equal(t, domain.NotificationTypeInfo, p.Type)
	require.NotNil(t, p.ActionType)
	assert.Equal(t, domain.ActionSystem, *p.ActionType)
	assert.Nil(t, p.UserID)
}

func TestPush_KeepsExplicitFields(t *testing.T) {
	t.Parallel()

	mock := &notificationStoreMock{
		AddNotificationFunc: func(ctx context.Context, p domain.NotificationPayload) domain.Notification {
			return domain.Notification{}
		},
	}
	svc := newTestService(t, mock)

	_, err := svc.Push(context.Background(), PushInput{
		Title:      "Saved",
		Type:       domain.NotificationTypeSuccess,
		UserID:     ptr("u1"),
		ActionType: ptr(domain.ActionUserAction),
	})
	require.NoError(t, err)

	p := mock.AddNotificationCalls()[0].P
	assert.Equal(t, domain.NotificationTypeSuccess, p.Type)
	assert.Equal(t, domain.ActionUserAction, *p.ActionType)
	assert.Equal(t, "u1", *p.UserID)
}

func TestPush_Validation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input PushInput
		field string
	}{
		{"empty title", PushInput{Title: " "}, "title"},
		{"long title", PushInput{Title: strings.Repeat("x", 201)}, "title"},
		{"long message", PushInput{Title: "t", Message: strings.Repeat("x", 2001)}, "message"},
		{"bad type", PushInput{Title: "t", Type: "loud"}, "type"},
		{"bad action", PushInput{Title: "t", ActionType: ptr(domain.ActionType("poke"))}, "action_type"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			mock := &notificationStoreMock{}
			svc := newTestService(t, mock)

			_, err := svc.Push(context.Background(), tt.input)
			require.ErrorIs(t, err, domain.ErrValidation)

			var verr *domain.ValidationError
			require.True(t, errors.As(err, &verr))
			assert.True(t, verr.Has(tt.field), "%v", verr.Errors)
			assert.Empty(t, mock.AddNotificationCalls())
		})
	}
}

// ---------------------------------------------------------------------------
// Scoped reads
// ---------------------------------------------------------------------------

func TestListFor(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, listMock())

	got := svc.ListFor("u1")
	ids := make([]string, len(got))
	for i, n := range got {
		ids[i] = n.ID
	}
	assert.Equal(t, []string{"n3", "n2", "n1"}, ids)
	assert.Equal(t, 2, svc.UnreadCountFor("u1"))
	assert.Equal(t, 2, svc.UnreadCountFor("u2"))
	assert.Equal(t, 1, svc.UnreadCountFor("nobody"))
}

func TestMarkAllReadFor_OnlyVisibleUnread(t *testing.T) {
	t.Parallel()

	mock := listMock()
	svc := newTestService(t, mock)

	changed := svc.MarkAllReadFor(context.Background(), "u1")

	assert.Equal(t, 2, changed)
	calls := mock.MarkNotificationsReadCalls()
	require.Len(t, calls, 1)
	assert.ElementsMatch(t, []string{"n2", "n1"}, calls[0].Ids)
}

func TestMarkAllReadFor_NothingUnread(t *testing.T) {
	t.Parallel()

	mock := listMock()
	mock.NotificationsFunc = func() []domain.Notification {
		return []domain.Notification{{ID: "n1", Read: true}}
	}
	svc := newTestService(t, mock)

	assert.Equal(t, 0, svc.MarkAllReadFor(context.Background(), "u1"))
	assert.Empty(t, mock.MarkNotificationsReadCalls())
}

func TestMarkRead_Scoped(t *testing.T) {
	t.Parallel()

	mock := listMock()
	svc := newTestService(t, mock)
	ctx := context.Background()

	require.NoError(t, svc.MarkRead(ctx, "u1", "n2"))
	require.NoError(t, svc.MarkRead(ctx, "u1", "n1"))
	assert.ErrorIs(t, svc.MarkRead(ctx, "u1", "n4"), domain.ErrNotFound)
	assert.ErrorIs(t, svc.MarkRead(ctx, "u1", "missing"), domain.ErrNotFound)
	assert.Len(t, mock.MarkNotificationsReadCalls(), 2)
}

func TestDelete_Scoped(t *testing.T) {
	t.Parallel()

	mock := listMock()
	svc := newTestService(t, mock)
	ctx := context.Background()

	require.NoError(t, svc.Delete(ctx, "u2", "n4"))
	assert.ErrorIs(t, svc.Delete(ctx, "u1", "n4"), domain.ErrNotFound)
	assert.Len(t, mock.DeleteNotificationCalls(), 1)
}

func TestClearAll(t *testing.T) {
	t.Parallel()

	mock := &notificationStoreMock{ClearNotificationsFunc: func(ctx context.Context) {}}
	svc := newTestService(t, mock)

	svc.ClearAll(context.Background())
	assert.Len(t, mock.ClearNotificationsCalls(), 1)
}

// ---------------------------------------------------------------------------
// Against a real store
// ---------------------------------------------------------------------------

func TestMarkAllReadFor_LeavesOtherUsersUnread(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	st := store.New(slog.Default(), memory.New(), store.Config{})
	svc := NewService(slog.Default(), st)

	_, err := svc.Push(ctx, PushInput{Title: "mine", UserID: ptr("u1")})
	require.NoError(t, err)
	_, err = svc.Push(ctx, PushInput{Title: "theirs", UserID: ptr("u2")})
	require.NoError(t, err)
	_, err = svc.Push(ctx, PushInput{Title: "global"})
	require.NoError(t, err)

	assert.Equal(t, 2, svc.MarkAllReadFor(ctx, "u1"))
	assert.Equal(t, 0, svc.UnreadCountFor("u1"))
	assert.Equal(t, 1, svc.UnreadCountFor("u2"))
	assert.Equal(t, 1, st.UnreadCount())
}
