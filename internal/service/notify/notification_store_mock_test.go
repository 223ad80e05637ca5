package notify

import (
	"context"
	"sync"

	"github.com/heartmarshall/hearthhub/internal/domain"
)

var _ notificationStore = &notificationStoreMock{}

type notificationStoreMock struct {
	AddNotificationFunc       func(ctx context.Context, p domain.NotificationPayload) domain.Notification
	MarkNotificationsReadFunc func(ctx context.Context, ids []string) int
	DeleteNotificationFunc    func(ctx context.Context, id string) bool
	ClearNotificationsFunc    func(ctx context.Context)
	NotificationsFunc         func() []domain.Notification

	calls struct {
		AddNotification []struct {
			Ctx context.Context
			P   domain.NotificationPayload
		}
		MarkNotificationsRead []struct {
			Ctx context.Context
			Ids []string
		}
		DeleteNotification []struct {
			Ctx context.Context
			ID  string
		}
		ClearNotifications []struct {
			Ctx context.Context
		}
		Notifications []struct{}
	}
	lockAddNotification       sync.RWMutex
	lockMarkNotificationsRead sync.RWMutex
	lockDeleteNotification    sync.RWMutex
	lockClearNotifications    sync.RWMutex
	lockNotifications         sync.RWMutex
}

func (mock *notificationStoreMock) AddNotification(ctx context.Context, p domain.NotificationPayload) domain.Notification {
	if mock.AddNotificationFunc == nil {
		panic("notificationStoreMock.AddNotificationFunc: method is nil but notificationStore.AddNotification was just called")
	}
	callInfo := struct {
		Ctx context.Context
		P   domain.NotificationPayload
	}{Ctx: ctx, P: p}
	mock.lockAddNotification.Lock()
	mock.calls.AddNotification = append(mock.calls.AddNotification, callInfo)
	mock.lockAddNotification.Unlock()
	return mock.AddNotificationFunc(ctx, p)
}

func (mock *notificationStoreMock) AddNotificationCalls() []struct {
	Ctx context.Context
	P   domain.NotificationPayload
} {
	mock.lockAddNotification.RLock()
	calls := mock.calls.AddNotification
	mock.lockAddNotification.RUnlock()
	return calls
}

func (mock *notificationStoreMock) MarkNotificationsRead(ctx context.Context, ids []string) int {
	if mock.MarkNotificationsReadFunc == nil {
		panic("notificationStoreMock.MarkNotificationsReadFunc: method is nil but notificationStore.MarkNotificationsRead was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Ids []string
	}{Ctx: ctx, Ids: ids}
	mock.lockMarkNotificationsRead.Lock()
	mock.calls.MarkNotificationsRead = append(mock.calls.MarkNotificationsRead, callInfo)
	mock.lockMarkNotificationsRead.Unlock()
	return mock.MarkNotificationsReadFunc(ctx, ids)
}

func (mock *notificationStoreMock) MarkNotificationsReadCalls() []struct {
	Ctx context.Context
	Ids []string
} {
	mock.lockMarkNotificationsRead.RLock()
	calls := mock.calls.MarkNotificationsRead
	mock.lockMarkNotificationsRead.RUnlock()
	return calls
}

func (mock *notificationStoreMock) DeleteNotification(ctx context.Context, id string) bool {
	if mock.DeleteNotificationFunc == nil {
		panic("notificationStoreMock.DeleteNotificationFunc: method is nil but notificationStore.DeleteNotification was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  string
	}{Ctx: ctx, ID: id}
	mock.lockDeleteNotification.Lock()
	mock.calls.DeleteNotification = append(mock.calls.DeleteNotification, callInfo)
	mock.lockDeleteNotification.Unlock()
	return mock.DeleteNotificationFunc(ctx, id)
}

func (mock *notificationStoreMock) DeleteNotificationCalls() []struct {
	Ctx context.Context
	ID  string
} {
	mock.lockDeleteNotification.RLock()
	calls := mock.calls.DeleteNotification
	mock.lockDeleteNotification.RUnlock()
	return calls
}

func (mock *notificationStoreMock) ClearNotifications(ctx context.Context) {
	if mock.ClearNotificationsFunc == nil {
		panic("notificationStoreMock.ClearNotificationsFunc: method is nil but notificationStore.ClearNotifications was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockClearNotifications.Lock()
	mock.calls.ClearNotifications = append(mock.calls.ClearNotifications, callInfo)
	mock.lockClearNotifications.Unlock()
	mock.ClearNotificationsFunc(ctx)
}

func (mock *notificationStoreMock) ClearNotificationsCalls() []struct {
	Ctx context.Context
} {
	mock.lockClearNotifications.RLock()
	calls := mock.calls.ClearNotifications
	mock.lockClearNotifications.RUnlock()
	return calls
}

func (mock *notificationStoreMock) Notifications() []domain.Notification {
	if mock.NotificationsFunc == nil {
		panic("notificationStoreMock.NotificationsFunc: method is nil but notificationStore.Notifications was just called")
	}
	mock.lockNotifications.Lock()
	mock.calls.Notifications = append(mock.calls.Notifications, struct{}{})
	mock.lockNotifications.Unlock()
	return mock.NotificationsFunc()
}

func (mock *notificationStoreMock) NotificationsCalls() []struct{} {
	mock.lockNotifications.RLock()
	calls := mock.calls.Notifications
	mock.lockNotifications.RUnlock()
	return calls
}
