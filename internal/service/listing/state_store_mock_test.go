package listing

import (
	"context"
	"sync"

	"github.com/heartmarshall/hearthhub/internal/store"
)

var _ stateStore = &stateStoreMock{}

type stateStoreMock struct {
	UpdateFunc func(ctx context.Context, fn func(tx *store.Tx) error) error

	calls struct {
		Update []struct {
			Ctx context.Context
			Fn  func(tx *store.Tx) error
		}
	}
	lockUpdate sync.RWMutex
}

func (mock *stateStoreMock) Update(ctx context.Context, fn func(tx *store.Tx) error) error {
	if mock.UpdateFunc == nil {
		panic("stateStoreMock.UpdateFunc: method is nil but stateStore.Update was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Fn  func(tx *store.Tx) error
	}{Ctx: ctx, Fn: fn}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, fn)
}

func (mock *stateStoreMock) UpdateCalls() []struct {
	Ctx context.Context
	Fn  func(tx *store.Tx) error
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}
