package store

import (
	"context"
	"sync"
)

var _ Backend = &BackendMock{}

type BackendMock struct {
	LoadFunc func(ctx context.Context, key string) ([]byte, error)
	SaveFunc func(ctx context.Context, key string, payload []byte) error

	calls struct {
		Load []struct {
			Ctx context.Context
			Key string
		}
		Save []struct {
			Ctx     context.Context
			Key     string
			Payload []byte
		}
	}
	lockLoad sync.RWMutex
	lockSave sync.RWMutex
}

func (mock *BackendMock) Load(ctx context.Context, key string) ([]byte, error) {
	if mock.LoadFunc == nil {
		panic("BackendMock.LoadFunc: method is nil but Backend.Load was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Key string
	}{Ctx: ctx, Key: key}
	mock.lockLoad.Lock()
	mock.calls.Load = append(mock.calls.Load, callInfo)
	mock.lockLoad.Unlock()
	return mock.LoadFunc(ctx, key)
}

func (mock *BackendMock) LoadCalls() []struct {
	Ctx context.Context
	Key string
} {
	mock.lockLoad.RLock()
	calls := mock.calls.Load
	mock.lockLoad.RUnlock()
	return calls
}

func (mock *BackendMock) Save(ctx context.Context, key string, payload []byte) error {
	if mock.SaveFunc == nil {
		panic("BackendMock.SaveFunc: method is nil but Backend.Save was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		Key     string
		Payload []byte
	}{Ctx: ctx, Key: key, Payload: payload}
	mock.lockSave.Lock()
	mock.calls.Save = append(mock.calls.Save, callInfo)
	mock.lockSave.Unlock()
	return mock.SaveFunc(ctx, key, payload)
}

func (mock *BackendMock) SaveCalls() []struct {
	Ctx     context.Context
	Key     string
	Payload []byte
} {
	mock.lockSave.RLock()
	calls := mock.calls.Save
	mock.lockSave.RUnlock()
	return calls
}
