package listing

import (
	"sync"

	"github.com/heartmarshall/hearthhub/internal/geo"
)

var _ mapGenerator = &mapGeneratorMock{}

type mapGeneratorMock struct {
	GenerateFunc func(location string) geo.Map

	calls struct {
		Generate []struct {
			Location string
		}
	}
	lockGenerate sync.RWMutex
}

func (mock *mapGeneratorMock) Generate(location string) geo.Map {
	if mock.GenerateFunc == nil {
		panic("mapGeneratorMock.GenerateFunc: method is nil but mapGenerator.Generate was just called")
	}
	callInfo := struct{ Location string }{Location: location}
	mock.lockGenerate.Lock()
	mock.calls.Generate = append(mock.calls.Generate, callInfo)
	mock.lockGenerate.Unlock()
	return mock.GenerateFunc(location)
}

func (mock *mapGeneratorMock) GenerateCalls() []struct {
	Location string
} {
	mock.lockGenerate.RLock()
	calls := mock.calls.Generate
	mock.lockGenerate.RUnlock()
	return calls
}
