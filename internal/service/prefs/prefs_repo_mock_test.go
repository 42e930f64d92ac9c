package prefs

import (
	"sync"

	"github.com/heartmarshall/stockbook/internal/domain"
)

var _ prefsRepo = &prefsRepoMock{}

type prefsRepoMock struct {
	GetFunc  func() domain.Preferences
	SetFunc  func(p domain.Preferences) error
	SaveFunc func() error

	calls struct {
		Get []struct{}
		Set []struct {
			P domain.Preferences
		}
		Save []struct{}
	}
	lockGet  sync.RWMutex
	lockSet  sync.RWMutex
	lockSave sync.RWMutex
}

func (mock *prefsRepoMock) Get() domain.Preferences {
	if mock.GetFunc == nil {
		panic("prefsRepoMock.GetFunc: method is nil but prefsRepo.Get was just called")
	}
	mock.lockGet.Lock()
	mock.calls.Get = append(mock.calls.Get, struct{}{})
	mock.lockGet.Unlock()
	return mock.GetFunc()
}

func (mock *prefsRepoMock) GetCalls() []struct{} {
	mock.lockGet.RLock()
	calls := mock.calls.Get
	mock.lockGet.RUnlock()
	return calls
}

func (mock *prefsRepoMock) Set(p domain.Preferences) error {
	if mock.SetFunc == nil {
		panic("prefsRepoMock.SetFunc: method is nil but prefsRepo.Set was just called")
	}
	callInfo := struct {
		P domain.Preferences
	}{P: p}
	mock.lockSet.Lock()
	mock.calls.Set = append(mock.calls.Set, callInfo)
	mock.lockSet.Unlock()
	return mock.SetFunc(p)
}

func (mock *prefsRepoMock) SetCalls() []struct {
	P domain.Preferences
} {
	mock.lockSet.RLock()
	calls := mock.calls.Set
	mock.lockSet.RUnlock()
	return calls
}

func (mock *prefsRepoMock) Save() error {
	if mock.SaveFunc == nil {
		panic("prefsRepoMock.SaveFunc: method is nil but prefsRepo.Save was just called")
	}
	mock.lockSave.Lock()
	mock.calls.Save = append(mock.calls.Save, struct{}{})
	mock.lockSave.Unlock()
	return mock.SaveFunc()
}

func (mock *prefsRepoMock) SaveCalls() []struct{} {
	mock.lockSave.RLock()
	calls := mock.calls.Save
	mock.lockSave.RUnlock()
	return calls
}
