package invoicing

import (
	"sync"

	"github.com/heartmarshall/stockbook/internal/domain"
)

var _ stockRepo = &stockRepoMock{}

type stockRepoMock struct {
	GetFunc            func(id int64) (domain.Item, error)
	AdjustQuantityFunc func(id, delta int64) (domain.Item, error)
	SaveFunc           func() error

	calls struct {
		Get []struct {
			ID int64
		}
		AdjustQuantity []struct {
			ID    int64
			Delta int64
		}
		Save []struct{}
	}
	lockGet            sync.RWMutex
	lockAdjustQuantity sync.RWMutex
	lockSave           sync.RWMutex
}

func (mock *stockRepoMock) Get(id int64) (domain.Item, error) {
	if mock.GetFunc == nil {
		panic("stockRepoMock.GetFunc: method is nil but stockRepo.Get was just called")
	}
	callInfo := struct{ ID int64 }{ID: id}
	mock.lockGet.Lock()
	mock.calls.Get = append(mock.calls.Get, callInfo)
	mock.lockGet.Unlock()
	return mock.GetFunc(id)
}

func (mock *stockRepoMock) GetCalls() []struct {
	ID int64
} {
	mock.lockGet.RLock()
	calls := mock.calls.Get
	mock.lockGet.RUnlock()
	return calls
}

func (mock *stockRepoMock) AdjustQuantity(id, delta int64) (domain.Item, error) {
	if mock.AdjustQuantityFunc == nil {
		panic("stockRepoMock.AdjustQuantityFunc: method is nil but stockRepo.AdjustQuantity was just called")
	}
	callInfo := struct {
		ID    int64
		Delta int64
	}{ID: id, Delta: delta}
	mock.lockAdjustQuantity.Lock()
	mock.calls.AdjustQuantity = append(mock.calls.AdjustQuantity, callInfo)
	mock.lockAdjustQuantity.Unlock()
	return mock.AdjustQuantityFunc(id, delta)
}

func (mock *stockRepoMock) AdjustQuantityCalls() []struct {
	ID    int64
	Delta int64
} {
	mock.lockAdjustQuantity.RLock()
	calls := mock.calls.AdjustQuantity
	mock.lockAdjustQuantity.RUnlock()
	return calls
}

func (mock *stockRepoMock) Save() error {
	if mock.SaveFunc == nil {
		panic("stockRepoMock.SaveFunc: method is nil but stockRepo.Save was just called")
	}
	mock.lockSave.Lock()
	mock.calls.Save = append(mock.calls.Save, struct{}{})
	mock.lockSave.Unlock()
	return mock.SaveFunc()
}

func (mock *stockRepoMock) SaveCalls() []struct{} {
	mock.lockSave.RLock()
	calls := mock.calls.Save
	mock.lockSave.RUnlock()
	return calls
}
