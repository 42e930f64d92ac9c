package inventory

import (
	"iter"
	"sync"

	"github.com/heartmarshall/stockbook/internal/domain"
)

var _ itemRepo = &itemRepoMock{}

type itemRepoMock struct {
	AddFunc    func(item domain.Item) (domain.Item, error)
	GetFunc    func(id int64) (domain.Item, error)
	UpdateFunc func(id int64, upd domain.ItemUpdate) (domain.Item, error)
	RemoveFunc func(id int64) error
	AllFunc    func() iter.Seq[domain.Item]
	ListFunc   func() []domain.Item
	SaveFunc   func() error

	calls struct {
		Add []struct {
			Item domain.Item
		}
		Get []struct {
			ID int64
		}
		Update []struct {
			ID  int64
			Upd domain.ItemUpdate
		}
		Remove []struct {
			ID int64
		}
		All  []struct{}
		List []struct{}
		Save []struct{}
	}
	lockAdd    sync.RWMutex
	lockGet    sync.RWMutex
	lockUpdate sync.RWMutex
	lockRemove sync.RWMutex
	lockAll    sync.RWMutex
	lockList   sync.RWMutex
	lockSave   sync.RWMutex
}

func (mock *itemRepoMock) Add(item domain.Item) (domain.Item, error) {
	if mock.AddFunc == nil {
		panic("itemRepoMock.AddFunc: method is nil but itemRepo.Add was just called")
	}
	callInfo := struct {
		Item domain.Item
	}{Item: item}
	mock.lockAdd.Lock()
	mock.calls.Add = append(mock.calls.Add, callInfo)
	mock.lockAdd.Unlock()
	return mock.AddFunc(item)
}

func (mock *itemRepoMock) AddCalls() []struct {
	Item domain.Item
} {
	mock.lockAdd.RLock()
	calls := mock.calls.Add
	mock.lockAdd.RUnlock()
	return calls
}

func (mock *itemRepoMock) Get(id int64) (domain.Item, error) {
	if mock.GetFunc == nil {
		panic("itemRepoMock.GetFunc: method is nil but itemRepo.Get was just called")
	}
	callInfo := struct{ ID int64 }{ID: id}
	mock.lockGet.Lock()
	mock.calls.Get = append(mock.calls.Get, callInfo)
	mock.lockGet.Unlock()
	return mock.GetFunc(id)
}

func (mock *itemRepoMock) GetCalls() []struct {
	ID int64
} {
	mock.lockGet.RLock()
	calls := mock.calls.Get
	mock.lockGet.RUnlock()
	return calls
}

func (mock *itemRepoMock) Update(id int64, upd domain.ItemUpdate) (domain.Item, error) {
	if mock.UpdateFunc == nil {
		panic("itemRepoMock.UpdateFunc: method is nil but itemRepo.Update was just called")
	}
	callInfo := struct {
		ID  int64
		Upd domain.ItemUpdate
	}{ID: id, Upd: upd}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(id, upd)
}

func (mock *itemRepoMock) UpdateCalls() []struct {
	ID  int64
	Upd domain.ItemUpdate
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

func (mock *itemRepoMock) Remove(id int64) error {
	if mock.RemoveFunc == nil {
		panic("itemRepoMock.RemoveFunc: method is nil but itemRepo.Remove was just called")
	}
	callInfo := struct{ ID int64 }{ID: id}
	mock.lockRemove.Lock()
	mock.calls.Remove = append(mock.calls.Remove, callInfo)
	mock.lockRemove.Unlock()
	return mock.RemoveFunc(id)
}

func (mock *itemRepoMock) RemoveCalls() []struct {
	ID int64
} {
	mock.lockRemove.RLock()
	calls := mock.calls.Remove
	mock.lockRemove.RUnlock()
	return calls
}

func (mock *itemRepoMock) All() iter.Seq[domain.Item] {
	if mock.AllFunc == nil {
		panic("itemRepoMock.AllFunc: method is nil but itemRepo.All was just called")
	}
	mock.lockAll.Lock()
	mock.calls.All = append(mock.calls.All, struct{}{})
	mock.lockAll.Unlock()
	return mock.AllFunc()
}

func (mock *itemRepoMock) AllCalls() []struct{} {
	mock.lockAll.RLock()
	calls := mock.calls.All
	mock.lockAll.RUnlock()
	return calls
}

func (mock *itemRepoMock) List() []domain.Item {
	if mock.ListFunc == nil {
		panic("itemRepoMock.ListFunc: method is nil but itemRepo.List was just called")
	}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, struct{}{})
	mock.lockList.Unlock()
	return mock.ListFunc()
}

func (mock *itemRepoMock) ListCalls() []struct{} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *itemRepoMock) Save() error {
	if mock.SaveFunc == nil {
		panic("itemRepoMock.SaveFunc: method is nil but itemRepo.Save was just called")
	}
	mock.lockSave.Lock()
	mock.calls.Save = append(mock.calls.Save, struct{}{})
	mock.lockSave.Unlock()
	return mock.SaveFunc()
}

func (mock *itemRepoMock) SaveCalls() []struct{} {
	mock.lockSave.RLock()
	calls := mock.calls.Save
	mock.lockSave.RUnlock()
	return calls
}
