package supplier

import (
	"sync"

	"github.com/heartmarshall/stockbook/internal/domain"
)

var _ supplierRepo = &supplierRepoMock{}

type supplierRepoMock struct {
	UpsertFunc func(s domain.Supplier) (domain.Supplier, error)
	RemoveFunc func(name string) error
	ListFunc   func() []domain.Supplier
	SaveFunc   func() error

	calls struct {
		Upsert []struct {
			S domain.Supplier
		}
		Remove []struct {
			Name string
		}
		List []struct{}
		Save []struct{}
	}
	lockUpsert sync.RWMutex
	lockRemove sync.RWMutex
	lockList   sync.RWMutex
	lockSave   sync.RWMutex
}

func (mock *supplierRepoMock) Upsert(s domain.Supplier) (domain.Supplier, error) {
	if mock.UpsertFunc == nil {
		panic("supplierRepoMock.UpsertFunc: method is nil but supplierRepo.Upsert was just called")
	}
	callInfo := struct {
		S domain.Supplier
	}{S: s}
	mock.lockUpsert.Lock()
	mock.calls.Upsert = append(mock.calls.Upsert, callInfo)
	mock.lockUpsert.Unlock()
	return mock.UpsertFunc(s)
}

func (mock *supplierRepoMock) UpsertCalls() []struct {
	S domain.Supplier
} {
	mock.lockUpsert.RLock()
	calls := mock.calls.Upsert
	mock.lockUpsert.RUnlock()
	return calls
}

func (mock *supplierRepoMock) Remove(name string) error {
	if mock.RemoveFunc == nil {
		panic("supplierRepoMock.RemoveFunc: method is nil but supplierRepo.Remove was just called")
	}
	callInfo := struct{ Name string }{Name: name}
	mock.lockRemove.Lock()
	mock.calls.Remove = append(mock.calls.Remove, callInfo)
	mock.lockRemove.Unlock()
	return mock.RemoveFunc(name)
}

func (mock *supplierRepoMock) RemoveCalls() []struct {
	Name string
} {
	mock.lockRemove.RLock()
	calls := mock.calls.Remove
	mock.lockRemove.RUnlock()
	return calls
}

func (mock *supplierRepoMock) List() []domain.Supplier {
	if mock.ListFunc == nil {
		panic("supplierRepoMock.ListFunc: method is nil but supplierRepo.List was just called")
	}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, struct{}{})
	mock.lockList.Unlock()
	return mock.ListFunc()
}

func (mock *supplierRepoMock) ListCalls() []struct{} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *supplierRepoMock) Save() error {
	if mock.SaveFunc == nil {
		panic("supplierRepoMock.SaveFunc: method is nil but supplierRepo.Save was just called")
	}
	mock.lockSave.Lock()
	mock.calls.Save = append(mock.calls.Save, struct{}{})
	mock.lockSave.Unlock()
	return mock.SaveFunc()
}

func (mock *supplierRepoMock) SaveCalls() []struct{} {
	mock.lockSave.RLock()
	calls := mock.calls.Save
	mock.lockSave.RUnlock()
	return calls
}
