package invoicing

import (
	"sync"

	"github.com/heartmarshall/stockbook/internal/domain"
)

var _ supplierRegistry = &supplierRegistryMock{}

type supplierRegistryMock struct {
	UpsertFunc func(s domain.Supplier) (domain.Supplier, error)
	SaveFunc   func() error

	calls struct {
		Upsert []struct {
			S domain.Supplier
		}
		Save []struct{}
	}
	lockUpsert sync.RWMutex
	lockSave   sync.RWMutex
}

func (mock *supplierRegistryMock) Upsert(s domain.Supplier) (domain.Supplier, error) {
	if mock.UpsertFunc == nil {
		panic("supplierRegistryMock.UpsertFunc: method is nil but supplierRegistry.Upsert was just called")
	}
	callInfo := struct {
		S domain.Supplier
	}{S: s}
	mock.lockUpsert.Lock()
	mock.calls.Upsert = append(mock.calls.Upsert, callInfo)
	mock.lockUpsert.Unlock()
	return mock.UpsertFunc(s)
}

func (mock *supplierRegistryMock) UpsertCalls() []struct {
	S domain.Supplier
} {
	mock.lockUpsert.RLock()
	calls := mock.calls.Upsert
	mock.lockUpsert.RUnlock()
	return calls
}

func (mock *supplierRegistryMock) Save() error {
	if mock.SaveFunc == nil {
		panic("supplierRegistryMock.SaveFunc: method is nil but supplierRegistry.Save was just called")
	}
	mock.lockSave.Lock()
	mock.calls.Save = append(mock.calls.Save, struct{}{})
	mock.lockSave.Unlock()
	return mock.SaveFunc()
}

func (mock *supplierRegistryMock) SaveCalls() []struct{} {
	mock.lockSave.RLock()
	calls := mock.calls.Save
	mock.lockSave.RUnlock()
	return calls
}
