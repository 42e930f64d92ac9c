package invoicing

import (
	"sync"

	"github.com/heartmarshall/stockbook/internal/domain"
)

var _ historyRepo = &historyRepoMock{}

type historyRepoMock struct {
	NextNumberFunc func() int64
	AppendFunc     func(inv domain.Invoice) error
	GetFunc        func(number int64) (domain.Invoice, error)
	ListFunc       func(filter domain.InvoiceFilter) []domain.Invoice
	SaveFunc       func() error

	calls struct {
		NextNumber []struct{}
		Append     []struct {
			Inv domain.Invoice
		}
		Get []struct {
			Number int64
		}
		List []struct {
			Filter domain.InvoiceFilter
		}
		Save []struct{}
	}
	lockNextNumber sync.RWMutex
	lockAppend     sync.RWMutex
	lockGet        sync.RWMutex
	lockList       sync.RWMutex
	lockSave       sync.RWMutex
}

func (mock *historyRepoMock) NextNumber() int64 {
	if mock.NextNumberFunc == nil {
		panic("historyRepoMock.NextNumberFunc: method is nil but historyRepo.NextNumber was just called")
	}
	mock.lockNextNumber.Lock()
	mock.calls.NextNumber = append(mock.calls.NextNumber, struct{}{})
	mock.lockNextNumber.Unlock()
	return mock.NextNumberFunc()
}

func (mock *historyRepoMock) NextNumberCalls() []struct{} {
	mock.lockNextNumber.RLock()
	calls := mock.calls.NextNumber
	mock.lockNextNumber.RUnlock()
	return calls
}

func (mock *historyRepoMock) Append(inv domain.Invoice) error {
	if mock.AppendFunc == nil {
		panic("historyRepoMock.AppendFunc: method is nil but historyRepo.Append was just called")
	}
	callInfo := struct {
		Inv domain.Invoice
	}{Inv: inv}
	mock.lockAppend.Lock()
	mock.calls.Append = append(mock.calls.Append, callInfo)
	mock.lockAppend.Unlock()
	return mock.AppendFunc(inv)
}

func (mock *historyRepoMock) AppendCalls() []struct {
	Inv domain.Invoice
} {
	mock.lockAppend.RLock()
	calls := mock.calls.Append
	mock.lockAppend.RUnlock()
	return calls
}

func (mock *historyRepoMock) Get(number int64) (domain.Invoice, error) {
	if mock.GetFunc == nil {
		panic("historyRepoMock.GetFunc: method is nil but historyRepo.Get was just called")
	}
	callInfo := struct{ Number int64 }{Number: number}
	mock.lockGet.Lock()
	mock.calls.Get = append(mock.calls.Get, callInfo)
	mock.lockGet.Unlock()
	return mock.GetFunc(number)
}

func (mock *historyRepoMock) GetCalls() []struct {
	Number int64
} {
	mock.lockGet.RLock()
	calls := mock.calls.Get
	mock.lockGet.RUnlock()
	return calls
}

func (mock *historyRepoMock) List(filter domain.InvoiceFilter) []domain.Invoice {
	if mock.ListFunc == nil {
		panic("historyRepoMock.ListFunc: method is nil but historyRepo.List was just called")
	}
	callInfo := struct {
		Filter domain.InvoiceFilter
	}{Filter: filter}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(filter)
}

func (mock *historyRepoMock) ListCalls() []struct {
	Filter domain.InvoiceFilter
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *historyRepoMock) Save() error {
	if mock.SaveFunc == nil {
		panic("historyRepoMock.SaveFunc: method is nil but historyRepo.Save was just called")
	}
	mock.lockSave.Lock()
	mock.calls.Save = append(mock.calls.Save, struct{}{})
	mock.lockSave.Unlock()
	return mock.SaveFunc()
}

func (mock *historyRepoMock) SaveCalls() []struct{} {
	mock.lockSave.RLock()
	calls := mock.calls.Save
	mock.lockSave.RUnlock()
	return calls
}
