package stats

import (
	"iter"
	"sync"

	"github.com/heartmarshall/stockbook/internal/domain"
)

var _ invoiceSource = &invoiceSourceMock{}

type invoiceSourceMock struct {
	AllFunc func() iter.Seq[domain.Invoice]
	LenFunc func() int

	calls struct {
		All []struct{}
		Len []struct{}
	}
	lockAll sync.RWMutex
	lockLen sync.RWMutex
}

func (mock *invoiceSourceMock) All() iter.Seq[domain.Invoice] {
	if mock.AllFunc == nil {
		panic("invoiceSourceMock.AllFunc: method is nil but invoiceSource.All was just called")
	}
	mock.lockAll.Lock()
	mock.calls.All = append(mock.calls.All, struct{}{})
	mock.lockAll.Unlock()
	return mock.AllFunc()
}

func (mock *invoiceSourceMock) AllCalls() []struct{} {
	mock.lockAll.RLock()
	calls := mock.calls.All
	mock.lockAll.RUnlock()
	return calls
}

func (mock *invoiceSourceMock) Len() int {
	if mock.LenFunc == nil {
		panic("invoiceSourceMock.LenFunc: method is nil but invoiceSource.Len was just called")
	}
	mock.lockLen.Lock()
	mock.calls.Len = append(mock.calls.Len, struct{}{})
	mock.lockLen.Unlock()
	return mock.LenFunc()
}

func (mock *invoiceSourceMock) LenCalls() []struct{} {
	mock.lockLen.RLock()
	calls := mock.calls.Len
	mock.lockLen.RUnlock()
	return calls
}
