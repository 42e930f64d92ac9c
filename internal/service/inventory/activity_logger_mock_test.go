package inventory

import (
	"sync"

	"github.com/heartmarshall/stockbook/internal/domain"
)

var _ activityLogger = &activityLoggerMock{}

type activityLoggerMock struct {
	LogFunc func(rec domain.ActivityRecord) error

	calls struct {
		Log []struct {
			Rec domain.ActivityRecord
		}
	}
	lockLog sync.RWMutex
}

func (mock *activityLoggerMock) Log(rec domain.ActivityRecord) error {
	if mock.LogFunc == nil {
		panic("activityLoggerMock.LogFunc: method is nil but activityLogger.Log was just called")
	}
	callInfo := struct {
		Rec domain.ActivityRecord
	}{Rec: rec}
	mock.lockLog.Lock()
	mock.calls.Log = append(mock.calls.Log, callInfo)
	mock.lockLog.Unlock()
	return mock.LogFunc(rec)
}

func (mock *activityLoggerMock) LogCalls() []struct {
	Rec domain.ActivityRecord
} {
	mock.lockLog.RLock()
	calls := mock.calls.Log
	mock.lockLog.RUnlock()
	return calls
}
