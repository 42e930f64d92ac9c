package auth

import (
	"sync"

	"github.com/heartmarshall/stockbook/internal/domain"
)

var _ userRepo = &userRepoMock{}

type userRepoMock struct {
	CreateFunc          func(u domain.User) (domain.User, error)
	GetByUsernameFunc   func(name string) (domain.User, error)
	SetPasswordHashFunc func(name, hash string) error
	DeleteFunc          func(name string) error
	ListFunc            func() []domain.User
	CountByRoleFunc     func(role domain.Role) int
	LenFunc             func() int
	SaveFunc            func() error

	calls struct {
		Create []struct {
			U domain.User
		}
		GetByUsername []struct {
			Name string
		}
		SetPasswordHash []struct {
			Name string
			Hash string
		}
		Delete []struct {
			Name string
		}
		List        []struct{}
		CountByRole []struct {
			Role domain.Role
		}
		Len  []struct{}
		Save []struct{}
	}
	lockCreate          sync.RWMutex
	lockGetByUsername   sync.RWMutex
	lockSetPasswordHash sync.RWMutex
	lockDelete          sync.RWMutex
	lockList            sync.RWMutex
	lockCountByRole     sync.RWMutex
	lockLen             sync.RWMutex
	lockSave            sync.RWMutex
}

func (mock *userRepoMock) Create(u domain.User) (domain.User, error) {
	if mock.CreateFunc == nil {
		panic("userRepoMock.CreateFunc: method is nil but userRepo.Create was just called")
	}
	callInfo := struct {
		U domain.User
	}{U: u}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(u)
}

func (mock *userRepoMock) CreateCalls() []struct {
	U domain.User
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *userRepoMock) GetByUsername(name string) (domain.User, error) {
	if mock.GetByUsernameFunc == nil {
		panic("userRepoMock.GetByUsernameFunc: method is nil but userRepo.GetByUsername was just called")
	}
	callInfo := struct{ Name string }{Name: name}
	mock.lockGetByUsername.Lock()
	mock.calls.GetByUsername = append(mock.calls.GetByUsername, callInfo)
	mock.lockGetByUsername.Unlock()
	return mock.GetByUsernameFunc(name)
}

func (mock *userRepoMock) GetByUsernameCalls() []struct {
	Name string
} {
	mock.lockGetByUsername.RLock()
	calls := mock.calls.GetByUsername
	mock.lockGetByUsername.RUnlock()
	return calls
}

func (mock *userRepoMock) SetPasswordHash(name, hash string) error {
	if mock.SetPasswordHashFunc == nil {
		panic("userRepoMock.SetPasswordHashFunc: method is nil but userRepo.SetPasswordHash was just called")
	}
	callInfo := struct {
		Name string
		Hash string
	}{Name: name, Hash: hash}
	mock.lockSetPasswordHash.Lock()
	mock.calls.SetPasswordHash = append(mock.calls.SetPasswordHash, callInfo)
	mock.lockSetPasswordHash.Unlock()
	return mock.SetPasswordHashFunc(name, hash)
}

func (mock *userRepoMock) SetPasswordHashCalls() []struct {
	Name string
	Hash string
} {
	mock.lockSetPasswordHash.RLock()
	calls := mock.calls.SetPasswordHash
	mock.lockSetPasswordHash.RUnlock()
	return calls
}

func (mock *userRepoMock) Delete(name string) error {
	if mock.DeleteFunc == nil {
		panic("userRepoMock.DeleteFunc: method is nil but userRepo.Delete was just called")
	}
	callInfo := struct{ Name string }{Name: name}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(name)
}

func (mock *userRepoMock) DeleteCalls() []struct {
	Name string
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

func (mock *userRepoMock) List() []domain.User {
	if mock.ListFunc == nil {
		panic("userRepoMock.ListFunc: method is nil but userRepo.List was just called")
	}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, struct{}{})
	mock.lockList.Unlock()
	return mock.ListFunc()
}

func (mock *userRepoMock) ListCalls() []struct{} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *userRepoMock) CountByRole(role domain.Role) int {
	if mock.CountByRoleFunc == nil {
		panic("userRepoMock.CountByRoleFunc: method is nil but userRepo.CountByRole was just called")
	}
	callInfo := struct{ Role domain.Role }{Role: role}
	mock.lockCountByRole.Lock()
	mock.calls.CountByRole = append(mock.calls.CountByRole, callInfo)
	mock.lockCountByRole.Unlock()
	return mock.CountByRoleFunc(role)
}

func (mock *userRepoMock) CountByRoleCalls() []struct {
	Role domain.Role
} {
	mock.lockCountByRole.RLock()
	calls := mock.calls.CountByRole
	mock.lockCountByRole.RUnlock()
	return calls
}

func (mock *userRepoMock) Len() int {
	if mock.LenFunc == nil {
		panic("userRepoMock.LenFunc: method is nil but userRepo.Len was just called")
	}
	mock.lockLen.Lock()
	mock.calls.Len = append(mock.calls.Len, struct{}{})
	mock.lockLen.Unlock()
	return mock.LenFunc()
}

func (mock *userRepoMock) LenCalls() []struct{} {
	mock.lockLen.RLock()
	calls := mock.calls.Len
	mock.lockLen.RUnlock()
	return calls
}

func (mock *userRepoMock) Save() error {
	if mock.SaveFunc == nil {
		panic("userRepoMock.SaveFunc: method is nil but userRepo.Save was just called")
	}
	mock.lockSave.Lock()
	mock.calls.Save = append(mock.calls.Save, struct{}{})
	mock.lockSave.Unlock()
	return mock.SaveFunc()
}

func (mock *userRepoMock) SaveCalls() []struct{} {
	mock.lockSave.RLock()
	calls := mock.calls.Save
	mock.lockSave.RUnlock()
	return calls
}
