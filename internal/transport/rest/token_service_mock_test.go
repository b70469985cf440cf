package rest

import (
	"context"
	"sync"

	"github.com/heartmarshall/learninglog-backend/internal/service/auth"
)

var _ tokenService = &tokenServiceMock{}

type tokenServiceMock struct {
	LoginFunc   func(ctx context.Context, input auth.CredentialsInput) (*auth.AuthResult, error)
	LogoutFunc  func(ctx context.Context) error
	RefreshFunc func(ctx context.Context, input auth.RefreshInput) (*auth.AuthResult, error)

	calls struct {
		Login []struct {
			Ctx   context.Context
			Input auth.CredentialsInput
		}
		Logout []struct {
			Ctx context.Context
		}
		Refresh []struct {
			Ctx   context.Context
			Input auth.RefreshInput
		}
	}
	lockLogin   sync.RWMutex
	lockLogout  sync.RWMutex
	lockRefresh sync.RWMutex
}

func (mock *tokenServiceMock) Login(ctx context.Context, input auth.CredentialsInput) (*auth.AuthResult, error) {
	if mock.LoginFunc == nil {
		panic("tokenServiceMock.LoginFunc: method is nil but tokenService.Login was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input auth.CredentialsInput
	}{Ctx: ctx, Input: input}
	mock.lockLogin.Lock()
	mock.calls.Login = append(mock.calls.Login, callInfo)
	mock.lockLogin.Unlock()
	return mock.LoginFunc(ctx, input)
}

func (mock *tokenServiceMock) LoginCalls() []struct {
	Ctx   context.Context
	Input auth.CredentialsInput
} {
	mock.lockLogin.RLock()
	calls := mock.calls.Login
	mock.lockLogin.RUnlock()
	return calls
}

func (mock *tokenServiceMock) Logout(ctx context.Context) error {
	if mock.LogoutFunc == nil {
		panic("tokenServiceMock.LogoutFunc: method is nil but tokenService.Logout was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockLogout.Lock()
	mock.calls.Logout = append(mock.calls.Logout, callInfo)
	mock.lockLogout.Unlock()
	return mock.LogoutFunc(ctx)
}

func (mock *tokenServiceMock) LogoutCalls() []struct {
	Ctx context.Context
} {
	mock.lockLogout.RLock()
	calls := mock.calls.Logout
	mock.lockLogout.RUnlock()
	return calls
}

func (mock *tokenServiceMock) Refresh(ctx context.Context, input auth.RefreshInput) (*auth.AuthResult, error) {
	if mock.RefreshFunc == nil {
		panic("tokenServiceMock.RefreshFunc: method is nil but tokenService.Refresh was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input auth.RefreshInput
	}{Ctx: ctx, Input: input}
	mock.lockRefresh.Lock()
	mock.calls.Refresh = append(mock.calls.Refresh, callInfo)
	mock.lockRefresh.Unlock()
	return mock.RefreshFunc(ctx, input)
}

func (mock *tokenServiceMock) RefreshCalls() []struct {
	Ctx   context.Context
	Input auth.RefreshInput
} {
	mock.lockRefresh.RLock()
	calls := mock.calls.Refresh
	mock.lockRefresh.RUnlock()
	return calls
}
