package rest

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/heartmarshall/learninglog-backend/internal/domain"
	"github.com/heartmarshall/learninglog-backend/internal/service/auth"
)

var _ accountService = &accountServiceMock{}

type accountServiceMock struct {
	AuthenticateFunc func(ctx context.Context, input auth.CredentialsInput) (*domain.User, error)
	EndSessionFunc   func(ctx context.Context, rawToken string) error
	RegisterFunc     func(ctx context.Context, input auth.RegisterInput) (*domain.User, error)
	StartSessionFunc func(ctx context.Context, userID uuid.UUID) (*auth.SessionResult, error)

	calls struct {
		Authenticate []struct {
			Ctx   context.Context
			Input auth.CredentialsInput
		}
		EndSession []struct {
			Ctx      context.Context
			RawToken string
		}
		Register []struct {
			Ctx   context.Context
			Input auth.RegisterInput
		}
		StartSession []struct {
			Ctx    context.Context
			UserID uuid.UUID
		}
	}
	lockAuthenticate sync.RWMutex
	lockEndSession   sync.RWMutex
	lockRegister     sync.RWMutex
	lockStartSession sync.RWMutex
}

func (mock *accountServiceMock) Authenticate(ctx context.Context, input auth.CredentialsInput) (*domain.User, error) {
	if mock.AuthenticateFunc == nil {
		panic("accountServiceMock.AuthenticateFunc: method is nil but accountService.Authenticate was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input auth.CredentialsInput
	}{Ctx: ctx, Input: input}
	mock.lockAuthenticate.Lock()
	mock.calls.Authenticate = append(mock.calls.Authenticate, callInfo)
	mock.lockAuthenticate.Unlock()
	return mock.AuthenticateFunc(ctx, input)
}

func (mock *accountServiceMock) AuthenticateCalls() []struct {
	Ctx   context.Context
	Input auth.CredentialsInput
} {
	mock.lockAuthenticate.RLock()
	calls := mock.calls.Authenticate
	mock.lockAuthenticate.RUnlock()
	return calls
}

func (mock *accountServiceMock) EndSession(ctx context.Context, rawToken string) error {
	if mock.EndSessionFunc == nil {
		panic("accountServiceMock.EndSessionFunc: method is nil but accountService.EndSession was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		RawToken string
	}{Ctx: ctx, RawToken: rawToken}
	mock.lockEndSession.Lock()
	mock.calls.EndSession = append(mock.calls.EndSession, callInfo)
	mock.lockEndSession.Unlock()
	return mock.EndSessionFunc(ctx, rawToken)
}

func (mock *accountServiceMock) EndSessionCalls() []struct {
	Ctx      context.Context
	RawToken string
} {
	mock.lockEndSession.RLock()
	calls := mock.calls.EndSession
	mock.lockEndSession.RUnlock()
	return calls
}

func (mock *accountServiceMock) Register(ctx context.Context, input auth.RegisterInput) (*domain.User, error) {
	if mock.RegisterFunc == nil {
		panic("accountServiceMock.RegisterFunc: method is nil but accountService.Register was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input auth.RegisterInput
	}{Ctx: ctx, Input: input}
	mock.lockRegister.Lock()
	mock.calls.Register = append(mock.calls.Register, callInfo)
	mock.lockRegister.Unlock()
	return mock.RegisterFunc(ctx, input)
}

func (mock *accountServiceMock) RegisterCalls() []struct {
	Ctx   context.Context
	Input auth.RegisterInput
} {
	mock.lockRegister.RLock()
	calls := mock.calls.Register
	mock.lockRegister.RUnlock()
	return calls
}

func (mock *accountServiceMock) StartSession(ctx context.Context, userID uuid.UUID) (*auth.SessionResult, error) {
	if mock.StartSessionFunc == nil {
		panic("accountServiceMock.StartSessionFunc: method is nil but accountService.StartSession was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
	}{Ctx: ctx, UserID: userID}
	mock.lockStartSession.Lock()
	mock.calls.StartSession = append(mock.calls.StartSession, callInfo)
	mock.lockStartSession.Unlock()
	return mock.StartSessionFunc(ctx, userID)
}

func (mock *accountServiceMock) StartSessionCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
} {
	mock.lockStartSession.RLock()
	calls := mock.calls.StartSession
	mock.lockStartSession.RUnlock()
	return calls
}
