package middleware

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

var _ sessionResolver = &sessionResolverMock{}

type sessionResolverMock struct {
	ResolveSessionFunc func(ctx context.Context, rawToken string) (uuid.UUID, error)

	calls struct {
		ResolveSession []struct {
			Ctx      context.Context
			RawToken string
		}
	}
	lockResolveSession sync.RWMutex
}

func (mock *sessionResolverMock) ResolveSession(ctx context.Context, rawToken string) (uuid.UUID, error) {
	if mock.ResolveSessionFunc == nil {
		panic("sessionResolverMock.ResolveSessionFunc: method is nil but sessionResolver.ResolveSession was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		RawToken string
	}{Ctx: ctx, RawToken: rawToken}
	mock.lockResolveSession.Lock()
	mock.calls.ResolveSession = append(mock.calls.ResolveSession, callInfo)
	mock.lockResolveSession.Unlock()
	return mock.ResolveSessionFunc(ctx, rawToken)
}

func (mock *sessionResolverMock) ResolveSessionCalls() []struct {
	Ctx      context.Context
	RawToken string
} {
	mock.lockResolveSession.RLock()
	calls := mock.calls.ResolveSession
	mock.lockResolveSession.RUnlock()
	return calls
}
