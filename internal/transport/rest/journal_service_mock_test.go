package rest

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/heartmarshall/learninglog-backend/internal/domain"
	"github.com/heartmarshall/learninglog-backend/internal/service/journal"
)

var _ journalService = &journalServiceMock{}

type journalServiceMock struct {
	CreateEntryFunc      func(ctx context.Context, topicID uuid.UUID, input journal.EntryInput) (*domain.Entry, error)
	CreateTopicFunc      func(ctx context.Context, input journal.TopicInput) (*domain.Topic, error)
	GetEntryFunc         func(ctx context.Context, entryID uuid.UUID) (*domain.EntryWithTopic, error)
	GetTopicFunc         func(ctx context.Context, topicID uuid.UUID) (*domain.TopicDetail, error)
	GetTopicForEntryFunc func(ctx context.Context, topicID uuid.UUID) (*domain.Topic, error)
	ListTopicsFunc       func(ctx context.Context) ([]domain.Topic, error)
	UpdateEntryFunc      func(ctx context.Context, entryID uuid.UUID, input journal.EntryInput) (*domain.EntryWithTopic, error)

	calls struct {
		CreateEntry []struct {
			Ctx     context.Context
			TopicID uuid.UUID
			Input   journal.EntryInput
		}
		CreateTopic []struct {
			Ctx   context.Context
			Input journal.TopicInput
		}
		GetEntry []struct {
			Ctx     context.Context
			EntryID uuid.UUID
		}
		GetTopic []struct {
			Ctx     context.Context
			TopicID uuid.UUID
		}
		GetTopicForEntry []struct {
			Ctx     context.Context
			TopicID uuid.UUID
		}
		ListTopics []struct {
			Ctx context.Context
		}
		UpdateEntry []struct {
			Ctx     context.Context
			EntryID uuid.UUID
			Input   journal.EntryInput
		}
	}
	lockCreateEntry      sync.RWMutex
	lockCreateTopic      sync.RWMutex
	lockGetEntry         sync.RWMutex
	lockGetTopic         sync.RWMutex
	lockGetTopicForEntry sync.RWMutex
	lockListTopics       sync.RWMutex
	lockUpdateEntry      sync.RWMutex
}

func (mock *journalServiceMock) CreateEntry(ctx context.Context, topicID uuid.UUID, input journal.EntryInput) (*domain.Entry, error) {
	if mock.CreateEntryFunc == nil {
		panic("journalServiceMock.CreateEntryFunc: method is nil but journalService.CreateEntry was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		TopicID uuid.UUID
		Input   journal.EntryInput
	}{Ctx: ctx, TopicID: topicID, Input: input}
	mock.lockCreateEntry.Lock()
	mock.calls.CreateEntry = append(mock.calls.CreateEntry, callInfo)
	mock.lockCreateEntry.Unlock()
	return mock.CreateEntryFunc(ctx, topicID, input)
}

func (mock *journalServiceMock) CreateEntryCalls() []struct {
	Ctx     context.Context
	TopicID uuid.UUID
	Input   journal.EntryInput
} {
	mock.lockCreateEntry.RLock()
	calls := mock.calls.CreateEntry
	mock.lockCreateEntry.RUnlock()
	return calls
}

func (mock *journalServiceMock) CreateTopic(ctx context.Context, input journal.TopicInput) (*domain.Topic, error) {
	if mock.CreateTopicFunc == nil {
		panic("journalServiceMock.CreateTopicFunc: method is nil but journalService.CreateTopic was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input journal.TopicInput
	}{Ctx: ctx, Input: input}
	mock.lockCreateTopic.Lock()
	mock.calls.CreateTopic = append(mock.calls.CreateTopic, callInfo)
	mock.lockCreateTopic.Unlock()
	return mock.CreateTopicFunc(ctx, input)
}

func (mock *journalServiceMock) CreateTopicCalls() []struct {
	Ctx   context.Context
	Input journal.TopicInput
} {
	mock.lockCreateTopic.RLock()
	calls := mock.calls.CreateTopic
	mock.lockCreateTopic.RUnlock()
	return calls
}

func (mock *journalServiceMock) GetEntry(ctx context.Context, entryID uuid.UUID) (*domain.EntryWithTopic, error) {
	if mock.GetEntryFunc == nil {
		panic("journalServiceMock.GetEntryFunc: method is nil but journalService.GetEntry was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		EntryID uuid.UUID
	}{Ctx: ctx, EntryID: entryID}
	mock.lockGetEntry.Lock()
	mock.calls.GetEntry = append(mock.calls.GetEntry, callInfo)
	mock.lockGetEntry.Unlock()
	return mock.GetEntryFunc(ctx, entryID)
}

func (mock *journalServiceMock) GetEntryCalls() []struct {
	Ctx     context.Context
	EntryID uuid.UUID
} {
	mock.lockGetEntry.RLock()
	calls := mock.calls.GetEntry
	mock.lockGetEntry.RUnlock()
	return calls
}

func (mock *journalServiceMock) GetTopic(ctx context.Context, topicID uuid.UUID) (*domain.TopicDetail, error) {
	if mock.GetTopicFunc == nil {
		panic("journalServiceMock.GetTopicFunc: method is nil but journalService.GetTopic was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		TopicID uuid.UUID
	}{Ctx: ctx, TopicID: topicID}
	mock.lockGetTopic.Lock()
	mock.calls.GetTopic = append(mock.calls.GetTopic, callInfo)
	mock.lockGetTopic.Unlock()
	return mock.GetTopicFunc(ctx, topicID)
}

func (mock *journalServiceMock) GetTopicCalls() []struct {
	Ctx     context.Context
	TopicID uuid.UUID
} {
	mock.lockGetTopic.RLock()
	calls := mock.calls.GetTopic
	mock.lockGetTopic.RUnlock()
	return calls
}

func (mock *journalServiceMock) GetTopicForEntry(ctx context.Context, topicID uuid.UUID) (*domain.Topic, error) {
	if mock.GetTopicForEntryFunc == nil {
		panic("journalServiceMock.GetTopicForEntryFunc: method is nil but journalService.GetTopicForEntry was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		TopicID uuid.UUID
	}{Ctx: ctx, TopicID: topicID}
	mock.lockGetTopicForEntry.Lock()
	mock.calls.GetTopicForEntry = append(mock.calls.GetTopicForEntry, callInfo)
	mock.lockGetTopicForEntry.Unlock()
	return mock.GetTopicForEntryFunc(ctx, topicID)
}

func (mock *journalServiceMock) GetTopicForEntryCalls() []struct {
	Ctx     context.Context
	TopicID uuid.UUID
} {
	mock.lockGetTopicForEntry.RLock()
	calls := mock.calls.GetTopicForEntry
	mock.lockGetTopicForEntry.RUnlock()
	return calls
}

func (mock *journalServiceMock) ListTopics(ctx context.Context) ([]domain.Topic, error) {
	if mock.ListTopicsFunc == nil {
		panic("journalServiceMock.ListTopicsFunc: method is nil but journalService.ListTopics was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockListTopics.Lock()
	mock.calls.ListTopics = append(mock.calls.ListTopics, callInfo)
	mock.lockListTopics.Unlock()
	return mock.ListTopicsFunc(ctx)
}

func (mock *journalServiceMock) ListTopicsCalls() []struct {
	Ctx context.Context
} {
	mock.lockListTopics.RLock()
	calls := mock.calls.ListTopics
	mock.lockListTopics.RUnlock()
	return calls
}

func (mock *journalServiceMock) UpdateEntry(ctx context.Context, entryID uuid.UUID, input journal.EntryInput) (*domain.EntryWithTopic, error) {
	if mock.UpdateEntryFunc == nil {
		panic("journalServiceMock.UpdateEntryFunc: method is nil but journalService.UpdateEntry was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		EntryID uuid.UUID
		Input   journal.EntryInput
	}{Ctx: ctx, EntryID: entryID, Input: input}
	mock.lockUpdateEntry.Lock()
	mock.calls.UpdateEntry = append(mock.calls.UpdateEntry, callInfo)
	mock.lockUpdateEntry.Unlock()
	return mock.UpdateEntryFunc(ctx, entryID, input)
}

func (mock *journalServiceMock) UpdateEntryCalls() []struct {
	Ctx     context.Context
	EntryID uuid.UUID
	Input   journal.EntryInput
} {
	mock.lockUpdateEntry.RLock()
	calls := mock.calls.UpdateEntry
	mock.lockUpdateEntry.RUnlock()
	return calls
}
