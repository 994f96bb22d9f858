package commands_test

import (
	"context"
	"time"

	"chapatis/internal/core/application/usecases/commands"
	"chapatis/internal/core/domain/model/kernel"
	"chapatis/internal/core/domain/model/order"
	"chapatis/internal/core/domain/model/session"
	"chapatis/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockSessionRepository struct{ mock.Mock }

func (m *MockSessionRepository) Add(ctx context.Context, s *session.Session) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockSessionRepository) Update(ctx context.Context, s *session.Session) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockSessionRepository) Get(ctx context.Context, id kernel.UUID) (*session.Session, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*session.Session), args.Error(1)
}

func (m *MockSessionRepository) DeleteIdleSince(ctx context.Context, cutoff time.Time) (int, error) {
	args := m.Called(ctx, cutoff)
	return args.Int(0), args.Error(1)
}

type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) SessionRepository() ports.SessionRepository {
	args := m.Called()
	return args.Get(0).(ports.SessionRepository)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

type MockOrderNotifier struct{ mock.Mock }

func (m *MockOrderNotifier) OrderConfirmed(ctx context.Context, sessionID kernel.UUID, o *order.Order) error {
	args := m.Called(ctx, sessionID, o)
	return args.Error(0)
}

var now = time.Date(2026, time.November, 16, 12, 0, 0, 0, time.UTC)

func fixedClock() kernel.Clock {
	return kernel.ClockFunc(func() time.Time { return now })
}

// expectLoadAndUpdate wires a unit of work that loads s and expects it to be
// updated and committed.
func expectLoadAndUpdate(s *session.Session) (*MockUoWFactory, *MockUoW, *MockSessionRepository) {
	repo := new(MockSessionRepository)
	uow := new(MockUoW)
	factory := new(MockUoWFactory)

	factory.On("Create").Return(uow).Once()
	mock.InOrder(
		uow.On("Begin", mock.Anything).Return(nil).Once(),
		uow.On("SessionRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, s.ID()).Return(s, nil).Once(),
		repo.On("Update", mock.Anything, s).Return(nil).Once(),
		uow.On("Commit", mock.Anything).Return(nil).Once(),
		uow.On("Rollback", mock.Anything).Return(nil).Once(),
	)

	return factory, uow, repo
}

// expectLoadOnly wires a unit of work that loads s and is rolled back.
func expectLoadOnly(s *session.Session) (*MockUoWFactory, *MockUoW, *MockSessionRepository) {
	repo := new(MockSessionRepository)
	uow := new(MockUoW)
	factory := new(MockUoWFactory)

	factory.On("Create").Return(uow).Once()
	mock.InOrder(
		uow.On("Begin", mock.Anything).Return(nil).Once(),
		uow.On("SessionRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, s.ID()).Return(s, nil).Once(),
		uow.On("Rollback", mock.Anything).Return(nil).Once(),
	)

	return factory, uow, repo
}

func newSession() *session.Session {
	s, err := session.NewSession(kernel.NewUUID(), order.DefaultCatalog().Limits(), now.Add(-time.Hour))
	if err != nil {
		panic(err)
	}
	return s
}
