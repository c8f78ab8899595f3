package services

import (
	"context"
	"sync"

	"github.com/maharjanPranish/NepXplore/internal/mylogger"
	"github.com/maharjanPranish/NepXplore/internal/trip-service/core/domain/model"
	"github.com/maharjanPranish/NepXplore/internal/trip-service/core/myerrors"

	messagebrokerdto "github.com/maharjanPranish/NepXplore/internal/trip-service/core/domain/message_broker_dto"

	amqp "github.com/rabbitmq/amqp091-go"
)

type nopLogger struct{}

func (nopLogger) Debug(msg string, args ...any)            {}
func (nopLogger) Info(msg string, args ...any)             {}
func (nopLogger) Warn(msg string, args ...any)             {}
func (nopLogger) Error(msg string, err error, args ...any) {}
func (nopLogger) Action(action string) mylogger.Logger     { return nopLogger{} }
func (nopLogger) With(args ...any) mylogger.Logger         { return nopLogger{} }
func (nopLogger) WithGroup(name string) mylogger.Logger    { return nopLogger{} }

// fakeRequestsRepo keeps requests in memory and mimics the conditional
// updates of the postgres adapter, including their error diagnosis.
type fakeRequestsRepo struct {
	mu            sync.Mutex
	requests      map[string]model.GuideRequest
	notifications []model.Notification
}

func newFakeRequestsRepo() *fakeRequestsRepo {
	return &fakeRequestsRepo{requests: make(map[string]model.GuideRequest)}
}

func (f *fakeRequestsRepo) Create(ctx context.Context, m model.GuideRequest) (model.GuideRequest, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.requests[m.ID] = m
	return m, nil
}

func (f *fakeRequestsRepo) GetByID(ctx context.Context, requestID string) (model.GuideRequest, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	m, ok := f.requests[requestID]
	if !ok {
		return model.GuideRequest{}, myerrors.ErrNotFound
	}
	return m, nil
}

func (f *fakeRequestsRepo) ListAll(ctx context.Context) ([]model.GuideRequest, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	res := make([]model.GuideRequest, 0, len(f.requests))
	for _, m := range f.requests {
		res = append(res, m)
	}
	return res, nil
}

func (f *fakeRequestsRepo) ListByTourist(ctx context.Context, touristID string) ([]model.GuideRequest, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	res := []model.GuideRequest{}
	for _, m := range f.requests {
		if m.TouristID == touristID {
			res = append(res, m)
		}
	}
	return res, nil
}

func (f *fakeRequestsRepo) ListByGuide(ctx context.Context, guideID string) ([]model.GuideRequest, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	res := []model.GuideRequest{}
	for _, m := range f.requests {
		if m.AssignedGuide == guideID {
			res = append(res, m)
		}
	}
	return res, nil
}

func (f *fakeRequestsRepo) AssignGuide(ctx context.Context, requestID, guideID string, n model.Notification) (model.GuideRequest, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	m, ok := f.requests[requestID]
	if !ok {
		return model.GuideRequest{}, myerrors.ErrNotFound
	}
	if m.Status != model.StatusPending {
		return model.GuideRequest{}, myerrors.ErrInvalidTransition
	}

	m.Status = model.StatusAssigned
	m.AssignedGuide = guideID
	m.AssignedAt = n.CreatedAt
	f.requests[requestID] = m
	f.notifications = append(f.notifications, n)
	return m, nil
}

func (f *fakeRequestsRepo) AdvanceStatus(ctx context.Context, requestID string, from, to model.Status) (model.GuideRequest, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	m, ok := f.requests[requestID]
	if !ok {
		return model.GuideRequest{}, myerrors.ErrNotFound
	}
	if m.Status != from {
		return model.GuideRequest{}, myerrors.ErrInvalidTransition
	}

	m.Status = to
	f.requests[requestID] = m
	return m, nil
}

type fakeGuidesRepo struct {
	mu     sync.Mutex
	guides map[string]model.Guide
}

func newFakeGuidesRepo(guides ...model.Guide) *fakeGuidesRepo {
	f := &fakeGuidesRepo{guides: make(map[string]model.Guide)}
	for _, g := range guides {
		f.guides[g.ID] = g
	}
	return f
}

func (f *fakeGuidesRepo) List(ctx context.Context) ([]model.Guide, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	res := make([]model.Guide, 0, len(f.guides))
	for _, g := range f.guides {
		res = append(res, g)
	}
	return res, nil
}

func (f *fakeGuidesRepo) GetByID(ctx context.Context, guideID string) (model.Guide, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	g, ok := f.guides[guideID]
	if !ok {
		return model.Guide{}, myerrors.ErrNotFound
	}
	return g, nil
}

func (f *fakeGuidesRepo) GetByUserID(ctx context.Context, userID string) (model.Guide, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, g := range f.guides {
		if g.UserId == userID {
			return g, nil
		}
	}
	return model.Guide{}, myerrors.ErrNotFound
}

func (f *fakeGuidesRepo) Create(ctx context.Context, m model.Guide) (model.Guide, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.guides[m.ID] = m
	return m, nil
}

func (f *fakeGuidesRepo) Update(ctx context.Context, m model.Guide) (model.Guide, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.guides[m.ID]; !ok {
		return model.Guide{}, myerrors.ErrNotFound
	}
	f.guides[m.ID] = m
	return m, nil
}

type fakeBroker struct {
	mu     sync.Mutex
	pushed []messagebrokerdto.GuideAssigned
}

func (f *fakeBroker) Close() error { return nil }

func (f *fakeBroker) PushAssignment(ctx context.Context, message messagebrokerdto.GuideAssigned) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.pushed = append(f.pushed, message)
	return nil
}

func (f *fakeBroker) ConsumeAssignments(ctx context.Context, queue, consumer string) (<-chan amqp.Delivery, error) {
	ch := make(chan amqp.Delivery)
	close(ch)
	return ch, nil
}
