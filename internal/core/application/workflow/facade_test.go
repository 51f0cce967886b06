package workflow_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"laundry/internal/adapters/out/authz"
	"laundry/internal/adapters/out/locking"
	"laundry/internal/adapters/out/postgres"
	"laundry/internal/adapters/out/postgres/orderrepo"
	"laundry/internal/adapters/out/postgres/testdb"
	"laundry/internal/core/application/usecases/commands"
	"laundry/internal/core/application/usecases/queries"
	"laundry/internal/core/application/workflow"
	"laundry/internal/core/domain/model/access"
	"laundry/internal/core/domain/model/branch"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/logistics"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/core/domain/model/staff"
	"laundry/internal/core/domain/services"
	"laundry/internal/core/ports"
	"laundry/internal/pkg/errs"
	"laundry/internal/pkg/metrics"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

// Monday 2026-10-19, 10:00 in Asia/Kolkata.
var now = time.Date(2026, 10, 19, 4, 30, 0, 0, time.UTC)

type MockNotifier struct{ mock.Mock }

func (m *MockNotifier) NotifyStatusChanged(ctx context.Context, n ports.StatusNotification) error {
	return m.Called(ctx, n).Error(0)
}

type RecordingPublisher struct {
	mu     sync.Mutex
	events []ports.OrderChanged
}

func (p *RecordingPublisher) PublishOrderChanged(_ context.Context, e ports.OrderChanged) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, e)
	return nil
}

func (p *RecordingPublisher) Kinds() []ports.ChangeKind {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]ports.ChangeKind, 0, len(p.events))
	for _, e := range p.events {
		out = append(out, e.Kind)
	}
	return out
}

// FacadeTestSuite drives the façade end to end over SQLite: casbin rules,
// the in-process order lock and the real handlers.
type FacadeTestSuite struct {
	suite.Suite

	facade    *workflow.Facade
	notifier  *MockNotifier
	publisher *RecordingPublisher
	registry  *prometheus.Registry
	logs      *observer.ObservedLogs

	admin    access.Scope
	branch   *branch.Branch
	washer   *staff.Staff
	partner  *logistics.Partner
	manager  access.Scope
	worker   access.Scope
	agent    access.Scope
	customer access.Scope
}

func TestFacade(t *testing.T) {
	suite.Run(t, new(FacadeTestSuite))
}

func (s *FacadeTestSuite) SetupTest() {
	db := testdb.OpenSQLite(s.T())
	clock := kernel.FixedClock{At: now}
	engine := services.NewAssignmentEngine()
	uow := postgres.NewGormUnitOfWorkFactory(db, clock)

	authorizer, err := authz.NewCasbinAuthorizer(db)
	s.Require().NoError(err)
	s.Require().NoError(authorizer.Seed())

	core, logs := observer.New(zapcore.DebugLevel)
	s.logs = logs
	s.notifier = &MockNotifier{}
	s.publisher = &RecordingPublisher{}
	s.registry = prometheus.NewRegistry()

	s.facade, err = workflow.NewFacade(workflow.Handlers{
		CreateOrder:      commands.NewCreateOrderCommandHandler(uow.Placement(), clock),
		AssignBranch:     commands.NewAssignBranchCommandHandler(uow.Workflow(), engine, clock),
		AssignLogistics:  commands.NewAssignLogisticsCommandHandler(uow.Workflow(), engine, clock),
		AssignStaff:      commands.NewAssignStaffCommandHandler(uow.Workflow(), engine, clock),
		TransitionStatus: commands.NewTransitionStatusCommandHandler(uow.Workflow(), engine, clock),
		Branches:         commands.NewBranchCommandsHandler(uow.Branches()),
		Staff:            commands.NewStaffCommandsHandler(uow.Staff()),
		Partners:         commands.NewPartnerCommandsHandler(uow.Partners()),
		GetOrder:         queries.NewGetOrderQueryHandler(orderrepo.NewGormOrderReader(db), engine.Policy()),
		ListOrders:       queries.NewListOrdersQueryHandler(orderrepo.NewGormOrderReader(db)),
		StatusSummary:    queries.NewOrderStatusSummaryQueryHandler(db),
	}, workflow.Dependencies{
		Authorizer: authorizer,
		Locker:     locking.NewKeyedMutex(),
		Notifier:   s.notifier,
		Events:     s.publisher,
		Metrics:    metrics.NewWorkflow(s.registry, metrics.DefaultConfig()),
		Logger:     zap.New(core),
	})
	s.Require().NoError(err)

	s.admin = s.scope(access.Admin, kernel.UUID{}, kernel.UUID{})
	s.branch = s.createBranch(2)
	s.manager = s.scope(access.BranchManager, s.branch.ID(), kernel.UUID{})
	s.worker = s.scope(access.BranchStaff, s.branch.ID(), kernel.UUID{})

	availability, err := staff.NewAvailability(3)
	s.Require().NoError(err)
	s.washer, err = s.facade.CreateStaff(s.T().Context(), s.manager, "Ravi", kernel.UUID{}, staff.Washer, availability)
	s.Require().NoError(err)

	s.partner, err = s.facade.CreatePartner(s.T().Context(), s.admin, "FastMove",
		logistics.NewCoverage(kernel.MustPincode("560001"), kernel.MustPincode("560002")))
	s.Require().NoError(err)
	s.agent = s.scope(access.LogisticsAgent, kernel.UUID{}, s.partner.ID())
	s.customer = s.scope(access.Customer, kernel.UUID{}, kernel.UUID{})
}

func (s *FacadeTestSuite) scope(role access.Role, branchID, partnerID kernel.UUID) access.Scope {
	sc, err := access.NewScope(role, kernel.NewUUID(), branchID, partnerID)
	s.Require().NoError(err)
	return sc
}

func (s *FacadeTestSuite) createBranch(maxOrders int) *branch.Branch {
	c, err := branch.NewCapacity(maxOrders, decimal.NewFromInt(100))
	s.Require().NoError(err)
	sched, err := branch.EveryDay("Asia/Kolkata")
	s.Require().NoError(err)
	b, err := s.facade.CreateBranch(s.T().Context(), s.admin, "Indiranagar", c, sched)
	s.Require().NoError(err)
	return b
}

func (s *FacadeTestSuite) place(pickupPincode string) *order.Order {
	pickup, err := order.NewAddress("12 MG Road", "Bengaluru", kernel.MustPincode(pickupPincode))
	s.Require().NoError(err)
	delivery, err := order.NewAddress("4 Church Street", "Bengaluru", kernel.MustPincode("560002"))
	s.Require().NoError(err)
	weight, err := kernel.WeightFromKg(4)
	s.Require().NoError(err)

	o, err := s.facade.CreateOrder(s.T().Context(), s.customer, kernel.UUID{}, order.Placement{
		PickupAddress:   pickup,
		DeliveryAddress: delivery,
		Weight:          weight,
	})
	s.Require().NoError(err)
	return o
}

func (s *FacadeTestSuite) expectNotification(status order.Status) {
	s.notifier.On("NotifyStatusChanged", mock.Anything,
		mock.MatchedBy(func(n ports.StatusNotification) bool { return n.Status == status }),
	).Return(nil).Once()
}

func (s *FacadeTestSuite) TestHappyPath() {
	ctx := s.T().Context()
	o := s.place("560001")
	s.Equal(order.Placed, o.Status())
	s.Equal(s.customer.ActorID(), o.CustomerID())

	o, err := s.facade.AssignBranch(ctx, s.manager, o.ID(), kernel.UUID{})
	s.Require().NoError(err)
	s.Equal(order.AssignedToBranch, o.Status())

	o, err = s.facade.AssignLogistics(ctx, s.manager, o.ID(), s.partner.ID(), logistics.Pickup)
	s.Require().NoError(err)

	o, err = s.facade.TransitionStatus(ctx, s.agent, o.ID(), order.Picked, "collected")
	s.Require().NoError(err)

	o, err = s.facade.AssignStaff(ctx, s.manager, o.ID(), s.washer.ID())
	s.Require().NoError(err)
	s.True(o.HasStaff(s.washer.ID()))

	o, err = s.facade.TransitionStatus(ctx, s.worker, o.ID(), order.InProcess, "")
	s.Require().NoError(err)

	s.expectNotification(order.Ready)
	o, err = s.facade.TransitionStatus(ctx, s.worker, o.ID(), order.Ready, "")
	s.Require().NoError(err)

	o, err = s.facade.AssignLogistics(ctx, s.manager, o.ID(), s.partner.ID(), logistics.Delivery)
	s.Require().NoError(err)

	s.expectNotification(order.OutForDelivery)
	o, err = s.facade.TransitionStatus(ctx, s.agent, o.ID(), order.OutForDelivery, "")
	s.Require().NoError(err)

	s.expectNotification(order.Delivered)
	o, err = s.facade.TransitionStatus(ctx, s.agent, o.ID(), order.Delivered, "<b>left with</b> guard")
	s.Require().NoError(err)
	s.Equal(order.Delivered, o.Status())

	history := o.History()
	s.Len(history, 9)
	s.Equal(order.Delivered, history[len(history)-1].Status())
	s.Equal("left with guard", history[len(history)-1].Note())

	s.facade.Wait()
	s.notifier.AssertExpectations(s.T())
	s.Equal([]ports.ChangeKind{
		ports.ChangePlaced,
		ports.ChangeBranchAssigned,
		ports.ChangeLogisticsAssigned,
		ports.ChangeStatusChanged,
		ports.ChangeStaffAssigned,
		ports.ChangeStatusChanged,
		ports.ChangeStatusChanged,
		ports.ChangeLogisticsAssigned,
		ports.ChangeStatusChanged,
		ports.ChangeStatusChanged,
	}, s.publisher.Kinds())

	got, err := s.facade.GetOrder(ctx, s.customer, o.ID())
	s.Require().NoError(err)
	s.Equal(order.Delivered, got.Status())
}

func (s *FacadeTestSuite) TestCapacityBoundary() {
	ctx := s.T().Context()
	first, second, third := s.place("560001"), s.place("560001"), s.place("560001")

	_, err := s.facade.AssignBranch(ctx, s.admin, first.ID(), s.branch.ID())
	s.Require().NoError(err)
	_, err = s.facade.AssignBranch(ctx, s.admin, second.ID(), s.branch.ID())
	s.Require().NoError(err, "max-1 orders booked still leaves a slot")

	_, err = s.facade.AssignBranch(ctx, s.admin, third.ID(), s.branch.ID())
	s.Require().ErrorIs(err, errs.ErrCapacityExceeded)
	s.Equal(errs.CodeBranchFull, errs.CodeOf(err))

	unchanged, err := s.facade.GetOrder(ctx, s.admin, third.ID())
	s.Require().NoError(err)
	s.Equal(order.Placed, unchanged.Status())

	s.InDelta(1, s.operations("assign_branch", errs.CodeBranchFull), 0)
	s.InDelta(2, s.operations("assign_branch", metrics.OutcomeOK), 0)
}

func (s *FacadeTestSuite) TestAdminOverrideIsLoggedAtWarn() {
	ctx := s.T().Context()
	o := s.place("560001")
	o, err := s.facade.AssignBranch(ctx, s.admin, o.ID(), s.branch.ID())
	s.Require().NoError(err)

	s.expectNotification(order.Cancelled)
	o, err = s.facade.TransitionStatus(ctx, s.admin, o.ID(), order.Cancelled, "duplicate order")
	s.Require().NoError(err)
	s.True(o.History()[len(o.History())-1].IsOverride())

	warnings := s.logs.FilterMessage("status override applied").FilterField(zap.Bool("override", true))
	s.Equal(1, warnings.Len())
	s.Equal(zapcore.WarnLevel, warnings.All()[0].Level)

	s.facade.Wait()
	s.notifier.AssertExpectations(s.T())
}

func (s *FacadeTestSuite) TestOperationGate() {
	ctx := s.T().Context()
	o := s.place("560001")

	_, err := s.facade.AssignBranch(ctx, s.customer, o.ID(), s.branch.ID())
	s.Require().ErrorIs(err, errs.ErrForbidden)

	_, err = s.facade.AssignBranch(ctx, access.Scope{}, o.ID(), s.branch.ID())
	s.Require().ErrorIs(err, errs.ErrForbidden)

	_, err = s.facade.UpdatePartnerCoverage(ctx, s.manager, s.partner.ID(), logistics.NewCoverage())
	s.Require().ErrorIs(err, errs.ErrForbidden)
}

func (s *FacadeTestSuite) TestRulesBehindTheGate() {
	ctx := s.T().Context()
	o := s.place("560001")
	o, err := s.facade.AssignBranch(ctx, s.manager, o.ID(), s.branch.ID())
	s.Require().NoError(err)

	_, err = s.facade.TransitionStatus(ctx, s.customer, o.ID(), order.Picked, "")
	s.Require().ErrorIs(err, errs.ErrInvalidTransition)

	_, err = s.facade.AssignStaff(ctx, s.manager, o.ID(), kernel.UUID{})
	s.Require().ErrorIs(err, errs.ErrMissingParameter)
	s.Equal(errs.CodeStaffRequired, errs.CodeOf(err))

	_, err = s.facade.AssignStaff(ctx, s.manager, o.ID(), s.washer.ID())
	s.Require().NoError(err)
	_, err = s.facade.AssignStaff(ctx, s.manager, o.ID(), s.washer.ID())
	s.Require().ErrorIs(err, errs.ErrAlreadyAssigned)

	got, err := s.facade.GetOrder(ctx, s.manager, o.ID())
	s.Require().NoError(err)
	s.Len(got.AssignedStaff(), 1)
}

func (s *FacadeTestSuite) TestAreaNotCovered() {
	ctx := s.T().Context()
	o := s.place("110001")
	o, err := s.facade.AssignBranch(ctx, s.manager, o.ID(), s.branch.ID())
	s.Require().NoError(err)

	_, err = s.facade.AssignLogistics(ctx, s.manager, o.ID(), s.partner.ID(), logistics.Pickup)
	s.Require().ErrorIs(err, errs.ErrAreaNotCovered)
}

func (s *FacadeTestSuite) TestConcurrentStaffAssignmentsOnOneOrder() {
	ctx := s.T().Context()
	o := s.place("560001")
	_, err := s.facade.AssignBranch(ctx, s.manager, o.ID(), s.branch.ID())
	s.Require().NoError(err)

	availability, err := staff.NewAvailability(1)
	s.Require().NoError(err)
	members := make([]*staff.Staff, 4)
	for i := range members {
		members[i], err = s.facade.CreateStaff(ctx, s.manager, "Ironer", kernel.UUID{}, staff.Ironer, availability)
		s.Require().NoError(err)
	}

	var wg sync.WaitGroup
	for _, m := range members {
		wg.Go(func() {
			_, err := s.facade.AssignStaff(ctx, s.manager, o.ID(), m.ID())
			s.NoError(err)
		})
	}
	wg.Wait()

	got, err := s.facade.GetOrder(ctx, s.manager, o.ID())
	s.Require().NoError(err)
	s.Len(got.AssignedStaff(), len(members))
}

func (s *FacadeTestSuite) TestListAndSummaryFollowScope() {
	ctx := s.T().Context()
	mine := s.place("560001")
	other := s.scope(access.Customer, kernel.UUID{}, kernel.UUID{})
	_, err := s.facade.CreateOrder(ctx, other, kernel.UUID{}, order.Placement{
		PickupAddress:   mine.PickupAddress(),
		DeliveryAddress: mine.DeliveryAddress(),
		Weight:          mine.Weight(),
	})
	s.Require().NoError(err)

	list, err := s.facade.ListOrders(ctx, s.customer, nil, 0)
	s.Require().NoError(err)
	s.Len(list, 1)

	all, err := s.facade.ListOrders(ctx, s.admin, nil, 0)
	s.Require().NoError(err)
	s.Len(all, 2)

	_, err = s.facade.GetOrder(ctx, other, mine.ID())
	s.Require().ErrorIs(err, errs.ErrForbidden)

	summary, err := s.facade.OrderStatusSummary(ctx, s.admin)
	s.Require().NoError(err)
	s.Equal(order.Placed, summary[0].Status)
	s.Equal(int64(2), summary[0].Count)
}

func (s *FacadeTestSuite) TestSideEffectFailureDoesNotUndoTheChange() {
	ctx := s.T().Context()
	o := s.place("560001")

	s.notifier.On("NotifyStatusChanged", mock.Anything, mock.Anything).Return(context.DeadlineExceeded).Once()
	_, err := s.facade.TransitionStatus(ctx, s.customer, o.ID(), order.Cancelled, "changed my mind")
	s.Require().NoError(err)
	s.facade.Wait()

	got, err := s.facade.GetOrder(ctx, s.customer, o.ID())
	s.Require().NoError(err)
	s.Equal(order.Cancelled, got.Status())
	s.Equal(1, s.logs.FilterMessage("status notification hand-off failed").Len())
}

func (s *FacadeTestSuite) operations(op, outcome string) float64 {
	families, err := s.registry.Gather()
	s.Require().NoError(err)
	for _, f := range families {
		if f.GetName() != "laundry_workflow_operations_total" {
			continue
		}
		for _, m := range f.GetMetric() {
			labels := map[string]string{}
			for _, l := range m.GetLabel() {
				labels[l.GetName()] = l.GetValue()
			}
			if labels["operation"] == op && labels["outcome"] == outcome {
				return m.GetCounter().GetValue()
			}
		}
	}
	return 0
}
