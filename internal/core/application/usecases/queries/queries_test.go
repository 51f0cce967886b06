package queries_test

import (
	"testing"
	"time"

	"laundry/internal/adapters/out/postgres/orderrepo"
	"laundry/internal/adapters/out/postgres/testdb"
	"laundry/internal/core/application/usecases/queries"
	"laundry/internal/core/domain/model/access"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/logistics"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/core/domain/services"
	"laundry/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

var day = time.Date(2026, 10, 19, 6, 0, 0, 0, time.UTC)

type OrderQueriesTestSuite struct {
	suite.Suite
	db     *gorm.DB
	reader *orderrepo.GormOrderRepository

	branchID   kernel.UUID
	partnerID  kernel.UUID
	alice      kernel.UUID
	bob        kernel.UUID
	unassigned *order.Order
	inBranch   *order.Order
	picked     *order.Order
}

func TestOrderQueries(t *testing.T) {
	suite.Run(t, new(OrderQueriesTestSuite))
}

func (s *OrderQueriesTestSuite) SetupTest() {
	s.db = testdb.OpenSQLite(s.T())
	s.reader = orderrepo.NewGormOrderReader(s.db)

	s.branchID, s.partnerID = kernel.NewUUID(), kernel.NewUUID()
	s.alice, s.bob = kernel.NewUUID(), kernel.NewUUID()
	admin := order.Actor{ID: kernel.NewUUID(), Role: access.Admin}

	s.unassigned = s.place(s.alice, 1, day)
	s.inBranch = s.place(s.bob, 2, day.Add(time.Minute))
	s.Require().NoError(s.inBranch.AssignBranch(s.branchID, "Indiranagar", admin, day))
	s.picked = s.place(s.alice, 3, day.Add(2*time.Minute))
	s.Require().NoError(s.picked.AssignBranch(s.branchID, "Indiranagar", admin, day))
	s.Require().NoError(s.picked.AssignLogistics(logistics.Pickup, s.partnerID, "FastMove", admin, day))
	s.Require().NoError(s.picked.ChangeStatus(order.Picked, admin, day, "", false))

	for _, o := range []*order.Order{s.unassigned, s.inBranch, s.picked} {
		s.Require().NoError(s.reader.Add(s.T().Context(), o))
	}
}

func (s *OrderQueriesTestSuite) place(customerID kernel.UUID, ordinal int64, at time.Time) *order.Order {
	pickup, err := order.NewAddress("12 MG Road", "Bengaluru", kernel.MustPincode("560001"))
	s.Require().NoError(err)
	weight, err := kernel.WeightFromKg(2)
	s.Require().NoError(err)
	number, err := order.NewNumber(at, ordinal)
	s.Require().NoError(err)
	o, err := order.NewOrder(kernel.NewUUID(), number, order.Placement{
		CustomerID:      customerID,
		PickupAddress:   pickup,
		DeliveryAddress: pickup,
		Weight:          weight,
	}, order.Actor{ID: customerID, Role: access.Customer}, at)
	s.Require().NoError(err)
	return o
}

func (s *OrderQueriesTestSuite) scope(role access.Role, actorID, branchID, partnerID kernel.UUID) access.Scope {
	scope, err := access.NewScope(role, actorID, branchID, partnerID)
	s.Require().NoError(err)
	return scope
}

func (s *OrderQueriesTestSuite) TestGetOrder() {
	handler := queries.NewGetOrderQueryHandler(s.reader, services.NewScopePolicy())
	none := kernel.UUID{}

	tests := []struct {
		name    string
		scope   access.Scope
		orderID kernel.UUID
		wantErr error
	}{
		{"owner", s.scope(access.Customer, s.alice, none, none), s.picked.ID(), nil},
		{"other customer", s.scope(access.Customer, s.bob, none, none), s.picked.ID(), errs.ErrForbidden},
		{"manager sees unassigned", s.scope(access.BranchManager, kernel.NewUUID(), kernel.NewUUID(), none),
			s.unassigned.ID(), nil},
		{"staff does not see unassigned", s.scope(access.BranchStaff, kernel.NewUUID(), s.branchID, none),
			s.unassigned.ID(), errs.ErrForbidden},
		{"carrying partner", s.scope(access.LogisticsAgent, kernel.NewUUID(), none, s.partnerID), s.picked.ID(), nil},
		{"missing order", s.scope(access.Admin, kernel.NewUUID(), none, none), kernel.NewUUID(), errs.ErrNotFound},
	}
	for _, tt := range tests {
		s.Run(tt.name, func() {
			query, err := queries.NewGetOrderQuery(tt.scope, tt.orderID)
			s.Require().NoError(err)

			got, err := handler.Handle(s.T().Context(), query)
			if tt.wantErr != nil {
				s.Require().ErrorIs(err, tt.wantErr)
				return
			}
			s.Require().NoError(err)
			s.Equal(tt.orderID, got.ID())
		})
	}
}

func (s *OrderQueriesTestSuite) TestListOrders() {
	handler := queries.NewListOrdersQueryHandler(s.reader)
	none := kernel.UUID{}
	picked := order.Picked

	tests := []struct {
		name   string
		scope  access.Scope
		status *order.Status
		want   []kernel.UUID
	}{
		{"support sees all, newest first", s.scope(access.SupportAgent, kernel.NewUUID(), none, none), nil,
			[]kernel.UUID{s.picked.ID(), s.inBranch.ID(), s.unassigned.ID()}},
		{"customer", s.scope(access.Customer, s.alice, none, none), nil,
			[]kernel.UUID{s.picked.ID(), s.unassigned.ID()}},
		{"manager with unassigned", s.scope(access.BranchManager, kernel.NewUUID(), s.branchID, none), nil,
			[]kernel.UUID{s.picked.ID(), s.inBranch.ID(), s.unassigned.ID()}},
		{"staff", s.scope(access.BranchStaff, kernel.NewUUID(), s.branchID, none), nil,
			[]kernel.UUID{s.picked.ID(), s.inBranch.ID()}},
		{"partner", s.scope(access.LogisticsAgent, kernel.NewUUID(), none, s.partnerID), nil,
			[]kernel.UUID{s.picked.ID()}},
		{"status filter", s.scope(access.Admin, kernel.NewUUID(), none, none), &picked,
			[]kernel.UUID{s.picked.ID()}},
	}
	for _, tt := range tests {
		s.Run(tt.name, func() {
			query, err := queries.NewListOrdersQuery(tt.scope, tt.status, 0)
			s.Require().NoError(err)

			got, err := handler.Handle(s.T().Context(), query)
			s.Require().NoError(err)

			ids := make([]kernel.UUID, 0, len(got))
			for _, o := range got {
				ids = append(ids, o.ID())
			}
			s.Equal(tt.want, ids)
		})
	}
}

func (s *OrderQueriesTestSuite) TestOrderStatusSummary() {
	handler := queries.NewOrderStatusSummaryQueryHandler(s.db)
	query, err := queries.NewOrderStatusSummaryQuery(
		s.scope(access.BranchStaff, kernel.NewUUID(), s.branchID, kernel.UUID{}))
	s.Require().NoError(err)

	summary, err := handler.Handle(s.T().Context(), query)
	s.Require().NoError(err)

	s.Len(summary, len(order.Statuses()))
	counts := make(map[order.Status]int64)
	for _, line := range summary {
		counts[line.Status] = line.Count
	}
	s.Equal(int64(0), counts[order.Placed])
	s.Equal(int64(1), counts[order.AssignedToBranch])
	s.Equal(int64(1), counts[order.Picked])
}

func TestNewListOrdersQuery_Limit(t *testing.T) {
	scope, err := access.NewScope(access.Admin, kernel.NewUUID(), kernel.UUID{}, kernel.UUID{})
	require.NoError(t, err)

	_, err = queries.NewListOrdersQuery(scope, nil, 101)
	require.ErrorIs(t, err, errs.ErrInvalidParameter)

	query, err := queries.NewListOrdersQuery(scope, nil, 100)
	require.NoError(t, err)
	assert.Equal(t, 100, query.Limit())
}

func TestGetOrderQueryHandler_NotConstructed(t *testing.T) {
	handler := queries.NewGetOrderQueryHandler(nil, services.NewScopePolicy())

	_, err := handler.Handle(t.Context(), queries.GetOrderQuery{})

	require.ErrorIs(t, err, queries.ErrGetOrderQueryIsNotConstructed)
}
