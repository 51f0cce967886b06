// Package postgres implements the unit of work and the repositories on top of
// GORM. The same code runs against PostgreSQL in production and SQLite in
// local setups and fast tests.
//
// Usage:
//
//	uow := factory.Create()
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer uow.Rollback(ctx)
//
//	o, err := uow.OrderRepository().GetForUpdate(ctx, id)
//	...
//	if err := uow.OrderRepository().Update(ctx, o); err != nil {
//	    return err
//	}
//	return uow.Commit(ctx)
package postgres

import (
	"context"

	"laundry/internal/adapters/out/postgres/branchrepo"
	"laundry/internal/adapters/out/postgres/orderrepo"
	"laundry/internal/adapters/out/postgres/partnerrepo"
	"laundry/internal/adapters/out/postgres/staffrepo"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/ports"

	"gorm.io/gorm"
)

// Models lists every table the repositories use, in dependency order.
func Models() []any {
	return []any{
		&orderrepo.OrderDTO{},
		&orderrepo.HistoryDTO{},
		&orderrepo.StaffAssignmentDTO{},
		&branchrepo.BranchDTO{},
		&branchrepo.HolidayDTO{},
		&staffrepo.StaffDTO{},
		&staffrepo.CurrentOrderDTO{},
		&partnerrepo.PartnerDTO{},
		&partnerrepo.CoverageDTO{},
		&OrderNumberSequenceDTO{},
	}
}

// GormUnitOfWorkFactory creates UnitOfWork instances sharing one connection pool.
type GormUnitOfWorkFactory struct {
	db    *gorm.DB
	clock kernel.Clock
}

func NewGormUnitOfWorkFactory(db *gorm.DB, clock kernel.Clock) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db, clock: clock}
}

func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{db: f.db, clock: f.clock}
}

// GormUnitOfWork wraps one GORM transaction. Repositories obtained before
// Begin use the plain connection.
type GormUnitOfWork struct {
	db    *gorm.DB
	tx    *gorm.DB
	clock kernel.Clock
}

// Begin is idempotent while a transaction is open.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.tx = uow.db.WithContext(ctx).Begin()
	if uow.tx.Error != nil {
		err := uow.tx.Error
		uow.tx = nil
		return err
	}

	return nil
}

func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	return err
}

func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return nil
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	return err
}

func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}

func (uow *GormUnitOfWork) OrderRepository() ports.OrderRepository {
	return orderrepo.NewGormOrderRepository(uow.conn())
}

func (uow *GormUnitOfWork) BranchRepository() ports.BranchRepository {
	return branchrepo.NewGormBranchRepository(uow.conn())
}

func (uow *GormUnitOfWork) StaffRepository() ports.StaffRepository {
	return staffrepo.NewGormStaffRepository(uow.conn(), uow.clock)
}

func (uow *GormUnitOfWork) PartnerRepository() ports.PartnerRepository {
	return partnerrepo.NewGormPartnerRepository(uow.conn())
}

func (uow *GormUnitOfWork) OrderNumbers() ports.OrderNumberSequence {
	return NewGormOrderNumberSequence(uow.conn())
}
