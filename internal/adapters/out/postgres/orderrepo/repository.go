package orderrepo

import (
	"context"
	"errors"
	"time"

	"laundry/internal/core/domain/model/branch"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/core/ports"
	"laundry/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const defaultListLimit = 100

// GormOrderRepository implements ports.OrderRepository using GORM.
type GormOrderRepository struct {
	db *gorm.DB
}

var _ ports.OrderRepository = (*GormOrderRepository)(nil)

func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// NewGormOrderReader returns a repository for reads outside a unit of work.
func NewGormOrderReader(db *gorm.DB) *GormOrderRepository {
	return NewGormOrderRepository(db)
}

// Add inserts the order, its history and staff rows at version 1.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	dto.Version = 1
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	aggregate.MarkPersisted(dto.Version)
	return nil
}

// Update performs a compare-and-set on the version column and appends the
// history and staff rows the stored order does not have yet.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	expected := aggregate.Version()
	db := r.db.WithContext(ctx)

	result := db.Model(&OrderDTO{}).
		Where("id = ? AND version = ?", dto.ID, expected).
		Updates(map[string]any{
			"status":              dto.Status,
			"branch_id":           dto.BranchID,
			"pickup_partner_id":   dto.PickupPartnerID,
			"delivery_partner_id": dto.DeliveryPartnerID,
			"version":             expected + 1,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		var count int64
		if err := db.Model(&OrderDTO{}).Where("id = ?", dto.ID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return errs.NewObjectNotFoundError("order", aggregate.ID().String())
		}
		return errs.NewVersionIsInvalidError("order", expected)
	}

	if len(dto.History) > 0 {
		if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&dto.History).Error; err != nil {
			return err
		}
	}
	if len(dto.Staff) > 0 {
		if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&dto.Staff).Error; err != nil {
			return err
		}
	}

	aggregate.MarkPersisted(expected + 1)
	return nil
}

func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	return r.get(r.db.WithContext(ctx), id)
}

// GetForUpdate locks the order row. SQLite ignores the locking clause and
// serializes writers on its own.
func (r *GormOrderRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	return r.get(r.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"}), id)
}

func (r *GormOrderRepository) get(db *gorm.DB, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	if err := preloaded(db).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// List applies the caller's visibility. An empty visibility matches nothing.
func (r *GormOrderRepository) List(ctx context.Context, filter ports.OrderFilter) ([]*order.Order, error) {
	query := preloaded(r.db.WithContext(ctx)).Model(&OrderDTO{})

	v := filter.Visibility
	switch {
	case v.All:
	case !v.CustomerID.IsZero():
		query = query.Where("customer_id = ?", v.CustomerID.Bytes())
	case !v.BranchID.IsZero() && v.IncludeUnassigned:
		query = query.Where("branch_id = ? OR (branch_id IS NULL AND status = ?)", v.BranchID.Bytes(), int(order.Placed))
	case !v.BranchID.IsZero():
		query = query.Where("branch_id = ?", v.BranchID.Bytes())
	case !v.PartnerID.IsZero():
		query = query.Where("COALESCE(delivery_partner_id, pickup_partner_id) = ?", v.PartnerID.Bytes())
	default:
		return []*order.Order{}, nil
	}

	if filter.Status != nil {
		query = query.Where("status = ?", int(*filter.Status))
	}

	limit := filter.Limit
	if limit <= 0 || limit > defaultListLimit {
		limit = defaultListLimit
	}

	var dtos []OrderDTO
	if err := query.Order("created_at DESC").Limit(limit).Find(&dtos).Error; err != nil {
		return nil, err
	}

	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, nil
}

// DailyLoad counts the branch's orders created inside [from, to) and sums
// their declared weight. Cancelled orders give their share back.
func (r *GormOrderRepository) DailyLoad(ctx context.Context, branchID kernel.UUID, from, to time.Time) (branch.Load, error) {
	if err := branchID.Validate(); err != nil {
		return branch.Load{}, err
	}

	var row struct {
		Orders int64
		Weight decimal.Decimal
	}
	err := r.db.WithContext(ctx).Model(&OrderDTO{}).
		Select("COUNT(*) AS orders, COALESCE(SUM(weight_kg), 0) AS weight").
		Where("branch_id = ? AND created_at >= ? AND created_at < ?", branchID.Bytes(), from.UTC(), to.UTC()).
		Where("status <> ?", int(order.Cancelled)).
		Scan(&row).Error
	if err != nil {
		return branch.Load{}, err
	}

	weight, err := kernel.LoadWeight(row.Weight)
	if err != nil {
		return branch.Load{}, err
	}
	return branch.Load{Orders: int(row.Orders), Weight: weight}, nil
}

func (r *GormOrderRepository) TerminalAmong(ctx context.Context, ids []kernel.UUID) ([]kernel.UUID, error) {
	if len(ids) == 0 {
		return []kernel.UUID{}, nil
	}

	raw := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		raw = append(raw, id.Bytes())
	}

	var found []uuid.UUID
	err := r.db.WithContext(ctx).Model(&OrderDTO{}).
		Where("id IN ? AND status IN ?", raw, []int{int(order.Delivered), int(order.Cancelled)}).
		Pluck("id", &found).Error
	if err != nil {
		return nil, err
	}

	terminal := make([]kernel.UUID, 0, len(found))
	for _, id := range found {
		terminal = append(terminal, kernel.UUIDFromGoogle(id))
	}
	return terminal, nil
}

func preloaded(db *gorm.DB) *gorm.DB {
	return db.
		Preload("History", func(tx *gorm.DB) *gorm.DB { return tx.Order("seq") }).
		Preload("Staff", func(tx *gorm.DB) *gorm.DB { return tx.Order("assigned_at") })
}
