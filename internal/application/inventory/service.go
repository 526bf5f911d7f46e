package inventory

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/stayhub/backend/internal/domain/inventory"
	"github.com/stayhub/backend/internal/domain/shared"
	"github.com/stayhub/backend/internal/domain/shared/valueobject"
	"github.com/stayhub/backend/internal/infrastructure/telemetry"
)

// Service orchestrates inventory use cases
type Service struct {
	items     inventory.Repository
	movements inventory.MovementRepository
	events    shared.EventPublisher
	metrics   *telemetry.BusinessMetrics
	log       *zap.Logger
}

// NewService creates the inventory application service. Metrics may
// be nil when telemetry is disabled.
func NewService(items inventory.Repository, movements inventory.MovementRepository, events shared.EventPublisher, metrics *telemetry.BusinessMetrics, log *zap.Logger) *Service {
	return &Service{
		items:     items,
		movements: movements,
		events:    events,
		metrics:   metrics,
		log:       log,
	}
}

// List returns inventory items matching the query. The status filter
// works on the derived status, so it is applied after loading.
func (s *Service) List(ctx context.Context, q ListQuery) (*shared.Paginated[ItemDTO], error) {
	filter := shared.DefaultFilter()
	filter.Search = q.Search
	if q.Category != "" && q.Category != "all" {
		filter.Filters["category"] = q.Category
	}

	statusFilter := q.Status != "" && q.Status != "all"
	if !statusFilter {
		if q.Page > 0 {
			filter.Page = q.Page
		}
		if q.PageSize > 0 {
			filter.PageSize = q.PageSize
		}
	} else {
		// load everything matching the other filters, then narrow
		filter.PageSize = 0
	}

	items, err := s.items.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}

	dtos := make([]ItemDTO, 0, len(items))
	for i := range items {
		dto := toItemDTO(&items[i])
		if statusFilter && dto.Status != q.Status {
			continue
		}
		dtos = append(dtos, dto)
	}

	if statusFilter {
		page, size := q.Page, q.PageSize
		if page < 1 {
			page = 1
		}
		if size < 1 {
			size = 20
		}
		total := int64(len(dtos))
		start := (page - 1) * size
		if start > len(dtos) {
			start = len(dtos)
		}
		end := start + size
		if end > len(dtos) {
			end = len(dtos)
		}
		result := shared.NewPaginated(dtos[start:end], total, page, size)
		return &result, nil
	}

	total, err := s.items.Count(ctx, filter)
	if err != nil {
		return nil, err
	}
	result := shared.NewPaginated(dtos, total, filter.Page, filter.PageSize)
	return &result, nil
}

// Get returns a single item by ID
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*ItemDTO, error) {
	item, err := s.items.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	dto := toItemDTO(item)
	return &dto, nil
}

// Create adds a new item to the catalog
func (s *Service) Create(ctx context.Context, req CreateItemRequest) (*ItemDTO, error) {
	cost, err := valueobject.NewMoneyFromFloat(req.UnitCost, req.Currency)
	if err != nil {
		return nil, err
	}
	item, err := inventory.NewItem(inventory.NewItemParams{
		ItemNumber:   req.ItemNumber,
		Name:         req.Name,
		Category:     inventory.Category(req.Category),
		CurrentStock: req.CurrentStock,
		MinStock:     req.MinStock,
		ReorderLevel: req.ReorderLevel,
		Unit:         req.Unit,
		UnitCost:     cost,
		Location:     req.Location,
		Supplier:     req.Supplier,
		Notes:        req.Notes,
		Barcode:      req.Barcode,
	})
	if err != nil {
		return nil, err
	}
	if err := s.items.Save(ctx, item); err != nil {
		return nil, err
	}
	s.publishEvents(ctx, item)

	s.log.Info("inventory item created",
		zap.String("item_id", item.ID.String()),
		zap.String("item_number", item.ItemNumber),
	)
	dto := toItemDTO(item)
	return &dto, nil
}

// RecordMovement applies a stock movement to an item. The change runs
// inside a row-locked transaction so a concurrent withdrawal cannot
// push stock below zero.
func (s *Service) RecordMovement(ctx context.Context, itemID uuid.UUID, actorID uuid.UUID, req RecordMovementRequest) (*MovementDTO, error) {
	item, movement, err := s.items.ApplyMovement(ctx, itemID, func(item *inventory.Item) (*inventory.Movement, error) {
		switch inventory.MovementType(req.Type) {
		case inventory.MovementIn:
			return item.ReceiveStock(req.Quantity, req.Reason, actorID)
		case inventory.MovementOut:
			return item.WithdrawStock(req.Quantity, req.Reason, actorID)
		case inventory.MovementAdjustment:
			return item.AdjustStock(req.Quantity, req.Reason, actorID)
		default:
			return nil, shared.NewDomainError("INVALID_MOVEMENT_TYPE", "movement type must be in, out or adjustment")
		}
	})
	if err != nil {
		return nil, err
	}
	s.publishEvents(ctx, item)

	if s.metrics != nil {
		s.metrics.StockMovements.Add(ctx, 1)
	}
	s.log.Info("stock movement recorded",
		zap.String("item_id", itemID.String()),
		zap.String("type", req.Type),
		zap.Int("quantity", req.Quantity),
		zap.Int("new_stock", movement.NewStock),
	)
	dto := toMovementDTO(movement)
	return &dto, nil
}

// Movements lists the movement ledger for an item
func (s *Service) Movements(ctx context.Context, itemID uuid.UUID, page, pageSize int) (*shared.Paginated[MovementDTO], error) {
	if _, err := s.items.FindByID(ctx, itemID); err != nil {
		return nil, err
	}
	filter := shared.DefaultFilter()
	if page > 0 {
		filter.Page = page
	}
	if pageSize > 0 {
		filter.PageSize = pageSize
	}
	filter.Filters["item_id"] = itemID

	movements, err := s.movements.FindByItem(ctx, itemID, filter)
	if err != nil {
		return nil, err
	}
	total, err := s.movements.Count(ctx, filter)
	if err != nil {
		return nil, err
	}

	dtos := make([]MovementDTO, 0, len(movements))
	for i := range movements {
		dtos = append(dtos, toMovementDTO(&movements[i]))
	}
	result := shared.NewPaginated(dtos, total, filter.Page, filter.PageSize)
	return &result, nil
}

// Delete removes an item from the catalog
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	item, err := s.items.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.items.Delete(ctx, id); err != nil {
		return err
	}
	if err := s.events.Publish(ctx, inventory.NewItemDeletedEvent(item)); err != nil {
		s.log.Warn("publish delete event", zap.Error(err))
	}
	s.log.Info("inventory item deleted", zap.String("item_id", id.String()))
	return nil
}

// Stats aggregates catalog-wide inventory numbers
func (s *Service) Stats(ctx context.Context) (*StatsDTO, error) {
	filter := shared.DefaultFilter()
	filter.PageSize = 0
	items, err := s.items.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}

	stats := &StatsDTO{
		TotalItems: int64(len(items)),
		Currency:   valueobject.DefaultCurrency,
	}
	for i := range items {
		switch items[i].Status() {
		case inventory.StatusLowStock:
			stats.LowStockCount++
		case inventory.StatusOutOfStock:
			stats.OutOfStockCount++
		}
	}
	stats.TotalValue = sumValue(items).StringFixed(2)
	return stats, nil
}

// LowStock lists items at or below their reorder threshold
func (s *Service) LowStock(ctx context.Context) ([]ItemDTO, error) {
	items, err := s.items.FindLowStock(ctx)
	if err != nil {
		return nil, err
	}
	dtos := make([]ItemDTO, 0, len(items))
	for i := range items {
		dtos = append(dtos, toItemDTO(&items[i]))
	}
	return dtos, nil
}

func (s *Service) publishEvents(ctx context.Context, item *inventory.Item) {
	events := item.GetDomainEvents()
	if len(events) == 0 {
		return
	}
	if err := s.events.Publish(ctx, events...); err != nil {
		s.log.Warn("publish domain events", zap.Error(err))
	}
	item.ClearDomainEvents()
}
