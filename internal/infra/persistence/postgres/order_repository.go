package postgres

import (
	"context"
	"time"

	"tienda/internal/domain/entity"
	domainerrors "tienda/internal/domain/errors"
	"tienda/internal/domain/repository"
	"tienda/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// orderRepository implements the repository.OrderRepository interface.
type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepository{
		db: db,
	}
}

// FindByID retrieves an order with lines, products, customer and delivery agent preloaded.
func (repo *orderRepository) FindByID(ctx context.Context, id int64) (*entity.Order, error) {
	var orderM model.OrderModel

	if err := repo.db.WithContext(ctx).
		Preload("Customer.Account").
		Preload("DeliveryAgent.Account").
		Preload("Lines.Product").
		Where("id = ?", id).
		First(&orderM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order by ID")
	}

	return toOrderDomain(&orderM), nil
}

// List retrieves a page of orders with associations preloaded and the
// total count matching the filters.
func (repo *orderRepository) List(ctx context.Context, query repository.OrderQuery) ([]*entity.Order, int64, error) {
	base := repo.db.WithContext(ctx).Model(&model.OrderModel{})

	if query.PaymentMethod != nil {
		base = base.Where("payment_method = ?", string(*query.PaymentMethod))
	}
	if query.DeliveryType != nil {
		base = base.Where("delivery_type = ?", string(*query.DeliveryType))
	}
	if query.Status != nil {
		base = base.Where("status = ?", string(*query.Status))
	}
	if query.CreatedFrom != nil {
		base = base.Where("orders.created_at >= ?", *query.CreatedFrom)
	}
	if query.CreatedTo != nil {
		base = base.Where("orders.created_at < ?", *query.CreatedTo)
	}
	if query.CustomerID != nil {
		base = base.Where("customer_id = ?", *query.CustomerID)
	}
	if query.DeliveryAgentID != nil {
		base = base.Where("delivery_agent_id = ?", *query.DeliveryAgentID)
	}
	if len(query.SearchWords) > 0 {
		base = base.Joins("JOIN customers ON customers.id = orders.customer_id")
		for _, word := range query.SearchWords {
			base = base.Where("customers.identification ILIKE ?", likePattern(word))
		}
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count orders")
	}

	var orderModels []*model.OrderModel
	if err := paginate(base, query.Page, query.Limit).
		Preload("Customer.Account").
		Preload("DeliveryAgent.Account").
		Preload("Lines.Product").
		Order("orders.created_at DESC").
		Find(&orderModels).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to list orders")
	}

	orders := make([]*entity.Order, 0, len(orderModels))
	for _, orderM := range orderModels {
		orders = append(orders, toOrderDomain(orderM))
	}

	return orders, total, nil
}

// Create persists a new order together with its lines.
func (repo *orderRepository) Create(ctx context.Context, order *entity.Order) error {
	orderM := fromOrderDomain(order)

	if err := repo.db.WithContext(ctx).Create(orderM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid customer, agent or product reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required order information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create order")
	}

	// Update the entity with generated values
	order.ID = orderM.ID
	order.CreatedAt = orderM.CreatedAt
	order.UpdatedAt = orderM.UpdatedAt
	for i, lineM := range orderM.Lines {
		order.Lines[i].ID = lineM.ID
		order.Lines[i].OrderID = lineM.OrderID
	}

	return nil
}

// Update modifies an existing order (status, assignment, completedAt).
func (repo *orderRepository) Update(ctx context.Context, order *entity.Order) error {
	result := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Where("id = ?", order.ID).
		Updates(map[string]interface{}{
			"payment_method":    string(order.PaymentMethod),
			"delivery_type":     string(order.DeliveryType),
			"status":            string(order.Status),
			"address":           order.Address,
			"request":           order.Request,
			"completed_at":      order.CompletedAt,
			"delivery_agent_id": order.DeliveryAgentID,
		})

	if result.Error != nil {
		if isForeignKeyConstraintViolation(result.Error) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid delivery agent reference")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update order")
	}

	if result.RowsAffected == 0 {
		return repository.ErrOrderNotFound
	}

	return nil
}

// DeleteLines removes the order's lines matching the given product IDs.
func (repo *orderRepository) DeleteLines(ctx context.Context, orderID int64, productIDs []int64) error {
	if len(productIDs) == 0 {
		return nil
	}

	if err := repo.db.WithContext(ctx).
		Where("order_id = ? AND product_id IN ?", orderID, productIDs).
		Delete(&model.OrderLineModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete order lines")
	}

	return nil
}

// FindCompletedBetween retrieves completed orders whose completion
// timestamp falls in [from, to), with lines and products preloaded.
func (repo *orderRepository) FindCompletedBetween(ctx context.Context, from, to time.Time) ([]*entity.Order, error) {
	var orderModels []*model.OrderModel

	if err := repo.db.WithContext(ctx).
		Preload("Lines.Product").
		Where("status = ?", string(entity.StatusCompleted)).
		Where("completed_at >= ? AND completed_at < ?", from, to).
		Order("completed_at ASC").
		Find(&orderModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find completed orders")
	}

	orders := make([]*entity.Order, 0, len(orderModels))
	for _, orderM := range orderModels {
		orders = append(orders, toOrderDomain(orderM))
	}

	return orders, nil
}

// --- Mapper Functions ---

// toOrderDomain converts a GORM OrderModel to a domain Order entity.
func toOrderDomain(data *model.OrderModel) *entity.Order {
	if data == nil {
		return nil
	}

	lines := make([]*entity.OrderLine, 0, len(data.Lines))
	for _, lineM := range data.Lines {
		lines = append(lines, toOrderLineDomain(lineM))
	}

	return &entity.Order{
		ID:              data.ID,
		PaymentMethod:   entity.PaymentMethod(data.PaymentMethod),
		DeliveryType:    entity.DeliveryType(data.DeliveryType),
		Status:          entity.OrderStatus(data.Status),
		Address:         data.Address,
		Request:         data.Request,
		CompletedAt:     data.CompletedAt,
		CustomerID:      data.CustomerID,
		DeliveryAgentID: data.DeliveryAgentID,
		Customer:        toCustomerDomain(data.Customer),
		DeliveryAgent:   toDeliveryAgentDomain(data.DeliveryAgent),
		Lines:           lines,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}

// toOrderLineDomain converts a GORM OrderLineModel to a domain OrderLine entity.
func toOrderLineDomain(data *model.OrderLineModel) *entity.OrderLine {
	if data == nil {
		return nil
	}

	return &entity.OrderLine{
		ID:        data.ID,
		OrderID:   data.OrderID,
		ProductID: data.ProductID,
		Quantity:  data.Quantity,
		Product:   toProductDomain(data.Product),
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

// fromOrderDomain converts a domain Order entity to a GORM OrderModel.
// Nested lines are carried so a single Create persists the whole order.
func fromOrderDomain(data *entity.Order) *model.OrderModel {
	if data == nil {
		return nil
	}

	lines := make([]*model.OrderLineModel, 0, len(data.Lines))
	for _, line := range data.Lines {
		lines = append(lines, &model.OrderLineModel{
			ID:        line.ID,
			OrderID:   line.OrderID,
			ProductID: line.ProductID,
			Quantity:  line.Quantity,
		})
	}

	return &model.OrderModel{
		ID:              data.ID,
		PaymentMethod:   string(data.PaymentMethod),
		DeliveryType:    string(data.DeliveryType),
		Status:          string(data.Status),
		Address:         data.Address,
		Request:         data.Request,
		CompletedAt:     data.CompletedAt,
		CustomerID:      data.CustomerID,
		DeliveryAgentID: data.DeliveryAgentID,
		Lines:           lines,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}
