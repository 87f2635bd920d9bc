package catalog

import (
	"github.com/google/uuid"
	"github.com/packerp/backend/internal/domain/shared"
)

// Aggregate type constants
const (
	AggregateTypeProduct = "Product"
	AggregateTypePackage = "Package"
	AggregateTypePlate   = "Plate"
	AggregateTypeCarton  = "Carton"
)

// Event type constants
const (
	EventTypeProductCreated    = "ProductCreated"
	EventTypeProductDeleted    = "ProductDeleted"
	EventTypeStockWentNegative = "StockWentNegative"
)

// ProductCreatedEvent is published when a new product is created
type ProductCreatedEvent struct {
	shared.BaseDomainEvent
	ProductID uuid.UUID `json:"product_id"`
	Name      string    `json:"name"`
	PackageID uuid.UUID `json:"package_id"`
}

// NewProductCreatedEvent creates a new ProductCreatedEvent
func NewProductCreatedEvent(product *Product) *ProductCreatedEvent {
	return &ProductCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeProductCreated, AggregateTypeProduct, product.ID),
		ProductID:       product.ID,
		Name:            product.Name,
		PackageID:       product.PackageID,
	}
}

// ProductDeletedEvent is published when a product is soft-deleted
type ProductDeletedEvent struct {
	shared.BaseDomainEvent
	ProductID uuid.UUID `json:"product_id"`
	Name      string    `json:"name"`
}

// NewProductDeletedEvent creates a new ProductDeletedEvent
func NewProductDeletedEvent(product *Product) *ProductDeletedEvent {
	return &ProductDeletedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeProductDeleted, AggregateTypeProduct, product.ID),
		ProductID:       product.ID,
		Name:            product.Name,
	}
}

// StockWentNegativeEvent is published when a quantity adjustment takes
// an aggregate's available quantity below zero. The write is permitted;
// the event exists so the anomaly is observable instead of silent.
type StockWentNegativeEvent struct {
	shared.BaseDomainEvent
	EntityName        string `json:"entity_name"`
	ResultingQuantity int    `json:"resulting_quantity"`
}

// NewStockWentNegativeEvent creates a new StockWentNegativeEvent
func NewStockWentNegativeEvent(aggregateType string, aggregateID uuid.UUID, entityName string, resultingQuantity int) *StockWentNegativeEvent {
	return &StockWentNegativeEvent{
		BaseDomainEvent:   shared.NewBaseDomainEvent(EventTypeStockWentNegative, aggregateType, aggregateID),
		EntityName:        entityName,
		ResultingQuantity: resultingQuantity,
	}
}
