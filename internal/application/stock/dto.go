package stock

import "github.com/google/uuid"

// SaleMode selects which entity chain a sale consumes. The two modes are
// deliberately distinct operations, never merged behind a flag hidden in
// the data.
type SaleMode string

const (
	// SaleByProduct settles the sale at the product level: finished
	// product and its package are consumed, printing resources are not.
	SaleByProduct SaleMode = "by_product"
	// SaleByPackage settles the sale at the package level: package,
	// plate and carton are consumed, and the wrapped product is
	// decremented via reverse lookup.
	SaleByPackage SaleMode = "by_package"
)

// Valid reports whether the mode is one of the two known modes
func (m SaleMode) Valid() bool {
	return m == SaleByProduct || m == SaleByPackage
}

// SaleEvent is one unit of a reduction batch: an invoiced order line, the
// sold quantity and the mode the sale settles in.
type SaleEvent struct {
	OrderProductID uuid.UUID
	Quantity       int
	Mode           SaleMode
}

// ProduceRequest represents a request to manufacture product units
type ProduceRequest struct {
	ProductID uuid.UUID `json:"product_id" binding:"required"`
	Quantity  int       `json:"quantity" binding:"required,gt=0"`
}

// ProductionResponse reports the outcome of a production run
type ProductionResponse struct {
	ProductID         string `json:"product_id"`
	Name              string `json:"name"`
	ProducedQuantity  int    `json:"produced_quantity"`
	AvailableQuantity int    `json:"available_quantity"`
}

// ManufacturedRecordResponse represents one production audit row
type ManufacturedRecordResponse struct {
	ID              string `json:"id"`
	ProductID       string `json:"product_id"`
	Quantity        int    `json:"quantity"`
	ManufactureDate string `json:"manufacture_date"`
}
