package stock

import (
	"github.com/packerp/backend/internal/domain/shared"
)

// ConsumptionDeltas holds the signed quantity changes a single sale or
// production event applies across the dependent entity chain. A zero
// field means the entity is not touched by the event's mode.
type ConsumptionDeltas struct {
	Product int
	Package int
	Plate   int
	Carton  int
}

// CartonsForPieces converts a consumed piece count into whole cartons,
// rounding up: a partially emptied carton is opened stock and counts as
// used. Ceiling here is the load-bearing policy; floor would overstate
// carton stock on every partial consumption.
func CartonsForPieces(pieces, piecesPerCarton int) (int, error) {
	if piecesPerCarton <= 0 {
		return 0, shared.NewDomainError("INVALID_PIECES_PER_CARTON", "Pieces per carton must be greater than zero")
	}
	if pieces <= 0 {
		return 0, nil
	}
	return (pieces + piecesPerCarton - 1) / piecesPerCarton, nil
}

// ProductSaleDeltas computes the consumption for a sale settled at the
// product level: the sold quantity comes off the product and its
// package directly, leaving plate and carton stock untouched.
func ProductSaleDeltas(quantity int) (ConsumptionDeltas, error) {
	if quantity <= 0 {
		return ConsumptionDeltas{}, shared.NewDomainError("INVALID_QUANTITY", "Sold quantity must be greater than zero")
	}
	return ConsumptionDeltas{
		Product: -quantity,
		Package: -quantity,
	}, nil
}

// PackageSaleDeltas computes the consumption for a sale settled at the
// package level: package and plate are consumed one-for-one with the
// sold quantity, cartons by ceiling division, and the wrapped product
// by the same quantity (resolved by reverse lookup at the call site).
func PackageSaleDeltas(quantity, piecesPerCarton int) (ConsumptionDeltas, error) {
	if quantity <= 0 {
		return ConsumptionDeltas{}, shared.NewDomainError("INVALID_QUANTITY", "Sold quantity must be greater than zero")
	}
	cartons, err := CartonsForPieces(quantity, piecesPerCarton)
	if err != nil {
		return ConsumptionDeltas{}, err
	}
	return ConsumptionDeltas{
		Product: -quantity,
		Package: -quantity,
		Plate:   -quantity,
		Carton:  -cartons,
	}, nil
}

// ProductionDeltas computes the stock movement of manufacturing:
// production adds finished product and consumes one package, one plate
// and a ceiling-rounded share of a carton per produced unit.
func ProductionDeltas(quantity, piecesPerCarton int) (ConsumptionDeltas, error) {
	if quantity <= 0 {
		return ConsumptionDeltas{}, shared.NewDomainError("INVALID_QUANTITY", "Produced quantity must be greater than zero")
	}
	cartons, err := CartonsForPieces(quantity, piecesPerCarton)
	if err != nil {
		return ConsumptionDeltas{}, err
	}
	return ConsumptionDeltas{
		Product: quantity,
		Package: -quantity,
		Plate:   -quantity,
		Carton:  -cartons,
	}, nil
}
