package request

import "freightops/internal/pkg/errs"

// TruckType is the closed vocabulary of vehicle classes a request may ask
// for. Values match the wire representation used by the store and the API.
type TruckType string

const (
	TruckFlatbed      TruckType = "flatbed"
	TruckRefrigerated TruckType = "refrigerated"
	TruckTanker       TruckType = "tanker"
	TruckContainer    TruckType = "container"
	TruckLowboy       TruckType = "lowboy"
	TruckDryVan       TruckType = "dry_van"
)

// AllTruckTypes lists every valid truck type, in display order.
func AllTruckTypes() []TruckType {
	return []TruckType{
		TruckFlatbed,
		TruckRefrigerated,
		TruckTanker,
		TruckContainer,
		TruckLowboy,
		TruckDryVan,
	}
}

// TruckTypeFromString parses a wire value into a TruckType.
func TruckTypeFromString(s string) (TruckType, error) {
	t := TruckType(s)
	if err := t.Validate(); err != nil {
		return "", err
	}
	return t, nil
}

// Validate checks the truck type against the closed vocabulary.
func (t TruckType) Validate() error {
	for _, valid := range AllTruckTypes() {
		if t == valid {
			return nil
		}
	}
	return errs.NewValueIsInvalidError("truck type")
}

// String returns the wire representation.
func (t TruckType) String() string {
	return string(t)
}
