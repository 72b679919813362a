package models

// PropertyKind is the typology of a property.
type PropertyKind string

const (
	KindApartment  PropertyKind = "apartment"
	KindPenthouse  PropertyKind = "penthouse"
	KindChalet     PropertyKind = "chalet"
	KindTerraced   PropertyKind = "terraced"
	KindStudio     PropertyKind = "studio"
	KindCommercial PropertyKind = "commercial"
	KindGarage     PropertyKind = "garage"
	KindLand       PropertyKind = "land"
)

// PropertyKinds lists every valid kind in display order. The first entry is
// the default applied when an unrecognized value reaches normalization.
var PropertyKinds = []PropertyKind{
	KindApartment,
	KindPenthouse,
	KindChalet,
	KindTerraced,
	KindStudio,
	KindCommercial,
	KindGarage,
	KindLand,
}

// DefaultPropertyKind is the fallback for values outside the enumeration.
const DefaultPropertyKind = KindApartment

// IsValid reports whether k is a member of the enumeration.
func (k PropertyKind) IsValid() bool {
	for _, v := range PropertyKinds {
		if k == v {
			return true
		}
	}
	return false
}

// Operation is the transaction kind of a listing.
type Operation string

const (
	OperationSale   Operation = "sale"
	OperationRental Operation = "rental"
	OperationShare  Operation = "share"
)

// DefaultOperation is the fallback for values outside the enumeration.
const DefaultOperation = OperationSale

// IsValid reports whether o is a member of the enumeration.
func (o Operation) IsValid() bool {
	switch o {
	case OperationSale, OperationRental, OperationShare:
		return true
	}
	return false
}

// Condition describes the state of repair of a property.
type Condition string

const (
	ConditionNew             Condition = "new"
	ConditionGood            Condition = "good"
	ConditionRenovated       Condition = "renovated"
	ConditionNeedsRenovation Condition = "needs-renovation"
)

// IsValid reports whether c is a member of the enumeration.
func (c Condition) IsValid() bool {
	switch c {
	case ConditionNew, ConditionGood, ConditionRenovated, ConditionNeedsRenovation:
		return true
	}
	return false
}

// EnergyStatus is the state of the energy performance certificate.
type EnergyStatus string

const (
	// EnergyStatusHas means the owner holds the certificate; rating,
	// consumption and emissions are required in that case.
	EnergyStatusHas     EnergyStatus = "has"
	EnergyStatusPending EnergyStatus = "pending"
	EnergyStatusExempt  EnergyStatus = "exempt"
)

// IsValid reports whether s is a member of the enumeration.
func (s EnergyStatus) IsValid() bool {
	switch s {
	case EnergyStatusHas, EnergyStatusPending, EnergyStatusExempt:
		return true
	}
	return false
}

// EnergyRating is the A-G certificate grade.
type EnergyRating string

// IsValid reports whether r is one of the grades A through G.
func (r EnergyRating) IsValid() bool {
	switch r {
	case "A", "B", "C", "D", "E", "F", "G":
		return true
	}
	return false
}

// Year built bounds enforced at normalization.
const (
	MinYearBuilt = 1800
)
