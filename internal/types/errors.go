package types

import "errors"

// Sentinel errors for catalog loading and request validation.
var (
	// ErrEmptySegmentID indicates a catalog record without an id.
	ErrEmptySegmentID = errors.New("segment id is empty")

	// ErrDuplicateSegmentID indicates two catalog records share an id.
	ErrDuplicateSegmentID = errors.New("duplicate segment id")

	// ErrInvalidCategory indicates a category outside the closed set.
	ErrInvalidCategory = errors.New("invalid segment category")

	// ErrInvalidActivationPath indicates an activation path outside the closed set.
	ErrInvalidActivationPath = errors.New("invalid activation path")

	// ErrInvalidDataSource indicates a data source outside the closed set.
	ErrInvalidDataSource = errors.New("invalid data source")

	// ErrMatchRateRange indicates a match rate range that is not 0 <= min <= max <= 100.
	ErrMatchRateRange = errors.New("match rate range must satisfy 0 <= min <= max <= 100")

	// ErrViewabilityRange indicates a viewability rate outside [0, 100].
	ErrViewabilityRange = errors.New("viewability rate must be within [0, 100]")

	// ErrNegativeValue indicates a negative CPM, audience size, setup time or cost premium.
	ErrNegativeValue = errors.New("value must be non-negative")

	// ErrEmptyCatalog indicates a catalog source produced no segments.
	ErrEmptyCatalog = errors.New("catalog is empty")

	// ErrInvalidBudget indicates a budget that is NaN or infinite.
	ErrInvalidBudget = errors.New("budget must be a finite number")

	// ErrInvalidModel indicates projection model shares or factors are inconsistent.
	ErrInvalidModel = errors.New("invalid projection model")
)
