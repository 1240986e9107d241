package valuation

import "fmt"

// MalformedInputError identifies an upstream record missing a required
// field. Per spec.md 7, these are collected and reported in aggregate;
// the run aborts before pool construction if any occur.
type MalformedInputError struct {
	RecordID string
	Field    string
}

func (e *MalformedInputError) Error() string {
	return fmt.Sprintf("malformed input: record %q missing field %q", e.RecordID, e.Field)
}

// NewMalformedInputError builds a MalformedInputError.
func NewMalformedInputError(recordID, field string) error {
	return &MalformedInputError{RecordID: recordID, Field: field}
}

// IsMalformedInput reports whether err is a MalformedInputError.
func IsMalformedInput(err error) bool {
	_, ok := err.(*MalformedInputError)
	return ok
}

// BadConfigError identifies an invalid configuration: category weights
// that don't sum to 1.0, or a rostered dollar total of zero that the
// Validator cannot rescale. An unknown category named in the league file
// is not reported here; CategorySet drops it.
type BadConfigError struct {
	Reason string
}

func (e *BadConfigError) Error() string {
	return fmt.Sprintf("bad config: %s", e.Reason)
}

// NewBadConfigError builds a BadConfigError.
func NewBadConfigError(reason string) error {
	return &BadConfigError{Reason: reason}
}

// IsBadConfig reports whether err is a BadConfigError.
func IsBadConfig(err error) bool {
	_, ok := err.(*BadConfigError)
	return ok
}

// InsufficientPoolError identifies a position with fewer eligible
// players than roster slots.
type InsufficientPoolError struct {
	Position  Position
	Eligible  int
	Slots     int
}

func (e *InsufficientPoolError) Error() string {
	return fmt.Sprintf("insufficient pool at %s: %d eligible, %d slots needed", e.Position, e.Eligible, e.Slots)
}

// NewInsufficientPoolError builds an InsufficientPoolError.
func NewInsufficientPoolError(position Position, eligible, slots int) error {
	return &InsufficientPoolError{Position: position, Eligible: eligible, Slots: slots}
}

// IsInsufficientPool reports whether err is an InsufficientPoolError.
func IsInsufficientPool(err error) bool {
	_, ok := err.(*InsufficientPoolError)
	return ok
}

// NumericalFailureError identifies a non-finite value (NaN/Inf) produced
// during computation, naming the player, pool, and category.
type NumericalFailureError struct {
	PlayerID PlayerID
	Position Position
	Category Category
}

func (e *NumericalFailureError) Error() string {
	return fmt.Sprintf("numerical failure: player %s, pool %s, category %s produced a non-finite value", e.PlayerID, e.Position, e.Category)
}

// NewNumericalFailureError builds a NumericalFailureError.
func NewNumericalFailureError(playerID PlayerID, position Position, category Category) error {
	return &NumericalFailureError{PlayerID: playerID, Position: position, Category: category}
}

// IsNumericalFailure reports whether err is a NumericalFailureError.
func IsNumericalFailure(err error) bool {
	_, ok := err.(*NumericalFailureError)
	return ok
}

// OrphanPlayerError identifies a projected player who never landed in
// any pool's tier — a Stage B/C/D/E bug, since every eligible player
// should be assigned a primary position and tiered.
type OrphanPlayerError struct {
	PlayerID PlayerID
}

func (e *OrphanPlayerError) Error() string {
	return fmt.Sprintf("orphan player: %s was never assigned a tier", e.PlayerID)
}

// NewOrphanPlayerError builds an OrphanPlayerError.
func NewOrphanPlayerError(id PlayerID) error {
	return &OrphanPlayerError{PlayerID: id}
}

// IsOrphanPlayer reports whether err is an OrphanPlayerError.
func IsOrphanPlayer(err error) bool {
	_, ok := err.(*OrphanPlayerError)
	return ok
}

// MultiError aggregates multiple per-record errors (spec.md 7's
// propagation policy: per-record shape errors are collected and reported
// together, not surfaced one at a time).
type MultiError struct {
	Errors []error
}

func (e *MultiError) Error() string {
	if len(e.Errors) == 1 {
		return e.Errors[0].Error()
	}
	return fmt.Sprintf("%d errors, first: %s", len(e.Errors), e.Errors[0].Error())
}

// Unwrap exposes the wrapped errors for errors.Is/As style inspection.
func (e *MultiError) Unwrap() []error {
	return e.Errors
}
