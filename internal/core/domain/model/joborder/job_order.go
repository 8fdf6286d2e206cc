package joborder

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

// ErrJobOrderIsNotConstructed is returned when a JobOrder instance was not
// created through NewJobOrder or RestoreJobOrder.
var ErrJobOrderIsNotConstructed = errors.New(
	"JobOrder must be created via NewJobOrder or RestoreJobOrder constructor")

// JobOrder is the aggregate root for a requested shipment. It owns the order
// type, goods metrics, order value, transport assignment history, and the
// lifecycle status.
//
// Invariants:
//   - Must have a valid unique identifier
//   - Order type is FTL or LTL and never changes after creation
//   - At most one assignment is active at a time
//   - Status transitions follow the forward-only lifecycle in Status
//   - Can only be created through its constructors
type JobOrder struct {
	id          kernel.UUID
	orderType   OrderType
	status      Status
	assignments []Assignment
	goods       Goods
	orderValue  kernel.Money

	isConstructed bool
}

// Ref is a lightweight reference to a job order used by manifest grouping:
// the identifier plus the service type the grouping rules depend on.
type Ref struct {
	ID   kernel.UUID
	Type OrderType
}

// NewJobOrder creates a job order in Created status with no assignments.
//
// Example:
//
//	goods, _ := joborder.NewGoods(decimal.NewFromInt(1200), decimal.NewFromInt(8), 40)
//	jo, err := joborder.NewJobOrder(kernel.NewUUID(), joborder.FTL, goods, orderValue)
func NewJobOrder(id kernel.UUID, orderType OrderType, goods Goods, orderValue kernel.Money) (*JobOrder, error) {
	if err := errors.Join(
		id.Validate(),
		orderType.Validate(),
		goods.Validate(),
	); err != nil {
		return nil, err
	}

	if orderValue.IsNegative() {
		return nil, errs.NewValueIsInvalidError("orderValue")
	}

	return &JobOrder{
		id:            id,
		orderType:     orderType,
		status:        Created,
		goods:         goods,
		orderValue:    orderValue,
		isConstructed: true,
	}, nil
}

// RestoreJobOrder reconstructs a job order from persistence, including its
// status and assignment history. The same invariants apply as in NewJobOrder.
func RestoreJobOrder(
	id kernel.UUID,
	orderType OrderType,
	status Status,
	assignments []Assignment,
	goods Goods,
	orderValue kernel.Money,
) (*JobOrder, error) {
	if err := errors.Join(
		id.Validate(),
		orderType.Validate(),
		status.Validate(),
		goods.Validate(),
	); err != nil {
		return nil, err
	}

	active := 0
	for _, a := range assignments {
		if err := a.Validate(); err != nil {
			return nil, err
		}
		if a.Status() == AssignmentActive {
			active++
		}
	}
	if active > 1 {
		return nil, errs.NewValueIsInvalidError("assignments: more than one active assignment")
	}

	return &JobOrder{
		id:            id,
		orderType:     orderType,
		status:        status,
		assignments:   assignments,
		goods:         goods,
		orderValue:    orderValue,
		isConstructed: true,
	}, nil
}

// Validate ensures the JobOrder was created through a constructor. Called
// when reconstructing from persistence to guarantee data integrity.
func (j *JobOrder) Validate() error {
	if j == nil || !j.isConstructed {
		return ErrJobOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two job orders by identifier.
func (j *JobOrder) IsEqual(other *JobOrder) bool {
	return other != nil && j.id.IsEqual(other.id)
}

// ID returns the job order's unique identifier.
func (j *JobOrder) ID() kernel.UUID {
	return j.id
}

// OrderType returns the immutable service type.
func (j *JobOrder) OrderType() OrderType {
	return j.orderType
}

// Status returns the current lifecycle status.
func (j *JobOrder) Status() Status {
	return j.status
}

// Goods returns the shipment metrics.
func (j *JobOrder) Goods() Goods {
	return j.goods
}

// OrderValue returns the declared value of the order.
func (j *JobOrder) OrderValue() kernel.Money {
	return j.orderValue
}

// Assignments returns the full assignment history, oldest first.
func (j *JobOrder) Assignments() []Assignment {
	return j.assignments
}

// ActiveAssignment returns the assignment with Active status, or, when none
// is active, the first assignment on record, or nil when there is none.
// The fallback mirrors how dispatch documents pick up transport when an
// assignment was recorded without an explicit status.
func (j *JobOrder) ActiveAssignment() *Assignment {
	for i := range j.assignments {
		if j.assignments[i].Status() == AssignmentActive {
			return &j.assignments[i]
		}
	}
	if len(j.assignments) > 0 {
		return &j.assignments[0]
	}
	return nil
}

// Ref returns the grouping reference for this job order.
func (j *JobOrder) Ref() Ref {
	return Ref{ID: j.id, Type: j.orderType}
}

// AssignTransport binds a driver/vehicle pair. Any previously active
// assignment is released and kept in the history. The first assignment moves
// the job order from Created to Assigned; reassignment in Assigned status is
// allowed. Assignment in later statuses fails: transport is fixed once the
// goods are picked up.
func (j *JobOrder) AssignTransport(driverID, vehicleID string) error {
	if j.status != Created && j.status != Assigned {
		return errs.NewBusinessRuleError(errs.ErrInvalidTransition,
			"transport can only be assigned while the job order is Created or Assigned")
	}

	assignment, err := NewAssignment(driverID, vehicleID)
	if err != nil {
		return err
	}

	for i := range j.assignments {
		if j.assignments[i].Status() == AssignmentActive {
			j.assignments[i] = j.assignments[i].Release()
		}
	}
	j.assignments = append(j.assignments, assignment)

	if j.status == Created {
		j.status = Assigned
	}
	return nil
}

// Advance moves the job order to the target status, enforcing the lifecycle
// state machine. Advancing to Cancelled is allowed from any non-terminal
// state.
func (j *JobOrder) Advance(target Status) error {
	newStatus, err := j.status.TransitionTo(target)
	if err != nil {
		return err
	}

	j.status = newStatus
	return nil
}

// Cancel withdraws the job order. Fails with an InvalidTransition kind when
// the job order is already Completed or Cancelled.
func (j *JobOrder) Cancel() error {
	return j.Advance(Cancelled)
}
