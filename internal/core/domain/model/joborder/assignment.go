package joborder

import (
	"fmt"

	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

// AssignmentStatus marks whether a transport assignment is currently in force.
type AssignmentStatus int

const (
	// AssignmentUnknown represents an invalid assignment status.
	AssignmentUnknown AssignmentStatus = iota

	// AssignmentActive is the assignment currently bound to the job order.
	// At most one assignment is active at a time.
	AssignmentActive

	// AssignmentReleased is a superseded assignment kept for history.
	AssignmentReleased
)

// String returns "Active", "Released", or "Unknown".
func (s AssignmentStatus) String() string {
	switch s {
	case AssignmentActive:
		return "Active"
	case AssignmentReleased:
		return "Released"
	default:
		return "Unknown"
	}
}

// Assignment is a value object binding a driver/vehicle pair to a job order.
// Driver and vehicle identifiers are external resource codes (e.g. "DRV001",
// "VEH001") and must be non-empty.
type Assignment struct {
	driverID  string
	vehicleID string
	status    AssignmentStatus

	guard guard.ConstructorGuard
}

// ErrAssignmentIsNotConstructed is returned when an Assignment was not created
// through NewAssignment or RestoreAssignment.
var ErrAssignmentIsNotConstructed = errs.NewValueIsRequiredError(
	"Assignment must be created via NewAssignment or RestoreAssignment")

// NewAssignment creates an active assignment for the given driver and vehicle.
func NewAssignment(driverID, vehicleID string) (Assignment, error) {
	return RestoreAssignment(driverID, vehicleID, AssignmentActive)
}

// RestoreAssignment reconstructs an assignment from persistence with an
// explicit status.
func RestoreAssignment(driverID, vehicleID string, status AssignmentStatus) (Assignment, error) {
	if driverID == "" {
		return Assignment{}, errs.NewValueIsRequiredError("driverId")
	}
	if vehicleID == "" {
		return Assignment{}, errs.NewValueIsRequiredError("vehicleId")
	}
	if status != AssignmentActive && status != AssignmentReleased {
		return Assignment{}, errs.NewValueIsInvalidErrorWithCause("assignmentStatus",
			fmt.Errorf("%d is not a valid assignment status", status))
	}

	return Assignment{
		driverID:  driverID,
		vehicleID: vehicleID,
		status:    status,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the assignment was created through a constructor.
func (a Assignment) Validate() error {
	return a.guard.Validate(ErrAssignmentIsNotConstructed)
}

// DriverID returns the assigned driver's resource code.
func (a Assignment) DriverID() string {
	return a.driverID
}

// VehicleID returns the assigned vehicle's resource code.
func (a Assignment) VehicleID() string {
	return a.vehicleID
}

// Status returns whether the assignment is active or released.
func (a Assignment) Status() AssignmentStatus {
	return a.status
}

// Release returns a copy of the assignment marked as released.
func (a Assignment) Release() Assignment {
	released := a
	released.status = AssignmentReleased
	return released
}
