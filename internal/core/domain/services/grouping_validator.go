package services

import (
	"fulfillment/internal/core/domain/model/joborder"
	"fulfillment/internal/core/domain/model/manifest"
)

// GroupingValidator is a domain service enforcing the truckload grouping
// rules for manifest composition.
//
// Business rules:
//   - An FTL job order occupies the whole vehicle and must travel alone
//   - LTL job orders may share a manifest in any number
//   - A job order appears in a manifest at most once
//
// Example usage:
//
//	validator := services.NewGroupingValidator()
//	if err := validator.ValidateAddition(mf.JobOrders(), jo.Ref()); err != nil {
//	    // errors.Is(err, errs.ErrGroupingConflict)
//	    return err
//	}
type GroupingValidator struct{}

// NewGroupingValidator creates a new GroupingValidator instance.
func NewGroupingValidator() GroupingValidator {
	return GroupingValidator{}
}

// ValidateAddition checks whether the candidate job order may join a
// manifest that already contains the given members.
func (v GroupingValidator) ValidateAddition(current []joborder.Ref, candidate joborder.Ref) error {
	return manifest.ValidateAddition(current, candidate)
}

// ValidateSelection checks whether a full selection of job orders can form
// a manifest together. The selection must be non-empty and every member
// must be admissible against the ones before it.
func (v GroupingValidator) ValidateSelection(selection []joborder.Ref) error {
	return manifest.ValidateSelection(selection)
}
