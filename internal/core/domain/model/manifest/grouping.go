package manifest

import (
	"fmt"

	"fulfillment/internal/core/domain/model/joborder"
	"fulfillment/internal/pkg/errs"
)

// ValidateAddition checks whether candidate may join the current selection of
// job orders. The check is pure and side-effect-free so that it can run on
// every incremental addition, before any network round-trip:
//
//   - An FTL member fills its selection exclusively; once present, nothing
//     else may be added.
//   - An FTL candidate may only start an empty selection; adding it to any
//     non-empty group is invalid regardless of the members' types.
//   - LTL candidates combine freely with existing LTL members.
//
// Violations are reported as ErrGroupingConflict kinds with the offending
// job order named in the reason.
func ValidateAddition(current []joborder.Ref, candidate joborder.Ref) error {
	if err := candidate.ID.Validate(); err != nil {
		return err
	}
	if err := candidate.Type.Validate(); err != nil {
		return err
	}

	for _, member := range current {
		if member.ID.IsEqual(candidate.ID) {
			return errs.NewBusinessRuleError(errs.ErrGroupingConflict,
				fmt.Sprintf("job order %s is already part of the selection", candidate.ID))
		}
		if member.Type == joborder.FTL {
			return errs.NewBusinessRuleError(errs.ErrGroupingConflict,
				fmt.Sprintf("job order %s is FTL and fills the manifest exclusively", member.ID))
		}
	}

	if candidate.Type == joborder.FTL && len(current) > 0 {
		return errs.NewBusinessRuleError(errs.ErrGroupingConflict,
			fmt.Sprintf("FTL job order %s cannot join a non-empty selection", candidate.ID))
	}

	return nil
}

// ValidateSelection checks a complete selection by replaying every member
// through ValidateAddition. Used on final submission as the authoritative
// server-side check mirroring the incremental client-side one.
func ValidateSelection(selection []joborder.Ref) error {
	if len(selection) == 0 {
		return errs.NewValueIsRequiredError("selection: at least one job order")
	}

	accepted := make([]joborder.Ref, 0, len(selection))
	for _, candidate := range selection {
		if err := ValidateAddition(accepted, candidate); err != nil {
			return err
		}
		accepted = append(accepted, candidate)
	}
	return nil
}
