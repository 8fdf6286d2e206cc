package services_test

import (
	"testing"

	"fulfillment/internal/core/domain/model/joborder"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/require"
)

func ftlRef() joborder.Ref {
	return joborder.Ref{ID: kernel.NewUUID(), Type: joborder.FTL}
}

func ltlRef() joborder.Ref {
	return joborder.Ref{ID: kernel.NewUUID(), Type: joborder.LTL}
}

func TestGroupingValidator_ValidateAddition(t *testing.T) {
	validator := services.NewGroupingValidator()

	t.Run("ltl_orders_may_share", func(t *testing.T) {
		members := []joborder.Ref{ltlRef(), ltlRef()}

		require.NoError(t, validator.ValidateAddition(members, ltlRef()))
	})

	t.Run("ftl_alone_is_allowed", func(t *testing.T) {
		require.NoError(t, validator.ValidateAddition(nil, ftlRef()))
	})

	t.Run("ftl_member_blocks_any_addition", func(t *testing.T) {
		members := []joborder.Ref{ftlRef()}

		err := validator.ValidateAddition(members, ltlRef())

		require.ErrorIs(t, err, errs.ErrGroupingConflict)
	})

	t.Run("ftl_candidate_cannot_join_occupied_manifest", func(t *testing.T) {
		members := []joborder.Ref{ltlRef()}

		err := validator.ValidateAddition(members, ftlRef())

		require.ErrorIs(t, err, errs.ErrGroupingConflict)
	})

	t.Run("duplicate_member_is_rejected", func(t *testing.T) {
		ref := ltlRef()

		err := validator.ValidateAddition([]joborder.Ref{ref}, ref)

		require.ErrorIs(t, err, errs.ErrGroupingConflict)
	})
}

func TestGroupingValidator_ValidateSelection(t *testing.T) {
	validator := services.NewGroupingValidator()

	t.Run("accepts_several_ltl", func(t *testing.T) {
		require.NoError(t, validator.ValidateSelection(
			[]joborder.Ref{ltlRef(), ltlRef(), ltlRef()}))
	})

	t.Run("accepts_single_ftl", func(t *testing.T) {
		require.NoError(t, validator.ValidateSelection([]joborder.Ref{ftlRef()}))
	})

	t.Run("rejects_ftl_mixed_with_anything", func(t *testing.T) {
		err := validator.ValidateSelection([]joborder.Ref{ftlRef(), ltlRef()})

		require.ErrorIs(t, err, errs.ErrGroupingConflict)
	})

	t.Run("rejects_two_ftl", func(t *testing.T) {
		err := validator.ValidateSelection([]joborder.Ref{ftlRef(), ftlRef()})

		require.ErrorIs(t, err, errs.ErrGroupingConflict)
	})

	t.Run("rejects_empty_selection", func(t *testing.T) {
		err := validator.ValidateSelection(nil)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}
