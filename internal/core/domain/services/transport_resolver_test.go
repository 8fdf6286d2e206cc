package services_test

import (
	"testing"

	"fulfillment/internal/core/domain/model/joborder"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/manifest"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newJobOrder(t *testing.T) *joborder.JobOrder {
	t.Helper()
	goods, err := joborder.NewGoods(decimal.NewFromInt(500), decimal.NewFromInt(3), 10)
	require.NoError(t, err)
	jo, err := joborder.NewJobOrder(
		kernel.NewUUID(), joborder.LTL, goods, kernel.NewMoneyFromInt(1_000_000))
	require.NoError(t, err)
	return jo
}

func newManifest(t *testing.T) *manifest.Manifest {
	t.Helper()
	mf, err := manifest.NewManifest(kernel.NewUUID(), []joborder.Ref{ltlRef(), ltlRef()})
	require.NoError(t, err)
	return mf
}

func TestTransportResolver_ResolveFromJobOrder(t *testing.T) {
	resolver := services.NewTransportResolver()

	t.Run("assigned_job_order_yields_editable_transport", func(t *testing.T) {
		jo := newJobOrder(t)
		require.NoError(t, jo.AssignTransport("DRV-7", "VEH-12"))

		res, err := resolver.ResolveFromJobOrder(jo)
		require.NoError(t, err)

		assert.Equal(t, "DRV-7", res.DriverID)
		assert.Equal(t, "VEH-12", res.VehicleID)
		assert.True(t, res.Editable)
	})

	t.Run("reassignment_yields_the_latest_pair", func(t *testing.T) {
		jo := newJobOrder(t)
		require.NoError(t, jo.AssignTransport("DRV-7", "VEH-12"))
		require.NoError(t, jo.AssignTransport("DRV-9", "VEH-03"))

		res, err := resolver.ResolveFromJobOrder(jo)
		require.NoError(t, err)

		assert.Equal(t, "DRV-9", res.DriverID)
		assert.Equal(t, "VEH-03", res.VehicleID)
	})

	t.Run("released_history_falls_back_to_first_assignment", func(t *testing.T) {
		released, err := joborder.RestoreAssignment("DRV-5", "VEH-05", joborder.AssignmentReleased)
		require.NoError(t, err)
		goods, err := joborder.NewGoods(decimal.NewFromInt(500), decimal.NewFromInt(3), 10)
		require.NoError(t, err)
		jo, err := joborder.RestoreJobOrder(
			kernel.NewUUID(), joborder.LTL, joborder.Assigned,
			[]joborder.Assignment{released}, goods, kernel.NewMoneyFromInt(1_000_000))
		require.NoError(t, err)

		res, err := resolver.ResolveFromJobOrder(jo)
		require.NoError(t, err)

		assert.Equal(t, "DRV-5", res.DriverID)
		assert.Equal(t, "VEH-05", res.VehicleID)
		assert.True(t, res.Editable)
	})

	t.Run("unassigned_job_order_yields_empty_editable_transport", func(t *testing.T) {
		jo := newJobOrder(t)

		res, err := resolver.ResolveFromJobOrder(jo)
		require.NoError(t, err)

		assert.Empty(t, res.DriverID)
		assert.Empty(t, res.VehicleID)
		assert.True(t, res.Editable)
	})

	t.Run("not_constructed_job_order_fails_validation", func(t *testing.T) {
		_, err := resolver.ResolveFromJobOrder(&joborder.JobOrder{})

		require.ErrorIs(t, err, joborder.ErrJobOrderIsNotConstructed)
	})
}

func TestTransportResolver_ResolveFromManifest(t *testing.T) {
	resolver := services.NewTransportResolver()

	t.Run("bound_manifest_yields_locked_transport", func(t *testing.T) {
		mf := newManifest(t)
		require.NoError(t, mf.BindTransport("DRV-1", "VEH-1"))

		res, err := resolver.ResolveFromManifest(mf)
		require.NoError(t, err)

		assert.Equal(t, "DRV-1", res.DriverID)
		assert.Equal(t, "VEH-1", res.VehicleID)
		assert.False(t, res.Editable)
	})

	t.Run("unbound_manifest_fails", func(t *testing.T) {
		mf := newManifest(t)

		_, err := resolver.ResolveFromManifest(mf)

		require.ErrorIs(t, err, errs.ErrMissingResource)
	})
}
