package deliveryorder_test

import (
	"testing"
	"time"

	"fulfillment/internal/core/domain/model/deliveryorder"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func joSource(t *testing.T) deliveryorder.Source {
	t.Helper()
	source, err := deliveryorder.NewJobOrderSource(kernel.NewUUID())
	require.NoError(t, err)
	return source
}

func mfSource(t *testing.T) deliveryorder.Source {
	t.Helper()
	source, err := deliveryorder.NewManifestSource(kernel.NewUUID(), kernel.NewUUID())
	require.NoError(t, err)
	return source
}

func testSchedule() deliveryorder.Schedule {
	return deliveryorder.Schedule{DODate: time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)}
}

func newTestDeliveryOrder(t *testing.T, source deliveryorder.Source) *deliveryorder.DeliveryOrder {
	t.Helper()
	do, err := deliveryorder.NewDeliveryOrder(
		kernel.NewUUID(), source, "DRV001", "VEH001",
		deliveryorder.Normal, "ambient", testSchedule())
	require.NoError(t, err)
	return do
}

func TestNewDeliveryOrder(t *testing.T) {
	t.Run("job_order_source_keeps_transport_editable", func(t *testing.T) {
		do := newTestDeliveryOrder(t, joSource(t))

		assert.Equal(t, deliveryorder.Pending, do.Status())
		assert.False(t, do.TransportLocked())
		assert.Equal(t, "DRV001", do.DriverID())
	})

	t.Run("manifest_source_locks_transport", func(t *testing.T) {
		do := newTestDeliveryOrder(t, mfSource(t))

		assert.True(t, do.TransportLocked())
	})

	t.Run("missing_driver_fails_with_missing_resource", func(t *testing.T) {
		_, err := deliveryorder.NewDeliveryOrder(
			kernel.NewUUID(), joSource(t), "", "VEH001",
			deliveryorder.Normal, "", testSchedule())

		require.ErrorIs(t, err, errs.ErrMissingResource)
	})

	t.Run("missing_vehicle_fails_with_missing_resource", func(t *testing.T) {
		_, err := deliveryorder.NewDeliveryOrder(
			kernel.NewUUID(), joSource(t), "DRV001", "",
			deliveryorder.Normal, "", testSchedule())

		require.ErrorIs(t, err, errs.ErrMissingResource)
	})

	t.Run("requires_do_date", func(t *testing.T) {
		_, err := deliveryorder.NewDeliveryOrder(
			kernel.NewUUID(), joSource(t), "DRV001", "VEH001",
			deliveryorder.Normal, "", deliveryorder.Schedule{})

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("zero_value_fails_validate", func(t *testing.T) {
		var do deliveryorder.DeliveryOrder
		require.ErrorIs(t, do.Validate(), deliveryorder.ErrDeliveryOrderIsNotConstructed)
	})
}

func TestSource(t *testing.T) {
	t.Run("manifest_source_requires_selected_job_order", func(t *testing.T) {
		_, err := deliveryorder.NewManifestSource(kernel.NewUUID(), kernel.UUID{})

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("covered_job_order_for_jo_source", func(t *testing.T) {
		joID := kernel.NewUUID()
		source, err := deliveryorder.NewJobOrderSource(joID)
		require.NoError(t, err)

		assert.True(t, source.CoveredJobOrderID().IsEqual(joID))
		_, hasSelection := source.SelectedJobOrderID()
		assert.False(t, hasSelection)
	})

	t.Run("covered_job_order_for_mf_source", func(t *testing.T) {
		selected := kernel.NewUUID()
		source, err := deliveryorder.NewManifestSource(kernel.NewUUID(), selected)
		require.NoError(t, err)

		assert.True(t, source.CoveredJobOrderID().IsEqual(selected))
	})

	t.Run("source_type_validation", func(t *testing.T) {
		assert.NoError(t, deliveryorder.SourceJobOrder.Validate())
		assert.NoError(t, deliveryorder.SourceManifest.Validate())
		assert.ErrorIs(t, deliveryorder.UnknownSource.Validate(), errs.ErrValueIsInvalid)
		assert.ErrorIs(t, deliveryorder.SourceType(99).Validate(), errs.ErrValueIsInvalid)
	})
}

func TestDeliveryOrder_OverrideTransport(t *testing.T) {
	t.Run("allowed_for_jo_source_while_pending", func(t *testing.T) {
		do := newTestDeliveryOrder(t, joSource(t))

		require.NoError(t, do.OverrideTransport("DRV009", "VEH009"))

		assert.Equal(t, "DRV009", do.DriverID())
		assert.Equal(t, "VEH009", do.VehicleID())
	})

	t.Run("locked_for_mf_source", func(t *testing.T) {
		do := newTestDeliveryOrder(t, mfSource(t))

		err := do.OverrideTransport("DRV009", "VEH009")

		require.ErrorIs(t, err, errs.ErrEditLocked)
		assert.Equal(t, "DRV001", do.DriverID())
	})

	t.Run("locked_after_dispatch", func(t *testing.T) {
		do := newTestDeliveryOrder(t, joSource(t))
		require.NoError(t, do.Advance(deliveryorder.InTransit, time.Now()))

		require.ErrorIs(t, do.OverrideTransport("DRV009", "VEH009"), errs.ErrEditLocked)
	})
}

func TestDeliveryOrder_Advance(t *testing.T) {
	now := time.Date(2026, 3, 12, 15, 0, 0, 0, time.UTC)

	t.Run("pending_to_delivered_via_transit", func(t *testing.T) {
		do := newTestDeliveryOrder(t, joSource(t))

		require.NoError(t, do.Advance(deliveryorder.InTransit, now))
		require.NoError(t, do.Advance(deliveryorder.AtDestination, now))
		require.NoError(t, do.Advance(deliveryorder.Delivered, now))

		assert.Equal(t, deliveryorder.Delivered, do.Status())
		require.NotNil(t, do.Schedule().DeliveredDate)
		assert.Equal(t, now, *do.Schedule().DeliveredDate)
	})

	t.Run("in_transit_may_skip_to_delivered", func(t *testing.T) {
		do := newTestDeliveryOrder(t, joSource(t))
		require.NoError(t, do.Advance(deliveryorder.InTransit, now))

		require.NoError(t, do.Advance(deliveryorder.Delivered, now))
	})

	t.Run("pending_cannot_jump_to_delivered", func(t *testing.T) {
		do := newTestDeliveryOrder(t, joSource(t))

		require.ErrorIs(t, do.Advance(deliveryorder.Delivered, now), errs.ErrInvalidTransition)
	})

	t.Run("terminal_state_reports_invalid_transition", func(t *testing.T) {
		do := newTestDeliveryOrder(t, joSource(t))
		require.NoError(t, do.Advance(deliveryorder.InTransit, now))
		require.NoError(t, do.Advance(deliveryorder.Delivered, now))

		require.ErrorIs(t, do.Advance(deliveryorder.InTransit, now), errs.ErrInvalidTransition)
	})
}

func TestDeliveryOrder_Cancel(t *testing.T) {
	t.Run("cancels_pre_delivery_with_reason", func(t *testing.T) {
		do := newTestDeliveryOrder(t, joSource(t))
		require.NoError(t, do.Advance(deliveryorder.InTransit, time.Now()))

		require.NoError(t, do.Cancel("consignee refused the goods"))

		assert.Equal(t, deliveryorder.Cancelled, do.Status())
		assert.Equal(t, "consignee refused the goods", do.CancellationReason())
	})

	t.Run("requires_reason", func(t *testing.T) {
		do := newTestDeliveryOrder(t, joSource(t))

		require.ErrorIs(t, do.Cancel(""), errs.ErrValueIsRequired)
	})

	t.Run("delivered_cannot_be_cancelled", func(t *testing.T) {
		do := newTestDeliveryOrder(t, joSource(t))
		require.NoError(t, do.Advance(deliveryorder.InTransit, time.Now()))
		require.NoError(t, do.Advance(deliveryorder.Delivered, time.Now()))

		require.ErrorIs(t, do.Cancel("too late"), errs.ErrCancellationNotAllowed)
	})
}
