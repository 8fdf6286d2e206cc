package joborder_test

import (
	"testing"

	"fulfillment/internal/core/domain/model/joborder"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_String(t *testing.T) {
	cases := map[joborder.Status]string{
		joborder.Created:   "Created",
		joborder.Assigned:  "Assigned",
		joborder.PickedUp:  "PickedUp",
		joborder.InTransit: "InTransit",
		joborder.Delivered: "Delivered",
		joborder.Completed: "Completed",
		joborder.Cancelled: "Cancelled",
		joborder.Status(42): "Unknown",
	}

	for status, expected := range cases {
		assert.Equal(t, expected, status.String())
	}
}

func TestStatus_TransitionTo_ForwardPath(t *testing.T) {
	path := []joborder.Status{
		joborder.Created,
		joborder.Assigned,
		joborder.PickedUp,
		joborder.InTransit,
		joborder.Delivered,
		joborder.Completed,
	}

	for i := 0; i < len(path)-1; i++ {
		next, err := path[i].TransitionTo(path[i+1])
		require.NoError(t, err, "from %s to %s", path[i], path[i+1])
		assert.Equal(t, path[i+1], next)
	}
}

func TestStatus_TransitionTo_RejectsSkips(t *testing.T) {
	_, err := joborder.Created.TransitionTo(joborder.InTransit)

	require.ErrorIs(t, err, errs.ErrInvalidTransition)
}

func TestStatus_TransitionTo_RejectsBackward(t *testing.T) {
	_, err := joborder.Delivered.TransitionTo(joborder.PickedUp)

	require.ErrorIs(t, err, errs.ErrInvalidTransition)
}

func TestStatus_TransitionTo_Cancellation(t *testing.T) {
	t.Run("allowed_from_any_non_terminal_state", func(t *testing.T) {
		for _, status := range []joborder.Status{
			joborder.Created, joborder.Assigned, joborder.PickedUp,
			joborder.InTransit, joborder.Delivered,
		} {
			next, err := status.TransitionTo(joborder.Cancelled)
			require.NoError(t, err, "from %s", status)
			assert.Equal(t, joborder.Cancelled, next)
		}
	})

	t.Run("rejected_from_terminal_states", func(t *testing.T) {
		for _, status := range []joborder.Status{joborder.Completed, joborder.Cancelled} {
			_, err := status.TransitionTo(joborder.Cancelled)
			require.ErrorIs(t, err, errs.ErrInvalidTransition, "from %s", status)
		}
	})
}

func TestStatus_IsTerminal(t *testing.T) {
	assert.True(t, joborder.Completed.IsTerminal())
	assert.True(t, joborder.Cancelled.IsTerminal())
	assert.False(t, joborder.Delivered.IsTerminal())
	assert.False(t, joborder.Created.IsTerminal())
}

func TestStatus_Validate(t *testing.T) {
	require.NoError(t, joborder.Created.Validate())
	require.NoError(t, joborder.Cancelled.Validate())
	require.Error(t, joborder.Unknown.Validate())
	require.Error(t, joborder.Status(99).Validate())
}
