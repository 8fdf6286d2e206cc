package http

import (
	"errors"
	netHTTP "net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"fulfillment/internal/pkg/errs"
)

func TestStatusForError(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{
			name:   "missing object maps to 404",
			err:    errs.NewObjectNotFoundError("invoice", "42"),
			status: netHTTP.StatusNotFound,
		},
		{
			name:   "coverage conflict maps to 409",
			err:    errs.NewBusinessRuleError(errs.ErrAlreadyClaimed, "job order is covered"),
			status: netHTTP.StatusConflict,
		},
		{
			name:   "forbidden transition maps to 409",
			err:    errs.NewBusinessRuleError(errs.ErrInvalidTransition, "delivered to draft"),
			status: netHTTP.StatusConflict,
		},
		{
			name:   "overpayment maps to 409",
			err:    errs.NewBusinessRuleError(errs.ErrOverpayment, "amount exceeds balance"),
			status: netHTTP.StatusConflict,
		},
		{
			name:   "invalid value maps to 400",
			err:    errs.NewValueIsInvalidError("orderType"),
			status: netHTTP.StatusBadRequest,
		},
		{
			name:   "missing value maps to 400",
			err:    errs.NewValueIsRequiredError("reason"),
			status: netHTTP.StatusBadRequest,
		},
		{
			name:   "unclassified error maps to 500",
			err:    errors.New("connection reset"),
			status: netHTTP.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.status, statusForError(tt.err))
		})
	}
}
