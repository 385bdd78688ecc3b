package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/srivari/hall-booking-api/internal/model"
)

func TestInitialStatus(t *testing.T) {
	assert.Equal(t, model.StatusPending, InitialStatus())
}

func TestParseTransitionTarget(t *testing.T) {
	tests := []struct {
		raw     string
		want    string
		wantErr bool
	}{
		{raw: "approved", want: model.StatusApproved},
		{raw: "REJECTED", want: model.StatusRejected},
		{raw: "  Pending ", want: model.StatusPending},
		{raw: "cancelled", wantErr: true},
		{raw: "confirmed", wantErr: true},
		{raw: "", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := ParseTransitionTarget(tt.raw)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidStatus)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
