package guard_test

import (
	"errors"
	"testing"

	"laundry/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errTicketNotConstructed = errors.New("ticket must be created via newTicket")

type ticket struct {
	number string
	guard  guard.ConstructorGuard
}

func newTicket(number string) ticket {
	return ticket{number: number, guard: guard.NewConstructorGuard()}
}

func (t ticket) Validate() error {
	return t.guard.Validate(errTicketNotConstructed)
}

func TestConstructorGuard_Validate(t *testing.T) {
	tests := []struct {
		name    string
		g       guard.ConstructorGuard
		passed  error
		wantErr error
	}{
		{name: "constructed with custom error", g: guard.NewConstructorGuard(), passed: errTicketNotConstructed},
		{name: "constructed with nil error", g: guard.NewConstructorGuard()},
		{name: "zero value returns passed error", passed: errTicketNotConstructed, wantErr: errTicketNotConstructed},
		{name: "zero value falls back to default", wantErr: guard.ErrDefaultConstructorGuard},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.g.Validate(tt.passed)
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestConstructorGuard_EmbeddedInOwner(t *testing.T) {
	require.NoError(t, newTicket("LD-20261019-0001").Validate())

	var zero ticket
	assert.ErrorIs(t, zero.Validate(), errTicketNotConstructed)
}
