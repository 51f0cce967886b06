package kernel_test

import (
	"testing"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPincode(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		p, err := kernel.NewPincode(" 560001 ")

		require.NoError(t, err)
		assert.Equal(t, "560001", p.String())
		assert.True(t, p.IsEqual(kernel.MustPincode("560001")))
		assert.False(t, p.IsEqual(kernel.MustPincode("560002")))
	})

	t.Run("required", func(t *testing.T) {
		_, err := kernel.NewPincode("  ")
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("malformed", func(t *testing.T) {
		for _, input := range []string{"56000", "5600011", "056001", "56A001"} {
			_, err := kernel.NewPincode(input)
			require.ErrorIs(t, err, errs.ErrValueIsInvalid, input)
		}
	})

	t.Run("zero value", func(t *testing.T) {
		var p kernel.Pincode
		assert.True(t, p.IsZero())
	})
}
