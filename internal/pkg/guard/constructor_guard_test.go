package guard_test

import (
	"errors"
	"testing"

	"marketplace/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructorGuard_Validate(t *testing.T) {
	errNotConstructed := errors.New("coupon is not constructed")

	tests := []struct {
		name            string
		guard           guard.ConstructorGuard
		validationError error
		want            error
	}{
		{
			name:            "constructed guard passes",
			guard:           guard.NewConstructorGuard(),
			validationError: errNotConstructed,
			want:            nil,
		},
		{
			name:            "constructed guard passes with nil error",
			guard:           guard.NewConstructorGuard(),
			validationError: nil,
			want:            nil,
		},
		{
			name:            "zero value guard returns the supplied error",
			guard:           guard.ConstructorGuard{},
			validationError: errNotConstructed,
			want:            errNotConstructed,
		},
		{
			name:            "zero value guard falls back to the default error",
			guard:           guard.ConstructorGuard{},
			validationError: nil,
			want:            guard.ErrDefaultConstructorGuard,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.guard.Validate(tt.validationError)
			if tt.want == nil {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Equal(t, tt.want, err)
		})
	}
}

func TestDefaultConstructorGuardError(t *testing.T) {
	require.Error(t, guard.ErrDefaultConstructorGuard)
	assert.Equal(t, "object must be created via its constructor",
		guard.ErrDefaultConstructorGuard.Error())
}

// A guarded domain object created by direct struct initialization must fail
// validation, while the same object built through its constructor passes.
func TestConstructorGuard_EmbeddedInDomainObject(t *testing.T) {
	type coupon struct {
		code     string
		discount int
		guard    guard.ConstructorGuard
	}

	errCouponNotConstructed := errors.New("coupon must be created via newCoupon")

	newCoupon := func(code string, discount int) (coupon, error) {
		if code == "" {
			return coupon{}, errors.New("coupon code is required")
		}
		if discount <= 0 || discount > 100 {
			return coupon{}, errors.New("discount must be between 1 and 100")
		}
		return coupon{code: code, discount: discount, guard: guard.NewConstructorGuard()}, nil
	}

	validate := func(c coupon) error {
		return c.guard.Validate(errCouponNotConstructed)
	}

	t.Run("constructed coupon validates", func(t *testing.T) {
		c, err := newCoupon("TET2026", 15)

		require.NoError(t, err)
		require.NoError(t, validate(c))
		assert.Equal(t, "TET2026", c.code)
		assert.Equal(t, 15, c.discount)
	})

	t.Run("zero value coupon is rejected", func(t *testing.T) {
		var c coupon

		err := validate(c)

		require.Error(t, err)
		assert.Equal(t, errCouponNotConstructed, err)
	})

	t.Run("constructor enforces its own rules first", func(t *testing.T) {
		_, err := newCoupon("", 15)
		require.ErrorContains(t, err, "coupon code is required")

		_, err = newCoupon("TET2026", 0)
		require.ErrorContains(t, err, "discount must be between 1 and 100")
	})
}

func TestConstructorGuard_CopySemantics(t *testing.T) {
	errNotConstructed := errors.New("not constructed")

	original := guard.NewConstructorGuard()
	copied := original

	require.NoError(t, original.Validate(errNotConstructed))
	require.NoError(t, copied.Validate(errNotConstructed))
}

func TestConstructorGuard_ConcurrentValidate(t *testing.T) {
	g := guard.NewConstructorGuard()
	errNotConstructed := errors.New("not constructed")

	done := make(chan struct{})
	for range 50 {
		go func() {
			defer func() { done <- struct{}{} }()
			for range 500 {
				assert.NoError(t, g.Validate(errNotConstructed))
			}
		}()
	}
	for range 50 {
		<-done
	}
}
