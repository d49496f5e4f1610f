//go:build unit

package plot_test

import (
	"strings"
	"testing"

	"campsite-booking/internal/domain/plot"
	"campsite-booking/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*builder.PlotBuilder)
	errIs  error
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := builder.NewPlotBuilder()
			if tc.mutate != nil {
				b.With(tc.mutate)
			}
			actual, err := b.BuildDomain()
			if tc.errIs != nil {
				require.ErrorIs(t, err, tc.errIs)
				assert.Nil(t, actual)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, actual)
		})
	}
}

func TestPlot(t *testing.T) {
	t.Run("valid plot", func(t *testing.T) {
		actual, err := builder.NewPlotBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.Equal(t, "Riverside", actual.Name())
		assert.Equal(t, 4, actual.Capacity())
		assert.Equal(t, int64(1500), actual.PricePerPersonCents())
	})

	t.Run("name validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "trimmed name ok",
				mutate: func(b *builder.PlotBuilder) { b.WithName("  Pine Grove  ") },
			},
			{
				name:   "empty name rejected",
				mutate: func(b *builder.PlotBuilder) { b.WithName("") },
				errIs:  plot.ErrEmptyPlotName,
			},
			{
				name:   "whitespace-only name rejected",
				mutate: func(b *builder.PlotBuilder) { b.WithName("   ") },
				errIs:  plot.ErrEmptyPlotName,
			},
			{
				name:   "overlong name rejected",
				mutate: func(b *builder.PlotBuilder) { b.WithName(strings.Repeat("a", 256)) },
				errIs:  plot.ErrPlotNameTooLong,
			},
		})
	})

	t.Run("capacity validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "capacity one ok",
				mutate: func(b *builder.PlotBuilder) { b.WithCapacity(1) },
			},
			{
				name:   "zero capacity rejected",
				mutate: func(b *builder.PlotBuilder) { b.WithCapacity(0) },
				errIs:  plot.ErrInvalidCapacity,
			},
			{
				name:   "negative capacity rejected",
				mutate: func(b *builder.PlotBuilder) { b.WithCapacity(-2) },
				errIs:  plot.ErrInvalidCapacity,
			},
		})
	})

	t.Run("price validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "zero price rejected",
				mutate: func(b *builder.PlotBuilder) { b.WithPrice(0) },
				errIs:  plot.ErrInvalidUnitPrice,
			},
			{
				name:   "negative price rejected",
				mutate: func(b *builder.PlotBuilder) { b.WithPrice(-100) },
				errIs:  plot.ErrInvalidUnitPrice,
			},
		})
	})

	t.Run("occupancy check", func(t *testing.T) {
		p, err := builder.NewPlotBuilder().WithCapacity(4).BuildDomain()
		require.NoError(t, err)

		assert.True(t, p.CanAccommodate(1))
		assert.True(t, p.CanAccommodate(4))
		assert.False(t, p.CanAccommodate(5))
		assert.False(t, p.CanAccommodate(0))
	})
}
