package airdrop_test

import (
	"math"
	"math/big"
	"testing"

	"github.com/buythedibs/az-airdrop/airdrop"
	"github.com/stretchr/testify/require"
)

func TestClaimableToDate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name            string
		totalAllocation int64
		vestingStart    uint64
		cliffDuration   uint64
		vestingDuration uint64
		now             uint64
		expected        int64
	}{
		{
			name:            "before vesting start",
			totalAllocation: 10000,
			vestingStart:    1000,
			vestingDuration: 1000,
			now:             999,
			expected:        0,
		},
		{
			name:            "just before cliff elapses",
			totalAllocation: 10000,
			vestingStart:    1000,
			cliffDuration:   500,
			vestingDuration: 1000,
			now:             1499,
			expected:        0,
		},
		{
			name:            "at cliff boundary ramp counts from vesting start",
			totalAllocation: 10000,
			vestingStart:    1000,
			cliffDuration:   500,
			vestingDuration: 1000,
			now:             1500,
			expected:        5000,
		},
		{
			name:            "at schedule end",
			totalAllocation: 10000,
			vestingStart:    1000,
			cliffDuration:   500,
			vestingDuration: 1000,
			now:             2000,
			expected:        10000,
		},
		{
			name:            "long after schedule end",
			totalAllocation: 10000,
			vestingStart:    1000,
			cliffDuration:   500,
			vestingDuration: 1000,
			now:             3000,
			expected:        10000,
		},
		{
			name:            "midway with no cliff",
			totalAllocation: 1000,
			vestingStart:    0,
			vestingDuration: 100,
			now:             50,
			expected:        500,
		},
		{
			name:            "zero duration is fully vested at start",
			totalAllocation: 777,
			vestingStart:    100,
			vestingDuration: 0,
			now:             100,
			expected:        777,
		},
		{
			name:            "truncating division never over-allocates",
			totalAllocation: 10,
			vestingStart:    0,
			vestingDuration: 3,
			now:             1,
			expected:        3,
		},
		{
			name:            "truncation remainder pays out at schedule end",
			totalAllocation: 10,
			vestingStart:    0,
			vestingDuration: 3,
			now:             3,
			expected:        10,
		},
		{
			name:            "cliff near uint64 max does not wrap to vested",
			totalAllocation: 1000,
			vestingStart:    math.MaxUint64 - 10,
			cliffDuration:   100,
			vestingDuration: 200,
			now:             math.MaxUint64 - 5,
			expected:        0,
		},
		{
			name:            "duration near uint64 max stays on the linear ramp",
			totalAllocation: 1000,
			vestingStart:    math.MaxUint64 - 10,
			vestingDuration: 100,
			now:             math.MaxUint64 - 5,
			expected:        50,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := airdrop.ClaimableToDate(big.NewInt(tt.totalAllocation), tt.vestingStart, tt.cliffDuration, tt.vestingDuration, tt.now)
			require.Equal(t, tt.expected, got.Int64())
		})
	}
}

func TestClaimableToDateMonotonicInTime(t *testing.T) {
	t.Parallel()

	total := big.NewInt(999983)
	previous := big.NewInt(-1)

	for now := uint64(0); now <= 3000; now += 7 {
		claimable := airdrop.ClaimableToDate(total, 250, 125, 1000, now)
		require.GreaterOrEqual(t, claimable.Cmp(previous), 0, "claimable regressed at t=%d", now)
		require.LessOrEqual(t, claimable.Cmp(total), 0, "claimable exceeded allocation at t=%d", now)
		previous = claimable
	}

	require.Equal(t, 0, previous.Cmp(total))
}

func TestClaimableToDateDoesNotMutateAllocation(t *testing.T) {
	t.Parallel()

	total := big.NewInt(5000)
	_ = airdrop.ClaimableToDate(total, 0, 0, 100, 40)
	require.Equal(t, int64(5000), total.Int64())
}
