package airdrop

import (
	"math"
	"math/big"
)

// ClaimableToDate computes the cumulative amount a beneficiary is entitled to
// at the given time, independent of what has already been claimed.
//
// Before the cliff elapses nothing is claimable. After the full vesting
// duration the entire allocation is claimable. In between, the allocation
// unlocks linearly from vestingStart with truncating division, so rounding
// never over-allocates; the truncation remainder pays out once the schedule
// completes. A zero vestingDuration means fully vested at vestingStart.
func ClaimableToDate(totalAllocation *big.Int, vestingStart, cliffDuration, vestingDuration, now uint64) *big.Int {
	if now < saturatingAdd(vestingStart, cliffDuration) {
		return big.NewInt(0)
	}

	if vestingDuration == 0 || now >= saturatingAdd(vestingStart, vestingDuration) {
		return new(big.Int).Set(totalAllocation)
	}

	elapsed := new(big.Int).SetUint64(now - vestingStart)
	claimable := new(big.Int).Mul(totalAllocation, elapsed)
	return claimable.Div(claimable, new(big.Int).SetUint64(vestingDuration))
}

// saturatingAdd clamps at the uint64 maximum so schedule boundaries never
// wrap around; a wrapped boundary would read as already elapsed and unlock
// the full allocation early.
func saturatingAdd(a, b uint64) uint64 {
	if a > math.MaxUint64-b {
		return math.MaxUint64
	}
	return a + b
}
