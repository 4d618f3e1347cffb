package airdrop

import (
	"fmt"
	"math/big"
	"net/http"

	"github.com/p2eengineering/kalp-sdk-public/kalpsdk"
)

// validateNewBeneficiary checks the identity and allocation for a record
// that must not exist yet and returns the parsed allocation. It performs no
// writes, so entry points can run every check before touching the ledger.
func validateNewBeneficiary(ctx kalpsdk.TransactionContextInterface, beneficiaryID, totalAllocation string) (*big.Int, error) {
	if !IsUserAddressValid(beneficiaryID) {
		return nil, ErrInvalidUserAddress(beneficiaryID)
	}

	amount, err := parsePositiveAmount("beneficiary", totalAllocation)
	if err != nil {
		return nil, err
	}

	existing, err := ctx.GetState(beneficiaryKey(beneficiaryID))
	if err != nil {
		return nil, NewCustomError(http.StatusInternalServerError, fmt.Sprintf("failed to get beneficiary with Key %s", beneficiaryKey(beneficiaryID)), err)
	}
	if existing != nil {
		return nil, NewCustomError(http.StatusConflict, fmt.Sprintf("beneficiary %s is already registered", beneficiaryID), ErrAlreadyRegistered)
	}

	return amount, nil
}

// writeBeneficiary persists a validated allocation record and emits the
// registration event. A zero vestingStart anchors the schedule to the
// contract activation timestamp.
func writeBeneficiary(
	ctx kalpsdk.TransactionContextInterface,
	state *ContractState,
	beneficiaryID string,
	amount *big.Int,
	vestingStart,
	cliffDuration,
	vestingDuration uint64,
) error {
	if vestingStart == 0 {
		vestingStart = state.ActivationTimestamp
	}

	record := &BeneficiaryRecord{
		TotalAllocation: amount.String(),
		ClaimedAmount:   "0",
		VestingStart:    vestingStart,
		CliffDuration:   cliffDuration,
		VestingDuration: vestingDuration,
	}

	if err := SetBeneficiary(ctx, beneficiaryID, record); err != nil {
		return err
	}

	return EmitBeneficiaryRegistered(ctx, record, beneficiaryID)
}

// checkFundingInvariant enforces sum(totalAllocation) <= fundedBalance. The
// check is lazy: allocation may run ahead of funding while the contract is
// still in its funding phase, but never once claims are open.
func checkFundingInvariant(state *ContractState, newTotalAllocated *big.Int) error {
	if !state.Open {
		return nil
	}

	fundedBalance, err := parseStoredAmount("fundedBalance", state.FundedBalance)
	if err != nil {
		return err
	}

	if newTotalAllocated.Cmp(fundedBalance) > 0 {
		return NewCustomError(http.StatusBadRequest, fmt.Sprintf("total allocated %s exceeds funded balance %s", newTotalAllocated.String(), state.FundedBalance), ErrInsufficientFunding)
	}

	return nil
}
