package airdrop

import (
	"fmt"
	"math/big"
	"net/http"

	"github.com/p2eengineering/kalp-sdk-public/kalpsdk"
)

// SmartContract is the airdrop orchestrator. All state lives in the world
// state; the host chain serializes invocations, so no locking happens here.
type SmartContract struct {
	kalpsdk.Contract

	// Clock overrides the time source; nil means the transaction timestamp.
	Clock Clock
}

func (s *SmartContract) clock() Clock {
	if s.Clock != nil {
		return s.Clock
	}
	return TxClock{}
}

// Initialize deploys the contract state with the caller as the immutable
// admin. The activation timestamp anchors vesting schedules registered
// without an explicit start.
func (s *SmartContract) Initialize(ctx kalpsdk.TransactionContextInterface, activationTimestamp uint64) error {
	if activationTimestamp == 0 {
		return NewCustomError(http.StatusBadRequest, "activation timestamp cannot be zero", ErrCannotBeZero)
	}

	existing, err := ctx.GetState(contractStateKey)
	if err != nil {
		return NewCustomError(http.StatusInternalServerError, "failed to get contract state", err)
	}
	if existing != nil {
		return NewCustomError(http.StatusConflict, "contract is already initialized", ErrAlreadyInitialized)
	}

	signer, err := GetUserId(ctx)
	if err != nil {
		return NewCustomError(http.StatusBadRequest, "failed to get client id", err)
	}

	state := &ContractState{
		Admin:               signer,
		Paused:              false,
		Open:                false,
		ActivationTimestamp: activationTimestamp,
		TotalAllocated:      "0",
		FundedBalance:       "0",
	}

	if err := SetContractState(ctx, state); err != nil {
		return err
	}

	if err := SetTotalClaimed(ctx, big.NewInt(0)); err != nil {
		return err
	}

	return EmitContractInitialized(ctx, signer, activationTimestamp)
}

// Register creates an allocation record for a single beneficiary. A zero
// vestingStart anchors the schedule to the activation timestamp.
func (s *SmartContract) Register(ctx kalpsdk.TransactionContextInterface, beneficiaryID, totalAllocation string, vestingStart, cliffDuration, vestingDuration uint64) error {
	state, err := GetContractState(ctx)
	if err != nil {
		return err
	}

	if _, err := requireAdmin(ctx, state); err != nil {
		return err
	}

	amount, err := validateNewBeneficiary(ctx, beneficiaryID, totalAllocation)
	if err != nil {
		return err
	}

	totalAllocated, err := parseStoredAmount("totalAllocated", state.TotalAllocated)
	if err != nil {
		return err
	}
	totalAllocated.Add(totalAllocated, amount)

	// All-or-nothing: the invariant check runs before the first write.
	if err := checkFundingInvariant(state, totalAllocated); err != nil {
		return err
	}

	if err := writeBeneficiary(ctx, state, beneficiaryID, amount, vestingStart, cliffDuration, vestingDuration); err != nil {
		return err
	}

	state.TotalAllocated = totalAllocated.String()
	return SetContractState(ctx, state)
}

// RegisterBatch registers many beneficiaries under one shared schedule.
// Chain transaction semantics make the batch all-or-nothing: any failure
// aborts the transaction and discards the records written so far.
func (s *SmartContract) RegisterBatch(ctx kalpsdk.TransactionContextInterface, beneficiaries []string, amounts []string, vestingStart, cliffDuration, vestingDuration uint64) error {
	state, err := GetContractState(ctx)
	if err != nil {
		return err
	}

	if _, err := requireAdmin(ctx, state); err != nil {
		return err
	}

	if len(beneficiaries) == 0 {
		return NewCustomError(http.StatusBadRequest, "no beneficiaries provided", ErrNoBeneficiaries)
	}
	if len(beneficiaries) != len(amounts) {
		return NewCustomError(http.StatusBadRequest, fmt.Sprintf("beneficiaries and amounts length mismatch: %d != %d", len(beneficiaries), len(amounts)), ErrArraysLengthMismatch)
	}

	// Validate the whole batch before the first write so a rejected batch
	// leaves no partial records behind.
	batchAllocations := big.NewInt(0)
	batchAmounts := make([]*big.Int, len(beneficiaries))
	seen := make(map[string]bool, len(beneficiaries))
	for i := 0; i < len(beneficiaries); i++ {
		if seen[beneficiaries[i]] {
			return NewCustomError(http.StatusConflict, fmt.Sprintf("beneficiary %s appears twice in the batch", beneficiaries[i]), ErrAlreadyRegistered)
		}
		seen[beneficiaries[i]] = true

		amount, err := validateNewBeneficiary(ctx, beneficiaries[i], amounts[i])
		if err != nil {
			return err
		}

		batchAmounts[i] = amount
		batchAllocations.Add(batchAllocations, amount)
	}

	totalAllocated, err := parseStoredAmount("totalAllocated", state.TotalAllocated)
	if err != nil {
		return err
	}
	totalAllocated.Add(totalAllocated, batchAllocations)

	if err := checkFundingInvariant(state, totalAllocated); err != nil {
		return err
	}

	for i := 0; i < len(beneficiaries); i++ {
		if err := writeBeneficiary(ctx, state, beneficiaries[i], batchAmounts[i], vestingStart, cliffDuration, vestingDuration); err != nil {
			return err
		}
	}

	state.TotalAllocated = totalAllocated.String()
	if err := SetContractState(ctx, state); err != nil {
		return err
	}

	return EmitBeneficiariesRegistered(ctx, len(beneficiaries), batchAllocations.String())
}

// Amend replaces a beneficiary's allocation and schedule. Only permitted
// while nothing has been claimed against the record.
func (s *SmartContract) Amend(ctx kalpsdk.TransactionContextInterface, beneficiaryID, totalAllocation string, vestingStart, cliffDuration, vestingDuration uint64) error {
	state, err := GetContractState(ctx)
	if err != nil {
		return err
	}

	if _, err := requireAdmin(ctx, state); err != nil {
		return err
	}

	record, err := GetBeneficiary(ctx, beneficiaryID)
	if err != nil {
		return err
	}

	claimed, err := parseStoredAmount("claimedAmount", record.ClaimedAmount)
	if err != nil {
		return err
	}
	if claimed.Sign() > 0 {
		return NewCustomError(http.StatusConflict, fmt.Sprintf("beneficiary %s has already claimed %s", beneficiaryID, record.ClaimedAmount), ErrAlreadyClaiming)
	}

	newAmount, err := parsePositiveAmount("beneficiary", totalAllocation)
	if err != nil {
		return err
	}

	oldAmount, err := parseStoredAmount("totalAllocation", record.TotalAllocation)
	if err != nil {
		return err
	}

	totalAllocated, err := parseStoredAmount("totalAllocated", state.TotalAllocated)
	if err != nil {
		return err
	}
	totalAllocated.Sub(totalAllocated, oldAmount)
	totalAllocated.Add(totalAllocated, newAmount)

	if err := checkFundingInvariant(state, totalAllocated); err != nil {
		return err
	}

	if vestingStart == 0 {
		vestingStart = state.ActivationTimestamp
	}

	record.TotalAllocation = newAmount.String()
	record.VestingStart = vestingStart
	record.CliffDuration = cliffDuration
	record.VestingDuration = vestingDuration

	if err := SetBeneficiary(ctx, beneficiaryID, record); err != nil {
		return err
	}

	state.TotalAllocated = totalAllocated.String()
	if err := SetContractState(ctx, state); err != nil {
		return err
	}

	return EmitBeneficiaryAmended(ctx, record, beneficiaryID)
}

// Fund raises the balance deposited for distribution.
func (s *SmartContract) Fund(ctx kalpsdk.TransactionContextInterface, amount string) error {
	state, err := GetContractState(ctx)
	if err != nil {
		return err
	}

	if _, err := requireAdmin(ctx, state); err != nil {
		return err
	}

	fundAmount, err := parseStoredAmount("fund", amount)
	if err != nil {
		return err
	}
	if fundAmount.Sign() <= 0 {
		return NewCustomError(http.StatusBadRequest, "funding amount cannot be zero", ErrCannotBeZero)
	}

	fundedBalance, err := parseStoredAmount("fundedBalance", state.FundedBalance)
	if err != nil {
		return err
	}
	fundedBalance.Add(fundedBalance, fundAmount)

	state.FundedBalance = fundedBalance.String()
	if err := SetContractState(ctx, state); err != nil {
		return err
	}

	return EmitFunded(ctx, fundAmount.String(), state.FundedBalance)
}

// Open moves the contract from its funding phase to accepting claims. The
// transition is one-directional and requires the funding invariant to hold.
func (s *SmartContract) Open(ctx kalpsdk.TransactionContextInterface) error {
	state, err := GetContractState(ctx)
	if err != nil {
		return err
	}

	if _, err := requireAdmin(ctx, state); err != nil {
		return err
	}

	if state.Open {
		return NewCustomError(http.StatusConflict, "contract is already open", ErrAlreadyOpen)
	}

	totalAllocated, err := parseStoredAmount("totalAllocated", state.TotalAllocated)
	if err != nil {
		return err
	}

	fundedBalance, err := parseStoredAmount("fundedBalance", state.FundedBalance)
	if err != nil {
		return err
	}

	if totalAllocated.Cmp(fundedBalance) > 0 {
		return NewCustomError(http.StatusBadRequest, fmt.Sprintf("total allocated %s exceeds funded balance %s", state.TotalAllocated, state.FundedBalance), ErrInsufficientFunding)
	}

	state.Open = true
	if err := SetContractState(ctx, state); err != nil {
		return err
	}

	return EmitOpened(ctx, state.TotalAllocated, state.FundedBalance)
}

// SetPaused blocks or unblocks claims. Admin operations stay available
// while paused.
func (s *SmartContract) SetPaused(ctx kalpsdk.TransactionContextInterface, paused bool) error {
	state, err := GetContractState(ctx)
	if err != nil {
		return err
	}

	if _, err := requireAdmin(ctx, state); err != nil {
		return err
	}

	state.Paused = paused
	if err := SetContractState(ctx, state); err != nil {
		return err
	}

	return EmitPauseSet(ctx, paused)
}

// SetTokenAddress configures the token chaincode claims transfer through.
// Set-once; the address cannot be swapped after the fact.
func (s *SmartContract) SetTokenAddress(ctx kalpsdk.TransactionContextInterface, tokenAddress string) error {
	state, err := GetContractState(ctx)
	if err != nil {
		return err
	}

	if _, err := requireAdmin(ctx, state); err != nil {
		return err
	}

	if tokenAddress == "" || tokenAddress == zeroTokenAddress {
		return NewCustomError(http.StatusBadRequest, "token address cannot be zero", ErrCannotBeZero)
	}
	if !IsContractAddressValid(tokenAddress) {
		return ErrInvalidContractAddress(tokenAddress)
	}

	if err := SaveTokenAddress(ctx, tokenAddress); err != nil {
		return err
	}

	return EmitTokenAddressSet(ctx, tokenAddress)
}

// Claim pays the caller the difference between claimable-to-date and what
// they have already claimed, returning the amount as a decimal string. A
// zero delta is a legitimate steady state and returns "0" without error.
//
// The claimed amount is recorded before the transfer is signalled; both
// commit or abort together with the transaction, so a failed transfer never
// leaves a beneficiary marked as paid.
func (s *SmartContract) Claim(ctx kalpsdk.TransactionContextInterface) (string, error) {
	state, err := GetContractState(ctx)
	if err != nil {
		return "0", err
	}

	if !state.Open {
		return "0", NewCustomError(http.StatusConflict, "contract is not open for claims", ErrNotOpen)
	}
	if state.Paused {
		return "0", NewCustomError(http.StatusConflict, "claims are paused", ErrPaused)
	}

	signer, err := GetUserId(ctx)
	if err != nil {
		return "0", NewCustomError(http.StatusBadRequest, "failed to get client id", err)
	}

	record, err := GetBeneficiary(ctx, signer)
	if err != nil {
		return "0", err
	}

	now, err := s.clock().Now(ctx)
	if err != nil {
		return "0", err
	}

	delta, newClaimed, err := pendingClaim(record, now)
	if err != nil {
		return "0", err
	}

	if delta.Sign() == 0 {
		return "0", nil
	}

	record.ClaimedAmount = newClaimed.String()
	if err := SetBeneficiary(ctx, signer, record); err != nil {
		return "0", err
	}

	totalClaimed, err := GetTotalClaimed(ctx)
	if err != nil {
		return "0", err
	}
	totalClaimed.Add(totalClaimed, delta)
	if err := SetTotalClaimed(ctx, totalClaimed); err != nil {
		return "0", err
	}

	if err := transferTokens(ctx, signer, delta); err != nil {
		return "0", err
	}

	if err := EmitClaimed(ctx, signer, delta.String(), now); err != nil {
		return "0", err
	}

	return delta.String(), nil
}

// pendingClaim computes the claimable delta for a record at the given time
// and the claimed total after applying it, guarding the no-over-claim
// invariant. The Overclaim path should be unreachable with a correct
// calculator; it exists as defense in depth.
func pendingClaim(record *BeneficiaryRecord, now uint64) (*big.Int, *big.Int, error) {
	total, err := parseStoredAmount("totalAllocation", record.TotalAllocation)
	if err != nil {
		return nil, nil, err
	}

	claimed, err := parseStoredAmount("claimedAmount", record.ClaimedAmount)
	if err != nil {
		return nil, nil, err
	}

	claimable := ClaimableToDate(total, record.VestingStart, record.CliffDuration, record.VestingDuration, now)

	delta := new(big.Int).Sub(claimable, claimed)
	if delta.Sign() < 0 {
		return nil, nil, NewCustomError(http.StatusInternalServerError, fmt.Sprintf("claimable %s is below claimed %s", claimable.String(), record.ClaimedAmount), ErrOverclaim)
	}

	newClaimed := new(big.Int).Add(claimed, delta)
	if newClaimed.Cmp(total) > 0 {
		return nil, nil, NewCustomError(http.StatusInternalServerError, fmt.Sprintf("claimed %s would exceed allocation %s", newClaimed.String(), record.TotalAllocation), ErrOverclaim)
	}

	return delta, newClaimed, nil
}

// ClaimableOf returns the amount the beneficiary could claim right now,
// net of what they have already claimed. Read-only, callable by anyone.
func (s *SmartContract) ClaimableOf(ctx kalpsdk.TransactionContextInterface, beneficiaryID string) (string, error) {
	record, err := GetBeneficiary(ctx, beneficiaryID)
	if err != nil {
		return "0", err
	}

	now, err := s.clock().Now(ctx)
	if err != nil {
		return "0", err
	}

	delta, _, err := pendingClaim(record, now)
	if err != nil {
		return "0", err
	}

	return delta.String(), nil
}

// AllocationOf returns the full allocation record for a beneficiary.
func (s *SmartContract) AllocationOf(ctx kalpsdk.TransactionContextInterface, beneficiaryID string) (*BeneficiaryRecord, error) {
	return GetBeneficiary(ctx, beneficiaryID)
}

// TotalClaimed returns the running sum of all claims across beneficiaries.
func (s *SmartContract) TotalClaimed(ctx kalpsdk.TransactionContextInterface) (string, error) {
	totalClaimed, err := GetTotalClaimed(ctx)
	if err != nil {
		return "0", err
	}

	return totalClaimed.String(), nil
}

// Config returns the contract-level state.
func (s *SmartContract) Config(ctx kalpsdk.TransactionContextInterface) (*ContractState, error) {
	return GetContractState(ctx)
}
