package airdrop

import (
	"encoding/json"
	"fmt"

	"github.com/p2eengineering/kalp-sdk-public/kalpsdk"
)

type ContractInitializedEvent struct {
	Admin               string `json:"admin"`
	ActivationTimestamp uint64 `json:"activationTimestamp"`
}

type BeneficiaryRegisteredEvent struct {
	Beneficiary     string `json:"beneficiary"`
	TotalAllocation string `json:"totalAllocation"`
	VestingStart    uint64 `json:"vestingStart"`
	CliffDuration   uint64 `json:"cliffDuration"`
	VestingDuration uint64 `json:"vestingDuration"`
}

type BeneficiariesRegisteredEvent struct {
	Count            int    `json:"count"`
	TotalAllocations string `json:"totalAllocations"`
}

type BeneficiaryAmendedEvent struct {
	Beneficiary     string `json:"beneficiary"`
	TotalAllocation string `json:"totalAllocation"`
	VestingStart    uint64 `json:"vestingStart"`
	CliffDuration   uint64 `json:"cliffDuration"`
	VestingDuration uint64 `json:"vestingDuration"`
}

type FundedEvent struct {
	Amount        string `json:"amount"`
	FundedBalance string `json:"fundedBalance"`
}

type OpenedEvent struct {
	TotalAllocated string `json:"totalAllocated"`
	FundedBalance  string `json:"fundedBalance"`
}

type PauseSetEvent struct {
	Paused bool `json:"paused"`
}

type TokenAddressSetEvent struct {
	Token string `json:"token"`
}

type ClaimedEvent struct {
	Beneficiary string `json:"beneficiary"`
	Amount      string `json:"amount"`
	Timestamp   uint64 `json:"timestamp"`
}

func emitEvent(sdk kalpsdk.TransactionContextInterface, name string, payload interface{}) error {
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to obtain JSON encoding: %v", err)
	}

	err = sdk.SetEvent(name, payloadJSON)
	if err != nil {
		return fmt.Errorf("failed to set event: %v", err)
	}

	return nil
}

func EmitContractInitialized(sdk kalpsdk.TransactionContextInterface, admin string, activationTimestamp uint64) error {
	return emitEvent(sdk, ContractInitializedKey, ContractInitializedEvent{
		Admin:               admin,
		ActivationTimestamp: activationTimestamp,
	})
}

func EmitBeneficiaryRegistered(sdk kalpsdk.TransactionContextInterface, record *BeneficiaryRecord, beneficiary string) error {
	return emitEvent(sdk, BeneficiaryRegisteredKey, BeneficiaryRegisteredEvent{
		Beneficiary:     beneficiary,
		TotalAllocation: record.TotalAllocation,
		VestingStart:    record.VestingStart,
		CliffDuration:   record.CliffDuration,
		VestingDuration: record.VestingDuration,
	})
}

func EmitBeneficiariesRegistered(sdk kalpsdk.TransactionContextInterface, count int, totalAllocations string) error {
	return emitEvent(sdk, BeneficiariesRegisteredKey, BeneficiariesRegisteredEvent{
		Count:            count,
		TotalAllocations: totalAllocations,
	})
}

func EmitBeneficiaryAmended(sdk kalpsdk.TransactionContextInterface, record *BeneficiaryRecord, beneficiary string) error {
	return emitEvent(sdk, BeneficiaryAmendedKey, BeneficiaryAmendedEvent{
		Beneficiary:     beneficiary,
		TotalAllocation: record.TotalAllocation,
		VestingStart:    record.VestingStart,
		CliffDuration:   record.CliffDuration,
		VestingDuration: record.VestingDuration,
	})
}

func EmitFunded(sdk kalpsdk.TransactionContextInterface, amount, fundedBalance string) error {
	return emitEvent(sdk, FundedKey, FundedEvent{
		Amount:        amount,
		FundedBalance: fundedBalance,
	})
}

func EmitOpened(sdk kalpsdk.TransactionContextInterface, totalAllocated, fundedBalance string) error {
	return emitEvent(sdk, OpenedKey, OpenedEvent{
		TotalAllocated: totalAllocated,
		FundedBalance:  fundedBalance,
	})
}

func EmitPauseSet(sdk kalpsdk.TransactionContextInterface, paused bool) error {
	return emitEvent(sdk, PauseSetKey, PauseSetEvent{Paused: paused})
}

func EmitTokenAddressSet(sdk kalpsdk.TransactionContextInterface, token string) error {
	return emitEvent(sdk, TokenAddressSetKey, TokenAddressSetEvent{Token: token})
}

func EmitClaimed(sdk kalpsdk.TransactionContextInterface, beneficiary, amount string, timestamp uint64) error {
	return emitEvent(sdk, ClaimedKey, ClaimedEvent{
		Beneficiary: beneficiary,
		Amount:      amount,
		Timestamp:   timestamp,
	})
}
