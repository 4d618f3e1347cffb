package airdrop

import (
	"encoding/json"
	"fmt"
	"math/big"
	"net/http"

	"github.com/p2eengineering/kalp-sdk-public/kalpsdk"
)

// BeneficiaryRecord is the per-account allocation state. Amounts are decimal
// strings so that arbitrary-precision values survive the JSON round trip.
// ClaimedAmount only ever grows and never exceeds TotalAllocation.
type BeneficiaryRecord struct {
	TotalAllocation string `json:"totalAllocation"`
	ClaimedAmount   string `json:"claimedAmount"`
	VestingStart    uint64 `json:"vestingStart"`
	CliffDuration   uint64 `json:"cliffDuration"`
	VestingDuration uint64 `json:"vestingDuration"`
}

// ContractState is the singleton contract configuration written at
// initialization. Admin is immutable after Initialize.
type ContractState struct {
	Admin               string `json:"admin"`
	Paused              bool   `json:"paused"`
	Open                bool   `json:"open"`
	ActivationTimestamp uint64 `json:"activationTimestamp"`
	TotalAllocated      string `json:"totalAllocated"`
	FundedBalance       string `json:"fundedBalance"`
}

func beneficiaryKey(beneficiaryID string) string {
	return fmt.Sprintf("%s%s", beneficiaryKeyPrefix, beneficiaryID)
}

func GetBeneficiary(ctx kalpsdk.TransactionContextInterface, beneficiaryID string) (*BeneficiaryRecord, error) {
	recordAsBytes, err := ctx.GetState(beneficiaryKey(beneficiaryID))
	if err != nil {
		return nil, NewCustomError(http.StatusInternalServerError, fmt.Sprintf("failed to get beneficiary with Key %s", beneficiaryKey(beneficiaryID)), err)
	}
	if recordAsBytes == nil {
		return nil, NewCustomError(http.StatusNotFound, fmt.Sprintf("beneficiary %s is not registered", beneficiaryID), ErrNotFound)
	}

	var record BeneficiaryRecord
	err = json.Unmarshal(recordAsBytes, &record)
	if err != nil {
		return nil, NewCustomError(http.StatusInternalServerError, "failed to unmarshal beneficiary", err)
	}

	return &record, nil
}

func SetBeneficiary(ctx kalpsdk.TransactionContextInterface, beneficiaryID string, record *BeneficiaryRecord) error {
	recordAsBytes, err := json.Marshal(record)
	if err != nil {
		return NewCustomError(http.StatusInternalServerError, "failed to marshal beneficiary", err)
	}

	err = ctx.PutStateWithoutKYC(beneficiaryKey(beneficiaryID), recordAsBytes)
	if err != nil {
		return NewCustomError(http.StatusInternalServerError, "failed to set beneficiary", err)
	}

	return nil
}

func GetContractState(ctx kalpsdk.TransactionContextInterface) (*ContractState, error) {
	stateAsBytes, err := ctx.GetState(contractStateKey)
	if err != nil {
		return nil, NewCustomError(http.StatusInternalServerError, fmt.Sprintf("failed to get contract state with Key %s", contractStateKey), err)
	}
	if stateAsBytes == nil {
		return nil, NewCustomError(http.StatusConflict, "contract has not been initialized", ErrNotInitialized)
	}

	var state ContractState
	err = json.Unmarshal(stateAsBytes, &state)
	if err != nil {
		return nil, NewCustomError(http.StatusInternalServerError, "failed to unmarshal contract state", err)
	}

	return &state, nil
}

func SetContractState(ctx kalpsdk.TransactionContextInterface, state *ContractState) error {
	stateAsBytes, err := json.Marshal(state)
	if err != nil {
		return NewCustomError(http.StatusInternalServerError, "failed to marshal contract state", err)
	}

	err = ctx.PutStateWithoutKYC(contractStateKey, stateAsBytes)
	if err != nil {
		return NewCustomError(http.StatusInternalServerError, "failed to set contract state", err)
	}

	return nil
}

func GetTotalClaimed(ctx kalpsdk.TransactionContextInterface) (*big.Int, error) {
	totalClaimedAsBytes, err := ctx.GetState(totalClaimedKey)
	if err != nil {
		return nil, NewCustomError(http.StatusInternalServerError, fmt.Sprintf("failed to get total claimed with Key %s", totalClaimedKey), err)
	}

	totalClaimed := big.NewInt(0)
	if totalClaimedAsBytes != nil {
		_, success := totalClaimed.SetString(string(totalClaimedAsBytes), 10)
		if !success {
			return nil, NewCustomError(http.StatusInternalServerError, "failed to parse total claimed amount", nil)
		}
	}

	return totalClaimed, nil
}

func SetTotalClaimed(ctx kalpsdk.TransactionContextInterface, totalClaimed *big.Int) error {
	totalClaimedAsBytes, err := totalClaimed.MarshalText()
	if err != nil {
		return NewCustomError(http.StatusInternalServerError, "failed to marshal total claimed", err)
	}

	err = ctx.PutStateWithoutKYC(totalClaimedKey, totalClaimedAsBytes)
	if err != nil {
		return NewCustomError(http.StatusInternalServerError, "failed to set total claimed", err)
	}

	return nil
}

func GetTokenAddress(ctx kalpsdk.TransactionContextInterface) (string, error) {
	tokenAddressBytes, err := ctx.GetState(tokenAddressKey)
	if err != nil {
		return "", NewCustomError(http.StatusInternalServerError, fmt.Sprintf("failed to get token address with Key %s", tokenAddressKey), err)
	}

	return string(tokenAddressBytes), nil
}

func SaveTokenAddress(ctx kalpsdk.TransactionContextInterface, tokenAddress string) error {
	existingAddress, err := ctx.GetState(tokenAddressKey)
	if err != nil {
		return NewCustomError(http.StatusInternalServerError, fmt.Sprintf("failed to get token address with Key %s", tokenAddressKey), err)
	}
	if existingAddress != nil && string(existingAddress) != "" {
		return NewCustomError(http.StatusConflict, "token address is already set", ErrTokenAlreadySet)
	}

	err = ctx.PutStateWithoutKYC(tokenAddressKey, []byte(tokenAddress))
	if err != nil {
		return NewCustomError(http.StatusInternalServerError, fmt.Sprintf("failed to set token address with Key %s", tokenAddressKey), err)
	}

	return nil
}
