package airdrop

import (
	"encoding/base64"
	"fmt"
	"math/big"
	"net/http"
	"regexp"
	"strings"

	"github.com/p2eengineering/kalp-sdk-public/kalpsdk"
)

func GetUserId(ctx kalpsdk.TransactionContextInterface) (string, error) {
	b64ID, err := ctx.GetClientIdentity().GetID()
	if err != nil {
		return "", fmt.Errorf("failed to read clientID: %v", err)
	}

	decodeID, err := base64.StdEncoding.DecodeString(b64ID)
	if err != nil {
		return "", fmt.Errorf("failed to base64 decode clientID: %v", err)
	}

	completeId := string(decodeID)
	cnIndex := strings.Index(completeId, "x509::CN=")
	commaIndex := strings.Index(completeId, ",")
	if cnIndex == -1 || commaIndex == -1 || commaIndex < cnIndex+9 {
		return "", ErrInvalidUserAddress(completeId)
	}
	userId := completeId[cnIndex+9 : commaIndex]

	if !IsUserAddressValid(userId) {
		return "", ErrInvalidUserAddress(userId)
	}

	return userId, nil
}

func IsUserAddressValid(address string) bool {
	if address == "" {
		return false
	}

	isValid, _ := regexp.MatchString(hexAddressRegex, address)
	return isValid
}

func IsContractAddressValid(address string) bool {
	if address == "" {
		return false
	}

	isValid, _ := regexp.MatchString(contractAddressRegex, address)
	return isValid
}

// requireAdmin resolves the caller identity and checks it against the
// contract admin. Every privileged entry point goes through here.
func requireAdmin(ctx kalpsdk.TransactionContextInterface, state *ContractState) (string, error) {
	signer, err := GetUserId(ctx)
	if err != nil {
		return "", NewCustomError(http.StatusBadRequest, "failed to get client id", err)
	}

	if signer != state.Admin {
		return "", NewCustomError(http.StatusForbidden, fmt.Sprintf("caller %s is not the contract admin", signer), ErrUnauthorized)
	}

	return signer, nil
}

// parsePositiveAmount parses a decimal-string token amount and rejects
// zero or negative values.
func parsePositiveAmount(entity, value string) (*big.Int, error) {
	amount, ok := new(big.Int).SetString(value, 10)
	if !ok {
		return nil, InvalidAmountError(entity, value)
	}

	if amount.Sign() <= 0 {
		return nil, NewCustomError(http.StatusBadRequest, fmt.Sprintf("amount for %s must be positive, got %s", entity, value), ErrInvalidSchedule)
	}

	return amount, nil
}

func parseStoredAmount(entity, value string) (*big.Int, error) {
	amount, ok := new(big.Int).SetString(value, 10)
	if !ok {
		return nil, InvalidAmountError(entity, value)
	}

	return amount, nil
}
