package airdrop

import (
	"fmt"
	"math/big"
	"net/http"

	"github.com/p2eengineering/kalp-sdk-public/kalpsdk"
)

// transferTokens signals the configured token chaincode to move amount units
// to the recipient. The cross-chaincode invoke runs inside the same
// transaction as the ledger update, so a failed transfer aborts the whole
// claim and the recorded claimed amount with it.
func transferTokens(ctx kalpsdk.TransactionContextInterface, recipient string, amount *big.Int) error {
	tokenAddress, err := GetTokenAddress(ctx)
	if err != nil {
		return err
	}
	if tokenAddress == "" {
		return NewCustomError(http.StatusConflict, "token address has not been configured", ErrTokenNotSet)
	}

	args := [][]byte{
		[]byte(transferFunction),
		[]byte(recipient),
		[]byte(amount.String()),
	}

	resp := ctx.InvokeChaincode(tokenAddress, args, ctx.GetChannelID())
	if resp.Response.Status != http.StatusOK {
		return NewCustomError(http.StatusInternalServerError, fmt.Sprintf("token transfer of %s to %s failed: %s", amount.String(), recipient, resp.Response.Message), nil)
	}

	return nil
}
