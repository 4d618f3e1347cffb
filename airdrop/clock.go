package airdrop

import (
	"net/http"

	"github.com/p2eengineering/kalp-sdk-public/kalpsdk"
)

// Clock supplies the contract's notion of current time. The vesting
// calculation never reads the host clock directly, so schedules stay
// deterministic for a given transaction.
type Clock interface {
	Now(ctx kalpsdk.TransactionContextInterface) (uint64, error)
}

// TxClock reads the block timestamp of the executing transaction.
type TxClock struct{}

func (TxClock) Now(ctx kalpsdk.TransactionContextInterface) (uint64, error) {
	txTimestamp, err := ctx.GetTxTimestamp()
	if err != nil {
		return 0, NewCustomError(http.StatusInternalServerError, "failed to get transaction timestamp", err)
	}

	return uint64(txTimestamp.GetSeconds()), nil
}
