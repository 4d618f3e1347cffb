package airdrop_test

import (
	"encoding/base64"
	"errors"
	"fmt"
	"testing"

	"github.com/buythedibs/az-airdrop/airdrop"
	"github.com/buythedibs/az-airdrop/airdrop/mocks"
	"github.com/stretchr/testify/require"
)

func TestGetUserId(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		setupMock   func(*mocks.TransactionContext)
		expectedID  string
		errContains string
	}{
		{
			name: "Success - valid x509 identity",
			setupMock: func(ctx *mocks.TransactionContext) {
				SetUserID(ctx, "0b87970433b22494faff1cc7a819e71bddc7880c")
			},
			expectedID: "0b87970433b22494faff1cc7a819e71bddc7880c",
		},
		{
			name: "Failure - GetID error",
			setupMock: func(ctx *mocks.TransactionContext) {
				clientIdentity := &mocks.ClientIdentity{}
				clientIdentity.GetIDReturns("", errors.New("failed to get ID"))
				ctx.GetClientIdentityReturns(clientIdentity)
			},
			errContains: "failed to read clientID",
		},
		{
			name: "Failure - not base64",
			setupMock: func(ctx *mocks.TransactionContext) {
				clientIdentity := &mocks.ClientIdentity{}
				clientIdentity.GetIDReturns("%%%not-base64%%%", nil)
				ctx.GetClientIdentityReturns(clientIdentity)
			},
			errContains: "failed to base64 decode clientID",
		},
		{
			name: "Failure - CN is not a hex address",
			setupMock: func(ctx *mocks.TransactionContext) {
				SetUserID(ctx, "not-an-address")
			},
			errContains: "InvalidUserAddress",
		},
		{
			name: "Failure - identity without CN marker",
			setupMock: func(ctx *mocks.TransactionContext) {
				b64ID := base64.StdEncoding.EncodeToString([]byte("O=Organization,L=City"))
				clientIdentity := &mocks.ClientIdentity{}
				clientIdentity.GetIDReturns(b64ID, nil)
				ctx.GetClientIdentityReturns(clientIdentity)
			},
			errContains: "InvalidUserAddress",
		},
		{
			name: "Failure - identity without attribute separator",
			setupMock: func(ctx *mocks.TransactionContext) {
				b64ID := base64.StdEncoding.EncodeToString([]byte("x509::CN=0b87970433b22494faff1cc7a819e71bddc7880c"))
				clientIdentity := &mocks.ClientIdentity{}
				clientIdentity.GetIDReturns(b64ID, nil)
				ctx.GetClientIdentityReturns(clientIdentity)
			},
			errContains: "InvalidUserAddress",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctx := &mocks.TransactionContext{}
			tt.setupMock(ctx)

			userID, err := airdrop.GetUserId(ctx)

			if tt.errContains != "" {
				require.Error(t, err)
				require.Contains(t, err.Error(), tt.errContains)
			} else {
				require.NoError(t, err)
				require.Equal(t, tt.expectedID, userID)
			}
		})
	}
}

func TestIsUserAddressValid(t *testing.T) {
	t.Parallel()

	require.True(t, airdrop.IsUserAddressValid("0b87970433b22494faff1cc7a819e71bddc7880c"))
	require.False(t, airdrop.IsUserAddressValid(""))
	require.False(t, airdrop.IsUserAddressValid("0b8797"))
	require.False(t, airdrop.IsUserAddressValid("zz87970433b22494faff1cc7a819e71bddc7880c"))
}

func TestIsContractAddressValid(t *testing.T) {
	t.Parallel()

	require.True(t, airdrop.IsContractAddressValid("klp-12345678abcd-cc"))
	require.False(t, airdrop.IsContractAddressValid(""))
	require.False(t, airdrop.IsContractAddressValid("klp--cc"))
	require.False(t, airdrop.IsContractAddressValid("0b87970433b22494faff1cc7a819e71bddc7880c"))
}

// SetUserID installs a fake client identity whose x509 CN is the given user,
// base64-encoded the way the chain presents it.
func SetUserID(ctx *mocks.TransactionContext, userID string) {
	completeId := fmt.Sprintf("x509::CN=%s,O=Organization,L=City,ST=State,C=Country", userID)
	b64ID := base64.StdEncoding.EncodeToString([]byte(completeId))

	clientIdentity := &mocks.ClientIdentity{}
	clientIdentity.GetIDReturns(b64ID, nil)
	ctx.GetClientIdentityReturns(clientIdentity)
}
