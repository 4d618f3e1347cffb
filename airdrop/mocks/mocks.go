// Package mocks provides hand-rolled fakes for the kalpsdk transaction
// context and the fabric client identity, covering the slice of the
// interfaces the airdrop contract touches. Unassigned stubs panic, which
// surfaces any untested interaction immediately.
package mocks

import (
	"github.com/hyperledger/fabric-chaincode-go/pkg/cid"
	"github.com/p2eengineering/kalp-sdk-public/kalpsdk"
	"github.com/p2eengineering/kalp-sdk-public/response"
	"google.golang.org/protobuf/types/known/timestamppb"
)

// TransactionContext fakes kalpsdk.TransactionContextInterface by embedding
// it and overriding the methods the contract uses with assignable stubs.
type TransactionContext struct {
	kalpsdk.TransactionContextInterface

	GetStateStub           func(string) ([]byte, error)
	PutStateWithoutKYCStub func(string, []byte) error
	DelStateWithoutKYCStub func(string) error
	SetEventStub           func(string, []byte) error
	GetTxTimestampStub     func() (*timestamppb.Timestamp, error)
	GetChannelIDStub       func() string
	GetTxIDStub            func() string
	InvokeChaincodeStub    func(string, [][]byte, string) response.Response

	clientIdentity cid.ClientIdentity
}

func (c *TransactionContext) GetState(key string) ([]byte, error) {
	return c.GetStateStub(key)
}

func (c *TransactionContext) PutStateWithoutKYC(key string, value []byte) error {
	return c.PutStateWithoutKYCStub(key, value)
}

func (c *TransactionContext) DelStateWithoutKYC(key string) error {
	return c.DelStateWithoutKYCStub(key)
}

func (c *TransactionContext) SetEvent(name string, payload []byte) error {
	return c.SetEventStub(name, payload)
}

func (c *TransactionContext) GetTxTimestamp() (*timestamppb.Timestamp, error) {
	return c.GetTxTimestampStub()
}

func (c *TransactionContext) GetChannelID() string {
	return c.GetChannelIDStub()
}

func (c *TransactionContext) GetTxID() string {
	return c.GetTxIDStub()
}

func (c *TransactionContext) InvokeChaincode(chaincodeName string, args [][]byte, channel string) response.Response {
	return c.InvokeChaincodeStub(chaincodeName, args, channel)
}

func (c *TransactionContext) GetClientIdentity() cid.ClientIdentity {
	return c.clientIdentity
}

func (c *TransactionContext) GetClientIdentityReturns(identity cid.ClientIdentity) {
	c.clientIdentity = identity
}

// ClientIdentity fakes cid.ClientIdentity for the GetID call.
type ClientIdentity struct {
	cid.ClientIdentity

	id    string
	idErr error
}

func (c *ClientIdentity) GetIDReturns(id string, err error) {
	c.id = id
	c.idErr = err
}

func (c *ClientIdentity) GetID() (string, error) {
	return c.id, c.idErr
}
