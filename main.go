/*
SPDX-License-Identifier: Apache-2.0
*/

package main

import (
	"log"

	"github.com/buythedibs/az-airdrop/airdrop"
	"github.com/p2eengineering/kalp-sdk-public/kalpsdk"
)

func main() {
	contract := kalpsdk.Contract{IsPayableContract: false}
	contract.Logger = kalpsdk.NewLogger()
	airdropChaincode, err := kalpsdk.NewChaincode(&airdrop.SmartContract{Contract: contract})
	if err != nil {
		log.Panicf("Error creating airdrop chaincode: %v", err)
	}

	if err := airdropChaincode.Start(); err != nil {
		log.Panicf("Error starting airdrop chaincode: %v", err)
	}
}
