// Copyright 2021 Optakt Labs OÜ
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not
// use this file except in compliance with the License. You may obtain a copy of
// the License at
//
//     https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS, WITHOUT
// WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the
// License for the specific language governing permissions and limitations under
// the License.

package diem

import (
	"time"
)

const (
	// Blockchain is the value of the blockchain field in all Rosetta network
	// identifiers handled by this middleware.
	Blockchain = "diem"

	// Mainnet, Testnet and Devnet are the networks we can be configured for.
	Mainnet = "mainnet"
	Testnet = "testnet"
	Devnet  = "devnet"
)

const (
	// AddressLength is the length of a native account address in bytes.
	AddressLength = 16

	// HashLength is the length of a native transaction hash in bytes.
	HashLength = 32
)

const (
	// StatusSuccess is the operation status of every effect of a transaction
	// that the virtual machine executed successfully.
	StatusSuccess = "success"

	// StatusFailure is the operation status of every effect of a transaction
	// that the virtual machine aborted or failed to execute.
	StatusFailure = "failure"

	// StatusPending is defined for completeness of the status taxonomy, but is
	// never assigned, as the fullnode only exposes finalized transactions.
	StatusPending = "pending"
)

// VMStatusExecuted is the native virtual machine status of a successfully
// executed transaction. Every other status maps to a failed operation status.
const VMStatusExecuted = "executed"

// Operation types, mapped one-to-one from the native event types emitted by
// transaction execution. Unmapped native event types fall back to
// OperationUnknown so that a single unknown effect never makes a whole block
// unservable.
const (
	OperationSentPayment     = "sentpayment"
	OperationReceivedPayment = "receivedpayment"
	OperationSentFee         = "sentfee"
	OperationReceivedFee     = "receivedfee"
	OperationMint            = "mint"
	OperationBurn            = "burn"
	OperationPreburn         = "preburn"
	OperationCancelBurn      = "cancelburn"
	OperationCreateAccount   = "createaccount"
	OperationNewEpoch        = "newepoch"
	OperationNewBlock        = "newblock"
	OperationUpgrade         = "upgrade"
	OperationUnknown         = "unknown"
)

// OperationTypes lists every operation type this middleware can emit, in the
// order they are advertised on the /network/options endpoint.
var OperationTypes = []string{
	OperationSentPayment,
	OperationReceivedPayment,
	OperationSentFee,
	OperationReceivedFee,
	OperationMint,
	OperationBurn,
	OperationPreburn,
	OperationCancelBurn,
	OperationCreateAccount,
	OperationNewEpoch,
	OperationNewBlock,
	OperationUpgrade,
	OperationUnknown,
}

const (
	// DefaultMaxGasAmount and DefaultGasUnitPrice are the gas parameters
	// suggested on the /construction/metadata endpoint.
	DefaultMaxGasAmount = 10_000
	DefaultGasUnitPrice = 0

	// DefaultExpiryWindow is how far in the future constructed transactions
	// expire. The caller may take arbitrary time between metadata and submit;
	// staleness is only detected by the ledger at submission.
	DefaultExpiryWindow = 15 * time.Minute
)

// Currency describes one entry of the canonical currency registry.
type Currency struct {
	Symbol   string
	Decimals uint
}

// Currencies is the canonical currency registry of the ledger. All amounts are
// expressed in the smallest subunit of these currencies; the decimals of a
// caller-supplied currency identifier must match the registry exactly.
var Currencies = map[string]Currency{
	"XUS": {Symbol: "XUS", Decimals: 6},
	"XDX": {Symbol: "XDX", Decimals: 6},
}

// Params holds the invariant parameters of one Diem network. They are read-only
// after startup and shared by all components.
type Params struct {
	Network string
	ChainID uint8
}

// Networks maps the configurable network names to their chain parameters.
var Networks = map[string]Params{
	Mainnet: {Network: Mainnet, ChainID: 1},
	Testnet: {Network: Testnet, ChainID: 2},
	Devnet:  {Network: Devnet, ChainID: 3},
}
