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

// The view types mirror the JSON shapes returned by the fullnode JSON-RPC
// API. They are only ever decoded, never encoded, so fields the middleware
// does not consume are simply omitted.

// Native transaction types as reported by the fullnode.
const (
	TransactionUser          = "user"
	TransactionBlockMetadata = "blockmetadata"
	TransactionWriteSet      = "writeset"
)

// Native event types mapped to their own operation types. The fullnode emits
// more event types than these; unlisted ones convert to the unknown operation
// type.
const (
	EventReceivedPayment = "receivedpayment"
	EventSentPayment     = "sentpayment"
	EventMint            = "mint"
	EventBurn            = "burn"
	EventPreburn         = "preburn"
	EventCancelBurn      = "cancelburn"
	EventCreateAccount   = "createaccount"
	EventNewEpoch        = "newepoch"
	EventNewBlock        = "newblock"
)

// MetadataView is the result of the `get_metadata` method.
type MetadataView struct {
	Version       uint64 `json:"version"`
	Timestamp     uint64 `json:"timestamp"`
	ChainID       uint8  `json:"chain_id"`
	AccumulatorID string `json:"accumulator_root_hash"`
}

// AmountView is a balance or transfer amount in a single currency.
type AmountView struct {
	Amount   uint64 `json:"amount"`
	Currency string `json:"currency"`
}

// AccountView is the result of the `get_account` method.
type AccountView struct {
	Address           string       `json:"address"`
	Balances          []AmountView `json:"balances"`
	SequenceNumber    uint64       `json:"sequence_number"`
	AuthenticationKey string       `json:"authentication_key"`
}

// VMStatusView describes the execution outcome of a transaction on-chain.
type VMStatusView struct {
	Type      string `json:"type"`
	Location  string `json:"location,omitempty"`
	AbortCode uint64 `json:"abort_code,omitempty"`
}

// TransactionDataView holds the type-dependent fields of a transaction. Only
// user transactions carry the sender and gas fields; block metadata
// transactions carry the proposal timestamp instead.
type TransactionDataView struct {
	Type                    string `json:"type"`
	Sender                  string `json:"sender,omitempty"`
	SequenceNumber          uint64 `json:"sequence_number,omitempty"`
	ChainID                 uint8  `json:"chain_id,omitempty"`
	MaxGasAmount            uint64 `json:"max_gas_amount,omitempty"`
	GasUnitPrice            uint64 `json:"gas_unit_price,omitempty"`
	GasCurrency             string `json:"gas_currency,omitempty"`
	ExpirationTimestampSecs uint64 `json:"expiration_timestamp_secs,omitempty"`
	TimestampUsecs          uint64 `json:"timestamp_usecs,omitempty"`
}

// EventDataView holds the type-dependent fields of an event. Which fields are
// set depends on the event type; a payment event has an amount and a
// counterparty, while lifecycle events carry their own addresses.
type EventDataView struct {
	Type           string      `json:"type"`
	Amount         *AmountView `json:"amount,omitempty"`
	Sender         string      `json:"sender,omitempty"`
	Receiver       string      `json:"receiver,omitempty"`
	CreatedAddress string      `json:"created_address,omitempty"`
	PreburnAddress string      `json:"preburn_address,omitempty"`
}

// EventView is an event emitted by a transaction.
type EventView struct {
	Key                string        `json:"key"`
	SequenceNumber     uint64        `json:"sequence_number"`
	TransactionVersion uint64        `json:"transaction_version"`
	Data               EventDataView `json:"data"`
}

// TransactionView is an element of the result of the `get_transactions`
// method.
type TransactionView struct {
	Version     uint64              `json:"version"`
	Hash        string              `json:"hash"`
	VMStatus    VMStatusView        `json:"vm_status"`
	Transaction TransactionDataView `json:"transaction"`
	Events      []EventView         `json:"events"`
	GasUsed     uint64              `json:"gas_used"`
}
