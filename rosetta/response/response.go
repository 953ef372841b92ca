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

// Package response contains the response bodies of all Rosetta endpoints
// served by this middleware.
package response

import (
	"github.com/optakt/diem-rosetta/rosetta/identifier"
	"github.com/optakt/diem-rosetta/rosetta/meta"
	"github.com/optakt/diem-rosetta/rosetta/object"
)

// Networks is the response of the /network/list endpoint.
type Networks struct {
	NetworkIDs []identifier.Network `json:"network_identifiers"`
}

// Peer is a network peer of the fullnode. The fullnode only exposes the
// number of peers, not their identities, so the peer list is always empty.
type Peer struct {
	ID string `json:"peer_id"`
}

// Status is the response of the /network/status endpoint.
type Status struct {
	CurrentBlockID        identifier.Block `json:"current_block_identifier"`
	CurrentBlockTimestamp int64            `json:"current_block_timestamp"`
	GenesisBlockID        identifier.Block `json:"genesis_block_identifier"`
	Peers                 []Peer           `json:"peers"`
}

// OptionsAllow lists the statuses, operation types and errors this middleware
// can produce.
type OptionsAllow struct {
	OperationStatuses       []meta.StatusDefinition `json:"operation_statuses"`
	OperationTypes          []string                `json:"operation_types"`
	Errors                  []meta.ErrorDefinition  `json:"errors"`
	HistoricalBalanceLookup bool                    `json:"historical_balance_lookup"`
}

// Options is the response of the /network/options endpoint.
type Options struct {
	Version meta.Version `json:"version"`
	Allow   OptionsAllow `json:"allow"`
}

// Block is the response of the /block endpoint. Every native block contains
// exactly one transaction, so the other transactions list is always empty and
// omitted.
type Block struct {
	Block             *object.Block            `json:"block"`
	OtherTransactions []identifier.Transaction `json:"other_transactions,omitempty"`
}

// Transaction is the response of the /block/transaction endpoint.
type Transaction struct {
	Transaction *object.Transaction `json:"transaction"`
}

// Balance is the response of the /account/balance endpoint. The block
// identifier names the exact ledger version the balances were read at.
type Balance struct {
	BlockID  identifier.Block `json:"block_identifier"`
	Balances []object.Amount  `json:"balances"`
}

// Derive is the response of the /construction/derive endpoint.
type Derive struct {
	AccountID identifier.Account `json:"account_identifier"`
}

// Preprocess is the response of the /construction/preprocess endpoint.
type Preprocess struct {
	Options object.Options `json:"options"`
}

// Metadata is the response of the /construction/metadata endpoint.
type Metadata struct {
	Metadata object.Metadata `json:"metadata"`
}

// Payloads is the response of the /construction/payloads endpoint.
type Payloads struct {
	UnsignedTransaction string                 `json:"unsigned_transaction"`
	Payloads            []object.SigningPayload `json:"payloads"`
}

// Combine is the response of the /construction/combine endpoint.
type Combine struct {
	SignedTransaction string `json:"signed_transaction"`
}

// Hash is the response of the /construction/hash endpoint.
type Hash struct {
	TransactionID identifier.Transaction `json:"transaction_identifier"`
}

// Submit is the response of the /construction/submit endpoint.
type Submit struct {
	TransactionID identifier.Transaction `json:"transaction_identifier"`
}

// Parse is the response of the /construction/parse endpoint.
type Parse struct {
	Operations []object.Operation   `json:"operations"`
	SignerIDs  []identifier.Account `json:"account_identifier_signers,omitempty"`
	Metadata   object.Metadata      `json:"metadata"`
}
