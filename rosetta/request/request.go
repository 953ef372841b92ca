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

// Package request contains the request bodies of all Rosetta endpoints served
// by this middleware. Every request except the network list carries the
// network identifier, which is checked against the configured network before
// anything else.
package request

import (
	"github.com/optakt/diem-rosetta/rosetta/identifier"
	"github.com/optakt/diem-rosetta/rosetta/object"
)

// Networks is the request of the /network/list endpoint.
type Networks struct {
}

// Status is the request of the /network/status endpoint.
type Status struct {
	NetworkID identifier.Network `json:"network_identifier"`
}

// Options is the request of the /network/options endpoint.
type Options struct {
	NetworkID identifier.Network `json:"network_identifier"`
}

// Block is the request of the /block endpoint. The block identifier may be
// partial; a missing index and hash mean the latest block.
type Block struct {
	NetworkID identifier.Network `json:"network_identifier"`
	BlockID   identifier.Block   `json:"block_identifier"`
}

// Transaction is the request of the /block/transaction endpoint.
type Transaction struct {
	NetworkID     identifier.Network     `json:"network_identifier"`
	BlockID       identifier.Block       `json:"block_identifier"`
	TransactionID identifier.Transaction `json:"transaction_identifier"`
}

// Balance is the request of the /account/balance endpoint. The block
// identifier is optional and, when given, must name the latest block, as the
// fullnode does not expose historical account state.
type Balance struct {
	NetworkID  identifier.Network    `json:"network_identifier"`
	AccountID  identifier.Account    `json:"account_identifier"`
	BlockID    identifier.Block      `json:"block_identifier"`
	Currencies []identifier.Currency `json:"currencies"`
}

// Derive is the request of the /construction/derive endpoint.
type Derive struct {
	NetworkID identifier.Network `json:"network_identifier"`
	PublicKey object.PublicKey   `json:"public_key"`
}

// Preprocess is the request of the /construction/preprocess endpoint.
type Preprocess struct {
	NetworkID  identifier.Network `json:"network_identifier"`
	Operations []object.Operation `json:"operations"`
}

// Metadata is the request of the /construction/metadata endpoint.
type Metadata struct {
	NetworkID identifier.Network `json:"network_identifier"`
	Options   object.Options     `json:"options"`
}

// Payloads is the request of the /construction/payloads endpoint.
type Payloads struct {
	NetworkID  identifier.Network `json:"network_identifier"`
	Operations []object.Operation `json:"operations"`
	Metadata   object.Metadata    `json:"metadata"`
}

// Combine is the request of the /construction/combine endpoint.
type Combine struct {
	NetworkID           identifier.Network `json:"network_identifier"`
	UnsignedTransaction string             `json:"unsigned_transaction"`
	Signatures          []object.Signature `json:"signatures"`
}

// Hash is the request of the /construction/hash endpoint.
type Hash struct {
	NetworkID         identifier.Network `json:"network_identifier"`
	SignedTransaction string             `json:"signed_transaction"`
}

// Submit is the request of the /construction/submit endpoint.
type Submit struct {
	NetworkID         identifier.Network `json:"network_identifier"`
	SignedTransaction string             `json:"signed_transaction"`
}

// Parse is the request of the /construction/parse endpoint.
type Parse struct {
	NetworkID   identifier.Network `json:"network_identifier"`
	Signed      bool               `json:"signed"`
	Transaction string             `json:"transaction"`
}
