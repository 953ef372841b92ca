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

package transactor

import (
	"context"
	"time"

	"github.com/optakt/diem-rosetta/diem"
	modeldiem "github.com/optakt/diem-rosetta/models/diem"
	"github.com/optakt/diem-rosetta/rosetta/identifier"
)

// Curve and signature scheme identifiers of the only signing scheme the
// ledger supports.
const (
	CurveEdwards25519 = "edwards25519"
	SignatureEd25519  = "ed25519"
)

// payloadEncoding names the wire encoding of exchanged transaction payloads
// in failure details.
const payloadEncoding = "cbor"

// Ledger is the part of the fullnode API needed to construct and submit
// transactions.
type Ledger interface {
	AccountWithMetadata(ctx context.Context, address string) (*diem.AccountView, diem.MetadataView, error)
	Submit(ctx context.Context, signedHex string) error
}

// Validator checks the semantic validity of the identifiers found in
// construction requests.
type Validator interface {
	Account(account identifier.Account) (diem.Address, error)
	Currency(currency identifier.Currency) (identifier.Currency, error)
}

// Transactor implements the construction protocol: it derives transfer
// intents from operations, compiles them into native transactions, attaches
// signatures and submits the result. All steps except the metadata fetch and
// the submission are pure functions of their inputs, so any round can be
// re-derived and retried by the caller.
type Transactor struct {
	chainID  uint8
	validate Validator
	ledger   Ledger
	expiry   time.Duration
	now      func() time.Time
}

// New creates a transactor for the chain with the given ID.
func New(chainID uint8, validate Validator, ledger Ledger) *Transactor {

	t := Transactor{
		chainID:  chainID,
		validate: validate,
		ledger:   ledger,
		expiry:   modeldiem.DefaultExpiryWindow,
		now:      time.Now,
	}

	return &t
}
