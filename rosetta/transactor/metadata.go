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
	"fmt"

	modeldiem "github.com/optakt/diem-rosetta/models/diem"
	"github.com/optakt/diem-rosetta/rosetta/failure"
	"github.com/optakt/diem-rosetta/rosetta/identifier"
	"github.com/optakt/diem-rosetta/rosetta/object"
)

// Metadata fetches the on-chain state needed to construct a transaction for
// the sender named in the given options. The sequence number is the next one
// of the sender's account; the expiration leaves the caller a fixed window to
// sign and submit, with staleness only detected by the ledger at submission.
func (t *Transactor) Metadata(ctx context.Context, options object.Options) (object.Metadata, error) {

	sender, err := t.validate.Account(identifier.Account{Address: options.SenderAddress})
	if err != nil {
		return object.Metadata{}, fmt.Errorf("invalid sender account: %w", err)
	}

	currency, err := t.validate.Currency(identifier.Currency{Symbol: options.Currency})
	if err != nil {
		return object.Metadata{}, fmt.Errorf("invalid currency: %w", err)
	}

	account, metadata, err := t.ledger.AccountWithMetadata(ctx, sender.Hex())
	if err != nil {
		return object.Metadata{}, fmt.Errorf("could not get account state: %w", err)
	}
	if account == nil {
		return object.Metadata{}, failure.UnknownAccount{
			Description: failure.NewDescription("sender account does not exist on the ledger"),
			Address:     sender.Hex(),
		}
	}

	if metadata.ChainID != t.chainID {
		return object.Metadata{}, fmt.Errorf("configured chain ID does not match ledger chain ID (have: %d, want: %d)", t.chainID, metadata.ChainID)
	}

	result := object.Metadata{
		SequenceNumber:          account.SequenceNumber,
		ChainID:                 t.chainID,
		MaxGasAmount:            modeldiem.DefaultMaxGasAmount,
		GasUnitPrice:            modeldiem.DefaultGasUnitPrice,
		GasCurrency:             currency.Symbol,
		ExpirationTimestampSecs: uint64(t.now().Add(t.expiry).Unix()),
	}

	return result, nil
}
