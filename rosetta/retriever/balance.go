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

package retriever

import (
	"context"
	"fmt"
	"strconv"

	"github.com/optakt/diem-rosetta/rosetta/failure"
	"github.com/optakt/diem-rosetta/rosetta/identifier"
	"github.com/optakt/diem-rosetta/rosetta/object"
)

// Balances retrieves the balances of the given account in the given
// currencies, along with the exact block they were read at. The fullnode does
// not expose historical account state, so a given block identifier must name
// the latest block; currencies the account holds no funds in yield a zero
// balance.
func (r *Retriever) Balances(ctx context.Context, blockID identifier.Block, accountID identifier.Account, currencies []identifier.Currency) (identifier.Block, []object.Amount, error) {

	// The account state and the ledger metadata are read in one batch, which
	// pins the balances to the returned ledger version.
	account, metadata, err := r.ledger.AccountWithMetadata(ctx, accountID.Address)
	if err != nil {
		return identifier.Block{}, nil, fmt.Errorf("could not get account state: %w", err)
	}
	if account == nil {
		return identifier.Block{}, nil, failure.UnknownAccount{
			Description: failure.NewDescription("account does not exist on the ledger"),
			Address:     accountID.Address,
		}
	}

	if blockID.Index != nil && *blockID.Index != metadata.Version {
		return identifier.Block{}, nil, failure.InvalidBlock{
			Description: failure.NewDescription("historical balance lookup is not supported",
				failure.WithUint64("current", metadata.Version),
			),
			Index: *blockID.Index,
			Hash:  blockID.Hash,
		}
	}

	block, err := r.blockID(ctx, metadata.Version)
	if err != nil {
		return identifier.Block{}, nil, err
	}

	if blockID.Hash != "" && blockID.Hash != block.Hash {
		return identifier.Block{}, nil, failure.InvalidBlock{
			Description: failure.NewDescription("block hash does not match known hash for index",
				failure.WithString("known_hash", block.Hash),
			),
			Index: metadata.Version,
			Hash:  blockID.Hash,
		}
	}

	held := make(map[string]uint64, len(account.Balances))
	for _, balance := range account.Balances {
		held[balance.Currency] = balance.Amount
	}

	amounts := make([]object.Amount, 0, len(currencies))
	for _, currency := range currencies {
		amounts = append(amounts, object.Amount{
			Value:    strconv.FormatUint(held[currency.Symbol], 10),
			Currency: currency,
		})
	}

	return block, amounts, nil
}
