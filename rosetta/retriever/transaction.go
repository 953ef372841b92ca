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

	"github.com/optakt/diem-rosetta/rosetta/failure"
	"github.com/optakt/diem-rosetta/rosetta/identifier"
	"github.com/optakt/diem-rosetta/rosetta/object"
)

// Transaction retrieves the transaction with the given identifier from the
// given block. Every block holds exactly one transaction, so the requested
// hash either is the block's transaction or does not exist in the block.
func (r *Retriever) Transaction(ctx context.Context, blockID identifier.Block, transactionID identifier.Transaction) (*object.Transaction, error) {

	metadata, err := r.ledger.Metadata(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not get ledger metadata: %w", err)
	}

	version, err := r.resolve(blockID, metadata.Version)
	if err != nil {
		return nil, err
	}

	transactions, err := r.ledger.Transactions(ctx, version, 1, true)
	if err != nil {
		return nil, fmt.Errorf("could not get transaction at version %d: %w", version, err)
	}
	if len(transactions) == 0 {
		return nil, failure.UnknownVersion{
			Description: failure.NewDescription("ledger version is not available from the fullnode"),
			Version:     version,
		}
	}
	transaction := transactions[0]

	if blockID.Hash != "" && blockID.Hash != transaction.Hash {
		return nil, failure.InvalidBlock{
			Description: failure.NewDescription("block hash does not match known hash for index",
				failure.WithString("known_hash", transaction.Hash),
			),
			Index: version,
			Hash:  blockID.Hash,
		}
	}

	if transactionID.Hash != transaction.Hash {
		return nil, failure.UnknownTransaction{
			Description: failure.NewDescription("transaction is not part of the given block",
				failure.WithString("block_hash", transaction.Hash),
			),
			Index: version,
			Hash:  transactionID.Hash,
		}
	}

	return r.convert.Transaction(transaction), nil
}
