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

// Block retrieves the block with the given identifier, along with all its
// transactions. A fully empty identifier retrieves the latest block.
func (r *Retriever) Block(ctx context.Context, blockID identifier.Block) (*object.Block, error) {

	metadata, err := r.ledger.Metadata(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not get ledger metadata: %w", err)
	}

	version, err := r.resolve(blockID, metadata.Version)
	if err != nil {
		return nil, err
	}

	// Fetch the block transaction and its parent in a single call; the parent
	// hash is the hash of the transaction at the previous version. Genesis is
	// its own parent.
	start := version
	if version > 0 {
		start = version - 1
	}
	count := version - start + 1
	transactions, err := r.ledger.Transactions(ctx, start, count, true)
	if err != nil {
		return nil, fmt.Errorf("could not get transactions at version %d: %w", start, err)
	}
	if uint64(len(transactions)) < count {
		return nil, failure.UnknownVersion{
			Description: failure.NewDescription("ledger version is not available from the fullnode",
				failure.WithUint64("first_missing", start+uint64(len(transactions))),
			),
			Version: version,
		}
	}

	blockTx := transactions[version-start]
	parentTx := transactions[0]

	if blockID.Hash != "" && blockID.Hash != blockTx.Hash {
		return nil, failure.InvalidBlock{
			Description: failure.NewDescription("block hash does not match known hash for index",
				failure.WithString("known_hash", blockTx.Hash),
			),
			Index: version,
			Hash:  blockID.Hash,
		}
	}

	// The transaction view carries no timestamp of its own, so read the ledger
	// metadata at the block's version for it.
	timestamp := metadata.Timestamp
	if version != metadata.Version {
		at, err := r.ledger.MetadataAt(ctx, version)
		if err != nil {
			return nil, fmt.Errorf("could not get ledger metadata at version %d: %w", version, err)
		}
		timestamp = at.Timestamp
	}

	index := version
	parentIndex := start
	block := object.Block{
		ID: identifier.Block{
			Index: &index,
			Hash:  blockTx.Hash,
		},
		ParentID: identifier.Block{
			Index: &parentIndex,
			Hash:  parentTx.Hash,
		},
		Timestamp:    r.convert.Timestamp(timestamp),
		Transactions: []*object.Transaction{r.convert.Transaction(blockTx)},
	}

	return &block, nil
}

// resolve picks the ledger version a block identifier refers to, bounded by
// the current ledger version.
func (r *Retriever) resolve(blockID identifier.Block, current uint64) (uint64, error) {

	if blockID.Index == nil && blockID.Hash != "" {
		return 0, failure.InvalidBlock{
			Description: failure.NewDescription("block access by hash only is not supported"),
			Hash:        blockID.Hash,
		}
	}

	version := current
	if blockID.Index != nil {
		version = *blockID.Index
	}

	if version > current {
		return 0, failure.UnknownBlock{
			Description: failure.NewDescription("block index is above current ledger version",
				failure.WithUint64("current", current),
			),
			Index: version,
			Hash:  blockID.Hash,
		}
	}

	return version, nil
}
