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

	"github.com/optakt/diem-rosetta/diem"
	"github.com/optakt/diem-rosetta/rosetta/converter"
	"github.com/optakt/diem-rosetta/rosetta/failure"
	"github.com/optakt/diem-rosetta/rosetta/identifier"
)

// Ledger is the part of the fullnode API needed to serve the data endpoints.
type Ledger interface {
	Metadata(ctx context.Context) (diem.MetadataView, error)
	MetadataAt(ctx context.Context, version uint64) (diem.MetadataView, error)
	Transactions(ctx context.Context, start uint64, limit uint64, includeEvents bool) ([]diem.TransactionView, error)
	AccountWithMetadata(ctx context.Context, address string) (*diem.AccountView, diem.MetadataView, error)
}

// Retriever reads blocks, transactions and balances from the fullnode and
// serves them in their Rosetta form. Each ledger version is one block holding
// exactly the transaction committed at that version, so block retrieval is
// transaction retrieval with the version as block index.
type Retriever struct {
	ledger  Ledger
	convert *converter.Converter
}

// New creates a retriever on top of the given ledger.
func New(ledger Ledger, convert *converter.Converter) *Retriever {

	r := Retriever{
		ledger:  ledger,
		convert: convert,
	}

	return &r
}

// Current returns the identifier and timestamp of the latest block.
func (r *Retriever) Current(ctx context.Context) (identifier.Block, int64, error) {

	metadata, err := r.ledger.Metadata(ctx)
	if err != nil {
		return identifier.Block{}, 0, fmt.Errorf("could not get ledger metadata: %w", err)
	}

	block, err := r.blockID(ctx, metadata.Version)
	if err != nil {
		return identifier.Block{}, 0, err
	}

	return block, r.convert.Timestamp(metadata.Timestamp), nil
}

// Genesis returns the identifier of the genesis block.
func (r *Retriever) Genesis(ctx context.Context) (identifier.Block, error) {
	return r.blockID(ctx, 0)
}

// blockID assembles the full block identifier of the given ledger version.
func (r *Retriever) blockID(ctx context.Context, version uint64) (identifier.Block, error) {

	transactions, err := r.ledger.Transactions(ctx, version, 1, false)
	if err != nil {
		return identifier.Block{}, fmt.Errorf("could not get transaction at version %d: %w", version, err)
	}
	if len(transactions) == 0 {
		return identifier.Block{}, failure.UnknownVersion{
			Description: failure.NewDescription("ledger version is not available from the fullnode"),
			Version:     version,
		}
	}

	index := version
	block := identifier.Block{
		Index: &index,
		Hash:  transactions[0].Hash,
	}

	return block, nil
}
