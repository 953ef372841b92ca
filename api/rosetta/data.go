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

package rosetta

import (
	"context"

	"github.com/optakt/diem-rosetta/diem"
	"github.com/optakt/diem-rosetta/rosetta/identifier"
	"github.com/optakt/diem-rosetta/rosetta/meta"
	"github.com/optakt/diem-rosetta/rosetta/object"
)

// Configuration is the static network context the endpoints serve.
type Configuration interface {
	Network() identifier.Network
	Version() meta.Version
	Statuses() []meta.StatusDefinition
	Operations() []string
	Errors() []meta.ErrorDefinition
	Check(network identifier.Network) error
}

// Validator checks request format and identifier semantics.
type Validator interface {
	Request(req interface{}) error
	Account(account identifier.Account) (diem.Address, error)
	Currency(currency identifier.Currency) (identifier.Currency, error)
	Block(block identifier.Block) error
	Transaction(transaction identifier.Transaction) error
}

// Retriever reads blocks, transactions and balances from the ledger.
type Retriever interface {
	Current(ctx context.Context) (identifier.Block, int64, error)
	Genesis(ctx context.Context) (identifier.Block, error)
	Block(ctx context.Context, blockID identifier.Block) (*object.Block, error)
	Transaction(ctx context.Context, blockID identifier.Block, transactionID identifier.Transaction) (*object.Transaction, error)
	Balances(ctx context.Context, blockID identifier.Block, accountID identifier.Account, currencies []identifier.Currency) (identifier.Block, []object.Amount, error)
}

// Data implements the Rosetta Data API endpoints.
type Data struct {
	config   Configuration
	validate Validator
	retrieve Retriever
}

// NewData creates the Data API with the given dependencies.
func NewData(config Configuration, validate Validator, retrieve Retriever) *Data {

	d := Data{
		config:   config,
		validate: validate,
		retrieve: retrieve,
	}

	return &d
}
