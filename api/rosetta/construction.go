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

	"github.com/optakt/diem-rosetta/rosetta/identifier"
	"github.com/optakt/diem-rosetta/rosetta/object"
	"github.com/optakt/diem-rosetta/rosetta/transactor"
)

// Transactor implements the rounds of the construction protocol.
type Transactor interface {
	Derive(publicKey object.PublicKey) (identifier.Account, error)
	DeriveIntent(operations []object.Operation) (*transactor.Intent, error)
	Metadata(ctx context.Context, options object.Options) (object.Metadata, error)
	CompileTransaction(intent *transactor.Intent, metadata object.Metadata) (string, object.SigningPayload, error)
	AttachSignature(unsignedHex string, signatures []object.Signature) (string, error)
	TransactionIdentifier(signedHex string) (identifier.Transaction, error)
	SubmitTransaction(ctx context.Context, signedHex string) (identifier.Transaction, error)
	Parse(signed bool, transaction string) ([]object.Operation, []identifier.Account, object.Metadata, error)
}

// Construction implements the Rosetta Construction API endpoints.
type Construction struct {
	config   Configuration
	validate Validator
	transact Transactor
}

// NewConstruction creates the Construction API with the given dependencies.
func NewConstruction(config Configuration, validate Validator, transact Transactor) *Construction {

	c := Construction{
		config:   config,
		validate: validate,
		transact: transact,
	}

	return &c
}
