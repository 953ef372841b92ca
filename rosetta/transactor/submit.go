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
	"encoding/hex"
	"fmt"

	"github.com/optakt/diem-rosetta/diem"
	"github.com/optakt/diem-rosetta/rosetta/failure"
	"github.com/optakt/diem-rosetta/rosetta/identifier"
)

// TransactionIdentifier computes the transaction identifier of a signed
// transaction without any network interaction. It always matches the
// identifier returned by submission of the same transaction, as both are
// computed from the same canonical bytes.
func (t *Transactor) TransactionIdentifier(signedHex string) (identifier.Transaction, error) {

	canonical, err := canonicalBytes(signedHex)
	if err != nil {
		return identifier.Transaction{}, err
	}

	transaction := identifier.Transaction{
		Hash: diem.TransactionHash(canonical),
	}

	return transaction, nil
}

// SubmitTransaction sends a signed transaction to the fullnode for execution
// and returns its transaction identifier. Submission is asynchronous; the
// identifier can be used to poll for the transaction on the data endpoints.
func (t *Transactor) SubmitTransaction(ctx context.Context, signedHex string) (identifier.Transaction, error) {

	canonical, err := canonicalBytes(signedHex)
	if err != nil {
		return identifier.Transaction{}, err
	}

	err = t.ledger.Submit(ctx, hex.EncodeToString(canonical))
	if err != nil {
		return identifier.Transaction{}, fmt.Errorf("could not submit transaction: %w", err)
	}

	transaction := identifier.Transaction{
		Hash: diem.TransactionHash(canonical),
	}

	return transaction, nil
}

// canonicalBytes decodes the hex encoding of a signed transaction and returns
// its canonical bytes, independent of how the caller serialized it.
func canonicalBytes(signedHex string) ([]byte, error) {

	signed, err := diem.DecodeSignedHex(signedHex)
	if err != nil {
		return nil, failure.InvalidPayload{
			Description: failure.NewDescription("could not decode signed transaction",
				failure.WithErr(err),
			),
			Encoding: payloadEncoding,
		}
	}

	canonical, err := diem.EncodeSigned(signed)
	if err != nil {
		return nil, fmt.Errorf("could not encode signed transaction: %w", err)
	}

	return canonical, nil
}
