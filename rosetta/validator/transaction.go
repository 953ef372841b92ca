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

package validator

import (
	"encoding/hex"

	"github.com/optakt/diem-rosetta/rosetta/failure"
	"github.com/optakt/diem-rosetta/rosetta/identifier"
)

// Transaction checks the format of a transaction identifier. The length was
// already checked by the request validation, but the characters may still not
// be valid hex encoding.
func (v *Validator) Transaction(transaction identifier.Transaction) error {

	_, err := hex.DecodeString(transaction.Hash)
	if err != nil {
		return failure.InvalidTransaction{
			Description: failure.NewDescription("transaction hash is not a valid hex-encoded string",
				failure.WithErr(err),
			),
			Hash: transaction.Hash,
		}
	}

	return nil
}
