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

// Block checks the format of a block identifier. Both fields are optional; a
// fully empty identifier means the latest block. Whether the identified block
// exists on the ledger is only known once the ledger is queried, so that
// check lives with the retrieval.
func (v *Validator) Block(block identifier.Block) error {

	if block.Hash == "" {
		return nil
	}

	_, err := hex.DecodeString(block.Hash)
	if err != nil {
		index := uint64(0)
		if block.Index != nil {
			index = *block.Index
		}
		return failure.InvalidBlock{
			Description: failure.NewDescription("block hash is not a valid hex-encoded string",
				failure.WithErr(err),
			),
			Index: index,
			Hash:  block.Hash,
		}
	}

	return nil
}
