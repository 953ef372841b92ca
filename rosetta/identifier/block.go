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

package identifier

// Block uniquely identifies a block in a particular network. The ledger does
// not batch transactions into blocks, so the index refers to the ledger
// version and the hash is the hash of the transaction committed at that
// version. The index pointer distinguishes an absent index from the genesis
// index in account balance requests.
type Block struct {
	Index *uint64 `json:"index,omitempty"`
	Hash  string  `json:"hash,omitempty"`
}
