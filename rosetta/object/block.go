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

package object

import (
	"github.com/optakt/diem-rosetta/rosetta/identifier"
)

// Block contains the transaction committed at one ledger version. The genesis
// block has itself as parent, per Rosetta convention. Timestamps are given in
// milliseconds since the Unix epoch.
type Block struct {
	ID           identifier.Block `json:"block_identifier"`
	ParentID     identifier.Block `json:"parent_block_identifier"`
	Timestamp    int64            `json:"timestamp"`
	Transactions []*Transaction   `json:"transactions"`
}
