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

package failure

import (
	"fmt"
)

// InvalidBlock is the failure for a block identifier that is inconsistent,
// such as a hash that does not match the transaction committed at the given
// ledger version.
type InvalidBlock struct {
	Description Description
	Index       uint64
	Hash        string
}

func (i InvalidBlock) Error() string {
	return fmt.Sprintf("invalid block (index: %d, hash: %s): %s", i.Index, i.Hash, i.Description)
}

// UnknownBlock is the failure for a block index above the current ledger
// version.
type UnknownBlock struct {
	Description Description
	Index       uint64
	Hash        string
}

func (u UnknownBlock) Error() string {
	return fmt.Sprintf("unknown block (index: %d, hash: %s): %s", u.Index, u.Hash, u.Description)
}

// UnknownVersion is the failure for a historical ledger version that the
// fullnode can no longer serve, for instance because it was pruned.
type UnknownVersion struct {
	Description Description
	Version     uint64
}

func (u UnknownVersion) Error() string {
	return fmt.Sprintf("unknown version (version: %d): %s", u.Version, u.Description)
}
