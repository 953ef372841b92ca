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

// InvalidTransaction is the failure for a transaction identifier that is not
// a valid native transaction hash encoding.
type InvalidTransaction struct {
	Description Description
	Hash        string
}

func (i InvalidTransaction) Error() string {
	return fmt.Sprintf("invalid transaction (hash: %s): %s", i.Hash, i.Description)
}

// UnknownTransaction is the failure for a transaction hash that does not match
// the transaction committed in the requested block.
type UnknownTransaction struct {
	Description Description
	Index       uint64
	Hash        string
}

func (u UnknownTransaction) Error() string {
	return fmt.Sprintf("unknown transaction (index: %d, hash: %s): %s", u.Index, u.Hash, u.Description)
}

// InvalidPayload is the failure for native transaction bytes that cannot be
// decoded, on the combine, hash, submit and parse endpoints.
type InvalidPayload struct {
	Description Description
	Encoding    string
}

func (i InvalidPayload) Error() string {
	return fmt.Sprintf("invalid transaction payload (encoding: %s): %s", i.Encoding, i.Description)
}
