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

// InvalidIntent is the failure for a list of operations that does not form a
// valid transfer pair of exactly one debit and one credit of equal magnitude
// in the same currency.
type InvalidIntent struct {
	Description Description
}

func (i InvalidIntent) Error() string {
	return fmt.Sprintf("invalid transaction intent: %s", i.Description)
}

// InvalidSignature is the failure for a signature whose scheme, key or bytes
// do not authorize the constructed transaction.
type InvalidSignature struct {
	Description Description
}

func (i InvalidSignature) Error() string {
	return fmt.Sprintf("invalid transaction signature: %s", i.Description)
}

// InvalidKey is the failure for a public key that cannot be decoded for the
// required signature curve.
type InvalidKey struct {
	Description Description
}

func (i InvalidKey) Error() string {
	return fmt.Sprintf("invalid public key: %s", i.Description)
}
