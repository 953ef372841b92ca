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

// InvalidCurrency is the failure for a currency whose decimals do not match
// the canonical decimals of the ledger's currency registry entry. Conversions
// are rejected rather than rounded.
type InvalidCurrency struct {
	Description Description
	Symbol      string
	Decimals    uint
}

func (i InvalidCurrency) Error() string {
	return fmt.Sprintf("invalid currency (symbol: %s, decimals: %d): %s", i.Symbol, i.Decimals, i.Description)
}

// UnknownCurrency is the failure for a currency symbol that is not part of the
// ledger's canonical currency registry.
type UnknownCurrency struct {
	Description Description
	Symbol      string
	Decimals    uint
}

func (u UnknownCurrency) Error() string {
	return fmt.Sprintf("unknown currency (symbol: %s, decimals: %d): %s", u.Symbol, u.Decimals, u.Description)
}
