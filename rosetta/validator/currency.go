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
	"github.com/optakt/diem-rosetta/models/diem"
	"github.com/optakt/diem-rosetta/rosetta/failure"
	"github.com/optakt/diem-rosetta/rosetta/identifier"
)

// Currency checks the currency identifier against the canonical registry and
// returns it with the decimals filled in. Decimals are optional on input, but
// when given they must match the registry exactly.
func (v *Validator) Currency(currency identifier.Currency) (identifier.Currency, error) {

	canonical, ok := diem.Currencies[currency.Symbol]
	if !ok {
		return identifier.Currency{}, failure.UnknownCurrency{
			Description: failure.NewDescription("currency symbol is not in the canonical registry"),
			Symbol:      currency.Symbol,
			Decimals:    currency.Decimals,
		}
	}

	if currency.Decimals != 0 && currency.Decimals != canonical.Decimals {
		return identifier.Currency{}, failure.InvalidCurrency{
			Description: failure.NewDescription("currency decimals mismatch with canonical decimals for symbol",
				failure.WithUint64("decimals_want", uint64(canonical.Decimals)),
			),
			Symbol:   currency.Symbol,
			Decimals: currency.Decimals,
		}
	}

	currency.Decimals = canonical.Decimals

	return currency, nil
}
