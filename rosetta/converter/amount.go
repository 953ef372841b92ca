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

package converter

import (
	"strconv"

	"github.com/optakt/diem-rosetta/diem"
	modeldiem "github.com/optakt/diem-rosetta/models/diem"
	"github.com/optakt/diem-rosetta/rosetta/identifier"
	"github.com/optakt/diem-rosetta/rosetta/object"
)

// Amount converts a native amount into a Rosetta amount, negating the value
// for debits. Amount values are exact integer decimal strings in the smallest
// currency unit; no floating point is involved at any point. The second
// return value is false when the currency is not part of the canonical
// registry, in which case the caller skips the amount.
func (c *Converter) Amount(view diem.AmountView, negative bool) (*object.Amount, bool) {

	currency, ok := modeldiem.Currencies[view.Currency]
	if !ok {
		return nil, false
	}

	value := strconv.FormatUint(view.Amount, 10)
	if negative {
		value = "-" + value
	}

	amount := object.Amount{
		Value: value,
		Currency: identifier.Currency{
			Symbol:   currency.Symbol,
			Decimals: currency.Decimals,
		},
	}

	return &amount, true
}

// eventAmount extracts the Rosetta amount of an event, if any. Malformed
// events without an amount are treated like events with an unknown currency
// and skipped.
func (c *Converter) eventAmount(data diem.EventDataView, negative bool) (*object.Amount, bool) {
	if data.Amount == nil {
		return nil, false
	}
	return c.Amount(*data.Amount, negative)
}
