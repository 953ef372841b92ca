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

package transactor

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/optakt/diem-rosetta/diem"
	modeldiem "github.com/optakt/diem-rosetta/models/diem"
	"github.com/optakt/diem-rosetta/rosetta/failure"
	"github.com/optakt/diem-rosetta/rosetta/object"
)

// requiredOperations is the number of operations a transfer intent consists
// of: one debit on the sender and one credit on the receiver.
const requiredOperations = 2

// Intent is a transfer of one currency between two accounts, as expressed by
// a reconciling pair of operations.
type Intent struct {
	Sender   diem.Address
	Receiver diem.Address
	Amount   uint64
	Currency string
}

// DeriveIntent derives a transfer intent from the two operations given as
// input. The operations must reconcile: a debit and a credit of the same
// magnitude in the same canonical currency, on two different accounts.
func (t *Transactor) DeriveIntent(operations []object.Operation) (*Intent, error) {

	if len(operations) != requiredOperations {
		return nil, failure.InvalidIntent{
			Description: failure.NewDescription("invalid number of operations",
				failure.WithInt("have", len(operations)),
				failure.WithInt("want", requiredOperations),
			),
		}
	}

	// Parse the amounts and order the operations so the debit comes first.
	amounts := make([]int64, requiredOperations)
	for i, op := range operations {
		if op.Amount == nil {
			return nil, failure.InvalidIntent{
				Description: failure.NewDescription("operation is missing amount"),
			}
		}
		amount, err := strconv.ParseInt(op.Amount.Value, 10, 64)
		if err != nil {
			return nil, failure.InvalidIntent{
				Description: failure.NewDescription("could not parse amount",
					failure.WithString("amount", op.Amount.Value),
					failure.WithErr(err),
				),
			}
		}
		amounts[i] = amount
	}

	sort.Slice(operations, func(i int, j int) bool {
		return amounts[i] < amounts[j]
	})
	sort.Slice(amounts, func(i int, j int) bool {
		return amounts[i] < amounts[j]
	})

	// The debit must be strictly negative and the credit strictly positive
	// before reconciling; negating math.MinInt64 overflows, so the sign check
	// has to come first.
	if amounts[0] >= 0 || amounts[1] <= 0 {
		return nil, failure.InvalidIntent{
			Description: failure.NewDescription("transfer needs one debit and one credit",
				failure.WithString("first_amount", operations[0].Amount.Value),
				failure.WithString("second_amount", operations[1].Amount.Value),
			),
		}
	}
	if amounts[0] != -amounts[1] {
		return nil, failure.InvalidIntent{
			Description: failure.NewDescription("transfer amounts do not reconcile",
				failure.WithString("first_amount", operations[0].Amount.Value),
				failure.WithString("second_amount", operations[1].Amount.Value),
			),
		}
	}

	send := operations[0]
	receive := operations[1]

	if send.Type != modeldiem.OperationSentPayment || receive.Type != modeldiem.OperationReceivedPayment {
		return nil, failure.InvalidIntent{
			Description: failure.NewDescription("only transfer operations are supported",
				failure.WithString("debit_type", send.Type),
				failure.WithString("credit_type", receive.Type),
			),
		}
	}

	if send.AccountID == nil || receive.AccountID == nil {
		return nil, failure.InvalidIntent{
			Description: failure.NewDescription("operation is missing account"),
		}
	}

	// Both operations must use the same canonical currency.
	sendCurrency, err := t.validate.Currency(send.Amount.Currency)
	if err != nil {
		return nil, fmt.Errorf("invalid debit currency: %w", err)
	}
	receiveCurrency, err := t.validate.Currency(receive.Amount.Currency)
	if err != nil {
		return nil, fmt.Errorf("invalid credit currency: %w", err)
	}
	if sendCurrency.Symbol != receiveCurrency.Symbol {
		return nil, failure.InvalidIntent{
			Description: failure.NewDescription("transfer currencies do not match",
				failure.WithString("debit_currency", sendCurrency.Symbol),
				failure.WithString("credit_currency", receiveCurrency.Symbol),
			),
		}
	}

	sender, err := t.validate.Account(*send.AccountID)
	if err != nil {
		return nil, fmt.Errorf("invalid sender account: %w", err)
	}
	receiver, err := t.validate.Account(*receive.AccountID)
	if err != nil {
		return nil, fmt.Errorf("invalid receiver account: %w", err)
	}
	if sender == receiver {
		return nil, failure.InvalidIntent{
			Description: failure.NewDescription("sender and receiver must differ",
				failure.WithString("address", sender.Hex()),
			),
		}
	}

	// The debit is first, so the second amount is the positive one.
	intent := Intent{
		Sender:   sender,
		Receiver: receiver,
		Amount:   uint64(amounts[1]),
		Currency: sendCurrency.Symbol,
	}

	return &intent, nil
}
