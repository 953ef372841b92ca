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
	"fmt"

	"github.com/optakt/diem-rosetta/diem"
	modeldiem "github.com/optakt/diem-rosetta/models/diem"
	"github.com/optakt/diem-rosetta/rosetta/identifier"
	"github.com/optakt/diem-rosetta/rosetta/object"
)

// Converter translates native ledger transactions into their Rosetta form.
// Conversion is total: any native transaction converts without error, with
// unmapped effects degrading to informational operations rather than failing
// the block.
type Converter struct{}

// New creates a converter.
func New() *Converter {
	return &Converter{}
}

// Transaction converts a native transaction view into a Rosetta transaction.
func (c *Converter) Transaction(view diem.TransactionView) *object.Transaction {

	transaction := object.Transaction{
		ID: identifier.Transaction{
			Hash: view.Hash,
		},
		Operations: c.Operations(view),
	}

	return &transaction
}

// Operations converts the effects of a native transaction into Rosetta
// operations: one per event, with unmapped event types degrading to
// informational unknown operations, followed by a synthetic fee operation for
// user transactions, as the native ledger does not emit fee events. A
// transaction without any operations yields a single informational one, so
// that every block carries its transaction.
func (c *Converter) Operations(view diem.TransactionView) []object.Operation {

	status := c.Status(view.VMStatus)

	var operations []object.Operation

	// Transfers show up as a sent payment event on the sender and a received
	// payment event on the receiver. Remember unmatched sent payments so the
	// matching received payment can reference its counterpart.
	sent := make(map[string][]uint)

	for _, event := range view.Events {

		data := event.Data
		index := uint(len(operations))

		switch data.Type {

		case diem.EventSentPayment:
			amount, ok := c.eventAmount(data, true)
			if !ok {
				continue
			}
			key := amountKey(*data.Amount)
			sent[key] = append(sent[key], index)
			operations = append(operations, object.Operation{
				ID:        identifier.Operation{Index: index},
				Type:      modeldiem.OperationSentPayment,
				Status:    status,
				AccountID: &identifier.Account{Address: data.Sender},
				Amount:    amount,
			})

		case diem.EventReceivedPayment:
			amount, ok := c.eventAmount(data, false)
			if !ok {
				continue
			}
			var related []identifier.Operation
			key := amountKey(*data.Amount)
			if indices := sent[key]; len(indices) > 0 {
				related = []identifier.Operation{{Index: indices[0]}}
				sent[key] = indices[1:]
			}
			operations = append(operations, object.Operation{
				ID:         identifier.Operation{Index: index},
				RelatedIDs: related,
				Type:       modeldiem.OperationReceivedPayment,
				Status:     status,
				AccountID:  &identifier.Account{Address: data.Receiver},
				Amount:     amount,
			})

		case diem.EventMint:
			amount, ok := c.eventAmount(data, false)
			if !ok {
				continue
			}
			operations = append(operations, object.Operation{
				ID:        identifier.Operation{Index: index},
				Type:      modeldiem.OperationMint,
				Status:    status,
				AccountID: &identifier.Account{Address: data.Receiver},
				Amount:    amount,
			})

		case diem.EventBurn:
			amount, ok := c.eventAmount(data, true)
			if !ok {
				continue
			}
			operations = append(operations, object.Operation{
				ID:        identifier.Operation{Index: index},
				Type:      modeldiem.OperationBurn,
				Status:    status,
				AccountID: &identifier.Account{Address: data.PreburnAddress},
				Amount:    amount,
			})

		case diem.EventPreburn:
			amount, ok := c.eventAmount(data, true)
			if !ok {
				continue
			}
			operations = append(operations, object.Operation{
				ID:        identifier.Operation{Index: index},
				Type:      modeldiem.OperationPreburn,
				Status:    status,
				AccountID: &identifier.Account{Address: data.PreburnAddress},
				Amount:    amount,
			})

		case diem.EventCancelBurn:
			amount, ok := c.eventAmount(data, false)
			if !ok {
				continue
			}
			operations = append(operations, object.Operation{
				ID:        identifier.Operation{Index: index},
				Type:      modeldiem.OperationCancelBurn,
				Status:    status,
				AccountID: &identifier.Account{Address: data.PreburnAddress},
				Amount:    amount,
			})

		case diem.EventCreateAccount:
			operations = append(operations, object.Operation{
				ID:        identifier.Operation{Index: index},
				Type:      modeldiem.OperationCreateAccount,
				Status:    status,
				AccountID: &identifier.Account{Address: data.CreatedAddress},
			})

		case diem.EventNewEpoch:
			operations = append(operations, object.Operation{
				ID:     identifier.Operation{Index: index},
				Type:   modeldiem.OperationNewEpoch,
				Status: status,
			})

		case diem.EventNewBlock:
			operations = append(operations, object.Operation{
				ID:     identifier.Operation{Index: index},
				Type:   modeldiem.OperationNewBlock,
				Status: status,
			})

		default:
			// The fullnode emits more event types than the ones mapped above.
			// They still surface as informational operations, so no effect of
			// a transaction goes missing.
			operations = append(operations, object.Operation{
				ID:     identifier.Operation{Index: index},
				Type:   modeldiem.OperationUnknown,
				Status: status,
			})
		}
	}

	fee, hasFee := c.fee(view, status)
	if hasFee {
		fee.ID = identifier.Operation{Index: uint(len(operations))}
		operations = append(operations, fee)
	}

	if len(operations) == 0 {
		operations = append(operations, object.Operation{
			ID:     identifier.Operation{Index: 0},
			Type:   c.fallbackType(view.Transaction.Type),
			Status: status,
		})
	}

	return operations
}

// Status maps the native virtual machine status onto the Rosetta operation
// status taxonomy.
func (c *Converter) Status(vm diem.VMStatusView) string {
	if vm.Type == modeldiem.VMStatusExecuted {
		return modeldiem.StatusSuccess
	}
	return modeldiem.StatusFailure
}

// Timestamp converts a native microsecond timestamp into the millisecond
// timestamp Rosetta blocks carry.
func (c *Converter) Timestamp(usecs uint64) int64 {
	return int64(usecs / 1000)
}

// fee builds the synthetic fee operation of a user transaction. Gas is
// charged whether or not the virtual machine executed the payload, so the fee
// is emitted for failed transactions as well.
func (c *Converter) fee(view diem.TransactionView, status string) (object.Operation, bool) {

	if view.Transaction.Type != diem.TransactionUser {
		return object.Operation{}, false
	}

	charged := view.GasUsed * view.Transaction.GasUnitPrice
	if charged == 0 {
		return object.Operation{}, false
	}

	amount, ok := c.Amount(diem.AmountView{Amount: charged, Currency: view.Transaction.GasCurrency}, true)
	if !ok {
		return object.Operation{}, false
	}

	operation := object.Operation{
		Type:      modeldiem.OperationSentFee,
		Status:    status,
		AccountID: &identifier.Account{Address: view.Transaction.Sender},
		Amount:    amount,
	}

	return operation, true
}

// fallbackType picks the informational operation type of a transaction that
// produced no mapped effects.
func (c *Converter) fallbackType(transactionType string) string {
	switch transactionType {
	case diem.TransactionBlockMetadata:
		return modeldiem.OperationNewBlock
	case diem.TransactionWriteSet:
		return modeldiem.OperationUpgrade
	default:
		return modeldiem.OperationUnknown
	}
}

func amountKey(view diem.AmountView) string {
	return fmt.Sprintf("%d/%s", view.Amount, view.Currency)
}
