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
	"strconv"

	"github.com/optakt/diem-rosetta/diem"
	modeldiem "github.com/optakt/diem-rosetta/models/diem"
	"github.com/optakt/diem-rosetta/rosetta/failure"
	"github.com/optakt/diem-rosetta/rosetta/identifier"
	"github.com/optakt/diem-rosetta/rosetta/object"
)

// Parse decodes a constructed transaction back into the operations and
// metadata it was constructed from, so the caller can confirm the transaction
// matches its intent before and after signing. For signed transactions, the
// sender is returned as the signer. Parsed operations carry no status, as the
// transaction was not executed.
func (t *Transactor) Parse(signed bool, transaction string) ([]object.Operation, []identifier.Account, object.Metadata, error) {

	var raw diem.RawTransaction
	var signers []identifier.Account
	if signed {
		signedTx, err := diem.DecodeSignedHex(transaction)
		if err != nil {
			return nil, nil, object.Metadata{}, failure.InvalidPayload{
				Description: failure.NewDescription("could not decode signed transaction",
					failure.WithErr(err),
				),
				Encoding: payloadEncoding,
			}
		}
		raw = signedTx.Raw
		signers = []identifier.Account{{Address: raw.Sender.Hex()}}
	} else {
		var err error
		raw, err = diem.DecodeRawHex(transaction)
		if err != nil {
			return nil, nil, object.Metadata{}, failure.InvalidPayload{
				Description: failure.NewDescription("could not decode unsigned transaction",
					failure.WithErr(err),
				),
				Encoding: payloadEncoding,
			}
		}
	}

	currency, err := t.validate.Currency(identifier.Currency{Symbol: raw.Script.Currency})
	if err != nil {
		return nil, nil, object.Metadata{}, fmt.Errorf("invalid transaction currency: %w", err)
	}

	value := strconv.FormatUint(raw.Script.Amount, 10)
	operations := []object.Operation{
		{
			ID:        identifier.Operation{Index: 0},
			Type:      modeldiem.OperationSentPayment,
			AccountID: &identifier.Account{Address: raw.Sender.Hex()},
			Amount: &object.Amount{
				Value:    "-" + value,
				Currency: currency,
			},
		},
		{
			ID:         identifier.Operation{Index: 1},
			RelatedIDs: []identifier.Operation{{Index: 0}},
			Type:       modeldiem.OperationReceivedPayment,
			AccountID:  &identifier.Account{Address: raw.Script.Receiver.Hex()},
			Amount: &object.Amount{
				Value:    value,
				Currency: currency,
			},
		},
	}

	metadata := object.Metadata{
		SequenceNumber:          raw.SequenceNumber,
		ChainID:                 raw.ChainID,
		MaxGasAmount:            raw.MaxGasAmount,
		GasUnitPrice:            raw.GasUnitPrice,
		GasCurrency:             raw.GasCurrency,
		ExpirationTimestampSecs: raw.ExpirationTimestampSecs,
	}

	return operations, signers, metadata, nil
}
