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
	"encoding/hex"
	"fmt"

	"github.com/optakt/diem-rosetta/diem"
	"github.com/optakt/diem-rosetta/rosetta/identifier"
	"github.com/optakt/diem-rosetta/rosetta/object"
)

// CompileTransaction assembles the native unsigned transaction from a
// transfer intent and the construction metadata. It returns the hex encoding
// of the canonical transaction bytes along with the payload the sender needs
// to sign.
func (t *Transactor) CompileTransaction(intent *Intent, metadata object.Metadata) (string, object.SigningPayload, error) {

	gasCurrency := metadata.GasCurrency
	if gasCurrency == "" {
		gasCurrency = intent.Currency
	}
	chainID := metadata.ChainID
	if chainID == 0 {
		chainID = t.chainID
	}

	raw := diem.RawTransaction{
		Sender:         intent.Sender,
		SequenceNumber: metadata.SequenceNumber,
		Script: diem.Script{
			Currency: intent.Currency,
			Receiver: intent.Receiver,
			Amount:   intent.Amount,
		},
		MaxGasAmount:            metadata.MaxGasAmount,
		GasUnitPrice:            metadata.GasUnitPrice,
		GasCurrency:             gasCurrency,
		ExpirationTimestampSecs: metadata.ExpirationTimestampSecs,
		ChainID:                 chainID,
	}

	rawBytes, err := diem.EncodeRaw(raw)
	if err != nil {
		return "", object.SigningPayload{}, fmt.Errorf("could not encode transaction: %w", err)
	}

	payload := object.SigningPayload{
		AccountID: identifier.Account{
			Address: intent.Sender.Hex(),
		},
		HexBytes:      hex.EncodeToString(diem.SigningDigest(rawBytes)),
		SignatureType: SignatureEd25519,
	}

	return hex.EncodeToString(rawBytes), payload, nil
}
