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

package diem

import (
	"encoding/hex"
	"fmt"

	"github.com/fxamacker/cbor/v2"
)

// The native wire format is canonical deterministic CBOR. Determinism is a
// hard requirement: the same transaction must always serialize to the same
// bytes, as both the signature and the transaction hash are computed over the
// serialized form.
var (
	encMode cbor.EncMode
	decMode cbor.DecMode
)

func init() {

	// We should never fail here if the options are valid, so use panic to keep
	// the error handling of the codec functions simple.
	var err error
	encMode, err = cbor.CanonicalEncOptions().EncMode()
	if err != nil {
		panic(fmt.Sprintf("invalid canonical encoding options: %s", err))
	}
	decMode, err = cbor.DecOptions{}.DecMode()
	if err != nil {
		panic(fmt.Sprintf("invalid decoding options: %s", err))
	}
}

// EncodeRaw serializes an unsigned transaction into its canonical bytes.
func EncodeRaw(raw RawTransaction) ([]byte, error) {
	data, err := encMode.Marshal(raw)
	if err != nil {
		return nil, fmt.Errorf("could not encode raw transaction: %w", err)
	}
	return data, nil
}

// DecodeRaw deserializes the canonical bytes of an unsigned transaction.
func DecodeRaw(data []byte) (RawTransaction, error) {
	var raw RawTransaction
	err := decMode.Unmarshal(data, &raw)
	if err != nil {
		return RawTransaction{}, fmt.Errorf("could not decode raw transaction: %w", err)
	}
	return raw, nil
}

// EncodeSigned serializes a signed transaction into its canonical bytes.
func EncodeSigned(signed SignedTransaction) ([]byte, error) {
	data, err := encMode.Marshal(signed)
	if err != nil {
		return nil, fmt.Errorf("could not encode signed transaction: %w", err)
	}
	return data, nil
}

// DecodeSigned deserializes the canonical bytes of a signed transaction.
func DecodeSigned(data []byte) (SignedTransaction, error) {
	var signed SignedTransaction
	err := decMode.Unmarshal(data, &signed)
	if err != nil {
		return SignedTransaction{}, fmt.Errorf("could not decode signed transaction: %w", err)
	}
	return signed, nil
}

// EncodeRawHex returns the hex encoding of the canonical bytes of an unsigned
// transaction, as exchanged on the construction endpoints.
func EncodeRawHex(raw RawTransaction) (string, error) {
	data, err := EncodeRaw(raw)
	if err != nil {
		return "", err
	}
	return hex.EncodeToString(data), nil
}

// DecodeRawHex parses the hex encoding of an unsigned transaction.
func DecodeRawHex(text string) (RawTransaction, error) {
	data, err := hex.DecodeString(text)
	if err != nil {
		return RawTransaction{}, fmt.Errorf("could not decode transaction hex: %w", err)
	}
	return DecodeRaw(data)
}

// EncodeSignedHex returns the hex encoding of the canonical bytes of a signed
// transaction, as exchanged on the construction endpoints.
func EncodeSignedHex(signed SignedTransaction) (string, error) {
	data, err := EncodeSigned(signed)
	if err != nil {
		return "", err
	}
	return hex.EncodeToString(data), nil
}

// DecodeSignedHex parses the hex encoding of a signed transaction.
func DecodeSignedHex(text string) (SignedTransaction, error) {
	data, err := hex.DecodeString(text)
	if err != nil {
		return SignedTransaction{}, fmt.Errorf("could not decode transaction hex: %w", err)
	}
	return DecodeSigned(data)
}
