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

// Script is the payload of a native peer-to-peer transfer transaction. The
// only script this middleware constructs and parses is a single transfer of
// one currency from the sender to the receiver.
type Script struct {
	Currency string  `cbor:"1,keyasint"`
	Receiver Address `cbor:"2,keyasint"`
	Amount   uint64  `cbor:"3,keyasint"`
}

// RawTransaction is the unsigned native transaction. Its canonical binary
// encoding is what the sender signs; the sequence number protects against
// replay and the expiration timestamp bounds how long the transaction can
// stay submittable.
type RawTransaction struct {
	Sender                  Address `cbor:"1,keyasint"`
	SequenceNumber          uint64  `cbor:"2,keyasint"`
	Script                  Script  `cbor:"3,keyasint"`
	MaxGasAmount            uint64  `cbor:"4,keyasint"`
	GasUnitPrice            uint64  `cbor:"5,keyasint"`
	GasCurrency             string  `cbor:"6,keyasint"`
	ExpirationTimestampSecs uint64  `cbor:"7,keyasint"`
	ChainID                 uint8   `cbor:"8,keyasint"`
}

// SignedTransaction is a raw transaction with the authenticator attached,
// ready for submission to the fullnode.
type SignedTransaction struct {
	Raw       RawTransaction `cbor:"1,keyasint"`
	PublicKey []byte         `cbor:"2,keyasint"`
	Signature []byte         `cbor:"3,keyasint"`
}
