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

package object

// Options is the output of the preprocess step and the input of the metadata
// step. It names the account whose on-chain state is needed to construct the
// transaction, along with the transfer currency.
type Options struct {
	SenderAddress string `json:"sender_address"`
	Currency      string `json:"currency"`
}

// Metadata is the output of the metadata step and the input of the payloads
// step. It carries everything needed to assemble the native transaction, so
// that the payloads step is a pure function of its inputs and every round of
// the construction protocol can be independently re-derived and retried.
type Metadata struct {
	SequenceNumber          uint64 `json:"sequence_number"`
	ChainID                 uint8  `json:"chain_id"`
	MaxGasAmount            uint64 `json:"max_gas_amount"`
	GasUnitPrice            uint64 `json:"gas_unit_price"`
	GasCurrency             string `json:"gas_currency"`
	ExpirationTimestampSecs uint64 `json:"expiration_timestamp_secs"`
}
