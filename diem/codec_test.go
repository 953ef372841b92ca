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

package diem_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/optakt/diem-rosetta/diem"
)

func testRawTransaction(t *testing.T) diem.RawTransaction {
	t.Helper()

	sender, err := diem.HexToAddress("e12cd10ad1a2d06d5b0c6d83e2c2e79d")
	require.NoError(t, err)
	receiver, err := diem.HexToAddress("d4f0b4ba56d3b33fdc0d0a875660a756")
	require.NoError(t, err)

	return diem.RawTransaction{
		Sender:         sender,
		SequenceNumber: 42,
		Script: diem.Script{
			Currency: "XUS",
			Receiver: receiver,
			Amount:   1_000_000,
		},
		MaxGasAmount:            10_000,
		GasUnitPrice:            0,
		GasCurrency:             "XUS",
		ExpirationTimestampSecs: 1_625_097_600,
		ChainID:                 2,
	}
}

func TestEncodeRawRoundtrip(t *testing.T) {

	raw := testRawTransaction(t)

	data, err := diem.EncodeRaw(raw)
	require.NoError(t, err)

	decoded, err := diem.DecodeRaw(data)
	require.NoError(t, err)
	assert.Equal(t, raw, decoded)

	// The encoding is canonical: encoding again yields identical bytes.
	again, err := diem.EncodeRaw(decoded)
	require.NoError(t, err)
	assert.Equal(t, data, again)
}

func TestEncodeSignedRoundtrip(t *testing.T) {

	signed := diem.SignedTransaction{
		Raw:       testRawTransaction(t),
		PublicKey: make([]byte, 32),
		Signature: make([]byte, 64),
	}

	text, err := diem.EncodeSignedHex(signed)
	require.NoError(t, err)

	decoded, err := diem.DecodeSignedHex(text)
	require.NoError(t, err)
	assert.Equal(t, signed, decoded)
}

func TestDecodeRawHexInvalid(t *testing.T) {

	_, err := diem.DecodeRawHex("not-hex")
	assert.Error(t, err)

	_, err = diem.DecodeRawHex("ff00ff00")
	assert.Error(t, err)
}

func TestTransactionHashDomains(t *testing.T) {

	raw := testRawTransaction(t)
	data, err := diem.EncodeRaw(raw)
	require.NoError(t, err)

	// The signing digest and the transaction hash are domain-separated, so
	// they never collide even over identical input bytes.
	digest := diem.SigningDigest(data)
	hash := diem.TransactionHash(data)
	assert.Len(t, digest, 32)
	assert.Len(t, hash, 64)
	assert.NotEqual(t, hash, diem.TransactionHash(append(diem.SigningDigest(nil), data...)))

	// Hashing is deterministic.
	assert.Equal(t, digest, diem.SigningDigest(data))
	assert.Equal(t, hash, diem.TransactionHash(data))
}
