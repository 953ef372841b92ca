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

package rosetta_test

import (
	"context"
	"crypto/ed25519"
	"encoding/hex"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	api "github.com/optakt/diem-rosetta/api/rosetta"
	"github.com/optakt/diem-rosetta/diem"
	modeldiem "github.com/optakt/diem-rosetta/models/diem"
	"github.com/optakt/diem-rosetta/rosetta/configuration"
	"github.com/optakt/diem-rosetta/rosetta/identifier"
	"github.com/optakt/diem-rosetta/rosetta/object"
	"github.com/optakt/diem-rosetta/rosetta/request"
	"github.com/optakt/diem-rosetta/rosetta/response"
	"github.com/optakt/diem-rosetta/rosetta/transactor"
	"github.com/optakt/diem-rosetta/rosetta/validator"
)

const testReceiver = "d4f0b4ba56d3b33fdc0d0a875660a756"

// mockConstructionLedger backs the transactor with a canned account state and
// records submissions.
type mockConstructionLedger struct {
	account   *diem.AccountView
	metadata  diem.MetadataView
	submitted []string
}

func (m *mockConstructionLedger) AccountWithMetadata(_ context.Context, _ string) (*diem.AccountView, diem.MetadataView, error) {
	return m.account, m.metadata, nil
}

func (m *mockConstructionLedger) Submit(_ context.Context, signedHex string) error {
	m.submitted = append(m.submitted, signedHex)
	return nil
}

func testConstruction(ledger *mockConstructionLedger) *api.Construction {
	params := modeldiem.Networks[modeldiem.Testnet]
	config := configuration.New(params)
	validate := validator.New()
	transact := transactor.New(params.ChainID, validate, ledger)
	return api.NewConstruction(config, validate, transact)
}

func transferOperations(sender string, value string) []object.Operation {
	currency := identifier.Currency{Symbol: "XUS", Decimals: 6}
	return []object.Operation{
		{
			ID:        identifier.Operation{Index: 0},
			Type:      modeldiem.OperationSentPayment,
			AccountID: &identifier.Account{Address: sender},
			Amount:    &object.Amount{Value: "-" + value, Currency: currency},
		},
		{
			ID:        identifier.Operation{Index: 1},
			Type:      modeldiem.OperationReceivedPayment,
			AccountID: &identifier.Account{Address: testReceiver},
			Amount:    &object.Amount{Value: value, Currency: currency},
		},
	}
}

// TestConstruction_Flow drives a transfer through every construction endpoint
// in protocol order, signing the payload with a locally generated key.
func TestConstruction_Flow(t *testing.T) {

	pub, priv, err := ed25519.GenerateKey(nil)
	require.NoError(t, err)

	ledger := &mockConstructionLedger{
		account:  &diem.AccountView{SequenceNumber: 7},
		metadata: diem.MetadataView{Version: 1337, ChainID: 2},
	}
	construct := testConstruction(ledger)

	// Derive the sender account from the public key.
	rec := invoke(t, construct.Derive, encode(t, request.Derive{
		NetworkID: testNetwork(),
		PublicKey: object.PublicKey{
			HexBytes:  hex.EncodeToString(pub),
			CurveType: transactor.CurveEdwards25519,
		},
	}))
	var derive response.Derive
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &derive))
	sender := derive.AccountID.Address
	assert.Equal(t, diem.DeriveAddress(pub).Hex(), sender)

	operations := transferOperations(sender, "1000")

	// Preprocess the operations into metadata options.
	rec = invoke(t, construct.Preprocess, encode(t, request.Preprocess{
		NetworkID:  testNetwork(),
		Operations: operations,
	}))
	var preprocess response.Preprocess
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &preprocess))
	assert.Equal(t, sender, preprocess.Options.SenderAddress)
	assert.Equal(t, "XUS", preprocess.Options.Currency)

	// Fetch the construction metadata for the sender.
	rec = invoke(t, construct.Metadata, encode(t, request.Metadata{
		NetworkID: testNetwork(),
		Options:   preprocess.Options,
	}))
	var metadata response.Metadata
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &metadata))
	assert.Equal(t, uint64(7), metadata.Metadata.SequenceNumber)
	assert.Equal(t, uint8(2), metadata.Metadata.ChainID)

	// Compile the unsigned transaction and its signing payload.
	rec = invoke(t, construct.Payloads, encode(t, request.Payloads{
		NetworkID:  testNetwork(),
		Operations: operations,
		Metadata:   metadata.Metadata,
	}))
	var payloads response.Payloads
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payloads))
	require.Len(t, payloads.Payloads, 1)
	assert.Equal(t, sender, payloads.Payloads[0].AccountID.Address)

	digest, err := hex.DecodeString(payloads.Payloads[0].HexBytes)
	require.NoError(t, err)
	signature := ed25519.Sign(priv, digest)

	// Attach the signature.
	rec = invoke(t, construct.Combine, encode(t, request.Combine{
		NetworkID:           testNetwork(),
		UnsignedTransaction: payloads.UnsignedTransaction,
		Signatures: []object.Signature{{
			SigningPayload: payloads.Payloads[0],
			PublicKey: object.PublicKey{
				HexBytes:  hex.EncodeToString(pub),
				CurveType: transactor.CurveEdwards25519,
			},
			SignatureType: transactor.SignatureEd25519,
			HexBytes:      hex.EncodeToString(signature),
		}},
	}))
	var combine response.Combine
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &combine))
	require.NotEmpty(t, combine.SignedTransaction)

	// The hash endpoint gives the transaction identifier without submitting.
	rec = invoke(t, construct.Hash, encode(t, request.Hash{
		NetworkID:         testNetwork(),
		SignedTransaction: combine.SignedTransaction,
	}))
	var hash response.Hash
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &hash))
	assert.Len(t, hash.TransactionID.Hash, 64)
	assert.Empty(t, ledger.submitted)

	// Submitting returns the same identifier.
	rec = invoke(t, construct.Submit, encode(t, request.Submit{
		NetworkID:         testNetwork(),
		SignedTransaction: combine.SignedTransaction,
	}))
	var submit response.Submit
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &submit))
	assert.Equal(t, hash.TransactionID, submit.TransactionID)
	require.Len(t, ledger.submitted, 1)

	// Parsing the signed transaction recovers the operations and signer.
	rec = invoke(t, construct.Parse, encode(t, request.Parse{
		NetworkID:   testNetwork(),
		Signed:      true,
		Transaction: combine.SignedTransaction,
	}))
	var parse response.Parse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &parse))
	require.Len(t, parse.Operations, 2)
	assert.Equal(t, "-1000", parse.Operations[0].Amount.Value)
	assert.Equal(t, "1000", parse.Operations[1].Amount.Value)
	require.Len(t, parse.SignerIDs, 1)
	assert.Equal(t, sender, parse.SignerIDs[0].Address)
	assert.Equal(t, metadata.Metadata, parse.Metadata)
}

func TestConstruction_Errors(t *testing.T) {

	ledger := &mockConstructionLedger{
		metadata: diem.MetadataView{Version: 1337, ChainID: 2},
	}
	construct := testConstruction(ledger)

	t.Run("intent with one operation", func(t *testing.T) {
		rec := invoke(t, construct.Preprocess, encode(t, request.Preprocess{
			NetworkID:  testNetwork(),
			Operations: transferOperations(testAddress, "1000")[:1],
		}))

		var res rosettaError
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
		assert.Equal(t, configuration.ErrorInvalidIntent.Code, res.Code)
	})

	t.Run("metadata for unknown sender", func(t *testing.T) {
		rec := invoke(t, construct.Metadata, encode(t, request.Metadata{
			NetworkID: testNetwork(),
			Options: object.Options{
				SenderAddress: testAddress,
				Currency:      "XUS",
			},
		}))

		var res rosettaError
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
		assert.Equal(t, configuration.ErrorUnknownAccount.Code, res.Code)
	})

	t.Run("submit with malformed payload", func(t *testing.T) {
		rec := invoke(t, construct.Submit, encode(t, request.Submit{
			NetworkID:         testNetwork(),
			SignedTransaction: "ff00ff00",
		}))

		var res rosettaError
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
		assert.Equal(t, configuration.ErrorInvalidPayload.Code, res.Code)
	})

	t.Run("derive with wrong curve", func(t *testing.T) {
		rec := invoke(t, construct.Derive, encode(t, request.Derive{
			NetworkID: testNetwork(),
			PublicKey: object.PublicKey{
				HexBytes:  "abcdef",
				CurveType: "secp256k1",
			},
		}))

		var res rosettaError
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
		assert.Equal(t, configuration.ErrorInvalidKey.Code, res.Code)
	})
}
