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

package validator_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/optakt/diem-rosetta/rosetta/failure"
	"github.com/optakt/diem-rosetta/rosetta/identifier"
	"github.com/optakt/diem-rosetta/rosetta/object"
	"github.com/optakt/diem-rosetta/rosetta/request"
	"github.com/optakt/diem-rosetta/rosetta/validator"
)

const (
	testAddress = "e12cd10ad1a2d06d5b0c6d83e2c2e79d"
	testHash    = "2b0fb244d4a98a8eb3eb5e3924c74c54a2a6f55c2a8a23b3cbcb4342ba0bff50"
)

func testNetwork() identifier.Network {
	return identifier.Network{
		Blockchain: "diem",
		Network:    "testnet",
	}
}

func TestValidator_Request(t *testing.T) {

	validate := validator.New()

	index := uint64(42)
	tests := []struct {
		name    string
		request interface{}
		valid   bool
	}{
		{
			name: "valid balance request",
			request: request.Balance{
				NetworkID:  testNetwork(),
				AccountID:  identifier.Account{Address: testAddress},
				BlockID:    identifier.Block{Index: &index},
				Currencies: []identifier.Currency{{Symbol: "XUS"}},
			},
			valid: true,
		},
		{
			name: "missing blockchain",
			request: request.Balance{
				NetworkID:  identifier.Network{Network: "testnet"},
				AccountID:  identifier.Account{Address: testAddress},
				Currencies: []identifier.Currency{{Symbol: "XUS"}},
			},
		},
		{
			name: "missing network",
			request: request.Balance{
				NetworkID:  identifier.Network{Blockchain: "diem"},
				AccountID:  identifier.Account{Address: testAddress},
				Currencies: []identifier.Currency{{Symbol: "XUS"}},
			},
		},
		{
			name: "missing account address",
			request: request.Balance{
				NetworkID:  testNetwork(),
				Currencies: []identifier.Currency{{Symbol: "XUS"}},
			},
		},
		{
			name: "account address with wrong length",
			request: request.Balance{
				NetworkID:  testNetwork(),
				AccountID:  identifier.Account{Address: "e12cd10a"},
				Currencies: []identifier.Currency{{Symbol: "XUS"}},
			},
		},
		{
			name: "no currencies",
			request: request.Balance{
				NetworkID: testNetwork(),
				AccountID: identifier.Account{Address: testAddress},
			},
		},
		{
			name: "currency without symbol",
			request: request.Balance{
				NetworkID:  testNetwork(),
				AccountID:  identifier.Account{Address: testAddress},
				Currencies: []identifier.Currency{{Decimals: 6}},
			},
		},
		{
			name: "valid block request by index",
			request: request.Block{
				NetworkID: testNetwork(),
				BlockID:   identifier.Block{Index: &index},
			},
			valid: true,
		},
		{
			name: "block hash with wrong length",
			request: request.Block{
				NetworkID: testNetwork(),
				BlockID:   identifier.Block{Hash: "2b0fb244"},
			},
		},
		{
			name: "valid transaction request",
			request: request.Transaction{
				NetworkID:     testNetwork(),
				BlockID:       identifier.Block{Index: &index, Hash: testHash},
				TransactionID: identifier.Transaction{Hash: testHash},
			},
			valid: true,
		},
		{
			name: "transaction hash with wrong length",
			request: request.Transaction{
				NetworkID:     testNetwork(),
				BlockID:       identifier.Block{Index: &index},
				TransactionID: identifier.Transaction{Hash: "2b0fb244"},
			},
		},
		{
			name: "derive without public key",
			request: request.Derive{
				NetworkID: testNetwork(),
			},
		},
		{
			name: "preprocess without operations",
			request: request.Preprocess{
				NetworkID: testNetwork(),
			},
		},
		{
			name: "metadata without sender",
			request: request.Metadata{
				NetworkID: testNetwork(),
			},
		},
		{
			name: "combine without signatures",
			request: request.Combine{
				NetworkID:           testNetwork(),
				UnsignedTransaction: "ff00",
			},
		},
		{
			name: "submit without transaction",
			request: request.Submit{
				NetworkID: testNetwork(),
			},
		},
		{
			name: "valid parse request",
			request: request.Parse{
				NetworkID:   testNetwork(),
				Signed:      true,
				Transaction: "ff00",
			},
			valid: true,
		},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			err := validate.Request(test.request)
			if test.valid {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			var invalidFormat failure.InvalidFormat
			require.ErrorAs(t, err, &invalidFormat)
			assert.NotEmpty(t, invalidFormat.Description.Text)
		})
	}
}

func TestValidator_Account(t *testing.T) {

	validate := validator.New()

	address, err := validate.Account(identifier.Account{Address: testAddress})
	require.NoError(t, err)
	assert.Equal(t, testAddress, address.Hex())

	_, err = validate.Account(identifier.Account{Address: strings.Repeat("z", 32)})
	require.Error(t, err)
	var invalidAccount failure.InvalidAccount
	assert.ErrorAs(t, err, &invalidAccount)
}

func TestValidator_Currency(t *testing.T) {

	validate := validator.New()

	// The decimals field is optional and filled in from the registry.
	currency, err := validate.Currency(identifier.Currency{Symbol: "XUS"})
	require.NoError(t, err)
	assert.Equal(t, "XUS", currency.Symbol)
	assert.Equal(t, uint(6), currency.Decimals)

	// Mismatched decimals are rejected.
	_, err = validate.Currency(identifier.Currency{Symbol: "XUS", Decimals: 8})
	require.Error(t, err)
	var invalidCurrency failure.InvalidCurrency
	assert.ErrorAs(t, err, &invalidCurrency)

	_, err = validate.Currency(identifier.Currency{Symbol: "NOPE"})
	require.Error(t, err)
	var unknownCurrency failure.UnknownCurrency
	assert.ErrorAs(t, err, &unknownCurrency)
}

func TestValidator_Block(t *testing.T) {

	validate := validator.New()

	index := uint64(42)
	err := validate.Block(identifier.Block{Index: &index, Hash: testHash})
	assert.NoError(t, err)

	err = validate.Block(identifier.Block{Index: &index, Hash: strings.Repeat("z", 64)})
	require.Error(t, err)
	var invalidBlock failure.InvalidBlock
	assert.ErrorAs(t, err, &invalidBlock)
}

func TestValidator_Transaction(t *testing.T) {

	validate := validator.New()

	err := validate.Transaction(identifier.Transaction{Hash: testHash})
	assert.NoError(t, err)

	err = validate.Transaction(identifier.Transaction{Hash: strings.Repeat("z", 64)})
	require.Error(t, err)
	var invalidTransaction failure.InvalidTransaction
	assert.ErrorAs(t, err, &invalidTransaction)
}

func TestValidator_Operations(t *testing.T) {

	validate := validator.New()

	operations := []object.Operation{{
		Type:      "sentpayment",
		AccountID: &identifier.Account{Address: testAddress},
		Amount:    &object.Amount{Value: "-100", Currency: identifier.Currency{Symbol: "XUS"}},
	}}

	err := validate.Request(request.Preprocess{
		NetworkID:  testNetwork(),
		Operations: operations,
	})
	assert.NoError(t, err)
}
