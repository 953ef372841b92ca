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
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	api "github.com/optakt/diem-rosetta/api/rosetta"
	modeldiem "github.com/optakt/diem-rosetta/models/diem"
	"github.com/optakt/diem-rosetta/rosetta/configuration"
	"github.com/optakt/diem-rosetta/rosetta/identifier"
	"github.com/optakt/diem-rosetta/rosetta/object"
	"github.com/optakt/diem-rosetta/rosetta/request"
	"github.com/optakt/diem-rosetta/rosetta/response"
	"github.com/optakt/diem-rosetta/rosetta/validator"
)

const (
	testAddress = "e12cd10ad1a2d06d5b0c6d83e2c2e79d"
	currentHash = "a222222222222222222222222222222222222222222222222222222222222222"
	genesisHash = "a000000000000000000000000000000000000000000000000000000000000000"
)

// mockRetriever serves canned data for the Data API endpoints.
type mockRetriever struct {
	current     identifier.Block
	timestamp   int64
	genesis     identifier.Block
	block       *object.Block
	transaction *object.Transaction
	balances    []object.Amount
	err         error
}

func (m *mockRetriever) Current(_ context.Context) (identifier.Block, int64, error) {
	return m.current, m.timestamp, m.err
}

func (m *mockRetriever) Genesis(_ context.Context) (identifier.Block, error) {
	return m.genesis, m.err
}

func (m *mockRetriever) Block(_ context.Context, _ identifier.Block) (*object.Block, error) {
	return m.block, m.err
}

func (m *mockRetriever) Transaction(_ context.Context, _ identifier.Block, _ identifier.Transaction) (*object.Transaction, error) {
	return m.transaction, m.err
}

func (m *mockRetriever) Balances(_ context.Context, _ identifier.Block, _ identifier.Account, _ []identifier.Currency) (identifier.Block, []object.Amount, error) {
	return m.current, m.balances, m.err
}

func testRetriever() *mockRetriever {
	currentIndex := uint64(2)
	genesisIndex := uint64(0)
	current := identifier.Block{Index: &currentIndex, Hash: currentHash}
	genesis := identifier.Block{Index: &genesisIndex, Hash: genesisHash}
	return &mockRetriever{
		current:   current,
		timestamp: 1_625_097_602_000,
		genesis:   genesis,
		block: &object.Block{
			ID:        current,
			ParentID:  identifier.Block{Index: &genesisIndex, Hash: genesisHash},
			Timestamp: 1_625_097_602_000,
			Transactions: []*object.Transaction{
				{ID: identifier.Transaction{Hash: currentHash}},
			},
		},
		transaction: &object.Transaction{ID: identifier.Transaction{Hash: currentHash}},
		balances: []object.Amount{
			{Value: "500", Currency: identifier.Currency{Symbol: "XUS", Decimals: 6}},
		},
	}
}

func testData(retrieve *mockRetriever) *api.Data {
	config := configuration.New(modeldiem.Networks[modeldiem.Testnet])
	return api.NewData(config, validator.New(), retrieve)
}

// rosettaError mirrors the JSON shape of a Rosetta error response.
type rosettaError struct {
	Code        uint                   `json:"code"`
	Message     string                 `json:"message"`
	Retriable   bool                   `json:"retriable"`
	Description string                 `json:"description"`
	Details     map[string]interface{} `json:"details"`
}

func invoke(t *testing.T, handler echo.HandlerFunc, body string) *httptest.ResponseRecorder {
	t.Helper()

	server := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	err := handler(server.NewContext(req, rec))
	require.NoError(t, err)

	// Errors are signaled inside the response body, never with the transport
	// status code.
	require.Equal(t, http.StatusOK, rec.Code)

	return rec
}

func encode(t *testing.T, req interface{}) string {
	t.Helper()

	data, err := json.Marshal(req)
	require.NoError(t, err)
	return string(data)
}

func testNetwork() identifier.Network {
	return identifier.Network{
		Blockchain: modeldiem.Blockchain,
		Network:    modeldiem.Testnet,
	}
}

func TestData_Networks(t *testing.T) {

	data := testData(testRetriever())

	rec := invoke(t, data.Networks, `{}`)

	var res response.Networks
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	require.Len(t, res.NetworkIDs, 1)
	assert.Equal(t, testNetwork(), res.NetworkIDs[0])
}

func TestData_Status(t *testing.T) {

	retrieve := testRetriever()
	data := testData(retrieve)

	rec := invoke(t, data.Status, encode(t, request.Status{NetworkID: testNetwork()}))

	var res response.Status
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.Equal(t, retrieve.current, res.CurrentBlockID)
	assert.Equal(t, retrieve.timestamp, res.CurrentBlockTimestamp)
	assert.Equal(t, retrieve.genesis, res.GenesisBlockID)
	require.NotNil(t, res.Peers)
	assert.Empty(t, res.Peers)
}

func TestData_Options(t *testing.T) {

	data := testData(testRetriever())

	rec := invoke(t, data.Options, encode(t, request.Options{NetworkID: testNetwork()}))

	var res response.Options
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.Equal(t, configuration.RosettaVersion, res.Version.RosettaVersion)
	assert.Len(t, res.Allow.OperationStatuses, 3)
	assert.Equal(t, modeldiem.OperationTypes, res.Allow.OperationTypes)
	assert.Len(t, res.Allow.Errors, 19)
	assert.False(t, res.Allow.HistoricalBalanceLookup)
}

func TestData_Block(t *testing.T) {

	retrieve := testRetriever()
	data := testData(retrieve)

	index := uint64(2)
	rec := invoke(t, data.Block, encode(t, request.Block{
		NetworkID: testNetwork(),
		BlockID:   identifier.Block{Index: &index},
	}))

	var res response.Block
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	require.NotNil(t, res.Block)
	assert.Equal(t, currentHash, res.Block.ID.Hash)
	require.Len(t, res.Block.Transactions, 1)
}

func TestData_Transaction(t *testing.T) {

	data := testData(testRetriever())

	index := uint64(2)
	rec := invoke(t, data.Transaction, encode(t, request.Transaction{
		NetworkID:     testNetwork(),
		BlockID:       identifier.Block{Index: &index},
		TransactionID: identifier.Transaction{Hash: currentHash},
	}))

	var res response.Transaction
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	require.NotNil(t, res.Transaction)
	assert.Equal(t, currentHash, res.Transaction.ID.Hash)
}

func TestData_Balance(t *testing.T) {

	retrieve := testRetriever()
	data := testData(retrieve)

	rec := invoke(t, data.Balance, encode(t, request.Balance{
		NetworkID:  testNetwork(),
		AccountID:  identifier.Account{Address: testAddress},
		Currencies: []identifier.Currency{{Symbol: "XUS"}},
	}))

	var res response.Balance
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.Equal(t, retrieve.current, res.BlockID)
	require.Len(t, res.Balances, 1)
	assert.Equal(t, "500", res.Balances[0].Value)
}

func TestData_Errors(t *testing.T) {

	data := testData(testRetriever())

	tests := []struct {
		name     string
		handler  echo.HandlerFunc
		body     string
		wantCode uint
	}{
		{
			name:     "invalid json body",
			handler:  data.Status,
			body:     `{"network_identifier"`,
			wantCode: configuration.ErrorInvalidEncoding.Code,
		},
		{
			name:    "invalid network",
			handler: data.Status,
			body: encode(t, request.Status{NetworkID: identifier.Network{
				Blockchain: modeldiem.Blockchain,
				Network:    "nopenet",
			}}),
			wantCode: configuration.ErrorInvalidNetwork.Code,
		},
		{
			name:     "missing network identifier",
			handler:  data.Block,
			body:     `{}`,
			wantCode: configuration.ErrorInvalidFormat.Code,
		},
		{
			name:    "malformed account address",
			handler: data.Balance,
			body: encode(t, request.Balance{
				NetworkID:  testNetwork(),
				AccountID:  identifier.Account{Address: "e12c"},
				Currencies: []identifier.Currency{{Symbol: "XUS"}},
			}),
			wantCode: configuration.ErrorInvalidFormat.Code,
		},
		{
			name:    "unknown currency",
			handler: data.Balance,
			body: encode(t, request.Balance{
				NetworkID:  testNetwork(),
				AccountID:  identifier.Account{Address: testAddress},
				Currencies: []identifier.Currency{{Symbol: "NOPE"}},
			}),
			wantCode: configuration.ErrorUnknownCurrency.Code,
		},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {

			rec := invoke(t, test.handler, test.body)

			var res rosettaError
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
			assert.Equal(t, test.wantCode, res.Code)
			assert.NotEmpty(t, res.Message)
		})
	}
}
