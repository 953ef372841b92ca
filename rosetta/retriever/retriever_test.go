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

package retriever_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/optakt/diem-rosetta/diem"
	modeldiem "github.com/optakt/diem-rosetta/models/diem"
	"github.com/optakt/diem-rosetta/rosetta/converter"
	"github.com/optakt/diem-rosetta/rosetta/failure"
	"github.com/optakt/diem-rosetta/rosetta/identifier"
	"github.com/optakt/diem-rosetta/rosetta/retriever"
)

const testAddress = "e12cd10ad1a2d06d5b0c6d83e2c2e79d"

// mockLedger serves a miniature ledger of consecutive versions, with one
// transaction per version.
type mockLedger struct {
	transactions []diem.TransactionView
	account      *diem.AccountView
	timestamps   map[uint64]uint64
}

func (m *mockLedger) current() uint64 {
	return uint64(len(m.transactions) - 1)
}

func (m *mockLedger) Metadata(_ context.Context) (diem.MetadataView, error) {
	return diem.MetadataView{
		Version:   m.current(),
		Timestamp: m.timestamps[m.current()],
		ChainID:   2,
	}, nil
}

func (m *mockLedger) MetadataAt(_ context.Context, version uint64) (diem.MetadataView, error) {
	return diem.MetadataView{
		Version:   version,
		Timestamp: m.timestamps[version],
		ChainID:   2,
	}, nil
}

func (m *mockLedger) Transactions(_ context.Context, start uint64, limit uint64, _ bool) ([]diem.TransactionView, error) {
	var views []diem.TransactionView
	for version := start; version < start+limit && version < uint64(len(m.transactions)); version++ {
		views = append(views, m.transactions[version])
	}
	return views, nil
}

func (m *mockLedger) AccountWithMetadata(ctx context.Context, _ string) (*diem.AccountView, diem.MetadataView, error) {
	metadata, _ := m.Metadata(ctx)
	return m.account, metadata, nil
}

func testLedger() *mockLedger {
	return &mockLedger{
		transactions: []diem.TransactionView{
			{
				Version:     0,
				Hash:        "a0" + strings.Repeat("00", 31),
				VMStatus:    diem.VMStatusView{Type: modeldiem.VMStatusExecuted},
				Transaction: diem.TransactionDataView{Type: diem.TransactionWriteSet},
			},
			{
				Version:     1,
				Hash:        "a1" + strings.Repeat("11", 31),
				VMStatus:    diem.VMStatusView{Type: modeldiem.VMStatusExecuted},
				Transaction: diem.TransactionDataView{Type: diem.TransactionBlockMetadata},
			},
			{
				Version:     2,
				Hash:        "a2" + strings.Repeat("22", 31),
				VMStatus:    diem.VMStatusView{Type: modeldiem.VMStatusExecuted},
				Transaction: diem.TransactionDataView{Type: diem.TransactionUser, Sender: testAddress},
			},
		},
		timestamps: map[uint64]uint64{
			0: 1_625_097_600_000_000,
			1: 1_625_097_601_000_000,
			2: 1_625_097_602_000_000,
		},
	}
}

func TestRetriever_Current(t *testing.T) {

	ledger := testLedger()
	retrieve := retriever.New(ledger, converter.New())

	block, timestamp, err := retrieve.Current(context.Background())
	require.NoError(t, err)
	require.NotNil(t, block.Index)
	assert.Equal(t, uint64(2), *block.Index)
	assert.Equal(t, ledger.transactions[2].Hash, block.Hash)
	assert.Equal(t, int64(1_625_097_602_000), timestamp)
}

func TestRetriever_Genesis(t *testing.T) {

	ledger := testLedger()
	retrieve := retriever.New(ledger, converter.New())

	block, err := retrieve.Genesis(context.Background())
	require.NoError(t, err)
	require.NotNil(t, block.Index)
	assert.Equal(t, uint64(0), *block.Index)
	assert.Equal(t, ledger.transactions[0].Hash, block.Hash)
}

func TestRetriever_Block(t *testing.T) {

	ledger := testLedger()
	retrieve := retriever.New(ledger, converter.New())

	index := uint64(2)
	block, err := retrieve.Block(context.Background(), identifier.Block{Index: &index})
	require.NoError(t, err)

	assert.Equal(t, ledger.transactions[2].Hash, block.ID.Hash)
	require.NotNil(t, block.ParentID.Index)
	assert.Equal(t, uint64(1), *block.ParentID.Index)
	assert.Equal(t, ledger.transactions[1].Hash, block.ParentID.Hash)
	assert.Equal(t, int64(1_625_097_602_000), block.Timestamp)
	require.Len(t, block.Transactions, 1)
	assert.Equal(t, ledger.transactions[2].Hash, block.Transactions[0].ID.Hash)
}

func TestRetriever_BlockGenesisParent(t *testing.T) {

	ledger := testLedger()
	retrieve := retriever.New(ledger, converter.New())

	// Genesis is its own parent.
	index := uint64(0)
	block, err := retrieve.Block(context.Background(), identifier.Block{Index: &index})
	require.NoError(t, err)
	assert.Equal(t, block.ID, block.ParentID)
	assert.Equal(t, int64(1_625_097_600_000), block.Timestamp)
}

func TestRetriever_BlockLatestWhenUnspecified(t *testing.T) {

	ledger := testLedger()
	retrieve := retriever.New(ledger, converter.New())

	block, err := retrieve.Block(context.Background(), identifier.Block{})
	require.NoError(t, err)
	require.NotNil(t, block.ID.Index)
	assert.Equal(t, uint64(2), *block.ID.Index)
}

func TestRetriever_BlockErrors(t *testing.T) {

	ledger := testLedger()
	retrieve := retriever.New(ledger, converter.New())

	t.Run("index above current version", func(t *testing.T) {
		index := uint64(99)
		_, err := retrieve.Block(context.Background(), identifier.Block{Index: &index})
		var unknownBlock failure.UnknownBlock
		require.ErrorAs(t, err, &unknownBlock)
		assert.Equal(t, uint64(99), unknownBlock.Index)
	})

	t.Run("hash only lookup", func(t *testing.T) {
		_, err := retrieve.Block(context.Background(), identifier.Block{Hash: ledger.transactions[1].Hash})
		var invalidBlock failure.InvalidBlock
		require.ErrorAs(t, err, &invalidBlock)
	})

	t.Run("hash does not match index", func(t *testing.T) {
		index := uint64(1)
		_, err := retrieve.Block(context.Background(), identifier.Block{
			Index: &index,
			Hash:  ledger.transactions[2].Hash,
		})
		var invalidBlock failure.InvalidBlock
		require.ErrorAs(t, err, &invalidBlock)
		assert.Equal(t, ledger.transactions[2].Hash, invalidBlock.Hash)
	})
}

func TestRetriever_Transaction(t *testing.T) {

	ledger := testLedger()
	retrieve := retriever.New(ledger, converter.New())

	index := uint64(2)
	blockID := identifier.Block{Index: &index}

	transaction, err := retrieve.Transaction(context.Background(), blockID, identifier.Transaction{
		Hash: ledger.transactions[2].Hash,
	})
	require.NoError(t, err)
	assert.Equal(t, ledger.transactions[2].Hash, transaction.ID.Hash)

	// A transaction hash from another block does not belong to this one.
	_, err = retrieve.Transaction(context.Background(), blockID, identifier.Transaction{
		Hash: ledger.transactions[1].Hash,
	})
	var unknownTransaction failure.UnknownTransaction
	require.ErrorAs(t, err, &unknownTransaction)
}

func TestRetriever_Balances(t *testing.T) {

	ledger := testLedger()
	ledger.account = &diem.AccountView{
		Address:        testAddress,
		SequenceNumber: 7,
		Balances: []diem.AmountView{
			{Amount: 500, Currency: "XUS"},
		},
	}
	retrieve := retriever.New(ledger, converter.New())

	accountID := identifier.Account{Address: testAddress}
	currencies := []identifier.Currency{
		{Symbol: "XUS", Decimals: 6},
		{Symbol: "XDX", Decimals: 6},
	}

	block, amounts, err := retrieve.Balances(context.Background(), identifier.Block{}, accountID, currencies)
	require.NoError(t, err)
	require.NotNil(t, block.Index)
	assert.Equal(t, uint64(2), *block.Index)

	require.Len(t, amounts, 2)
	assert.Equal(t, "500", amounts[0].Value)
	assert.Equal(t, "XUS", amounts[0].Currency.Symbol)
	// Currencies the account does not hold yield a zero balance.
	assert.Equal(t, "0", amounts[1].Value)
	assert.Equal(t, "XDX", amounts[1].Currency.Symbol)
}

func TestRetriever_BalancesErrors(t *testing.T) {

	ledger := testLedger()
	retrieve := retriever.New(ledger, converter.New())

	accountID := identifier.Account{Address: testAddress}
	currencies := []identifier.Currency{{Symbol: "XUS", Decimals: 6}}

	t.Run("unknown account", func(t *testing.T) {
		_, _, err := retrieve.Balances(context.Background(), identifier.Block{}, accountID, currencies)
		var unknownAccount failure.UnknownAccount
		require.ErrorAs(t, err, &unknownAccount)
		assert.Equal(t, testAddress, unknownAccount.Address)
	})

	t.Run("historical lookup", func(t *testing.T) {
		ledger.account = &diem.AccountView{Address: testAddress}
		index := uint64(1)
		_, _, err := retrieve.Balances(context.Background(), identifier.Block{Index: &index}, accountID, currencies)
		var invalidBlock failure.InvalidBlock
		require.ErrorAs(t, err, &invalidBlock)
	})
}
