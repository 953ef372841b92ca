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

package configuration_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/optakt/diem-rosetta/models/diem"
	"github.com/optakt/diem-rosetta/rosetta/configuration"
	"github.com/optakt/diem-rosetta/rosetta/failure"
	"github.com/optakt/diem-rosetta/rosetta/identifier"
)

func TestConfiguration(t *testing.T) {

	params := diem.Networks[diem.Testnet]
	config := configuration.New(params)

	network := config.Network()
	assert.Equal(t, diem.Blockchain, network.Blockchain)
	assert.Equal(t, diem.Testnet, network.Network)
	assert.Equal(t, params.ChainID, config.ChainID())

	version := config.Version()
	assert.Equal(t, configuration.RosettaVersion, version.RosettaVersion)
	assert.Equal(t, configuration.NodeVersion, version.NodeVersion)
	assert.Equal(t, configuration.MiddlewareVersion, version.MiddlewareVersion)

	statuses := config.Statuses()
	require.Len(t, statuses, 3)
	assert.Equal(t, diem.StatusSuccess, statuses[0].Status)
	assert.True(t, statuses[0].Successful)
	assert.Equal(t, diem.StatusFailure, statuses[1].Status)
	assert.False(t, statuses[1].Successful)

	assert.Equal(t, diem.OperationTypes, config.Operations())

	// Error codes are stable and unique; a code must never be reused for a
	// different meaning.
	seen := make(map[uint]bool)
	for _, definition := range config.Errors() {
		assert.False(t, seen[definition.Code], "duplicate error code %d", definition.Code)
		seen[definition.Code] = true
		assert.NotEmpty(t, definition.Message)
	}
	assert.Len(t, config.Errors(), 19)
}

func TestConfiguration_Check(t *testing.T) {

	config := configuration.New(diem.Networks[diem.Testnet])

	err := config.Check(identifier.Network{
		Blockchain: diem.Blockchain,
		Network:    diem.Testnet,
	})
	assert.NoError(t, err)

	tests := []struct {
		name    string
		network identifier.Network
	}{
		{
			name: "wrong blockchain",
			network: identifier.Network{
				Blockchain: "flow",
				Network:    diem.Testnet,
			},
		},
		{
			name: "wrong network",
			network: identifier.Network{
				Blockchain: diem.Blockchain,
				Network:    diem.Mainnet,
			},
		},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			err := config.Check(test.network)
			require.Error(t, err)
			var invalidNetwork failure.InvalidNetwork
			require.ErrorAs(t, err, &invalidNetwork)
			assert.Equal(t, test.network.Blockchain, invalidNetwork.Blockchain)
			assert.Equal(t, test.network.Network, invalidNetwork.Network)
		})
	}
}
