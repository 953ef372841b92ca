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

package configuration

import (
	"github.com/optakt/diem-rosetta/models/diem"
	"github.com/optakt/diem-rosetta/rosetta/failure"
	"github.com/optakt/diem-rosetta/rosetta/identifier"
	"github.com/optakt/diem-rosetta/rosetta/meta"
)

const (
	// RosettaVersion is the version of the Rosetta specification this
	// middleware implements.
	RosettaVersion = "1.4.10"

	// NodeVersion is the version of the wrapped Diem fullnode software.
	NodeVersion = "1.2.0"

	// MiddlewareVersion is the version of this software.
	MiddlewareVersion = "0.1.0"
)

// Configuration is the immutable, process-wide network context. It is
// initialized once at startup from the configured network and passed
// explicitly to every component that needs it; it is never mutated afterwards.
type Configuration struct {
	network    identifier.Network
	params     diem.Params
	version    meta.Version
	statuses   []meta.StatusDefinition
	operations []string
	errors     []meta.ErrorDefinition
}

// New creates the configuration for the given network parameters.
func New(params diem.Params) *Configuration {

	network := identifier.Network{
		Blockchain: diem.Blockchain,
		Network:    params.Network,
	}

	version := meta.Version{
		RosettaVersion:    RosettaVersion,
		NodeVersion:       NodeVersion,
		MiddlewareVersion: MiddlewareVersion,
	}

	statuses := []meta.StatusDefinition{
		{Status: diem.StatusSuccess, Successful: true},
		{Status: diem.StatusFailure, Successful: false},
		{Status: diem.StatusPending, Successful: false},
	}

	errors := []meta.ErrorDefinition{
		ErrorInternal,
		ErrorInvalidEncoding,
		ErrorInvalidFormat,
		ErrorInvalidNetwork,
		ErrorInvalidAccount,
		ErrorInvalidCurrency,
		ErrorInvalidBlock,
		ErrorInvalidTransaction,
		ErrorUnknownBlock,
		ErrorUnknownCurrency,
		ErrorUnknownTransaction,
		ErrorUnknownAccount,
		ErrorUnknownVersion,
		ErrorInvalidIntent,
		ErrorInvalidSignature,
		ErrorInvalidKey,
		ErrorInvalidPayload,
		ErrorLedgerUnavailable,
		ErrorLedgerRejected,
	}

	c := Configuration{
		network:    network,
		params:     params,
		version:    version,
		statuses:   statuses,
		operations: diem.OperationTypes,
		errors:     errors,
	}

	return &c
}

// Network returns the network identifier this middleware serves.
func (c *Configuration) Network() identifier.Network {
	return c.network
}

// ChainID returns the native chain ID of the configured network.
func (c *Configuration) ChainID() uint8 {
	return c.params.ChainID
}

// Version returns the version information advertised on /network/options.
func (c *Configuration) Version() meta.Version {
	return c.version
}

// Statuses returns the supported operation statuses.
func (c *Configuration) Statuses() []meta.StatusDefinition {
	return c.statuses
}

// Operations returns the supported operation types.
func (c *Configuration) Operations() []string {
	return c.operations
}

// Errors returns the error definitions with their stable codes.
func (c *Configuration) Errors() []meta.ErrorDefinition {
	return c.errors
}

// Check validates a request's network identifier against the configured
// network.
func (c *Configuration) Check(network identifier.Network) error {

	if network.Blockchain != c.network.Blockchain {
		return failure.InvalidNetwork{
			Description: failure.NewDescription("invalid network identifier blockchain",
				failure.WithString("blockchain_want", c.network.Blockchain),
			),
			Blockchain: network.Blockchain,
			Network:    network.Network,
		}
	}

	if network.Network != c.network.Network {
		return failure.InvalidNetwork{
			Description: failure.NewDescription("invalid network identifier network",
				failure.WithString("network_want", c.network.Network),
			),
			Blockchain: network.Blockchain,
			Network:    network.Network,
		}
	}

	return nil
}
