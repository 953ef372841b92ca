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

package transactor

import (
	"crypto/ed25519"
	"encoding/hex"

	"github.com/optakt/diem-rosetta/diem"
	"github.com/optakt/diem-rosetta/rosetta/failure"
	"github.com/optakt/diem-rosetta/rosetta/identifier"
	"github.com/optakt/diem-rosetta/rosetta/object"
)

// Derive derives the account identifier controlled by the given public key.
func (t *Transactor) Derive(publicKey object.PublicKey) (identifier.Account, error) {

	key, err := parseKey(publicKey)
	if err != nil {
		return identifier.Account{}, err
	}

	address := diem.DeriveAddress(key)
	account := identifier.Account{
		Address: address.Hex(),
	}

	return account, nil
}

// parseKey checks the curve type and format of a public key and returns it in
// its native form.
func parseKey(publicKey object.PublicKey) (ed25519.PublicKey, error) {

	if publicKey.CurveType != CurveEdwards25519 {
		return nil, failure.InvalidKey{
			Description: failure.NewDescription("unsupported public key curve type",
				failure.WithString("curve_type", publicKey.CurveType),
				failure.WithString("curve_want", CurveEdwards25519),
			),
		}
	}

	key, err := hex.DecodeString(publicKey.HexBytes)
	if err != nil {
		return nil, failure.InvalidKey{
			Description: failure.NewDescription("public key is not a valid hex-encoded string",
				failure.WithErr(err),
			),
		}
	}
	if len(key) != ed25519.PublicKeySize {
		return nil, failure.InvalidKey{
			Description: failure.NewDescription("public key has invalid length",
				failure.WithInt("have", len(key)),
				failure.WithInt("want", ed25519.PublicKeySize),
			),
		}
	}

	return ed25519.PublicKey(key), nil
}
