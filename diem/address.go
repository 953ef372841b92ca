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

import (
	"crypto/ed25519"
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/sha3"

	"github.com/optakt/diem-rosetta/models/diem"
)

// Address is a native 16-byte account address.
type Address [diem.AddressLength]byte

// HexToAddress parses the lowercase hex encoding of a native address. The
// input must decode to exactly 16 bytes.
func HexToAddress(text string) (Address, error) {

	bytes, err := hex.DecodeString(text)
	if err != nil {
		return Address{}, fmt.Errorf("could not decode address hex: %w", err)
	}
	if len(bytes) != diem.AddressLength {
		return Address{}, fmt.Errorf("invalid address length (have: %d, want: %d)", len(bytes), diem.AddressLength)
	}

	var address Address
	copy(address[:], bytes)

	return address, nil
}

// Hex returns the canonical lowercase hex encoding of the address.
func (a Address) Hex() string {
	return hex.EncodeToString(a[:])
}

// schemeEd25519 is the authentication scheme identifier for single ed25519
// keys, appended to the public key before hashing into the authentication key.
const schemeEd25519 = byte(0x00)

// DeriveAddress derives the account address controlled by the given ed25519
// public key. The authentication key is the SHA3-256 hash of the public key
// followed by the scheme identifier; the address is its last 16 bytes.
func DeriveAddress(pub ed25519.PublicKey) Address {

	hasher := sha3.New256()
	hasher.Write(pub)
	hasher.Write([]byte{schemeEd25519})
	authKey := hasher.Sum(nil)

	var address Address
	copy(address[:], authKey[len(authKey)-diem.AddressLength:])

	return address
}
