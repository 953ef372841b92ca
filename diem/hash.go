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
	"encoding/hex"

	"golang.org/x/crypto/sha3"
)

// Hashes are domain-separated: each hashed structure seeds the hasher with
// the SHA3-256 hash of its own domain string, so that the hash of a raw
// transaction can never collide with the hash of a signed transaction.
var (
	rawTransactionSeed    = sha3.Sum256([]byte("DIEM::RawTransaction"))
	signedTransactionSeed = sha3.Sum256([]byte("DIEM::SignedTransaction"))
)

// SigningDigest computes the 32-byte digest of an unsigned transaction's
// canonical bytes that the sender signs with its ed25519 key.
func SigningDigest(rawBytes []byte) []byte {
	hasher := sha3.New256()
	hasher.Write(rawTransactionSeed[:])
	hasher.Write(rawBytes)
	return hasher.Sum(nil)
}

// TransactionHash computes the hex-encoded transaction identifier of a signed
// transaction's canonical bytes. It is a pure function; the identifier
// returned by the submission endpoint is computed from the exact same bytes,
// so both always match.
func TransactionHash(signedBytes []byte) string {
	hasher := sha3.New256()
	hasher.Write(signedTransactionSeed[:])
	hasher.Write(signedBytes)
	return hex.EncodeToString(hasher.Sum(nil))
}
