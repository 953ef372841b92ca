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
	"fmt"

	"github.com/optakt/diem-rosetta/diem"
	"github.com/optakt/diem-rosetta/rosetta/failure"
	"github.com/optakt/diem-rosetta/rosetta/object"
)

// AttachSignature combines an unsigned transaction with the signature of its
// sender into a submittable signed transaction. The signature is verified
// before it is attached: the public key must authenticate the transaction
// sender and the signature must be a valid ed25519 signature over the signing
// digest of the transaction.
func (t *Transactor) AttachSignature(unsignedHex string, signatures []object.Signature) (string, error) {

	raw, err := diem.DecodeRawHex(unsignedHex)
	if err != nil {
		return "", failure.InvalidPayload{
			Description: failure.NewDescription("could not decode unsigned transaction",
				failure.WithErr(err),
			),
			Encoding: payloadEncoding,
		}
	}

	if len(signatures) != 1 {
		return "", failure.InvalidSignature{
			Description: failure.NewDescription("transaction requires exactly one signature",
				failure.WithInt("have", len(signatures)),
			),
		}
	}
	signature := signatures[0]

	if signature.SignatureType != SignatureEd25519 {
		return "", failure.InvalidSignature{
			Description: failure.NewDescription("unsupported signature type",
				failure.WithString("signature_type", signature.SignatureType),
				failure.WithString("signature_want", SignatureEd25519),
			),
		}
	}

	key, err := parseKey(signature.PublicKey)
	if err != nil {
		return "", fmt.Errorf("invalid public key: %w", err)
	}

	derived := diem.DeriveAddress(key)
	if derived != raw.Sender {
		return "", failure.InvalidKey{
			Description: failure.NewDescription("public key does not authenticate transaction sender",
				failure.WithString("derived_address", derived.Hex()),
				failure.WithString("sender_address", raw.Sender.Hex()),
			),
		}
	}

	sigBytes, err := hex.DecodeString(signature.HexBytes)
	if err != nil {
		return "", failure.InvalidSignature{
			Description: failure.NewDescription("signature is not a valid hex-encoded string",
				failure.WithErr(err),
			),
		}
	}
	if len(sigBytes) != ed25519.SignatureSize {
		return "", failure.InvalidSignature{
			Description: failure.NewDescription("signature has invalid length",
				failure.WithInt("have", len(sigBytes)),
				failure.WithInt("want", ed25519.SignatureSize),
			),
		}
	}

	// Re-encode canonically so the verified digest is independent of how the
	// caller serialized the unsigned transaction.
	rawBytes, err := diem.EncodeRaw(raw)
	if err != nil {
		return "", fmt.Errorf("could not encode transaction: %w", err)
	}

	if !ed25519.Verify(key, diem.SigningDigest(rawBytes), sigBytes) {
		return "", failure.InvalidSignature{
			Description: failure.NewDescription("signature verification failed",
				failure.WithString("sender_address", raw.Sender.Hex()),
			),
		}
	}

	signed := diem.SignedTransaction{
		Raw:       raw,
		PublicKey: key,
		Signature: sigBytes,
	}

	signedHex, err := diem.EncodeSignedHex(signed)
	if err != nil {
		return "", fmt.Errorf("could not encode signed transaction: %w", err)
	}

	return signedHex, nil
}
