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
	"github.com/optakt/diem-rosetta/rosetta/meta"
)

// Error definitions with stable codes, as advertised on the /network/options
// endpoint. Codes must never be reused or renumbered. Only LedgerUnavailable
// is retriable; retrying any other error with the same input can never
// succeed.
var (
	ErrorInternal           = meta.ErrorDefinition{Code: 1, Message: "internal error", Retriable: false}
	ErrorInvalidEncoding    = meta.ErrorDefinition{Code: 2, Message: "invalid request encoding", Retriable: false}
	ErrorInvalidFormat      = meta.ErrorDefinition{Code: 3, Message: "invalid request format", Retriable: false}
	ErrorInvalidNetwork     = meta.ErrorDefinition{Code: 4, Message: "invalid network identifier", Retriable: false}
	ErrorInvalidAccount     = meta.ErrorDefinition{Code: 5, Message: "invalid account identifier", Retriable: false}
	ErrorInvalidCurrency    = meta.ErrorDefinition{Code: 6, Message: "invalid currency identifier", Retriable: false}
	ErrorInvalidBlock       = meta.ErrorDefinition{Code: 7, Message: "invalid block identifier", Retriable: false}
	ErrorInvalidTransaction = meta.ErrorDefinition{Code: 8, Message: "invalid transaction identifier", Retriable: false}
	ErrorUnknownBlock       = meta.ErrorDefinition{Code: 9, Message: "unknown block identifier", Retriable: false}
	ErrorUnknownCurrency    = meta.ErrorDefinition{Code: 10, Message: "unknown currency identifier", Retriable: false}
	ErrorUnknownTransaction = meta.ErrorDefinition{Code: 11, Message: "unknown block transaction", Retriable: false}
	ErrorUnknownAccount     = meta.ErrorDefinition{Code: 12, Message: "unknown account", Retriable: false}
	ErrorUnknownVersion     = meta.ErrorDefinition{Code: 13, Message: "unknown ledger version", Retriable: false}

	// Construction API specific errors.
	ErrorInvalidIntent    = meta.ErrorDefinition{Code: 14, Message: "invalid transaction intent", Retriable: false}
	ErrorInvalidSignature = meta.ErrorDefinition{Code: 15, Message: "invalid transaction signature", Retriable: false}
	ErrorInvalidKey       = meta.ErrorDefinition{Code: 16, Message: "invalid public key", Retriable: false}
	ErrorInvalidPayload   = meta.ErrorDefinition{Code: 17, Message: "malformed transaction payload", Retriable: false}

	// Errors surfaced by the fullnode.
	ErrorLedgerUnavailable = meta.ErrorDefinition{Code: 18, Message: "ledger unavailable", Retriable: true}
	ErrorLedgerRejected    = meta.ErrorDefinition{Code: 19, Message: "ledger rejected request", Retriable: false}
)
