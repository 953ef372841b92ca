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

package failure

import (
	"fmt"
)

// LedgerUnavailable is the failure for a fullnode call that could not
// complete, due to a connection failure or timeout. It is the only retriable
// failure, as the request itself may well be valid.
type LedgerUnavailable struct {
	Description Description
}

func (l LedgerUnavailable) Error() string {
	return fmt.Sprintf("ledger unavailable: %s", l.Description)
}

// LedgerRejected is the failure for a request that the fullnode received and
// refused, for instance a submission with a stale sequence number. The native
// error code and message are preserved for diagnosability.
type LedgerRejected struct {
	Description Description
	Code        int
	Message     string
}

func (l LedgerRejected) Error() string {
	return fmt.Sprintf("ledger rejected request (code: %d, message: %s): %s", l.Code, l.Message, l.Description)
}
