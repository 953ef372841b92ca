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

package object

import (
	"github.com/optakt/diem-rosetta/rosetta/identifier"
)

// Operation is a single balance-affecting effect within a transaction. Related
// operations may only reference operations with a strictly smaller index, so
// the references always form an acyclic graph.
type Operation struct {
	ID         identifier.Operation   `json:"operation_identifier"`
	RelatedIDs []identifier.Operation `json:"related_operations,omitempty"`
	Type       string                 `json:"type"`
	Status     string                 `json:"status,omitempty"`
	AccountID  *identifier.Account    `json:"account,omitempty"`
	Amount     *Amount                `json:"amount,omitempty"`
}
