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

package meta

// ErrorDefinition is the static part of a Rosetta API error. The code is a
// stable integer per error kind, the message a short static string and the
// retriable flag tells the caller whether retrying the exact same request can
// ever succeed. The full list of definitions is advertised on the
// /network/options endpoint.
type ErrorDefinition struct {
	Code      uint   `json:"code"`
	Message   string `json:"message"`
	Retriable bool   `json:"retriable"`
}

// StatusDefinition describes one operation status supported by this
// middleware, along with whether an operation with that status affected the
// ledger balance.
type StatusDefinition struct {
	Status     string `json:"status"`
	Successful bool   `json:"successful"`
}

// Version describes the versions of the Rosetta specification, the wrapped
// fullnode and this middleware.
type Version struct {
	RosettaVersion    string `json:"rosetta_version"`
	NodeVersion       string `json:"node_version"`
	MiddlewareVersion string `json:"middleware_version"`
}
