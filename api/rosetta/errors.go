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

package rosetta

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/optakt/diem-rosetta/rosetta/configuration"
	"github.com/optakt/diem-rosetta/rosetta/failure"
	"github.com/optakt/diem-rosetta/rosetta/meta"
)

// Error represents an error as defined by the Rosetta API specification. It
// contains an error definition, which has an error code, error message and
// retriable flag that never change, as well as a description and a list of
// details to provide more granular error information.
// See: https://www.rosetta-api.org/docs/api_objects.html#error
type Error struct {
	meta.ErrorDefinition
	Description string                 `json:"description"`
	Details     map[string]interface{} `json:"details,omitempty"`
}

// Every error is returned with HTTP status 200; the error code inside the
// response body is the only error signal. Transport-level status codes would
// be misleading here, as the HTTP exchange with the middleware itself worked.
func errorResponse(ctx echo.Context, e Error) error {
	return ctx.JSON(http.StatusOK, e)
}

// apiError maps an error from the processing pipeline onto the response of
// the endpoint. Failures map onto their corresponding error definition, with
// the structured details preserved; anything else is an internal error.
func apiError(ctx echo.Context, err error) error {

	var ifErr failure.InvalidFormat
	if errors.As(err, &ifErr) {
		return errorResponse(ctx, convertError(configuration.ErrorInvalidFormat, ifErr.Description))
	}

	var inErr failure.InvalidNetwork
	if errors.As(err, &inErr) {
		return errorResponse(ctx, convertError(configuration.ErrorInvalidNetwork, inErr.Description,
			withDetail("blockchain", inErr.Blockchain),
			withDetail("network", inErr.Network),
		))
	}

	var iaErr failure.InvalidAccount
	if errors.As(err, &iaErr) {
		return errorResponse(ctx, convertError(configuration.ErrorInvalidAccount, iaErr.Description,
			withDetail("address", iaErr.Address),
		))
	}

	var uaErr failure.UnknownAccount
	if errors.As(err, &uaErr) {
		return errorResponse(ctx, convertError(configuration.ErrorUnknownAccount, uaErr.Description,
			withDetail("address", uaErr.Address),
		))
	}

	var icErr failure.InvalidCurrency
	if errors.As(err, &icErr) {
		return errorResponse(ctx, convertError(configuration.ErrorInvalidCurrency, icErr.Description,
			withDetail("symbol", icErr.Symbol),
			withDetail("decimals", icErr.Decimals),
		))
	}

	var ucErr failure.UnknownCurrency
	if errors.As(err, &ucErr) {
		return errorResponse(ctx, convertError(configuration.ErrorUnknownCurrency, ucErr.Description,
			withDetail("symbol", ucErr.Symbol),
			withDetail("decimals", ucErr.Decimals),
		))
	}

	var ibErr failure.InvalidBlock
	if errors.As(err, &ibErr) {
		return errorResponse(ctx, convertError(configuration.ErrorInvalidBlock, ibErr.Description,
			withDetail("index", ibErr.Index),
			withDetail("hash", ibErr.Hash),
		))
	}

	var ubErr failure.UnknownBlock
	if errors.As(err, &ubErr) {
		return errorResponse(ctx, convertError(configuration.ErrorUnknownBlock, ubErr.Description,
			withDetail("index", ubErr.Index),
			withDetail("hash", ubErr.Hash),
		))
	}

	var uvErr failure.UnknownVersion
	if errors.As(err, &uvErr) {
		return errorResponse(ctx, convertError(configuration.ErrorUnknownVersion, uvErr.Description,
			withDetail("version", uvErr.Version),
		))
	}

	var itErr failure.InvalidTransaction
	if errors.As(err, &itErr) {
		return errorResponse(ctx, convertError(configuration.ErrorInvalidTransaction, itErr.Description,
			withDetail("hash", itErr.Hash),
		))
	}

	var utErr failure.UnknownTransaction
	if errors.As(err, &utErr) {
		return errorResponse(ctx, convertError(configuration.ErrorUnknownTransaction, utErr.Description,
			withDetail("index", utErr.Index),
			withDetail("hash", utErr.Hash),
		))
	}

	var iiErr failure.InvalidIntent
	if errors.As(err, &iiErr) {
		return errorResponse(ctx, convertError(configuration.ErrorInvalidIntent, iiErr.Description))
	}

	var isErr failure.InvalidSignature
	if errors.As(err, &isErr) {
		return errorResponse(ctx, convertError(configuration.ErrorInvalidSignature, isErr.Description))
	}

	var ikErr failure.InvalidKey
	if errors.As(err, &ikErr) {
		return errorResponse(ctx, convertError(configuration.ErrorInvalidKey, ikErr.Description))
	}

	var ipErr failure.InvalidPayload
	if errors.As(err, &ipErr) {
		return errorResponse(ctx, convertError(configuration.ErrorInvalidPayload, ipErr.Description,
			withDetail("encoding", ipErr.Encoding),
		))
	}

	var luErr failure.LedgerUnavailable
	if errors.As(err, &luErr) {
		return errorResponse(ctx, convertError(configuration.ErrorLedgerUnavailable, luErr.Description))
	}

	var lrErr failure.LedgerRejected
	if errors.As(err, &lrErr) {
		return errorResponse(ctx, convertError(configuration.ErrorLedgerRejected, lrErr.Description,
			withDetail("ledger_code", lrErr.Code),
			withDetail("ledger_message", lrErr.Message),
		))
	}

	return errorResponse(ctx, internal(err))
}

// detailFunc adds one key-value pair to the details of an error.
type detailFunc func(map[string]interface{})

func withDetail(key string, val interface{}) detailFunc {
	return func(details map[string]interface{}) {
		details[key] = val
	}
}

// convertError builds a Rosetta error from an error definition and a failure
// description. The description fields and the extra details both end up in
// the details map.
func convertError(definition meta.ErrorDefinition, description failure.Description, extras ...detailFunc) Error {

	details := make(map[string]interface{})
	description.Fields.Iterate(func(key string, val interface{}) {
		details[key] = val
	})
	for _, extra := range extras {
		extra(details)
	}

	e := Error{
		ErrorDefinition: definition,
		Description:     description.Text,
		Details:         details,
	}

	return e
}

// internal is the catch-all for errors with no specific mapping.
func internal(err error) Error {
	return Error{
		ErrorDefinition: configuration.ErrorInternal,
		Description:     err.Error(),
	}
}

// invalidEncoding is returned when the request body is not valid JSON for the
// endpoint's request type.
func invalidEncoding(err error) Error {
	return Error{
		ErrorDefinition: configuration.ErrorInvalidEncoding,
		Description:     "request body does not contain valid JSON",
		Details: map[string]interface{}{
			"error": err.Error(),
		},
	}
}
