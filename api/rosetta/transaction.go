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
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/optakt/diem-rosetta/rosetta/request"
	"github.com/optakt/diem-rosetta/rosetta/response"
)

// Transaction implements the /block/transaction endpoint of the Rosetta Data
// API.
// See: https://www.rosetta-api.org/docs/BlockApi.html#blocktransaction
func (d *Data) Transaction(ctx echo.Context) error {

	var req request.Transaction
	err := ctx.Bind(&req)
	if err != nil {
		return errorResponse(ctx, invalidEncoding(err))
	}

	err = d.validate.Request(req)
	if err != nil {
		return apiError(ctx, err)
	}

	err = d.config.Check(req.NetworkID)
	if err != nil {
		return apiError(ctx, err)
	}

	err = d.validate.Block(req.BlockID)
	if err != nil {
		return apiError(ctx, err)
	}

	err = d.validate.Transaction(req.TransactionID)
	if err != nil {
		return apiError(ctx, err)
	}

	transaction, err := d.retrieve.Transaction(ctx.Request().Context(), req.BlockID, req.TransactionID)
	if err != nil {
		return apiError(ctx, err)
	}

	res := response.Transaction{
		Transaction: transaction,
	}

	return ctx.JSON(http.StatusOK, res)
}
