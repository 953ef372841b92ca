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

// Derive implements the /construction/derive endpoint of the Rosetta
// Construction API. It derives the account identifier controlled by the given
// public key, without any network interaction.
// See: https://www.rosetta-api.org/docs/ConstructionApi.html#constructionderive
func (c *Construction) Derive(ctx echo.Context) error {

	var req request.Derive
	err := ctx.Bind(&req)
	if err != nil {
		return errorResponse(ctx, invalidEncoding(err))
	}

	err = c.validate.Request(req)
	if err != nil {
		return apiError(ctx, err)
	}

	err = c.config.Check(req.NetworkID)
	if err != nil {
		return apiError(ctx, err)
	}

	account, err := c.transact.Derive(req.PublicKey)
	if err != nil {
		return apiError(ctx, err)
	}

	res := response.Derive{
		AccountID: account,
	}

	return ctx.JSON(http.StatusOK, res)
}
