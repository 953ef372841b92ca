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

package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
	"github.com/ziflex/lecho/v2"

	api "github.com/optakt/diem-rosetta/api/rosetta"
	"github.com/optakt/diem-rosetta/diem"
	"github.com/optakt/diem-rosetta/metrics/rpc"
	modeldiem "github.com/optakt/diem-rosetta/models/diem"
	"github.com/optakt/diem-rosetta/rosetta/configuration"
	"github.com/optakt/diem-rosetta/rosetta/converter"
	"github.com/optakt/diem-rosetta/rosetta/retriever"
	"github.com/optakt/diem-rosetta/rosetta/transactor"
	"github.com/optakt/diem-rosetta/rosetta/validator"
)

const (
	success = 0
	failure = 1
)

func main() {
	os.Exit(run())
}

func run() int {

	// Signal catching for clean shutdown.
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt)

	// Command line parameter initialization.
	var (
		flagEndpoint    string
		flagNetwork     string
		flagPort        uint16
		flagLevel       string
		flagDialTimeout time.Duration
		flagRPCTimeout  time.Duration
	)

	pflag.StringVarP(&flagEndpoint, "diem-endpoint", "e", "http://127.0.0.1:8080", "URL of the fullnode JSON-RPC endpoint")
	pflag.StringVarP(&flagNetwork, "network", "n", modeldiem.Testnet, "name of the network to serve")
	pflag.Uint16VarP(&flagPort, "port", "p", 8030, "port to host the Rosetta API on")
	pflag.StringVarP(&flagLevel, "level", "l", "info", "log output level")
	pflag.DurationVar(&flagDialTimeout, "dial-timeout", 10*time.Second, "timeout for the startup connectivity check")
	pflag.DurationVar(&flagRPCTimeout, "rpc-timeout", 5*time.Second, "timeout per upstream JSON-RPC call")

	pflag.Parse()

	// Logger initialization.
	zerolog.TimestampFunc = func() time.Time { return time.Now().UTC() }
	log := zerolog.New(os.Stderr).With().Timestamp().Logger().Level(zerolog.DebugLevel)
	level, err := zerolog.ParseLevel(flagLevel)
	if err != nil {
		log.Error().Str("level", flagLevel).Err(err).Msg("could not parse log level")
		return failure
	}
	log = log.Level(level)

	// Check if the configured network is valid.
	params, ok := modeldiem.Networks[flagNetwork]
	if !ok {
		log.Error().Str("network", flagNetwork).Msg("invalid network name for params")
		return failure
	}

	// Initialize the fullnode client and check that the fullnode is reachable
	// and serves the configured chain before accepting any request.
	rpcMetrics := rpc.New()
	client := diem.NewClient(log, flagEndpoint,
		diem.WithTimeout(flagRPCTimeout),
		diem.WithObserver(rpcMetrics),
	)

	ctx, cancel := context.WithTimeout(context.Background(), flagDialTimeout)
	metadata, err := client.Metadata(ctx)
	cancel()
	if err != nil {
		log.Error().Str("endpoint", flagEndpoint).Err(err).Msg("could not reach fullnode")
		return failure
	}
	if metadata.ChainID != params.ChainID {
		log.Error().
			Uint8("have", metadata.ChainID).
			Uint8("want", params.ChainID).
			Msg("fullnode serves a different chain than configured")
		return failure
	}

	// Rosetta API initialization.
	config := configuration.New(params)
	validate := validator.New()
	convert := converter.New()
	retrieve := retriever.New(client, convert)
	transact := transactor.New(params.ChainID, validate, client)
	dataCtrl := api.NewData(config, validate, retrieve)
	constructCtrl := api.NewConstruction(config, validate, transact)

	server := echo.New()
	server.HideBanner = true
	server.HidePort = true
	elog := lecho.From(log)
	server.Logger = elog
	server.Use(lecho.Middleware(lecho.Config{Logger: elog}))
	server.Use(middleware.Recover())

	server.POST("/network/list", dataCtrl.Networks)
	server.POST("/network/status", dataCtrl.Status)
	server.POST("/network/options", dataCtrl.Options)
	server.POST("/block", dataCtrl.Block)
	server.POST("/block/transaction", dataCtrl.Transaction)
	server.POST("/account/balance", dataCtrl.Balance)

	server.POST("/construction/derive", constructCtrl.Derive)
	server.POST("/construction/preprocess", constructCtrl.Preprocess)
	server.POST("/construction/metadata", constructCtrl.Metadata)
	server.POST("/construction/payloads", constructCtrl.Payloads)
	server.POST("/construction/combine", constructCtrl.Combine)
	server.POST("/construction/hash", constructCtrl.Hash)
	server.POST("/construction/submit", constructCtrl.Submit)
	server.POST("/construction/parse", constructCtrl.Parse)

	server.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// This section launches the main executing components in their own
	// goroutine, so they can run concurrently. Afterwards, we wait for an
	// interrupt signal in order to proceed with the next section.
	done := make(chan struct{})
	failed := make(chan struct{})
	go func() {
		log.Info().Str("network", flagNetwork).Msg("Diem Rosetta Server starting")
		err := server.Start(fmt.Sprint(":", flagPort))
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Warn().Err(err).Msg("Diem Rosetta Server failed")
			close(failed)
		} else {
			close(done)
		}
		log.Info().Msg("Diem Rosetta Server stopped")
	}()

	select {
	case <-sig:
		log.Info().Msg("Diem Rosetta Server stopping")
	case <-done:
		log.Info().Msg("Diem Rosetta Server done")
	case <-failed:
		log.Warn().Msg("Diem Rosetta Server aborted")
		return failure
	}
	go func() {
		<-sig
		log.Warn().Msg("forcing exit")
		os.Exit(1)
	}()

	// The following code starts a shut down with a certain timeout and makes
	// sure that the main executing components are shutting down within the
	// allocated shutdown time. Otherwise, we will force the shutdown and log
	// an error. We then wait for shutdown on each component to complete.
	ctx, cancel = context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	err = server.Shutdown(ctx)
	if err != nil {
		log.Error().Err(err).Msg("could not shut down Rosetta API")
		return failure
	}

	return success
}
