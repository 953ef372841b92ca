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
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/hashicorp/go-multierror"
	"github.com/rs/zerolog"

	"github.com/optakt/diem-rosetta/rosetta/failure"
)

// JSON-RPC method names exposed by the fullnode.
const (
	methodGetMetadata      = "get_metadata"
	methodGetAccount       = "get_account"
	methodGetTransactions  = "get_transactions"
	methodGetNetworkStatus = "get_network_status"
	methodSubmit           = "submit"
)

// DefaultTimeout bounds each upstream call, including the single retry of
// read calls.
const DefaultTimeout = 5 * time.Second

// retryInterval is the pause before the single retry of a failed read call.
const retryInterval = 100 * time.Millisecond

// Observer is notified of the outcome of each upstream call.
type Observer interface {
	Observe(method string, success bool, duration time.Duration)
}

// Client talks to a Diem fullnode over its JSON-RPC 2.0 API. All calls are
// sent as batch requests, even single ones, so that related reads share one
// round trip and observe the same ledger state.
type Client struct {
	log      zerolog.Logger
	endpoint string
	client   *http.Client
	timeout  time.Duration
	observer Observer
}

// Option is a configuration option for the client.
type Option func(*Client)

// WithTimeout sets the per-call timeout, which covers the retry as well.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.timeout = timeout
	}
}

// WithObserver registers an observer for upstream call outcomes.
func WithObserver(observer Observer) Option {
	return func(c *Client) {
		c.observer = observer
	}
}

// WithHTTPClient sets the underlying HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		c.client = client
	}
}

// NewClient creates a client for the fullnode at the given endpoint.
func NewClient(log zerolog.Logger, endpoint string, options ...Option) *Client {

	c := Client{
		log:      log.With().Str("component", "fullnode_client").Logger(),
		endpoint: endpoint,
		client:   http.DefaultClient,
		timeout:  DefaultTimeout,
		observer: nopObserver{},
	}

	for _, option := range options {
		option(&c)
	}

	return &c
}

// Metadata retrieves the current ledger metadata.
func (c *Client) Metadata(ctx context.Context) (MetadataView, error) {

	var metadata MetadataView
	err := c.read(ctx, call{Method: methodGetMetadata, Params: params()}, &metadata)
	if err != nil {
		return MetadataView{}, fmt.Errorf("could not get metadata: %w", err)
	}

	return metadata, nil
}

// MetadataAt retrieves the ledger metadata at the given version.
func (c *Client) MetadataAt(ctx context.Context, version uint64) (MetadataView, error) {

	var metadata MetadataView
	err := c.read(ctx, call{Method: methodGetMetadata, Params: params(version)}, &metadata)
	if err != nil {
		return MetadataView{}, fmt.Errorf("could not get metadata at version %d: %w", version, err)
	}

	return metadata, nil
}

// Account retrieves the current state of the account with the given address.
// It returns nil without error if the account does not exist on the ledger.
func (c *Client) Account(ctx context.Context, address string) (*AccountView, error) {

	var account *AccountView
	err := c.read(ctx, call{Method: methodGetAccount, Params: params(address)}, &account)
	if err != nil {
		return nil, fmt.Errorf("could not get account: %w", err)
	}

	return account, nil
}

// AccountWithMetadata retrieves the state of the account with the given
// address together with the ledger metadata, in a single batch so that the
// account state is pinned to the returned ledger version.
func (c *Client) AccountWithMetadata(ctx context.Context, address string) (*AccountView, MetadataView, error) {

	var account *AccountView
	var metadata MetadataView
	err := c.readBatch(ctx,
		[]call{
			{Method: methodGetAccount, Params: params(address)},
			{Method: methodGetMetadata, Params: params()},
		},
		&account, &metadata,
	)
	if err != nil {
		return nil, MetadataView{}, fmt.Errorf("could not get account with metadata: %w", err)
	}

	return account, metadata, nil
}

// Transactions retrieves up to limit transactions starting at the given
// ledger version, in version order.
func (c *Client) Transactions(ctx context.Context, start uint64, limit uint64, includeEvents bool) ([]TransactionView, error) {

	var transactions []TransactionView
	err := c.read(ctx, call{Method: methodGetTransactions, Params: params(start, limit, includeEvents)}, &transactions)
	if err != nil {
		return nil, fmt.Errorf("could not get transactions: %w", err)
	}

	return transactions, nil
}

// NetworkStatus retrieves the number of peers the fullnode is connected to.
func (c *Client) NetworkStatus(ctx context.Context) (uint64, error) {

	var peers uint64
	err := c.read(ctx, call{Method: methodGetNetworkStatus, Params: params()}, &peers)
	if err != nil {
		return 0, fmt.Errorf("could not get network status: %w", err)
	}

	return peers, nil
}

// Submit sends the hex encoding of a signed transaction to the fullnode for
// execution. Unlike reads, submissions are never retried, as a retry could
// double-submit a transaction whose first attempt did go through.
func (c *Client) Submit(ctx context.Context, signedHex string) error {

	var discard json.RawMessage
	err := c.execute(ctx, []call{{Method: methodSubmit, Params: params(signedHex)}}, &discard)
	if err != nil {
		return fmt.Errorf("could not submit transaction: %w", err)
	}

	return nil
}

// read executes a single read call with a single retry on upstream
// unavailability. Rejections are never retried; the ledger gave a definitive
// answer.
func (c *Client) read(ctx context.Context, req call, result interface{}) error {
	return c.readBatch(ctx, []call{req}, result)
}

func (c *Client) readBatch(ctx context.Context, reqs []call, results ...interface{}) error {

	attempt := func() error {
		err := c.execute(ctx, reqs, results...)
		var unavailable failure.LedgerUnavailable
		if err != nil && !errors.As(err, &unavailable) {
			return backoff.Permanent(err)
		}
		return err
	}

	policy := backoff.WithContext(backoff.WithMaxRetries(backoff.NewConstantBackOff(retryInterval), 1), ctx)
	err := backoff.Retry(attempt, policy)
	if err != nil {
		return err
	}

	return nil
}

// call is a single JSON-RPC 2.0 request in a batch.
type call struct {
	JSONRPC string        `json:"jsonrpc"`
	ID      uint          `json:"id"`
	Method  string        `json:"method"`
	Params  []interface{} `json:"params"`
}

// reply is a single JSON-RPC 2.0 response in a batch.
type reply struct {
	ID     uint            `json:"id"`
	Result json.RawMessage `json:"result"`
	Error  *rpcError       `json:"error"`
}

type rpcError struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// params builds a JSON-RPC parameter list. An empty list still serializes as
// `[]` rather than `null`.
func params(values ...interface{}) []interface{} {
	if values == nil {
		return []interface{}{}
	}
	return values
}

// execute sends the given calls as one JSON-RPC batch and decodes each
// result into the corresponding element of results. Transport failures map to
// ledger unavailability; per-call errors from the node map to ledger
// rejections, collected across the batch.
func (c *Client) execute(ctx context.Context, reqs []call, results ...interface{}) error {

	if len(reqs) != len(results) {
		return fmt.Errorf("mismatched batch calls and results (calls: %d, results: %d)", len(reqs), len(results))
	}

	for i := range reqs {
		reqs[i].JSONRPC = "2.0"
		reqs[i].ID = uint(i)
	}

	payload, err := json.Marshal(reqs)
	if err != nil {
		return fmt.Errorf("could not encode batch request: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("could not create batch request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	method := reqs[0].Method
	start := time.Now()
	res, err := c.client.Do(req)
	duration := time.Since(start)
	if err != nil {
		c.observer.Observe(method, false, duration)
		return failure.LedgerUnavailable{
			Description: failure.NewDescription("could not reach fullnode",
				failure.WithErr(err),
			),
		}
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		c.observer.Observe(method, false, duration)
		return failure.LedgerUnavailable{
			Description: failure.NewDescription("fullnode returned unexpected status",
				failure.WithInt("status", res.StatusCode),
			),
		}
	}

	var replies []reply
	err = json.NewDecoder(res.Body).Decode(&replies)
	if err != nil {
		c.observer.Observe(method, false, duration)
		return failure.LedgerUnavailable{
			Description: failure.NewDescription("could not decode fullnode response",
				failure.WithErr(err),
			),
		}
	}
	if len(replies) != len(reqs) {
		c.observer.Observe(method, false, duration)
		return failure.LedgerUnavailable{
			Description: failure.NewDescription("fullnode returned incomplete batch",
				failure.WithInt("replies", len(replies)),
				failure.WithInt("calls", len(reqs)),
			),
		}
	}

	// The node may reorder batch responses, so match them up by request ID.
	indexed := make(map[uint]reply, len(replies))
	for _, rep := range replies {
		indexed[rep.ID] = rep
	}

	var merr *multierror.Error
	for i, req := range reqs {
		rep, ok := indexed[uint(i)]
		if !ok {
			merr = multierror.Append(merr, failure.LedgerUnavailable{
				Description: failure.NewDescription("fullnode batch response missing call",
					failure.WithString("method", req.Method),
				),
			})
			continue
		}
		if rep.Error != nil {
			merr = multierror.Append(merr, failure.LedgerRejected{
				Description: failure.NewDescription("fullnode rejected call",
					failure.WithString("method", req.Method),
				),
				Code:    rep.Error.Code,
				Message: rep.Error.Message,
			})
			continue
		}
		err := json.Unmarshal(rep.Result, results[i])
		if err != nil {
			merr = multierror.Append(merr, failure.LedgerUnavailable{
				Description: failure.NewDescription("could not decode fullnode result",
					failure.WithString("method", req.Method),
					failure.WithErr(err),
				),
			})
		}
	}

	err = merr.ErrorOrNil()
	c.observer.Observe(method, err == nil, duration)
	if err != nil {
		c.log.Debug().Str("method", method).Err(err).Msg("fullnode batch failed")
		return err
	}

	return nil
}

type nopObserver struct{}

func (nopObserver) Observe(string, bool, time.Duration) {}
