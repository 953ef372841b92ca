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

package validator

import (
	"github.com/go-playground/validator/v10"

	"github.com/optakt/diem-rosetta/models/diem"
	"github.com/optakt/diem-rosetta/rosetta/failure"
	"github.com/optakt/diem-rosetta/rosetta/identifier"
	"github.com/optakt/diem-rosetta/rosetta/request"
)

// Hex-encoded sizes of the fixed-length identifier fields.
const (
	hexAddressSize = 2 * diem.AddressLength
	hexIDSize      = 2 * diem.HashLength
)

// Field names are mandatory arguments of the ReportError method of the
// validation library. We deal with the structured validation errors and their
// tags only, so the field names never surface anywhere.
const (
	blockHashField   = "block_hash"
	blockchainField  = "blockchain"
	networkField     = "network"
	addressField     = "address"
	txField          = "transaction_id"
	currencyField    = "currency"
	symbolField      = "symbol"
	transactionField = "transaction"
	signaturesField  = "signatures"
	operationsField  = "operations"
	senderField      = "sender_address"
	publicKeyField   = "public_key"
)

func newRequestValidator() *validator.Validate {

	v := validator.New()

	// Register custom validators for known types. We register a single type
	// per validator, so we can safely perform type assertion of the provided
	// `validator.StructLevel` to the correct type.
	v.RegisterStructValidation(blockValidator, identifier.Block{})
	v.RegisterStructValidation(networkValidator, identifier.Network{})
	v.RegisterStructValidation(accountValidator, identifier.Account{})
	v.RegisterStructValidation(transactionValidator, identifier.Transaction{})

	// Register custom top-level validators. These validate the entire request
	// object, compared to the ones above which validate a specific type within
	// the request.
	v.RegisterStructValidation(balanceValidator, request.Balance{})
	v.RegisterStructValidation(deriveValidator, request.Derive{})
	v.RegisterStructValidation(preprocessValidator, request.Preprocess{})
	v.RegisterStructValidation(metadataValidator, request.Metadata{})
	v.RegisterStructValidation(payloadsValidator, request.Payloads{})
	v.RegisterStructValidation(combineValidator, request.Combine{})
	v.RegisterStructValidation(hashValidator, request.Hash{})
	v.RegisterStructValidation(submitValidator, request.Submit{})
	v.RegisterStructValidation(parseValidator, request.Parse{})

	return v
}

// Request validates the format of the given request object. Any violation is
// returned as an invalid format failure carrying the message of the first
// failing check.
func (v *Validator) Request(req interface{}) error {

	err := v.validate.Struct(req)
	if err == nil {
		return nil
	}

	// InvalidValidationError is returned by the validation library in cases
	// of invalid usage, more precisely, passing a non-struct to Struct().
	invalid, ok := err.(*validator.InvalidValidationError)
	if ok {
		return invalid
	}

	// Return the first violation we encounter; its tag is the registered
	// error description.
	errs := err.(validator.ValidationErrors)
	return failure.InvalidFormat{
		Description: failure.NewDescription(errs[0].Tag()),
	}
}

func blockValidator(sl validator.StructLevel) {
	blockID := sl.Current().Interface().(identifier.Block)
	if blockID.Hash != "" && len(blockID.Hash) != hexIDSize {
		sl.ReportError(blockID.Hash, blockHashField, blockHashField, blockLength, "")
	}
}

func networkValidator(sl validator.StructLevel) {
	network := sl.Current().Interface().(identifier.Network)
	if network.Blockchain == "" {
		sl.ReportError(network.Blockchain, blockchainField, blockchainField, blockchainEmpty, "")
	}
	if network.Network == "" {
		sl.ReportError(network.Network, networkField, networkField, networkEmpty, "")
	}
}

func accountValidator(sl validator.StructLevel) {
	accountID := sl.Current().Interface().(identifier.Account)
	if accountID.Address == "" {
		sl.ReportError(accountID.Address, addressField, addressField, addressEmpty, "")
		return
	}
	if len(accountID.Address) != hexAddressSize {
		sl.ReportError(accountID.Address, addressField, addressField, addressLength, "")
	}
}

func transactionValidator(sl validator.StructLevel) {
	txID := sl.Current().Interface().(identifier.Transaction)
	if txID.Hash == "" {
		sl.ReportError(txID.Hash, txField, txField, txHashEmpty, "")
		return
	}
	if len(txID.Hash) != hexIDSize {
		sl.ReportError(txID.Hash, txField, txField, txLength, "")
	}
}

func balanceValidator(sl validator.StructLevel) {
	req := sl.Current().Interface().(request.Balance)
	if len(req.Currencies) == 0 {
		sl.ReportError(req.Currencies, currencyField, currencyField, currenciesEmpty, "")
	}
	for _, currency := range req.Currencies {
		if currency.Symbol == "" {
			sl.ReportError(currency.Symbol, symbolField, symbolField, symbolEmpty, "")
		}
	}
}

func deriveValidator(sl validator.StructLevel) {
	req := sl.Current().Interface().(request.Derive)
	if req.PublicKey.HexBytes == "" {
		sl.ReportError(req.PublicKey.HexBytes, publicKeyField, publicKeyField, publicKeyEmpty, "")
	}
}

func preprocessValidator(sl validator.StructLevel) {
	req := sl.Current().Interface().(request.Preprocess)
	if len(req.Operations) == 0 {
		sl.ReportError(req.Operations, operationsField, operationsField, operationsEmpty, "")
	}
}

func metadataValidator(sl validator.StructLevel) {
	req := sl.Current().Interface().(request.Metadata)
	if req.Options.SenderAddress == "" {
		sl.ReportError(req.Options.SenderAddress, senderField, senderField, senderEmpty, "")
	}
}

func payloadsValidator(sl validator.StructLevel) {
	req := sl.Current().Interface().(request.Payloads)
	if len(req.Operations) == 0 {
		sl.ReportError(req.Operations, operationsField, operationsField, operationsEmpty, "")
	}
}

func combineValidator(sl validator.StructLevel) {
	req := sl.Current().Interface().(request.Combine)
	if req.UnsignedTransaction == "" {
		sl.ReportError(req.UnsignedTransaction, transactionField, transactionField, txBodyEmpty, "")
	}
	if len(req.Signatures) == 0 {
		sl.ReportError(req.Signatures, signaturesField, signaturesField, signaturesEmpty, "")
	}
}

func hashValidator(sl validator.StructLevel) {
	req := sl.Current().Interface().(request.Hash)
	if req.SignedTransaction == "" {
		sl.ReportError(req.SignedTransaction, transactionField, transactionField, txBodyEmpty, "")
	}
}

func submitValidator(sl validator.StructLevel) {
	req := sl.Current().Interface().(request.Submit)
	if req.SignedTransaction == "" {
		sl.ReportError(req.SignedTransaction, transactionField, transactionField, txBodyEmpty, "")
	}
}

func parseValidator(sl validator.StructLevel) {
	req := sl.Current().Interface().(request.Parse)
	if req.Transaction == "" {
		sl.ReportError(req.Transaction, transactionField, transactionField, txBodyEmpty, "")
	}
}
