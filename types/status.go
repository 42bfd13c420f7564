package types

import (
	"fmt"

	"github.com/blockberries/chainwire/wire"
)

// ReceiptStatusCode classifies the outcome of executing a transaction
// in a single reserved byte. Values are grouped by decade so each
// failure class has room to grow; the gaps are intentional.
type ReceiptStatusCode uint8

const (
	// Success class.
	StatusSuccess ReceiptStatusCode = 0

	// Pre-inclusion decision class.
	StatusWrongNonce                  ReceiptStatusCode = 10
	StatusNotEnoughBalanceForGasLimit ReceiptStatusCode = 11
	StatusNotEnoughBalanceForTransfer ReceiptStatusCode = 12
	StatusPreExecutionGasExhausted    ReceiptStatusCode = 13

	// Deploy class.
	StatusDisallowedOpcode         ReceiptStatusCode = 20
	StatusCannotCompile            ReceiptStatusCode = 21
	StatusNoExportedContractMethod ReceiptStatusCode = 22
	StatusOtherDeployError         ReceiptStatusCode = 23

	// Call class.
	StatusExecutionProperGasExhausted ReceiptStatusCode = 30
	StatusRuntimeError                ReceiptStatusCode = 31

	// Internal transaction class.
	StatusInternalExecutionProperGasExhaustion ReceiptStatusCode = 40
	StatusInternalRuntimeError                 ReceiptStatusCode = 41
	StatusInternalNotEnoughBalanceForTransfer  ReceiptStatusCode = 42

	// Miscellaneous class.
	StatusElse ReceiptStatusCode = 50
)

// statusCodeNames is the exhaustive mapping table. Decoding consults
// it; a byte with no entry is ErrStatusCodeOutOfRange, never a default
// variant.
var statusCodeNames = map[ReceiptStatusCode]string{
	StatusSuccess:                              "Success",
	StatusWrongNonce:                           "WrongNonce",
	StatusNotEnoughBalanceForGasLimit:          "NotEnoughBalanceForGasLimit",
	StatusNotEnoughBalanceForTransfer:          "NotEnoughBalanceForTransfer",
	StatusPreExecutionGasExhausted:             "PreExecutionGasExhausted",
	StatusDisallowedOpcode:                     "DisallowedOpcode",
	StatusCannotCompile:                        "CannotCompile",
	StatusNoExportedContractMethod:             "NoExportedContractMethod",
	StatusOtherDeployError:                     "OtherDeployError",
	StatusExecutionProperGasExhausted:          "ExecutionProperGasExhausted",
	StatusRuntimeError:                         "RuntimeError",
	StatusInternalExecutionProperGasExhaustion: "InternalExecutionProperGasExhaustion",
	StatusInternalRuntimeError:                 "InternalRuntimeError",
	StatusInternalNotEnoughBalanceForTransfer:  "InternalNotEnoughBalanceForTransfer",
	StatusElse:                                 "Else",
}

// Byte returns the wire value of the status code.
func (c ReceiptStatusCode) Byte() byte { return byte(c) }

// Valid reports whether c is a defined status code.
func (c ReceiptStatusCode) Valid() bool {
	_, ok := statusCodeNames[c]
	return ok
}

func (c ReceiptStatusCode) String() string {
	if name, ok := statusCodeNames[c]; ok {
		return name
	}
	return fmt.Sprintf("ReceiptStatusCode(%d)", uint8(c))
}

// StatusCodeFromByte maps a wire byte back to a status code.
func StatusCodeFromByte(b byte) (ReceiptStatusCode, error) {
	c := ReceiptStatusCode(b)
	if !c.Valid() {
		return 0, fmt.Errorf("status byte 0x%02x: %w", b, wire.ErrStatusCodeOutOfRange)
	}
	return c, nil
}
