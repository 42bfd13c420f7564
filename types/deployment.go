package types

import (
	"fmt"

	"github.com/blockberries/chainwire/wire"
)

// Wire layout of the ContractDeployment fixed region.
const (
	deployCodeSize = 0
	deployArgsSize = 4

	deployBaseSize = 8
)

var contractDeploymentLayout = wire.Layout{
	{Name: "contract_code_size", Size: 4, Offset: deployCodeSize},
	{Name: "contract_init_arguments_size", Size: 4, Offset: deployArgsSize},
}

// ContractDeployment is the payload a Transaction's data field carries
// when deploying a contract: the contract code and its constructor
// arguments.
type ContractDeployment struct {
	ContractCode          []byte
	ContractInitArguments []byte
}

// Encode returns the canonical wire bytes of the deployment payload.
func (d *ContractDeployment) Encode() []byte {
	buf := make([]byte, deployBaseSize+len(d.ContractCode)+len(d.ContractInitArguments))
	wire.PutUint32(buf, deployCodeSize, uint32(len(d.ContractCode)))
	wire.PutUint32(buf, deployArgsSize, uint32(len(d.ContractInitArguments)))
	wire.PutBytes(buf, deployBaseSize, d.ContractCode)
	wire.PutBytes(buf, deployBaseSize+len(d.ContractCode), d.ContractInitArguments)
	return buf
}

// Decode parses a deployment payload from buf.
func (d *ContractDeployment) Decode(buf []byte) error {
	if len(buf) < deployBaseSize {
		return fmt.Errorf("contract deployment: %w", wire.ErrIncorrectLength)
	}
	codeSize := int(wire.Uint32At(buf, deployCodeSize))
	argsSize := int(wire.Uint32At(buf, deployArgsSize))
	if len(buf) < deployBaseSize+codeSize+argsSize {
		return fmt.Errorf("contract deployment payload: %w", wire.ErrIncorrectLength)
	}
	d.ContractCode = make([]byte, codeSize)
	copy(d.ContractCode, buf[deployBaseSize:])
	d.ContractInitArguments = make([]byte, argsSize)
	copy(d.ContractInitArguments, buf[deployBaseSize+codeSize:deployBaseSize+codeSize+argsSize])
	return nil
}

// DecodeContractDeployment parses a deployment payload from buf.
func DecodeContractDeployment(buf []byte) (ContractDeployment, error) {
	var d ContractDeployment
	if err := d.Decode(buf); err != nil {
		return ContractDeployment{}, err
	}
	return d, nil
}
