package domain

import (
	"cosmossdk.io/math"
	wasmvmtypes "github.com/CosmWasm/wasmvm/v2/types"

	"github.com/prismswap/swaprouter/domain/json"
)

// ExecuteMsg is the router's execute message. Exactly one variant is set.
type ExecuteMsg struct {
	Receive               *Cw20ReceiveMsg           `json:"receive,omitempty"`
	ExecuteSwapOperations *ExecuteSwapOperationsMsg `json:"execute_swap_operations,omitempty"`
	ExecuteSwapOperation  *ExecuteSwapOperationMsg  `json:"execute_swap_operation,omitempty"`
	AssertMinimumReceive  *AssertMinimumReceiveMsg  `json:"assert_minimum_receive,omitempty"`
}

// Validate returns ErrInvalidExecuteMsg unless exactly one variant is set.
func (m ExecuteMsg) Validate() error {
	set := 0
	for _, isSet := range []bool{
		m.Receive != nil,
		m.ExecuteSwapOperations != nil,
		m.ExecuteSwapOperation != nil,
		m.AssertMinimumReceive != nil,
	} {
		if isSet {
			set++
		}
	}
	if set != 1 {
		return ErrInvalidExecuteMsg
	}
	return nil
}

// ExecuteSwapOperationsMsg executes a whole route.
type ExecuteSwapOperationsMsg struct {
	Operations     []SwapOperation `json:"operations"`
	MinimumReceive *math.Uint      `json:"minimum_receive,omitempty"`
	To             *string         `json:"to,omitempty"`
}

// ExecuteSwapOperationMsg executes a single hop. Only the router may send it.
type ExecuteSwapOperationMsg struct {
	Operation SwapOperation `json:"operation"`
	To        *string       `json:"to,omitempty"`
}

// AssertMinimumReceiveMsg checks what the receiver gained since PrevBalance.
type AssertMinimumReceiveMsg struct {
	AssetInfo      AssetInfo `json:"asset_info"`
	PrevBalance    math.Uint `json:"prev_balance"`
	MinimumReceive math.Uint `json:"minimum_receive"`
	Receiver       string    `json:"receiver"`
}

// Cw20HookMsg is the message embedded in a CW20 send to the router.
type Cw20HookMsg struct {
	ExecuteSwapOperations *ExecuteSwapOperationsMsg `json:"execute_swap_operations,omitempty"`
}

// NewSelfCallMsg encodes msg as an execute call of the router at contractAddr.
func NewSelfCallMsg(contractAddr string, msg ExecuteMsg) (wasmvmtypes.CosmosMsg, error) {
	bz, err := json.Marshal(msg)
	if err != nil {
		return wasmvmtypes.CosmosMsg{}, err
	}
	return NewWasmExecuteMsg(contractAddr, bz), nil
}

// Response is what an execution hands back to the host: messages to dispatch, in order,
// and attributes to emit.
type Response struct {
	Messages   []wasmvmtypes.CosmosMsg      `json:"messages"`
	Attributes []wasmvmtypes.EventAttribute `json:"attributes"`
}

// NewResponse returns an empty response.
func NewResponse() Response {
	return Response{
		Messages:   []wasmvmtypes.CosmosMsg{},
		Attributes: []wasmvmtypes.EventAttribute{},
	}
}

// AddMessages appends messages to the response.
func (r Response) AddMessages(msgs ...wasmvmtypes.CosmosMsg) Response {
	r.Messages = append(r.Messages, msgs...)
	return r
}

// AddAttribute appends an attribute to the response.
func (r Response) AddAttribute(key, value string) Response {
	r.Attributes = append(r.Attributes, wasmvmtypes.EventAttribute{Key: key, Value: value})
	return r
}
