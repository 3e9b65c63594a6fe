package ethereum

import (
	"encoding/json"

	"github.com/blockpulse/hotswap-streamer/internal/chain"
	"github.com/blockpulse/hotswap-streamer/internal/model"
	"github.com/blockpulse/hotswap-streamer/pkg/hexutil"
)

// blockPayload mirrors the eth_getBlockByNumber response shape. Pointer fields
// distinguish absent from zero so required-field checks see what the node sent.
type blockPayload struct {
	Number       *string           `json:"number"`
	Hash         *string           `json:"hash"`
	ParentHash   *string           `json:"parentHash"`
	Timestamp    *string           `json:"timestamp"`
	Transactions []json.RawMessage `json:"transactions"`
}

func convertBlock(requested uint64, payload blockPayload) (model.Block, error) {
	if payload.Number == nil {
		return model.Block{}, &chain.ValidationError{Number: requested, Field: "number", Err: chain.ErrMissingField}
	}
	if payload.Hash == nil {
		return model.Block{}, &chain.ValidationError{Number: requested, Field: "hash", Err: chain.ErrMissingField}
	}
	if payload.ParentHash == nil {
		return model.Block{}, &chain.ValidationError{Number: requested, Field: "parentHash", Err: chain.ErrMissingField}
	}
	if payload.Timestamp == nil {
		return model.Block{}, &chain.ValidationError{Number: requested, Field: "timestamp", Err: chain.ErrMissingField}
	}

	number, err := hexutil.ParseQuantity(*payload.Number)
	if err != nil {
		return model.Block{}, &chain.ValidationError{Number: requested, Field: "number", Err: err}
	}
	hash, err := hexutil.ParseBytes(*payload.Hash)
	if err != nil {
		return model.Block{}, &chain.ValidationError{Number: requested, Field: "hash", Err: err}
	}
	parentHash, err := hexutil.ParseBytes(*payload.ParentHash)
	if err != nil {
		return model.Block{}, &chain.ValidationError{Number: requested, Field: "parentHash", Err: err}
	}
	timestamp, err := hexutil.ParseQuantity(*payload.Timestamp)
	if err != nil {
		return model.Block{}, &chain.ValidationError{Number: requested, Field: "timestamp", Err: err}
	}

	return model.Block{
		Number:           number,
		Hash:             hash,
		ParentHash:       parentHash,
		Timestamp:        timestamp,
		TransactionCount: len(payload.Transactions),
	}, nil
}
