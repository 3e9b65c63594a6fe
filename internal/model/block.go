// Package model defines domain models for block streaming.
package model

// EndpointName identifies a configured provider endpoint.
type EndpointName string

// Block is a chain block that passed boundary validation: Number, Hash,
// ParentHash, and Timestamp are guaranteed present.
type Block struct {
	Number           uint64
	Hash             []byte
	ParentHash       []byte
	Timestamp        uint64
	TransactionCount int
}

// ConfirmedBlock is the structured record emitted for every block that passed
// field and hash-chain validation.
type ConfirmedBlock struct {
	BlockNumber      uint64 `json:"block_number"`
	Timestamp        uint64 `json:"timestamp"`
	Hash             string `json:"hash"`
	ParentHash       string `json:"parent_hash"`
	TransactionCount int    `json:"transaction_count"`
}
