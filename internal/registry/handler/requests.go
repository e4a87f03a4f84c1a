package handler

// processRequest is the inbound JSON envelope for POST /v1/process.
type processRequest struct {
	Tenant string `json:"tenant"`
	Key    string `json:"key"`
}

// processResponse mirrors the remote contract: whether the identity was
// minted by this call, the identity itself, and the server wall clock in
// whole seconds when the response was built. The timestamp is informational
// and not part of the dedup contract.
type processResponse struct {
	IsNew     bool   `json:"is_new"`
	ID        uint64 `json:"id"`
	Timestamp int64  `json:"timestamp"`
}
