package rpcutil

import (
	"encoding/json"
)

// JSONCodec marshals plain Go structs for connect handlers. It registers
// under the "json" name, replacing connect's protobuf-only JSON codec.
type JSONCodec struct{}

func (JSONCodec) Name() string { return "json" }

func (JSONCodec) Marshal(message any) ([]byte, error) {
	return json.Marshal(message)
}

func (JSONCodec) Unmarshal(data []byte, message any) error {
	if len(data) == 0 {
		return nil
	}
	return json.Unmarshal(data, message)
}
