package event

import (
	"encoding/json"
	"fmt"
)

// DecodePayload returns the payload as T. Payloads published in process arrive as
// T or *T; payloads read back from the dead-letter file arrive as raw JSON or as the
// generic map json.Unmarshal produces.
func DecodePayload[T any](input any) (T, error) {
	var result T
	switch v := input.(type) {
	case T:
		return v, nil
	case *T:
		if v == nil {
			return result, fmt.Errorf(ErrMsgNilPayload, result)
		}
		return *v, nil
	case json.RawMessage:
		return result, json.Unmarshal(v, &result)
	case []byte:
		return result, json.Unmarshal(v, &result)
	}

	data, err := json.Marshal(input)
	if err != nil {
		return result, err
	}
	return result, json.Unmarshal(data, &result)
}
