package requestdata

import (
	"context"
)

var requestDataKey = struct{}{}

func WithRequestData(ctx context.Context, rd *RequestData) context.Context {
	return context.WithValue(ctx, requestDataKey, rd)
}

func GetRequestData(ctx context.Context) *RequestData {
	val := ctx.Value(requestDataKey)
	if rd, ok := val.(*RequestData); ok {
		return rd
	}
	return nil
}

// RequestData carries per-HTTP-request correlation state. RequestID is a
// short token minted by the request-id middleware and echoed back in every
// response envelope; it is never persisted.
type RequestData struct {
	RequestID string
}
