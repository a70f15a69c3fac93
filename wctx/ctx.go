// index for context values
package wctx

import "context"

type key int

const (
	opKey      key = 1
	reqIDKey   key = 2
	versionKey key = 3
)

// WithOp records the name of the operation in flight
// (keygen, encrypt, decrypt, sign, verify).
func WithOp(ctx context.Context, op string) context.Context {
	return context.WithValue(ctx, opKey, op)
}

func Op(ctx context.Context) string {
	op, _ := ctx.Value(opKey).(string)
	return op
}

// WithReqID tags ctx with a unique id for one CLI invocation so
// related log lines can be grouped.
func WithReqID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, reqIDKey, id)
}

func ReqID(ctx context.Context) string {
	id, _ := ctx.Value(reqIDKey).(string)
	return id
}

func WithVersion(ctx context.Context, v string) context.Context {
	return context.WithValue(ctx, versionKey, v)
}

func Version(ctx context.Context) string {
	v, _ := ctx.Value(versionKey).(string)
	return v
}
