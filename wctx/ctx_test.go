package wctx

import (
	"context"
	"testing"

	"kr.dev/diff"
)

func TestRoundTrip(t *testing.T) {
	ctx := context.Background()
	diff.Test(t, t.Errorf, Op(ctx), "")
	diff.Test(t, t.Errorf, ReqID(ctx), "")
	diff.Test(t, t.Errorf, Version(ctx), "")

	ctx = WithOp(ctx, "encrypt")
	ctx = WithReqID(ctx, "ba5e")
	ctx = WithVersion(ctx, "deadbeef")
	diff.Test(t, t.Errorf, Op(ctx), "encrypt")
	diff.Test(t, t.Errorf, ReqID(ctx), "ba5e")
	diff.Test(t, t.Errorf, Version(ctx), "deadbeef")
}
