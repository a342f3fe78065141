package xctx_test

import (
	"context"
	"fmt"

	"github.com/omeyang/tracectx/pkg/context/xctx"
)

// ExampleWithTraceID 演示把追踪状态挂载到 context 并读回。
func ExampleWithTraceID() {
	ctx, _ := xctx.WithTraceID(context.Background(), "0af7651916cd43dd8448eb211c80319c")
	ctx, _ = xctx.WithSpanID(ctx, "b7ad6b7169203331")
	ctx, _ = xctx.WithSampled(ctx, true)

	fmt.Println(xctx.TraceID(ctx))
	fmt.Println(xctx.SpanID(ctx))
	fmt.Println(xctx.Sampled(ctx))

	// Output:
	// 0af7651916cd43dd8448eb211c80319c
	// b7ad6b7169203331
	// true
}

// ExampleEnsureTraceID 演示入口处自动补全追踪标识。
func ExampleEnsureTraceID() {
	ctx, _ := xctx.EnsureTraceID(context.Background())
	fmt.Println(len(xctx.TraceID(ctx)))

	// Output:
	// 32
}
