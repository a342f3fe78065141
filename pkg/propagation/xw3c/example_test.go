package xw3c_test

import (
	"context"
	"fmt"
	"time"

	"github.com/omeyang/tracectx/pkg/config/xconf"
	"github.com/omeyang/tracectx/pkg/propagation/xw3c"
)

func exampleSettings() xconf.Settings {
	return xconf.Settings{
		TrustedAccountKey: "190",
		AccountID:         "33",
		PrimaryAppID:      "5043",
		SpanEvents:        true,
		TransactionEvents: true,
	}
}

func ExampleCodec_CreateHeaders() {
	codec, err := xw3c.New(exampleSettings(),
		xw3c.WithNow(func() time.Time { return time.UnixMilli(1518469636035) }),
	)
	if err != nil {
		fmt.Println("new:", err)
		return
	}

	traceparent, tracestate := codec.CreateHeaders(context.Background(), xw3c.TxnState{
		TraceID:     "4bf92f3577b34da6a3ce929d0e0e4736",
		SpanID:      "00f067aa0ba902b7",
		TxnID:       "5569065a5b1313bd",
		Sampled:     true,
		Priority:    1.234567,
		HasPriority: true,
	})

	fmt.Println(traceparent)
	fmt.Println(tracestate)
	// Output:
	// 00-4bf92f3577b34da6a3ce929d0e0e4736-00f067aa0ba902b7-01
	// 190@nr=0-0-33-5043-00f067aa0ba902b7-5569065a5b1313bd-1-1.234567-1518469636035
}

func ExampleCodec_Accept() {
	codec, err := xw3c.New(exampleSettings(),
		xw3c.WithNow(func() time.Time { return time.UnixMilli(1518469636100) }),
	)
	if err != nil {
		fmt.Println("new:", err)
		return
	}

	result := codec.Accept(context.Background(),
		"00-4bf92f3577b34da6a3ce929d0e0e4736-00f067aa0ba902b7-01",
		"other=1,190@nr=0-0-33-5043-27ddd2d8890283b4-5569065a5b1313bd-1-1.234567-1518469636035,another=2",
	)

	fmt.Println("trace id:", result.TraceID)
	fmt.Println("parent span:", result.ParentSpanID)
	fmt.Println("parent type:", result.ParentType)
	fmt.Println("sampled:", result.Sampled)
	fmt.Println("transport:", result.TransportDuration)
	fmt.Println("pass-through:", codec.PassThrough())
	// Output:
	// trace id: 4bf92f3577b34da6a3ce929d0e0e4736
	// parent span: 00f067aa0ba902b7
	// parent type: App
	// sampled: true
	// transport: 65ms
	// pass-through: other=1,another=2
}

func ExampleCodec_Accept_invalidHeaders() {
	codec, err := xw3c.New(exampleSettings())
	if err != nil {
		fmt.Println("new:", err)
		return
	}

	// 版本 "ff" 永远非法；traceparent 非法时 tracestate 不再解析
	result := codec.Accept(context.Background(),
		"ff-4bf92f3577b34da6a3ce929d0e0e4736-00f067aa0ba902b7-01",
		"190@nr=0-0-33-5043-----1518469636035",
	)

	fmt.Println("traceparent accepted:", result.AcceptedTraceParent)
	fmt.Println("tracestate accepted:", result.AcceptedTraceState)
	// Output:
	// traceparent accepted: false
	// tracestate accepted: false
}
