// Package lspserver is the jsonrpc2 plumbing between stdio and the
// typed handler methods of the language server.
package lspserver

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"reflect"

	"github.com/sourcegraph/jsonrpc2"
)

type Method func(ctx context.Context, conn jsonrpc2.JSONRPC2, params json.RawMessage) interface{}

type MethodMap map[string]Method

type stdio struct{}

func (stdio) Read(p []byte) (int, error)  { return os.Stdin.Read(p) }
func (stdio) Write(p []byte) (int, error) { return os.Stdout.Write(p) }

func (stdio) Close() error {
	if err := os.Stdin.Close(); err != nil {
		return err
	}
	return os.Stdout.Close()
}

// Typed adapts a handler with signature
// func(context.Context, jsonrpc2.JSONRPC2, SomeParams) into a Method,
// unmarshalling the raw params into the third argument's type. Handlers
// returning nothing are notifications; handlers returning a
// (result, error) pair follow LSP response conventions.
func Typed(fn interface{}) Method {
	val := reflect.ValueOf(fn)
	paramsType := val.Type().In(2)

	return func(ctx context.Context, conn jsonrpc2.JSONRPC2, params json.RawMessage) interface{} {
		v := reflect.New(paramsType)
		json.Unmarshal(params, v.Interface())

		ret := val.Call([]reflect.Value{reflect.ValueOf(ctx), reflect.ValueOf(conn), v.Elem()})
		switch len(ret) {
		case 0: // notification
			return nil
		case 2:
			if !ret[0].IsNil() {
				return ret[0].Interface()
			}
			if !ret[1].IsNil() {
				return ret[1].Interface()
			}
			return nil
		default:
			panic(fmt.Sprintf("handler returns %d values, want 0 or 2", len(ret)))
		}
	}
}

// StartServer serves the method map over stdio until the client hangs
// up. Unknown methods get a MethodNotFound error back.
func StartServer(methods MethodMap) {
	han := jsonrpc2.HandlerWithError(func(ctx context.Context, conn *jsonrpc2.Conn, req *jsonrpc2.Request) (interface{}, error) {
		m, ok := methods[req.Method]
		if !ok {
			return nil, &jsonrpc2.Error{Code: jsonrpc2.CodeMethodNotFound, Message: req.Method}
		}

		var params json.RawMessage
		if req.Params != nil {
			params = *req.Params
		}
		return m(ctx, conn, params), nil
	})

	<-jsonrpc2.NewConn(context.Background(), jsonrpc2.NewBufferedStream(stdio{}, jsonrpc2.VSCodeObjectCodec{}), han).DisconnectNotify()
}
