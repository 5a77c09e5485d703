// Command asyncload is the bare extension library: it exports
// RegisterCallbacks and nothing else. Build it with
//
//	go build -buildmode=c-shared -o asyncload.so ./cmd/asyncload
//
// and list RegisterCallbacks in the host's extension editor.
package main

import "C"

import _ "github.com/wippyai/asyncload/extension/autoregister"

func main() {}
