// Package asyncload lets a native extension built with Go trigger asynchronous
// events inside a GameMaker-style host runtime and hand key/value payloads to them.
//
// The host loads the extension as a shared library and, once loaded, calls the
// exported RegisterCallbacks function with the addresses of four of its internal
// functions. Those addresses are captured by the binding registry and used by
// the ds_map builder to create a map, fill it and fire an async event that
// receives the map as async_load.
//
// # Architecture Overview
//
//	asyncload/               Root package with the host number type
//	├── native/              Binding registry over the four host addresses
//	├── dsmap/               ds_map builder and async event types
//	├── gml/                 Host string marshaling
//	├── errors/              Structured error types
//	├── extension/           Process registry, configuration and logging
//	│   └── autoregister/    Exported RegisterCallbacks entry point
//	├── hostsim/             In-process simulated host runtime
//	├── cmd/asyncload/       Minimal c-shared extension
//	├── cmd/hostsim/         CLI and TUI over the simulated host
//	└── examples/async/      Extension that dispatches from a goroutine
//
// # Quick Start
//
// Import the entry point and dispatch a map from any exported function:
//
//	import (
//	    "github.com/wippyai/asyncload/dsmap"
//	    "github.com/wippyai/asyncload/extension"
//	    _ "github.com/wippyai/asyncload/extension/autoregister"
//	)
//
//	//export MyFunction
//	func MyFunction() C.double {
//	    go func() {
//	        m, err := extension.NewMap()
//	        if err != nil {
//	            return
//	        }
//	        m.AddDouble("key1", 21.37)
//	        m.AddString("key2", "Hello from Go!")
//	        m.Dispatch(dsmap.Social)
//	    }()
//	    return 0
//	}
//
// # Ownership
//
// A map belongs to the extension from creation until Dispatch. Dispatch hands
// it to the host, which destroys it after the async event ran. The dsmap.Map
// value refuses every operation after Dispatch.
//
// # Thread Safety
//
// Registration must complete before any goroutine creates maps. After that the
// registry is read-only. A single Map is not safe for concurrent use.
package asyncload
