// Command hostsim drives the simulated host runtime: it builds a ds_map
// through the same registry and builder an extension uses, dispatches it and
// prints the async_load the host's script would see.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/wippyai/asyncload/dsmap"
	"github.com/wippyai/asyncload/errors"
	"github.com/wippyai/asyncload/hostsim"
	"github.com/wippyai/asyncload/native"
)

func main() {
	var (
		numbers     = flag.String("num", "key1=21.37", "Number entries (KEY=VAL,KEY2=VAL2)")
		strs        = flag.String("str", "key2=Hello from Go!", "String entries (KEY=VAL,KEY2=VAL2)")
		eventCode   = flag.Float64("event", float64(dsmap.Social), "Async event code")
		strict      = flag.Bool("strict", false, "Reject event codes outside the event domain")
		verbose     = flag.Bool("v", false, "Log host calls")
		listEvents  = flag.Bool("list", false, "List event types and exit")
		interactive = flag.Bool("i", false, "Interactive mode with TUI")
	)
	flag.Parse()

	if *verbose {
		l, err := zap.NewDevelopment()
		if err == nil {
			hostsim.SetLogger(l)
			defer l.Sync()
		}
	}

	if *listEvents {
		for _, e := range dsmap.EventTypes() {
			fmt.Printf("  %d  %s\n", e, e)
		}
		return
	}

	if *interactive {
		if !term.IsTerminal(int(os.Stdout.Fd())) {
			fmt.Fprintln(os.Stderr, "Error: interactive mode needs a terminal")
			os.Exit(1)
		}
		if err := runInteractive(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := run(*numbers, *strs, *eventCode, *strict); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(numbersStr, stringsStr string, code float64, strict bool) error {
	host := hostsim.New()
	defer host.Close()

	var event dsmap.EventType
	if strict {
		e, err := dsmap.ParseEventType(code)
		if err != nil {
			return err
		}
		event = e
	} else {
		event = dsmap.EventTypeFromDouble(code)
	}

	m := dsmap.New(host.Registry())
	fmt.Printf("Created map %d\n", m.ID())

	for _, kv := range splitPairs(numbersStr) {
		v, err := strconv.ParseFloat(kv[1], 64)
		if err != nil {
			return errors.New(errors.PhaseMarshal, errors.KindInvalidInput).
				Path(kv[0]).
				Value(kv[1]).
				Cause(err).
				Detail("%q is not a number", kv[1]).
				Build()
		}
		ok, err := m.AddDouble(kv[0], v)
		if err != nil {
			return fmt.Errorf("add %q: %w", kv[0], err)
		}
		if !ok {
			return errors.HostRejected(native.OpAddDouble.String(), m.ID(), kv[0])
		}
		fmt.Printf("  add %s = %v\n", kv[0], v)
	}

	for _, kv := range splitPairs(stringsStr) {
		ok, err := m.AddString(kv[0], kv[1])
		if err != nil {
			return fmt.Errorf("add %q: %w", kv[0], err)
		}
		if !ok {
			return errors.HostRejected(native.OpAddString.String(), m.ID(), kv[0])
		}
		fmt.Printf("  add %s = %q\n", kv[0], kv[1])
	}

	if err := m.Dispatch(event); err != nil {
		return fmt.Errorf("dispatch: %w", err)
	}
	fmt.Printf("Dispatched to %s (%d)\n", event, event)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	ev, err := host.Next(ctx)
	if err != nil {
		return fmt.Errorf("wait for event: %w", err)
	}

	fmt.Printf("\n--- async_load (%s) ---\n%s", ev.Type, formatEntries(ev.Entries))
	return nil
}

func splitPairs(s string) [][2]string {
	var out [][2]string
	if s == "" {
		return out
	}
	for _, kv := range strings.Split(s, ",") {
		parts := strings.SplitN(kv, "=", 2)
		if len(parts) == 2 {
			out = append(out, [2]string{parts[0], parts[1]})
		}
	}
	return out
}

func formatEntries(entries []hostsim.Entry) string {
	var b strings.Builder
	for _, e := range entries {
		switch e.Value.Kind {
		case hostsim.KindString:
			fmt.Fprintf(&b, "%s: %q\n", e.Key, e.Value.Text)
		default:
			fmt.Fprintf(&b, "%s: %v\n", e.Key, e.Value.Number)
		}
	}
	return b.String()
}
