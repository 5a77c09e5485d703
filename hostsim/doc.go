// Package hostsim is an in-process simulation of the host runtime side of
// the extension boundary.
//
// A Host keeps ds_maps in Go memory and implements the four native operations
// with the same contracts as the real runtime: ds_map_create returns a fresh
// id, the add operations return false for an unknown map or a duplicate key,
// and event_perform_async queues the event and destroys the map.
//
//	host := hostsim.New()
//	m := dsmap.New(host.Registry())
//	m.AddDouble("hp", 10)
//	m.Dispatch(dsmap.Social)
//
//	ev, _ := host.Next(ctx)
//	v, _ := ev.Lookup("hp") // v.Number == 10
//
// Map ids are reused after destruction, so an id is only meaningful while
// the map is alive.
package hostsim
