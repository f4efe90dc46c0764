// Package server orchestrates the lifecycle of a router instance on top of a
// transport module: it owns the route table, binds registered routes into the
// transport's listener on Start, and tears its own bindings down on Stop.
//
// # Registration
//
// Routes can be registered at any time. Before Start they are only recorded
// in the table; once a live listener exists each registration is bound
// immediately. A physical bind failure is logged and the route stays in the
// table, discoverable through Routes but unreachable from the listener.
//
//	srv := server.New()
//	srv.BindRoute("/status", router.VerbGet, func(req router.Request) router.Response {
//		resp, _ := response.JSON(map[string]bool{"ok": true}, http.StatusOK)
//		return resp
//	})
//	if err := srv.Start(8080); err != nil {
//		log.Fatal(err)
//	}
//	defer srv.Close()
//
// # Root path
//
// The root path "/" is never bound as an ordinary route. It is served through
// a preprocessor hook registered with the listener exactly once per instance,
// because some transports match "/" ambiguously against sub-paths.
//
// # Teardown
//
// Stop is idempotent and deliberately asymmetric: it stops all listeners of
// the transport module unconditionally (the module may be process-wide), but
// unbinds only the route handles this instance created. Leaving handles bound
// after teardown would invoke callbacks against a dead instance on the next
// start; unbinding foreign handles would break other instances sharing the
// module. Table entries survive Stop so a later Start can re-bind them all.
package server
