// Package transport defines the boundary between the route/dispatch core and
// the listener layer that owns sockets, connection acceptance, and TLS.
//
// The core talks to the transport exclusively through the Module and Listener
// interfaces: it acquires a listener for a port, physically binds routes and
// the root preprocessor into it, and starts or stops all listeners process
// wide. Handles returned from binding are opaque tokens; a router instance
// must unbind exactly the handles it created and nothing else, because the
// module may be shared across instances and outlive any one of them.
//
// HTTPModule is the default net/http-backed implementation. Alternative
// transports only need to satisfy Module and Listener.
package transport
