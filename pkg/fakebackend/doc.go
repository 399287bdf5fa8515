// Package fakebackend simulates the remote REST service in-process.
//
// A Backend is a transport.Transport and an http.RoundTripper. Each request
// first waits a fixed latency, then is matched against the route table:
//
//	POST   /users/authenticate   public
//	POST   /users/register       public
//	GET    /users
//	GET    /users/{id}
//	PUT    /users/{id}
//	DELETE /users/{id}
//	GET    /inventory
//	POST   /inventory
//	GET    /inventory/{id}
//	PUT    /inventory/{id}
//	DELETE /inventory/{id}
//
// Matching only looks at the end of the URL path, so the routes work under
// any base URL. Every non-public route requires the bearer token issued by
// authenticate. Requests that match nothing are forwarded unchanged to the
// next transport, which defaults to the network.
//
// Basic usage:
//
//	recs, _ := records.Open(ctx, memory.New())
//	backend, _ := fakebackend.New(recs)
//	client := &http.Client{Transport: backend}
package fakebackend
