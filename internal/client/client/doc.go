// Package client is the console's view of the remote users collection.
//
// # Overview
//
// The Client interface lists the five calls the screens need: Authenticate,
// ListUsers, CreateUser, UpdateUser and DeleteUser. HTTPClient implements it
// with JSON over net/http against a single base endpoint:
//
//	POST   /users        Authenticate, CreateUser
//	GET    /users        ListUsers
//	PUT    /users/{id}   UpdateUser
//	DELETE /users/{id}   DeleteUser
//
// # Error Handling
//
// Every failure is an *Error and matches ErrRequestFailed with errors.Is. A
// non-2xx status reads "request failed with status code N"; transport and
// decoding failures carry the underlying message. Nothing is retried.
//
// Concurrency & Contexts
//
// HTTPClient is safe for concurrent use. Each call is bounded by the
// configured timeout in addition to the caller's context.
package client
