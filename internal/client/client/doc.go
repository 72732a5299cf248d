// Package client contains the terminal client's view of the task manager.
//
// # Overview
//
// The package provides:
//  1. A transport-agnostic API contract (see the Client interface) used by
//     the REPL: Login/Logout, Register, AddTask, ListTasks, GenerateReports,
//     GetReports and Ping.
//  2. A gRPC implementation (see GRPCClient) that manages a connection,
//     injects the access token via an interceptor and maps gRPC status codes
//     back to the sentinel errors of package common.
//  3. A local implementation (see LocalClient) that drives the services
//     directly over the configured store, with the same access rules as the
//     server.
//
// # Error Handling
//
// Domain failures come back as the sentinels of package common, whatever the
// transport. Transport failures are ErrUnavailable.
package client
