// Package client contains the transports the todocards CLI uses to talk to
// the server, plus the local SQLite bootstrap.
//
// # Overview
//
//  1. Client is the transport-agnostic API contract: Signup, Ping and the
//     card operations.
//  2. HTTPClient speaks the JSON REST API with a bearer token.
//  3. GRPCClient speaks todocards.v1.CardService and attaches the token as
//     access_token metadata.
//  4. InitDatabase opens the local SQLite file and applies the embedded goose
//     migrations.
//
// # Error Handling
//
// Both transports map failures back onto the sentinels in internal/common
// (ErrUnauthenticated, ErrNotOwner, ErrNotFound, ErrValidation,
// ErrUnavailable, ErrInternal), so callers match them with errors.Is
// regardless of transport.
package client
