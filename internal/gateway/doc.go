// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package gateway is the single chokepoint through which the kardash client
// talks to the KARDASH backend.
//
// A [Gateway] issues exactly one HTTP request per call to the configured base
// address. It attaches "Content-Type: application/json", merges the caller's
// headers on top and resolves the bearer token: an explicit [Options.Token]
// wins, otherwise the injected [TokenProvider] is asked, otherwise the request
// goes out anonymously.
//
// Responses are classified as follows:
//   - status outside 200..299: [*APIError] with the "detail" message of the
//     body, or [DefaultErrorMessage] when the body carries none;
//   - status 204: success with a nil result;
//   - any other success: the JSON body decoded into the caller's type by
//     [Do], then validated against its `validate` tags.
//
// Transport errors are returned unmodified. A malformed success body yields
// an error matching [ErrDecodeResponse]; a body that decodes but breaks the
// result schema yields a [*ValidationError] matching [ErrSchemaValidation].
//
// The gateway never writes session state. Storing the token after login and
// clearing it on logout belongs to the caller.
package gateway
