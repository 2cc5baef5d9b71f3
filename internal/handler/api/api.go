package api

import "errors"

// errUnauthorized backs 401 responses when the auth context is missing; it
// should only surface if a route skipped RequireAuth.
var errUnauthorized = errors.New("missing authentication context")
