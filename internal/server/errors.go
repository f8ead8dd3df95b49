package server

import "errors"

// errNoHTTPAddress is returned by NewServer when the listen address is empty.
var errNoHTTPAddress = errors.New("server: no http address configured")
