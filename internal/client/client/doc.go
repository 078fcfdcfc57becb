// Package client talks to the PostPilot backend over HTTP/JSON and owns the
// local client database. The Client interface is the single seam the
// application services use; HTTPClient is the production implementation.
package client
