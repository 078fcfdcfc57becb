// Package services contains the application services behind the CLI screens:
// session gating, the OAuth redirect bridge, the publishing pipeline, and
// profile management. Services compose the remote API client with the local
// credential store.
package services
