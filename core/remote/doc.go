// Package remote retrieves number payloads from remote sources over HTTP.
//
// A source is any URL answering GET with a JSON object that carries a
// "numbers" field holding a list of integers:
//
//	{"numbers": [1, 2, 3]}
//
// # Fetcher Interface
//
// The Fetcher interface abstracts the transport so aggregation logic can be
// tested without the network (see core/remote/mocks).
//
// # Failure Semantics
//
// Every request is bounded by FetchTimeout (500ms) covering dial, headers and
// body. Network errors, timeouts, non-2xx statuses and bodies that are not a
// JSON object are returned as *SourceError. A well-formed object whose
// "numbers" field is absent or is not a list of integers is not an error: it
// yields an empty slice. Numbers may use any JSON notation (2, 2.0, 2e0);
// elements that are fractional or do not fit in an int64 are skipped.
//
// # Limits
//
// Bodies are read up to MaxBodyBytes (4 MiB). A larger body fails with a
// *SourceError wrapping ErrBodyTooLarge instead of being truncated. Trailing
// data after the JSON object makes the body malformed.
//
// # Usage
//
//	client := remote.NewClient(cfg.Remote)
//	numbers, err := client.FetchNumbers(ctx, "http://example.com/primes")
package remote
