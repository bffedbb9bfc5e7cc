// Package numbers implements the number aggregation feature.
//
// Given a list of source URLs, it fetches a {"numbers": [...]} payload from
// each one concurrently and returns the union of every number retrieved,
// deduplicated and sorted ascending.
//
// # Failure Isolation
//
// Every source is fetched in its own goroutine with a fixed 500ms timeout.
// Network errors, timeouts, bad statuses and malformed bodies are logged with
// the source URL and downgraded to an empty contribution; they never affect
// sibling sources or the response status. A source that fails is therefore
// indistinguishable in the response from one that published no numbers.
//
// Only two conditions reach the caller:
//   - ErrInvalidInput: the url parameter is missing or is a single value.
//   - ErrInternal: the fetch tasks could not be joined (a task panicked).
//
// # Components
//
//   - Validator: ParseSourceParam / ValidateSources turn the query string into source URLs.
//   - Service: Aggregate fans out, joins and merges.
//   - Merge: flattens, deduplicates and sorts outcomes.
//   - Handler: exposes the HTTP endpoint.
//   - Loader: registers the feature with the application.
//
// # HTTP Endpoints
//
//   - GET /numbers?url=http://a&url=http://b : Merged numbers of all sources.
package numbers
