package numbers

// NumbersResponse is the body of a successful aggregation.
type NumbersResponse struct {
	Numbers []int64 `json:"numbers"`
}

// ErrorResponse is the body returned for rejected or failed requests.
type ErrorResponse struct {
	Error string `json:"error"`
}
