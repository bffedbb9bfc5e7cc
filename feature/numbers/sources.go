package numbers

import "github.com/valyala/fasthttp"

const (
	paramURL     = "url"
	paramURLList = "url[]"
)

// SourceParam is the url query parameter as received.
// List is set when the parameter was given as a sequence, either repeated
// (url=a&url=b) or in bracket form (url[]=a).
type SourceParam struct {
	Values []string
	List   bool
}

// ParseSourceParam extracts the url parameter from query arguments.
// Empty values are dropped.
func ParseSourceParam(args *fasthttp.Args) SourceParam {
	plain := args.PeekMulti(paramURL)
	bracket := args.PeekMulti(paramURLList)

	p := SourceParam{
		Values: make([]string, 0, len(plain)+len(bracket)),
		List:   len(plain) > 1 || len(bracket) > 0,
	}
	for _, values := range [][][]byte{plain, bracket} {
		for _, raw := range values {
			if len(raw) == 0 {
				continue
			}
			p.Values = append(p.Values, string(raw))
		}
	}
	return p
}

// ValidateSources returns the source URLs, or ErrInvalidInput when the
// parameter is absent or a single scalar.
func ValidateSources(p SourceParam) ([]string, error) {
	if !p.List {
		return nil, ErrInvalidInput
	}
	return p.Values, nil
}
