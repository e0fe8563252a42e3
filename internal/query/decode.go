package query

import (
	"fmt"
	"sort"

	"github.com/go-viper/mapstructure/v2"
)

// DecodeOptions fills a typed request struct from an untyped options map
// (CLI flags, a --request YAML file, or an embedding host). Unrecognized
// keys are returned so callers can warn about probable typos without
// rejecting the request.
func DecodeOptions(opts map[string]any, out any) (unknown []string, err error) {
	var md mapstructure.Metadata
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           out,
		Metadata:         &md,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return nil, fmt.Errorf("building options decoder: %w", err)
	}
	if err := dec.Decode(opts); err != nil {
		return nil, fmt.Errorf("decoding options: %w", err)
	}
	unknown = append(unknown, md.Unused...)
	sort.Strings(unknown)
	return unknown, nil
}
