package rules

import "net/url"

// ResolveURI converts a possibly-relative URI to an absolute one against
// base. It never fails: on any internal parse error it returns uri
// unchanged, mirroring original_source/readability/utils.py:to_absolute_uri.
func ResolveURI(uri string, base *url.URL) string {
	if uri == "" || base == nil {
		return uri
	}
	if len(uri) > 0 && uri[0] == '#' {
		return uri
	}
	if len(uri) >= 5 && uri[:5] == "data:" {
		return uri
	}

	parsed, err := url.Parse(uri)
	if err != nil {
		return uri
	}
	if parsed.IsAbs() && parsed.Host != "" {
		return uri
	}

	baseRoot := &url.URL{Scheme: base.Scheme, Host: base.Host, Path: base.Path}
	resolved := baseRoot.ResolveReference(parsed)
	return resolved.String()
}
