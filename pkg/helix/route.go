package helix

import (
	"strconv"
	"strings"

	"github.com/streamkit-io/helix-client/internal/constants"
)

// Params is an ordered, multi-valued query parameter mapping. Keys iterate in
// insertion order. A key may hold a scalar, a list, or an explicit nil value;
// nil-valued keys are never emitted into a URL.
type Params struct {
	keys    []string
	entries map[string]paramEntry
}

type paramEntry struct {
	values []string
	list   bool
	nil_   bool
}

// NewParams creates an empty parameter mapping.
func NewParams() *Params {
	return &Params{
		entries: make(map[string]paramEntry),
	}
}

// Set stores a scalar value under key, replacing any previous entry. Accepted
// types are string, int, bool and nil; nil records an explicit nil entry.
func (p *Params) Set(key string, value interface{}) *Params {
	switch v := value.(type) {
	case nil:
		p.put(key, paramEntry{nil_: true})
	case string:
		p.put(key, paramEntry{values: []string{v}})
	case int:
		p.put(key, paramEntry{values: []string{strconv.Itoa(v)}})
	case bool:
		p.put(key, paramEntry{values: []string{strconv.FormatBool(v)}})
	default:
		// Unknown scalars are not silently stringified; store nil so the
		// key is dropped rather than emitting a Go-formatted value.
		p.put(key, paramEntry{nil_: true})
	}

	return p
}

// SetList stores an ordered list value under key, replacing any previous entry.
func (p *Params) SetList(key string, values ...string) *Params {
	p.put(key, paramEntry{values: values, list: true})

	return p
}

// Delete removes key from the mapping.
func (p *Params) Delete(key string) *Params {
	if _, ok := p.entries[key]; !ok {
		return p
	}

	delete(p.entries, key)

	for i, k := range p.keys {
		if k == key {
			p.keys = append(p.keys[:i], p.keys[i+1:]...)

			break
		}
	}

	return p
}

// Get returns the scalar value stored under key. List and nil entries report
// their first element or an empty string.
func (p *Params) Get(key string) (string, bool) {
	if p == nil {
		return "", false
	}

	entry, ok := p.entries[key]
	if !ok || entry.nil_ || len(entry.values) == 0 {
		return "", false
	}

	return entry.values[0], true
}

// Has reports whether key is present, including nil entries.
func (p *Params) Has(key string) bool {
	if p == nil {
		return false
	}

	_, ok := p.entries[key]

	return ok
}

// Len returns the number of stored keys.
func (p *Params) Len() int {
	if p == nil {
		return 0
	}

	return len(p.keys)
}

// Keys returns the keys in insertion order.
func (p *Params) Keys() []string {
	if p == nil {
		return nil
	}

	keys := make([]string, len(p.keys))
	copy(keys, p.keys)

	return keys
}

// Clone returns an independent copy of the mapping.
func (p *Params) Clone() *Params {
	if p == nil {
		return NewParams()
	}

	clone := &Params{
		keys:    make([]string, len(p.keys)),
		entries: make(map[string]paramEntry, len(p.entries)),
	}
	copy(clone.keys, p.keys)

	for key, entry := range p.entries {
		values := make([]string, len(entry.values))
		copy(values, entry.values)
		clone.entries[key] = paramEntry{values: values, list: entry.list, nil_: entry.nil_}
	}

	return clone
}

func (p *Params) put(key string, entry paramEntry) {
	if _, ok := p.entries[key]; !ok {
		p.keys = append(p.keys, key)
	}

	p.entries[key] = entry
}

// Route describes one Helix API endpoint invocation. A Route is an immutable
// value: the URL is derived purely from method, path, params and the host
// flag, and the With* methods return modified copies. This keeps pagination,
// which derives a fresh Route per page, free of aliasing across pages.
type Route struct {
	// Method is the HTTP method (GET, POST, PATCH, PUT, DELETE).
	Method string
	// Path is relative to the selected base host.
	Path string
	// Params holds the query parameters; nil means no query string.
	Params *Params
	// Body is an optional JSON request body.
	Body interface{}
	// Headers holds extra request headers.
	Headers map[string]string
	// UseIDHost selects the identity host (id.twitch.tv) over the API host.
	UseIDHost bool
	// TokenFor identifies which stored token authorizes this route. The
	// empty string selects the app access token.
	TokenFor string
}

// NewRoute creates a Route against the Helix API host.
func NewRoute(method, path string, params *Params) Route {
	return Route{
		Method: method,
		Path:   path,
		Params: params,
	}
}

// NewIDRoute creates a Route against the identity host.
func NewIDRoute(method, path string, params *Params) Route {
	return Route{
		Method:    method,
		Path:      path,
		Params:    params,
		UseIDHost: true,
	}
}

// BaseURL returns the host plus normalized path, without the query string.
func (r Route) BaseURL() string {
	base := constants.HelixBaseURL
	if r.UseIDHost {
		base = constants.IDBaseURL
	}

	return base + strings.Trim(r.Path, "/")
}

// URL returns the fully encoded request URL. Identity routes join list values
// with '+' into a single pair; API routes repeat the key per element.
func (r Route) URL() string {
	return BuildURL(r, !r.UseIDHost)
}

// WithParam returns a copy of the route with one parameter replaced. A nil
// value removes the key, which is how the paginator clears the cursor.
func (r Route) WithParam(key string, value interface{}) Route {
	params := r.Params.Clone()
	if value == nil {
		params.Delete(key)
	} else {
		params.Set(key, value)
	}

	r.Params = params

	return r
}

// WithHeaders returns a copy of the route with extra headers merged in.
func (r Route) WithHeaders(headers map[string]string) Route {
	merged := make(map[string]string, len(r.Headers)+len(headers))
	for k, v := range r.Headers {
		merged[k] = v
	}

	for k, v := range headers {
		merged[k] = v
	}

	r.Headers = merged

	return r
}

// String implements fmt.Stringer for request logging.
func (r Route) String() string {
	return r.Method + "[" + r.BaseURL() + "]"
}

// BuildURL derives the canonical URL for a route. With duplicateKeys, list
// values emit one key=value pair per element in order; otherwise all elements
// are individually encoded and joined with a literal '+' into a single pair.
// Nil-valued parameters are never emitted.
func BuildURL(r Route, duplicateKeys bool) string {
	return r.BaseURL() + QueryString(r, duplicateKeys)
}

// QueryString derives the encoded query string for a route, including the
// leading '?'. Empty when the route has no emittable parameters.
func QueryString(r Route, duplicateKeys bool) string {
	if r.Params == nil || r.Params.Len() == 0 {
		return ""
	}

	var builder strings.Builder

	sep := "?"

	for _, key := range r.Params.keys {
		entry := r.Params.entries[key]
		if entry.nil_ {
			continue
		}

		switch {
		case !entry.list:
			builder.WriteString(sep + key + "=" + EncodeComponent(entry.values[0], "+", true))
			sep = "&"
		case duplicateKeys:
			for _, v := range entry.values {
				builder.WriteString(sep + key + "=" + EncodeComponent(v, "+", true))
				sep = "&"
			}
		default:
			parts := make([]string, len(entry.values))
			for i, v := range entry.values {
				parts[i] = EncodeComponent(v, "+", false)
			}

			builder.WriteString(sep + key + "=" + strings.Join(parts, "+"))
			sep = "&"
		}
	}

	return builder.String()
}

// EncodeComponent percent-encodes a query component. With plus, form-style
// encoding is used (space becomes '+'); characters in safe are left as-is.
// A value that does not decode to itself is assumed to be already encoded and
// is returned unchanged, so encoding is idempotent.
func EncodeComponent(value, safe string, plus bool) string {
	if decodeComponent(value, plus) != value {
		return value
	}

	var builder strings.Builder

	for i := 0; i < len(value); i++ {
		c := value[i]

		switch {
		case isUnreservedByte(c) || strings.IndexByte(safe, c) >= 0:
			builder.WriteByte(c)
		case c == ' ' && plus:
			builder.WriteByte('+')
		default:
			builder.WriteString("%" + upperhex(c))
		}
	}

	return builder.String()
}

// decodeComponent reverses EncodeComponent. Invalid percent escapes are left
// in place rather than treated as errors, matching form decoding behavior.
func decodeComponent(value string, plus bool) string {
	var builder strings.Builder

	for i := 0; i < len(value); i++ {
		c := value[i]

		switch {
		case c == '%' && i+2 < len(value) && ishex(value[i+1]) && ishex(value[i+2]):
			builder.WriteByte(unhex(value[i+1])<<4 | unhex(value[i+2]))
			i += 2
		case c == '+' && plus:
			builder.WriteByte(' ')
		default:
			builder.WriteByte(c)
		}
	}

	return builder.String()
}

func isUnreservedByte(c byte) bool {
	return c >= 'a' && c <= 'z' ||
		c >= 'A' && c <= 'Z' ||
		c >= '0' && c <= '9' ||
		c == '_' || c == '.' || c == '-' || c == '~'
}

func ishex(c byte) bool {
	return c >= '0' && c <= '9' || c >= 'a' && c <= 'f' || c >= 'A' && c <= 'F'
}

func unhex(c byte) byte {
	switch {
	case c >= '0' && c <= '9':
		return c - '0'
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10
	default:
		return c - 'A' + 10
	}
}

func upperhex(c byte) string {
	const digits = "0123456789ABCDEF"

	return string([]byte{digits[c>>4], digits[c&0xF]})
}
