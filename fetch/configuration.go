package fetch

// Well-known keys in Defaults. The client understands these when it builds a
// request itself; unknown keys are carried through untouched for the transport.
const (
	// DefaultCredentials controls cookie/credential behavior (see the
	// Credentials* values). Carried as metadata for the transport.
	DefaultCredentials = "credentials"
	// DefaultHeaders is a map[string]string of headers merged into every
	// client-built request. Request-specific headers win.
	DefaultHeaders = "headers"
	// DefaultMethod is the HTTP method used when a client-built request
	// does not specify one.
	DefaultMethod = "method"
)

// Credential modes, matching the Fetch API vocabulary.
const (
	CredentialsOmit       = "omit"
	CredentialsSameOrigin = "same-origin"
	CredentialsInclude    = "include"
)

// Defaults maps request-option keys to values. It is applied only when the
// client constructs the underlying request itself, never when the caller
// supplies a pre-built *http.Request.
type Defaults map[string]any

// Credentials returns the credential mode, or "" if unset.
func (d Defaults) Credentials() string {
	s, _ := d[DefaultCredentials].(string)
	return s
}

// Headers returns the default headers, or nil if unset.
func (d Defaults) Headers() map[string]string {
	h, _ := d[DefaultHeaders].(map[string]string)
	return h
}

// Method returns the default HTTP method, or "" if unset.
func (d Defaults) Method() string {
	s, _ := d[DefaultMethod].(string)
	return s
}

func (d Defaults) clone() Defaults {
	if d == nil {
		return nil
	}
	out := make(Defaults, len(d))
	for k, v := range d {
		out[k] = v
	}
	return out
}

// Configuration is an immutable snapshot of HTTP-client configuration:
// a base URL, default request options, and an ordered interceptor chain.
// The zero value is a valid empty configuration.
type Configuration struct {
	baseURL      string
	defaults     Defaults
	interceptors []Interceptor
}

// Options seeds a Configuration with a partial set of fields.
// Zero-value fields fall back to the empty defaults.
type Options struct {
	BaseURL      string
	Defaults     Defaults
	Interceptors []Interceptor
}

// New returns an empty Configuration: no base URL, no defaults, no interceptors.
func New() Configuration {
	return Configuration{}
}

// NewWithOptions returns a Configuration seeded from opts. Missing fields are
// filled with the empty defaults; any input shape is accepted.
func NewWithOptions(opts Options) Configuration {
	return Configuration{
		baseURL:      opts.BaseURL,
		defaults:     opts.Defaults.clone(),
		interceptors: cloneInterceptors(opts.Interceptors),
	}
}

// BaseURL returns the configured base URL, "" if unset.
func (c Configuration) BaseURL() string {
	return c.baseURL
}

// Defaults returns a copy of the default request options.
func (c Configuration) Defaults() Defaults {
	if c.defaults == nil {
		return Defaults{}
	}
	return c.defaults.clone()
}

// Interceptors returns a copy of the interceptor chain in insertion order.
func (c Configuration) Interceptors() []Interceptor {
	out := make([]Interceptor, len(c.interceptors))
	copy(out, c.interceptors)
	return out
}

// WithBaseURL returns a Configuration identical to the receiver except for the
// base URL. The URL is not validated here; a malformed URL surfaces from the
// transport at request time.
func (c Configuration) WithBaseURL(url string) Configuration {
	c.baseURL = url
	return c
}

// WithDefaults returns a Configuration whose defaults are replaced wholesale
// by d. Previous default keys do not survive; callers carry forward what they
// want retained.
func (c Configuration) WithDefaults(d Defaults) Configuration {
	c.defaults = d.clone()
	return c
}

// AddInterceptor returns a Configuration with interceptor appended to the end
// of the chain. Order is preserved and duplicates are permitted; an interceptor
// with no handlers set is a no-op at dispatch time.
func (c Configuration) AddInterceptor(interceptor Interceptor) Configuration {
	// Full slice expression so a later append on either copy cannot alias.
	c.interceptors = append(c.interceptors[:len(c.interceptors):len(c.interceptors)], interceptor)
	return c
}

// UseStandardConfiguration returns a Configuration with the opinionated
// baseline applied: the credentials default set to same-origin (other existing
// default keys are preserved) and the RejectErrorResponses interceptor
// appended.
func (c Configuration) UseStandardConfiguration() Configuration {
	d := c.defaults.clone()
	if d == nil {
		d = Defaults{}
	}
	d[DefaultCredentials] = CredentialsSameOrigin
	c.defaults = d
	return c.RejectErrorResponses()
}

// RejectErrorResponses returns a Configuration with a response interceptor
// appended that fails any response whose status is outside [200, 299] with a
// *ResponseError carrying that response. Successful responses pass through
// unchanged.
func (c Configuration) RejectErrorResponses() Configuration {
	return c.AddInterceptor(Interceptor{Response: rejectErrorResponse})
}

func cloneInterceptors(in []Interceptor) []Interceptor {
	if in == nil {
		return nil
	}
	out := make([]Interceptor, len(in))
	copy(out, in)
	return out
}
