package urlquery

// envelope carries the fields shared by every request: the remote procedure
// name plus the cross-cutting gzip and key directives. It is embedded in each
// procedure's wire struct and applied after all procedure-specific fields.
type envelope struct {
	Method string `json:"method"`
	Gzip   bool   `json:"gzip,omitempty"`
	Key    string `json:"key,omitempty"`
}

func (e envelope) wireMethod() string { return e.Method }

// wireRequest is satisfied by every wire struct through its embedded envelope.
type wireRequest interface {
	wireMethod() string
}

// envelope resolves the cross-cutting fields for one call. Compression is
// enabled when either the client default or the call override requests it.
// A call-level key takes precedence over the client key; an empty key is
// omitted from the wire entirely.
func (c *Client) envelope(method string, co *callOptions) envelope {
	env := envelope{Method: method}
	env.Gzip = c.Gzip || (co.gzip != nil && *co.gzip)
	if co.apikey != nil {
		env.Key = *co.apikey
	} else {
		env.Key = c.APIKey
	}
	return env
}
