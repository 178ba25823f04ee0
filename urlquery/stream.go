package urlquery

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
)

// FeedScanner streams the URL entries of a feed slice without loading the
// entire document. Hour slices of the unfiltered feed can run to tens of
// thousands of URLs.
type FeedScanner struct {
	dec     *json.Decoder
	closer  io.Closer
	inFeed  bool
	done    bool
	lastErr error
}

// Next decodes the next feed entry into dst (map or struct pointer). Returns
// false on end of stream or on error. After false, Err should be checked.
func (s *FeedScanner) Next(dst any) bool {
	if s.done {
		return false
	}
	// Seek to "feed": [
	if !s.inFeed {
		for {
			tok, err := s.dec.Token()
			if err != nil {
				s.lastErr = err
				_ = s.Close()
				return false
			}
			if key, ok := tok.(string); ok && key == "feed" {
				tok, err = s.dec.Token()
				if err != nil {
					s.lastErr = err
					_ = s.Close()
					return false
				}
				if delim, ok := tok.(json.Delim); !ok || delim != '[' {
					s.lastErr = fmt.Errorf("unexpected token after feed: %v", tok)
					_ = s.Close()
					return false
				}
				s.inFeed = true
				break
			}
		}
	}
	// Decode next element or finish array.
	if s.dec.More() {
		if err := s.dec.Decode(dst); err != nil {
			s.lastErr = err
			_ = s.Close()
			return false
		}
		return true
	}
	// Consume closing ']' and finish.
	_, _ = s.dec.Token()
	s.done = true
	_ = s.Close()
	return false
}

// Err returns the last error encountered by the scanner, if any.
func (s *FeedScanner) Err() error { return s.lastErr }

// Close closes the underlying response body if still open.
func (s *FeedScanner) Close() error {
	if s.closer != nil {
		err := s.closer.Close()
		s.closer = nil
		return err
	}
	return nil
}

// FeedStream fetches a feed slice and returns a FeedScanner to iterate its
// URL entries. The caller must Close the scanner when finished.
func (c *Client) FeedStream(ctx context.Context, req FeedRequest, opts ...CallOption) (*FeedScanner, error) {
	co := resolveCallOptions(opts)
	wire, err := c.buildFeed(req, co)
	if err != nil {
		return nil, err
	}
	res, err := c.send(ctx, wire, co)
	if err != nil {
		return nil, err
	}
	dec := json.NewDecoder(res.Body)
	tok, err := dec.Token()
	if err != nil {
		_ = res.Body.Close()
		return nil, &TransportError{URL: c.BaseURL, Err: fmt.Errorf("decode response: %w", err)}
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		_ = res.Body.Close()
		return nil, &TransportError{URL: c.BaseURL, Err: fmt.Errorf("unexpected response start: %v", tok)}
	}
	return &FeedScanner{dec: dec, closer: res.Body}, nil
}
