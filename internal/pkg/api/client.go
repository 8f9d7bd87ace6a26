// Package api talks to the cinema REST backend.
package api

import (
	"bytes"
	"cinema-web/internal/pkg/log"
	"context"
	goerrors "errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/url"
	"strings"

	"github.com/goccy/go-json"
)

const maxErrorBody = 8 << 10

// Doer is satisfied by *http.Client and *circuit.HTTPClient.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

type Fetcher interface {
	// FetchJSON performs the request and decodes a 2xx JSON body into out.
	// out may be nil when the body is not needed.
	FetchJSON(ctx context.Context, req Request, out any) error
	// ResolveURL turns a backend relative path into an absolute URL.
	ResolveURL(path string) string
}

type Request struct {
	Method    string
	Path      string
	Query     url.Values
	Body      any
	Multipart *Multipart
	Token     string
	CSRFToken string
}

type Field struct {
	Name  string
	Value string
}

type File struct {
	Field       string
	Filename    string
	ContentType string
	Content     []byte
}

// Multipart keeps field order, the backend reads showtimes[i] by index.
type Multipart struct {
	Fields []Field
	Files  []File
}

func (m *Multipart) Add(name, value string) {
	m.Fields = append(m.Fields, Field{Name: name, Value: value})
}

func (m *Multipart) AddFile(f File) {
	m.Files = append(m.Files, f)
}

type client struct {
	doer    Doer
	baseURL string
	origin  string
	log     log.Logger
}

func New(baseURL string, doer Doer, log log.Logger) Fetcher {
	baseURL = strings.TrimRight(baseURL, "/")
	origin := baseURL
	if u, err := url.Parse(baseURL); err == nil && u.Host != "" {
		origin = u.Scheme + "://" + u.Host
	}
	return &client{
		doer:    doer,
		baseURL: baseURL,
		origin:  origin,
		log:     log,
	}
}

// ResolveURL implements Fetcher.
func (c *client) ResolveURL(path string) string {
	if path == "" || strings.HasPrefix(path, "http") {
		return path
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return c.origin + path
}

// FetchJSON implements Fetcher.
func (c *client) FetchJSON(ctx context.Context, r Request, out any) error {
	method := r.Method
	if method == "" {
		method = http.MethodGet
	}

	endpoint := c.baseURL + "/" + strings.TrimLeft(r.Path, "/")
	if len(r.Query) > 0 {
		endpoint += "?" + r.Query.Encode()
	}

	body, contentType, err := encodeBody(r)
	if err != nil {
		return fmt.Errorf("encode %s %s: %w", method, r.Path, err)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return fmt.Errorf("build %s %s: %w", method, r.Path, err)
	}
	req.Header.Set("Accept", "application/json")
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if r.Token != "" {
		req.Header.Set("Authorization", "Token "+r.Token)
	}
	if r.CSRFToken != "" {
		req.Header.Set("X-CSRFToken", r.CSRFToken)
	}
	if cid := log.CorrelationIDFromContext(ctx); cid != "" {
		req.Header.Set("X-Correlation-ID", cid)
	}

	res, err := c.doer.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, r.Path, err)
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		snippet, _ := io.ReadAll(io.LimitReader(res.Body, maxErrorBody))
		apiErr := &APIError{
			StatusCode: res.StatusCode,
			Status:     res.Status,
			Method:     method,
			Endpoint:   r.Path,
			Body:       strings.TrimSpace(string(snippet)),
		}
		c.log.Warn(ctx, "backend returned non 2xx", apiErr)
		return apiErr
	}

	if out == nil || res.StatusCode == http.StatusNoContent {
		_, _ = io.Copy(io.Discard, res.Body)
		return nil
	}

	if err := json.NewDecoder(res.Body).Decode(out); err != nil {
		if goerrors.Is(err, io.EOF) {
			return nil
		}
		return fmt.Errorf("decode %s %s: %w", method, r.Path, err)
	}
	return nil
}

func encodeBody(r Request) (io.Reader, string, error) {
	switch {
	case r.Multipart != nil:
		return encodeMultipart(r.Multipart)
	case r.Body != nil:
		raw, err := json.Marshal(r.Body)
		if err != nil {
			return nil, "", err
		}
		return bytes.NewReader(raw), "application/json", nil
	default:
		return nil, "", nil
	}
}

func encodeMultipart(m *Multipart) (io.Reader, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	for _, f := range m.Fields {
		if err := w.WriteField(f.Name, f.Value); err != nil {
			return nil, "", err
		}
	}

	for _, f := range m.Files {
		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q; filename=%q`, f.Field, f.Filename))
		contentType := f.ContentType
		if contentType == "" {
			contentType = "application/octet-stream"
		}
		h.Set("Content-Type", contentType)
		part, err := w.CreatePart(h)
		if err != nil {
			return nil, "", err
		}
		if _, err := part.Write(f.Content); err != nil {
			return nil, "", err
		}
	}

	if err := w.Close(); err != nil {
		return nil, "", err
	}
	return &buf, w.FormDataContentType(), nil
}
