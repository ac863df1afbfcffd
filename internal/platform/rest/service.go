package rest

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"regexp"
	"strings"
)

// Verb is the HTTP method of an operation.
type Verb string

const (
	GET    Verb = "GET"
	POST   Verb = "POST"
	PUT    Verb = "PUT"
	PATCH  Verb = "PATCH"
	DELETE Verb = "DELETE"
)

// Operation is one row of a service's configuration table.
type Operation struct {
	Verb Verb
	// Path is a template whose :name placeholders are substituted from
	// the payload. Empty means the bare resource endpoint.
	Path string
	// FullPath roots the template at the API base instead of under the
	// resource endpoint.
	FullPath bool
}

// Definition maps operation names to their verb/path rows.
type Definition map[string]Operation

// Service turns a resource endpoint plus a Definition into callable
// REST operations, instead of one bespoke method per endpoint.
type Service struct {
	client   *Client
	endpoint string
	ops      Definition
}

// NewService validates the configuration table and builds a service.
// A malformed table is programmer error and panics.
func NewService(client *Client, endpoint string, ops Definition) *Service {
	if client == nil {
		panic("rest: service requires a client")
	}
	if strings.Trim(endpoint, "/") == "" {
		panic("rest: service requires a resource endpoint")
	}
	for name, op := range ops {
		if name == "" {
			panic("rest: operation name must not be empty")
		}
		switch op.Verb {
		case GET, POST, PUT, PATCH, DELETE:
		default:
			panic(fmt.Sprintf("rest: operation %q has unsupported verb %q", name, op.Verb))
		}
	}
	return &Service{
		client:   client,
		endpoint: "/" + strings.Trim(endpoint, "/"),
		ops:      ops,
	}
}

// Call runs a named operation. The payload may be nil, a bare scalar
// (treated as the :id of the resource), or anything that marshals to a
// JSON object. Query parameters are appended when supplied. The raw
// response payload is returned for the assembler layer to interpret.
func (s *Service) Call(ctx context.Context, name string, payload any, query url.Values) (json.RawMessage, error) {
	op, ok := s.ops[name]
	if !ok {
		return nil, fmt.Errorf("rest: service %s has no operation %q", s.endpoint, name)
	}

	fields, scalar, err := payloadForm(payload)
	if err != nil {
		return nil, fmt.Errorf("rest: operation %q payload: %w", name, err)
	}

	path := op.Path
	var body []byte
	switch {
	case scalar != "":
		path = strings.ReplaceAll(path, ":id", scalar)
	case fields != nil:
		path = resolveTemplate(path, fields)
		if op.Verb != POST {
			fields = stripID(fields)
		}
		body, err = json.Marshal(fields)
		if err != nil {
			return nil, fmt.Errorf("rest: operation %q body: %w", name, err)
		}
	}

	target := s.endpoint
	if op.FullPath {
		target = "/" + strings.TrimLeft(path, "/")
	} else if path != "" {
		target = s.endpoint + "/" + strings.TrimLeft(path, "/")
	}

	switch op.Verb {
	case GET:
		return s.client.Get(ctx, target, query)
	case POST:
		return s.client.Post(ctx, target, body)
	case PUT:
		return s.client.Put(ctx, target, body)
	case PATCH:
		return s.client.Patch(ctx, target, body)
	default:
		return s.client.Delete(ctx, target)
	}
}

var placeholderPattern = regexp.MustCompile(`:([a-zA-Z]+)`)

// resolveTemplate substitutes :name placeholders from the payload's
// JSON object form. Value objects already marshal to scalars, so no
// unwrapping is needed here. Placeholders without a usable value pass
// through literally; the backend answers 404 and surfaces the caller
// error.
func resolveTemplate(template string, fields map[string]json.RawMessage) string {
	return placeholderPattern.ReplaceAllStringFunc(template, func(match string) string {
		key := match[1:]
		raw, ok := fields[key]
		if !ok {
			return match
		}
		value := scalarText(raw)
		if value == "" {
			return match
		}
		return value
	})
}

// stripID drops the id field from an outgoing body: for PUT, PATCH and
// DELETE the identifier travels in the path, not the body.
func stripID(fields map[string]json.RawMessage) map[string]json.RawMessage {
	stripped := make(map[string]json.RawMessage, len(fields))
	for key, value := range fields {
		if key == "id" {
			continue
		}
		stripped[key] = value
	}
	return stripped
}

// payloadForm normalizes a payload into either its JSON object fields
// or, for bare scalars, the text substituted into the :id placeholder.
func payloadForm(payload any) (map[string]json.RawMessage, string, error) {
	if payload == nil {
		return nil, "", nil
	}
	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, "", err
	}
	trimmed := strings.TrimSpace(string(raw))
	switch {
	case trimmed == "null" || trimmed == "":
		return nil, "", nil
	case trimmed[0] == '{':
		var fields map[string]json.RawMessage
		if err := json.Unmarshal(raw, &fields); err != nil {
			return nil, "", err
		}
		return fields, "", nil
	case trimmed[0] == '[':
		return nil, "", fmt.Errorf("array payloads are not supported")
	default:
		scalar := scalarText(json.RawMessage(trimmed))
		if scalar == "" {
			return nil, "", fmt.Errorf("payload must be an object or a scalar identifier")
		}
		return nil, scalar, nil
	}
}

// scalarText renders a raw JSON scalar as path-segment text. Objects,
// arrays and null yield "".
func scalarText(raw json.RawMessage) string {
	text := strings.TrimSpace(string(raw))
	if text == "" || text == "null" || text[0] == '{' || text[0] == '[' {
		return ""
	}
	if text[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return ""
		}
		return s
	}
	return text
}
