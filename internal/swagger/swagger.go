// Package swagger retrieves and decodes Swagger v2 API descriptions.
package swagger

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sort"
	"strconv"
	"time"

	"github.com/getkin/kin-openapi/openapi2"
	"github.com/getkin/kin-openapi/openapi3"

	"github.com/cberube/swaggerdeck/internal/types"
)

const fetchTimeout = 10 * time.Second

// Fetch retrieves the raw specification document from the given URL.
func Fetch(ctx context.Context, url string) ([]byte, error) {
	client := &http.Client{Timeout: fetchTimeout}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("GET %s: %s", url, resp.Status)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read specification body: %w", err)
	}

	return data, nil
}

// Parse decodes a Swagger v2 JSON document into endpoint definitions.
// Path-item parameters shared across methods are merged with each
// operation's own. Endpoints are sorted by path then method so the list
// is stable across loads.
func Parse(data []byte) ([]types.Endpoint, error) {
	var doc openapi2.T
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode specification: %w", err)
	}

	var endpoints []types.Endpoint
	for path, item := range doc.Paths {
		if item == nil {
			continue
		}

		ops := []struct {
			method string
			op     *openapi2.Operation
		}{
			{http.MethodGet, item.Get},
			{http.MethodPost, item.Post},
			{http.MethodPut, item.Put},
			{http.MethodDelete, item.Delete},
			{http.MethodPatch, item.Patch},
		}

		for _, entry := range ops {
			if entry.op == nil {
				continue
			}

			params := make([]types.Parameter, 0, len(item.Parameters)+len(entry.op.Parameters))
			for _, p := range item.Parameters {
				if p != nil {
					params = append(params, convertParameter(p))
				}
			}
			for _, p := range entry.op.Parameters {
				if p != nil {
					params = append(params, convertParameter(p))
				}
			}

			endpoints = append(endpoints, types.Endpoint{
				Method:     entry.method,
				Path:       path,
				Summary:    entry.op.Summary,
				Tags:       entry.op.Tags,
				Parameters: params,
			})
		}
	}

	sort.Slice(endpoints, func(i, j int) bool {
		if endpoints[i].Path != endpoints[j].Path {
			return endpoints[i].Path < endpoints[j].Path
		}
		return endpoints[i].Method < endpoints[j].Method
	})

	return endpoints, nil
}

func convertParameter(p *openapi2.Parameter) types.Parameter {
	return types.Parameter{
		Name:        p.Name,
		Location:    types.ParseLocation(p.In),
		Required:    p.Required,
		Description: p.Description,
		Schema: &types.ParamSchema{
			Type:    typeName(p.Type),
			Format:  p.Format,
			Default: defaultString(p.Default),
		},
	}
}

func typeName(t *openapi3.Types) string {
	if t == nil || len(t.Slice()) == 0 {
		return ""
	}
	return t.Slice()[0]
}

// defaultString renders a spec default value the way a user would type it.
func defaultString(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case bool:
		return strconv.FormatBool(val)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case json.Number:
		return val.String()
	default:
		data, err := json.Marshal(val)
		if err != nil {
			return ""
		}
		return string(data)
	}
}

// Group buckets endpoints by tag, sorted by group name. An endpoint carrying
// several tags appears under each of them; untagged endpoints land in "Other".
func Group(endpoints []types.Endpoint) []types.EndpointGroup {
	buckets := make(map[string][]types.Endpoint)
	for _, ep := range endpoints {
		if len(ep.Tags) == 0 {
			buckets["Other"] = append(buckets["Other"], ep)
			continue
		}
		for _, tag := range ep.Tags {
			buckets[tag] = append(buckets[tag], ep)
		}
	}

	names := make([]string, 0, len(buckets))
	for name := range buckets {
		names = append(names, name)
	}
	sort.Strings(names)

	groups := make([]types.EndpointGroup, 0, len(names))
	for _, name := range names {
		groups = append(groups, types.EndpointGroup{Name: name, Endpoints: buckets[name]})
	}
	return groups
}
