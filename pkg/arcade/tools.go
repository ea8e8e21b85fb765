package arcade

import (
	"bytes"
	"context"
	"encoding/json"
	"net/url"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// ToolList is the upstream response of the tool listing endpoint.
type ToolList struct {
	Items      []Tool `json:"items"`
	TotalCount int    `json:"total_count"`
	Limit      int    `json:"limit,omitempty"`
	Offset     int    `json:"offset,omitempty"`
}

// Tool is a tool definition as returned by the upstream API.
type Tool struct {
	Name               string        `json:"name"`
	FullyQualifiedName string        `json:"fully_qualified_name,omitempty"`
	Description        string        `json:"description"`
	Toolkit            *Toolkit      `json:"toolkit,omitempty"`
	Requirements       *Requirements `json:"requirements,omitempty"`
	Input              any           `json:"input,omitempty"`
	Output             any           `json:"output,omitempty"`
}

type Toolkit struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Version     string `json:"version,omitempty"`
}

type Requirements struct {
	Authorization *AuthorizationRequirement `json:"authorization,omitempty"`
}

type AuthorizationRequirement struct {
	ProviderID   string `json:"provider_id,omitempty"`
	ProviderType string `json:"provider_type,omitempty"`
	Status       string `json:"status,omitempty"`
}

// ToolkitName returns the nested toolkit name, or "" when absent.
func (t Tool) ToolkitName() string {
	if t.Toolkit == nil {
		return ""
	}
	return t.Toolkit.Name
}

// AuthorizationStatus returns requirements.authorization.status, or "".
func (t Tool) AuthorizationStatus() string {
	if t.Requirements == nil || t.Requirements.Authorization == nil {
		return ""
	}
	return t.Requirements.Authorization.Status
}

// ListToolsParams are the query parameters of ListTools. Zero values are
// not sent.
type ListToolsParams struct {
	Limit   int
	Offset  int
	Toolkit string
}

func (p ListToolsParams) params() Params {
	out := Params{}
	if p.Limit > 0 {
		out["limit"] = p.Limit
	}
	if p.Offset > 0 {
		out["offset"] = p.Offset
	}
	if p.Toolkit != "" {
		out["toolkit"] = p.Toolkit
	}
	return out
}

// ListTools fetches one window of the tool catalog.
func (c *Client) ListTools(ctx context.Context, p ListToolsParams) (*ToolList, error) {
	body, err := c.GetRaw(ctx, c.cfg.Endpoints.Tools, p.params())
	if err != nil {
		return nil, err
	}
	var list ToolList
	if err := decodeValidated(body, toolListSchema, &list); err != nil {
		return nil, err
	}
	if list.Items == nil {
		list.Items = []Tool{}
	}
	return &list, nil
}

// GetTool fetches a single tool by name. A missing tool yields an *APIError
// with status 404.
func (c *Client) GetTool(ctx context.Context, name string) (*Tool, error) {
	path := strings.TrimRight(c.cfg.Endpoints.Tools, "/") + "/" + url.PathEscape(name)
	body, err := c.GetRaw(ctx, path, nil)
	if err != nil {
		return nil, err
	}
	var tool Tool
	if err := decodeValidated(body, toolSchema, &tool); err != nil {
		return nil, err
	}
	return &tool, nil
}

const toolDefinitions = `
"definitions": {
	"tool": {
		"type": "object",
		"required": ["name"],
		"properties": {
			"name": {"type": "string", "minLength": 1},
			"fully_qualified_name": {"type": ["string", "null"]},
			"description": {"type": ["string", "null"]},
			"toolkit": {
				"type": ["object", "null"],
				"properties": {"name": {"type": ["string", "null"]}}
			},
			"requirements": {
				"type": ["object", "null"],
				"properties": {
					"authorization": {
						"type": ["object", "null"],
						"properties": {"status": {"type": ["string", "null"]}}
					}
				}
			}
		}
	}
}`

var (
	toolListSchema = jsonschema.MustCompileString("arcade://tool-list.json", `{
	"type": "object",
	"properties": {
		"items": {"type": ["array", "null"], "items": {"$ref": "#/definitions/tool"}},
		"total_count": {"type": ["integer", "null"], "minimum": 0}
	},`+toolDefinitions+`
}`)

	toolSchema = jsonschema.MustCompileString("arcade://tool.json", `{
	"$ref": "#/definitions/tool",`+toolDefinitions+`
}`)
)

// decodeValidated checks body against schema and then decodes it into out.
func decodeValidated(body json.RawMessage, schema *jsonschema.Schema, out any) error {
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()
	var doc any
	if err := dec.Decode(&doc); err != nil {
		return newParseError("decode response: %v", err)
	}
	if err := schema.Validate(doc); err != nil {
		apiErr := newParseError("unexpected response shape: %v", err)
		apiErr.cause = err
		return apiErr
	}
	if err := json.Unmarshal(body, out); err != nil {
		return newParseError("decode response: %v", err)
	}
	return nil
}
