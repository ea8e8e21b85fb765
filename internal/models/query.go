package models

import (
	"net/url"

	"github.com/gameforge/arcade-dashboard/pkg/pagination"
)

// ToolQuery holds the filters and page window of a tool listing.
type ToolQuery struct {
	pagination.Request
	// Category is an exact match on the tool category.
	Category string
	// Toolkit narrows the upstream listing to one toolkit.
	Toolkit string
	// Query is a case-insensitive substring match on name and description.
	Query string
}

// ServerQuery holds the filters and page window of a server listing.
type ServerQuery struct {
	pagination.Request
	Status ServerStatus
}

// ParseToolQuery reads a ToolQuery from request query parameters.
func ParseToolQuery(q url.Values, defaultPerPage int) ToolQuery {
	return ToolQuery{
		Request:  pagination.ParseRequest(q, defaultPerPage),
		Category: q.Get("category"),
		Toolkit:  q.Get("toolkit"),
		Query:    q.Get("q"),
	}
}

// ParseServerQuery reads a ServerQuery from request query parameters.
func ParseServerQuery(q url.Values, defaultPerPage int) ServerQuery {
	return ServerQuery{
		Request: pagination.ParseRequest(q, defaultPerPage),
		Status:  ServerStatus(q.Get("status")),
	}
}
