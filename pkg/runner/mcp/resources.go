package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

func registerResources(srv *server.MCPServer, svc *Service) {
	registerEventsResource(srv, svc)
	registerMonthResource(srv, svc)
	registerDayTemplate(srv, svc)
	registerEventTemplate(srv, svc)
}

func registerEventsResource(srv *server.MCPServer, svc *Service) {
	resource := mcp.NewResource(
		"monthcal://events",
		"Events",
		mcp.WithResourceDescription("Every event in the calendar, in start order."),
		mcp.WithMIMEType("application/json"),
	)

	srv.AddResource(resource, func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		events, err := svc.ListEvents(ctx, nil, nil)
		if err != nil {
			return nil, err
		}

		payload := map[string]any{
			"events": events,
			"count":  len(events),
		}
		return encodeResourceJSON(request.Params.URI, payload)
	})
}

func registerMonthResource(srv *server.MCPServer, svc *Service) {
	resource := mcp.NewResource(
		"monthcal://month",
		"Selected Month",
		mcp.WithResourceDescription("The grid of the selected month with the current view mode."),
		mcp.WithMIMEType("application/json"),
	)

	srv.AddResource(resource, func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		month, err := svc.MonthGrid(ctx, nil)
		if err != nil {
			return nil, err
		}
		return encodeResourceJSON(request.Params.URI, month)
	})
}

func registerDayTemplate(srv *server.MCPServer, svc *Service) {
	template := mcp.NewResourceTemplate(
		"monthcal://days/{date}",
		"Day",
		mcp.WithTemplateDescription("Events and annotations of a day (YYYY-MM-DD)."),
		mcp.WithTemplateMIMEType("application/json"),
	)

	srv.AddResourceTemplate(template, func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		value := templateArg(request.Params.Arguments, "date")
		if value == "" {
			return nil, fmt.Errorf("date is required")
		}
		date, err := ParseDay(value)
		if err != nil {
			return nil, err
		}

		day, err := svc.Day(ctx, date)
		if err != nil {
			return nil, err
		}
		return encodeResourceJSON(request.Params.URI, day)
	})
}

func registerEventTemplate(srv *server.MCPServer, svc *Service) {
	template := mcp.NewResourceTemplate(
		"monthcal://events/{id}",
		"Event Details",
		mcp.WithTemplateDescription("A single event."),
		mcp.WithTemplateMIMEType("application/json"),
	)

	srv.AddResourceTemplate(template, func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		id := templateArg(request.Params.Arguments, "id")
		if id == "" {
			return nil, fmt.Errorf("event id is required")
		}

		dto, err := svc.EventByID(ctx, id)
		if err != nil {
			return nil, err
		}

		payload := map[string]any{
			"event": dto,
		}
		return encodeResourceJSON(request.Params.URI, payload)
	})
}

// templateArg reads a URI template variable, which arrives as a string or
// a single-element list.
func templateArg(args map[string]any, name string) string {
	switch v := args[name].(type) {
	case string:
		return v
	case []string:
		if len(v) > 0 {
			return v[0]
		}
	case []any:
		if len(v) > 0 {
			s, _ := v[0].(string)
			return s
		}
	}
	return ""
}

func encodeResourceJSON(uri string, payload any) ([]mcp.ResourceContents, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}
