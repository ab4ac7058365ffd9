package mcp

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"tableflip.dev/monthcal/pkg/event"
)

func registerTools(srv *server.MCPServer, svc *Service) {
	registerListEventsTool(srv, svc)
	registerEventsOnDayTool(srv, svc)
	registerGetEventTool(srv, svc)
	registerCreateEventTool(srv, svc)
	registerUpdateEventTool(srv, svc)
	registerDeleteEventTool(srv, svc)
	registerMoveEventTool(srv, svc)
	registerNavigateTool(srv, svc)
	registerSelectDayTool(srv, svc)
	registerSetViewTool(srv, svc)
	registerMonthGridTool(srv, svc)
}

func registerListEventsTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"list_events",
		mcp.WithDescription("List events in start order, optionally limited to a date range."),
		mcp.WithString("from",
			mcp.Description("First day to include, YYYY-MM-DD."),
		),
		mcp.WithString("to",
			mcp.Description("Last day to include, YYYY-MM-DD."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		from, err := optionalDay(request.GetString("from", ""))
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		to, err := optionalDay(request.GetString("to", ""))
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		events, err := svc.ListEvents(ctx, from, to)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(map[string]any{
			"events": events,
			"count":  len(events),
		})
	})
}

func registerEventsOnDayTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"events_on_day",
		mcp.WithDescription("Events starting on a day, with holiday and weather annotations."),
		mcp.WithString("date",
			mcp.Required(),
			mcp.Description("Day to read, YYYY-MM-DD."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		value, err := request.RequireString("date")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		date, err := ParseDay(value)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		day, err := svc.Day(ctx, date)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(day)
	})
}

func registerGetEventTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"get_event",
		mcp.WithDescription("Fetch a single event by identifier."),
		mcp.WithString("id",
			mcp.Required(),
			mcp.Description("Event identifier to fetch."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id, err := request.RequireString("id")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		dto, err := svc.EventByID(ctx, id)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(dto)
	})
}

func registerCreateEventTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"create_event",
		mcp.WithDescription("Create an event. Without start and end it takes 09:00 to 10:00 on the given or selected day."),
		mcp.WithString("title",
			mcp.Required(),
			mcp.Description("Event title."),
		),
		mcp.WithString("description",
			mcp.Description("Longer notes for the event."),
		),
		mcp.WithString("date",
			mcp.Description("Day for the default time slot, YYYY-MM-DD."),
		),
		mcp.WithString("start",
			mcp.Description("RFC3339 start timestamp."),
		),
		mcp.WithString("end",
			mcp.Description("RFC3339 end timestamp."),
		),
		mcp.WithString("color",
			mcp.Description("Hex color."),
			mcp.Enum(event.Palette...),
		),
		mcp.WithBoolean("all_day",
			mcp.Description("Whether the event lasts all day."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var args struct {
			Title       string `json:"title"`
			Description string `json:"description"`
			Date        string `json:"date"`
			Start       string `json:"start"`
			End         string `json:"end"`
			Color       string `json:"color"`
			AllDay      bool   `json:"all_day"`
		}
		if err := request.BindArguments(&args); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err)), nil
		}

		opts := CreateEventOptions{
			Title:       args.Title,
			Description: args.Description,
			Color:       args.Color,
			IsAllDay:    args.AllDay,
		}
		var err error
		if opts.Day, err = optionalDay(args.Date); err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		if opts.Start, err = optionalTime("start", args.Start); err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		if opts.End, err = optionalTime("end", args.End); err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		dto, err := svc.CreateEvent(ctx, opts)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(dto)
	})
}

func registerUpdateEventTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"update_event",
		mcp.WithDescription("Change fields of an event. Omitted fields keep their value."),
		mcp.WithString("id",
			mcp.Required(),
			mcp.Description("Event identifier to update."),
		),
		mcp.WithString("title", mcp.Description("New title.")),
		mcp.WithString("description", mcp.Description("New description.")),
		mcp.WithString("start", mcp.Description("New RFC3339 start timestamp.")),
		mcp.WithString("end", mcp.Description("New RFC3339 end timestamp.")),
		mcp.WithString("color", mcp.Description("New hex color.")),
		mcp.WithBoolean("all_day", mcp.Description("Whether the event lasts all day.")),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var args struct {
			ID          string  `json:"id"`
			Title       *string `json:"title"`
			Description *string `json:"description"`
			Start       string  `json:"start"`
			End         string  `json:"end"`
			Color       *string `json:"color"`
			AllDay      *bool   `json:"all_day"`
		}
		if err := request.BindArguments(&args); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err)), nil
		}
		if strings.TrimSpace(args.ID) == "" {
			return mcp.NewToolResultError("id is required"), nil
		}

		opts := UpdateEventOptions{
			ID:          args.ID,
			Title:       args.Title,
			Description: args.Description,
			Color:       args.Color,
			IsAllDay:    args.AllDay,
		}
		var err error
		if opts.Start, err = optionalTime("start", args.Start); err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		if opts.End, err = optionalTime("end", args.End); err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		dto, err := svc.UpdateEvent(ctx, opts)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(dto)
	})
}

func registerDeleteEventTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"delete_event",
		mcp.WithDescription("Delete an event. Deleting an unknown id succeeds."),
		mcp.WithString("id",
			mcp.Required(),
			mcp.Description("Event identifier to delete."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id, err := request.RequireString("id")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		if err := svc.DeleteEvent(ctx, id); err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(map[string]any{
			"deleted": id,
		})
	})
}

func registerMoveEventTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"move_event",
		mcp.WithDescription("Reschedule an event to another day or by an offset, keeping its time of day and duration."),
		mcp.WithString("id",
			mcp.Required(),
			mcp.Description("Event identifier to move."),
		),
		mcp.WithString("date",
			mcp.Description("Target day, YYYY-MM-DD."),
		),
		mcp.WithString("offset",
			mcp.Description("Relative shift such as 2d, -1w or 90m."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id, err := request.RequireString("id")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		day, err := optionalDay(request.GetString("date", ""))
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		dto, err := svc.MoveEvent(ctx, MoveEventOptions{
			ID:     id,
			Day:    day,
			Offset: strings.TrimSpace(request.GetString("offset", "")),
		})
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(dto)
	})
}

func registerNavigateTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"navigate",
		mcp.WithDescription("Move the calendar to the first day of the previous or next month."),
		mcp.WithString("direction",
			mcp.Required(),
			mcp.Enum("previous", "next"),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		dir, err := request.RequireString("direction")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		dto, err := svc.Navigate(ctx, dir)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(dto)
	})
}

func registerSelectDayTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"select_day",
		mcp.WithDescription("Focus a day."),
		mcp.WithString("date",
			mcp.Required(),
			mcp.Description("Day to select, YYYY-MM-DD."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		value, err := request.RequireString("date")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		date, err := ParseDay(value)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		dto, err := svc.SelectDay(ctx, date)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(dto)
	})
}

func registerSetViewTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"set_view",
		mcp.WithDescription("Switch between month, week and day presentation."),
		mcp.WithString("view",
			mcp.Required(),
			mcp.Enum("month", "week", "day"),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		view, err := request.RequireString("view")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		dto, err := svc.SetView(ctx, view)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(dto)
	})
}

func registerMonthGridTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"month_grid",
		mcp.WithDescription("The six-week grid of a month with events, holidays and weather per day."),
		mcp.WithString("month",
			mcp.Description("Any day in the month to show, YYYY-MM-DD. Defaults to the selected month."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		anchor, err := optionalDay(request.GetString("month", ""))
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		dto, err := svc.MonthGrid(ctx, anchor)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(dto)
	})
}

func optionalDay(value string) (*time.Time, error) {
	if strings.TrimSpace(value) == "" {
		return nil, nil
	}
	t, err := ParseDay(value)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func optionalTime(name, value string) (*time.Time, error) {
	if strings.TrimSpace(value) == "" {
		return nil, nil
	}
	t, err := event.ParseTime(value)
	if err != nil {
		return nil, fmt.Errorf("invalid %s value: %v", name, err)
	}
	return &t, nil
}

func toJSONResult(data any) (*mcp.CallToolResult, error) {
	result, err := mcp.NewToolResultJSON(data)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("marshal error: %v", err)), nil
	}
	return result, nil
}
