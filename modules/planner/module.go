package planner

import (
	"meetup-planner/core/middleware"

	"github.com/labstack/echo/v4"
	"github.com/mark3labs/mcp-go/server"
)

// Init mounts the MCP endpoint at /mcp.
func Init(e *echo.Echo, mw *middleware.Middleware, d Deps) *server.StreamableHTTPServer {
	httpServer := server.NewStreamableHTTPServer(NewServer(d),
		server.WithHTTPContextFunc(OwnerContext(mw)),
	)

	h := echo.WrapHandler(httpServer)
	e.Any("/mcp", h)
	return httpServer
}
