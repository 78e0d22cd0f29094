package httpserver

import (
	"context"

	boardHTTP "tasklist-widget/internal/board/delivery/http"
	"tasklist-widget/internal/middleware"

	"github.com/gin-gonic/gin"
)

// setupBoardDomain registers the board routes.
//
// Pattern to follow when adding a new domain:
//  1. Build the UseCase in cmd/api and pass it through Config.
//  2. Create HTTP Handler: h := mydomainHTTP.New(srv.l, uc)
//  3. Register Routes:     mydomainHTTP.RegisterRoutes(rg.Group(...), h, mw)
func (srv HTTPServer) setupBoardDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) error {
	h := boardHTTP.New(srv.l, srv.boardUC)

	// Routes: /api/v1/boards/...
	boardHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Board domain registered")
	return nil
}
