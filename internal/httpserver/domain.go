package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	interactionHTTP "chat-assistant/internal/interaction/delivery/http"
	interactionRepo "chat-assistant/internal/interaction/repository/postgre"
	interactionUC "chat-assistant/internal/interaction/usecase"
	"chat-assistant/internal/middleware"
	"chat-assistant/internal/notification"
	notificationHTTP "chat-assistant/internal/notification/delivery/http"
	notificationRepo "chat-assistant/internal/notification/repository/postgre"
	notificationUC "chat-assistant/internal/notification/usecase"
	"chat-assistant/internal/quota"
	quotaHTTP "chat-assistant/internal/quota/delivery/http"
	quotaRepo "chat-assistant/internal/quota/repository/postgre"
	quotaUC "chat-assistant/internal/quota/usecase"
	"chat-assistant/internal/workspace"
	workspaceHTTP "chat-assistant/internal/workspace/delivery/http"
	workspaceRepo "chat-assistant/internal/workspace/repository/postgre"
	workspaceUC "chat-assistant/internal/workspace/usecase"
)

// Each setup follows the same steps:
//  1. Repository:   repo := domainRepo.New(srv.db, srv.l)
//  2. UseCase:      uc := domainUC.New(srv.l, repo, ...)
//  3. HTTP Handler: h := domainHTTP.New(srv.l, uc)
//  4. Routes:       domainHTTP.RegisterRoutes(api.Group("/resource"), h, mw)

func (srv HTTPServer) setupQuotaDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) quota.UseCase {
	repo := quotaRepo.New(srv.db, srv.l, srv.retry)
	uc := quotaUC.New(srv.l, repo, srv.dateMath, srv.dailyLimit)
	quotaHTTP.RegisterRoutes(api.Group("/quota"), quotaHTTP.New(srv.l, uc), mw)

	srv.l.Infof(ctx, "Quota domain registered (daily limit %d)", srv.dailyLimit)
	return uc
}

func (srv HTTPServer) setupWorkspaceDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) workspace.UseCase {
	repo := workspaceRepo.New(srv.db, srv.l)
	uc := workspaceUC.New(srv.l, repo, srv.dateMath, srv.calendar, srv.calendarID)
	workspaceHTTP.RegisterRoutes(api.Group("/workspace"), workspaceHTTP.New(srv.l, uc), mw)

	srv.l.Infof(ctx, "Workspace domain registered (calendar mirroring: %t)", srv.calendar != nil)
	return uc
}

func (srv HTTPServer) setupNotificationDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) notification.UseCase {
	repo := notificationRepo.New(srv.db, srv.l)
	uc := notificationUC.New(srv.l, repo, srv.notificationCache)
	notificationHTTP.RegisterRoutes(api.Group("/notifications"), notificationHTTP.New(srv.l, uc), mw)

	srv.l.Infof(ctx, "Notification domain registered")
	return uc
}

func (srv HTTPServer) setupInteractionDomain(
	ctx context.Context,
	api *gin.RouterGroup,
	mw middleware.Middleware,
	quotaUC quota.UseCase,
	workspaceUC workspace.UseCase,
	notificationUC notification.UseCase,
) {
	repo := interactionRepo.New(srv.db, srv.l, srv.retry)
	uc := interactionUC.New(srv.l, repo, srv.db, quotaUC, srv.interpreter, workspaceUC, notificationUC, srv.metrics,
		interactionUC.Config{
			InterpretTimeout: srv.interpretTimeout,
			AutoApprove:      srv.autoApprove,
		})
	interactionHTTP.RegisterRoutes(api.Group("/interactions"), interactionHTTP.New(srv.l, uc), mw)

	srv.l.Infof(ctx, "Interaction domain registered (auto-approve: %t)", srv.autoApprove.Enabled)
}
