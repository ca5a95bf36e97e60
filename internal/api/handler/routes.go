package handler

import (
	"net/http"

	"github.com/vfg2006/launch-planner-api/internal/api/handler/router"
	"github.com/vfg2006/launch-planner-api/internal/usecases/authenticating"
	"github.com/vfg2006/launch-planner-api/internal/usecases/checklisting"
	"github.com/vfg2006/launch-planner-api/internal/usecases/communicating"
	"github.com/vfg2006/launch-planner-api/internal/usecases/contenting"
	"github.com/vfg2006/launch-planner-api/internal/usecases/exporting"
	"github.com/vfg2006/launch-planner-api/internal/usecases/launching"
	"github.com/vfg2006/launch-planner-api/pkg/middleware"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Launches(service launching.LaunchService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/launches",
			Method:      http.MethodPost,
			Handler:     CreateLaunch(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/launches",
			Method:      http.MethodGet,
			Handler:     ListLaunches(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/launches/:id",
			Method:      http.MethodGet,
			Handler:     GetLaunch(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/launches/:id",
			Method:      http.MethodPut,
			Handler:     UpdateLaunch(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/launches/:id",
			Method:      http.MethodDelete,
			Handler:     DeleteLaunch(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
		{
			Path:        "/v1/launches/:id/metrics",
			Method:      http.MethodGet,
			Handler:     GetLaunchMetrics(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

// Calculators expõe as fórmulas de planejamento como endpoints puros
func Calculators() []router.Route {
	return []router.Route{
		{
			Path:        "/v1/calculators/cpa",
			Method:      http.MethodPost,
			Handler:     CalculateCpa(),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/calculators/pacing",
			Method:      http.MethodPost,
			Handler:     CalculatePacing(),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/calculators/batches",
			Method:      http.MethodPost,
			Handler:     CalculateBatches(),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/calculators/projection",
			Method:      http.MethodPost,
			Handler:     CalculateProjection(),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/calculators/cashback",
			Method:      http.MethodPost,
			Handler:     CalculateCashback(),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/calculators/roas",
			Method:      http.MethodPost,
			Handler:     CalculateRoas(),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Communications(service communicating.CommunicationService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/launches/:id/calendar",
			Method:      http.MethodGet,
			Handler:     GetCalendar(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/launches/:id/communications",
			Method:      http.MethodPost,
			Handler:     InitializeCommunications(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/launches/:id/communications",
			Method:      http.MethodGet,
			Handler:     ListCommunications(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/communications/:communication_id",
			Method:      http.MethodPatch,
			Handler:     UpdateCommunication(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Checklist(service checklisting.ChecklistService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/launches/:id/steps",
			Method:      http.MethodPost,
			Handler:     InitializeSteps(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/launches/:id/steps",
			Method:      http.MethodGet,
			Handler:     ListSteps(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/steps/:step_id",
			Method:      http.MethodPatch,
			Handler:     UpdateStep(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/launches/:id/progress",
			Method:      http.MethodGet,
			Handler:     GetProgress(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Contents(service contenting.ContentService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/contents/templates",
			Method:      http.MethodGet,
			Handler:     ListContentTemplates(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/launches/:id/contents",
			Method:      http.MethodGet,
			Handler:     ListContents(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/launches/:id/contents/generate",
			Method:      http.MethodPost,
			Handler:     GenerateContent(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/contents/:content_id",
			Method:      http.MethodPatch,
			Handler:     UpdateContent(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/contents/:content_id",
			Method:      http.MethodDelete,
			Handler:     DeleteContent(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func ClickUp(service exporting.ExportService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/clickup/folders",
			Method:      http.MethodGet,
			Handler:     ListClickUpFolders(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/launches/:id/clickup/preview",
			Method:      http.MethodGet,
			Handler:     PreviewExport(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/launches/:id/clickup/export",
			Method:      http.MethodPost,
			Handler:     ExportLaunch(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Benchmarks() []router.Route {
	return []router.Route{
		{
			Path:        "/v1/benchmarks",
			Method:      http.MethodGet,
			Handler:     ListBenchmarks(),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Authentication(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/login",
			Method:  http.MethodPost,
			Handler: Login(service),
		},
		{
			Path:    "/v1/register",
			Method:  http.MethodPost,
			Handler: CreateUser(service),
		},
		{
			Path:        "/v1/users/:id/generate-password",
			Method:      http.MethodPost,
			Handler:     GeneratePassword(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/users/:id/change-password",
			Method:      http.MethodPost,
			Handler:     ChangePassword(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/me",
			Method:      http.MethodGet,
			Handler:     GetMe(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func User(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/users",
			Method:      http.MethodGet,
			Handler:     ListUsers(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/users",
			Method:      http.MethodPost,
			Handler:     CreateUser(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/users/:id",
			Method:      http.MethodGet,
			Handler:     GetUser(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/users/:id",
			Method:      http.MethodPut,
			Handler:     UpdateUser(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/:type/run",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
	}
}
