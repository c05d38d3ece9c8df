package initializers

import (
	"context"

	"job-tracker-backend/config"
	"job-tracker-backend/fiberlog"
	applicationshandler "job-tracker-backend/lib/applications"
	authhandler "job-tracker-backend/lib/auth"
	resetcodeworker "job-tracker-backend/lib/auth/reset-code-worker"
	applicationstatusprovider "job-tracker-backend/lib/dicts/application-status"
	xlsexport "job-tracker-backend/lib/export/xls"
	"job-tracker-backend/lib/profile"
)

var LoggerConfig *fiberlog.Config

func InitAllServices(ctx context.Context) {
	LoggerConfig = InitLogger()
	config.InitConfig()
	InitDBConnection()
	InitS3(ctx)
	InitSmtp()
	applicationstatusprovider.NewHandler()
	applicationshandler.NewHandler()
	profile.NewHandler()
	authhandler.NewHandler()
	xlsexport.NewHandler()
	go initWorkers(ctx)
}

func initWorkers(ctx context.Context) {
	resetcodeworker.StartWorker(ctx)
}
