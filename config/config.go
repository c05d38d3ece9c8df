package config

import (
	"github.com/gotify/configor"
	"github.com/joho/godotenv"
)

var Conf *Configuration

type Configuration struct {
	App struct {
		ListenAddr  string `default:"" env:"APP_HOST"`
		Port        int    `default:"8080"  env:"APP_PORT"`
		BodyLimitMB int    `default:"20" env:"APP_BODY_LIMIT_MB"`
	}
	Database struct {
		Host           string `default:"127.0.0.1" env:"DB_HOST"`
		Port           string `default:"5432" env:"DB_PORT"`
		Name           string `default:"job-tracker" env:"DB_NAME"`
		User           string `default:"postgres" env:"DB_USER"`
		Password       string `default:"postgres" env:"DB_PASSWORD"`
		MigrateOnStart *bool  `default:"false" env:"DB_MIGRATE_ON_START"`
		DebugMode      *bool  `default:"false" env:"DB_DEBUG_MODE"`
	}
	Auth struct {
		JWTSecret             string `default:"change-me" env:"JWT_SECRET"`
		JWTExpireInSec        int64  `default:"3600" env:"JWT_EXPIRE_IN_SEC"`
		JWTRefreshExpireInSec int64  `default:"604800" env:"JWT_REFRESH_EXPIRE_IN_SEC"`
	}
	S3 struct {
		Endpoint          string `default:"" env:"S3_ENDPOINT"`
		AccessKeyID       string `default:"" env:"S3_ACCESS_KEY_ID"`
		SecretAccessKey   string `default:"" env:"S3_SECRET_ACCESS_KEY"`
		UseSSL            *bool  `default:"false" env:"S3_USE_SSL"`
		Region            string `default:"us-east-1" env:"S3_REGION"`
		UserBucket        string `default:"job-tracker-users" env:"S3_USER_BUCKET"`
		ApplicationBucket string `default:"job-tracker-applications" env:"S3_APPLICATION_BUCKET"`
	}
	Smtp struct {
		User               string `default:"" env:"SMTP_USER"`
		Password           string `default:"" env:"SMTP_PASSWORD"`
		Host               string `default:"" env:"SMTP_HOST"`
		Port               string `default:"" env:"SMTP_PORT"`
		TLSEnabled         *bool  `default:"true" env:"SMTP_TLS_ENABLED"`
		EmailFrom          string `default:"no-reply@job-tracker.local" env:"SMTP_EMAIL_FROM"`
		DomainForResetLink string `default:"http://localhost:8080" env:"DOMAIN_FOR_RESET_LINK"`
	}
}

func configFiles() []string {
	return []string{"config.yml"}
}

func InitConfig() {
	if Conf != nil {
		return
	}
	// .env is optional, real environment wins
	_ = godotenv.Load()
	conf := new(Configuration)
	err := configor.New(&configor.Config{}).Load(conf, configFiles()...)
	if err != nil {
		panic(err)
	}
	Conf = conf
}
