package initializers

import (
	log "github.com/sirupsen/logrus"
	"job-tracker-backend/config"
	"job-tracker-backend/db"
)

func InitDBConnection() {
	err := db.Connect(config.Conf.Database.Host, config.Conf.Database.Port, config.Conf.Database.Name,
		config.Conf.Database.User, config.Conf.Database.Password, *config.Conf.Database.DebugMode)
	if err != nil {
		panic(err.Error())
	}
	if *config.Conf.Database.MigrateOnStart {
		if err = MigrateDB(); err != nil {
			panic(err.Error())
		}
	}
}

// MigrateDB applies the schema and seeds reference data. Safe to repeat.
func MigrateDB() error {
	if err := db.AutoMigrateDB(); err != nil {
		return err
	}
	if err := db.InitPreload(); err != nil {
		return err
	}
	log.Info("database is up to date")
	return nil
}
