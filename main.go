package main

import (
	"log"
	"os"

	"wordnest/auth"
	"wordnest/config"
	"wordnest/controllers"
	dbpkg "wordnest/db"
	"wordnest/router"
	"wordnest/tools"
	"wordnest/workers"

	"github.com/gin-gonic/gin"
)

func main() {
	configPath := "config/config.json"
	if len(os.Args) > 1 {
		configPath = os.Args[1]
	}

	var cfg config.Configuration
	if _, err := os.Stat(configPath); err == nil {
		cfg = config.Get(configPath)
	} else {
		log.Printf("config file %s not found, using defaults", configPath)
		cfg = config.GetDefault()
	}

	dbpkg.SetConfigurations(cfg)
	auth.SetConfigurations(cfg)
	controllers.SetConfigurations(cfg)
	controllers.SetMailer(tools.NewMailer(cfg))

	db, err := dbpkg.Connect()
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	workers.StartTokenCleanup(db)

	r := gin.New()
	r.Use(dbpkg.SetDBtoContext(db))
	router.Initialize(r, cfg)

	log.Printf("wordnest listening on :%s", cfg.ApiPort)
	if err := r.Run(":" + cfg.ApiPort); err != nil {
		log.Fatal(err)
	}
}
