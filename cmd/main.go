package main

import (
	"github.com/matheen-ahmed/fitness-tracker/config"
	"github.com/matheen-ahmed/fitness-tracker/routes"
)

func main() {
	cfg := config.Load()
	config.InitDB()
	r := routes.SetupRouter()
	r.Run(":" + cfg.Port)
}
