package main

import (
	"github.com/wagnermocelin/DentalApp/CronJobs"
	"github.com/wagnermocelin/DentalApp/Models"
	"github.com/wagnermocelin/DentalApp/Routes"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	Models.ConnectDataBase()
	router := gin.Default()
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"https://dentalapp.ddns.net", "http://localhost:3000"}, // Replace with your frontend URL
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		AllowCredentials: true,
	},
	))
	Routes.ConfigRoutes(router)
	overdueService := CronJobs.NewOverdueMarker(Models.DB)
	scheduler := overdueService.StartOverdueCron()
	_ = scheduler
	router.Run(":3005")
}
