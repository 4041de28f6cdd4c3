package main

import (
	"mentorhub/core/logger"
	"mentorhub/core/server"
)

// @title MentorHub API
// @version 1.0
// @description API backend for mentor-mentee appointment scheduling
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.email support@mentorhub.local

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:7070
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT Bearer token. Example: "Bearer {token}"

func main() {
	if err := server.Run(); err != nil {
		logger.Error("Main:Run:Error:", err)
	}
}
