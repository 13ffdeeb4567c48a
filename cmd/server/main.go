package main

import (
	"os"

	"genie-relay/backend/internal/app"
)

// @title           Genie Relay API
// @version         1.0.0
// @description     Relays chat messages to a Databricks Genie space and returns normalized answers.
// @BasePath        /api
func main() {
	os.Exit(app.Run())
}
