// @title           DentalAI Assistant API
// @version         1.0
// @description     Backend for the DentalAI assistant: patient charts, AI-drafted clinical notes, CDT billing code suggestions, appointments and dictation transcription.
// @license.name    MIT
// @license.url     https://opensource.org/licenses/MIT
// @host            localhost:8080
// @BasePath        /api/v1
// @securityDefinitions.apikey BearerAuth
// @in              header
// @name            Authorization

package main

import (
	"dentalai_backend/internal/app"

	_ "dentalai_backend/docs"
)

func main() {
	app.Run()
}
