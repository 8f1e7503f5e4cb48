package main

import (
	"log"

	"majordhom-backend/db"
	_ "majordhom-backend/docs"
	"majordhom-backend/routes"

	"github.com/gin-gonic/gin"
)

// @title API Majordhom Contact
// @version 1.0
// @description API de prise de contact de l'agence Majordhom (demandes de visite, de rappel et de photos supplémentaires)
// @host localhost:8080
// @BasePath /
func main() {

	gin.SetMode(gin.ReleaseMode)

	// Initialiser la base de données
	db.InitDB()

	r := routes.SetupRouter()

	if err := r.Run(":8080"); err != nil {
		log.Fatal("Erreur lors du démarrage du serveur:", err)
	}
}
