package routes

import (
	"majordhom-backend/handlers/contacts"

	"github.com/gin-gonic/gin"
)

func ContactsRoutes(r *gin.Engine) {
	r.POST("/contact", contacts.CreateContact)
	r.GET("/contact", contacts.GetAllContacts)
}
