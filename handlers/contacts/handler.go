package contacts

import (
	"net/http"

	"majordhom-backend/db"
	"majordhom-backend/models"
	"majordhom-backend/utils"
	mailsmodels "majordhom-backend/utils/mails-models"
	"majordhom-backend/validation"

	"github.com/gin-gonic/gin"
)

// @Summary Create a new contact request
// @Description Submit a contact request (visit, callback or more photos). The payload is validated field by field; errors are returned in French.
// @Tags contacts
// @Accept json
// @Produce json
// @Param contact body models.ContactCreate true "Contact request"
// @Success 201 {object} models.Contact
// @Failure 400 {object} map[string]interface{} "error: message, champs: field errors"
// @Failure 500 {object} utils.Response
// @Router /contact [post]
func CreateContact(c *gin.Context) {
	var contactInput models.ContactCreate

	if err := c.ShouldBindJSON(&contactInput); err != nil {
		utils.SendError(c, http.StatusBadRequest, "Requête invalide: "+err.Error())
		return
	}

	payload := validation.Payload{
		TypeDemande:   contactInput.TypeDemande,
		Genre:         contactInput.Genre,
		Pronom:        contactInput.Pronom,
		Nom:           contactInput.Nom,
		Prenom:        contactInput.Prenom,
		Email:         contactInput.Email,
		Telephone:     contactInput.Telephone,
		Disponibilite: contactInput.Disponibilite,
		HeureDebut:    contactInput.HeureDebut,
		HeureFin:      contactInput.HeureFin,
		Message:       contactInput.Message,
	}

	// L'invariant de disponibilité est ré-appliqué avant validation: des
	// champs de visite envoyés avec un autre type de demande sont annulés,
	// pas rejetés
	payload = validation.NormaliserPayload(payload)

	if erreurs := validation.ValiderPayload(payload); len(erreurs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":  "La demande contient des champs invalides",
			"champs": erreurs,
		})
		return
	}

	contact := models.Contact{
		TypeDemande:   payload.TypeDemande,
		Genre:         payload.Genre,
		Pronom:        payload.Pronom,
		Nom:           payload.Nom,
		Prenom:        payload.Prenom,
		Email:         payload.Email,
		Telephone:     payload.Telephone,
		Disponibilite: payload.Disponibilite,
		HeureDebut:    payload.HeureDebut,
		HeureFin:      payload.HeureFin,
		Message:       payload.Message,
	}

	result := db.DB.Create(&contact)
	if result.Error != nil {
		utils.LogError(result.Error, "Erreur lors de l'enregistrement de la demande de contact")
		utils.SendError(c, http.StatusInternalServerError, "Erreur lors de l'enregistrement de la demande")
		return
	}

	utils.LogSuccess("Demande de contact enregistrée: " + contact.ID)

	go mailsmodels.ContactConfirmation(mailsmodels.ContactEmailData{
		TypeDemande:   contact.TypeDemande,
		Prenom:        contact.Prenom,
		Nom:           contact.Nom,
		Email:         contact.Email,
		Disponibilite: contact.Disponibilite,
		HeureDebut:    contact.HeureDebut,
		HeureFin:      contact.HeureFin,
		Message:       contact.Message,
	})

	c.JSON(http.StatusCreated, contact)
}

// @Summary Get all contact requests
// @Description Retrieve every stored contact request, newest first
// @Tags contacts
// @Produce json
// @Success 200 {array} models.Contact
// @Failure 500 {object} map[string]string "error: Error message"
// @Router /contact [get]
func GetAllContacts(c *gin.Context) {
	var contacts []models.Contact

	result := db.DB.Order("created_at DESC").Find(&contacts)
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": result.Error.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, contacts)
}
