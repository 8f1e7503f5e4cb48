package contacts

import (
	"bytes"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"majordhom-backend/testutils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestMain(m *testing.M) {
	testutils.InitTestMain()

	log.SetOutput(io.Discard)

	exitCode := m.Run()

	log.SetOutput(os.Stdout)

	os.Exit(exitCode)
}

func postContact(r http.Handler, contactData map[string]interface{}) *httptest.ResponseRecorder {
	jsonData, _ := json.Marshal(contactData)

	req, _ := http.NewRequest(http.MethodPost, "/contact", bytes.NewBuffer(jsonData))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)
	return resp
}

func demandeRappel() map[string]interface{} {
	return map[string]interface{}{
		"typedemande":   "rappel",
		"genre":         "M.",
		"pronom":        "",
		"nom":           "Dupont",
		"prenom":        "Jean",
		"email":         "jean@example.com",
		"telephone":     "+33612345678",
		"disponibilite": nil,
		"heureDebut":    nil,
		"heureFin":      nil,
		"message":       "Merci de me rappeler svp",
	}
}

func champsEnErreur(t *testing.T, resp *httptest.ResponseRecorder) map[string]string {
	t.Helper()

	var respBody struct {
		Error  string `json:"error"`
		Champs []struct {
			Champ   string `json:"champ"`
			Message string `json:"message"`
		} `json:"champs"`
	}
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &respBody))
	require.NotEmpty(t, respBody.Error)

	champs := map[string]string{}
	for _, erreur := range respBody.Champs {
		champs[erreur.Champ] = erreur.Message
	}
	return champs
}

func TestCreateContact_Rappel(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "contacts" (.+) RETURNING`).
		WillReturnRows(mock.NewRows([]string{"id", "created_at"}).
			AddRow("123e4567-e89b-12d3-a456-426614174000", time.Now()))
	mock.ExpectCommit()

	r := testutils.SetupTestRouter()
	r.POST("/contact", CreateContact)

	resp := postContact(r, demandeRappel())

	assert.Equal(t, http.StatusCreated, resp.Code)

	var respBody map[string]interface{}
	json.Unmarshal(resp.Body.Bytes(), &respBody)
	assert.Equal(t, "123e4567-e89b-12d3-a456-426614174000", respBody["id"])
	assert.Equal(t, "rappel", respBody["typedemande"])
	assert.Equal(t, "M.", respBody["genre"])
	assert.Equal(t, "+33612345678", respBody["telephone"])
	assert.Nil(t, respBody["disponibilite"])
	assert.Nil(t, respBody["heureDebut"])
	assert.Nil(t, respBody["heureFin"])
	assert.NotNil(t, respBody["createdAt"])
}

func TestCreateContact_Visite(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "contacts" (.+) RETURNING`).
		WillReturnRows(mock.NewRows([]string{"id", "created_at"}).
			AddRow("223e4567-e89b-12d3-a456-426614174000", time.Now()))
	mock.ExpectCommit()

	r := testutils.SetupTestRouter()
	r.POST("/contact", CreateContact)

	contactData := demandeRappel()
	contactData["typedemande"] = "visite"
	contactData["disponibilite"] = "2024-06-15"
	contactData["heureDebut"] = "09:00"
	contactData["heureFin"] = "14:30"
	contactData["message"] = "Je souhaite visiter ce bien"

	resp := postContact(r, contactData)

	assert.Equal(t, http.StatusCreated, resp.Code)

	var respBody map[string]interface{}
	json.Unmarshal(resp.Body.Bytes(), &respBody)
	assert.Equal(t, "visite", respBody["typedemande"])
	assert.Equal(t, "2024-06-15", respBody["disponibilite"])
	assert.Equal(t, "09:00", respBody["heureDebut"])
	assert.Equal(t, "14:30", respBody["heureFin"])
}

func TestCreateContact_DisponibiliteAnnuleeHorsVisite(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "contacts" (.+) RETURNING`).
		WillReturnRows(mock.NewRows([]string{"id", "created_at"}).
			AddRow("323e4567-e89b-12d3-a456-426614174000", time.Now()))
	mock.ExpectCommit()

	r := testutils.SetupTestRouter()
	r.POST("/contact", CreateContact)

	// Une demande de photos avec des restes de disponibilité: les champs
	// sont annulés à la normalisation, pas rejetés
	contactData := demandeRappel()
	contactData["typedemande"] = "photos"
	contactData["disponibilite"] = "2024-06-15"
	contactData["heureDebut"] = "09:00"
	contactData["heureFin"] = "14:30"

	resp := postContact(r, contactData)

	assert.Equal(t, http.StatusCreated, resp.Code)

	var respBody map[string]interface{}
	json.Unmarshal(resp.Body.Bytes(), &respBody)
	assert.Nil(t, respBody["disponibilite"])
	assert.Nil(t, respBody["heureDebut"])
	assert.Nil(t, respBody["heureFin"])
}

func TestCreateContact_TelephoneInvalide(t *testing.T) {
	r := testutils.SetupTestRouter()
	r.POST("/contact", CreateContact)

	contactData := demandeRappel()
	contactData["telephone"] = "+3312345"

	resp := postContact(r, contactData)

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	champs := champsEnErreur(t, resp)
	assert.Equal(t, "Le numéro doit contenir 9 chiffres", champs["telephone"])
}

func TestCreateContact_TelephoneNonInternational(t *testing.T) {
	r := testutils.SetupTestRouter()
	r.POST("/contact", CreateContact)

	contactData := demandeRappel()
	contactData["telephone"] = "0612345678"

	resp := postContact(r, contactData)

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	champs := champsEnErreur(t, resp)
	assert.Equal(t, "Le numéro de téléphone doit être au format international (ex: +33612345678)", champs["telephone"])
}

func TestCreateContact_EmailInvalide(t *testing.T) {
	r := testutils.SetupTestRouter()
	r.POST("/contact", CreateContact)

	contactData := demandeRappel()
	contactData["email"] = "invalid-email"

	resp := postContact(r, contactData)

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	champs := champsEnErreur(t, resp)
	assert.Equal(t, "Format d'email invalide", champs["email"])
}

func TestCreateContact_MessageTropCourt(t *testing.T) {
	r := testutils.SetupTestRouter()
	r.POST("/contact", CreateContact)

	contactData := demandeRappel()
	contactData["message"] = "Bonjour"

	resp := postContact(r, contactData)

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	champs := champsEnErreur(t, resp)
	assert.Equal(t, "Le message doit contenir au moins 10 caractères", champs["message"])
}

func TestCreateContact_ChampsRequisManquants(t *testing.T) {
	r := testutils.SetupTestRouter()
	r.POST("/contact", CreateContact)

	resp := postContact(r, map[string]interface{}{})

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	champs := champsEnErreur(t, resp)
	assert.Equal(t, "Le type de demande est requis", champs["typedemande"])
	assert.Equal(t, "Le genre est requis", champs["genre"])
	assert.Equal(t, "Le nom est requis", champs["nom"])
	assert.Equal(t, "Le prénom est requis", champs["prenom"])
	assert.Equal(t, "L'email est requis", champs["email"])
	assert.Equal(t, "Le numéro de téléphone est requis", champs["telephone"])
	assert.Equal(t, "Le message doit contenir au moins 10 caractères", champs["message"])
}

func TestCreateContact_CorpsInvalide(t *testing.T) {
	r := testutils.SetupTestRouter()
	r.POST("/contact", CreateContact)

	req, _ := http.NewRequest(http.MethodPost, "/contact", bytes.NewBufferString("{pas du json"))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestCreateContact_DatabaseError(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "contacts" (.+) RETURNING`).
		WillReturnError(gorm.ErrInvalidDB)
	mock.ExpectRollback()

	r := testutils.SetupTestRouter()
	r.POST("/contact", CreateContact)

	resp := postContact(r, demandeRappel())

	assert.Equal(t, http.StatusInternalServerError, resp.Code)

	var respBody map[string]interface{}
	json.Unmarshal(resp.Body.Bytes(), &respBody)
	assert.Equal(t, "Erreur lors de l'enregistrement de la demande", respBody["error"])
}

func TestGetAllContacts_Success(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	now := time.Now()
	colonnes := []string{"id", "typedemande", "genre", "pronom", "nom", "prenom", "email", "telephone", "disponibilite", "heure_debut", "heure_fin", "message", "created_at"}
	mock.ExpectQuery(`SELECT \* FROM "contacts" ORDER BY created_at DESC`).
		WillReturnRows(
			mock.NewRows(colonnes).
				AddRow("123e4567-e89b-12d3-a456-426614174000", "visite", "M.", "", "Dupont", "Jean", "jean@example.com", "+33612345678", "2024-06-15", "09:00", "14:30", "Je souhaite visiter ce bien", now).
				AddRow("223e4567-e89b-12d3-a456-426614174000", "rappel", "Mme", "", "Martin", "Marie", "marie@example.com", "+32470123456", nil, nil, nil, "Merci de me rappeler svp", now),
		)

	r := testutils.SetupTestRouter()
	r.GET("/contact", GetAllContacts)

	req, _ := http.NewRequest(http.MethodGet, "/contact", nil)
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)

	var contacts []map[string]interface{}
	err := json.Unmarshal(resp.Body.Bytes(), &contacts)
	assert.NoError(t, err)

	assert.Equal(t, 2, len(contacts), "there should be 2 contacts in the response")

	if len(contacts) >= 2 {
		assert.Equal(t, "visite", contacts[0]["typedemande"])
		assert.Equal(t, "2024-06-15", contacts[0]["disponibilite"])
		assert.Equal(t, "+33612345678", contacts[0]["telephone"])

		assert.Equal(t, "rappel", contacts[1]["typedemande"])
		assert.Nil(t, contacts[1]["disponibilite"])
		assert.Equal(t, "+32470123456", contacts[1]["telephone"])
	}
}

func TestGetAllContacts_EmptyList(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT \* FROM "contacts" ORDER BY created_at DESC`).
		WillReturnRows(mock.NewRows([]string{"id", "typedemande", "genre", "pronom", "nom", "prenom", "email", "telephone", "disponibilite", "heure_debut", "heure_fin", "message", "created_at"}))

	r := testutils.SetupTestRouter()
	r.GET("/contact", GetAllContacts)

	req, _ := http.NewRequest(http.MethodGet, "/contact", nil)
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)

	var contacts []map[string]interface{}
	err := json.Unmarshal(resp.Body.Bytes(), &contacts)
	assert.NoError(t, err)

	assert.Equal(t, 0, len(contacts), "the contacts list should be empty")
}

func TestGetAllContacts_DatabaseError(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT \* FROM "contacts" ORDER BY created_at DESC`).
		WillReturnError(gorm.ErrInvalidDB)

	r := testutils.SetupTestRouter()
	r.GET("/contact", GetAllContacts)

	req, _ := http.NewRequest(http.MethodGet, "/contact", nil)
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusInternalServerError, resp.Code)

	var respBody map[string]string
	err := json.Unmarshal(resp.Body.Bytes(), &respBody)
	assert.NoError(t, err)

	errorMsg, exists := respBody["error"]
	assert.True(t, exists, "the key 'error' should exist in the response")
	assert.Contains(t, errorMsg, "invalid db")
}
