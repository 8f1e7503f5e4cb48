package models

import (
	"time"
)

// Contact représente une demande de contact enregistrée en base. Les
// demandes sont immuables: aucune route de mise à jour ni de suppression.
// @Description Demande de contact persistée
type Contact struct {
	ID            string    `json:"id" gorm:"primaryKey;default:gen_random_uuid()"`
	TypeDemande   string    `json:"typedemande" gorm:"column:typedemande"`
	Genre         string    `json:"genre"`
	Pronom        string    `json:"pronom"`
	Nom           string    `json:"nom"`
	Prenom        string    `json:"prenom"`
	Email         string    `json:"email"`
	Telephone     string    `json:"telephone"`
	Disponibilite *string   `json:"disponibilite" gorm:"column:disponibilite"`
	HeureDebut    *string   `json:"heureDebut" gorm:"column:heure_debut"`
	HeureFin      *string   `json:"heureFin" gorm:"column:heure_fin"`
	Message       string    `json:"message" gorm:"type:text"`
	CreatedAt     time.Time `json:"createdAt" gorm:"column:created_at;default:CURRENT_TIMESTAMP"`
}

func (Contact) TableName() string {
	return "contacts"
}

// ContactCreate est le corps JSON attendu par POST /contact. Le téléphone y
// est déjà combiné avec l'indicatif pays par le client; la validation champ
// par champ (messages en français) est faite par le package validation, pas
// par des tags binding.
// @Description Charge utile de création d'une demande de contact
type ContactCreate struct {
	TypeDemande   string  `json:"typedemande" example:"visite"`
	Genre         string  `json:"genre" example:"M."`
	Pronom        string  `json:"pronom" example:""`
	Nom           string  `json:"nom" example:"Dupont"`
	Prenom        string  `json:"prenom" example:"Jean"`
	Email         string  `json:"email" example:"jean.dupont@exemple.com"`
	Telephone     string  `json:"telephone" example:"+33612345678"`
	Disponibilite *string `json:"disponibilite" example:"2024-06-15"`
	HeureDebut    *string `json:"heureDebut" example:"09:00"`
	HeureFin      *string `json:"heureFin" example:"14:30"`
	Message       string  `json:"message" example:"Je souhaite visiter ce bien dès que possible."`
}
