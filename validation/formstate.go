package validation

// EtatFormulaire est l'état du formulaire de contact. Chaque transition
// retourne une nouvelle valeur au lieu de modifier l'état en place, ce qui
// rend les règles d'effacement croisé (changement d'indicatif, changement
// de date) testables isolément.
type EtatFormulaire struct {
	TypeDemande       string
	Genre             string
	GenrePersonnalise string
	Pronom            string
	Nom               string
	Prenom            string
	Email             string
	IndicatifPays     string
	Telephone         string
	Disponibilite     string
	HeureDebut        string
	HeureFin          string
	Message           string
	ErreurTelephone   string
}

// NouvelEtatFormulaire retourne l'état initial, France présélectionnée
func NouvelEtatFormulaire() EtatFormulaire {
	return EtatFormulaire{IndicatifPays: "+33"}
}

func (e EtatFormulaire) AvecTypeDemande(typeDemande string) EtatFormulaire {
	e.TypeDemande = typeDemande
	return e
}

// AvecGenre change le genre; quitter le genre personnalisé efface le libellé
// saisi et le pronom
func (e EtatFormulaire) AvecGenre(genre string) EtatFormulaire {
	e.Genre = genre
	if genre != GenrePersonnalise {
		e.GenrePersonnalise = ""
		e.Pronom = ""
	}
	return e
}

func (e EtatFormulaire) AvecGenrePersonnalise(libelle string) EtatFormulaire {
	e.GenrePersonnalise = libelle
	return e
}

func (e EtatFormulaire) AvecPronom(pronom string) EtatFormulaire {
	e.Pronom = pronom
	return e
}

func (e EtatFormulaire) AvecNom(nom string) EtatFormulaire {
	e.Nom = nom
	return e
}

func (e EtatFormulaire) AvecPrenom(prenom string) EtatFormulaire {
	e.Prenom = prenom
	return e
}

func (e EtatFormulaire) AvecEmail(email string) EtatFormulaire {
	e.Email = email
	return e
}

// AvecIndicatifPays change le pays: la règle de format change, donc le
// numéro déjà saisi et son éventuelle erreur sont effacés
func (e EtatFormulaire) AvecIndicatifPays(indicatif string) EtatFormulaire {
	e.IndicatifPays = indicatif
	e.Telephone = ""
	e.ErreurTelephone = ""
	return e
}

// AvecTelephone saisit le numéro national et recalcule l'erreur de format
// selon le pays sélectionné
func (e EtatFormulaire) AvecTelephone(numero string) EtatFormulaire {
	e.Telephone = numero
	e.ErreurTelephone = ""
	if numero != "" {
		if err := ValiderNumeroLocal(e.IndicatifPays, numero); err != nil {
			e.ErreurTelephone = err.Error()
		}
	}
	return e
}

// AvecDisponibilite choisit une date de visite et efface les créneaux
// précédemment sélectionnés
func (e EtatFormulaire) AvecDisponibilite(date string) EtatFormulaire {
	e.Disponibilite = date
	e.HeureDebut = ""
	e.HeureFin = ""
	return e
}

func (e EtatFormulaire) AvecHeureDebut(heure string) EtatFormulaire {
	e.HeureDebut = heure
	return e
}

func (e EtatFormulaire) AvecHeureFin(heure string) EtatFormulaire {
	e.HeureFin = heure
	return e
}

func (e EtatFormulaire) AvecMessage(message string) EtatFormulaire {
	e.Message = message
	return e
}

// HeureDebutDesactivee indique si un créneau de début doit être grisé: la
// fin choisie doit rester atteignable après le début
func (e EtatFormulaire) HeureDebutDesactivee(heure string) bool {
	return e.HeureFin != "" && heure >= e.HeureFin
}

// HeureFinDesactivee indique si un créneau de fin doit être grisé
func (e EtatFormulaire) HeureFinDesactivee(heure string) bool {
	return e.HeureDebut != "" && heure <= e.HeureDebut
}

// Soumission extrait les valeurs courantes du formulaire pour le pipeline
func (e EtatFormulaire) Soumission() Soumission {
	return Soumission{
		TypeDemande:       e.TypeDemande,
		Genre:             e.Genre,
		GenrePersonnalise: e.GenrePersonnalise,
		Pronom:            e.Pronom,
		Nom:               e.Nom,
		Prenom:            e.Prenom,
		Email:             e.Email,
		IndicatifPays:     e.IndicatifPays,
		Telephone:         e.Telephone,
		Disponibilite:     e.Disponibilite,
		HeureDebut:        e.HeureDebut,
		HeureFin:          e.HeureFin,
		Message:           e.Message,
	}
}
