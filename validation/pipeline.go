// Package validation contient le pipeline de validation et de normalisation
// des demandes de contact. Il est indépendant du transport et de la base:
// le formulaire côté client et le handler POST /contact s'appuient tous les
// deux sur lui.
package validation

import (
	"regexp"
	"strings"
	"time"
)

// Types de demande acceptés
const (
	TypeVisite = "visite"
	TypeRappel = "rappel"
	TypePhotos = "photos"
)

// Genres proposés dans le formulaire
const (
	GenreMonsieur     = "M."
	GenreMadame       = "Mme"
	GenreNonPrecise   = "Non précisé"
	GenrePersonnalise = "Personnalisé"
)

// Pronoms proposés quand le genre est personnalisé
const (
	PronomHomme = "homme"
	PronomFemme = "femme"
	PronomAutre = "autre"
)

// LongueurMinimaleMessage est la taille minimale du message libre
const LongueurMinimaleMessage = 10

var typesDemandeValides = map[string]struct{}{
	TypeVisite: {},
	TypeRappel: {},
	TypePhotos: {},
}

var genresValides = map[string]struct{}{
	GenreMonsieur:     {},
	GenreMadame:       {},
	GenreNonPrecise:   {},
	GenrePersonnalise: {},
}

var pronomsValides = map[string]struct{}{
	PronomHomme: {},
	PronomFemme: {},
	PronomAutre: {},
}

func EstTypeDemandeValide(valeur string) bool {
	_, ok := typesDemandeValides[valeur]
	return ok
}

func EstGenreValide(valeur string) bool {
	_, ok := genresValides[valeur]
	return ok
}

func EstPronomValide(valeur string) bool {
	_, ok := pronomsValides[valeur]
	return ok
}

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9\-]+(\.[a-zA-Z0-9\-]+)*\.[a-zA-Z]{2,}$`)

func EstEmailValide(email string) bool {
	return emailRegex.MatchString(email)
}

// ErreurChamp associe un champ du formulaire à son message d'erreur
type ErreurChamp struct {
	Champ   string `json:"champ"`
	Message string `json:"message"`
}

// ErreursValidation rassemble toutes les erreurs d'une soumission, un
// message par champ fautif
type ErreursValidation []ErreurChamp

func (e ErreursValidation) Error() string {
	messages := make([]string, len(e))
	for i, erreur := range e {
		messages[i] = erreur.Champ + ": " + erreur.Message
	}
	return strings.Join(messages, "; ")
}

// Soumission contient les valeurs brutes du formulaire, avant normalisation.
// Le téléphone y est encore séparé en indicatif + numéro national.
type Soumission struct {
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
}

// Valider applique les règles champ par champ et retourne toutes les
// erreurs rencontrées (nil si la soumission est valide)
func (s Soumission) Valider() ErreursValidation {
	var erreurs ErreursValidation
	ajouter := func(champ, message string) {
		erreurs = append(erreurs, ErreurChamp{Champ: champ, Message: message})
	}

	switch {
	case s.TypeDemande == "":
		ajouter("typedemande", "Le type de demande est requis")
	case !EstTypeDemandeValide(s.TypeDemande):
		ajouter("typedemande", "Type de demande inconnu")
	}

	switch {
	case s.Genre == "":
		ajouter("genre", "Le genre est requis")
	case !EstGenreValide(s.Genre):
		ajouter("genre", "Genre inconnu")
	case s.Genre == GenrePersonnalise && strings.TrimSpace(s.GenrePersonnalise) == "":
		ajouter("genrePersonalise", "Le genre personnalisé est requis")
	}

	if s.Pronom != "" && !EstPronomValide(s.Pronom) {
		ajouter("pronom", "Pronom inconnu")
	}

	if strings.TrimSpace(s.Nom) == "" {
		ajouter("nom", "Le nom est requis")
	}
	if strings.TrimSpace(s.Prenom) == "" {
		ajouter("prenom", "Le prénom est requis")
	}

	switch {
	case s.Email == "":
		ajouter("email", "L'email est requis")
	case !EstEmailValide(s.Email):
		ajouter("email", "Format d'email invalide")
	}

	if s.Telephone == "" {
		ajouter("telephone", "Le numéro de téléphone est requis")
	} else if err := ValiderNumeroLocal(s.IndicatifPays, s.Telephone); err != nil {
		ajouter("telephone", err.Error())
	}

	if len([]rune(s.Message)) < LongueurMinimaleMessage {
		ajouter("message", "Le message doit contenir au moins 10 caractères")
	}

	if s.TypeDemande == TypeVisite {
		erreurs = append(erreurs, validerDisponibilite(s.Disponibilite, s.HeureDebut, s.HeureFin)...)
	}

	return erreurs
}

func validerDisponibilite(date, heureDebut, heureFin string) ErreursValidation {
	var erreurs ErreursValidation

	if date != "" {
		if _, err := time.Parse("2006-01-02", date); err != nil {
			erreurs = append(erreurs, ErreurChamp{Champ: "disponibilite", Message: "La date doit être au format AAAA-MM-JJ"})
		}
	}

	if heureDebut != "" {
		switch {
		case date == "":
			erreurs = append(erreurs, ErreurChamp{Champ: "heureDebut", Message: "Une date est requise pour choisir un horaire"})
		case !EstHoraireMatin(heureDebut):
			erreurs = append(erreurs, ErreurChamp{Champ: "heureDebut", Message: "L'heure de début doit être un créneau du matin"})
		}
	}

	if heureFin != "" {
		switch {
		case date == "":
			erreurs = append(erreurs, ErreurChamp{Champ: "heureFin", Message: "Une date est requise pour choisir un horaire"})
		case !EstHoraireApresMidi(heureFin):
			erreurs = append(erreurs, ErreurChamp{Champ: "heureFin", Message: "L'heure de fin doit être un créneau de l'après-midi"})
		case heureDebut != "" && heureFin <= heureDebut:
			erreurs = append(erreurs, ErreurChamp{Champ: "heureFin", Message: "L'heure de fin doit être postérieure à l'heure de début"})
		}
	}

	return erreurs
}

// Payload est la forme réseau d'une soumission, telle qu'envoyée à
// POST /contact: genre déjà réduit à son libellé final, téléphone combiné
// avec l'indicatif, disponibilité à null hors demande de visite
type Payload struct {
	TypeDemande   string
	Genre         string
	Pronom        string
	Nom           string
	Prenom        string
	Email         string
	Telephone     string
	Disponibilite *string
	HeureDebut    *string
	HeureFin      *string
	Message       string
}

// Normaliser transforme une soumission validée en charge utile réseau
func (s Soumission) Normaliser() Payload {
	p := Payload{
		TypeDemande: s.TypeDemande,
		Genre:       s.Genre,
		Nom:         s.Nom,
		Prenom:      s.Prenom,
		Email:       s.Email,
		Message:     s.Message,
	}

	if s.Genre == GenrePersonnalise {
		p.Genre = s.GenrePersonnalise
		p.Pronom = s.Pronom
	}

	p.Telephone = s.IndicatifPays + strings.TrimLeft(s.Telephone, "0")

	// La disponibilité ne survit qu'aux demandes de visite, même si des
	// valeurs traînent encore dans le formulaire après un changement de type
	if s.TypeDemande == TypeVisite {
		p.Disponibilite = chaineOuNil(s.Disponibilite)
		p.HeureDebut = chaineOuNil(s.HeureDebut)
		p.HeureFin = chaineOuNil(s.HeureFin)
	}

	return p
}

func chaineOuNil(valeur string) *string {
	if valeur == "" {
		return nil
	}
	return &valeur
}

// NormaliserPayload ré-applique côté serveur les normalisations que le
// client est censé avoir faites, sans lui faire confiance: champs de
// disponibilité annulés hors visite, zéros initiaux du numéro national
// retirés
func NormaliserPayload(p Payload) Payload {
	if p.TypeDemande != TypeVisite {
		p.Disponibilite = nil
		p.HeureDebut = nil
		p.HeureFin = nil
	}
	if indicatif, numero, ok := DecouperTelephone(p.Telephone); ok {
		p.Telephone = indicatif + strings.TrimLeft(numero, "0")
	}
	return p
}

// ValiderPayload est la validation serveur, faisant autorité, de la charge
// utile POST /contact. Le genre y est un libellé libre (il peut être
// personnalisé), le téléphone est au format international.
func ValiderPayload(p Payload) ErreursValidation {
	var erreurs ErreursValidation
	ajouter := func(champ, message string) {
		erreurs = append(erreurs, ErreurChamp{Champ: champ, Message: message})
	}

	switch {
	case p.TypeDemande == "":
		ajouter("typedemande", "Le type de demande est requis")
	case !EstTypeDemandeValide(p.TypeDemande):
		ajouter("typedemande", "Type de demande inconnu")
	}

	if strings.TrimSpace(p.Genre) == "" {
		ajouter("genre", "Le genre est requis")
	}
	if strings.TrimSpace(p.Nom) == "" {
		ajouter("nom", "Le nom est requis")
	}
	if strings.TrimSpace(p.Prenom) == "" {
		ajouter("prenom", "Le prénom est requis")
	}

	switch {
	case p.Email == "":
		ajouter("email", "L'email est requis")
	case !EstEmailValide(p.Email):
		ajouter("email", "Format d'email invalide")
	}

	if p.Telephone == "" {
		ajouter("telephone", "Le numéro de téléphone est requis")
	} else if err := ValiderTelephone(p.Telephone); err != nil {
		ajouter("telephone", err.Error())
	}

	if len([]rune(p.Message)) < LongueurMinimaleMessage {
		ajouter("message", "Le message doit contenir au moins 10 caractères")
	}

	if p.TypeDemande == TypeVisite {
		erreurs = append(erreurs, validerDisponibilite(valeurOuVide(p.Disponibilite), valeurOuVide(p.HeureDebut), valeurOuVide(p.HeureFin))...)
	}

	return erreurs
}

func valeurOuVide(valeur *string) string {
	if valeur == nil {
		return ""
	}
	return *valeur
}
