package validation

import (
	"errors"
	"regexp"
	"sort"
	"strings"
)

// Pays représente un pays sélectionnable dans le formulaire de contact
type Pays struct {
	Code      string `json:"code"`
	Nom       string `json:"nom"`
	Indicatif string `json:"indicatif"`
	Format    string `json:"format"`
}

// PaysIndicatifs liste les pays proposés dans le sélecteur d'indicatif
var PaysIndicatifs = []Pays{
	{Code: "FR", Nom: "France", Indicatif: "+33", Format: "9 chiffres (ex: 612345678)"},
	{Code: "BE", Nom: "Belgique", Indicatif: "+32", Format: "9 chiffres (ex: 470123456)"},
	{Code: "CH", Nom: "Suisse", Indicatif: "+41", Format: "9 chiffres (ex: 791234567)"},
	{Code: "LU", Nom: "Luxembourg", Indicatif: "+352", Format: "8 chiffres (ex: 62123456)"},
	{Code: "MC", Nom: "Monaco", Indicatif: "+377", Format: "8-9 chiffres"},
	{Code: "GB", Nom: "Royaume-Uni", Indicatif: "+44", Format: "10 chiffres (ex: 7700900123)"},
	{Code: "DE", Nom: "Allemagne", Indicatif: "+49", Format: "10-11 chiffres"},
	{Code: "ES", Nom: "Espagne", Indicatif: "+34", Format: "9 chiffres"},
	{Code: "IT", Nom: "Italie", Indicatif: "+39", Format: "9-10 chiffres"},
	{Code: "PT", Nom: "Portugal", Indicatif: "+351", Format: "9 chiffres"},
	{Code: "NL", Nom: "Pays-Bas", Indicatif: "+31", Format: "9 chiffres"},
	{Code: "US", Nom: "États-Unis", Indicatif: "+1", Format: "10 chiffres"},
	{Code: "CA", Nom: "Canada", Indicatif: "+1", Format: "10 chiffres"},
	{Code: "MA", Nom: "Maroc", Indicatif: "+212", Format: "9 chiffres"},
	{Code: "DZ", Nom: "Algérie", Indicatif: "+213", Format: "9 chiffres"},
	{Code: "TN", Nom: "Tunisie", Indicatif: "+216", Format: "8 chiffres"},
}

// RegleTelephone définit le nombre de chiffres attendu pour un indicatif
type RegleTelephone struct {
	Min    int
	Max    int
	Format string
}

// Une entrée par indicatif: ajouter un pays se fait ici, en une ligne
var reglesTelephone = map[string]RegleTelephone{
	"+33":  {9, 9, "9 chiffres"},
	"+32":  {9, 9, "9 chiffres"},
	"+41":  {9, 9, "9 chiffres"},
	"+34":  {9, 9, "9 chiffres"},
	"+351": {9, 9, "9 chiffres"},
	"+31":  {9, 9, "9 chiffres"},
	"+212": {9, 9, "9 chiffres"},
	"+213": {9, 9, "9 chiffres"},
	"+44":  {10, 10, "10 chiffres"},
	"+1":   {10, 10, "10 chiffres"},
	"+352": {8, 8, "8 chiffres"},
	"+216": {8, 8, "8 chiffres"},
	"+49":  {10, 11, "10-11 chiffres"},
	"+39":  {9, 10, "9-10 chiffres"},
	"+377": {8, 9, "8-9 chiffres"},
}

// regleParDefaut s'applique à tout indicatif hors de la table
var regleParDefaut = RegleTelephone{9, 10, "9-10 chiffres"}

var (
	chiffresRegex      = regexp.MustCompile(`^\d+$`)
	internationalRegex = regexp.MustCompile(`^\+[1-9]\d{1,14}$`)
)

// RegleTelephonePour retourne la règle de validation associée à un indicatif
func RegleTelephonePour(indicatif string) RegleTelephone {
	if regle, ok := reglesTelephone[indicatif]; ok {
		return regle
	}
	return regleParDefaut
}

// ValiderNumeroLocal vérifie qu'un numéro national (sans indicatif) respecte
// la règle du pays sélectionné. Le décompte porte sur les chiffres
// significatifs: les zéros initiaux, retirés à la normalisation, ne comptent
// pas ("0612345678" vaut 9 chiffres pour la France).
func ValiderNumeroLocal(indicatif string, numero string) error {
	regle := RegleTelephonePour(indicatif)
	chiffres := len(strings.TrimLeft(numero, "0"))
	if !chiffresRegex.MatchString(numero) || chiffres < regle.Min || chiffres > regle.Max {
		return errors.New("Le numéro doit contenir " + regle.Format)
	}
	return nil
}

// indicatifsConnus est trié du plus long au plus court pour que +351 soit
// testé avant +31
var indicatifsConnus = func() []string {
	vus := map[string]bool{}
	codes := []string{}
	for _, pays := range PaysIndicatifs {
		if !vus[pays.Indicatif] {
			vus[pays.Indicatif] = true
			codes = append(codes, pays.Indicatif)
		}
	}
	sort.Slice(codes, func(i, j int) bool { return len(codes[i]) > len(codes[j]) })
	return codes
}()

// DecouperTelephone sépare un numéro international en indicatif + numéro
// national. ok vaut false si aucun indicatif du sélecteur ne correspond.
func DecouperTelephone(telephone string) (indicatif string, numero string, ok bool) {
	for _, code := range indicatifsConnus {
		if len(telephone) > len(code) && telephone[:len(code)] == code {
			return code, telephone[len(code):], true
		}
	}
	return "", "", false
}

// ValiderTelephone valide un numéro au format international tel qu'il arrive
// dans la charge utile POST /contact (indicatif déjà concaténé par le client)
func ValiderTelephone(telephone string) error {
	if !internationalRegex.MatchString(telephone) {
		return errors.New("Le numéro de téléphone doit être au format international (ex: +33612345678)")
	}
	indicatif, numero, ok := DecouperTelephone(telephone)
	if !ok {
		return errors.New("Indicatif pays inconnu")
	}
	return ValiderNumeroLocal(indicatif, numero)
}
