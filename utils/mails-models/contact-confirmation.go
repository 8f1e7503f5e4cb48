package mailsmodels

import (
	"fmt"

	"majordhom-backend/utils"
)

// ContactEmailData reprend les champs de la demande utiles au mail de
// confirmation
type ContactEmailData struct {
	TypeDemande   string
	Prenom        string
	Nom           string
	Email         string
	Disponibilite *string
	HeureDebut    *string
	HeureFin      *string
	Message       string
}

// LibelleTypeDemande retourne le libellé affiché pour un type de demande
func LibelleTypeDemande(typeDemande string) string {
	switch typeDemande {
	case "visite":
		return "Demande de visite"
	case "rappel":
		return "Être rappelé"
	case "photos":
		return "Plus de photos"
	default:
		return typeDemande
	}
}

// ContactConfirmation envoie le mail de confirmation d'une demande de
// contact, avec le rappel de la disponibilité pour les visites
func ContactConfirmation(contact ContactEmailData) {
	subject := "Subject: Confirmation de votre demande de contact - Majordhom \r\n"
	mime := "MIME-version: 1.0;\r\nContent-Type: text/html; charset=\"UTF-8\";\r\n\r\n"

	disponibilite := ""
	if contact.Disponibilite != nil {
		disponibilite = fmt.Sprintf(`<p>Disponibilité proposée : %s`, *contact.Disponibilite)
		if contact.HeureDebut != nil && contact.HeureFin != nil {
			disponibilite += fmt.Sprintf(` de %s à %s`, *contact.HeureDebut, *contact.HeureFin)
		}
		disponibilite += `</p>`
	}

	body := fmt.Sprintf(`
	<div style="background-color: #6B3176; width: 100%%; min-height: 300px; padding: 30px; box-sizing:border-box">
		<table style="background-color: #ffffff; width: 100%%;  min-height: 300px;">
			<tbody>
				<tr>
					<td><h1 style="text-align:center">Merci pour votre message !</h1></td>
				</tr>
				<tr>
					<td style="text-align:center; padding-bottom: 30px;">
						<p>Bonjour %s %s,</p>
						<p>Nous avons bien reçu votre demande : "%s"</p>
						%s
						<p>L'agence vous répondra dans les plus brefs délais.</p>
						<p>Votre message :</p>
						<blockquote style="background-color: #f5f5f5; padding: 15px; border-left: 5px solid #fbac19;">
							%s
						</blockquote>
					</td>
				</tr>
			</tbody>
		</table>
	</div>
`, contact.Prenom, contact.Nom, LibelleTypeDemande(contact.TypeDemande), disponibilite, contact.Message)

	message := []byte(subject + mime + body)
	utils.SendMail(contact.Email, message)
}
