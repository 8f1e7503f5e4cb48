package utils

import (
	"net/smtp"
	"os"
)

// SendMail envoie un email en best-effort: un échec est journalisé mais ne
// doit jamais faire échouer la requête qui l'a déclenché
func SendMail(email string, message []byte) {
	from := "contact.majordhom@gmail.com"
	password := os.Getenv("GOOGLE_SMTP_MDP")
	if password == "" {
		LogInfo("SMTP non configuré, email non envoyé")
		return
	}
	to := email

	smtpHost := "smtp.gmail.com"
	smtpPort := "587"
	auth := smtp.PlainAuth("", from, password, smtpHost)

	err := smtp.SendMail(smtpHost+":"+smtpPort, auth, from, []string{to}, message)
	if err != nil {
		LogError(err, "Erreur lors de l'envoi de l'email")
		return
	}

	LogSuccess("Email envoyé avec succès")
}
