package validation

// Créneaux proposés dans le sélecteur de disponibilité: l'heure de début se
// choisit le matin, l'heure de fin l'après-midi
var (
	HorairesMatin = []string{"09:00", "09:30", "10:00", "10:30", "11:00", "11:30"}

	HorairesApresMidi = []string{"14:00", "14:30", "15:00", "15:30", "16:00", "16:30"}
)

func contientHoraire(horaires []string, heure string) bool {
	for _, h := range horaires {
		if h == heure {
			return true
		}
	}
	return false
}

// EstHoraireMatin indique si l'heure fait partie des créneaux de début
func EstHoraireMatin(heure string) bool {
	return contientHoraire(HorairesMatin, heure)
}

// EstHoraireApresMidi indique si l'heure fait partie des créneaux de fin
func EstHoraireApresMidi(heure string) bool {
	return contientHoraire(HorairesApresMidi, heure)
}
