package rfc

// forbiddenWords are name codes that spell something rude in Spanish.
var forbiddenWords = map[string]bool{}

func init() {
	for _, w := range []string{
		"BACA", "BAKA", "BUEI", "BUEY", "CACA", "CACO", "CAGA", "CAGO", "CAKA", "CAKO",
		"COGE", "COGI", "COJA", "COJE", "COJI", "COJO", "COLA", "CULO", "FALO", "FETO",
		"GETA", "GUEI", "GUEY", "JETA", "JOTO", "KACA", "KACO", "KAGA", "KAGO", "KAKA",
		"KAKO", "KOGE", "KOGI", "KOJA", "KOJE", "KOJI", "KOJO", "KOLA", "KULO", "LILO",
		"LOCA", "LOCO", "LOKA", "LOKO", "MAME", "MAMO", "MEAR", "MEAS", "MEON", "MIAR",
		"MION", "MOCO", "MOKO", "MULA", "MULO", "NACA", "NACO", "PEDA", "PEDO", "PENE",
		"PIPI", "PITO", "POPO", "PUTA", "PUTO", "QULO", "RATA", "ROBA", "ROBE", "ROBO",
		"RUIN", "SENO", "TETA", "VACA", "VAGA", "VAGO", "VAKA", "VUEI", "VUEY", "WUEI",
		"WUEY",
	} {
		forbiddenWords[w] = true
	}
}

// IsForbidden reports whether code is on the forbidden list. Only exact
// four-letter matches count.
func IsForbidden(code string) bool { return forbiddenWords[code] }

// Obfuscate replaces the last letter of a forbidden name code with X.
func Obfuscate(code string) string {
	if !IsForbidden(code) {
		return code
	}
	r := []rune(code)
	r[len(r)-1] = 'X'
	return string(r)
}
