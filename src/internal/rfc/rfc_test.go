package rfc

import (
	"errors"
	"regexp"
	"sync"
	"testing"
	"unicode/utf8"
)

func TestCalculate(t *testing.T) {
	cases := []struct {
		name string
		p    Person
		want string
	}{
		{"normal", Person{Name: "Jesus Antonio", FirstLastName: "López", SecondLastName: "Ventura", Day: 17, Month: 8, Year: 2004}, "LOVJ040817"},
		{"short first last name", Person{Name: "María De La Luz", FirstLastName: "Ku", SecondLastName: "Sarabia", Day: 24, Month: 5, Year: 1970}, "KSLU700524"},
		{"punctuation only first last name", Person{Name: "María De La Luz", FirstLastName: ".", SecondLastName: "Sarabia", Day: 24, Month: 5, Year: 1970}, "SALU700524"},
		{"n tilde", Person{Name: "Alberto", FirstLastName: "Ñando", SecondLastName: "Rodríguez", Day: 24, Month: 5, Year: 1970}, "NARA700524"},
		{"emoji", Person{Name: "Madeline 💗", FirstLastName: "Tamayo", SecondLastName: "Hernandez", Day: 1, Month: 3, Year: 2000}, "TAHM000301"},
		{"superscript letters", Person{Name: "ᵀᵃⁿⁱᵃ Gᵘᵃᵈᵃˡᵘᵖᵉ Jᵒˢᵉᶠⁱⁿᵃ", FirstLastName: "Lᵉᵈᵉˢᵐᵃ", SecondLastName: "Sᵉʳⁿᵃ", Day: 24, Month: 5, Year: 1970}, "LSGJ700524"},
		{"empty second last name", Person{Name: "Juan", FirstLastName: "Perez", Day: 5, Month: 11, Year: 1985}, "PEJU851105"},
		{"both last names empty", Person{Name: "Juan", Day: 5, Month: 11, Year: 1985}, "XXJU851105"},
		{"single letter second last name", Person{Name: "Juan", FirstLastName: "", SecondLastName: "O", Day: 5, Month: 11, Year: 1985}, "OXJU851105"},
		{"lone jose kept", Person{Name: "José", FirstLastName: "Lopez", SecondLastName: "Ventura", Day: 17, Month: 8, Year: 2004}, "LOVJ040817"},
		{"no vowel after first letter", Person{Name: "Pablo", FirstLastName: "Lynch", SecondLastName: "Ruiz", Day: 2, Month: 2, Year: 1990}, "LXRP900202"},
		{"particles in last names", Person{Name: "Carlos", FirstLastName: "de la Fuente", SecondLastName: "del Valle", Day: 2, Month: 2, Year: 1990}, "FUVC900202"},
		{"forbidden word", Person{Name: "Alicia", FirstLastName: "Puentes", SecondLastName: "Tapia", Day: 2, Month: 2, Year: 1990}, "PUTX900202"},
	}
	for _, c := range cases {
		got, err := Calculate(c.p)
		if err != nil {
			t.Fatalf("%s: Calculate: %v", c.name, err)
		}
		if got != c.want {
			t.Fatalf("%s: Calculate=%q want %q", c.name, got, c.want)
		}
	}
}

func TestComputeParts(t *testing.T) {
	c, err := Compute(Person{Name: "Alberto", FirstLastName: "Ñando", SecondLastName: "Rodríguez", Day: 24, Month: 5, Year: 1970})
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}
	if c.Name != "NARA" || c.Date != "700524" {
		t.Fatalf("Compute parts: %+v", c)
	}
	if c.String() != "NARA700524" {
		t.Fatalf("Code.String: %q", c.String())
	}
}

func TestNameCodeKeepsNTilde(t *testing.T) {
	nc, err := NameCode(Person{Name: "Alberto", FirstLastName: "Ñando", SecondLastName: "Rodríguez"})
	if err != nil {
		t.Fatalf("NameCode: %v", err)
	}
	if nc != "ÑARA" {
		t.Fatalf("NameCode: want ÑARA, got %q", nc)
	}
}

func TestCalculateEmptyGivenName(t *testing.T) {
	for _, name := range []string{"", "💗", "Maria"} {
		_, err := Calculate(Person{Name: name, FirstLastName: "Lopez", SecondLastName: "Ventura", Day: 1, Month: 1, Year: 2000})
		if name == "Maria" {
			if err != nil {
				t.Fatalf("lone Maria should be kept: %v", err)
			}
			continue
		}
		if !errors.Is(err, ErrEmptyField) {
			t.Fatalf("name %q: want ErrEmptyField, got %v", name, err)
		}
	}
}

func TestCalculateEmptyGivenNamePadded(t *testing.T) {
	got, err := Calculate(Person{FirstLastName: "Ku", SecondLastName: "Sarabia", Day: 24, Month: 5, Year: 1970})
	if err != nil {
		t.Fatalf("Calculate: %v", err)
	}
	if got != "KSXX700524" {
		t.Fatalf("Calculate: want KSXX700524, got %q", got)
	}
}

func TestObfuscate(t *testing.T) {
	if got := Obfuscate("PUTA"); got != "PUTX" {
		t.Fatalf("Obfuscate: want PUTX, got %q", got)
	}
	if got := Obfuscate("WUEY"); got != "WUEX" {
		t.Fatalf("Obfuscate: want WUEX, got %q", got)
	}
	for _, s := range []string{"PUTAS", "PUT", "puta", "LOVJ", ""} {
		if got := Obfuscate(s); got != s {
			t.Fatalf("Obfuscate(%q) changed to %q", s, got)
		}
	}
	if len(forbiddenWords) != 81 {
		t.Fatalf("forbidden list size: %d", len(forbiddenWords))
	}
}

var shape = regexp.MustCompile(`^[A-Z0-9&]{4}[0-9]{6}$`)

func TestCalculateShape(t *testing.T) {
	people := []Person{
		{Name: "Ñoño", FirstLastName: "Ñúñez", SecondLastName: "Ñ", Day: 1, Month: 1, Year: 1901},
		{Name: "y", FirstLastName: "de", SecondLastName: "la", Day: 31, Month: 12, Year: 1999},
		{Name: "Ö", FirstLastName: "Ü", SecondLastName: "Ä", Day: 9, Month: 9, Year: 2009},
		{Name: "Ana", FirstLastName: "Y", SecondLastName: "", Day: 9, Month: 9, Year: 2009},
		{Name: "Juan Pablo", FirstLastName: "Martínez", SecondLastName: "O'Higgins", Day: 15, Month: 6, Year: 2023},
	}
	for _, p := range people {
		got, err := Calculate(p)
		if err != nil {
			t.Fatalf("Calculate(%+v): %v", p, err)
		}
		if utf8.RuneCountInString(got) != 10 || !shape.MatchString(got) {
			t.Fatalf("Calculate(%+v)=%q has wrong shape", p, got)
		}
	}
}

func TestCalculateConcurrent(t *testing.T) {
	p := Person{Name: "Jesus Antonio", FirstLastName: "López", SecondLastName: "Ventura", Day: 17, Month: 8, Year: 2004}
	var wg sync.WaitGroup
	errs := make(chan string, 32)
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got, err := Calculate(p)
			if err != nil || got != "LOVJ040817" {
				errs <- got
			}
		}()
	}
	wg.Wait()
	close(errs)
	for got := range errs {
		t.Fatalf("concurrent Calculate returned %q", got)
	}
}
