package notes

import "testing"

func TestNormalize(t *testing.T) {
	tests := map[string]string{
		"Acción, ya":     "accion, ya",
		"ÁÉÍÓÚ":          "aeiou",
		"Corten":         "corten",
		"pingüino señor": "pingüino señor",
		"àè":             "àè",
		"":               "",
	}
	for in, want := range tests {
		t.Run(in, func(t *testing.T) {
			if got := Normalize(in); got != want {
				t.Fatalf("Normalize(%q) = %q, want %q", in, got, want)
			}
		})
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	for _, in := range []string{"Acción", "¡CORTEN!", "Él dijo: «sí»", "plain text"} {
		once := Normalize(in)
		if twice := Normalize(once); twice != once {
			t.Fatalf("Normalize not idempotent for %q: %q then %q", in, once, twice)
		}
	}
}
