package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKey(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"Lab A-1", "laba1"},
		{"lab a.1", "laba1"},
		{"R&D Workshop", "rdworkshop"},
		{"  Lecture Hall  B ", "lecturehallb"},
		{"Аудитория 101", "аудитория101"},
	}

	for _, c := range cases {
		assert.Equal(t, c.want, Key(c.in), "Key(%q)", c.in)
	}
}

func TestKey_Idempotent(t *testing.T) {
	names := []string{"Lab A-1", "lab a.1", "R&D-Lab.2", "", "plain"}
	for _, n := range names {
		once := Key(n)
		assert.Equal(t, once, Key(once))
	}
}

func TestKey_JoinsInconsistentSpellings(t *testing.T) {
	assert.Equal(t, Key("Lab A-1"), Key("lab a.1"))
	assert.Equal(t, Key("R & D Lab"), Key("r.d-lab"))
}
