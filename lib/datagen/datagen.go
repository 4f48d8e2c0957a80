// Package datagen generates random form input for the registration scenarios.
package datagen

import (
	"math/rand"
	"strings"
	"sync"
	"time"
)

const (
	lowerLatin    = "abcdefghijklmnopqrstuvwxyz"
	capitalLatin  = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	lowerCyrillic = "абвгдеёжзийклмнопрстуфхцчшщъыьэюя"
	digits        = "1234567890"
)

// SelectAll is the label of the option that toggles every interest
const SelectAll = "Select all"

// Gen is a random generator. Use New for a seeded one.
type Gen struct {
	lock sync.Mutex
	r    *rand.Rand
}

// New generator with the seed
func New(seed int64) *Gen {
	return &Gen{r: rand.New(rand.NewSource(seed))}
}

var std = New(time.Now().UnixNano())

// Default generator seeded with the start time
func Default() *Gen {
	return std
}

func (g *Gen) intn(n int) int {
	g.lock.Lock()
	defer g.lock.Unlock()
	return g.r.Intn(n)
}

func (g *Gen) pick(chars string) string {
	list := []rune(chars)
	return string(list[g.intn(len(list))])
}

// Text of lowercase latin letters
func (g *Gen) Text(length int) string {
	var b strings.Builder
	for i := 0; i < length; i++ {
		b.WriteString(g.pick(lowerLatin))
	}
	return b.String()
}

// Password that starts with a cyrillic letter, a digit and a capital latin letter,
// the rest are lowercase latin letters. The length is counted in characters.
func (g *Gen) Password(length int) string {
	return g.pick(lowerCyrillic) + g.pick(digits) + g.pick(capitalLatin) + g.Text(length-3)
}

// Email local part for the password. The game requires the email to contain a
// character of the password, so it starts with the last character of the password.
func (g *Gen) Email(length int, password string) string {
	list := []rune(password)
	if len(list) == 0 {
		return g.Text(length)
	}
	return string(list[len(list)-1]) + g.Text(length-1)
}

// IntInclusive returns a random int in [min, max]
func (g *Gen) IntInclusive(min, max int) int {
	if max < min {
		min, max = max, min
	}
	return min + g.intn(max-min+1)
}

// IntsInRange returns amount unique random ints in [0, max) that are not equal to skip.
// It returns as many as possible when the range has fewer candidates.
func (g *Gen) IntsInRange(amount, max, skip int) []int {
	candidates := max
	if skip >= 0 && skip < max {
		candidates--
	}
	if amount > candidates {
		amount = candidates
	}

	list := []int{}
	seen := map[int]bool{}
	for len(list) < amount {
		r := g.intn(max)
		if seen[r] || r == skip {
			continue
		}
		seen[r] = true
		list = append(list, r)
	}
	return list
}

// IndexOf returns the index of the first item equals to s, -1 if not found
func IndexOf(list []string, s string) int {
	for i, item := range list {
		if item == s {
			return i
		}
	}
	return -1
}

// Text is Gen.Text on the default generator
func Text(length int) string { return std.Text(length) }

// Password is Gen.Password on the default generator
func Password(length int) string { return std.Password(length) }

// Email is Gen.Email on the default generator
func Email(length int, password string) string { return std.Email(length, password) }

// IntInclusive is Gen.IntInclusive on the default generator
func IntInclusive(min, max int) int { return std.IntInclusive(min, max) }

// IntsInRange is Gen.IntsInRange on the default generator
func IntsInRange(amount, max, skip int) []int { return std.IntsInRange(amount, max, skip) }
