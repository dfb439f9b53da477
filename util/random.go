package util

import (
	"fmt"
	"math/rand"
	"strings"
	"time"
)

const alphabet = "abcdefghijklmnopqrstuvwxyz"

// RandomInt returns a random int64 between min and max, inclusive
func RandomInt(min, max int64) int64 {
	return min + rand.Int63n(max-min+1)
}

// RandomString returns a random lowercase string of n characters
func RandomString(n int) string {
	var sb strings.Builder

	for i := 0; i < n; i++ {
		sb.WriteByte(alphabet[rand.Intn(len(alphabet))])
	}

	return sb.String()
}

func RandomName() string {
	return fmt.Sprintf("%s %s", RandomString(6), RandomString(8))
}

func RandomEmail() string {
	return fmt.Sprintf("%s@mail.com", RandomString(8))
}

func RandomAddress() string {
	return fmt.Sprintf("%d %s Street", RandomInt(1, 9999), RandomString(7))
}

func RandomPhoneNumber() string {
	return fmt.Sprintf("+1-%d-%d", RandomInt(100, 999), RandomInt(1000000, 9999999))
}

// RandomDate returns a random calendar date (midnight UTC) from the last decade
func RandomDate() time.Time {
	year := 2015 + int(RandomInt(0, 10))
	month := time.Month(RandomInt(1, 12))
	day := int(RandomInt(1, 28))

	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
