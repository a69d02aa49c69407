package identity

import (
	"fmt"
	"math/rand"
	"strings"

	"formrunner/domain/entities"
)

var sampleMaleNames = []string{
	"Aarav", "Aditya", "Arjun", "Arnav", "Aryan", "Ashwin", "Ayush", "Chirag", "Deepak", "Dev",
	"Dhruv", "Gaurav", "Harsh", "Jatin", "Karan", "Krishna", "Lakshay", "Madhav", "Naveen", "Om",
	"Pranav", "Rahul", "Rajesh", "Sanjay", "Tarun", "Udayan", "Varun", "Yash", "Zubin",
}

var sampleFemaleNames = []string{
	"Aanya", "Aditi", "Anjali", "Bhavya", "Chitra", "Deepika", "Esha", "Fatima", "Geeta", "Hema",
	"Indira", "Jaya", "Kavita", "Lakshmi", "Meera", "Neha", "Ojaswini", "Priya", "Rani", "Sangeeta",
	"Tanvi", "Uma", "Vidya", "Yamini", "Zara",
}

var sampleLastNames = []string{
	"Agarwal", "Ahuja", "Bansal", "Chauhan", "Desai", "Gandhi", "Gupta", "Iyer", "Jain", "Kapoor",
	"Kumar", "Malhotra", "Mehta", "Nair", "Patel", "Rao", "Sharma", "Singh", "Tiwari", "Verma",
	"Yadav", "Zaveri",
}

// Source yields identities for dispatch indices. The caller-supplied
// pool is read-only, so a Source is safe for concurrent use.
type Source struct {
	names []string
}

func NewSource(names []string) *Source {
	return &Source{names: names}
}

func (s *Source) PoolSize() int {
	return len(s.names)
}

// IdentityAt returns the identity for a dispatch index. For a non-empty
// pool this is pool[index mod len(pool)], regardless of completion
// order. An empty pool fabricates a fresh random identity per call.
func (s *Source) IdentityAt(index int) entities.Identity {
	if len(s.names) == 0 {
		return Fabricate()
	}
	name := s.names[index%len(s.names)]
	return entities.Identity{
		FullName: name,
		Email:    deriveEmail(name),
	}
}

// Fabricate builds a random identity from the sample name pools.
func Fabricate() entities.Identity {
	var first, gender string
	if rand.Intn(2) == 0 {
		first = sampleMaleNames[rand.Intn(len(sampleMaleNames))]
		gender = "M"
	} else {
		first = sampleFemaleNames[rand.Intn(len(sampleFemaleNames))]
		gender = "F"
	}
	full := fmt.Sprintf("%s %s", first, sampleLastNames[rand.Intn(len(sampleLastNames))])

	return entities.Identity{
		FullName:   full,
		Email:      deriveEmail(full),
		Age:        18 + rand.Intn(43),
		Gender:     gender,
		Fabricated: true,
	}
}

// deriveEmail turns "Rahul Sharma" into "rahul.sharma@example.com".
func deriveEmail(name string) string {
	var parts []string
	for _, field := range strings.Fields(strings.ToLower(name)) {
		var b strings.Builder
		for _, r := range field {
			if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
				b.WriteRune(r)
			}
		}
		if b.Len() > 0 {
			parts = append(parts, b.String())
		}
	}
	if len(parts) == 0 {
		return "user@example.com"
	}
	return strings.Join(parts, ".") + "@example.com"
}
