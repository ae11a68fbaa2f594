package synth

import (
	"strings"
	"time"

	"github.com/tabsynth/tabsynth/pkg/sample"
)

// Fixed word tables backing the generic fillers. Values are synthetic and
// carry no relationship to real people or organizations.
var (
	firstNames = []string{
		"John", "Jane", "Alice", "Bob", "Charlie", "Diana", "Eve", "Frank",
		"Grace", "Henry", "Isabel", "Jack", "Karen", "Liam", "Maria", "Noah",
		"Olivia", "Peter", "Quinn", "Rosa",
	}
	lastNames = []string{
		"Smith", "Johnson", "Brown", "Williams", "Jones", "Garcia", "Miller",
		"Davis", "Rodriguez", "Martinez", "Wilson", "Anderson", "Taylor",
		"Thomas", "Moore", "Clark", "Lewis", "Walker", "Hall", "Young",
	}
	emailDomains = []string{"example.com", "test.com", "demo.com", "sample.org", "company.net"}
	streetNames  = []string{"Oak", "Maple", "Cedar", "Pine", "Elm", "Birch", "Walnut", "Chestnut"}
	streetKinds  = []string{"St", "Ave", "Blvd", "Ln", "Dr", "Ct"}
	cityNames    = []string{
		"Springfield", "Riverton", "Fairview", "Kingston", "Ashland",
		"Milton", "Clayton", "Dayton", "Georgetown", "Salem",
	}
	stateCodes = []string{"CA", "NY", "TX", "WA", "IL", "MA", "CO", "OR", "GA", "NC"}
	plainWords = []string{
		"alpha", "beta", "gamma", "delta", "omega", "nova", "zenith", "apex",
		"prime", "core", "flux", "pulse", "vertex", "orbit", "quartz", "onyx",
	}
	phraseAdjectives = []string{
		"Adaptive", "Automated", "Balanced", "Centralized", "Distributed",
		"Integrated", "Modular", "Optimized", "Scalable", "Streamlined",
	}
	phraseNouns = []string{
		"framework", "interface", "protocol", "workflow", "matrix",
		"pipeline", "throughput", "architecture", "paradigm", "toolset",
	}
	phraseQualities = []string{
		"next-generation", "high-performance", "enterprise-grade",
		"mission-critical", "zero-defect", "full-range",
	}
)

// FirstName returns a random given name.
func (c *Context) FirstName() string {
	return Choice(c, firstNames)
}

// LastName returns a random family name.
func (c *Context) LastName() string {
	return Choice(c, lastNames)
}

// FullName returns a random "First Last" name.
func (c *Context) FullName() string {
	return c.FirstName() + " " + c.LastName()
}

// Email returns an address-shaped string derived from the given names.
func (c *Context) Email(first, last string) string {
	return strings.ToLower(first) + "." + strings.ToLower(last) + "@" + Choice(c, emailDomains)
}

// RandomEmail returns an address-shaped string with random name parts.
func (c *Context) RandomEmail() string {
	return c.Email(c.FirstName(), c.LastName())
}

// Phone returns a NANP-shaped phone number string.
func (c *Context) Phone() string {
	return sample.FormatValue(c.IntBetween(200, 999)) + "-" +
		sample.FormatValue(c.IntBetween(200, 999)) + "-" +
		sample.FormatValue(c.IntBetween(1000, 9999))
}

// Address returns a single-line street address.
func (c *Context) Address() string {
	return sample.FormatValue(c.IntBetween(1, 9999)) + " " +
		Choice(c, streetNames) + " " + Choice(c, streetKinds) + ", " +
		Choice(c, cityNames) + ", " + Choice(c, stateCodes)
}

// Word returns a random generic token.
func (c *Context) Word() string {
	return Choice(c, plainWords)
}

// CatchPhrase returns a product-description-shaped phrase.
func (c *Context) CatchPhrase() string {
	return Choice(c, phraseAdjectives) + " " + Choice(c, phraseQualities) + " " + Choice(c, phraseNouns)
}

// DateBetween returns a random calendar date in the closed interval
// [start, end], truncated to midnight UTC.
func (c *Context) DateBetween(start, end time.Time) time.Time {
	if !end.After(start) {
		return truncateToDay(start)
	}
	days := int(end.Sub(start).Hours() / 24)
	return truncateToDay(start.AddDate(0, 0, c.IntBetween(0, days)))
}

// DaysAgo returns the date n days before today, truncated to midnight UTC.
func DaysAgo(n int) time.Time {
	return truncateToDay(time.Now().UTC().AddDate(0, 0, -n))
}

// DaysAhead returns the date n days after today, truncated to midnight UTC.
func DaysAhead(n int) time.Time {
	return truncateToDay(time.Now().UTC().AddDate(0, 0, n))
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
