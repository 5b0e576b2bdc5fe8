package job

import (
	"math/rand/v2"
	"strconv"
	"time"

	"github.com/honeycarbs/job-board/internal/domain"
)

const (
	SalaryMin = 1000
	SalaryMax = 6000 // exclusive
)

// Decorator generates synthetic attributes for raw posts
type Decorator struct {
	intN  func(n int) int
	clock func() time.Time
}

// NewDecorator builds a Decorator; nil arguments fall back to math/rand/v2 and time.Now
func NewDecorator(intN func(n int) int, clock func() time.Time) *Decorator {
	if intN == nil {
		intN = rand.IntN
	}
	if clock == nil {
		clock = time.Now
	}
	return &Decorator{intN: intN, clock: clock}
}

// Generate draws a fresh set of attributes for one job
func (d *Decorator) Generate(jobID string) domain.Attributes {
	return domain.Attributes{
		JobID:      jobID,
		Salary:     FormatSalary(SalaryMin + d.intN(SalaryMax-SalaryMin)),
		Category:   domain.Categories[d.intN(len(domain.Categories))],
		Location:   domain.Locations[d.intN(len(domain.Locations))],
		PostedDate: d.clock().UTC().Format(domain.PostedDateLayout),
	}
}

// FormatSalary renders an amount with the currency prefix
func FormatSalary(amount int) string {
	return "$" + strconv.Itoa(amount)
}
