package generator

import (
	"fmt"

	"github.com/tabsynth/tabsynth/pkg/intent"
	"github.com/tabsynth/tabsynth/pkg/sample"
	"github.com/tabsynth/tabsynth/pkg/synth"
)

func init() {
	_ = Register(intent.TypeEmployeeRecords, func() Generator { return &EmployeeGenerator{} })
}

var employeeColumns = []string{
	"employee_id", "first_name", "last_name", "email", "department",
	"job_title", "salary", "hire_date", "is_manager", "office",
}

var (
	departments = []string{"Engineering", "Marketing", "Sales", "HR", "Finance", "Operations"}
	jobLevels   = []string{"Associate", "Senior", "Staff", "Principal", "Lead"}
	jobRoles    = []string{"Engineer", "Analyst", "Specialist", "Coordinator", "Consultant"}
)

// EmployeeGenerator produces HR-shaped employee rows.
type EmployeeGenerator struct{}

// Generate produces count employee rows. Roughly one in five employees is a
// manager; hire dates fall within the last ten years.
func (g *EmployeeGenerator) Generate(ctx *synth.Context, count int) (*sample.Table, error) {
	table := sample.New(employeeColumns)

	for i := 0; i < count; i++ {
		first := ctx.FirstName()
		last := ctx.LastName()

		table.AppendRow(sample.Row{
			"employee_id": fmt.Sprintf("EMP-%05d", i+1),
			"first_name":  first,
			"last_name":   last,
			"email":       ctx.Email(first, last),
			"department":  synth.Choice(ctx, departments),
			"job_title":   synth.Choice(ctx, jobLevels) + " " + synth.Choice(ctx, jobRoles),
			"salary":      ctx.IntBetween(40000, 180000),
			"hire_date":   ctx.DateBetween(synth.DaysAgo(3650), synth.DaysAgo(0)),
			"is_manager":  ctx.Bool(0.2),
			"office":      ctx.Address(),
		})
	}

	return table, nil
}
