package domain

import (
	"github.com/shopspring/decimal"
)

// HireRole describes a position to be filled. Roles are unique by ID.
type HireRole struct {
	ID            string          `yaml:"id" json:"id"`
	Title         string          `yaml:"title" json:"title"`
	MonthlySalary decimal.Decimal `yaml:"monthly_salary" json:"monthly_salary"`
	Count         int             `yaml:"count" json:"count"`
	StartMonth    int             `yaml:"start_month" json:"start_month"`
}

// MonthlyCost is the total monthly cost of the role once active
func (r HireRole) MonthlyCost() decimal.Decimal {
	return r.MonthlySalary.Mul(decimal.NewFromInt(int64(r.Count)))
}

// HireEvent is a derived, read-only record of a role becoming active.
type HireEvent struct {
	Month         int             `json:"month"`
	RoleID        string          `json:"role_id"`
	RoleTitle     string          `json:"role_title"`
	Count         int             `json:"count"`
	MonthlySalary decimal.Decimal `json:"monthly_salary"`
	Color         string          `json:"color"`
}

// MonthlyCost is the recurring cost this event adds from its month onward
func (e HireEvent) MonthlyCost() decimal.Decimal {
	return e.MonthlySalary.Mul(decimal.NewFromInt(int64(e.Count)))
}
