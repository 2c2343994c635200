package calculation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rpgo/runway-simulator/internal/domain"
	"github.com/shopspring/decimal"
)

var (
	// ErrUnknownRole is returned when a role id is not in the plan
	ErrUnknownRole = errors.New("unknown role")
	// ErrDuplicateRole is returned when adding a role whose id already exists
	ErrDuplicateRole = errors.New("duplicate role id")
)

// RoleChange describes a single write to a HiringPlan
type RoleChange struct {
	RoleID  string
	Field   string // "count", "start_month", "salary", "added", "removed"
	Role    domain.HireRole
	Removed bool
}

// HiringPlan is the shared role collection read by both the hiring surface
// and the scenario comparison. All writes go through its setters; readers get
// copies. It is meant for a single owner and does no locking.
type HiringPlan struct {
	roles       []domain.HireRole
	subscribers []subscriber
	nextSub     int
}

type subscriber struct {
	id int
	fn func(RoleChange)
}

// DefaultRoles returns the standard role templates, all with count zero
func DefaultRoles() []domain.HireRole {
	return []domain.HireRole{
		{ID: "engineer", Title: "Software Engineer", MonthlySalary: decimal.NewFromInt(12000), StartMonth: 1},
		{ID: "designer", Title: "Product Designer", MonthlySalary: decimal.NewFromInt(9500), StartMonth: 1},
		{ID: "sales", Title: "Account Executive", MonthlySalary: decimal.NewFromInt(9000), StartMonth: 1},
		{ID: "marketing", Title: "Marketing Manager", MonthlySalary: decimal.NewFromInt(8500), StartMonth: 1},
		{ID: "support", Title: "Customer Success", MonthlySalary: decimal.NewFromInt(6500), StartMonth: 1},
	}
}

// NewHiringPlan creates a plan seeded with roles. Role ids must be unique.
func NewHiringPlan(roles ...domain.HireRole) (*HiringPlan, error) {
	hp := &HiringPlan{}
	for _, r := range roles {
		if err := hp.AddRole(r); err != nil {
			return nil, err
		}
	}
	return hp, nil
}

// Subscribe registers fn to be called after every write, in subscription
// order. The returned func unsubscribes.
func (hp *HiringPlan) Subscribe(fn func(RoleChange)) func() {
	id := hp.nextSub
	hp.nextSub++
	hp.subscribers = append(hp.subscribers, subscriber{id: id, fn: fn})
	return func() {
		for i, s := range hp.subscribers {
			if s.id == id {
				hp.subscribers = append(hp.subscribers[:i:i], hp.subscribers[i+1:]...)
				return
			}
		}
	}
}

// Roles returns a copy of the roles in insertion order
func (hp *HiringPlan) Roles() []domain.HireRole {
	out := make([]domain.HireRole, len(hp.roles))
	copy(out, hp.roles)
	return out
}

// Role returns the role with the given id
func (hp *HiringPlan) Role(id string) (domain.HireRole, bool) {
	i := hp.indexOf(id)
	if i < 0 {
		return domain.HireRole{}, false
	}
	return hp.roles[i], true
}

// Events derives the hire schedule from the current roles
func (hp *HiringPlan) Events() HireSchedule {
	return BuildEvents(hp.roles)
}

// AddRole appends a new role. Count and start month are normalized the same
// way the setters normalize them.
func (hp *HiringPlan) AddRole(r domain.HireRole) error {
	r.ID = strings.TrimSpace(r.ID)
	if r.ID == "" {
		return fmt.Errorf("role id is required")
	}
	if hp.indexOf(r.ID) >= 0 {
		return fmt.Errorf("%w: %s", ErrDuplicateRole, r.ID)
	}
	r.Count = max(r.Count, 0)
	r.StartMonth = max(r.StartMonth, 1)
	if r.MonthlySalary.IsNegative() {
		r.MonthlySalary = decimal.Zero
	}

	next := make([]domain.HireRole, len(hp.roles), len(hp.roles)+1)
	copy(next, hp.roles)
	hp.roles = append(next, r)
	hp.notify(RoleChange{RoleID: r.ID, Field: "added", Role: r})
	return nil
}

// RemoveRole deletes a role
func (hp *HiringPlan) RemoveRole(id string) error {
	i := hp.indexOf(id)
	if i < 0 {
		return fmt.Errorf("%w: %s", ErrUnknownRole, id)
	}
	removed := hp.roles[i]
	next := make([]domain.HireRole, 0, len(hp.roles)-1)
	next = append(next, hp.roles[:i]...)
	hp.roles = append(next, hp.roles[i+1:]...)
	hp.notify(RoleChange{RoleID: id, Field: "removed", Role: removed, Removed: true})
	return nil
}

// SetRoleCount sets headcount; negative values become zero.
func (hp *HiringPlan) SetRoleCount(id string, count int) error {
	return hp.update(id, "count", func(r *domain.HireRole) { r.Count = max(count, 0) })
}

// SetRoleStartMonth sets the first month the role is paid; values below 1 become 1.
func (hp *HiringPlan) SetRoleStartMonth(id string, month int) error {
	return hp.update(id, "start_month", func(r *domain.HireRole) { r.StartMonth = max(month, 1) })
}

// SetRoleSalary sets the monthly salary; negative values become zero.
func (hp *HiringPlan) SetRoleSalary(id string, salary decimal.Decimal) error {
	return hp.update(id, "salary", func(r *domain.HireRole) {
		if salary.IsNegative() {
			salary = decimal.Zero
		}
		r.MonthlySalary = salary
	})
}

func (hp *HiringPlan) update(id, field string, mutate func(*domain.HireRole)) error {
	i := hp.indexOf(id)
	if i < 0 {
		return fmt.Errorf("%w: %s", ErrUnknownRole, id)
	}
	next := hp.Roles()
	mutate(&next[i])
	hp.roles = next
	hp.notify(RoleChange{RoleID: id, Field: field, Role: next[i]})
	return nil
}

func (hp *HiringPlan) indexOf(id string) int {
	for i, r := range hp.roles {
		if r.ID == id {
			return i
		}
	}
	return -1
}

func (hp *HiringPlan) notify(c RoleChange) {
	for _, s := range hp.subscribers {
		s.fn(c)
	}
}
