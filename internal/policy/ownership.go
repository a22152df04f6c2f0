package policy

// Action names a mutation being authorized.
type Action string

const (
	ActionView   Action = "view"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
)

// Ownable is implemented by resources that have an owning user.
type Ownable interface {
	OwnerID() uint
}

// Policy decides whether a user may perform an action on a resource.
type Policy interface {
	Can(userID uint, action Action, resource any) bool
}

// OwnershipPolicy allows an action only to the resource owner.
// Works with any model that implements Ownable.
type OwnershipPolicy struct{}

// NewOwnershipPolicy creates a new ownership policy.
func NewOwnershipPolicy() *OwnershipPolicy {
	return &OwnershipPolicy{}
}

// Can checks if the user owns the resource. A nil resource (list/create)
// is always allowed; a resource that does not implement Ownable is denied
// so nothing slips through without an ownership check.
func (p *OwnershipPolicy) Can(userID uint, _ Action, resource any) bool {
	if resource == nil {
		return true
	}
	ownable, ok := resource.(Ownable)
	if !ok {
		return false
	}
	return ownable.OwnerID() == userID
}

// StaffBypassPolicy wraps another policy and always allows staff users,
// whatever the inner policy says. Used where staff may act on any
// resource regardless of ownership.
type StaffBypassPolicy struct {
	inner       Policy
	isStaffFunc func(userID uint) bool
}

// NewStaffBypassPolicy creates a policy that bypasses ownership for staff.
func NewStaffBypassPolicy(inner Policy, isStaffFunc func(userID uint) bool) *StaffBypassPolicy {
	return &StaffBypassPolicy{
		inner:       inner,
		isStaffFunc: isStaffFunc,
	}
}

// Can checks if the user is staff (bypass) or falls back to the inner policy.
func (p *StaffBypassPolicy) Can(userID uint, action Action, resource any) bool {
	if p.isStaffFunc(userID) {
		return true
	}
	return p.inner.Can(userID, action, resource)
}
