// Package roster implements an ordered set of participant emails.
package roster

// Roster keeps participant emails unique while preserving signup order.
// It is not synchronized; the catalog store serializes access.
type Roster struct {
	index map[string]struct{}
	order []string
}

// New creates a roster seeded with emails. Duplicates are dropped,
// keeping the first occurrence.
func New(emails ...string) *Roster {
	r := &Roster{
		index: make(map[string]struct{}, len(emails)),
		order: make([]string, 0, len(emails)),
	}
	for _, e := range emails {
		r.Add(e)
	}
	return r
}

// Add appends email to the roster.
// Returns false if the email is already present.
func (r *Roster) Add(email string) bool {
	if _, ok := r.index[email]; ok {
		return false
	}
	r.index[email] = struct{}{}
	r.order = append(r.order, email)
	return true
}

// Remove deletes email from the roster, preserving the order of the rest.
// Returns false if the email is not present.
func (r *Roster) Remove(email string) bool {
	if _, ok := r.index[email]; !ok {
		return false
	}
	delete(r.index, email)
	for i, e := range r.order {
		if e == email {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return true
}

// Contains reports whether email is enrolled.
func (r *Roster) Contains(email string) bool {
	_, ok := r.index[email]
	return ok
}

// Emails returns the enrolled emails in signup order. The slice is a copy.
func (r *Roster) Emails() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// Len returns the number of enrolled emails.
func (r *Roster) Len() int {
	return len(r.order)
}
