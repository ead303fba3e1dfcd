package dashboard

import "fmt"

type Collection string

const (
	CollectionUsers      Collection = "users"
	CollectionSalon      Collection = "salon"
	CollectionCategories Collection = "categories"
	CollectionServices   Collection = "services"
	CollectionBookings   Collection = "bookings"
	CollectionPayments   Collection = "payments"
)

// Degradation records a secondary collection that was replaced by an
// empty substitute.
type Degradation struct {
	Collection Collection `json:"collection"`
	Reason     string     `json:"reason"`
}

func (d Degradation) String() string {
	return fmt.Sprintf("%s: %s", d.Collection, d.Reason)
}

// Outcome is the settled result of one fetch: either the collection or a
// degradation with an empty collection in its place.
type Outcome[T any] struct {
	Items    []T
	Degraded *Degradation
}

func (o Outcome[T]) OK() bool { return o.Degraded == nil }

// Settle converts a fetch result into an Outcome. A failed fetch never
// yields a nil slice.
func Settle[T any](c Collection, items []T, err error) Outcome[T] {
	if err != nil {
		return Outcome[T]{
			Items:    []T{},
			Degraded: &Degradation{Collection: c, Reason: err.Error()},
		}
	}
	if items == nil {
		items = []T{}
	}
	return Outcome[T]{Items: items}
}

// Degradations collects the non-nil degradations in argument order.
func Degradations(ds ...*Degradation) []Degradation {
	out := make([]Degradation, 0, len(ds))
	for _, d := range ds {
		if d != nil {
			out = append(out, *d)
		}
	}
	return out
}
