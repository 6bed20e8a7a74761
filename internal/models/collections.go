package models

// Collection names. These double as bucket names in the local store and
// as path segments on the mirror server.
const (
	CollectionClients       = "clients"
	CollectionReceipts      = "receipts"
	CollectionExpenses      = "expenses"
	CollectionUsers         = "users"
	CollectionDocuments     = "documents"
	CollectionEmployees     = "employees"
	CollectionAttendance    = "attendance"
	CollectionActivities    = "activities"
	CollectionNotifications = "notifications"
)

// Collection describes one named partition of records. UniqueField, when
// set, is the JSON field name whose value must be unique within the
// collection (enforced by the local store's secondary index).
type Collection struct {
	Name        string
	UniqueField string
}

// registry lists every collection in a fixed order. Full resync and backup
// export iterate this list, so the order is part of their observable output.
var registry = []Collection{
	{Name: CollectionClients, UniqueField: "cnic"},
	{Name: CollectionReceipts},
	{Name: CollectionExpenses},
	{Name: CollectionUsers, UniqueField: "username"},
	{Name: CollectionDocuments},
	{Name: CollectionEmployees},
	{Name: CollectionAttendance},
	{Name: CollectionActivities},
	{Name: CollectionNotifications},
}

// Collections returns the registered collections in declaration order.
func Collections() []Collection {
	out := make([]Collection, len(registry))
	copy(out, registry)
	return out
}

// LookupCollection returns the collection with the given name.
func LookupCollection(name string) (Collection, bool) {
	for _, c := range registry {
		if c.Name == name {
			return c, true
		}
	}
	return Collection{}, false
}
