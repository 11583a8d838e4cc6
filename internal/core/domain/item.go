package domain

// Item is a shared catalog record. CreatedBy names the owning user and is
// immutable after creation; every other field is replaced wholesale on update.
type Item struct {
	ID          int     `json:"id" bson:"id"`
	Name        string  `json:"name" bson:"name"`
	Description string  `json:"description" bson:"description"`
	Price       float64 `json:"price" bson:"price"`
	Category    string  `json:"category" bson:"category"`
	Quantity    int     `json:"quantity" bson:"quantity"`
	Image       string  `json:"image" bson:"image"`
	CreatedBy   string  `json:"createdBy" bson:"createdBy"`
}

// CanModify is the ownership predicate for mutating endpoints: the item's
// creator and admins may change it, everyone else is forbidden. Callers must
// resolve the item first so a missing record surfaces as not-found, never as
// forbidden.
func CanModify(p Principal, item Item) bool {
	return p.IsAdmin() || p.Username == item.CreatedBy
}
