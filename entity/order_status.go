package entity

// Order statuses. The status field is free to move between any of these
// values; there is no enforced transition graph.
const (
	StatusPending   = "pending"
	StatusPreparing = "preparing"
	StatusDelivered = "delivered"
	StatusCanceled  = "canceled"
)

var OrderStatuses = []string{StatusPending, StatusPreparing, StatusDelivered, StatusCanceled}

func IsValidOrderStatus(s string) bool {
	for _, v := range OrderStatuses {
		if s == v {
			return true
		}
	}
	return false
}
