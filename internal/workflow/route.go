package workflow

import "github.com/JaimeStill/freightdesk/internal/category"

var routing = map[category.Category]Handler{
	category.Booking:    HandleBooking,
	category.Tracking:   HandleTracking,
	category.Customer:   HandleCustomer,
	category.Documents:  HandleDocuments,
	category.Management: HandleManagement,
}

// Route returns the handler for c. Unknown categories route to the
// default category's handler.
func Route(c category.Category) Handler {
	if h, ok := routing[c]; ok {
		return h
	}
	return routing[category.Default]
}
