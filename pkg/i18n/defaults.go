package i18n

// Default returns the built-in English catalog covering the wizard chrome.
// Loaded configurations can layer additional locales over it with Merge.
func Default() Catalog {
	return Catalog{
		"en": {
			"step.trip_details":    "Trip Details",
			"step.vehicle":         "Choose Your Vehicle",
			"step.passenger":       "Passenger Details",
			"step.summary":         "Summary",
			"step.confirmation":    "Booking Confirmed",
			"progress.trip":        "Trip",
			"progress.vehicle":     "Vehicle",
			"progress.passenger":   "Passenger",
			"progress.summary":     "Summary",
			"button.next":          "Next",
			"button.back":          "Back",
			"button.book_now":      "Book Now",
			"button.try_again":     "Try Again",
			"button.edit":          "Edit",
			"button.add_waypoint":  "Add Waypoint",
			"button.remove":        "Remove",
			"select.placeholder":   "Select an option",
			"label.optional":       "(Optional)",
			"placeholder.enter":    "Enter",
			"validation.required":  "Please fill in all required fields.",
			"validation.vehicle":   "Please select a vehicle.",
			"fare.estimated":       "Estimated fare",
			"round_trip.label":     "Round trip",
			"datetime.date":        "Select date",
			"datetime.time":        "Select time",
			"waypoint.placeholder": "Waypoint address",
			"summary.booking_type": "Booking type",
			"summary.waypoint":     "Waypoint",
			"summary.vehicle":      "Vehicle",
			"payment.credit_card":  "Credit Card",
			"payment.paypal":       "PayPal",
			"payment.cash":         "Cash",
			"extras.title":         "Extra Options",
			"notes.title":          "Notes",
			"payment.title":        "Payment Method",
			"language.label":       "Language",
			"route.label":          "Route",
			"confirmation.message": "Thank you! Your booking has been received.",
			"submit.failed":        "Something went wrong while submitting your booking.",
		},
	}
}
