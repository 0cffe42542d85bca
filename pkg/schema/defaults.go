package schema

// DefaultStructure returns the built-in field layout used when a loaded
// configuration omits a section. Callers merge partial structures over this,
// never the reverse.
func DefaultStructure() FormStructure {
	return FormStructure{
		SectionCommon: {
			{ID: "common-first-name", Key: "first_name", Kind: KindShortText, Label: "First Name", Required: true},
			{ID: "common-last-name", Key: "last_name", Kind: KindShortText, Label: "Last Name", Required: true},
			{ID: "common-email", Key: "email", Kind: KindShortText, Label: "Email", Required: true},
			{ID: "common-phone", Key: "phone", Kind: KindShortText, Label: "Phone Number", Required: true},
		},
		BookingTypeDistance: {
			{ID: "distance-pickup", Key: "pickup_location", Kind: KindShortText, Role: RolePickupAddress, Label: "Pickup Location", Required: true},
			{ID: "distance-dropoff", Key: "dropoff_location", Kind: KindShortText, Role: RoleDropoffAddress, Label: "Dropoff Location", Required: true},
			{ID: "distance-datetime", Key: "pickup_datetime", Kind: KindDateTime, Label: "Pickup Date & Time", Required: true},
			{ID: "distance-passengers", Key: "passengers", Kind: KindNumber, Label: "Passengers"},
		},
		BookingTypeHourly: {
			{ID: "hourly-pickup", Key: "pickup_location", Kind: KindShortText, Role: RolePickupAddress, Label: "Pickup Location", Required: true},
			{ID: "hourly-hours", Key: "rental_hours", Kind: KindNumber, Role: RoleRentalHours, Label: "Rental Hours", Required: true},
			{ID: "hourly-datetime", Key: "pickup_datetime", Kind: KindDateTime, Label: "Pickup Date & Time", Required: true},
		},
		BookingTypeFlatRate: {
			{ID: "flat-datetime", Key: "pickup_datetime", Kind: KindDateTime, Label: "Pickup Date & Time", Required: true},
			{ID: "flat-passengers", Key: "passengers", Kind: KindNumber, Label: "Passengers"},
		},
		BookingTypeOnDemand: {
			{ID: "demand-pickup", Key: "pickup_location", Kind: KindShortText, Role: RolePickupAddress, Label: "Pickup Location", Required: true},
			{ID: "demand-dropoff", Key: "dropoff_location", Kind: KindShortText, Role: RoleDropoffAddress, Label: "Dropoff Location", Required: true},
		},
		BookingTypeCharter: {
			{ID: "charter-pickup", Key: "pickup_location", Kind: KindShortText, Role: RolePickupAddress, Label: "Pickup Location", Required: true},
			{ID: "charter-dropoff", Key: "dropoff_location", Kind: KindShortText, Role: RoleDropoffAddress, Label: "Dropoff Location", Required: true},
			{ID: "charter-datetime", Key: "pickup_datetime", Kind: KindDateTime, Label: "Charter Date & Time", Required: true},
			{ID: "charter-occasion", Key: "occasion", Kind: KindDropdown, Label: "Occasion", Options: []string{"Wedding", "Corporate", "Night Out", "Other"}},
		},
		BookingTypeAirportTransfer: {
			{ID: "airport-direction", Key: "transfer_direction", Kind: KindDropdown, Label: "Transfer Direction", Options: []string{"To Airport", "From Airport"}, Required: true},
			{ID: "airport-pickup", Key: "pickup_location", Kind: KindShortText, Role: RolePickupAddress, Label: "Pickup Location", Required: true},
			{ID: "airport-dropoff", Key: "dropoff_location", Kind: KindShortText, Role: RoleDropoffAddress, Label: "Dropoff Location", Required: true},
			{ID: "airport-flight", Key: "flight_number", Kind: KindShortText, Label: "Flight Number",
				Conditional: &Condition{FieldKey: "transfer_direction", Value: "From Airport"}},
			{ID: "airport-datetime", Key: "pickup_datetime", Kind: KindDateTime, Label: "Pickup Date & Time", Required: true},
		},
		BookingTypeEventShuttle: {
			{ID: "shuttle-pickup", Key: "pickup_location", Kind: KindShortText, Role: RolePickupAddress, Label: "Pickup Location", Required: true},
			{ID: "shuttle-dropoff", Key: "dropoff_location", Kind: KindShortText, Role: RoleDropoffAddress, Label: "Event Venue", Required: true},
			{ID: "shuttle-datetime", Key: "pickup_datetime", Kind: KindDateTime, Label: "Shuttle Date & Time", Required: true},
			{ID: "shuttle-notes", Key: "event_details", Kind: KindLongText, Label: "Event Details"},
		},
	}
}
