package booking

type AvailabilityInput struct {
	VendorID uint
	Date     string
}

type SlotKey struct {
	VendorID uint
	Date     string
	Time     string
}
