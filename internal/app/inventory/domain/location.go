package domain

// Store location codes. Products and rentals always carry one of these.
const (
	LocationCarlton   = "CAR"
	LocationSydney    = "SYD"
	LocationMelbourne = "MEL"
	LocationBrisbane  = "BRI"
)

var storeLocations = map[string]bool{
	LocationCarlton:   true,
	LocationSydney:    true,
	LocationMelbourne: true,
	LocationBrisbane:  true,
}

// ValidateStoreLocation checks the code against the fixed location set.
func ValidateStoreLocation(code string) error {
	if !storeLocations[code] {
		return ErrInvalidStoreLocation
	}
	return nil
}
