package utils

import "net/url"

// DirectionsURL builds a Google Maps driving-directions link from an origin
// address to a free-text destination. Pure string building; nothing external
// is called.
func DirectionsURL(origin, destination string) string {
	return "https://maps.google.com/maps/dir/" + url.QueryEscape(origin) + "/" + url.QueryEscape(destination)
}

// ExploreNearbyURL builds a Google Maps search for attractions around an
// address.
func ExploreNearbyURL(address string) string {
	return "https://maps.google.com/maps/search/things+to+do+near+" + url.QueryEscape(address)
}
