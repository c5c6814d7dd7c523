package infra

import (
	"teithio/internal/models/db_models"
)

func str(s string) *string { return &s }

func num(n int) *int { return &n }

// seed loads the fixed July holiday dataset. Itinerary days, locations and
// restaurants are never mutated after this point; milestones are toggled via
// the API and mood ratings start empty.
func (s *MemStore) seed() {
	for _, day := range seedItinerary() {
		day := day
		s.Itinerary.Insert(func(id int) db_models.ItineraryDay {
			day.ID = id
			return day
		})
	}
	for _, loc := range seedLocations() {
		loc := loc
		s.Locations.Insert(func(id int) db_models.Location {
			loc.ID = id
			return loc
		})
	}
	for _, r := range seedRestaurants() {
		r := r
		s.Restaurants.Insert(func(id int) db_models.Restaurant {
			r.ID = id
			return r
		})
	}
	for _, p := range seedProgress() {
		p := p
		s.Progress.Insert(func(id int) db_models.TravelProgress {
			p.ID = id
			return p
		})
	}
}

func seedItinerary() []db_models.ItineraryDay {
	return []db_models.ItineraryDay{
		{
			Date: "Friday, 11 July", Day: 11, Title: "Tresaith Beach Day",
			Weather: "Partly Sunny", Temperature: 25,
			Activities: []db_models.Activity{
				{Type: "arrival", Description: "Arrive & settle at Gwalia Falls", MapsURL: str("https://maps.google.com/maps?q=Gwalia+Falls+Caravan+Park+Tresaith+SA43+2JL")},
				{Type: "beach", Description: "Relax and swim at Tresaith Beach, explore waterfall", MapsURL: str("https://maps.google.com/maps?q=Tresaith+Beach")},
				{Type: "optional", Description: "Optional coastal walk to Aberporth Beach", MapsURL: str("https://maps.google.com/maps?q=Aberporth+Beach")},
			},
			Dining: []db_models.DiningOption{
				{Type: "lunch", Name: "Picnic/local snacks", Location: "Tresaith"},
				{Type: "dinner", Name: "The Ship Inn", Location: "Tresaith", Description: str("seafood pub with sea views")},
			},
		},
		{
			Date: "Saturday, 12 July", Day: 12, Title: "Mwnt Beach + Dolphin Spotting",
			Weather: "Hot & Sunny", Temperature: 28,
			Activities: []db_models.Activity{
				{Type: "beach", Description: "Day at Mwnt Beach – swim, spot dolphins", MapsURL: str("https://maps.google.com/maps?q=Mwnt+Beach")},
				{Type: "hiking", Description: "Hike to Mwnt Chapel for views over Cardigan Bay", MapsURL: str("https://maps.google.com/maps?q=Mwnt+Chapel")},
			},
			Dining: []db_models.DiningOption{
				{Type: "lunch", Name: "Crwst Café", Location: "Cardigan", Description: str("Award-winning café")},
				{Type: "dinner", Name: "Pizzatipi", Location: "Cardigan", Description: str("Wood-fired pizzas")},
			},
		},
		{
			Date: "Sunday, 13 July", Day: 13, Title: "Penbryn Beach Day",
			Weather: "Very Hot", Temperature: 29,
			Activities: []db_models.Activity{
				{Type: "beach", Description: "Chill at Penbryn Beach – long sandy shore, sea cave", MapsURL: str("https://maps.google.com/maps?q=Penbryn+Beach")},
				{Type: "cafe", Description: "Ice cream at Caffi Penbryn café above beach", MapsURL: str("https://maps.google.com/maps?q=Caffi+Penbryn")},
			},
			Dining: []db_models.DiningOption{
				{Type: "lunch", Name: "Caffi Penbryn", Location: "Penbryn", Description: str("National Trust café")},
				{Type: "dinner", Name: "New Golden Dragon Chinese Takeaway", Location: "Cardigan", Description: str("Chinese takeaway")},
			},
		},
		{
			Date: "Monday, 14 July", Day: 14, Title: "Ynyslas Sand Dunes & Hiking",
			Weather: "Showers early, clearing", Temperature: 23,
			Activities: []db_models.Activity{
				{Type: "nature", Description: "Walk the boardwalks through Ynyslas Sand Dunes", MapsURL: str("https://maps.google.com/maps?q=Ynyslas+Sand+Dunes")},
				{Type: "hiking", Description: "Hike nearby trails with sea & estuary views", MapsURL: str("https://maps.google.com/maps?q=Ynyslas+Nature+Reserve")},
			},
			Dining: []db_models.DiningOption{
				{Type: "lunch", Name: "Local café or packed lunch near dunes", Location: "Ynyslas", Description: str("Light lunch")},
				{Type: "dinner", Name: "Yr Hen Printworks", Location: "Cardigan", Description: str("small plates & creative mains")},
			},
		},
		{
			Date: "Tuesday, 15 July", Day: 15, Title: "Wildlife & Castle Ruins",
			Weather: "Showers", Temperature: 20,
			Activities: []db_models.Activity{
				{Type: "wildlife", Description: "Explore Welsh Wildlife Centre, Teifi Marshes", MapsURL: str("https://maps.google.com/maps?q=Welsh+Wildlife+Centre+Teifi+Marshes")},
				{Type: "castle", Description: "Visit Cilgerran Castle", MapsURL: str("https://maps.google.com/maps?q=Cilgerran+Castle")},
			},
			Dining: []db_models.DiningOption{
				{Type: "lunch", Name: "Crowes Café", Location: "Cardigan", Description: str("Local favorite")},
				{Type: "dinner", Name: "Bryn Berwyn Restaurant", Location: "Cardigan", Description: str("modern countryside dining")},
			},
		},
		{
			Date: "Wednesday, 16 July", Day: 16, Title: "Constitution Hill Sightseeing (Aberystwyth)",
			Weather: "Cloudy with light rain", Temperature: 21,
			Activities: []db_models.Activity{
				{Type: "hiking", Description: "Walk Constitution Hill – views over Aberystwyth & bay", MapsURL: str("https://maps.google.com/maps?q=Constitution+Hill+Aberystwyth")},
				{Type: "attraction", Description: "Visit Camera Obscura (if weather permits)", MapsURL: str("https://maps.google.com/maps?q=Camera+Obscura+Aberystwyth")},
			},
			Dining: []db_models.DiningOption{
				{Type: "lunch", Name: "The Glengower Hotel", Location: "Aberystwyth", Description: str("Seafront dining")},
				{Type: "dinner", Name: "Fisherman's Rest", Location: "Cardigan", Description: str("comfort food & seafood")},
			},
		},
		{
			Date: "Thursday, 17 July", Day: 17, Title: "Llangrannog Village & Beach",
			Weather: "Cloudy but dry", Temperature: 22,
			Activities: []db_models.Activity{
				{Type: "beach", Description: "Visit Llangrannog Beach", MapsURL: str("https://maps.google.com/maps?q=Llangrannog+Beach")},
				{Type: "hiking", Description: "Hike to Carreg Bica sea stack & cliff views", MapsURL: str("https://maps.google.com/maps?q=Carreg+Bica+Llangrannog")},
			},
			Dining: []db_models.DiningOption{
				{Type: "lunch", Name: "The Beach Hut Café", Location: "Llangrannog", Description: str("Beachside café")},
				{Type: "dinner", Name: "Harbourmaster Hotel", Location: "Aberaeron", Description: str("Premium seafood dining")},
			},
		},
		{
			Date: "Friday, 18 July", Day: 18, Title: "Farewell Beach & Departure",
			Weather: "Light Rain", Temperature: 20,
			Activities: []db_models.Activity{
				{Type: "beach", Description: "Final stroll on Tresaith or Aberporth Beach", MapsURL: str("https://maps.google.com/maps?q=Tresaith+Beach")},
				{Type: "sightseeing", Description: "Quick stop in Aberaeron for last views & snacks", MapsURL: str("https://maps.google.com/maps?q=Aberaeron")},
			},
			Dining: []db_models.DiningOption{
				{Type: "lunch", Name: "Bay View Restaurant", Location: "Aberporth", Description: str("Farewell meal with coastal views")},
			},
		},
	}
}

func seedLocations() []db_models.Location {
	return []db_models.Location{
		{Name: "Tresaith Beach", Category: db_models.LocationCategoryBeach, Description: str("Famous waterfall beach"), MapsURL: "https://maps.google.com/maps?q=Tresaith+Beach"},
		{Name: "Penbryn Beach", Category: db_models.LocationCategoryBeach, Description: str("National Trust beach"), MapsURL: "https://maps.google.com/maps?q=Penbryn+Beach"},
		{Name: "Mwnt Beach", Category: db_models.LocationCategoryBeach, Description: str("Grassy headland views"), MapsURL: "https://maps.google.com/maps?q=Mwnt+Beach"},
		{Name: "Aberporth Beach", Category: db_models.LocationCategoryBeach, Description: str("Coastal village beach"), MapsURL: "https://maps.google.com/maps?q=Aberporth+Beach"},
		{Name: "Cardigan Castle", Category: db_models.LocationCategoryHistoric, Description: str("Medieval castle with gardens"), MapsURL: "https://maps.google.com/maps?q=Cardigan+Castle"},
		{Name: "Cilgerran Castle", Category: db_models.LocationCategoryHistoric, Description: str("Castle ruins with views"), MapsURL: "https://maps.google.com/maps?q=Cilgerran+Castle"},
		{Name: "Mwnt Chapel", Category: db_models.LocationCategoryHistoric, Description: str("Ancient chapel"), MapsURL: "https://maps.google.com/maps?q=Mwnt+Chapel"},
		{Name: "Welsh Wildlife Centre", Category: db_models.LocationCategoryNature, Description: str("Teifi Marshes nature reserve"), MapsURL: "https://maps.google.com/maps?q=Welsh+Wildlife+Centre"},
		{Name: "Ynyslas Sand Dunes", Category: db_models.LocationCategoryNature, Description: str("Boardwalk through dunes"), MapsURL: "https://maps.google.com/maps?q=Ynyslas+Sand+Dunes"},
		{Name: "Cardigan Island Farm", Category: db_models.LocationCategoryNature, Description: str("Coastal farm park"), MapsURL: "https://maps.google.com/maps?q=Cardigan+Island+Farm"},
		{Name: "Cardigan Town", Category: db_models.LocationCategoryTown, Description: str("Historic market town"), MapsURL: "https://maps.google.com/maps?q=Cardigan+Wales"},
		{Name: "Aberystwyth", Category: db_models.LocationCategoryTown, Description: str("University town"), MapsURL: "https://maps.google.com/maps?q=Aberystwyth"},
		{Name: "New Quay", Category: db_models.LocationCategoryTown, Description: str("Harbour town"), MapsURL: "https://maps.google.com/maps?q=New+Quay+Wales"},
	}
}

func seedRestaurants() []db_models.Restaurant {
	return []db_models.Restaurant{
		{Name: "The Ship Inn", Category: "seafood", Location: "Tresaith", Description: str("Great seafood pub with sea views"), MealType: str("dinner"), MapsURL: str("https://maps.google.com/maps?q=The+Ship+Inn+Tresaith")},
		{Name: "Fisherman's Rest", Category: "seafood", Location: "Cardigan", Description: str("Comfort food & fresh seafood"), MealType: str("dinner"), MapsURL: str("https://maps.google.com/maps?q=Fisherman's+Rest+Cardigan")},
		{Name: "Harbourmaster Hotel", Category: "seafood", Location: "Aberaeron", Description: str("Premium seafood dining"), MealType: str("dinner"), MapsURL: str("https://maps.google.com/maps?q=Harbourmaster+Hotel+Aberaeron")},
		{Name: "Crwst Café", Category: "cafe", Location: "Cardigan", Description: str("Award-winning brunch & doughnuts"), MealType: str("lunch"), MapsURL: str("https://maps.google.com/maps?q=Crwst+Café+Cardigan")},
		{Name: "Caffi Penbryn", Category: "cafe", Location: "Penbryn", Description: str("National Trust café with coastal views"), MealType: str("lunch"), MapsURL: str("https://maps.google.com/maps?q=Caffi+Penbryn")},
		{Name: "Crowes Café", Category: "cafe", Location: "Cardigan", Description: str("Local favorite"), MealType: str("lunch"), MapsURL: str("https://maps.google.com/maps?q=Crowes+Café+Cardigan")},
		{Name: "Yr Hen Printworks", Category: "fine-dining", Location: "Cardigan", Description: str("Small plates & creative mains"), MealType: str("dinner"), MapsURL: str("https://maps.google.com/maps?q=Yr+Hen+Printworks+Cardigan")},
		{Name: "Bryn Berwyn Restaurant", Category: "fine-dining", Location: "Cardigan", Description: str("Modern countryside dining"), MealType: str("dinner"), MapsURL: str("https://maps.google.com/maps?q=Bryn+Berwyn+Restaurant+Cardigan")},
		{Name: "Pizzatipi", Category: "casual", Location: "Cardigan", Description: str("Wood-fired pizzas"), MealType: str("dinner"), MapsURL: str("https://maps.google.com/maps?q=Pizzatipi+Cardigan")},
		{Name: "The Glengower Hotel", Category: "hotel", Location: "Aberystwyth", Description: str("Seafront dining"), MealType: str("lunch"), MapsURL: str("https://maps.google.com/maps?q=The+Glengower+Hotel+Aberystwyth")},
		{Name: "Bay View Restaurant", Category: "hotel", Location: "Aberporth", Description: str("Coastal views"), MealType: str("lunch"), MapsURL: str("https://maps.google.com/maps?q=Bay+View+Restaurant+Aberporth")},
		{Name: "New Golden Dragon Chinese Takeaway", Category: "takeaway", Location: "Cardigan", Description: str("Chinese takeaway"), MealType: str("dinner"), MapsURL: str("https://maps.google.com/maps?q=New+Golden+Dragon+Chinese+Takeaway+Cardigan")},
		{Name: "The Beach Hut Café", Category: "cafe", Location: "Llangrannog", Description: str("Beachside café"), MealType: str("lunch"), MapsURL: str("https://maps.google.com/maps?q=The+Beach+Hut+Café+Llangrannog")},
	}
}

func seedProgress() []db_models.TravelProgress {
	return []db_models.TravelProgress{
		{MilestoneID: "booking", Name: "Booked accommodation", Description: str("Gwalia Falls Caravan Park confirmed"), IsCompleted: str("true"), CompletedAt: str("2024-07-01T10:00:00Z"), Category: db_models.ProgressCategoryPlanning, Icon: "calendar", Order: 1},
		{MilestoneID: "packing", Name: "Packed for trip", Description: str("Clothes, toiletries, and beach gear"), IsCompleted: str("false"), Category: db_models.ProgressCategoryPlanning, Icon: "map", Order: 2},
		{MilestoneID: "travel", Name: "Travel to Wales", Description: str("Journey to Tresaith"), IsCompleted: str("false"), Day: num(11), Category: db_models.ProgressCategoryTravel, Icon: "route", Order: 3},
		{MilestoneID: "checkin", Name: "Check in at Gwalia Falls", Description: str("Settle into accommodation"), IsCompleted: str("false"), Day: num(11), Category: db_models.ProgressCategoryTravel, Icon: "map", Order: 4},
		{MilestoneID: "beach1", Name: "First beach day", Description: str("Tresaith Beach exploration"), IsCompleted: str("false"), Day: num(11), Category: db_models.ProgressCategoryActivities, Icon: "star", Order: 5},
		{MilestoneID: "cardigan", Name: "Visit Cardigan", Description: str("Explore historic market town"), IsCompleted: str("false"), Day: num(12), Category: db_models.ProgressCategoryActivities, Icon: "star", Order: 6},
		{MilestoneID: "new_quay", Name: "New Quay dolphin watching", Description: str("Boat trip to see dolphins"), IsCompleted: str("false"), Day: num(13), Category: db_models.ProgressCategoryActivities, Icon: "star", Order: 7},
		{MilestoneID: "aberaeron", Name: "Aberaeron visit", Description: str("Colorful harbour town"), IsCompleted: str("false"), Day: num(14), Category: db_models.ProgressCategoryActivities, Icon: "star", Order: 8},
		{MilestoneID: "aberystwyth", Name: "Aberystwyth day trip", Description: str("University town and pier"), IsCompleted: str("false"), Day: num(15), Category: db_models.ProgressCategoryActivities, Icon: "star", Order: 9},
		{MilestoneID: "seafood", Name: "Try local seafood", Description: str("Dine at coastal restaurants"), IsCompleted: str("false"), Category: db_models.ProgressCategoryDining, Icon: "utensils", Order: 10},
		{MilestoneID: "sunset", Name: "Watch sunset from beach", Description: str("Evening at Tresaith Beach"), IsCompleted: str("false"), Category: db_models.ProgressCategoryActivities, Icon: "camera", Order: 11},
		{MilestoneID: "checkout", Name: "Check out & travel home", Description: str("Final day departure"), IsCompleted: str("false"), Day: num(18), Category: db_models.ProgressCategoryTravel, Icon: "route", Order: 12},
	}
}
