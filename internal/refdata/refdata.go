// Package refdata holds the static state and city master data used by
// address forms. The data is loaded once as package data and never
// mutated; accessors hand out copies.
package refdata

// stateNames lists every selectable state, in display order.
var stateNames = []string{
	"Andhra Pradesh",
	"Arunachal Pradesh",
	"Assam",
	"Bihar",
	"Chhattisgarh",
	"Goa",
	"Gujarat",
	"Haryana",
	"Himachal Pradesh",
	"Jharkhand",
	"Karnataka",
	"Kerala",
	"Madhya Pradesh",
	"Maharashtra",
	"Manipur",
	"Meghalaya",
	"Mizoram",
	"Nagaland",
	"Odisha",
	"Punjab",
	"Rajasthan",
	"Sikkim",
	"Tamil Nadu",
	"Telangana",
	"Tripura",
	"Uttar Pradesh",
	"Uttarakhand",
	"West Bengal",
}

// citiesByState maps each state to its selectable cities, in display order.
var citiesByState = map[string][]string{
	"Andhra Pradesh":    {"Visakhapatnam", "Vijayawada", "Guntur", "Nellore"},
	"Arunachal Pradesh": {"Itanagar", "Naharlagun", "Pasighat", "Namsai"},
	"Assam":             {"Guwahati", "Silchar", "Dibrugarh", "Jorhat"},
	"Bihar":             {"Patna", "Gaya", "Bhagalpur", "Muzaffarpur"},
	"Chhattisgarh":      {"Raipur", "Bilaspur", "Durg", "Bhilai"},
	"Goa":               {"Panaji", "Margao", "Vasco da Gama", "Mapusa"},
	"Gujarat":           {"Ahmedabad", "Surat", "Vadodara", "Rajkot"},
	"Haryana":           {"Faridabad", "Gurgaon", "Panipat", "Ambala"},
	"Himachal Pradesh":  {"Shimla", "Mandi", "Solan", "Dharamshala"},
	"Jharkhand":         {"Ranchi", "Jamshedpur", "Dhanbad", "Bokaro"},
	"Karnataka":         {"Bangalore", "Mysore", "Hubli", "Mangalore"},
	"Kerala":            {"Thiruvananthapuram", "Kochi", "Kozhikode", "Thrissur"},
	"Madhya Pradesh":    {"Indore", "Bhopal", "Jabalpur", "Gwalior"},
	"Maharashtra":       {"Mumbai", "Pune", "Nagpur", "Nashik"},
	"Manipur":           {"Imphal", "Thoubal", "Bishnupur", "Ukhrul"},
	"Meghalaya":         {"Shillong", "Tura", "Jowai", "Nongstoin"},
	"Mizoram":           {"Aizawl", "Lunglei", "Saiha", "Champhai"},
	"Nagaland":          {"Kohima", "Dimapur", "Mokokchung", "Tuensang"},
	"Odisha":            {"Bhubaneswar", "Cuttack", "Rourkela", "Berhampur"},
	"Punjab":            {"Ludhiana", "Amritsar", "Jalandhar", "Patiala"},
	"Rajasthan":         {"Jaipur", "Jodhpur", "Udaipur", "Kota"},
	"Sikkim":            {"Gangtok", "Namchi", "Mangan", "Gyalshing"},
	"Tamil Nadu":        {"Chennai", "Coimbatore", "Madurai", "Tiruchirappalli"},
	"Telangana":         {"Hyderabad", "Warangal", "Nizamabad", "Karimnagar"},
	"Tripura":           {"Agartala", "Udaipur", "Dharmanagar", "Kailashahar"},
	"Uttar Pradesh":     {"Lucknow", "Kanpur", "Agra", "Varanasi"},
	"Uttarakhand":       {"Dehradun", "Haridwar", "Roorkee", "Haldwani"},
	"West Bengal":       {"Kolkata", "Howrah", "Durgapur", "Asansol"},
}

// States returns the full state list in display order.
func States() []string {
	out := make([]string, len(stateNames))
	copy(out, stateNames)
	return out
}

// Cities returns the cities for the given state in display order, or
// nil when the state is unknown.
func Cities(state string) []string {
	cities, ok := citiesByState[state]
	if !ok {
		return nil
	}
	out := make([]string, len(cities))
	copy(out, cities)
	return out
}

// ValidState reports whether state is a known state name.
func ValidState(state string) bool {
	_, ok := citiesByState[state]
	return ok
}

// ValidCity reports whether city belongs to the given state.
func ValidCity(state, city string) bool {
	for _, c := range citiesByState[state] {
		if c == city {
			return true
		}
	}
	return false
}
