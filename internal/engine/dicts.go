package engine

var (
	StationPlaces = []string{
		"Ambala", "Bhopal", "Cuttack", "Dadar", "Erode", "Falna", "Gaya", "Howrah", "Itarsi", "Jhansi",
		"Katni", "Lonavala", "Madgaon", "Nagpur", "Ongole", "Pune", "Rourkela", "Sealdah", "Tenali", "Udaipur",
		"Vapi", "Warangal", "Yelahanka", "Ajmer", "Bareilly", "Guntur", "Kharagpur", "Satna", "Thrissur", "Vadodara",
	}
	StationSuffixes = []string{"Junction", "Central", "Terminus", "Halt", "Cantt", "City", "Road"}

	TrainPrefixes = []string{"Rajdhani", "Shatabdi", "Duronto", "Garib Rath", "Jan Shatabdi", "Sampark Kranti", "Humsafar", "Vande Bharat"}
	TrainSuffixes = []string{"Express", "Mail", "Superfast", "Passenger", "Intercity"}

	CoachPrefixes = []string{"S", "B", "A", "H", "C", "D", "E"}

	Sexes = []string{"M", "F"}
)
