package routes

func st(name string, lat, lon float64) Stop { return Stop{Name: name, Lat: lat, Lon: lon} }

// railTramStops lists the ordered stops for each train line and tram line,
// from the city end outward. Ordering matters: next-stop resolution walks the
// list toward or away from the city.
var railTramStops = map[string][]Stop{
	"Belair": {
		st("Adelaide Railway Station", -34.9211, 138.5958),
		st("Mile End", -34.925, 138.58),
		st("Adelaide Showground", -34.945, 138.585),
		st("Goodwood", -34.952, 138.588),
		st("Clarence Park", -34.965, 138.595),
		st("Emerson", -34.97, 138.60),
		st("Unley", -34.955, 138.60),
		st("Mitcham", -34.965, 138.61),
		st("Torrens Park", -34.97, 138.61),
		st("Lynton", -34.975, 138.615),
		st("Eden Hills", -35.00, 138.62),
		st("Blackwood", -35.02, 138.62),
		st("Glenalta", -35.025, 138.625),
		st("Pinera", -35.03, 138.63),
		st("Belair", -35.01, 138.65),
	},
	"Gawler": {
		st("Adelaide Railway Station", -34.9211, 138.5958),
		st("Mawson Lakes", -34.82, 138.61),
		st("Green Fields", -34.8, 138.62),
		st("Parafield", -34.79, 138.63),
		st("Parafield Gardens", -34.78, 138.64),
		st("Salisbury", -34.76, 138.65),
		st("Elizabeth", -34.72, 138.67),
		st("Gawler Central", -34.595, 138.745),
	},
	"Seaford": {
		st("Adelaide Railway Station", -34.9211, 138.5958),
		st("Mile End", -34.925, 138.58),
		st("Adelaide Showground", -34.945, 138.585),
		st("Goodwood", -34.952, 138.588),
		st("Clarence Park", -34.965, 138.595),
		st("Emerson", -34.97, 138.60),
		st("Unley", -34.955, 138.60),
		st("Mitcham", -34.965, 138.61),
		st("Torrens Park", -34.97, 138.61),
		st("Marino", -35.05, 138.52),
		st("Hallett Cove", -35.08, 138.51),
		st("Noarlunga Centre", -35.14, 138.49),
		st("Seaford", -35.19, 138.47),
	},
	"Flinders": {
		st("Adelaide Railway Station", -34.9211, 138.5958),
		st("Mile End", -34.925, 138.58),
		st("Mitchell Park", -35.01, 138.565),
		st("Tonsley", -35.02, 138.57),
		st("Flinders", -35.02, 138.57),
	},
	"Outer Harbor": {
		st("Adelaide Railway Station", -34.9211, 138.5958),
		st("Port Adelaide", -34.845, 138.505),
		st("Glanville", -34.855, 138.495),
		st("Ethelton", -34.865, 138.485),
		st("Largs", -34.875, 138.475),
		st("Outer Harbor", -34.885, 138.465),
	},
	"Grange": {
		st("Adelaide Railway Station", -34.9211, 138.5958),
		st("Cheltenham", -34.87, 138.525),
		st("Albert Park", -34.865, 138.51),
		st("Seaton Park", -34.91, 138.52),
		st("West Lakes", -34.87, 138.49),
		st("Grange", -34.905, 138.49),
	},
	"Glenelg": {
		st("Entertainment Centre", -34.906, 138.588),
		st("City West", -34.9225, 138.585),
		st("Victoria Square", -34.9285, 138.598),
		st("King William Street", -34.925, 138.6),
		st("Pulteney Street", -34.92, 138.605),
		st("Rundle Mall", -34.9218, 138.6009),
		st("South Terrace", -34.935, 138.595),
		st("Greenhill Road", -34.94, 138.59),
		st("Keswick", -34.945, 138.585),
		st("Glengowrie", -34.965, 138.53),
		st("Morphettville", -34.975, 138.52),
		st("Glenelg", -34.9807, 138.512),
	},
	"Botanic": {
		st("Festival Plaza", -34.906, 138.588),
		st("Victoria Square", -34.9285, 138.598),
		st("King William Street", -34.925, 138.6),
		st("Pulteney Street", -34.92, 138.605),
		st("Art Gallery", -34.92, 138.605),
		st("Botanic Gardens", -34.92, 138.61),
	},
}

// busRouteStops holds per-route stop lists for buses that have one. Buses
// without an entry fall back to busCorridorStops.
var busRouteStops = map[string][]Stop{
	"G40": {
		st("Adelaide Railway Station", -34.9211, 138.5958),
		st("Grenfell Street", -34.925, 138.6),
		st("Klemzig", -34.895, 138.635),
		st("Paradise Interchange", -34.87, 138.67),
		st("Modbury Interchange", -34.83, 138.68),
		st("Tea Tree Plaza", -34.8336, 138.6919),
		st("Golden Grove", -34.79, 138.70),
	},
	"H20": {
		st("Adelaide Railway Station", -34.9211, 138.5958),
		st("Currie Street", -34.925, 138.59),
		st("Klemzig", -34.895, 138.635),
		st("Paradise Interchange", -34.87, 138.67),
	},
	"H30": {
		st("Adelaide Railway Station", -34.9211, 138.5958),
		st("Currie Street", -34.925, 138.59),
		st("Klemzig", -34.895, 138.635),
		st("Paradise Interchange", -34.87, 138.67),
		st("Tea Tree Plaza", -34.8336, 138.6919),
	},
	"C1": {
		st("Adelaide Railway Station", -34.9211, 138.5958),
		st("Pulteney Street", -34.92, 138.605),
		st("Klemzig", -34.895, 138.635),
		st("Tea Tree Plaza", -34.8336, 138.6919),
	},
	"C2": {
		st("Adelaide Railway Station", -34.9211, 138.5958),
		st("Grenfell Street", -34.925, 138.6),
		st("Klemzig", -34.895, 138.635),
		st("Paradise Interchange", -34.87, 138.67),
	},
	"J1": {
		st("Adelaide Railway Station", -34.9211, 138.5958),
		st("Currie Street", -34.925, 138.59),
		st("Kilkenny", -34.88, 138.54),
		st("West Lakes", -34.87, 138.49),
		st("Westfield West Lakes", -34.885, 138.495),
	},
	"J2": {
		st("Adelaide Railway Station", -34.9211, 138.5958),
		st("Grenfell Street", -34.925, 138.6),
		st("Woodville", -34.875, 138.535),
		st("West Lakes", -34.87, 138.49),
	},
	"W90": {
		st("Adelaide Railway Station", -34.9211, 138.5958),
		st("King William Street", -34.925, 138.6),
		st("Arndale Shopping Centre", -34.8808, 138.5567),
		st("Westfield West Lakes", -34.885, 138.495),
	},
	"150": {
		st("Adelaide Railway Station", -34.9211, 138.5958),
		st("Currie Street", -34.925, 138.59),
		st("Woodville", -34.875, 138.535),
		st("West Lakes", -34.87, 138.49),
	},
	"117": {
		st("Adelaide Railway Station", -34.9211, 138.5958),
		st("Grote Street", -34.93, 138.585),
		st("Findon", -34.9, 138.53),
		st("West Lakes", -34.87, 138.49),
	},
	"M44": {
		st("Adelaide Railway Station", -34.9211, 138.5958),
		st("Pulteney Street", -34.92, 138.605),
		st("Edwardstown", -34.96, 138.57),
		st("Marion Shopping Centre", -35.0169, 138.5542),
	},
	"300": {
		st("Adelaide Railway Station", -34.9211, 138.5958),
		st("Grenfell Street", -34.925, 138.6),
		st("Clovelly Park", -34.98, 138.56),
		st("Marion Shopping Centre", -35.0169, 138.5542),
	},
	"Noarlunga": {
		st("Adelaide Railway Station", -34.9211, 138.5958),
		st("Currie Street", -34.925, 138.59),
		st("Reynella", -35.09, 138.52),
		st("Noarlunga Centre", -35.138, 138.497),
	},
	"G20": {
		st("Adelaide Railway Station", -34.9211, 138.5958),
		st("Wakefield Street", -34.93, 138.595),
		st("Christie Downs", -35.13, 138.50),
		st("Colonnades", -35.12, 138.50),
	},
	"T721": {
		st("Adelaide Railway Station", -34.9211, 138.5958),
		st("Grenfell Street", -34.925, 138.6),
		st("Crafers", -34.99, 138.70),
		st("Mount Barker", -35.06, 138.85),
	},
	"T722": {
		st("Adelaide Railway Station", -34.9211, 138.5958),
		st("Currie Street", -34.925, 138.59),
		st("Stirling", -35.01, 138.72),
		st("Aldgate", -35.02, 138.75),
	},
	"T723": {
		st("Adelaide Railway Station", -34.9211, 138.5958),
		st("Pulteney Street", -34.92, 138.605),
		st("Stirling", -35.01, 138.72),
	},
	"T864": {
		st("Adelaide Railway Station", -34.9211, 138.5958),
		st("King William Street", -34.925, 138.6),
		st("Crafers", -34.99, 138.70),
	},
	"835": {
		st("Adelaide Railway Station", -34.9211, 138.5958),
		st("Grote Street", -34.93, 138.585),
		st("Lobethal", -34.95, 138.88),
	},
	"190": {
		st("Adelaide Railway Station", -34.9211, 138.5958),
		st("Grenfell Street", -34.925, 138.6),
		st("Glenelg South", -34.98, 138.51),
		st("Glenelg", -34.9807, 138.512),
	},
	"263": {
		st("Adelaide Railway Station", -34.9211, 138.5958),
		st("Currie Street", -34.925, 138.59),
		st("Henley Beach", -34.92, 138.49),
	},
	"H30N": {
		st("Adelaide Railway Station", -34.9211, 138.5958),
		st("Prospect", -34.885, 138.595),
		st("Northgate", -34.85, 138.64),
	},
	"271": {
		st("Adelaide Railway Station", -34.9211, 138.5958),
		st("Pulteney Street", -34.92, 138.605),
		st("Unley", -34.95, 138.61),
	},
}

// busCorridorStops is the generic stop list used for buses with no
// route-specific stops. Ordered city stops first, outer stops later.
var busCorridorStops = []Stop{
	st("Adelaide Railway Station", -34.9211, 138.5958),
	st("Currie Street", -34.925, 138.59),
	st("Grenfell Street", -34.925, 138.6),
	st("Grote Street", -34.93, 138.585),
	st("King William Street", -34.925, 138.6),
	st("Morphett Street", -34.925, 138.58),
	st("North Terrace", -34.915, 138.595),
	st("Pulteney Street", -34.92, 138.605),
	st("Rundle Mall", -34.9218, 138.6009),
	st("South Terrace", -34.935, 138.595),
	st("Victoria Square", -34.9285, 138.598),
	st("Wakefield Street", -34.93, 138.595),
	st("Tea Tree Plaza", -34.8336, 138.6919),
	st("Marion Shopping Centre", -35.0169, 138.5542),
	st("Arndale Shopping Centre", -34.8808, 138.5567),
	st("Golden Grove", -34.79, 138.70),
	st("Paradise Interchange", -34.87, 138.67),
	st("Modbury Interchange", -34.83, 138.68),
	st("West Lakes", -34.87, 138.49),
	st("Henley Beach", -34.92, 138.49),
	st("Glenelg South", -34.98, 138.51),
	st("Unley", -34.95, 138.61),
	st("Mount Barker", -35.06, 138.85),
	st("Stirling", -35.01, 138.72),
	st("Crafers", -34.99, 138.70),
	st("Aldgate", -35.02, 138.75),
	st("Lobethal", -34.95, 138.88),
	st("Colonnades", -35.12, 138.50),
	st("Noarlunga", -35.138, 138.497),
	st("Brompton", -34.895, 138.58),
	st("Croydon", -34.895, 138.555),
	st("Fitzroy", -34.885, 138.595),
	st("Northgate", -34.85, 138.64),
	st("Prospect", -34.885, 138.595),
	st("Klemzig", -34.895, 138.635),
	st("Kilburn", -34.86, 138.59),
	st("Woodville", -34.875, 138.535),
}
