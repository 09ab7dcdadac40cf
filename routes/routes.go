package routes

import "metrotracker/geo"

func wp(lat, lon float64) geo.Coord { return geo.Coord{Lat: lat, Lon: lon} }

// trainRoutes are the six metropolitan rail lines. Waypoints approximate the
// track from Adelaide station outward.
var trainRoutes = []Route{
	{
		ID: "Belair", Name: "Belair", Color: "#0072c6", Class: Train,
		Destinations: []string{"Belair", "Adelaide"},
		Waypoints: []geo.Coord{
			wp(-34.9211, 138.5958), wp(-34.9300, 138.6000), wp(-34.9400, 138.6100),
			wp(-34.9500, 138.6200), wp(-34.9600, 138.6300), wp(-34.9700, 138.6400),
			wp(-34.9800, 138.6500), wp(-34.9900, 138.6600), wp(-35.0000, 138.6700),
			wp(-35.0100, 138.6800),
		},
	},
	{
		ID: "Gawler", Name: "Gawler Central", Color: "#e31837", Class: Train,
		Destinations: []string{"Gawler Central", "Adelaide"},
		Waypoints: []geo.Coord{
			wp(-34.9211, 138.5958), wp(-34.9000, 138.5950), wp(-34.8800, 138.5940),
			wp(-34.8600, 138.5930), wp(-34.8400, 138.5920), wp(-34.8200, 138.5910),
			wp(-34.8000, 138.5900), wp(-34.7800, 138.5890), wp(-34.7600, 138.5880),
			wp(-34.7400, 138.5870),
		},
	},
	{
		ID: "Seaford", Name: "Seaford", Color: "#f7931d", Class: Train,
		Destinations: []string{"Seaford", "Adelaide"},
		Waypoints: []geo.Coord{
			wp(-34.9211, 138.5958), wp(-34.9400, 138.5900), wp(-34.9600, 138.5850),
			wp(-34.9800, 138.5800), wp(-35.0000, 138.5750), wp(-35.0200, 138.5700),
			wp(-35.0400, 138.5650), wp(-35.0600, 138.5600), wp(-35.0800, 138.5550),
			wp(-35.1000, 138.5500),
		},
	},
	{
		ID: "Flinders", Name: "Flinders", Color: "#00a651", Class: Train,
		Destinations: []string{"Flinders", "Adelaide"},
		Waypoints: []geo.Coord{
			wp(-34.9211, 138.5958), wp(-34.9400, 138.6100), wp(-34.9600, 138.6200),
			wp(-34.9800, 138.6300), wp(-35.0000, 138.6400), wp(-35.0200, 138.6500),
		},
	},
	{
		ID: "Outer Harbor", Name: "Outer Harbor", Color: "#8c6cae", Class: Train,
		Destinations: []string{"Outer Harbor", "Adelaide"},
		Waypoints: []geo.Coord{
			wp(-34.9211, 138.5958), wp(-34.9000, 138.5800), wp(-34.8800, 138.5600),
			wp(-34.8600, 138.5400), wp(-34.8400, 138.5200), wp(-34.8200, 138.5000),
		},
	},
	{
		ID: "Grange", Name: "Grange", Color: "#9c6cae", Class: Train,
		Destinations: []string{"Grange", "Adelaide"},
		Waypoints: []geo.Coord{
			wp(-34.9211, 138.5958), wp(-34.9200, 138.5700), wp(-34.9190, 138.5500),
			wp(-34.9180, 138.5300), wp(-34.9170, 138.5100),
		},
	},
}

// tramRoutes are the two tram lines through the city.
var tramRoutes = []Route{
	{
		ID: "Glenelg", Name: "Glenelg Tram", Color: "#e31837", Class: Tram,
		Destinations: []string{"Glenelg", "Entertainment Centre"},
		Waypoints: []geo.Coord{
			wp(-34.9060, 138.5880), wp(-34.9200, 138.5700), wp(-34.9400, 138.5500),
			wp(-34.9600, 138.5300), wp(-34.9807, 138.5120),
		},
	},
	{
		ID: "Botanic", Name: "Botanic Tram", Color: "#0072c6", Class: Tram,
		Destinations: []string{"Botanic Gardens", "Festival Plaza"},
		Waypoints: []geo.Coord{
			wp(-34.9060, 138.5880), wp(-34.9150, 138.5950), wp(-34.9200, 138.6000),
			wp(-34.9250, 138.6050), wp(-34.9300, 138.6100),
		},
	},
}

// busRoutes cover the O-Bahn corridor, the western, southern and hills
// corridors, and a handful of inner-suburb services.
var busRoutes = []Route{
	{
		ID: "G40", Name: "G40", Color: "#0072c6", Class: Bus,
		Destinations: []string{"Golden Grove", "City"},
		Waypoints: []geo.Coord{
			wp(-34.7900, 138.7000), wp(-34.8100, 138.6900), wp(-34.8300, 138.6800),
			wp(-34.8500, 138.6700), wp(-34.8700, 138.6500), wp(-34.8900, 138.6200),
			wp(-34.9211, 138.5958),
		},
	},
	{
		ID: "H20", Name: "H20", Color: "#e31837", Class: Bus,
		Destinations: []string{"Paradise", "City"},
		Waypoints: []geo.Coord{
			wp(-34.8700, 138.6800), wp(-34.8750, 138.6650), wp(-34.8850, 138.6450),
			wp(-34.9000, 138.6200), wp(-34.9100, 138.6050), wp(-34.9211, 138.5958),
		},
	},
	{
		ID: "H30", Name: "H30", Color: "#f7931d", Class: Bus,
		Destinations: []string{"Tea Tree Plaza", "City"},
		Waypoints: []geo.Coord{
			wp(-34.8336, 138.6919), wp(-34.8450, 138.6850), wp(-34.8600, 138.6700),
			wp(-34.8750, 138.6500), wp(-34.8900, 138.6300), wp(-34.9050, 138.6100),
			wp(-34.9211, 138.5958),
		},
	},
	{
		ID: "C1", Name: "C1", Color: "#00a651", Class: Bus,
		Destinations: []string{"Tea Tree Plaza", "City"},
		Waypoints: []geo.Coord{
			wp(-34.8336, 138.6919), wp(-34.8400, 138.6800), wp(-34.8550, 138.6600),
			wp(-34.8750, 138.6350), wp(-34.9000, 138.6100), wp(-34.9211, 138.5958),
		},
	},
	{
		ID: "C2", Name: "C2", Color: "#8c6cae", Class: Bus,
		Destinations: []string{"Paradise", "City"},
		Waypoints: []geo.Coord{
			wp(-34.8700, 138.6800), wp(-34.8600, 138.6650), wp(-34.8800, 138.6400),
			wp(-34.9000, 138.6150), wp(-34.9211, 138.5958),
		},
	},
	{
		ID: "J1", Name: "J1", Color: "#0072c6", Class: Bus,
		Destinations: []string{"West Lakes", "City"},
		Waypoints: []geo.Coord{
			wp(-34.8800, 138.5000), wp(-34.8850, 138.5150), wp(-34.8900, 138.5350),
			wp(-34.8950, 138.5550), wp(-34.9050, 138.5750), wp(-34.9211, 138.5958),
		},
	},
	{
		ID: "J2", Name: "J2", Color: "#e31837", Class: Bus,
		Destinations: []string{"West Lakes", "City"},
		Waypoints: []geo.Coord{
			wp(-34.8800, 138.5000), wp(-34.8900, 138.5250), wp(-34.9050, 138.5500),
			wp(-34.9150, 138.5750), wp(-34.9211, 138.5958),
		},
	},
	{
		ID: "W90", Name: "W90", Color: "#f7931d", Class: Bus,
		Destinations: []string{"Westfield West Lakes", "City"},
		Waypoints: []geo.Coord{
			wp(-34.8850, 138.4950), wp(-34.8900, 138.5200), wp(-34.9000, 138.5450),
			wp(-34.9100, 138.5700), wp(-34.9211, 138.5958),
		},
	},
	{
		ID: "150", Name: "150", Color: "#00a651", Class: Bus,
		Destinations: []string{"West Lakes", "City"},
		Waypoints: []geo.Coord{
			wp(-34.8800, 138.5000), wp(-34.8900, 138.5300), wp(-34.9000, 138.5600),
			wp(-34.9100, 138.5800), wp(-34.9211, 138.5958),
		},
	},
	{
		ID: "117", Name: "117", Color: "#8c6cae", Class: Bus,
		Destinations: []string{"West Lakes", "City"},
		Waypoints: []geo.Coord{
			wp(-34.8750, 138.5050), wp(-34.8850, 138.5350), wp(-34.8950, 138.5650),
			wp(-34.9100, 138.5850), wp(-34.9211, 138.5958),
		},
	},
	{
		ID: "M44", Name: "M44", Color: "#0072c6", Class: Bus,
		Destinations: []string{"Marion", "City"},
		Waypoints: []geo.Coord{
			wp(-35.0169, 138.5542), wp(-35.0000, 138.5580), wp(-34.9800, 138.5620),
			wp(-34.9600, 138.5700), wp(-34.9400, 138.5800), wp(-34.9211, 138.5958),
		},
	},
	{
		ID: "300", Name: "300", Color: "#e31837", Class: Bus,
		Destinations: []string{"Marion", "City"},
		Waypoints: []geo.Coord{
			wp(-35.0200, 138.5500), wp(-35.0000, 138.5550), wp(-34.9750, 138.5650),
			wp(-34.9500, 138.5750), wp(-34.9211, 138.5958),
		},
	},
	{
		ID: "Noarlunga", Name: "Noarlunga Line", Color: "#f7931d", Class: Bus,
		Destinations: []string{"Noarlunga", "City"},
		Waypoints: []geo.Coord{
			wp(-35.1380, 138.4970), wp(-35.1000, 138.5200), wp(-35.0500, 138.5500),
			wp(-34.9900, 138.5700), wp(-34.9500, 138.5850), wp(-34.9211, 138.5958),
		},
	},
	{
		ID: "G20", Name: "G20", Color: "#00a651", Class: Bus,
		Destinations: []string{"Colonnades", "City"},
		Waypoints: []geo.Coord{
			wp(-35.1200, 138.5000), wp(-35.0800, 138.5200), wp(-35.0200, 138.5500),
			wp(-34.9700, 138.5750), wp(-34.9211, 138.5958),
		},
	},
	{
		ID: "T721", Name: "721", Color: "#0072c6", Class: Bus,
		Destinations: []string{"Mount Barker", "City"},
		Waypoints: []geo.Coord{
			wp(-35.0600, 138.8500), wp(-35.0400, 138.8000), wp(-35.0200, 138.7500),
			wp(-35.0000, 138.7000), wp(-34.9800, 138.6500), wp(-34.9500, 138.6200),
			wp(-34.9211, 138.5958),
		},
	},
	{
		ID: "T722", Name: "722", Color: "#e31837", Class: Bus,
		Destinations: []string{"Aldgate", "City"},
		Waypoints: []geo.Coord{
			wp(-35.0200, 138.7500), wp(-35.0000, 138.7000), wp(-34.9800, 138.6500),
			wp(-34.9500, 138.6200), wp(-34.9211, 138.5958),
		},
	},
	{
		ID: "T723", Name: "723", Color: "#f7931d", Class: Bus,
		Destinations: []string{"Stirling", "City"},
		Waypoints: []geo.Coord{
			wp(-35.0100, 138.7200), wp(-34.9900, 138.6800), wp(-34.9700, 138.6400),
			wp(-34.9500, 138.6100), wp(-34.9211, 138.5958),
		},
	},
	{
		ID: "T864", Name: "864", Color: "#00a651", Class: Bus,
		Destinations: []string{"Crafers", "City"},
		Waypoints: []geo.Coord{
			wp(-34.9900, 138.7000), wp(-34.9700, 138.6600), wp(-34.9500, 138.6200),
			wp(-34.9400, 138.6000), wp(-34.9211, 138.5958),
		},
	},
	{
		ID: "835", Name: "835", Color: "#8c6cae", Class: Bus,
		Destinations: []string{"Lobethal", "City"},
		Waypoints: []geo.Coord{
			wp(-34.9500, 138.8800), wp(-34.9600, 138.8400), wp(-34.9700, 138.7800),
			wp(-34.9800, 138.7000), wp(-34.9500, 138.6200), wp(-34.9211, 138.5958),
		},
	},
	{
		ID: "190", Name: "190", Color: "#0072c6", Class: Bus,
		Destinations: []string{"Glenelg", "City"},
		Waypoints: []geo.Coord{
			wp(-34.9800, 138.5200), wp(-34.9700, 138.5400), wp(-34.9600, 138.5600),
			wp(-34.9500, 138.5750), wp(-34.9400, 138.5850), wp(-34.9211, 138.5958),
		},
	},
	{
		ID: "263", Name: "263", Class: Bus,
		Destinations: []string{"Henley Beach", "City"},
		Waypoints: []geo.Coord{
			wp(-34.9200, 138.4900), wp(-34.9150, 138.5100), wp(-34.9100, 138.5350),
			wp(-34.9150, 138.5600), wp(-34.9211, 138.5958),
		},
	},
	{
		ID: "H30N", Name: "H30N", Class: Bus,
		Destinations: []string{"Northgate", "City"},
		Waypoints: []geo.Coord{
			wp(-34.8500, 138.6400), wp(-34.8600, 138.6250), wp(-34.8750, 138.6100),
			wp(-34.8900, 138.6000), wp(-34.9211, 138.5958),
		},
	},
	{
		ID: "271", Name: "271", Class: Bus,
		Destinations: []string{"Unley", "City"},
		Waypoints: []geo.Coord{
			wp(-34.9500, 138.6100), wp(-34.9450, 138.6050), wp(-34.9350, 138.6000),
			wp(-34.9211, 138.5958),
		},
	},
}
