package routes

func ns(id, name string, lat, lon float64, c Class) Stop {
	return Stop{ID: id, Name: name, Lat: lat, Lon: lon, Class: c}
}

// networkStops is the full Greater Adelaide stop catalog. IDs are prefixed
// by corridor (b_ Belair, c_ city, hi_ hills, in_/is_/iw_ inner suburbs,
// n_ north, ne_ north-east, nw_ north-west, s_ south, se_ south-east,
// sw_ south-west, w_ west).
var networkStops = []Stop{
	ns("b_belair", "Belair", -35.01, 138.65, Train),
	ns("b_blackwood", "Blackwood", -35.02, 138.62, Train),
	ns("b_clapham", "Clapham", -34.965, 138.605, Train),
	ns("b_eden_hills", "Eden Hills", -35.0, 138.62, Train),
	ns("b_glenalta", "Glenalta", -35.025, 138.625, Train),
	ns("b_goodwood", "Goodwood", -34.952, 138.588, Train),
	ns("b_lynton", "Lynton", -34.975, 138.615, Train),
	ns("b_mile_end", "Mile End", -34.925, 138.58, Train),
	ns("b_mitcham", "Mitcham", -34.965, 138.605, Train),
	ns("b_pinera", "Pinera", -35.03, 138.63, Train),
	ns("b_showground", "Adelaide Showground", -34.945, 138.585, Train),
	ns("b_tornsdale", "Torrens Park", -34.97, 138.61, Train),
	ns("b_unley", "Unley", -34.955, 138.6, Train),
	ns("c_adelaide_station", "Adelaide Railway Station", -34.921115, 138.595834, Train),
	ns("c_city_west", "City West", -34.9225, 138.585, Train),
	ns("c_currie_st", "Currie Street", -34.925, 138.59, Bus),
	ns("c_ent_centre", "Entertainment Centre", -34.906, 138.588, Tram),
	ns("c_grenfell_st", "Grenfell Street", -34.925, 138.6, Bus),
	ns("c_grote_st", "Grote Street", -34.93, 138.585, Bus),
	ns("c_king_william_st", "King William Street", -34.925, 138.6, Bus),
	ns("c_morphett_st", "Morphett Street", -34.925, 138.58, Bus),
	ns("c_north_terrace", "North Terrace", -34.915, 138.595, Tram),
	ns("c_pulteney_st", "Pulteney Street", -34.92, 138.605, Bus),
	ns("c_rundle_mall", "Rundle Mall", -34.9218, 138.6009, Tram),
	ns("c_south_terrace", "South Terrace", -34.935, 138.595, Tram),
	ns("c_victoria_sq", "Victoria Square", -34.9285, 138.598, Tram),
	ns("c_wakefield_st", "Wakefield Street", -34.93, 138.595, Bus),
	ns("hi_aldgate", "Aldgate", -35.02, 138.75, Bus),
	ns("hi_crafers", "Crafers", -34.99, 138.7, Bus),
	ns("hi_heathfield", "Heathfield", -35.04, 138.76, Bus),
	ns("hi_mount_barker", "Mount Barker ParknRide", -35.06, 138.85, Bus),
	ns("hi_stirling", "Stirling ParknRide", -35.01, 138.72, Bus),
	ns("hi_verdun", "Verdun", -35.0, 138.73, Bus),
	ns("in_brompton", "Brompton", -34.895, 138.58, Bus),
	ns("in_croydon", "Croydon", -34.895, 138.555, Bus),
	ns("in_fitzroy", "Fitzroy", -34.885, 138.595, Bus),
	ns("in_hindmarsh", "Hindmarsh", -34.905, 138.57, Bus),
	ns("in_nailsworth", "Nailsworth", -34.875, 138.595, Bus),
	ns("in_ovingham", "Ovingham", -34.9, 138.595, Bus),
	ns("in_prospect_rd", "Prospect Road", -34.88, 138.6, Bus),
	ns("in_ridleyton", "Ridleyton", -34.89, 138.56, Bus),
	ns("is_frewville", "Frewville", -34.94, 138.62, Bus),
	ns("is_fullarton", "Fullarton", -34.945, 138.625, Bus),
	ns("is_glenside", "Glenside", -34.945, 138.635, Bus),
	ns("is_malvern", "Malvern", -34.955, 138.62, Bus),
	ns("is_norwood", "The Parade Norwood", -34.92, 138.63, Bus),
	ns("is_parkside", "Parkside", -34.94, 138.615, Bus),
	ns("is_toorak_gardens", "Toorak Gardens", -34.935, 138.63, Bus),
	ns("is_unley_shopping", "Unley Shopping Centre", -34.95, 138.61, Bus),
	ns("iw_black_forest", "Black Forest", -34.94, 138.57, Bus),
	ns("iw_goodwood_rd", "Goodwood Road", -34.955, 138.595, Bus),
	ns("iw_keswick", "Keswick", -34.935, 138.555, Tram),
	ns("iw_kurralta_park", "Kurralta Park", -34.945, 138.565, Bus),
	ns("iw_mile_end_south", "Mile End South", -34.93, 138.575, Bus),
	ns("iw_wayville", "Wayville", -34.945, 138.59, Bus),
	ns("n_blair_athol", "Blair Athol", -34.855, 138.595, Train),
	ns("n_bowden", "Bowden", -34.895, 138.59, Train),
	ns("n_broadmeadows", "Broadmeadows", -34.62, 138.695, Train),
	ns("n_cavan", "Cavan", -34.825, 138.6, Train),
	ns("n_dry_creek", "Dry Creek", -34.84, 138.59, Train),
	ns("n_dudley_park", "Dudley Park", -34.875, 138.585, Train),
	ns("n_elizabeth", "Elizabeth Interchange", -34.72, 138.67, Train),
	ns("n_elizabeth_south", "Elizabeth South", -34.735, 138.665, Train),
	ns("n_gawler", "Gawler Central", -34.596, 138.747, Train),
	ns("n_kilburn", "Kilburn", -34.86, 138.58, Train),
	ns("n_kudla", "Kudla", -34.68, 138.68, Train),
	ns("n_munno_para", "Munno Para", -34.66, 138.685, Train),
	ns("n_ovingham", "Ovingham", -34.9, 138.595, Train),
	ns("n_parafield", "Parafield", -34.79, 138.635, Train),
	ns("n_parafield_gardens", "Parafield Gardens", -34.785, 138.64, Train),
	ns("n_pooraka", "Pooraka", -34.815, 138.61, Train),
	ns("n_prospect", "Prospect", -34.85, 138.6, Train),
	ns("n_salisbury", "Salisbury Interchange", -34.76, 138.64, Train),
	ns("n_salisbury_north", "Salisbury North", -34.75, 138.645, Train),
	ns("n_smithfield", "Smithfield", -34.64, 138.69, Train),
	ns("n_womma", "Womma", -34.7, 138.675, Train),
	ns("ne_dernancourt", "Dernancourt", -34.86, 138.67, Bus),
	ns("ne_gilles_plains", "Gilles Plains", -34.84, 138.66, Bus),
	ns("ne_golden_grove", "Golden Grove Village", -34.79, 138.7, Bus),
	ns("ne_greenwith", "Greenwith", -34.77, 138.715, Bus),
	ns("ne_highbury", "Highbury", -34.87, 138.66, Bus),
	ns("ne_hope_valley", "Hope Valley", -34.85, 138.67, Bus),
	ns("ne_klemzig", "Klemzig", -34.88, 138.64, Bus),
	ns("ne_mawson_lakes", "Mawson Lakes Interchange", -34.82, 138.61, Bus),
	ns("ne_modbury_hospital", "Modbury Hospital", -34.83, 138.68, Bus),
	ns("ne_modbury_interchange", "Modbury Interchange", -34.835, 138.685, Bus),
	ns("ne_paradise", "Paradise Interchange", -34.87, 138.68, Bus),
	ns("ne_surrey_downs", "Surrey Downs", -34.78, 138.71, Bus),
	ns("ne_tea_tree_plaza", "Tea Tree Plaza Interchange", -34.8336, 138.6919, Bus),
	ns("ne_windsor_gardens", "Windsor Gardens", -34.86, 138.65, Bus),
	ns("nw_albert_park", "Albert Park", -34.91, 138.54, Train),
	ns("nw_birkenhead", "Birkenhead", -34.84, 138.5, Bus),
	ns("nw_cheltenham", "Cheltenham", -34.905, 138.545, Train),
	ns("nw_glanville", "Glanville", -34.84, 138.49, Train),
	ns("nw_grange", "Grange", -34.92, 138.53, Train),
	ns("nw_hendon", "Hendon", -34.865, 138.5, Bus),
	ns("nw_largs", "Largs", -34.78, 138.47, Train),
	ns("nw_osborne", "Osborne", -34.82, 138.485, Train),
	ns("nw_outer_harbor", "Outer Harbor", -34.78, 138.48, Train),
	ns("nw_port_adelaide", "Port Adelaide", -34.85, 138.51, Train),
	ns("nw_royal_park", "Royal Park", -34.87, 138.505, Bus),
	ns("nw_seaton_park", "Seaton Park", -34.915, 138.535, Train),
	ns("nw_semaphore", "Semaphore", -34.835, 138.485, Bus),
	ns("nw_taperoo", "Taperoo", -34.8, 138.48, Train),
	ns("nw_west_lakes", "Westfield West Lakes", -34.885, 138.495, Bus),
	ns("s_ascot_park", "Ascot Park", -34.985, 138.565, Train),
	ns("s_brighton", "Brighton", -35.03, 138.535, Train),
	ns("s_edwardstown", "Edwardstown", -34.975, 138.575, Train),
	ns("s_hove", "Hove", -35.025, 138.54, Train),
	ns("s_marion", "Westfield Marion", -35.015, 138.54, Bus),
	ns("s_marion_train", "Marion Station", -35.005, 138.555, Train),
	ns("s_mitchell_park", "Mitchell Park", -34.995, 138.565, Train),
	ns("s_oaklands", "Oaklands", -35.015, 138.55, Train),
	ns("s_park_holme", "Park Holme", -35.0, 138.56, Bus),
	ns("s_plympton", "Plympton", -34.96, 138.55, Bus),
	ns("s_south_plympton_bus", "South Plympton Bus", -34.955, 138.545, Bus),
	ns("s_tonsley", "Tonsley", -35.005, 138.57, Train),
	ns("s_warradale", "Warradale", -35.02, 138.545, Train),
	ns("s_woodlands_park", "Woodlands Park", -34.98, 138.57, Train),
	ns("se_aldinga", "Aldinga Shopping Centre", -35.28, 138.47, Bus),
	ns("se_bedford_park", "Bedford Park", -35.005, 138.635, Train),
	ns("se_christies_beach", "Christies Beach", -35.135, 138.495, Train),
	ns("se_flinders", "Flinders", -35.02, 138.65, Train),
	ns("se_flinders_medical", "Flinders Medical Centre", -35.015, 138.645, Train),
	ns("se_hallett_cove", "Hallett Cove", -35.075, 138.51, Train),
	ns("se_hallett_cove_beach", "Hallett Cove Beach", -35.085, 138.505, Train),
	ns("se_lonsdale", "Lonsdale", -35.095, 138.5, Train),
	ns("se_marino", "Marino", -35.045, 138.525, Train),
	ns("se_noarlunga", "Noarlunga Centre Interchange", -35.14, 138.5, Bus),
	ns("se_seacliff_train", "Seacliff Station", -35.035, 138.53, Train),
	ns("se_seaford", "Seaford Station", -35.185, 138.478, Train),
	ns("se_sturt_creek", "Sturt Creek", -34.995, 138.625, Train),
	ns("sw_brighton", "Brighton", -35.03, 138.535, Bus),
	ns("sw_brighton_rd", "Brighton Road", -34.97, 138.52, Tram),
	ns("sw_glenelg", "Glenelg", -34.9807, 138.512, Tram),
	ns("sw_glenelg_bus", "Glenelg Bus Interchange", -34.98, 138.515, Bus),
	ns("sw_glengowrie", "Glengowrie", -34.955, 138.535, Tram),
	ns("sw_hove", "Hove", -35.025, 138.54, Bus),
	ns("sw_jetty_rd", "Jetty Road", -34.975, 138.515, Tram),
	ns("sw_moseley_sq", "Moseley Square", -34.978, 138.513, Tram),
	ns("sw_seacliff", "Seacliff", -35.035, 138.53, Bus),
	ns("sw_south_plympton", "South Plympton", -34.95, 138.54, Tram),
	ns("w_arndale", "Arndale Shopping Centre", -34.8808, 138.5567, Bus),
	ns("w_cheltenham_halt", "Cheltenham Railway Station", -34.905, 138.545, Train),
	ns("w_findon", "Findon", -34.9, 138.53, Bus),
	ns("w_grange", "Grange", -34.925, 138.485, Bus),
	ns("w_henley_beach", "Henley Beach", -34.92, 138.49, Bus),
	ns("w_kilkenny", "Kilkenny", -34.88, 138.54, Bus),
	ns("w_woodville", "Woodville", -34.87, 138.53, Bus),
}
