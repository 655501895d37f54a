package geo

import "tour-route-service/internal/domain"

// Place maps a known city name to its coordinates.
type Place struct {
	Name   string
	Coords domain.Coordinates
}

// Places is the static fallback table for stops without stored coordinates.
// Order matters: Resolve returns the first matching entry.
var Places = []Place{
	{"Berlin", domain.Coordinates{Lat: 52.5200, Lng: 13.4050}},
	{"Hamburg", domain.Coordinates{Lat: 53.5511, Lng: 9.9937}},
	{"München", domain.Coordinates{Lat: 48.1351, Lng: 11.5820}},
	{"Köln", domain.Coordinates{Lat: 50.9375, Lng: 6.9603}},
	{"Frankfurt", domain.Coordinates{Lat: 50.1109, Lng: 8.6821}},
	{"Stuttgart", domain.Coordinates{Lat: 48.7758, Lng: 9.1829}},
	{"Düsseldorf", domain.Coordinates{Lat: 51.2277, Lng: 6.7735}},
	{"Leipzig", domain.Coordinates{Lat: 51.3397, Lng: 12.3731}},
	{"Dortmund", domain.Coordinates{Lat: 51.5136, Lng: 7.4653}},
	{"Essen", domain.Coordinates{Lat: 51.4556, Lng: 7.0116}},
	{"Bremen", domain.Coordinates{Lat: 53.0793, Lng: 8.8017}},
	{"Dresden", domain.Coordinates{Lat: 51.0504, Lng: 13.7373}},
	{"Hannover", domain.Coordinates{Lat: 52.3759, Lng: 9.7320}},
	{"Nürnberg", domain.Coordinates{Lat: 49.4521, Lng: 11.0767}},
	{"Duisburg", domain.Coordinates{Lat: 51.4344, Lng: 6.7623}},
	{"Bochum", domain.Coordinates{Lat: 51.4818, Lng: 7.2162}},
	{"Wuppertal", domain.Coordinates{Lat: 51.2562, Lng: 7.1508}},
	{"Bielefeld", domain.Coordinates{Lat: 52.0302, Lng: 8.5325}},
	{"Bonn", domain.Coordinates{Lat: 50.7374, Lng: 7.0982}},
	{"Münster", domain.Coordinates{Lat: 51.9607, Lng: 7.6261}},
	{"Karlsruhe", domain.Coordinates{Lat: 49.0069, Lng: 8.4037}},
	{"Mannheim", domain.Coordinates{Lat: 49.4875, Lng: 8.4660}},
	{"Augsburg", domain.Coordinates{Lat: 48.3705, Lng: 10.8978}},
	{"Wiesbaden", domain.Coordinates{Lat: 50.0782, Lng: 8.2398}},
	{"Mönchengladbach", domain.Coordinates{Lat: 51.1805, Lng: 6.4428}},
	{"Gelsenkirchen", domain.Coordinates{Lat: 51.5177, Lng: 7.0857}},
	{"Braunschweig", domain.Coordinates{Lat: 52.2689, Lng: 10.5268}},
	{"Chemnitz", domain.Coordinates{Lat: 50.8278, Lng: 12.9214}},
	{"Kiel", domain.Coordinates{Lat: 54.3233, Lng: 10.1228}},
	{"Aachen", domain.Coordinates{Lat: 50.7753, Lng: 6.0839}},
	{"Halle", domain.Coordinates{Lat: 51.4970, Lng: 11.9688}},
	{"Magdeburg", domain.Coordinates{Lat: 52.1205, Lng: 11.6276}},
	{"Freiburg", domain.Coordinates{Lat: 47.9990, Lng: 7.8421}},
	{"Krefeld", domain.Coordinates{Lat: 51.3388, Lng: 6.5853}},
	{"Lübeck", domain.Coordinates{Lat: 53.8655, Lng: 10.6866}},
	{"Oberhausen", domain.Coordinates{Lat: 51.4963, Lng: 6.8638}},
	{"Erfurt", domain.Coordinates{Lat: 50.9848, Lng: 11.0299}},
	{"Mainz", domain.Coordinates{Lat: 49.9929, Lng: 8.2473}},
	{"Rostock", domain.Coordinates{Lat: 54.0924, Lng: 12.0991}},
	{"Kassel", domain.Coordinates{Lat: 51.3127, Lng: 9.4797}},
	{"Hagen", domain.Coordinates{Lat: 51.3671, Lng: 7.4633}},
	{"Saarbrücken", domain.Coordinates{Lat: 49.2402, Lng: 6.9969}},
	{"Potsdam", domain.Coordinates{Lat: 52.3906, Lng: 13.0645}},
	{"Ludwigshafen", domain.Coordinates{Lat: 49.4774, Lng: 8.4452}},
	{"Oldenburg", domain.Coordinates{Lat: 53.1435, Lng: 8.2146}},
	{"Osnabrück", domain.Coordinates{Lat: 52.2799, Lng: 8.0472}},
	{"Heidelberg", domain.Coordinates{Lat: 49.3988, Lng: 8.6724}},
	{"Regensburg", domain.Coordinates{Lat: 49.0134, Lng: 12.1016}},
	{"Würzburg", domain.Coordinates{Lat: 49.7913, Lng: 9.9534}},
	{"Ulm", domain.Coordinates{Lat: 48.4011, Lng: 9.9876}},
	{"Wien", domain.Coordinates{Lat: 48.2082, Lng: 16.3738}},
	{"Graz", domain.Coordinates{Lat: 47.0707, Lng: 15.4395}},
	{"Linz", domain.Coordinates{Lat: 48.3069, Lng: 14.2858}},
	{"Salzburg", domain.Coordinates{Lat: 47.8095, Lng: 13.0550}},
	{"Innsbruck", domain.Coordinates{Lat: 47.2692, Lng: 11.4041}},
	{"Zürich", domain.Coordinates{Lat: 47.3769, Lng: 8.5417}},
	{"Basel", domain.Coordinates{Lat: 47.5596, Lng: 7.5886}},
	{"Bern", domain.Coordinates{Lat: 46.9480, Lng: 7.4474}},
	{"Luzern", domain.Coordinates{Lat: 47.0502, Lng: 8.3093}},
	{"Luxemburg", domain.Coordinates{Lat: 49.6116, Lng: 6.1319}},
}
