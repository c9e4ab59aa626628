package refdata

// builtinCountries is the compiled-in ISO 3166-1 country list. It is
// not the full standard; it covers the markets the onboarding exports
// actually contain, and the YAML catalog file can extend it.
var builtinCountries = []Country{
	{Alpha2: "US", Name: "United States", AltNames: []string{"United States of America", "USA", "America"}},
	{Alpha2: "CA", Name: "Canada"},
	{Alpha2: "MX", Name: "Mexico", AltNames: []string{"México"}},
	{Alpha2: "GB", Name: "United Kingdom", AltNames: []string{"Great Britain", "Britain", "UK", "England"}},
	{Alpha2: "IE", Name: "Ireland", AltNames: []string{"Éire"}},
	{Alpha2: "FR", Name: "France"},
	{Alpha2: "DE", Name: "Germany", AltNames: []string{"Deutschland"}},
	{Alpha2: "AT", Name: "Austria", AltNames: []string{"Österreich"}},
	{Alpha2: "CH", Name: "Switzerland", AltNames: []string{"Schweiz", "Suisse"}},
	{Alpha2: "NL", Name: "Netherlands", AltNames: []string{"Holland", "Nederland"}},
	{Alpha2: "BE", Name: "Belgium", AltNames: []string{"België", "Belgique"}},
	{Alpha2: "LU", Name: "Luxembourg"},
	{Alpha2: "ES", Name: "Spain", AltNames: []string{"España"}},
	{Alpha2: "PT", Name: "Portugal"},
	{Alpha2: "IT", Name: "Italy", AltNames: []string{"Italia"}},
	{Alpha2: "GR", Name: "Greece", AltNames: []string{"Hellas"}},
	{Alpha2: "SE", Name: "Sweden", AltNames: []string{"Sverige"}},
	{Alpha2: "NO", Name: "Norway", AltNames: []string{"Norge"}},
	{Alpha2: "DK", Name: "Denmark", AltNames: []string{"Danmark"}},
	{Alpha2: "FI", Name: "Finland", AltNames: []string{"Suomi"}},
	{Alpha2: "IS", Name: "Iceland"},
	{Alpha2: "PL", Name: "Poland", AltNames: []string{"Polska"}},
	{Alpha2: "CZ", Name: "Czechia", AltNames: []string{"Czech Republic"}},
	{Alpha2: "SK", Name: "Slovakia"},
	{Alpha2: "HU", Name: "Hungary"},
	{Alpha2: "RO", Name: "Romania"},
	{Alpha2: "BG", Name: "Bulgaria"},
	{Alpha2: "HR", Name: "Croatia"},
	{Alpha2: "SI", Name: "Slovenia"},
	{Alpha2: "EE", Name: "Estonia"},
	{Alpha2: "LV", Name: "Latvia"},
	{Alpha2: "LT", Name: "Lithuania"},
	{Alpha2: "UA", Name: "Ukraine"},
	{Alpha2: "TR", Name: "Turkey", AltNames: []string{"Türkiye"}},
	{Alpha2: "RU", Name: "Russia", AltNames: []string{"Russian Federation"}},
	{Alpha2: "AU", Name: "Australia"},
	{Alpha2: "NZ", Name: "New Zealand"},
	{Alpha2: "JP", Name: "Japan", AltNames: []string{"Nippon"}},
	{Alpha2: "KR", Name: "South Korea", AltNames: []string{"Korea, Republic of"}},
	{Alpha2: "CN", Name: "China", AltNames: []string{"People's Republic of China"}},
	{Alpha2: "TW", Name: "Taiwan"},
	{Alpha2: "HK", Name: "Hong Kong"},
	{Alpha2: "SG", Name: "Singapore"},
	{Alpha2: "MY", Name: "Malaysia"},
	{Alpha2: "TH", Name: "Thailand"},
	{Alpha2: "VN", Name: "Vietnam", AltNames: []string{"Viet Nam"}},
	{Alpha2: "PH", Name: "Philippines"},
	{Alpha2: "ID", Name: "Indonesia"},
	{Alpha2: "IN", Name: "India"},
	{Alpha2: "PK", Name: "Pakistan"},
	{Alpha2: "BD", Name: "Bangladesh"},
	{Alpha2: "AE", Name: "United Arab Emirates", AltNames: []string{"UAE"}},
	{Alpha2: "SA", Name: "Saudi Arabia"},
	{Alpha2: "QA", Name: "Qatar"},
	{Alpha2: "IL", Name: "Israel"},
	{Alpha2: "EG", Name: "Egypt"},
	{Alpha2: "ZA", Name: "South Africa"},
	{Alpha2: "NG", Name: "Nigeria"},
	{Alpha2: "KE", Name: "Kenya"},
	{Alpha2: "BR", Name: "Brazil", AltNames: []string{"Brasil"}},
	{Alpha2: "AR", Name: "Argentina"},
	{Alpha2: "CL", Name: "Chile"},
	{Alpha2: "CO", Name: "Colombia"},
	{Alpha2: "PE", Name: "Peru", AltNames: []string{"Perú"}},
	{Alpha2: "UY", Name: "Uruguay"},
	{Alpha2: "VE", Name: "Venezuela"},
	{Alpha2: "CR", Name: "Costa Rica"},
	{Alpha2: "PA", Name: "Panama", AltNames: []string{"Panamá"}},
}

// builtinSubdivisions is the compiled-in ISO 3166-2 list for the
// countries whose exports carry state/province data.
var builtinSubdivisions = []Subdivision{
	// United States
	{Code: "US-AL", Name: "Alabama"},
	{Code: "US-AK", Name: "Alaska"},
	{Code: "US-AZ", Name: "Arizona"},
	{Code: "US-AR", Name: "Arkansas"},
	{Code: "US-CA", Name: "California"},
	{Code: "US-CO", Name: "Colorado"},
	{Code: "US-CT", Name: "Connecticut"},
	{Code: "US-DE", Name: "Delaware"},
	{Code: "US-FL", Name: "Florida"},
	{Code: "US-GA", Name: "Georgia"},
	{Code: "US-HI", Name: "Hawaii"},
	{Code: "US-ID", Name: "Idaho"},
	{Code: "US-IL", Name: "Illinois"},
	{Code: "US-IN", Name: "Indiana"},
	{Code: "US-IA", Name: "Iowa"},
	{Code: "US-KS", Name: "Kansas"},
	{Code: "US-KY", Name: "Kentucky"},
	{Code: "US-LA", Name: "Louisiana"},
	{Code: "US-ME", Name: "Maine"},
	{Code: "US-MD", Name: "Maryland"},
	{Code: "US-MA", Name: "Massachusetts"},
	{Code: "US-MI", Name: "Michigan"},
	{Code: "US-MN", Name: "Minnesota"},
	{Code: "US-MS", Name: "Mississippi"},
	{Code: "US-MO", Name: "Missouri"},
	{Code: "US-MT", Name: "Montana"},
	{Code: "US-NE", Name: "Nebraska"},
	{Code: "US-NV", Name: "Nevada"},
	{Code: "US-NH", Name: "New Hampshire"},
	{Code: "US-NJ", Name: "New Jersey"},
	{Code: "US-NM", Name: "New Mexico"},
	{Code: "US-NY", Name: "New York"},
	{Code: "US-NC", Name: "North Carolina"},
	{Code: "US-ND", Name: "North Dakota"},
	{Code: "US-OH", Name: "Ohio"},
	{Code: "US-OK", Name: "Oklahoma"},
	{Code: "US-OR", Name: "Oregon"},
	{Code: "US-PA", Name: "Pennsylvania"},
	{Code: "US-RI", Name: "Rhode Island"},
	{Code: "US-SC", Name: "South Carolina"},
	{Code: "US-SD", Name: "South Dakota"},
	{Code: "US-TN", Name: "Tennessee"},
	{Code: "US-TX", Name: "Texas"},
	{Code: "US-UT", Name: "Utah"},
	{Code: "US-VT", Name: "Vermont"},
	{Code: "US-VA", Name: "Virginia"},
	{Code: "US-WA", Name: "Washington"},
	{Code: "US-WV", Name: "West Virginia"},
	{Code: "US-WI", Name: "Wisconsin"},
	{Code: "US-WY", Name: "Wyoming"},
	{Code: "US-DC", Name: "District of Columbia", AltNames: []string{"Washington DC"}},

	// Canada
	{Code: "CA-AB", Name: "Alberta"},
	{Code: "CA-BC", Name: "British Columbia", AltNames: []string{"Colombie-Britannique"}},
	{Code: "CA-MB", Name: "Manitoba"},
	{Code: "CA-NB", Name: "New Brunswick", AltNames: []string{"Nouveau-Brunswick"}},
	{Code: "CA-NL", Name: "Newfoundland and Labrador"},
	{Code: "CA-NS", Name: "Nova Scotia", AltNames: []string{"Nouvelle-Écosse"}},
	{Code: "CA-NT", Name: "Northwest Territories"},
	{Code: "CA-NU", Name: "Nunavut"},
	{Code: "CA-ON", Name: "Ontario"},
	{Code: "CA-PE", Name: "Prince Edward Island"},
	{Code: "CA-QC", Name: "Quebec", AltNames: []string{"Québec"}},
	{Code: "CA-SK", Name: "Saskatchewan"},
	{Code: "CA-YT", Name: "Yukon"},

	// United Kingdom
	{Code: "GB-ENG", Name: "England"},
	{Code: "GB-SCT", Name: "Scotland"},
	{Code: "GB-WLS", Name: "Wales", AltNames: []string{"Cymru"}},
	{Code: "GB-NIR", Name: "Northern Ireland"},
	{Code: "GB-EAW", Name: "England and Wales"},

	// Australia
	{Code: "AU-NSW", Name: "New South Wales"},
	{Code: "AU-QLD", Name: "Queensland"},
	{Code: "AU-SA", Name: "South Australia"},
	{Code: "AU-TAS", Name: "Tasmania"},
	{Code: "AU-VIC", Name: "Victoria"},
	{Code: "AU-WA", Name: "Western Australia"},
	{Code: "AU-ACT", Name: "Australian Capital Territory"},
	{Code: "AU-NT", Name: "Northern Territory"},

	// Germany (local names primary, English variants as alternates)
	{Code: "DE-BW", Name: "Baden-Württemberg"},
	{Code: "DE-BY", Name: "Bayern", AltNames: []string{"Bavaria"}},
	{Code: "DE-BE", Name: "Berlin"},
	{Code: "DE-BB", Name: "Brandenburg"},
	{Code: "DE-HB", Name: "Bremen"},
	{Code: "DE-HH", Name: "Hamburg"},
	{Code: "DE-HE", Name: "Hessen", AltNames: []string{"Hesse"}},
	{Code: "DE-MV", Name: "Mecklenburg-Vorpommern"},
	{Code: "DE-NI", Name: "Niedersachsen", AltNames: []string{"Lower Saxony"}},
	{Code: "DE-NW", Name: "Nordrhein-Westfalen", AltNames: []string{"North Rhine-Westphalia"}},
	{Code: "DE-RP", Name: "Rheinland-Pfalz", AltNames: []string{"Rhineland-Palatinate"}},
	{Code: "DE-SL", Name: "Saarland"},
	{Code: "DE-SN", Name: "Sachsen", AltNames: []string{"Saxony"}},
	{Code: "DE-ST", Name: "Sachsen-Anhalt", AltNames: []string{"Saxony-Anhalt"}},
	{Code: "DE-SH", Name: "Schleswig-Holstein"},
	{Code: "DE-TH", Name: "Thüringen", AltNames: []string{"Thuringia"}},
}
