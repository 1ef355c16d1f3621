package translation

// DefaultPairs returns the built-in French to English vocabulary for the
// hydraulic and HVAC documentation. Pairs are applied in the order listed,
// so a short phrase shadows longer phrases listed after it ("Débit" before
// "Débit massique", "tours" before "tours d'ouverture"). "tours" is listed
// twice; NewTable keeps it at its first position.
func DefaultPairs() []Pair {
	return []Pair{
		// Titles and sections
		{"Vanne d'équilibrage TA", "TA Balancing Valve"},
		{"Tour & Andersson", "Tour & Andersson"},
		{"IMI Hydronic", "IMI Hydronic"},
		{"Introduction", "Introduction"},
		{"Types de vannes TA disponibles", "Available TA Valve Types"},
		{"Guide de paramétrage et exemples d'utilisation", "Configuration Guide and Usage Examples"},
		{"Applications typiques par type de vanne", "Typical Applications by Valve Type"},
		{"Résultats des exemples de calcul", "Calculation Examples Results"},
		{"Nomenclature", "Nomenclature"},
		{"Équations utilisées", "Equations Used"},
		{"Données sources et références", "Source Data and References"},
		{"Tableau récapitulatif des gammes de vannes", "Summary Table of Valve Ranges"},
		{"Caractéristiques techniques par série", "Technical Characteristics by Series"},
		{"Conseils d'utilisation et bonnes pratiques", "Usage Tips and Best Practices"},
		{"Exemples d'erreurs courantes et solutions", "Common Errors and Solutions Examples"},
		{"Références et documentation complémentaire", "References and Additional Documentation"},

		// Descriptive text
		{"Les vannes d'équilibrage", "Balancing valves"},
		{"sont des composants essentiels", "are essential components"},
		{"dans les systèmes de chauffage, ventilation et climatisation", "in heating, ventilation and air conditioning systems"},
		{"Elles permettent d'équilibrer hydrauliquement les circuits", "They allow hydraulic balancing of circuits"},
		{"pour garantir les débits nominaux", "to ensure nominal flow rates"},
		{"optimiser la performance énergétique", "optimize energy performance"},
		{"des installations", "of installations"},
		{"Cette classe Python permet de calculer", "This Python class allows calculating"},
		{"les pertes de charge", "pressure drops"},
		{"à travers différents modèles de vannes", "through different valve models"},
		{"en utilisant les", "using the"},
		{"données Kv officielles", "official Kv data"},
		{"du fabricant", "from the manufacturer"},
		{"basées sur le nombre de tours d'ouverture", "based on the number of opening turns"},
		{"L'image ci-dessous montre", "The image below shows"},
		{"un exemple de", "an example of"},
		{"vanne d'équilibrage", "balancing valve"},
		{"installée dans un circuit hydraulique", "installed in a hydraulic circuit"},

		// Valve types
		{"Vannes filetées", "Threaded valves"},
		{"Vannes Venturi", "Venturi valves"},
		{"Vannes terminales", "Terminal valves"},
		{"Vannes à brides fonte", "Cast iron flanged valves"},
		{"Vannes fonte GS", "GS cast iron valves"},
		{"Vannes grooved Victaulic", "Victaulic grooved valves"},
		{"Anciennes vannes", "Legacy valves"},
		{"Orifices fixes de mesure", "Fixed measuring orifices"},
		{"Régulateurs", "Regulators"},

		// Applications
		{"réseaux secondaires", "secondary networks"},
		{"réseaux principaux", "main networks"},
		{"grands réseaux", "large networks"},
		{"unités terminales", "terminal units"},
		{"radiateurs", "radiators"},
		{"ventilo-convecteurs", "fan coil units"},
		{"équilibrage dynamique", "dynamic balancing"},
		{"boucles et colonnes", "loops and risers"},
		{"installations existantes", "existing installations"},
		{"maintenance", "maintenance"},

		// Technical parameters
		{"Nombre de tours", "Number of turns"},
		{"Diamètre nominal", "Nominal diameter"},
		{"Perte de charge", "Pressure drop"},
		{"Débit", "Flow rate"},
		{"Pression de sortie", "Outlet pressure"},
		{"Pression d'entrée", "Inlet pressure"},
		{"Coefficient de débit", "Flow coefficient"},
		{"Température d'entrée", "Inlet temperature"},
		{"Densité du fluide", "Fluid density"},
		{"Débit volumétrique", "Volumetric flow rate"},
		{"Débit massique", "Mass flow rate"},
		{"Viscosité dynamique", "Dynamic viscosity"},

		// Units
		{"tours", "turns"},
		{"tours d'ouverture", "opening turns"},

		// Instructions
		{"Configuration de la source", "Source configuration"},
		{"Configuration de la vanne", "Valve configuration"},
		{"Configuration pour", "Configuration for"},
		{"Vanne", "Valve"},
		{"avec", "with"},
		{"tours", "turns"},
		{"et un débit de", "and a flow rate of"},

		// Results
		{"Paramètre", "Parameter"},
		{"Valeur", "Value"},
		{"Type", "Type"},
		{"Application", "Application"},
		{"Fonction", "Function"},

		// Notes and warnings
		{"Le paramètre", "The parameter"},
		{"peut être spécifié sous forme de", "can be specified as"},
		{"chaîne de caractères", "string"},
		{"nombre entier", "integer"},
		{"la conversion est automatique", "conversion is automatic"},

		// Documentation
		{"Documentation", "Documentation"},
		{"Références", "References"},
		{"Normes et standards", "Standards and norms"},
		{"Outils de calcul complémentaires", "Additional calculation tools"},
		{"Formation et support", "Training and support"},
	}
}
