package charity

// Charity is one cause record from the external registry. Only the
// identifier and display name are contractual; everything else the
// registry returns is ignored.
type Charity struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// FallbackCharities is the fixed local list used whenever the registry
// is unreachable, slow, or returns something unparseable. The form must
// stay usable without network access.
var FallbackCharities = []Charity{
	{ID: "red-cross", Name: "Red Cross"},
	{ID: "unicef", Name: "UNICEF"},
	{ID: "doctors-without-borders", Name: "Doctors Without Borders"},
	{ID: "world-wildlife-fund", Name: "World Wildlife Fund"},
	{ID: "habitat-for-humanity", Name: "Habitat for Humanity"},
	{ID: "feeding-america", Name: "Feeding America"},
	{ID: "save-the-children", Name: "Save the Children"},
	{ID: "charity-water", Name: "charity: water"},
	{ID: "american-cancer-society", Name: "American Cancer Society"},
	{ID: "local-community-fund", Name: "Local Community Fund"},
}
